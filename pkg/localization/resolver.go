// Package localization derives date, time, and currency presentation from
// the deployment configuration.
package localization

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"opencrms/engine/pkg/config"
)

// Resolver formats dates, times, and currency amounts according to the
// deployment's localization settings. It is built once at startup and is
// immutable: all methods are safe for unlocked concurrent use.
type Resolver struct {
	cfg        config.Language
	currency   config.Currency
	dateLayout string
	timeLayout string
	printer    *message.Printer
	supported  map[string]struct{}
}

// NewResolver builds a resolver for the deployment's default language. The
// schema validator guarantees the date and time formats are well formed, so
// construction from a published configuration cannot fail.
func NewResolver(lang config.Language, currency config.Currency) (*Resolver, error) {
	dateLayout, err := dateLayoutFor(lang.DateFormat)
	if err != nil {
		return nil, err
	}
	timeLayout, err := timeLayoutFor(lang.TimeFormat)
	if err != nil {
		return nil, err
	}

	supported := make(map[string]struct{}, len(lang.Supported))
	for _, tag := range lang.Supported {
		supported[tag] = struct{}{}
	}

	return &Resolver{
		cfg:        lang,
		currency:   currency,
		dateLayout: dateLayout,
		timeLayout: timeLayout,
		printer:    printerFor(lang.Default),
		supported:  supported,
	}, nil
}

// DefaultLanguage returns the deployment's default language tag.
func (r *Resolver) DefaultLanguage() string {
	return r.cfg.Default
}

// SupportedLanguages returns the configured language tags in configuration
// order.
func (r *Resolver) SupportedLanguages() []string {
	return r.cfg.Supported
}

// IsSupportedLanguage reports whether the deployment offers the given tag.
// Matching is exact; "en" and "en-GB" are distinct tags.
func (r *Resolver) IsSupportedLanguage(tag string) bool {
	_, ok := r.supported[tag]
	return ok
}

// ForLanguage returns a resolver whose number formatting follows the given
// supported language tag. Date and time layouts are deployment-wide and do
// not vary by language. Returns an error for an unsupported tag; callers
// fall back to the default resolver.
func (r *Resolver) ForLanguage(tag string) (*Resolver, error) {
	if !r.IsSupportedLanguage(tag) {
		return nil, fmt.Errorf("localization: unsupported language %q", tag)
	}
	variant := *r
	variant.printer = printerFor(tag)
	return &variant, nil
}

// FormatDate renders t using the configured date format.
func (r *Resolver) FormatDate(t time.Time) string {
	return t.Format(r.dateLayout)
}

// FormatTime renders t using the configured clock convention.
func (r *Resolver) FormatTime(t time.Time) string {
	return t.Format(r.timeLayout)
}

// FormatDateTime renders date and time together, date first.
func (r *Resolver) FormatDateTime(t time.Time) string {
	return r.FormatDate(t) + " " + r.FormatTime(t)
}

// FormatCurrency renders an amount with the configured currency symbol and
// language-appropriate digit grouping, always with two fraction digits.
func (r *Resolver) FormatCurrency(amount float64) string {
	return r.currency.Symbol + r.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// CurrencyCode returns the configured currency code.
func (r *Resolver) CurrencyCode() string {
	return r.currency.Code
}

// dateLayoutFor translates the artifact's token pattern (DD, MM, YYYY) into
// a Go reference layout. Tokens may appear in any order with any separators.
func dateLayoutFor(format string) (string, error) {
	if format == "" {
		format = config.DefaultDateFormat
	}
	if !strings.Contains(format, "DD") || !strings.Contains(format, "MM") || !strings.Contains(format, "YYYY") {
		return "", fmt.Errorf("localization: date format %q must contain DD, MM and YYYY", format)
	}
	layout := strings.Replace(format, "YYYY", "2006", 1)
	layout = strings.Replace(layout, "MM", "01", 1)
	layout = strings.Replace(layout, "DD", "02", 1)
	return layout, nil
}

// timeLayoutFor maps the clock convention to a Go reference layout.
func timeLayoutFor(format string) (string, error) {
	switch format {
	case "", "24h":
		return "15:04", nil
	case "12h":
		return "3:04 PM", nil
	default:
		return "", fmt.Errorf("localization: unknown time format %q", format)
	}
}

// printerFor builds a message printer for the tag, falling back to English
// grouping when the tag does not parse.
func printerFor(tag string) *message.Printer {
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.English
	}
	return message.NewPrinter(parsed)
}
