// Package offense provides lookup over the configured offense taxonomy.
//
// The catalog is derived once from the validated deployment configuration
// and is immutable afterward: every accessor is safe for unlocked
// concurrent use. Subcategories are always served in the normalized record
// shape regardless of how the artifact spelled them.
package offense

import (
	"errors"
	"fmt"

	"opencrms/engine/pkg/config"
)

// ErrNotFound reports a code with no matching entry. Lookup is exact and
// case-sensitive; the catalog never guesses near matches.
var ErrNotFound = errors.New("offense: code not found")

// Catalog indexes the configured offense taxonomy by category code while
// preserving configuration order for display consumers.
type Catalog struct {
	categories []config.OffenseCategory
	byCode     map[string]int
}

// NewCatalog builds the catalog from the validated taxonomy. The schema
// validator guarantees codes are unique, so a duplicate here indicates the
// slice was built outside the loader and is rejected.
func NewCatalog(categories []config.OffenseCategory) (*Catalog, error) {
	byCode := make(map[string]int, len(categories))
	owned := make([]config.OffenseCategory, len(categories))
	copy(owned, categories)

	for i, category := range owned {
		if _, exists := byCode[category.Code]; exists {
			return nil, fmt.Errorf("offense: duplicate category code %q", category.Code)
		}
		byCode[category.Code] = i
	}

	return &Catalog{
		categories: owned,
		byCode:     byCode,
	}, nil
}

// All returns every category in configuration order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []config.OffenseCategory {
	return c.categories
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// LookupByCode returns the category with the given code, or ErrNotFound.
func (c *Catalog) LookupByCode(code string) (config.OffenseCategory, error) {
	i, ok := c.byCode[code]
	if !ok {
		return config.OffenseCategory{}, fmt.Errorf("%w: category %q", ErrNotFound, code)
	}
	return c.categories[i], nil
}

// SubcategoriesOf returns the category's subcategories in the normalized
// record shape, in configuration order. String-form entries come back as
// records with an empty code. Returns ErrNotFound for an unknown category.
func (c *Catalog) SubcategoriesOf(code string) ([]config.OffenseSubcategory, error) {
	category, err := c.LookupByCode(code)
	if err != nil {
		return nil, err
	}
	return category.Subcategories.Normalized(), nil
}

// LookupSubcategory returns the named subcategory record within a category.
// Subcategory lookup is by code when the entry has one, falling back to the
// display name for string-form entries.
func (c *Catalog) LookupSubcategory(categoryCode, key string) (config.OffenseSubcategory, error) {
	records, err := c.SubcategoriesOf(categoryCode)
	if err != nil {
		return config.OffenseSubcategory{}, err
	}
	for _, record := range records {
		if record.Code != "" && record.Code == key {
			return record, nil
		}
	}
	for _, record := range records {
		if record.Code == "" && record.Name == key {
			return record, nil
		}
	}
	return config.OffenseSubcategory{}, fmt.Errorf("%w: subcategory %q in category %q", ErrNotFound, key, categoryCode)
}
