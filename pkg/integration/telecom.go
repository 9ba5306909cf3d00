package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"opencrms/engine/pkg/config"
	"opencrms/engine/pkg/telemetry/logging"
)

// SMSDispatcher delivers citizen-facing notifications through the
// deployment's configured SMS provider. Like the gateway slots, an
// unconfigured endpoint yields ErrDisabled with no network attempt.
type SMSDispatcher struct {
	telecom config.Telecom
	client  *http.Client
	logger  *logging.Logger
}

// SMSMessage is one outbound notification.
type SMSMessage struct {
	// To is the recipient phone number.
	To string `json:"to"`

	// Body is the message text.
	Body string `json:"body"`
}

// NewSMSDispatcher builds the dispatcher from the validated configuration.
func NewSMSDispatcher(cfg *config.DeploymentConfig, logger *logging.Logger) *SMSDispatcher {
	timeout := cfg.Engine.Gateway.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultGatewayRequestTimeout
	}
	if logger == nil {
		logger, _ = logging.New(logging.Config{Writer: io.Discard})
	}

	return &SMSDispatcher{
		telecom: cfg.Telecom,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Enabled reports whether SMS delivery is configured.
func (d *SMSDispatcher) Enabled() bool {
	return d.telecom.SMSEndpoint != ""
}

// Send posts one message to the configured provider endpoint. Returns
// ErrDisabled when no endpoint is configured. Recipient numbers are never
// logged in full; the redacting logger masks them.
func (d *SMSDispatcher) Send(ctx context.Context, msg SMSMessage) error {
	if !d.Enabled() {
		return fmt.Errorf("%w: sms", ErrDisabled)
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)

	payload, err := json.Marshal(msg)
	if err != nil {
		return &IntegrationError{Slot: "sms", Retryable: false, RequestID: requestID, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.telecom.SMSEndpoint, bytes.NewReader(payload))
	if err != nil {
		return &IntegrationError{Slot: "sms", Retryable: false, RequestID: requestID, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if !d.telecom.SMSAPIKey.IsZero() {
		req.Header.Set("Authorization", "Bearer "+d.telecom.SMSAPIKey.Reveal())
	}

	started := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &TimeoutError{Slot: "sms", Timeout: d.client.Timeout}
		}
		return &IntegrationError{Slot: "sms", Retryable: true, RequestID: requestID, Cause: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &IntegrationError{
			Slot:       "sms",
			StatusCode: resp.StatusCode,
			Retryable:  retryableStatus(resp.StatusCode),
			RequestID:  requestID,
		}
	}

	d.logger.InfoContext(ctx, "sms dispatched",
		"provider", d.telecom.SMSProvider,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

// USSDDirectory exposes the deployment's USSD access points for display
// and menu routing.
type USSDDirectory struct {
	telecom config.Telecom
}

// NewUSSDDirectory builds the directory from the validated configuration.
func NewUSSDDirectory(cfg *config.DeploymentConfig) *USSDDirectory {
	return &USSDDirectory{telecom: cfg.Telecom}
}

// Shortcode returns the deployment's USSD shortcode.
func (u *USSDDirectory) Shortcode() string {
	return u.telecom.USSDShortcode
}

// Gateways returns the configured gateway identifiers in configuration
// order.
func (u *USSDDirectory) Gateways() []string {
	return u.telecom.USSDGateways
}
