package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"opencrms/engine/pkg/config"
	"opencrms/engine/pkg/telemetry/logging"
)

// maxResponseBody caps how much of a response the gateway reads.
const maxResponseBody = 4 << 20

// slot pairs a configured integration with its artifact name.
type slot struct {
	name string
	cfg  config.Integration
}

// Gateway performs outbound calls to the deployment's integration slots.
// It is built once from the validated configuration and is safe for
// concurrent use. The gateway performs exactly one attempt per call;
// retry policy belongs to the caller, guided by IsRetryable.
type Gateway struct {
	// slots maps artifact slot names to their configuration
	slots map[string]slot

	// client is the HTTP client with connection pooling
	client *http.Client

	// timeout bounds each outbound call
	timeout time.Duration

	// logger emits call telemetry; credentials and payloads are never logged
	logger *logging.Logger

	// metrics records call outcomes (nil disables)
	metrics *Metrics

	// recorder persists audit records (nil disables)
	recorder Recorder
}

// Options configures the optional gateway collaborators.
type Options struct {
	// Metrics records call outcomes. Nil disables metric recording.
	Metrics *Metrics

	// Recorder persists audit records. Nil disables auditing.
	Recorder Recorder
}

// NewGateway builds the gateway from a validated deployment configuration.
func NewGateway(cfg *config.DeploymentConfig, logger *logging.Logger, opts Options) *Gateway {
	timeout := cfg.Engine.Gateway.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultGatewayRequestTimeout
	}

	if logger == nil {
		logger, _ = logging.New(logging.Config{Writer: io.Discard})
	}

	transport := &http.Transport{
		MaxIdleConns:        32,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Gateway{
		slots: map[string]slot{
			SlotNationalIDRegistry: {name: SlotNationalIDRegistry, cfg: cfg.Integrations.NationalIDRegistry},
			SlotCourtSystem:        {name: SlotCourtSystem, cfg: cfg.Integrations.CourtSystem},
		},
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		timeout:  timeout,
		logger:   logger,
		metrics:  opts.Metrics,
		recorder: opts.Recorder,
	}
}

// Slots returns the configured slot names.
func (g *Gateway) Slots() []string {
	return []string{SlotNationalIDRegistry, SlotCourtSystem}
}

// Enabled reports whether the named slot is switched on.
func (g *Gateway) Enabled(slotName string) bool {
	s, ok := g.slots[slotName]
	return ok && s.cfg.Enabled
}

// Call performs one outbound call against the named slot.
//
// A disabled slot returns ErrDisabled immediately with no network attempt.
// Failures come back as *IntegrationError or *TimeoutError; use IsRetryable
// to decide whether a retry is worthwhile.
func (g *Gateway) Call(ctx context.Context, slotName string, req Request) (*Result, error) {
	s, ok := g.slots[slotName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, slotName)
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	ctx = logging.WithIntegration(ctx, slotName)

	started := time.Now()

	if !s.cfg.Enabled {
		g.finish(ctx, CallRecord{
			RequestID: requestID,
			Slot:      slotName,
			Method:    methodOf(req),
			Path:      req.Path,
			Outcome:   "disabled",
			StartedAt: started,
		})
		return nil, fmt.Errorf("%w: %q", ErrDisabled, slotName)
	}

	result, err := g.do(ctx, s, requestID, req)

	record := CallRecord{
		RequestID: requestID,
		Slot:      slotName,
		Method:    methodOf(req),
		Path:      req.Path,
		Duration:  time.Since(started),
		StartedAt: started,
	}
	if err != nil {
		record.Outcome = "error"
		record.Retryable = IsRetryable(err)
		var intErr *IntegrationError
		if errors.As(err, &intErr) {
			record.StatusCode = intErr.StatusCode
		}
	} else {
		record.Outcome = "success"
		record.StatusCode = result.StatusCode
		result.RequestID = requestID
		result.Duration = record.Duration
	}
	g.finish(ctx, record)

	return result, err
}

// CallNationalIDRegistry performs one call against the national ID
// registry slot.
func (g *Gateway) CallNationalIDRegistry(ctx context.Context, req Request) (*Result, error) {
	return g.Call(ctx, SlotNationalIDRegistry, req)
}

// CallCourtSystem performs one call against the court system slot.
func (g *Gateway) CallCourtSystem(ctx context.Context, req Request) (*Result, error) {
	return g.Call(ctx, SlotCourtSystem, req)
}

// do performs the single HTTP attempt.
func (g *Gateway) do(ctx context.Context, s slot, requestID string, req Request) (*Result, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &IntegrationError{
				Slot:      s.name,
				Retryable: false,
				RequestID: requestID,
				Cause:     fmt.Errorf("marshal request body: %w", err),
			}
		}
		bodyReader = bytes.NewReader(payload)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	url := strings.TrimSuffix(s.cfg.APIEndpoint, "/") + req.Path
	httpReq, err := http.NewRequestWithContext(callCtx, methodOf(req), url, bodyReader)
	if err != nil {
		return nil, &IntegrationError{
			Slot:      s.name,
			Retryable: false,
			RequestID: requestID,
			Cause:     fmt.Errorf("build request: %w", err),
		}
	}

	// The raw key exists only on this header; it never reaches logs,
	// errors, or audit records.
	if !s.cfg.APIKey.IsZero() {
		httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey.Reveal())
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	g.logger.DebugContext(ctx, "integration call started", "method", methodOf(req), "path", req.Path)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Slot: s.name, Timeout: g.timeout}
		}
		if ctx.Err() != nil {
			return nil, &IntegrationError{
				Slot:      s.name,
				Retryable: false,
				RequestID: requestID,
				Cause:     ctx.Err(),
			}
		}
		// Connection-level failure: transient by classification.
		return nil, &IntegrationError{
			Slot:      s.name,
			Retryable: true,
			RequestID: requestID,
			Cause:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &IntegrationError{
			Slot:       s.name,
			StatusCode: resp.StatusCode,
			Retryable:  true,
			RequestID:  requestID,
			Cause:      fmt.Errorf("read response: %w", err),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{StatusCode: resp.StatusCode, Body: body}, nil
	}

	return nil, &IntegrationError{
		Slot:       s.name,
		StatusCode: resp.StatusCode,
		Retryable:  retryableStatus(resp.StatusCode),
		RequestID:  requestID,
	}
}

// finish emits telemetry for one completed call.
func (g *Gateway) finish(ctx context.Context, record CallRecord) {
	g.metrics.RecordCall(record.Slot, record.Outcome, record.Duration)

	switch record.Outcome {
	case "disabled":
		g.logger.DebugContext(ctx, "integration call skipped, slot disabled")
	case "success":
		g.logger.InfoContext(ctx, "integration call completed",
			"status", record.StatusCode,
			"duration_ms", record.Duration.Milliseconds(),
		)
	default:
		g.logger.WarnContext(ctx, "integration call failed",
			"status", record.StatusCode,
			"retryable", record.Retryable,
			"duration_ms", record.Duration.Milliseconds(),
		)
	}

	if g.recorder != nil {
		if err := g.recorder.Record(ctx, record); err != nil {
			g.logger.WarnContext(ctx, "audit record write failed", "error", err.Error())
		}
	}
}

// CheckHealth probes the named slot's endpoint with a lightweight GET.
// Disabled slots report healthy=false with ErrDisabled.
func (g *Gateway) CheckHealth(ctx context.Context, slotName string) error {
	_, err := g.Call(ctx, slotName, Request{Method: http.MethodGet, Path: "/health"})
	healthy := err == nil
	if _, ok := g.slots[slotName]; ok {
		g.metrics.RecordHealth(slotName, healthy)
	}
	return err
}

// Close releases idle connections.
func (g *Gateway) Close() error {
	g.client.CloseIdleConnections()
	return nil
}

// retryableStatus classifies an HTTP status: server errors and throttling
// are transient, other client errors are permanent.
func retryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

func methodOf(req Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return req.Method
}
