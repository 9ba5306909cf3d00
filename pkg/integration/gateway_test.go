package integration

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"opencrms/engine/pkg/config"
)

// testConfig builds a deployment with the registry slot pointed at endpoint
// and the court slot disabled.
func testConfig(endpoint string, enabled bool) *config.DeploymentConfig {
	return &config.DeploymentConfig{
		CountryCode: "NG",
		Integrations: config.Integrations{
			NationalIDRegistry: config.Integration{
				Enabled:     enabled,
				APIEndpoint: endpoint,
				APIKey:      config.Secret("registry-key-123"),
			},
			CourtSystem: config.Integration{Enabled: false},
		},
		Engine: config.EngineConfig{
			Gateway: config.GatewayConfig{RequestTimeout: 5 * time.Second},
		},
	}
}

func TestCall_DisabledSlotMakesNoNetworkAttempt(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL, false), nil, Options{})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if IsRetryable(err) {
		t.Error("disabled outcome must not be retryable")
	}
	if attempts.Load() != 0 {
		t.Errorf("disabled slot made %d network attempts", attempts.Load())
	}
}

func TestCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer registry-key-123" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"match":true}`))
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL, true), nil, Options{})
	defer gateway.Close()

	result, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("unexpected status %d", result.StatusCode)
	}
	if string(result.Body) != `{"match":true}` {
		t.Errorf("unexpected body %q", result.Body)
	}
	if result.RequestID == "" {
		t.Error("result missing correlation ID")
	}
}

func TestNamedSlotCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL, true), nil, Options{})
	defer gateway.Close()

	if _, err := gateway.CallNationalIDRegistry(context.Background(), Request{Path: "/lookup"}); err != nil {
		t.Errorf("CallNationalIDRegistry returned error: %v", err)
	}
	if _, err := gateway.CallCourtSystem(context.Background(), Request{Path: "/cases"}); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled for court slot, got %v", err)
	}
}

func TestCall_UnknownSlot(t *testing.T) {
	gateway := NewGateway(testConfig("http://127.0.0.1:0", true), nil, Options{})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), "immigration", Request{})
	if !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestCall_StatusClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "server error", status: http.StatusInternalServerError, retryable: true},
		{name: "bad gateway", status: http.StatusBadGateway, retryable: true},
		{name: "throttled", status: http.StatusTooManyRequests, retryable: true},
		{name: "unauthorized", status: http.StatusUnauthorized, retryable: false},
		{name: "not found", status: http.StatusNotFound, retryable: false},
		{name: "bad request", status: http.StatusBadRequest, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			gateway := NewGateway(testConfig(server.URL, true), nil, Options{})
			defer gateway.Close()

			_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var intErr *IntegrationError
			if !errors.As(err, &intErr) {
				t.Fatalf("expected *IntegrationError, got %T", err)
			}
			if intErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, intErr.StatusCode)
			}
			if IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", IsRetryable(err), tt.retryable)
			}
		})
	}
}

func TestCall_ConnectionFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	gateway := NewGateway(testConfig(endpoint, true), nil, Options{})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsRetryable(err) {
		t.Errorf("connection failure must be retryable, got %v", err)
	}
}

func TestCall_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL, true)
	cfg.Engine.Gateway.RequestTimeout = 50 * time.Millisecond
	gateway := NewGateway(cfg, nil, Options{})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected *TimeoutError, got %T: %v", err, err)
	}
	if !IsRetryable(err) {
		t.Error("timeouts must be retryable")
	}
}

func TestCall_ErrorTextNeverLeaksCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := NewGateway(testConfig(server.URL, true), nil, Options{})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if text := err.Error(); strings.Contains(text, "registry-key-123") {
		t.Errorf("error text leaked credential: %s", text)
	}
}

func TestCall_RecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	gateway := NewGateway(testConfig(server.URL, true), nil, Options{Metrics: metrics})
	defer gateway.Close()

	if _, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Path: "/lookup"}); err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if _, err := gateway.Call(context.Background(), SlotCourtSystem, Request{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled for court slot, got %v", err)
	}

	success := testutil.ToFloat64(metrics.callsTotal.WithLabelValues(SlotNationalIDRegistry, "success"))
	if success != 1 {
		t.Errorf("expected 1 success call, got %v", success)
	}
	disabled := testutil.ToFloat64(metrics.callsTotal.WithLabelValues(SlotCourtSystem, "disabled"))
	if disabled != 1 {
		t.Errorf("expected 1 disabled call, got %v", disabled)
	}
}

func TestCheckHealth_SetsUpGauge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected probe path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	gateway := NewGateway(testConfig(server.URL, true), nil, Options{Metrics: metrics})
	defer gateway.Close()

	if err := gateway.CheckHealth(context.Background(), SlotNationalIDRegistry); err != nil {
		t.Fatalf("CheckHealth returned error: %v", err)
	}
	if up := testutil.ToFloat64(metrics.up.WithLabelValues(SlotNationalIDRegistry)); up != 1 {
		t.Errorf("expected up gauge 1, got %v", up)
	}
}

// recorderFunc adapts a function to the Recorder interface.
type recorderFunc func(ctx context.Context, record CallRecord) error

func (f recorderFunc) Record(ctx context.Context, record CallRecord) error {
	return f(ctx, record)
}

func TestCall_AuditRecordCarriesOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var recorded CallRecord
	recorder := recorderFunc(func(ctx context.Context, record CallRecord) error {
		recorded = record
		return nil
	})

	gateway := NewGateway(testConfig(server.URL, true), nil, Options{Recorder: recorder})
	defer gateway.Close()

	_, err := gateway.Call(context.Background(), SlotNationalIDRegistry, Request{Method: http.MethodPost, Path: "/lookup", Body: map[string]string{"id": "x"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if recorded.Outcome != "error" {
		t.Errorf("expected error outcome, got %q", recorded.Outcome)
	}
	if recorded.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("unexpected recorded status %d", recorded.StatusCode)
	}
	if !recorded.Retryable {
		t.Error("503 must be recorded as retryable")
	}
	if recorded.RequestID == "" || recorded.Slot != SlotNationalIDRegistry {
		t.Errorf("incomplete record: %+v", recorded)
	}
}
