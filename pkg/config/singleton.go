package config

import "sync"

var (
	// globalConfig holds the published process-wide instance.
	globalConfig *DeploymentConfig

	// configMutex protects publication; reads after publication are of an
	// immutable value and only need the read lock for the pointer itself.
	configMutex sync.RWMutex
)

// Initialize loads the deployment artifact from path and publishes it as
// the process-wide configuration. It must be called once during process
// startup, before any request-serving work begins.
//
// A second call after a successful first one is a programming error and
// returns ErrAlreadyInitialized: the aggregate is replaced only by
// restarting the process. A failed Initialize publishes nothing and may be
// retried.
func Initialize(path string) error {
	if Get() != nil {
		return ErrAlreadyInitialized
	}

	// Load performs file I/O; the lock is only taken for publication.
	cfg, err := Load(path)
	if err != nil {
		return err
	}

	return Publish(cfg)
}

// Publish installs an already-loaded configuration as the process-wide
// instance. Callers that need to adjust a loaded instance (startup flag
// overrides) do so before publishing; the published instance is never
// mutated. Returns ErrAlreadyInitialized if an instance was published
// before.
func Publish(cfg *DeploymentConfig) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	if globalConfig != nil {
		return ErrAlreadyInitialized
	}

	globalConfig = cfg
	return nil
}

// Get returns the published configuration instance, or nil if Initialize
// has not succeeded yet. Safe for concurrent use.
//
// For testing, prefer dependency injection with explicit DeploymentConfig
// instances over the process-wide singleton.
func Get() *DeploymentConfig {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// MustGet returns the published configuration instance and panics if
// Initialize has not succeeded. Use only in code paths that run strictly
// after startup.
func MustGet() *DeploymentConfig {
	cfg := Get()
	if cfg == nil {
		panic("deployment configuration not initialized: call Initialize first")
	}
	return cfg
}

// SetForTesting publishes cfg directly, bypassing Load. Tests use it to
// install fixtures; production code never calls it.
func SetForTesting(cfg *DeploymentConfig) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
}

// ResetForTesting clears the published instance so a test can exercise
// Initialize again.
func ResetForTesting() {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = nil
}
