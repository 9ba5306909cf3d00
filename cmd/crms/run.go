package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"opencrms/engine/pkg/cli"
	"opencrms/engine/pkg/config"
	"opencrms/engine/pkg/identity"
	"opencrms/engine/pkg/integration"
	"opencrms/engine/pkg/integration/audit"
	"opencrms/engine/pkg/localization"
	"opencrms/engine/pkg/offense"
	"opencrms/engine/pkg/server"
	"opencrms/engine/pkg/telemetry/logging"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the deployment configuration engine",
	Long: `Load the deployment artifact, validate it, and start the engine.

A defective artifact stops the process before anything is served: the engine
never runs on a partially valid configuration. Once running, the artifact on
disk is never re-read; changing a deployment requires a restart.

Examples:
  # Start with the default artifact
  crms run

  # Start with a specific artifact
  crms run --config /etc/crms/nigeria.yaml

  # Validate the artifact and exit
  crms run --dry-run`,
	RunE: runEngine,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override admin listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate the artifact without starting the engine")
}

func runEngine(cmd *cobra.Command, args []string) error {
	// Load the configuration; any artifact defect aborts startup here.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewArtifactError(cfgFile, err.Error())
	}

	// Flag overrides apply before publication; the published instance is
	// immutable.
	if runFlags.listenAddress != "" {
		cfg.Engine.Admin.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Engine.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Engine.Logging.Level = "debug"
	}

	if err := config.Publish(cfg); err != nil {
		return cli.NewCommandError("run", err)
	}

	logger, err := logging.FromDeployment(cfg, os.Stdout)
	if err != nil {
		return cli.NewArtifactError(cfgFile, err.Error())
	}

	if runFlags.dryRun {
		fmt.Printf("✓ %s is valid (%s)\n", cfgFile, cfg.CountryName)
		return nil
	}

	printBanner(cfg)

	// Derived services. The validator already vetted every input, so these
	// constructors only fail on a programming error.
	idValidator, err := identity.NewValidator(cfg.NationalIDSystem)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	catalog, err := offense.NewCatalog(cfg.OffenseCategories)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	resolver, err := localization.NewResolver(cfg.Language, cfg.Currency)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	logger.Info("derived services ready",
		"id_document", idValidator.Describe().Type,
		"offense_categories", catalog.Len(),
		"default_language", resolver.DefaultLanguage(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Audit store (optional).
	var recorder integration.Recorder
	if cfg.Engine.Audit.Enabled {
		store, err := audit.Open(cfg.Engine.Audit.Path)
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		defer store.Close()
		recorder = store
		logger.Info("integration audit log open", "path", cfg.Engine.Audit.Path)
	}

	// Gateway and health probes.
	registry := prometheus.NewRegistry()
	metrics := integration.NewMetrics(registry)
	gateway := integration.NewGateway(cfg, logger, integration.Options{
		Metrics:  metrics,
		Recorder: recorder,
	})
	defer gateway.Close()

	checker := integration.NewHealthChecker(gateway, cfg.Engine.Gateway.HealthSchedule, logger)
	if err := checker.Start(); err != nil {
		return cli.NewCommandError("run", fmt.Errorf("health schedule: %w", err))
	}
	defer checker.Stop()

	// Artifact drift watcher (optional). Warns only; never reloads.
	if cfg.Engine.WatchArtifact {
		go func() {
			if err := config.WatchArtifact(ctx, cfgFile, logger); err != nil {
				logger.Warn("artifact watcher stopped", "error", err.Error())
			}
		}()
	}

	fmt.Printf("✓ Engine running for %s (%s)\n", cfg.CountryName, cfg.CountryCode)

	// Admin surface. When disabled the engine still runs its background
	// services; block until a shutdown signal instead.
	if cfg.Engine.Admin.Enabled {
		srv := server.NewServer(cfg, logger, registry)
		fmt.Printf("✓ Admin surface on http://%s (config, healthz, metrics)\n", cfg.Engine.Admin.ListenAddress)
		fmt.Println("\nPress Ctrl+C to stop")
		return srv.Start(ctx)
	}

	fmt.Println("\nPress Ctrl+C to stop")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	fmt.Printf("\nReceived signal %s, shutting down\n", sig)
	return nil
}

// printBanner prints the startup summary.
func printBanner(cfg *config.DeploymentConfig) {
	fmt.Printf("CRMS Engine %s\n", Version)
	fmt.Printf("Deployment: %s (%s), capital %s\n", cfg.CountryName, cfg.CountryCode, cfg.Capital)
	fmt.Printf("Identity document: %s (%s)\n", cfg.NationalIDSystem.DisplayName, cfg.NationalIDSystem.Type)
	fmt.Println()
}
