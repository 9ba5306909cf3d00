package main

import (
	"testing"
)

func TestVersionDefaults(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "0.1.0-test"
	GitCommit = "abc123"
	BuildDate = "2026-08-26"

	if Version != "0.1.0-test" {
		t.Errorf("Version = %q, want %q", Version, "0.1.0-test")
	}
	if GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123")
	}
	if BuildDate != "2026-08-26" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-08-26")
	}
}

func TestCommandsRegistered(t *testing.T) {
	expected := map[string]bool{
		"version":  false,
		"run":      false,
		"validate": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent --config flag")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing persistent --verbose flag")
	}
}
