package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pianoroll/midx/pkg/midx/config"
	"github.com/pianoroll/midx/pkg/midx/logging"
)

func TestInitializeLoggingEnsuresDirectories(t *testing.T) {
	// Note: XDG paths are cached at package init time, so we cannot override
	// them with environment variables. Instead, we verify that initializeLogging
	// creates the directories at the actual XDG paths.

	// Run initializeLogging (the PersistentPreRunE hook)
	err := initializeLogging(nil, nil)
	if err != nil {
		t.Fatalf("initializeLogging() returned error: %v", err)
	}

	// Verify directories were created
	configDir, err := config.ConfigDir()
	if err != nil {
		t.Fatalf("failed to get config dir: %v", err)
	}
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Errorf("config directory was not created: %s", configDir)
	}

	logDir := filepath.Dir(logging.DefaultLogPath())
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("log directory was not created: %s", logDir)
	}

	// Clean up logging state
	_ = logging.Close()
}
