package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentweb/core/config"
)

func TestApplyDefaults(t *testing.T) {
	c := config.Apply()
	if !c.Headless {
		t.Error("Apply() default Headless = false, want true")
	}
	if !c.ConsentPolicy {
		t.Error("Apply() default ConsentPolicy = false, want true")
	}
	if c.Logger == nil {
		t.Error("Apply() Logger = nil, want non-nil")
	}
}

func TestApplyOptions(t *testing.T) {
	c := config.Apply(
		config.WithHeadless(false),
		config.WithViewport(1280, 800),
		config.WithExecutablePath("/opt/chrome"),
		config.WithConsentPolicy(false),
	)
	if c.Headless {
		t.Error("WithHeadless(false): Headless = true, want false")
	}
	if c.ViewportWidth != 1280 || c.ViewportHeight != 800 {
		t.Errorf("WithViewport(1280, 800): got (%d, %d)", c.ViewportWidth, c.ViewportHeight)
	}
	if c.ExecutablePath != "/opt/chrome" {
		t.Errorf("WithExecutablePath: got %q", c.ExecutablePath)
	}
	if c.ConsentPolicy {
		t.Error("WithConsentPolicy(false): ConsentPolicy = true, want false")
	}
}

func TestWithConnectExisting(t *testing.T) {
	c := config.Apply(config.WithConnectExisting(9222))
	if !c.ConnectExisting {
		t.Error("WithConnectExisting: ConnectExisting = false, want true")
	}
	if c.DebugPort != 9222 {
		t.Errorf("WithConnectExisting: DebugPort = %d, want 9222", c.DebugPort)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "headless: false\nviewportWidth: 1024\nviewportHeight: 768\nconsentPolicy: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := config.LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML(%q) error: %v", path, err)
	}
	if c.Headless {
		t.Error("LoadYAML: Headless = true, want false")
	}
	if c.ViewportWidth != 1024 || c.ViewportHeight != 768 {
		t.Errorf("LoadYAML: viewport = (%d, %d), want (1024, 768)", c.ViewportWidth, c.ViewportHeight)
	}
	if c.ConsentPolicy {
		t.Error("LoadYAML: ConsentPolicy = true, want false")
	}
	if c.Logger == nil {
		t.Error("LoadYAML: Logger = nil, want non-nil")
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := config.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadYAML(missing file) error = nil, want non-nil")
	}
}
