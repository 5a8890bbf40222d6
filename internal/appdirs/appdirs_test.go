package appdirs

import (
	"path/filepath"
	"testing"
)

func TestDataDirOverride(t *testing.T) {
	t.Setenv("PPTMCP_DATA_DIR", "/tmp/pptmcp-test")
	path, err := DataDir()
	if err != nil {
		t.Fatalf("data dir: %v", err)
	}
	if path != "/tmp/pptmcp-test" {
		t.Fatalf("expected override path, got %s", path)
	}

	if locks := LocksDir(path); locks != "/tmp/pptmcp-test/locks" {
		t.Fatalf("expected locks dir, got %s", locks)
	}
	if config := ConfigFile(path); config != "/tmp/pptmcp-test/config.yaml" {
		t.Fatalf("expected config file, got %s", config)
	}
}

func TestDataDirDefault(t *testing.T) {
	t.Setenv("PPTMCP_DATA_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := DataDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(path) != "pptmcp" {
		t.Fatalf("expected pptmcp dir, got %s", path)
	}
}
