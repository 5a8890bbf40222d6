package appdirs

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "pptmcp"
)

func DataDir() (string, error) {
	if override := os.Getenv("PPTMCP_DATA_DIR"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// LocksDir holds the per-document edit lock files.
func LocksDir(dataDir string) string {
	return filepath.Join(dataDir, "locks")
}

func ConfigFile(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}
