// Package envfile loads KEY=VALUE pairs from a .env file into the process
// environment before configuration is read.
package envfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const fileName = ".env"

// Result reports what Load did. Variables already present in the process
// environment are never overridden.
type Result struct {
	Path   string
	Loaded bool
	Keys   int
	Err    error
}

// Load reads PPTMCP_ENV_PATH when set, otherwise the nearest .env found by
// walking up from the working directory.
func Load() Result {
	if override := strings.TrimSpace(os.Getenv("PPTMCP_ENV_PATH")); override != "" {
		return LoadPath(override)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Result{Err: err}
	}
	return LoadFrom(cwd)
}

// LoadFrom looks for a .env in dir and its parents. Finding none is not an
// error.
func LoadFrom(dir string) Result {
	path := findUpwards(dir, fileName)
	if path == "" {
		return Result{}
	}
	return LoadPath(path)
}

func LoadPath(path string) Result {
	res := Result{Path: path}
	file, err := os.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer file.Close()
	res.Loaded = true

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			res.Err = err
			return res
		}
		res.Keys++
	}
	if err := scanner.Err(); err != nil {
		res.Err = err
	}
	return res
}

func parseLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, parseValue(strings.TrimSpace(value)), true
}

// parseValue strips matching quotes. Unquoted values lose a trailing
// " # comment".
func parseValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

func findUpwards(start, name string) string {
	dir := start
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
