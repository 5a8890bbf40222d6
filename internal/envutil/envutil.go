package envutil

import (
	"os"
	"strings"
)

func Bool(key string) bool {
	return ParseBool(os.Getenv(key))
}

// LookupBool reports the parsed value of key and whether it is set to a
// non-empty value.
func LookupBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return false, false
	}
	return ParseBool(raw), true
}

// First returns the first non-empty value among keys.
func First(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
