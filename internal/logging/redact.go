package logging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxLoggedString is the longest string value logged verbatim. Longer values
// such as HTML fragments are cut and annotated with their length.
const MaxLoggedString = 256

var secretKeys = map[string]bool{
	"api_key":           true,
	"apikey":            true,
	"auth_token":        true,
	"authorization":     true,
	"password":          true,
	"pptmcp_auth_token": true,
	"secret":            true,
	"token":             true,
}

// RedactValue keeps only the last four characters of a credential. A
// "Bearer " scheme prefix survives.
func RedactValue(value string) string {
	value = strings.TrimSpace(value)
	scheme := ""
	if len(value) > 7 && strings.EqualFold(value[:7], "bearer ") {
		scheme, value = "Bearer ", value[7:]
	}
	switch {
	case value == "":
		return scheme
	case len(value) <= 4:
		return scheme + "****"
	}
	return scheme + "****" + value[len(value)-4:]
}

// RedactAny returns a copy of value that is safe to log: credentials under
// secret keys are masked and long strings are truncated, at any depth.
func RedactAny(value any) any {
	return redact("", value)
}

func redact(key string, value any) any {
	if key != "" && isSecretKey(key) {
		if s, ok := value.(string); ok {
			return RedactValue(s)
		}
		return RedactValue(fmt.Sprint(value))
	}
	switch typed := value.(type) {
	case string:
		return truncate(typed)
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = redact(k, v)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			out[k] = redact(k, v).(string)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = redact("", v)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		for i, v := range typed {
			out[i] = truncate(v)
		}
		return out
	}
	return value
}

// RedactJSON decodes raw and redacts it. Undecodable input is logged as a
// truncated string.
func RedactJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return truncate(strings.TrimSpace(string(raw)))
	}
	return RedactAny(payload)
}

// RedactHeader masks credentials in an HTTP header value.
func RedactHeader(name, value string) string {
	if isSecretKey(name) {
		return RedactValue(value)
	}
	return value
}

func isSecretKey(key string) bool {
	return secretKeys[strings.ToLower(strings.TrimSpace(key))]
}

func truncate(value string) string {
	if len(value) <= MaxLoggedString {
		return value
	}
	return fmt.Sprintf("%s...(%d bytes)", value[:MaxLoggedString], len(value))
}
