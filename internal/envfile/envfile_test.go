package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromParentDirectory(t *testing.T) {
	root := t.TempDir()
	content := "# storage\nexport PPTMCP_TEST_ROOT=\"/srv/decks\"\nPPTMCP_TEST_ADDR=:9000 # http\nPPTMCP_TEST_KEEP=file\nnot a pair\nBAD KEY=1\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv("PPTMCP_TEST_KEEP", "process")
	t.Setenv("PPTMCP_TEST_ROOT", "")
	t.Setenv("PPTMCP_TEST_ADDR", "")
	os.Unsetenv("PPTMCP_TEST_ROOT")
	os.Unsetenv("PPTMCP_TEST_ADDR")

	res := LoadFrom(nested)
	if res.Err != nil || !res.Loaded {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Keys != 2 {
		t.Fatalf("expected 2 keys, got %d", res.Keys)
	}
	if got := os.Getenv("PPTMCP_TEST_ROOT"); got != "/srv/decks" {
		t.Fatalf("unexpected root %q", got)
	}
	if got := os.Getenv("PPTMCP_TEST_ADDR"); got != ":9000" {
		t.Fatalf("expected inline comment stripped, got %q", got)
	}
	if got := os.Getenv("PPTMCP_TEST_KEEP"); got != "process" {
		t.Fatalf("process environment should win, got %q", got)
	}
}

func TestLoadFromWithoutFile(t *testing.T) {
	res := LoadFrom(t.TempDir())
	if res.Loaded || res.Err != nil {
		t.Fatalf("expected nothing loaded, got %+v", res)
	}
}

func TestParseValue(t *testing.T) {
	cases := map[string]string{
		`"quoted # kept"`: "quoted # kept",
		`'single'`:        "single",
		`plain # note`:    "plain",
		`a#b`:             "a#b",
		``:                "",
	}
	for input, want := range cases {
		if got := parseValue(input); got != want {
			t.Fatalf("parseValue(%q) = %q, want %q", input, got, want)
		}
	}
}
