package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pptmcp/server/internal/dispatch"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestToolsJSON(t *testing.T) {
	out, err := run(t, "", "tools", "--format", "json")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	var tools []toolInfo
	if err := json.Unmarshal([]byte(out), &tools); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tools) != len(dispatch.Catalog()) || tools[0].Name != "create_presentation" {
		t.Fatalf("unexpected catalog %+v", tools)
	}
}

func TestToolsYAML(t *testing.T) {
	out, err := run(t, "", "tools")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	var tools []toolInfo
	if err := yaml.Unmarshal([]byte(out), &tools); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tools) != len(dispatch.Catalog()) {
		t.Fatalf("expected %d tools, got %d", len(dispatch.Catalog()), len(tools))
	}
	if _, err := run(t, "", "tools", "--format", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestCallWithFakeWorker(t *testing.T) {
	t.Setenv("PPTMCP_ENV_PATH", filepath.Join(t.TempDir(), "none.env"))
	root := t.TempDir()
	common := []string{"--fake-worker", "--storage-root", root, "--data-dir", t.TempDir()}

	out, err := run(t, "", append([]string{"call", "create_presentation", "--args", `{"filepath":"deck.pptx"}`}, common...)...)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	var resp dispatch.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, err := os.Stat(filepath.Join(root, "deck.pptx")); err != nil {
		t.Fatalf("expected deck written: %v", err)
	}

	out, err = run(t, `{"filepath":"deck.pptx","slide_num":9}`, append([]string{"call", "delete_slide", "--args", "-"}, common...)...)
	if err != nil {
		t.Fatalf("soft failures should not fail the command: %v", err)
	}
	resp = dispatch.Response{}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if resp.Success || !strings.HasPrefix(resp.Message, "Error: ") {
		t.Fatalf("expected soft failure, got %+v", resp)
	}

	if _, err := run(t, "", append([]string{"call", "no_such_tool"}, common...)...); err == nil {
		t.Fatalf("expected error for unknown tool")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "pptmcp dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
