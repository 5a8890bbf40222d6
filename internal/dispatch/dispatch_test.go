package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/ops"
	"pptmcp/server/internal/toolworker"
)

type unavailableClient struct{}

func (unavailableClient) Call(context.Context, string, any, any) error {
	return toolworker.ErrUnavailable
}
func (unavailableClient) HealthCheck(context.Context) error { return toolworker.ErrUnavailable }
func (unavailableClient) Close() error                      { return nil }

func newDispatcher(t *testing.T, client toolworker.Client) (*Dispatcher, string) {
	t.Helper()
	root := t.TempDir()
	service := ops.NewService(deck.NewEngine(client, nil), nil, nil)
	return New(service, root, nil), root
}

func mustCall(t *testing.T, d *Dispatcher, name string, args map[string]any) Response {
	t.Helper()
	resp, err := d.Call(context.Background(), name, args)
	if err != nil {
		t.Fatalf("%s: unexpected hard error: %v", name, err)
	}
	return resp
}

func TestCatalogCoversEveryTool(t *testing.T) {
	want := []string{
		"create_presentation", "create_slide", "delete_slide", "add_shape", "delete_shape",
		"add_text_shape", "add_chart", "create_smartart", "shape_to_image", "create_table",
		"add_text_table", "set_shape_fill_picture", "get_shape_titles", "group_shapes",
		"ungroup_shapes", "change_slide_position", "add_image_in_master", "set_alignment",
		"append_html", "set_autofittext", "set_verticaltext", "set_text_color", "convert_pptx",
		"get_presentation_info", "compare_presentations",
	}
	d, _ := newDispatcher(t, toolworker.NewFake())
	if got := len(d.Operations()); got != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), got)
	}
	for _, name := range want {
		op, ok := d.Lookup(name)
		if !ok {
			t.Fatalf("missing operation %s", name)
		}
		if op.run == nil || op.Phase == "" || op.Description == "" {
			t.Fatalf("operation %s is incomplete", name)
		}
		seen := map[string]bool{}
		for _, param := range op.Params {
			if seen[param.Name] {
				t.Fatalf("%s declares %s twice", name, param.Name)
			}
			seen[param.Name] = true
			if param.Required && param.Default != nil {
				t.Fatalf("%s.%s is required and has a default", name, param.Name)
			}
		}
		if !seen["filepath"] {
			t.Fatalf("%s has no filepath param", name)
		}
	}
}

func TestInputSchema(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	op, _ := d.Lookup("add_shape")
	raw, err := op.RawInputSchema()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var schema struct {
		Type       string                    `json:"type"`
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if schema.Type != "object" || len(schema.Required) != 1 || schema.Required[0] != "filepath" {
		t.Fatalf("unexpected schema %s", raw)
	}
	if schema.Properties["width"]["default"] != 200.0 {
		t.Fatalf("expected width default 200, got %v", schema.Properties["width"]["default"])
	}
	if schema.Properties["slide_num"]["minimum"] != 0.0 {
		t.Fatalf("expected slide_num minimum, got %v", schema.Properties["slide_num"])
	}
	if _, ok := schema.Properties["shape_type"]["examples"]; !ok {
		t.Fatalf("expected shape_type examples")
	}

	table, _ := d.Lookup("create_table")
	widths := table.InputSchema()["properties"].(map[string]any)["widths"].(map[string]any)
	if widths["type"] != "array" {
		t.Fatalf("expected widths to be an array, got %v", widths)
	}
}

func TestUnknownOperationIsHard(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	_, err := d.Call(context.Background(), "format_disk", nil)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestRelativePathsResolveUnderRoot(t *testing.T) {
	d, root := newDispatcher(t, toolworker.NewFake())
	resp := mustCall(t, d, "create_presentation", map[string]any{"filepath": "decks/a.pptx"})
	if !resp.Success {
		t.Fatalf("create failed: %+v", resp)
	}
	want := filepath.Join(root, "decks", "a.pptx")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected file under root: %v", err)
	}
	if resp.Message != "Created presentation at "+want {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestDefaultsApplied(t *testing.T) {
	d, root := newDispatcher(t, toolworker.NewFake())
	mustCall(t, d, "create_presentation", map[string]any{"filepath": "a.pptx"})
	resp := mustCall(t, d, "add_shape", map[string]any{"filepath": "a.pptx", "shape_type": nil})
	if !resp.Success || resp.Data["shape_type"] != "Rectangle" {
		t.Fatalf("unexpected response %+v", resp)
	}
	model, err := toolworker.ReadFakeDeck(filepath.Join(root, "a.pptx"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	shape := model.Slides[0].Shapes[0]
	if shape.Bounds != (toolworker.Rect{Right: 200, Bottom: 200}) || shape.Fill != nil || shape.Line != nil {
		t.Fatalf("unexpected shape %+v", shape)
	}

	resp = mustCall(t, d, "create_table", map[string]any{"filepath": "a.pptx", "slide_num": 0})
	if resp.Data["rows"] != 2 || resp.Data["columns"] != 2 {
		t.Fatalf("expected 2x2 default table, got %+v", resp.Data)
	}
}

func TestValidationFailuresAreSoft(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	mustCall(t, d, "create_presentation", map[string]any{"filepath": "a.pptx"})

	cases := []struct {
		name string
		op   string
		args map[string]any
		code string
		text string
	}{
		{"missing", "delete_slide", map[string]any{"filepath": "a.pptx"}, errinfo.CodeValidationFailed, "missing required parameter slide_num"},
		{"wrong type", "delete_slide", map[string]any{"filepath": "a.pptx", "slide_num": "1"}, errinfo.CodeValidationFailed, "expected integer"},
		{"fraction", "delete_slide", map[string]any{"filepath": "a.pptx", "slide_num": 1.5}, errinfo.CodeValidationFailed, "expected integer"},
		{"negative", "delete_slide", map[string]any{"filepath": "a.pptx", "slide_num": -1}, errinfo.CodeIndexOutOfRange, "must not be negative"},
		{"negative list", "group_shapes", map[string]any{"filepath": "a.pptx", "slide_num": 0, "shape_num_list": []any{0, -2}}, errinfo.CodeIndexOutOfRange, "must not be negative"},
		{"bad list", "create_table", map[string]any{"filepath": "a.pptx", "slide_num": 0, "widths": "50"}, errinfo.CodeValidationFailed, "expected array"},
	}
	for _, tc := range cases {
		resp := mustCall(t, d, tc.op, tc.args)
		if resp.Success || resp.Error == nil || resp.Error.ErrorCode != tc.code {
			t.Fatalf("%s: unexpected response %+v", tc.name, resp)
		}
		if !strings.HasPrefix(resp.Message, "Error: ") || !strings.Contains(resp.Message, tc.text) {
			t.Fatalf("%s: unexpected message %q", tc.name, resp.Message)
		}
	}
}

func TestJSONNumbersAreAccepted(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	mustCall(t, d, "create_presentation", map[string]any{"filepath": "a.pptx"})
	mustCall(t, d, "create_slide", map[string]any{"filepath": "a.pptx"})

	var args map[string]any
	if err := json.Unmarshal([]byte(`{"filepath":"a.pptx","slide_num":1.0}`), &args); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp := mustCall(t, d, "delete_slide", args)
	if !resp.Success || resp.Message != "delete 1 slide successfully" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestHandlerDomainErrorsAreSoft(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	mustCall(t, d, "create_presentation", map[string]any{"filepath": "a.pptx"})

	resp := mustCall(t, d, "delete_slide", map[string]any{"filepath": "a.pptx", "slide_num": 5})
	if resp.Success || resp.Message != "Error: length 5 greater than slide count" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Error.Phase != errinfo.PhaseSlide {
		t.Fatalf("expected slide phase, got %q", resp.Error.Phase)
	}

	resp = mustCall(t, d, "convert_pptx", map[string]any{"filepath": "a.pptx", "output_filepath": "a.doc", "format_type": "doc"})
	if resp.Success || resp.Error.ErrorCode != errinfo.CodeUnsupportedValue {
		t.Fatalf("unexpected response %+v", resp)
	}

	resp = mustCall(t, d, "create_slide", map[string]any{"filepath": "missing.pptx"})
	if resp.Success || resp.Error.ErrorCode != errinfo.CodeDocumentLoadFailed {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestInfrastructureErrorsAreHard(t *testing.T) {
	d, root := newDispatcher(t, unavailableClient{})
	path := filepath.Join(root, "a.pptx")
	if err := toolworker.WriteFakeDeck(path, toolworker.NewFakeDeck()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := d.Call(context.Background(), "create_slide", map[string]any{"filepath": path})
	if !errors.Is(err, toolworker.ErrUnavailable) {
		t.Fatalf("expected unavailable worker to surface, got %v", err)
	}
	if _, ok := errinfo.As(err); ok {
		t.Fatalf("expected a non-domain error, got %v", err)
	}
}

func TestUndeclaredArgumentsAreIgnored(t *testing.T) {
	d, _ := newDispatcher(t, toolworker.NewFake())
	resp := mustCall(t, d, "create_presentation", map[string]any{"filepath": "a.pptx", "verbose": true})
	if !resp.Success {
		t.Fatalf("unexpected response %+v", resp)
	}
}
