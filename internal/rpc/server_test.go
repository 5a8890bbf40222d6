package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/dispatch"
	"pptmcp/server/internal/ops"
	"pptmcp/server/internal/toolworker"
)

// serve runs the server over input and returns one decoded response per
// output line.
func serve(t *testing.T, server *Server, output *bytes.Buffer) []Response {
	t.Helper()
	if err := server.Serve(context.Background()); err != nil {
		t.Fatalf("serve: %v", err)
	}
	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(output.String()), "\n") {
		if line == "" {
			continue
		}
		var resp Response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("unmarshal %q: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestServerHandlesRequest(t *testing.T) {
	input := "{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"Ping\",\"api_version\":\"1\"}\n"
	var output bytes.Buffer
	server := NewServer("1", strings.NewReader(input), &output, nil)
	server.Register("Ping", func(ctx context.Context, params json.RawMessage) (any, *Error) {
		return map[string]any{"pong": true}, nil
	})

	responses := serve(t, server, &output)
	if len(responses) != 1 {
		t.Fatalf("expected one response, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Fatalf("unexpected error: %v", responses[0].Error)
	}
	result := responses[0].Result.(map[string]any)
	if result["pong"] != true {
		t.Fatalf("expected pong true")
	}
}

func TestServerErrors(t *testing.T) {
	input := strings.Join([]string{
		"not json",
		"",
		"{\"jsonrpc\":\"1.0\",\"id\":2,\"method\":\"Ping\"}",
		"{\"jsonrpc\":\"2.0\",\"id\":3,\"method\":\"Nope\"}",
		"{\"jsonrpc\":\"2.0\",\"id\":4,\"method\":\"Ping\",\"api_version\":\"9\"}",
		"{\"jsonrpc\":\"2.0\",\"id\":5,\"method\":\"Fail\"}",
	}, "\n") + "\n"
	var output bytes.Buffer
	server := NewServer("1", strings.NewReader(input), &output, nil)
	server.Register("Ping", func(ctx context.Context, params json.RawMessage) (any, *Error) {
		return "pong", nil
	})
	server.Register("Fail", func(ctx context.Context, params json.RawMessage) (any, *Error) {
		return nil, &Error{Message: "boom"}
	})

	codes := map[string]int{}
	for _, resp := range serve(t, server, &output) {
		if resp.Error == nil {
			t.Fatalf("expected only errors, got %+v", resp)
		}
		codes[string(resp.ID)] = resp.Error.Code
	}
	want := map[string]int{"": CodeParseError, "2": CodeInvalidRequest, "3": CodeMethodNotFound, "4": CodeInvalidRequest, "5": CodeServerError}
	for id, code := range want {
		if codes[id] != code {
			t.Fatalf("id %q: expected code %d, got %d (all: %v)", id, code, codes[id], codes)
		}
	}
}

func TestRegisterOperations(t *testing.T) {
	root := t.TempDir()
	service := ops.NewService(deck.NewEngine(toolworker.NewFake(), nil), nil, nil)
	dispatcher := dispatch.New(service, root, nil)

	input := strings.Join([]string{
		"{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"ListOperations\"}",
		"{\"jsonrpc\":\"2.0\",\"id\":2,\"method\":\"create_presentation\",\"params\":{\"filepath\":\"a.pptx\"}}",
		"{\"jsonrpc\":\"2.0\",\"id\":3,\"method\":\"create_slide\",\"params\":{\"filepath\":\"missing.pptx\"}}",
		"{\"jsonrpc\":\"2.0\",\"id\":4,\"method\":\"create_slide\",\"params\":[1]}",
	}, "\n") + "\n"
	var output bytes.Buffer
	server := NewServer(APIVersion, strings.NewReader(input), &output, nil)
	RegisterOperations(server, dispatcher, "test")
	if got, want := len(server.Methods()), len(dispatcher.Operations())+2; got != want {
		t.Fatalf("expected %d methods, got %d", want, got)
	}

	byID := map[string]Response{}
	for _, resp := range serve(t, server, &output) {
		byID[string(resp.ID)] = resp
	}

	list := byID["1"].Result.(map[string]any)["operations"].([]any)
	if len(list) != len(dispatcher.Operations()) {
		t.Fatalf("expected %d operations, got %d", len(dispatcher.Operations()), len(list))
	}

	created := byID["2"].Result.(map[string]any)
	if created["success"] != true || created["message"] != "Created presentation at "+filepath.Join(root, "a.pptx") {
		t.Fatalf("unexpected create result %+v", created)
	}

	soft := byID["3"]
	if soft.Error != nil {
		t.Fatalf("domain errors should not be JSON-RPC errors: %+v", soft.Error)
	}
	result := soft.Result.(map[string]any)
	if result["success"] != false || !strings.HasPrefix(result["message"].(string), "Error: ") {
		t.Fatalf("unexpected soft result %+v", result)
	}

	if byID["4"].Error == nil || byID["4"].Error.Code != CodeInvalidParams {
		t.Fatalf("expected invalid params, got %+v", byID["4"])
	}
}
