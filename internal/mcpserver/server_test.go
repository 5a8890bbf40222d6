package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/server"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/dispatch"
	"pptmcp/server/internal/ops"
	"pptmcp/server/internal/toolworker"
)

type rpcReply struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolReply struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StructuredContent map[string]any `json:"structuredContent"`
	IsError           bool           `json:"isError"`
}

func newTestServer(t *testing.T, client toolworker.Client) *server.MCPServer {
	t.Helper()
	service := ops.NewService(deck.NewEngine(client, nil), nil, nil)
	s, err := New(dispatch.New(service, t.TempDir(), nil), "test", nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	initialize := `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`
	call(t, s, initialize)
	return s
}

func call(t *testing.T, s *server.MCPServer, message string) rpcReply {
	t.Helper()
	raw, err := json.Marshal(s.HandleMessage(context.Background(), json.RawMessage(message)))
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	var reply rpcReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		t.Fatalf("decode reply %s: %v", raw, err)
	}
	return reply
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) rpcReply {
	t.Helper()
	params, err := json.Marshal(map[string]any{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	return call(t, s, fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":%s}`, params))
}

func decodeTool(t *testing.T, reply rpcReply) toolReply {
	t.Helper()
	if reply.Error != nil {
		t.Fatalf("unexpected rpc error %+v", reply.Error)
	}
	var out toolReply
	if err := json.Unmarshal(reply.Result, &out); err != nil {
		t.Fatalf("decode tool result %s: %v", reply.Result, err)
	}
	if len(out.Content) != 1 || out.Content[0].Type != "text" {
		t.Fatalf("expected one text content, got %+v", out.Content)
	}
	return out
}

func TestToolsList(t *testing.T) {
	s := newTestServer(t, toolworker.NewFake())
	reply := call(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if reply.Error != nil {
		t.Fatalf("unexpected error %+v", reply.Error)
	}
	var listed struct {
		Tools []struct {
			Name        string         `json:"name"`
			InputSchema map[string]any `json:"inputSchema"`
			Annotations struct {
				Title        string `json:"title"`
				ReadOnlyHint *bool  `json:"readOnlyHint"`
			} `json:"annotations"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(reply.Result, &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Tools) != len(dispatch.Catalog()) {
		t.Fatalf("expected %d tools, got %d", len(dispatch.Catalog()), len(listed.Tools))
	}
	for _, tool := range listed.Tools {
		if tool.InputSchema["type"] != "object" {
			t.Fatalf("%s: unexpected schema %v", tool.Name, tool.InputSchema)
		}
		if tool.Annotations.Title == "" || tool.Annotations.ReadOnlyHint == nil {
			t.Fatalf("%s: missing annotations", tool.Name)
		}
		if tool.Name == "get_presentation_info" && !*tool.Annotations.ReadOnlyHint {
			t.Fatalf("get_presentation_info should be read-only")
		}
	}
}

func TestToolCallSuccess(t *testing.T) {
	s := newTestServer(t, toolworker.NewFake())
	if out := decodeTool(t, callTool(t, s, "create_presentation", map[string]any{"filepath": "deck.pptx"})); out.IsError {
		t.Fatalf("unexpected error result %+v", out)
	}

	out := decodeTool(t, callTool(t, s, "create_slide", map[string]any{"filepath": "deck.pptx"}))
	if out.IsError || out.StructuredContent["success"] != true {
		t.Fatalf("unexpected result %+v", out)
	}
	var fromText dispatch.Response
	if err := json.Unmarshal([]byte(out.Content[0].Text), &fromText); err != nil {
		t.Fatalf("text content should be JSON: %v", err)
	}
	if fromText.Message != "append successfully" || fromText.Data["slide_num"] != float64(1) {
		t.Fatalf("unexpected response %+v", fromText)
	}
}

func TestToolCallSoftError(t *testing.T) {
	s := newTestServer(t, toolworker.NewFake())
	decodeTool(t, callTool(t, s, "create_presentation", map[string]any{"filepath": "deck.pptx"}))

	out := decodeTool(t, callTool(t, s, "delete_slide", map[string]any{"filepath": "deck.pptx", "slide_num": 7}))
	if out.IsError {
		t.Fatalf("soft failures must not be tool errors")
	}
	if !strings.HasPrefix(out.Content[0].Text, "Error: ") {
		t.Fatalf("expected soft error message, got %q", out.Content[0].Text)
	}
	if out.StructuredContent != nil {
		t.Fatalf("soft failures carry no structured content")
	}
}

type downClient struct{}

func (downClient) Call(context.Context, string, any, any) error { return toolworker.ErrUnavailable }
func (downClient) HealthCheck(context.Context) error            { return toolworker.ErrUnavailable }
func (downClient) Close() error                                 { return nil }

func TestToolCallHardError(t *testing.T) {
	s := newTestServer(t, downClient{})
	reply := callTool(t, s, "create_presentation", map[string]any{"filepath": "deck.pptx"})
	if reply.Error == nil {
		t.Fatalf("expected transport error, got result %s", reply.Result)
	}
	if !strings.Contains(reply.Error.Message, toolworker.ErrUnavailable.Error()) {
		t.Fatalf("unexpected error message %q", reply.Error.Message)
	}
}
