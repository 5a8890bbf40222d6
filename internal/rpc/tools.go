package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"pptmcp/server/internal/dispatch"
)

const APIVersion = "1"

const (
	MethodServerGetInfo  = "ServerGetInfo"
	MethodListOperations = "ListOperations"
)

type OperationInfo struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ReadOnly    bool           `json:"read_only"`
	InputSchema map[string]any `json:"input_schema"`
}

// RegisterOperations exposes every catalog operation as a method of the same
// name. Soft failures are ordinary results with success=false; only hard
// failures become JSON-RPC errors.
func RegisterOperations(server *Server, dispatcher *dispatch.Dispatcher, version string) {
	server.Register(MethodServerGetInfo, func(ctx context.Context, params json.RawMessage) (any, *Error) {
		return map[string]any{
			"name":        "pptmcp",
			"version":     version,
			"api_version": APIVersion,
			"operations":  len(dispatcher.Operations()),
		}, nil
	})
	server.Register(MethodListOperations, func(ctx context.Context, params json.RawMessage) (any, *Error) {
		ops := dispatcher.Operations()
		out := make([]OperationInfo, 0, len(ops))
		for _, op := range ops {
			out = append(out, OperationInfo{
				Name:        op.Name,
				Title:       op.Title,
				Description: op.Description,
				ReadOnly:    op.ReadOnly,
				InputSchema: op.InputSchema(),
			})
		}
		return map[string]any{"operations": out}, nil
	})
	for _, op := range dispatcher.Operations() {
		name := op.Name
		server.Register(name, func(ctx context.Context, params json.RawMessage) (any, *Error) {
			args := map[string]any{}
			if len(params) > 0 && string(params) != "null" {
				if err := json.Unmarshal(params, &args); err != nil {
					return nil, &Error{Code: CodeInvalidParams, Message: "params must be an object"}
				}
			}
			resp, err := dispatcher.Call(ctx, name, args)
			if err != nil {
				code := CodeServerError
				if errors.Is(err, dispatch.ErrUnknownOperation) {
					code = CodeMethodNotFound
				}
				return nil, &Error{Code: code, Message: err.Error()}
			}
			return resp, nil
		})
	}
}
