// Package dispatch maps tool names to operation handlers. It validates and
// binds arguments, resolves file paths and turns domain errors into soft
// responses so callers see a normal result whose message starts with
// "Error: ".
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/logging"
	"pptmcp/server/internal/ops"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Response is what a transport renders for a call that did not fail hard.
type Response struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    map[string]any     `json:"data,omitempty"`
	Error   *errinfo.ErrorInfo `json:"error,omitempty"`
}

// Soft reports whether the response carries a domain failure.
func (r Response) Soft() bool {
	return r.Error != nil
}

type Dispatcher struct {
	service *ops.Service
	root    string
	logger  *slog.Logger
	ops     map[string]Operation
	order   []string
}

// New builds a dispatcher over the full catalog. Relative paths in
// arguments are resolved under root.
func New(service *ops.Service, root string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Nop()
	}
	d := &Dispatcher{
		service: service,
		root:    root,
		logger:  logger,
		ops:     make(map[string]Operation),
	}
	for _, op := range Catalog() {
		d.ops[op.Name] = op
		d.order = append(d.order, op.Name)
	}
	return d
}

// Operations returns the catalog in registration order.
func (d *Dispatcher) Operations() []Operation {
	out := make([]Operation, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.ops[name])
	}
	return out
}

func (d *Dispatcher) Lookup(name string) (Operation, bool) {
	op, ok := d.ops[name]
	return op, ok
}

// Names returns the operation names sorted alphabetically.
func (d *Dispatcher) Names() []string {
	names := append([]string{}, d.order...)
	sort.Strings(names)
	return names
}

// Call runs one operation. Domain errors come back as a soft Response with a
// nil error; anything else is returned as is.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (Response, error) {
	op, ok := d.ops[name]
	if !ok {
		d.logger.Error("dispatch.unknown_operation", "operation", name)
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	d.logger.Debug("dispatch.call", "operation", name, "args", logging.RedactAny(args))

	result, err := d.run(ctx, op, args)
	if err == nil {
		d.logger.Info("dispatch.ok", "operation", name, "message", result.Message)
		return Response{Success: result.Success, Message: result.Message, Data: result.Data}, nil
	}
	if info, ok := errinfo.As(err); ok {
		d.logger.Warn("dispatch.soft_error",
			"operation", name,
			"error_code", info.ErrorCode,
			"phase", info.Phase,
			"detail", info.Detail,
		)
		return Response{Success: false, Message: softMessage(info), Error: info}, nil
	}
	d.logger.Error("dispatch.hard_error", "operation", name, "error", err.Error())
	return Response{}, err
}

func (d *Dispatcher) run(ctx context.Context, op Operation, args map[string]any) (ops.Result, error) {
	normalized, err := normalize(op, args, d.root)
	if err != nil {
		return ops.Result{}, err
	}
	return op.run(ctx, d.service, normalized)
}

func softMessage(info *errinfo.ErrorInfo) string {
	return "Error: " + info.Error()
}
