// Package rpc serves newline-delimited JSON-RPC 2.0 over a pair of streams.
package rpc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"pptmcp/server/internal/logging"
)

const (
	jsonRPCVersion = "2.0"
	maxMessageSize = 10 * 1024 * 1024
)

// Error codes follow JSON-RPC 2.0; CodeServerError covers handler failures.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeServerError    = -32000
)

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	APIVer  string          `json:"api_version,omitempty"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorPayload   `json:"error,omitempty"`
}

type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type Handler func(ctx context.Context, params json.RawMessage) (any, *Error)

// Error is a handler failure. A zero Code is sent as CodeServerError.
type Error struct {
	Code    int
	Message string
	Data    any
}

type Server struct {
	apiVersion string
	reader     *bufio.Reader
	writer     *bufio.Writer
	mu         sync.Mutex
	inflight   sync.WaitGroup
	handlers   map[string]Handler
	logger     *slog.Logger
}

func NewServer(apiVersion string, r io.Reader, w io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{
		apiVersion: apiVersion,
		reader:     bufio.NewReaderSize(r, 64*1024),
		writer:     bufio.NewWriter(w),
		handlers:   make(map[string]Handler),
		logger:     logger,
	}
}

func (s *Server) Register(method string, handler Handler) {
	s.handlers[method] = handler
}

// Methods lists the registered method names.
func (s *Server) Methods() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	return names
}

// Serve reads requests until EOF or until ctx is done, then waits for the
// requests already running to send their responses.
func (s *Server) Serve(ctx context.Context) error {
	defer s.inflight.Wait()

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for {
			line, err := s.reader.ReadBytes('\n')
			if len(line) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					readErr <- ctx.Err()
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if errors.Is(err, io.EOF) {
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Error("rpc.read_failed", "error", err.Error())
				return err
			}
			s.dispatch(ctx, line)
		}
	}
}

func (s *Server) dispatch(ctx context.Context, line []byte) {
	if len(bytes.TrimSpace(line)) == 0 {
		return
	}
	if len(line) > maxMessageSize {
		s.logger.Warn("rpc.message_too_large", "bytes", len(line))
		s.sendError(nil, CodeInvalidRequest, "message too large", nil)
		return
	}
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("rpc.invalid_json", "error", err.Error())
		s.sendError(nil, CodeParseError, "invalid json", nil)
		return
	}
	if req.JSONRPC != jsonRPCVersion {
		s.logger.Warn("rpc.invalid_version", "version", req.JSONRPC)
		s.sendError(req.ID, CodeInvalidRequest, "invalid jsonrpc version", nil)
		return
	}
	if req.APIVer != "" && req.APIVer != s.apiVersion {
		s.logger.Warn("rpc.incompatible_version", "requested", req.APIVer, "expected", s.apiVersion)
		s.sendError(req.ID, CodeInvalidRequest, "incompatible api_version", map[string]string{"expected": s.apiVersion})
		return
	}
	handler, ok := s.handlers[req.Method]
	if !ok {
		s.logger.Warn("rpc.method_not_found", "method", req.Method)
		s.sendError(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method), nil)
		return
	}
	s.logger.Debug("rpc.request", "method", req.Method, "id", string(req.ID), "params", logging.RedactJSON(req.Params))
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.handleRequest(ctx, req, handler)
	}()
}

func (s *Server) handleRequest(ctx context.Context, req Request, handler Handler) {
	result, err := handler(ctx, req.Params)
	if req.ID == nil {
		return
	}
	if err != nil {
		code := err.Code
		if code == 0 {
			code = CodeServerError
		}
		s.logger.Error("rpc.response_error", "method", req.Method, "id", string(req.ID), "error", err.Message)
		s.sendError(req.ID, code, err.Message, err.Data)
		return
	}
	s.logger.Debug("rpc.response", "method", req.Method, "id", string(req.ID))
	s.send(Response{JSONRPC: jsonRPCVersion, ID: req.ID, Result: result})
}

func (s *Server) sendError(id json.RawMessage, code int, message string, data any) {
	s.send(Response{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Error:   &ErrorPayload{Code: code, Message: message, Data: data},
	})
}

func (s *Server) send(payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("rpc.encode_failed", "error", err.Error())
		return
	}
	_, _ = s.writer.Write(append(data, '\n'))
	_ = s.writer.Flush()
}
