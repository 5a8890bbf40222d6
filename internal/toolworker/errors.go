package toolworker

import (
	"errors"
	"fmt"
	"strings"
)

const CodeToolWorkerUnavailable = "TOOL_WORKER_UNAVAILABLE"

// ErrUnavailable means no worker process could serve the call: it is not
// installed, failed to start, exited mid-call or exhausted its restarts.
var ErrUnavailable = errors.New("tool worker unavailable")

// RemoteError is a failure the worker reported for one call. The worker
// stays usable after returning one.
type RemoteError struct {
	Code    string
	Message string
}

func newRemoteError(code, message string) *RemoteError {
	return &RemoteError{Code: code, Message: message}
}

func (e *RemoteError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Code == "":
		return e.Message
	case e.Message == "":
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// wireError is the JSON-RPC error object of a worker reply.
type wireError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (w *wireError) err() error {
	code, _ := w.Data["error_code"].(string)
	if code == "" && strings.EqualFold(w.Message, CodeToolWorkerUnavailable) {
		code = CodeToolWorkerUnavailable
	}
	if code == CodeToolWorkerUnavailable {
		return ErrUnavailable
	}
	return newRemoteError(code, w.Message)
}
