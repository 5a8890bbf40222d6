package errinfo

import "errors"

// ErrorInfo is the structured domain error returned by operation handlers.
// Anything that is not an *ErrorInfo is treated as a system failure.
type ErrorInfo struct {
	ErrorCode string `json:"error_code"`
	Phase     string `json:"phase,omitempty"`
	Retryable bool   `json:"retryable"`
	Detail    string `json:"detail,omitempty"`
}

func (e *ErrorInfo) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	return e.ErrorCode
}

const (
	CodeDocumentLoadFailed    = "DOCUMENT_LOAD_FAILED"
	CodeIndexOutOfRange       = "INDEX_OUT_OF_RANGE"
	CodeTypeMismatch          = "TYPE_MISMATCH"
	CodeUnsupportedValue      = "UNSUPPORTED_VALUE"
	CodeEngineFailed          = "ENGINE_FAILED"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeFileWriteFailed       = "FILE_WRITE_FAILED"
	CodeToolWorkerUnavailable = "TOOL_WORKER_UNAVAILABLE"
)

const (
	PhasePresentation = "presentation"
	PhaseSlide        = "slide"
	PhaseShape        = "shape"
	PhaseChart        = "chart"
	PhaseSmartArt     = "smartart"
	PhaseTable        = "table"
	PhaseConversion   = "conversion"
)

// As reports whether err carries a domain error and returns it.
func As(err error) (*ErrorInfo, bool) {
	var info *ErrorInfo
	if errors.As(err, &info) && info != nil {
		return info, true
	}
	return nil, false
}

// WithPhase fills in the phase of a domain error that was raised below the
// handler layer. Errors that already carry a phase are left alone.
func WithPhase(err error, phase string) error {
	info, ok := As(err)
	if !ok || info.Phase != "" {
		return err
	}
	copied := *info
	copied.Phase = phase
	return &copied
}

func DocumentLoadFailed(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeDocumentLoadFailed,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func IndexOutOfRange(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeIndexOutOfRange,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func TypeMismatch(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeTypeMismatch,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func UnsupportedValue(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeUnsupportedValue,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func EngineFailed(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeEngineFailed,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func ValidationFailed(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeValidationFailed,
		Phase:     phase,
		Retryable: false,
		Detail:    detail,
	}
}

func FileWriteFailed(phase, detail string) *ErrorInfo {
	return &ErrorInfo{
		ErrorCode: CodeFileWriteFailed,
		Phase:     phase,
		Retryable: true,
		Detail:    detail,
	}
}
