// Package deck is the typed view of a presentation held by the document
// engine. Every method is one worker call; nothing is cached between calls.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/logging"
	"pptmcp/server/internal/toolworker"
)

type (
	Rect      = toolworker.Rect
	RGB       = toolworker.RGB
	Fill      = toolworker.Fill
	ShapeInfo = toolworker.ShapeInfo
	Info      = toolworker.PresentationInfo
)

// DefaultFormat is the format in-place edits are saved with.
const DefaultFormat = toolworker.FormatPptx2019

const (
	KindAutoShape = toolworker.KindAutoShape
	KindPicture   = toolworker.KindPicture
	KindTable     = toolworker.KindTable
	KindGroup     = toolworker.KindGroup
	KindChart     = toolworker.KindChart
	KindSmartArt  = toolworker.KindSmartArt
)

const (
	FillNone    = toolworker.FillNone
	FillSolid   = toolworker.FillSolid
	FillPicture = toolworker.FillPicture
)

// PictureStretch stretches a picture fill to the shape bounds.
const PictureStretch = "stretch"

// RectFromXYWH converts an origin and size into left/top/right/bottom.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

type Engine struct {
	client toolworker.Client
	logger *slog.Logger
}

func NewEngine(client toolworker.Client, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Engine{client: client, logger: logger}
}

// New binds a fresh engine-default presentation.
func (e *Engine) New(ctx context.Context) (*Document, error) {
	doc := e.bind("")
	if err := e.call(ctx, toolworker.MethodPresentationNew, toolworker.LoadParams{Doc: doc.handle}, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads the presentation at path. Unreadable or corrupt files fail with
// DOCUMENT_LOAD_FAILED.
func (e *Engine) Load(ctx context.Context, path string) (*Document, error) {
	doc := e.bind(path)
	if err := e.call(ctx, toolworker.MethodPresentationLoad, toolworker.LoadParams{Doc: doc.handle, Path: path}, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

func (e *Engine) HealthCheck(ctx context.Context) error {
	return e.client.HealthCheck(ctx)
}

func (e *Engine) bind(path string) *Document {
	return &Document{engine: e, handle: uuid.NewString(), path: path}
}

func (e *Engine) call(ctx context.Context, method string, params any, result any) error {
	if err := e.client.Call(ctx, method, params, result); err != nil {
		mapped := mapEngineError(err)
		e.logger.Debug("deck.call_failed", "method", method, "error", err.Error())
		return mapped
	}
	return nil
}

// mapEngineError turns worker-reported failures into domain errors. Worker
// unavailability, cancellation and decode errors stay system errors.
func mapEngineError(err error) error {
	var remote *toolworker.RemoteError
	if !errors.As(err, &remote) {
		return fmt.Errorf("document engine: %w", err)
	}
	switch remote.Code {
	case toolworker.CodeDocumentLoadFailed:
		return errinfo.DocumentLoadFailed("", remote.Message)
	case toolworker.CodeIndexOutOfRange:
		return errinfo.IndexOutOfRange("", remote.Message)
	case toolworker.CodeTypeMismatch:
		return errinfo.TypeMismatch("", remote.Message)
	default:
		return errinfo.EngineFailed("", remote.Error())
	}
}

// Document is one bound presentation. Close must be called on every path.
type Document struct {
	engine *Engine
	handle string
	path   string
	closed bool
}

func (d *Document) Handle() string { return d.handle }

// Path is the file the document was loaded from, empty for new documents.
func (d *Document) Path() string { return d.path }

// Close releases the handle. It runs even when ctx is already cancelled and
// is safe to call more than once.
func (d *Document) Close(ctx context.Context) error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.call(context.WithoutCancel(ctx), toolworker.MethodPresentationClose, toolworker.Target{Doc: d.handle}, nil)
}

func (d *Document) Save(ctx context.Context, path, format string) error {
	if format == "" {
		format = DefaultFormat
	}
	return d.call(ctx, toolworker.MethodPresentationSave, toolworker.SaveParams{Doc: d.handle, Path: path, Format: format}, nil)
}

func (d *Document) Info(ctx context.Context) (Info, error) {
	var info Info
	err := d.call(ctx, toolworker.MethodPresentationInfo, d.target(0, 0), &info)
	return info, err
}

func (d *Document) SlideCount(ctx context.Context) (int, error) {
	info, err := d.Info(ctx)
	return info.SlideCount, err
}

func (d *Document) MasterCount(ctx context.Context) (int, error) {
	info, err := d.Info(ctx)
	return info.MasterCount, err
}

func (d *Document) call(ctx context.Context, method string, params any, result any) error {
	if d.closed && method != toolworker.MethodPresentationClose {
		return fmt.Errorf("document %s is closed", d.handle)
	}
	return d.engine.call(ctx, method, params, result)
}

func (d *Document) target(slide, shape int) toolworker.Target {
	return toolworker.Target{Doc: d.handle, Slide: slide, Shape: shape}
}
