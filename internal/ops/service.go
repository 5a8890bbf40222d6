// Package ops implements one handler per presentation tool. Every handler
// loads the document, applies a single change, saves it back to the same
// path and closes the engine handle on every exit path.
package ops

import (
	"context"
	"fmt"
	"log/slog"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/logging"
	"pptmcp/server/internal/paths"
)

// Result is the payload of a successful operation.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func ok(message string, data map[string]any) Result {
	return Result{Success: true, Message: message, Data: data}
}

type Service struct {
	engine *deck.Engine
	locker *paths.Locker
	logger *slog.Logger
}

// NewService returns handlers backed by engine. A nil locker leaves
// concurrent edits of one file unserialized.
func NewService(engine *deck.Engine, locker *paths.Locker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{engine: engine, locker: locker, logger: logger}
}

// edit runs fn inside a load/save cycle on path.
func (s *Service) edit(ctx context.Context, phase, path string, fn func(doc *deck.Document) error) error {
	return s.withDocument(ctx, phase, path, true, fn)
}

// view loads path for reading. Nothing is saved.
func (s *Service) view(ctx context.Context, phase, path string, fn func(doc *deck.Document) error) error {
	return s.withDocument(ctx, phase, path, false, fn)
}

func (s *Service) withDocument(ctx context.Context, phase, path string, save bool, fn func(doc *deck.Document) error) error {
	unlock, err := s.locker.Lock(ctx, path)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer unlock()

	doc, err := s.engine.Load(ctx, path)
	if err != nil {
		return errinfo.WithPhase(err, phase)
	}
	defer s.closeDocument(ctx, doc)

	if err := fn(doc); err != nil {
		return errinfo.WithPhase(err, phase)
	}
	if !save {
		return nil
	}
	if err := doc.Save(ctx, path, deck.DefaultFormat); err != nil {
		return errinfo.WithPhase(err, phase)
	}
	s.logger.Debug("ops.saved", "path", path, "phase", phase)
	return nil
}

func (s *Service) closeDocument(ctx context.Context, doc *deck.Document) {
	if err := doc.Close(ctx); err != nil {
		s.logger.Warn("ops.close_failed", "doc", doc.Handle(), "error", err.Error())
	}
}

// checkSlide rejects slide only when it exceeds the slide count. An index
// equal to the count is passed on to the engine.
func checkSlide(ctx context.Context, doc *deck.Document, phase string, slide int) error {
	count, err := doc.SlideCount(ctx)
	if err != nil {
		return err
	}
	if slide > count {
		return errinfo.IndexOutOfRange(phase, fmt.Sprintf("length %d greater than slide count", slide))
	}
	return nil
}

// checkShape applies the same lenient comparison to the shape count of a
// slide.
func checkShape(ctx context.Context, doc *deck.Document, phase string, slide, shape int) error {
	count, err := doc.ShapeCount(ctx, slide)
	if err != nil {
		return err
	}
	if shape > count {
		return errinfo.IndexOutOfRange(phase, fmt.Sprintf("length %d greater than shape count", shape))
	}
	return nil
}
