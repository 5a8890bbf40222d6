package deck

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/toolworker"
)

type unavailableClient struct{}

func (unavailableClient) Call(context.Context, string, any, any) error {
	return toolworker.ErrUnavailable
}
func (unavailableClient) HealthCheck(context.Context) error { return toolworker.ErrUnavailable }
func (unavailableClient) Close() error                      { return nil }

func TestRectFromXYWH(t *testing.T) {
	rect := RectFromXYWH(10, 20, 200, 100)
	if rect != (Rect{Left: 10, Top: 20, Right: 210, Bottom: 120}) {
		t.Fatalf("unexpected rect: %+v", rect)
	}
}

func TestNewSaveLoad(t *testing.T) {
	ctx := context.Background()
	fake := toolworker.NewFake()
	engine := NewEngine(fake, nil)
	path := filepath.Join(t.TempDir(), "deck.pptx")

	doc, err := engine.New(ctx)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := doc.AppendShape(ctx, 0, "Ellipse", RectFromXYWH(0, 0, 10, 10)); err != nil {
		t.Fatalf("append shape: %v", err)
	}
	if err := doc.Save(ctx, path, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := doc.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := doc.Close(ctx); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, err := doc.SlideCount(ctx); err == nil {
		t.Fatalf("expected closed document to reject calls")
	}

	loaded, err := engine.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer loaded.Close(ctx)
	if loaded.Handle() == doc.Handle() {
		t.Fatalf("expected distinct handles")
	}
	shape, err := loaded.Shape(ctx, 0, 0)
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if shape.ShapeType != "Ellipse" {
		t.Fatalf("unexpected shape: %+v", shape)
	}
	if _, err := loaded.Shape(ctx, 0, 1); !isCode(err, errinfo.CodeIndexOutOfRange) {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestLoadMissingFileIsDomainError(t *testing.T) {
	engine := NewEngine(toolworker.NewFake(), nil)
	_, err := engine.Load(context.Background(), filepath.Join(t.TempDir(), "missing.pptx"))
	if !isCode(err, errinfo.CodeDocumentLoadFailed) {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestEngineErrorMapping(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(toolworker.NewFake(), nil)
	doc, err := engine.New(ctx)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer doc.Close(ctx)

	if _, err := doc.AppendTable(ctx, 0, 0, 0, []float64{10}, []float64{10}); err != nil {
		t.Fatalf("table: %v", err)
	}
	if err := doc.SetText(ctx, 0, 0, "x"); !isCode(err, errinfo.CodeTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	if _, err := doc.GroupShapes(ctx, 0, []int{0}); !isCode(err, errinfo.CodeEngineFailed) {
		t.Fatalf("expected engine failure, got %v", err)
	}
}

func TestUnavailableWorkerIsNotDomainError(t *testing.T) {
	engine := NewEngine(unavailableClient{}, nil)
	_, err := engine.New(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := errinfo.As(err); ok {
		t.Fatalf("expected system error, got domain error %v", err)
	}
	if !errors.Is(err, toolworker.ErrUnavailable) {
		t.Fatalf("expected wrapped unavailable, got %v", err)
	}
}

func isCode(err error, code string) bool {
	info, ok := errinfo.As(err)
	return ok && info.ErrorCode == code
}
