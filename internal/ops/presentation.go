package ops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/diff"
	"pptmcp/server/internal/errinfo"
)

// titleRoles are the placeholder roles collected by GetShapeTitles.
var titleRoles = map[string]bool{
	"Title":         true,
	"CenteredTitle": true,
	"Subtitle":      true,
}

// CreatePresentation loads the file when it exists and otherwise saves a new
// engine-default presentation there, creating parent directories.
func (s *Service) CreatePresentation(ctx context.Context, p FileParams) (Result, error) {
	phase := errinfo.PhasePresentation
	unlock, err := s.locker.Lock(ctx, p.Filepath)
	if err != nil {
		return Result{}, fmt.Errorf("lock %s: %w", p.Filepath, err)
	}
	defer unlock()

	_, statErr := os.Stat(p.Filepath)
	switch {
	case statErr == nil:
		doc, err := s.engine.Load(ctx, p.Filepath)
		if err != nil {
			return Result{}, errinfo.WithPhase(err, phase)
		}
		s.closeDocument(ctx, doc)
		return ok("Created presentation at "+p.Filepath, map[string]any{"path": p.Filepath, "created": false}), nil
	case !errors.Is(statErr, fs.ErrNotExist):
		return Result{}, errinfo.DocumentLoadFailed(phase, statErr.Error())
	}

	if err := os.MkdirAll(filepath.Dir(p.Filepath), 0o755); err != nil {
		return Result{}, errinfo.FileWriteFailed(phase, err.Error())
	}
	doc, err := s.engine.New(ctx)
	if err != nil {
		return Result{}, errinfo.WithPhase(err, phase)
	}
	defer s.closeDocument(ctx, doc)
	if err := doc.Save(ctx, p.Filepath, deck.DefaultFormat); err != nil {
		return Result{}, errinfo.WithPhase(err, phase)
	}
	s.logger.Info("ops.presentation_created", "path", p.Filepath)
	return ok("Created presentation at "+p.Filepath, map[string]any{"path": p.Filepath, "created": true}), nil
}

// GetPresentationInfo describes every slide and shape without modifying the
// file.
func (s *Service) GetPresentationInfo(ctx context.Context, p FileParams) (Result, error) {
	var data map[string]any
	err := s.view(ctx, errinfo.PhasePresentation, p.Filepath, func(doc *deck.Document) error {
		info, err := doc.Info(ctx)
		if err != nil {
			return err
		}
		slides := make([]map[string]any, 0, info.SlideCount)
		for idx := 0; idx < info.SlideCount; idx++ {
			shapes, err := doc.Shapes(ctx, idx)
			if err != nil {
				return err
			}
			slides = append(slides, map[string]any{"index": idx, "shape_count": len(shapes), "shapes": shapes})
		}
		data = map[string]any{
			"path":         p.Filepath,
			"slide_count":  info.SlideCount,
			"master_count": info.MasterCount,
			"slides":       slides,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("%d slides", data["slide_count"]), data), nil
}

// GetShapeTitles writes the text of every Title, CenteredTitle and Subtitle
// placeholder to the output file, one line per title. SmartArt shapes are
// skipped whatever their placeholder role.
func (s *Service) GetShapeTitles(ctx context.Context, p OutputParams) (Result, error) {
	phase := errinfo.PhaseShape
	titles := []string{}
	err := s.view(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		count, err := doc.SlideCount(ctx)
		if err != nil {
			return err
		}
		for slide := 0; slide < count; slide++ {
			shapes, err := doc.Shapes(ctx, slide)
			if err != nil {
				return err
			}
			for _, shape := range shapes {
				if shape.Kind == deck.KindSmartArt || !titleRoles[shape.Placeholder] {
					continue
				}
				titles = append(titles, shape.Text)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	var buf strings.Builder
	for _, title := range titles {
		buf.WriteString(title)
		buf.WriteString("\n")
	}
	if err := writeOutput(p.OutputFilepath, []byte(buf.String())); err != nil {
		return Result{}, errinfo.FileWriteFailed(phase, err.Error())
	}
	return ok(fmt.Sprintf("Wrote %d titles to %s", len(titles), p.OutputFilepath), map[string]any{
		"titles":      titles,
		"output_file": p.OutputFilepath,
	}), nil
}

// ComparePresentations diffs the slide text of two presentations.
func (s *Service) ComparePresentations(ctx context.Context, p CompareParams) (Result, error) {
	phase := errinfo.PhasePresentation
	before, err := s.extractText(ctx, phase, p.Filepath)
	if err != nil {
		return Result{}, err
	}
	after, err := s.extractText(ctx, phase, p.OtherFilepath)
	if err != nil {
		return Result{}, err
	}
	comparison := diff.Compare(before, after, diff.MaxDiffLines, p.Context)
	message := "Presentations have identical text"
	switch {
	case comparison.Truncated:
		message = "Presentations are too large to compare"
	case !comparison.Identical:
		message = fmt.Sprintf("%d lines added, %d lines removed", comparison.Added, comparison.Removed)
	}
	return ok(message, map[string]any{
		"source_file": p.Filepath,
		"other_file":  p.OtherFilepath,
		"comparison":  comparison,
	}), nil
}

func (s *Service) extractText(ctx context.Context, phase, path string) (string, error) {
	var buf strings.Builder
	err := s.view(ctx, phase, path, func(doc *deck.Document) error {
		count, err := doc.SlideCount(ctx)
		if err != nil {
			return err
		}
		for slide := 0; slide < count; slide++ {
			fmt.Fprintf(&buf, "# slide %d\n", slide+1)
			shapes, err := doc.Shapes(ctx, slide)
			if err != nil {
				return err
			}
			for _, shape := range shapes {
				if shape.Text == "" {
					continue
				}
				buf.WriteString(shape.Text)
				buf.WriteString("\n")
			}
		}
		return nil
	})
	return buf.String(), err
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
