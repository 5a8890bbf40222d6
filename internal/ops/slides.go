package ops

import (
	"context"
	"fmt"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/errinfo"
)

func (s *Service) CreateSlide(ctx context.Context, p FileParams) (Result, error) {
	var index int
	err := s.edit(ctx, errinfo.PhaseSlide, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.AppendSlide(ctx)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("append successfully", map[string]any{"slide_num": index}), nil
}

// DeleteSlide removes the slide. The guard only rejects indices greater
// than the slide count.
func (s *Service) DeleteSlide(ctx context.Context, p SlideParams) (Result, error) {
	phase := errinfo.PhaseSlide
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		if err := checkSlide(ctx, doc, phase, p.SlideNum); err != nil {
			return err
		}
		return doc.RemoveSlide(ctx, p.SlideNum)
	})
	if err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("delete %d slide successfully", p.SlideNum), nil), nil
}

// ChangeSlidePosition assigns the slide's 1-based sequence number. Range
// checks are left to the engine.
func (s *Service) ChangeSlidePosition(ctx context.Context, p SlidePositionParams) (Result, error) {
	err := s.edit(ctx, errinfo.PhaseSlide, p.Filepath, func(doc *deck.Document) error {
		return doc.SetSlideNumber(ctx, p.SlideNum, p.SlideNumber)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("change successfully", map[string]any{"slide_num": p.SlideNum, "slide_number": p.SlideNumber}), nil
}

// AddImageInMaster embeds an image on a slide master without an outline and
// then appends one ordinary slide.
func (s *Service) AddImageInMaster(ctx context.Context, p MasterImageParams) (Result, error) {
	err := s.edit(ctx, errinfo.PhaseSlide, p.Filepath, func(doc *deck.Document) error {
		bounds := deck.RectFromXYWH(p.X, p.Y, p.Width, p.Height)
		if _, err := doc.AppendMasterImage(ctx, p.MasterNum, p.ImageFilepath, bounds); err != nil {
			return err
		}
		_, err := doc.AppendSlide(ctx)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("master add pictures successfully", nil), nil
}
