package ops

import (
	"context"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/enums"
	"pptmcp/server/internal/errinfo"
)

func (s *Service) SetAlignment(ctx context.Context, p SetAlignmentParams) (Result, error) {
	alignment := enums.Lookup(enums.TextAlignmentType, p.TextAlignmentType)
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		return doc.SetAlignment(ctx, p.SlideNum, p.ShapeNum, p.ParagraphNum, alignment.Name)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("successfully", map[string]any{"text_alignment_type": alignment.Name}), nil
}

func (s *Service) SetAutofitText(ctx context.Context, p SetAutofitParams) (Result, error) {
	autofit := enums.Lookup(enums.TextAutofitType, p.AutofitType)
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		return doc.SetAutofit(ctx, p.SlideNum, p.ShapeNum, autofit.Name)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("successfully", map[string]any{"autofit_type": autofit.Name}), nil
}

func (s *Service) SetVerticalText(ctx context.Context, p SetVerticalTextParams) (Result, error) {
	vertical := enums.Lookup(enums.VerticalTextType, p.VerticalTextType)
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		return doc.SetVerticalText(ctx, p.SlideNum, p.ShapeNum, vertical.Name)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("successfully", map[string]any{"verticaltext_type": vertical.Name}), nil
}

// SetTextColor leaves the text untouched when color is absent. The shape is
// still loaded and saved so a bad address fails the same way either way.
func (s *Service) SetTextColor(ctx context.Context, p SetTextColorParams) (Result, error) {
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		fill, set := solidFill(p.Color)
		if !set {
			_, err := doc.Shape(ctx, p.SlideNum, p.ShapeNum)
			return err
		}
		return doc.SetTextFill(ctx, p.SlideNum, p.ShapeNum, fill)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("successfully", nil), nil
}

// AppendHTML replaces the shape's paragraphs with those of an HTML fragment.
func (s *Service) AppendHTML(ctx context.Context, p AppendHTMLParams) (Result, error) {
	var count int
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		var err error
		count, err = doc.ReplaceParagraphsWithHTML(ctx, p.SlideNum, p.ShapeNum, p.CodeHTML)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("successfully", map[string]any{"paragraph_count": count}), nil
}
