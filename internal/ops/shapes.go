package ops

import (
	"context"
	"fmt"

	"pptmcp/server/internal/colors"
	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/enums"
	"pptmcp/server/internal/errinfo"
)

// solidFill returns the fill a color parameter asks for. A nil value means
// leave the fill alone. A malformed value still selects a solid fill but
// carries no color.
func solidFill(value *string) (deck.Fill, bool) {
	if value == nil {
		return deck.Fill{}, false
	}
	fill := deck.Fill{Type: deck.FillSolid}
	if rgb, ok := colors.Parse(*value); ok {
		fill.Color = &rgb
	}
	return fill, true
}

func (s *Service) AddShape(ctx context.Context, p AddShapeParams) (Result, error) {
	shapeType := enums.Lookup(enums.ShapeType, p.ShapeType)
	var index int
	err := s.edit(ctx, errinfo.PhaseShape, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.AppendShape(ctx, p.SlideNum, shapeType.Name, deck.RectFromXYWH(p.X, p.Y, p.Width, p.Height))
		if err != nil {
			return err
		}
		if fill, set := solidFill(p.FillColor); set {
			if err := doc.SetFill(ctx, p.SlideNum, index, fill); err != nil {
				return err
			}
		}
		if line, set := solidFill(p.LineColor); set {
			if err := doc.SetLine(ctx, p.SlideNum, index, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", map[string]any{"shape_num": index, "shape_type": shapeType.Name}), nil
}

func (s *Service) DeleteShape(ctx context.Context, p ShapeParams) (Result, error) {
	phase := errinfo.PhaseShape
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		if err := checkShape(ctx, doc, phase, p.SlideNum, p.ShapeNum); err != nil {
			return err
		}
		return doc.RemoveShape(ctx, p.SlideNum, p.ShapeNum)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("delete successfully", nil), nil
}

// AddTextShape sets the text of an existing shape, or of a new borderless
// 200x200 rectangle at the slide origin when no shape is given.
func (s *Service) AddTextShape(ctx context.Context, p AddTextShapeParams) (Result, error) {
	phase := errinfo.PhaseShape
	var index int
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		if p.ShapeNum == nil {
			var err error
			index, err = doc.AppendShape(ctx, p.SlideNum, enums.Default(enums.ShapeType).Name, deck.RectFromXYWH(0, 0, 200, 200))
			if err != nil {
				return err
			}
			none := deck.Fill{Type: deck.FillNone}
			if err := doc.SetFill(ctx, p.SlideNum, index, none); err != nil {
				return err
			}
			if err := doc.SetLine(ctx, p.SlideNum, index, none); err != nil {
				return err
			}
		} else {
			index = *p.ShapeNum
			if err := checkShape(ctx, doc, phase, p.SlideNum, index); err != nil {
				return err
			}
		}
		return doc.SetText(ctx, p.SlideNum, index, p.Text)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add text successfully", map[string]any{"shape_num": index}), nil
}

// SetShapeFillPicture fills the shape with a picture stretched to its bounds.
func (s *Service) SetShapeFillPicture(ctx context.Context, p FillPictureParams) (Result, error) {
	phase := errinfo.PhaseShape
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		if err := checkSlide(ctx, doc, phase, p.SlideNum); err != nil {
			return err
		}
		if err := checkShape(ctx, doc, phase, p.SlideNum, p.ShapeNum); err != nil {
			return err
		}
		fill := deck.Fill{Type: deck.FillPicture, PictureURL: p.PictureURL, PictureMode: deck.PictureStretch}
		return doc.SetFill(ctx, p.SlideNum, p.ShapeNum, fill)
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", nil), nil
}

// GroupShapes groups the listed shapes. An empty list is rejected here; the
// engine rejects a single shape.
func (s *Service) GroupShapes(ctx context.Context, p GroupShapesParams) (Result, error) {
	phase := errinfo.PhaseShape
	if len(p.ShapeNumList) < 1 {
		return Result{}, errinfo.ValidationFailed(phase, "Count less than or equal to one")
	}
	var index int
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.GroupShapes(ctx, p.SlideNum, p.ShapeNumList)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", map[string]any{"shape_num": index}), nil
}

func (s *Service) UngroupShapes(ctx context.Context, p ShapeParams) (Result, error) {
	phase := errinfo.PhaseShape
	var children int
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		shape, err := doc.Shape(ctx, p.SlideNum, p.ShapeNum)
		if err != nil {
			return err
		}
		if shape.Kind != deck.KindGroup {
			return errinfo.TypeMismatch(phase, "Shape does not belong to groupshape")
		}
		children, err = doc.Ungroup(ctx, p.SlideNum, p.ShapeNum)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("ungrouped %d shapes", children), map[string]any{"shape_count": children}), nil
}
