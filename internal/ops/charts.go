package ops

import (
	"context"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/enums"
	"pptmcp/server/internal/errinfo"
)

func (s *Service) AddChart(ctx context.Context, p AddChartParams) (Result, error) {
	chartType := enums.Lookup(enums.ChartType, p.ChartType)
	var index int
	err := s.edit(ctx, errinfo.PhaseChart, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.AppendChart(ctx, p.SlideNum, chartType.Name, deck.RectFromXYWH(p.X, p.Y, p.Width, p.Height))
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", map[string]any{"shape_num": index, "chart_type": chartType.Name}), nil
}

func (s *Service) CreateSmartArt(ctx context.Context, p CreateSmartArtParams) (Result, error) {
	layout := enums.Lookup(enums.SmartArtLayoutType, p.LayoutType)
	var index int
	err := s.edit(ctx, errinfo.PhaseSmartArt, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.AppendSmartArt(ctx, p.SlideNum, layout.Name, deck.RectFromXYWH(p.X, p.Y, p.Width, p.Height))
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", map[string]any{"shape_num": index, "layout_type": layout.Name}), nil
}
