package ops

import (
	"context"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/errinfo"
)

// CreateTable adds a table with one column per width and one row per
// height.
func (s *Service) CreateTable(ctx context.Context, p CreateTableParams) (Result, error) {
	phase := errinfo.PhaseTable
	if len(p.Widths) == 0 || len(p.Heights) == 0 {
		return Result{}, errinfo.ValidationFailed(phase, "widths and heights must not be empty")
	}
	var index int
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		var err error
		index, err = doc.AppendTable(ctx, p.SlideNum, p.X, p.Y, p.Widths, p.Heights)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return ok("add successfully", map[string]any{
		"shape_num": index,
		"rows":      len(p.Heights),
		"columns":   len(p.Widths),
	}), nil
}

// AddTextTable distributes the values row-major over the table's existing
// grid.
func (s *Service) AddTextTable(ctx context.Context, p AddTextTableParams) (Result, error) {
	phase := errinfo.PhaseTable
	err := s.edit(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		shape, err := doc.Shape(ctx, p.SlideNum, p.ShapeNum)
		if err != nil {
			return err
		}
		if shape.Kind != deck.KindTable {
			return errinfo.TypeMismatch(phase, "The specified shape is not a table.")
		}
		return doc.FillTable(ctx, p.SlideNum, p.ShapeNum, Distribute(p.DataStr, shape.Rows, shape.Columns))
	})
	if err != nil {
		return Result{}, err
	}
	return ok("Table content initialized successfully.", nil), nil
}

// Distribute lays values out as a rows x cols grid in row-major order. Cells
// past the end of values are empty and values past rows*cols are dropped.
func Distribute(values []string, rows, cols int) [][]string {
	if rows <= 0 || cols <= 0 {
		return [][]string{}
	}
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			if k := i*cols + j; k < len(values) {
				grid[i][j] = values[k]
			}
		}
	}
	return grid
}
