package deck

import (
	"context"
	"fmt"

	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/toolworker"
)

func (d *Document) Shapes(ctx context.Context, slide int) ([]ShapeInfo, error) {
	var res toolworker.ShapeListResult
	if err := d.call(ctx, toolworker.MethodShapeList, d.target(slide, 0), &res); err != nil {
		return nil, err
	}
	return res.Shapes, nil
}

func (d *Document) ShapeCount(ctx context.Context, slide int) (int, error) {
	shapes, err := d.Shapes(ctx, slide)
	return len(shapes), err
}

// Shape returns the description of one shape.
func (d *Document) Shape(ctx context.Context, slide, shape int) (ShapeInfo, error) {
	shapes, err := d.Shapes(ctx, slide)
	if err != nil {
		return ShapeInfo{}, err
	}
	if shape < 0 || shape >= len(shapes) {
		return ShapeInfo{}, errinfo.IndexOutOfRange("", fmt.Sprintf("shape index %d out of range (count %d)", shape, len(shapes)))
	}
	return shapes[shape], nil
}

// AppendShape adds an auto shape of the given engine shape type.
func (d *Document) AppendShape(ctx context.Context, slide int, shapeType string, bounds Rect) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.ShapeAppendParams{Target: d.target(slide, 0), ShapeType: shapeType, Bounds: bounds}
	err := d.call(ctx, toolworker.MethodShapeAppend, params, &res)
	return res.Index, err
}

func (d *Document) RemoveShape(ctx context.Context, slide, shape int) error {
	return d.call(ctx, toolworker.MethodShapeRemove, d.target(slide, shape), nil)
}

func (d *Document) SetFill(ctx context.Context, slide, shape int, fill Fill) error {
	params := toolworker.FillParams{Target: d.target(slide, shape), Fill: fill}
	return d.call(ctx, toolworker.MethodShapeSetFill, params, nil)
}

// SetLine sets the fill of the shape outline.
func (d *Document) SetLine(ctx context.Context, slide, shape int, fill Fill) error {
	params := toolworker.FillParams{Target: d.target(slide, shape), Fill: fill}
	return d.call(ctx, toolworker.MethodShapeSetLine, params, nil)
}

// GroupShapes replaces the listed shapes with one group and returns the
// group's index.
func (d *Document) GroupShapes(ctx context.Context, slide int, shapes []int) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.GroupParams{Target: d.target(slide, 0), Shapes: shapes}
	err := d.call(ctx, toolworker.MethodShapeGroup, params, &res)
	return res.Index, err
}

// Ungroup splices a group's children back into the slide and returns how
// many there were.
func (d *Document) Ungroup(ctx context.Context, slide, shape int) (int, error) {
	var res toolworker.CountResult
	err := d.call(ctx, toolworker.MethodShapeUngroup, d.target(slide, shape), &res)
	return res.Count, err
}

func (d *Document) RenderShapeImage(ctx context.Context, slide, shape int, path string) error {
	params := toolworker.ExportParams{Target: d.target(slide, shape), Path: path}
	return d.call(ctx, toolworker.MethodShapeRenderImage, params, nil)
}

func (d *Document) AppendChart(ctx context.Context, slide int, chartType string, bounds Rect) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.ChartAppendParams{Target: d.target(slide, 0), ChartType: chartType, Bounds: bounds}
	err := d.call(ctx, toolworker.MethodChartAppend, params, &res)
	return res.Index, err
}

func (d *Document) AppendSmartArt(ctx context.Context, slide int, layout string, bounds Rect) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.SmartArtAppendParams{Target: d.target(slide, 0), Layout: layout, Bounds: bounds}
	err := d.call(ctx, toolworker.MethodSmartArtAppend, params, &res)
	return res.Index, err
}

// AppendTable adds a table whose column and row counts are the lengths of
// widths and heights.
func (d *Document) AppendTable(ctx context.Context, slide int, left, top float64, widths, heights []float64) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.TableAppendParams{Target: d.target(slide, 0), Left: left, Top: top, Widths: widths, Heights: heights}
	err := d.call(ctx, toolworker.MethodTableAppend, params, &res)
	return res.Index, err
}

// FillTable writes cells[row][column] into the table's existing grid.
func (d *Document) FillTable(ctx context.Context, slide, shape int, cells [][]string) error {
	params := toolworker.TableFillParams{Target: d.target(slide, shape), Cells: cells}
	return d.call(ctx, toolworker.MethodTableFill, params, nil)
}
