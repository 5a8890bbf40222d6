package deck

import (
	"context"

	"pptmcp/server/internal/toolworker"
)

// AppendSlide adds a blank slide at the end and returns its index.
func (d *Document) AppendSlide(ctx context.Context) (int, error) {
	var res toolworker.IndexResult
	err := d.call(ctx, toolworker.MethodSlideAppend, d.target(0, 0), &res)
	return res.Index, err
}

func (d *Document) RemoveSlide(ctx context.Context, slide int) error {
	return d.call(ctx, toolworker.MethodSlideRemove, d.target(slide, 0), nil)
}

// SetSlideNumber moves the slide to the 1-based position number.
func (d *Document) SetSlideNumber(ctx context.Context, slide, number int) error {
	params := toolworker.SlideNumberParams{Target: d.target(slide, 0), Number: number}
	return d.call(ctx, toolworker.MethodSlideSetNumber, params, nil)
}

func (d *Document) ExportSlideSVG(ctx context.Context, slide int, path string) error {
	params := toolworker.ExportParams{Target: d.target(slide, 0), Path: path}
	return d.call(ctx, toolworker.MethodSlideExportSVG, params, nil)
}

func (d *Document) RenderSlideImage(ctx context.Context, slide int, path string) error {
	params := toolworker.ExportParams{Target: d.target(slide, 0), Path: path}
	return d.call(ctx, toolworker.MethodSlideRenderImage, params, nil)
}

// AppendMasterImage places an image on a slide master and returns the index
// of the new picture shape. The picture has no outline.
func (d *Document) AppendMasterImage(ctx context.Context, master int, imagePath string, bounds Rect) (int, error) {
	var res toolworker.IndexResult
	params := toolworker.MasterImageParams{Doc: d.handle, Master: master, ImagePath: imagePath, Bounds: bounds}
	err := d.call(ctx, toolworker.MethodMasterAppendImage, params, &res)
	return res.Index, err
}
