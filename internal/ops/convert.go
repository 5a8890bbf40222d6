package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/toolworker"
)

const (
	FormatSVG   = "svg"
	FormatImage = "image"
)

// documentFormats export the whole presentation into the output file.
var documentFormats = map[string]string{
	"pdf":  toolworker.FormatPDF,
	"html": toolworker.FormatHTML,
	"ofd":  toolworker.FormatOFD,
	"xps":  toolworker.FormatXPS,
}

// ConvertFormats lists the accepted format_type values.
func ConvertFormats() []string {
	return []string{"pdf", "html", "ofd", "xps", FormatSVG, FormatImage}
}

// ConvertPresentation exports the presentation. Per-slide formats write
// ToSVG-<i>.svg or ToImage_img_<i>.png next to the output path.
func (s *Service) ConvertPresentation(ctx context.Context, p ConvertParams) (Result, error) {
	phase := errinfo.PhaseConversion
	format := strings.ToLower(strings.TrimSpace(p.FormatType))
	engineFormat, whole := documentFormats[format]
	if !whole && format != FormatSVG && format != FormatImage {
		return Result{}, errinfo.UnsupportedValue(phase, fmt.Sprintf("unsupported format type %q", p.FormatType))
	}

	outputDir := filepath.Dir(p.OutputFilepath)
	files := []string{}
	err := s.view(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return errinfo.FileWriteFailed(phase, err.Error())
		}
		if whole {
			files = append(files, p.OutputFilepath)
			return doc.Save(ctx, p.OutputFilepath, engineFormat)
		}
		count, err := doc.SlideCount(ctx)
		if err != nil {
			return err
		}
		for idx := 0; idx < count; idx++ {
			if format == FormatSVG {
				name := filepath.Join(outputDir, fmt.Sprintf("ToSVG-%d.svg", idx))
				if err := doc.ExportSlideSVG(ctx, idx, name); err != nil {
					return err
				}
				files = append(files, name)
				continue
			}
			name := filepath.Join(outputDir, fmt.Sprintf("ToImage_img_%d.png", idx))
			if err := doc.RenderSlideImage(ctx, idx, name); err != nil {
				return err
			}
			files = append(files, name)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("ops.converted", "source", p.Filepath, "format", format, "files", len(files))
	return ok(fmt.Sprintf("Ppt file successfully converted to %s: %s", strings.ToUpper(format), p.OutputFilepath), map[string]any{
		"source_file": p.Filepath,
		"output_file": p.OutputFilepath,
		"format":      format,
		"files":       files,
	}), nil
}

// ShapeToImage renders every shape of a slide into
// <output without extension>/ShapeToImage-<i>.png.
func (s *Service) ShapeToImage(ctx context.Context, p ShapeToImageParams) (Result, error) {
	phase := errinfo.PhaseShape
	dir := strings.TrimSuffix(p.OutputFilepath, filepath.Ext(p.OutputFilepath))
	files := []string{}
	err := s.view(ctx, phase, p.Filepath, func(doc *deck.Document) error {
		count, err := doc.ShapeCount(ctx, p.SlideNum)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errinfo.FileWriteFailed(phase, err.Error())
		}
		for idx := 0; idx < count; idx++ {
			name := filepath.Join(dir, fmt.Sprintf("ShapeToImage-%d.png", idx))
			if err := doc.RenderShapeImage(ctx, p.SlideNum, idx, name); err != nil {
				return err
			}
			files = append(files, name)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Rendered %d shapes to %s", len(files), dir), map[string]any{
		"output_dir": dir,
		"files":      files,
		"slide_num":  p.SlideNum,
	}), nil
}
