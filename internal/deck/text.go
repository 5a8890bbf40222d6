package deck

import (
	"context"

	"pptmcp/server/internal/toolworker"
)

// SetText replaces the text of a shape's text frame.
func (d *Document) SetText(ctx context.Context, slide, shape int, text string) error {
	params := toolworker.TextParams{Target: d.target(slide, shape), Text: text}
	return d.call(ctx, toolworker.MethodTextSet, params, nil)
}

// SetTextFill sets the fill of the text in a shape's first paragraph run.
func (d *Document) SetTextFill(ctx context.Context, slide, shape int, fill Fill) error {
	params := toolworker.FillParams{Target: d.target(slide, shape), Fill: fill}
	return d.call(ctx, toolworker.MethodTextSetFill, params, nil)
}

func (d *Document) SetAlignment(ctx context.Context, slide, shape, paragraph int, alignment string) error {
	params := toolworker.ParagraphAlignmentParams{Target: d.target(slide, shape), Paragraph: paragraph, Alignment: alignment}
	return d.call(ctx, toolworker.MethodParagraphSetAlignment, params, nil)
}

func (d *Document) SetAutofit(ctx context.Context, slide, shape int, autofit string) error {
	params := toolworker.AutofitParams{Target: d.target(slide, shape), Autofit: autofit}
	return d.call(ctx, toolworker.MethodTextSetAutofit, params, nil)
}

func (d *Document) SetVerticalText(ctx context.Context, slide, shape int, vertical string) error {
	params := toolworker.VerticalParams{Target: d.target(slide, shape), Vertical: vertical}
	return d.call(ctx, toolworker.MethodTextSetVertical, params, nil)
}

// ReplaceParagraphsWithHTML clears the text frame and inserts the paragraphs
// of an HTML fragment. It returns the resulting paragraph count.
func (d *Document) ReplaceParagraphsWithHTML(ctx context.Context, slide, shape int, fragment string) (int, error) {
	var res toolworker.CountResult
	params := toolworker.HTMLParams{Target: d.target(slide, shape), HTML: fragment}
	err := d.call(ctx, toolworker.MethodParagraphsReplaceHTML, params, &res)
	return res.Count, err
}
