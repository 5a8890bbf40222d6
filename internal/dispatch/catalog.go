package dispatch

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"pptmcp/server/internal/enums"
	"pptmcp/server/internal/errinfo"
	"pptmcp/server/internal/ops"
)

type runFunc func(ctx context.Context, svc *ops.Service, args map[string]any) (ops.Result, error)

// Operation is one remotely callable tool.
type Operation struct {
	Name        string
	Title       string
	Description string
	Phase       string
	Params      []Param
	ReadOnly    bool
	run         runFunc
}

// bind adapts a typed handler to the untyped argument map produced by
// normalize.
func bind[P any](handler func(*ops.Service, context.Context, P) (ops.Result, error)) runFunc {
	return func(ctx context.Context, svc *ops.Service, args map[string]any) (ops.Result, error) {
		var params P
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &params,
			TagName: "mapstructure",
		})
		if err != nil {
			return ops.Result{}, err
		}
		if err := decoder.Decode(args); err != nil {
			return ops.Result{}, fmt.Errorf("decode params: %w", err)
		}
		return handler(svc, ctx, params)
	}
}

func filepathParam() Param {
	return Param{Name: "filepath", Type: TypeString, Required: true, Path: true, Description: "Path to the PowerPoint file (.pptx), relative to the storage root or absolute."}
}

func outputParam(description string) Param {
	return Param{Name: "output_filepath", Type: TypeString, Required: true, Path: true, Description: description}
}

func slideParam(required bool) Param {
	p := Param{Name: "slide_num", Type: TypeInteger, Required: required, Index: true, Description: "Zero-based slide index."}
	if !required {
		p.Default = 0
	}
	return p
}

func shapeParam(required bool) Param {
	p := Param{Name: "shape_num", Type: TypeInteger, Required: required, Index: true, Description: "Zero-based shape index on the slide."}
	if !required {
		p.Default = 0
	}
	return p
}

func boxParams(noun string) []Param {
	return []Param{
		{Name: "x", Type: TypeNumber, Default: 0.0, Description: "X coordinate of the " + noun + "'s top-left corner."},
		{Name: "y", Type: TypeNumber, Default: 0.0, Description: "Y coordinate of the " + noun + "'s top-left corner."},
		{Name: "width", Type: TypeNumber, Default: 200.0, Description: "Width of the " + noun + "."},
		{Name: "height", Type: TypeNumber, Default: 200.0, Description: "Height of the " + noun + "."},
	}
}

func enumParam(name string, category enums.Category, description string) Param {
	return Param{
		Name:        name,
		Type:        TypeString,
		Default:     enums.Default(category).Name,
		Enum:        enums.Names(category),
		Description: description + " Unknown values fall back to " + enums.Default(category).Name + ".",
	}
}

func colorParam(name, description string) Param {
	return Param{Name: name, Type: TypeString, Description: description + " Hex RRGGBB with an optional leading #."}
}

func join(groups ...[]Param) []Param {
	out := []Param{}
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// Catalog returns every operation in registration order.
func Catalog() []Operation {
	return []Operation{
		{
			Name:        "create_presentation",
			Title:       "Create Presentation",
			Description: "Create a PowerPoint presentation at filepath. An existing file is loaded and kept as is.",
			Phase:       errinfo.PhasePresentation,
			Params:      []Param{filepathParam()},
			run:         bind((*ops.Service).CreatePresentation),
		},
		{
			Name:        "create_slide",
			Title:       "Create Slide",
			Description: "Append a blank slide at the end of the presentation.",
			Phase:       errinfo.PhaseSlide,
			Params:      []Param{filepathParam()},
			run:         bind((*ops.Service).CreateSlide),
		},
		{
			Name:        "delete_slide",
			Title:       "Delete Slide",
			Description: "Delete the slide at slide_num.",
			Phase:       errinfo.PhaseSlide,
			Params:      []Param{filepathParam(), slideParam(true)},
			run:         bind((*ops.Service).DeleteSlide),
		},
		{
			Name:        "add_shape",
			Title:       "Add Shape",
			Description: "Add a geometric shape to a slide, optionally with outline and fill colors.",
			Phase:       errinfo.PhaseShape,
			Params: join(
				[]Param{filepathParam(), slideParam(false)},
				boxParams("shape"),
				[]Param{
					enumParam("shape_type", enums.ShapeType, "Shape geometry."),
					colorParam("line_color", "Outline color."),
					colorParam("fill_color", "Fill color."),
				},
			),
			run: bind((*ops.Service).AddShape),
		},
		{
			Name:        "delete_shape",
			Title:       "Delete Shape",
			Description: "Delete the shape at shape_num from a slide.",
			Phase:       errinfo.PhaseShape,
			Params:      []Param{filepathParam(), slideParam(true), shapeParam(true)},
			run:         bind((*ops.Service).DeleteShape),
		},
		{
			Name:        "add_text_shape",
			Title:       "Add Text",
			Description: "Set the text of a shape. Without shape_num a borderless 200x200 text rectangle is added at the slide origin.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				{Name: "shape_num", Type: TypeInteger, Index: true, Description: "Zero-based index of an existing shape."},
				{Name: "text", Type: TypeString, Default: "", Description: "Text to place in the shape."},
			},
			run: bind((*ops.Service).AddTextShape),
		},
		{
			Name:        "add_chart",
			Title:       "Add Chart",
			Description: "Add a chart to a slide.",
			Phase:       errinfo.PhaseChart,
			Params: join(
				[]Param{filepathParam(), slideParam(true)},
				boxParams("chart"),
				[]Param{enumParam("chart_type", enums.ChartType, "Chart type.")},
			),
			run: bind((*ops.Service).AddChart),
		},
		{
			Name:        "create_smartart",
			Title:       "Create SmartArt",
			Description: "Add a SmartArt graphic to a slide.",
			Phase:       errinfo.PhaseSmartArt,
			Params: join(
				[]Param{filepathParam(), slideParam(true)},
				boxParams("SmartArt"),
				[]Param{enumParam("layout_type", enums.SmartArtLayoutType, "SmartArt layout.")},
			),
			run: bind((*ops.Service).CreateSmartArt),
		},
		{
			Name:        "shape_to_image",
			Title:       "Shape To Image",
			Description: "Render every shape on a slide to PNG files in a directory named after output_filepath without its extension.",
			Phase:       errinfo.PhaseShape,
			ReadOnly:    true,
			Params:      []Param{filepathParam(), slideParam(true), outputParam("Base path for the rendered images.")},
			run:         bind((*ops.Service).ShapeToImage),
		},
		{
			Name:        "create_table",
			Title:       "Create Table",
			Description: "Add a table with one column per width and one row per height.",
			Phase:       errinfo.PhaseTable,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				{Name: "x", Type: TypeNumber, Default: 0.0, Description: "X coordinate of the table's top-left corner."},
				{Name: "y", Type: TypeNumber, Default: 0.0, Description: "Y coordinate of the table's top-left corner."},
				{Name: "widths", Type: TypeNumberList, Default: []float64{50, 50}, Description: "Column widths."},
				{Name: "heights", Type: TypeNumberList, Default: []float64{20, 20}, Description: "Row heights."},
			},
			run: bind((*ops.Service).CreateTable),
		},
		{
			Name:        "add_text_table",
			Title:       "Fill Table",
			Description: "Fill a table row by row. Missing values leave cells empty and extra values are ignored.",
			Phase:       errinfo.PhaseTable,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				shapeParam(true),
				{Name: "data_str", Type: TypeStringList, Default: []string{"", "", "", ""}, Description: "Cell values in row-major order."},
			},
			run: bind((*ops.Service).AddTextTable),
		},
		{
			Name:        "set_shape_fill_picture",
			Title:       "Fill Shape With Picture",
			Description: "Fill a shape with a picture stretched to its bounds.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				shapeParam(true),
				{Name: "picture_url", Type: TypeString, Required: true, Description: "Location of the picture."},
			},
			run: bind((*ops.Service).SetShapeFillPicture),
		},
		{
			Name:        "get_shape_titles",
			Title:       "Get Titles",
			Description: "Write the text of every title and subtitle placeholder to output_filepath, one per line.",
			Phase:       errinfo.PhaseShape,
			ReadOnly:    true,
			Params:      []Param{filepathParam(), outputParam("Text file receiving the titles.")},
			run:         bind((*ops.Service).GetShapeTitles),
		},
		{
			Name:        "group_shapes",
			Title:       "Group Shapes",
			Description: "Group the listed shapes of a slide into one group shape.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				{Name: "shape_num_list", Type: TypeIntegerList, Default: []int{}, Index: true, Description: "Zero-based indices of the shapes to group."},
			},
			run: bind((*ops.Service).GroupShapes),
		},
		{
			Name:        "ungroup_shapes",
			Title:       "Ungroup Shapes",
			Description: "Split a group shape back into its members.",
			Phase:       errinfo.PhaseShape,
			Params:      []Param{filepathParam(), slideParam(true), shapeParam(true)},
			run:         bind((*ops.Service).UngroupShapes),
		},
		{
			Name:        "change_slide_position",
			Title:       "Move Slide",
			Description: "Give the slide at slide_num the 1-based position slide_number.",
			Phase:       errinfo.PhaseSlide,
			Params: []Param{
				filepathParam(),
				slideParam(true),
				{Name: "slide_number", Type: TypeInteger, Required: true, Description: "New 1-based position of the slide."},
			},
			run: bind((*ops.Service).ChangeSlidePosition),
		},
		{
			Name:        "add_image_in_master",
			Title:       "Add Master Image",
			Description: "Add an image to a slide master, then append one slide.",
			Phase:       errinfo.PhaseSlide,
			Params: join(
				[]Param{
					filepathParam(),
					{Name: "image_filepath", Type: TypeString, Required: true, Path: true, Description: "Image file to embed."},
					{Name: "master_num", Type: TypeInteger, Default: 0, Index: true, Description: "Zero-based slide master index."},
				},
				boxParams("image"),
			),
			run: bind((*ops.Service).AddImageInMaster),
		},
		{
			Name:        "set_alignment",
			Title:       "Align Paragraph",
			Description: "Set the alignment of one paragraph of a shape.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(false),
				shapeParam(false),
				{Name: "paragraph_num", Type: TypeInteger, Default: 0, Index: true, Description: "Zero-based paragraph index."},
				enumParam("text_alignment_type", enums.TextAlignmentType, "Paragraph alignment."),
			},
			run: bind((*ops.Service).SetAlignment),
		},
		{
			Name:        "append_html",
			Title:       "Set HTML Text",
			Description: "Replace the paragraphs of a shape with the content of an HTML fragment.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(false),
				shapeParam(false),
				{Name: "code_html", Type: TypeString, Default: " ", Description: "HTML fragment."},
			},
			run: bind((*ops.Service).AppendHTML),
		},
		{
			Name:        "set_autofittext",
			Title:       "Set Autofit",
			Description: "Set how the text of a shape fits its bounds.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(false),
				shapeParam(false),
				enumParam("autofit_type", enums.TextAutofitType, "Autofit mode."),
			},
			run: bind((*ops.Service).SetAutofitText),
		},
		{
			Name:        "set_verticaltext",
			Title:       "Set Vertical Text",
			Description: "Set the text direction of a shape.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(false),
				shapeParam(false),
				enumParam("verticaltext_type", enums.VerticalTextType, "Text direction."),
			},
			run: bind((*ops.Service).SetVerticalText),
		},
		{
			Name:        "set_text_color",
			Title:       "Set Text Color",
			Description: "Set the text color of a shape. Without color nothing changes.",
			Phase:       errinfo.PhaseShape,
			Params: []Param{
				filepathParam(),
				slideParam(false),
				shapeParam(false),
				colorParam("color", "Text color."),
			},
			run: bind((*ops.Service).SetTextColor),
		},
		{
			Name:        "convert_pptx",
			Title:       "Convert Presentation",
			Description: "Export the presentation. pdf, html, ofd and xps write output_filepath; svg and image write one file per slide next to it.",
			Phase:       errinfo.PhaseConversion,
			ReadOnly:    true,
			Params: []Param{
				filepathParam(),
				outputParam("Output file path."),
				{Name: "format_type", Type: TypeString, Required: true, Enum: ops.ConvertFormats(), Description: "Target format, case-insensitive."},
			},
			run: bind((*ops.Service).ConvertPresentation),
		},
		{
			Name:        "get_presentation_info",
			Title:       "Describe Presentation",
			Description: "Report slide and master counts and a summary of every shape.",
			Phase:       errinfo.PhasePresentation,
			ReadOnly:    true,
			Params:      []Param{filepathParam()},
			run:         bind((*ops.Service).GetPresentationInfo),
		},
		{
			Name:        "compare_presentations",
			Title:       "Compare Presentations",
			Description: "Line diff of the slide text of two presentations.",
			Phase:       errinfo.PhasePresentation,
			ReadOnly:    true,
			Params: []Param{
				filepathParam(),
				{Name: "other_filepath", Type: TypeString, Required: true, Path: true, Description: "Presentation to compare against."},
				{Name: "context", Type: TypeBoolean, Default: false, Description: "Include unchanged lines in the diff."},
			},
			run: bind((*ops.Service).ComparePresentations),
		},
	}
}
