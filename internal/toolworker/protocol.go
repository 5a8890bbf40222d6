package toolworker

// Worker methods. Every document-scoped method takes a "doc" handle that was
// bound by PresentationNew or PresentationLoad.
const (
	MethodWorkerGetInfo = "WorkerGetInfo"

	MethodPresentationNew   = "PresentationNew"
	MethodPresentationLoad  = "PresentationLoad"
	MethodPresentationSave  = "PresentationSave"
	MethodPresentationClose = "PresentationClose"
	MethodPresentationInfo  = "PresentationInfo"

	MethodSlideAppend      = "SlideAppend"
	MethodSlideRemove      = "SlideRemove"
	MethodSlideSetNumber   = "SlideSetNumber"
	MethodSlideExportSVG   = "SlideExportSVG"
	MethodSlideRenderImage = "SlideRenderImage"

	MethodShapeList        = "ShapeList"
	MethodShapeAppend      = "ShapeAppend"
	MethodShapeRemove      = "ShapeRemove"
	MethodShapeSetFill     = "ShapeSetFill"
	MethodShapeSetLine     = "ShapeSetLine"
	MethodShapeGroup       = "ShapeGroup"
	MethodShapeUngroup     = "ShapeUngroup"
	MethodShapeRenderImage = "ShapeRenderImage"

	MethodTextSet               = "TextSet"
	MethodTextSetFill           = "TextSetFill"
	MethodTextSetAutofit        = "TextSetAutofit"
	MethodTextSetVertical       = "TextSetVertical"
	MethodParagraphSetAlignment = "ParagraphSetAlignment"
	MethodParagraphsReplaceHTML = "ParagraphsReplaceHTML"

	MethodChartAppend       = "ChartAppend"
	MethodSmartArtAppend    = "SmartArtAppend"
	MethodTableAppend       = "TableAppend"
	MethodTableFill         = "TableFill"
	MethodMasterAppendImage = "MasterAppendImage"
)

// Error codes a worker reports in error.data.error_code.
const (
	CodeDocumentLoadFailed = "DOCUMENT_LOAD_FAILED"
	CodeIndexOutOfRange    = "INDEX_OUT_OF_RANGE"
	CodeTypeMismatch       = "TYPE_MISMATCH"
	CodeEngineFailed       = "ENGINE_FAILED"
)

// Save formats understood by PresentationSave.
const (
	FormatPptx2019 = "pptx2019"
	FormatPDF      = "pdf"
	FormatHTML     = "html"
	FormatOFD      = "ofd"
	FormatXPS      = "xps"
)

// Fill types.
const (
	FillNone    = "none"
	FillSolid   = "solid"
	FillPicture = "picture"
)

// Shape kinds reported by ShapeList.
const (
	KindAutoShape = "auto_shape"
	KindPicture   = "picture"
	KindTable     = "table"
	KindGroup     = "group"
	KindChart     = "chart"
	KindSmartArt  = "smartart"
)

// Rect is expressed as left/top/right/bottom in points.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (r Rect) Width() float64 { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type Fill struct {
	Type        string `json:"type"`
	Color       *RGB   `json:"color,omitempty"`
	PictureURL  string `json:"picture_url,omitempty"`
	PictureMode string `json:"picture_mode,omitempty"`
}

type ShapeInfo struct {
	Index          int    `json:"index"`
	Name           string `json:"name,omitempty"`
	Kind           string `json:"kind"`
	ShapeType      string `json:"shape_type,omitempty"`
	Placeholder    string `json:"placeholder,omitempty"`
	Bounds         Rect   `json:"bounds"`
	Text           string `json:"text,omitempty"`
	ParagraphCount int    `json:"paragraph_count"`
	Rows           int    `json:"rows,omitempty"`
	Columns        int    `json:"columns,omitempty"`
	Children       int    `json:"children,omitempty"`
	ChartType      string `json:"chart_type,omitempty"`
	Layout         string `json:"layout,omitempty"`
}

// WorkerInfo is the WorkerGetInfo result.
type WorkerInfo struct {
	OK     bool   `json:"ok"`
	Worker string `json:"worker"`
}

type PresentationInfo struct {
	SlideCount  int `json:"slide_count"`
	MasterCount int `json:"master_count"`
}

type IndexResult struct {
	Index int `json:"index"`
}

type CountResult struct {
	Count int `json:"count"`
}

// Target addresses a document and, depending on the method, a slide and a
// shape inside it. Indices are zero-based.
type Target struct {
	Doc   string `json:"doc"`
	Slide int    `json:"slide"`
	Shape int    `json:"shape"`
}

type LoadParams struct {
	Doc  string `json:"doc"`
	Path string `json:"path"`
}

type SaveParams struct {
	Doc    string `json:"doc"`
	Path   string `json:"path"`
	Format string `json:"format"`
}

type SlideNumberParams struct {
	Target
	Number int `json:"number"`
}

// ExportParams names the output file of a per-slide or per-shape export.
type ExportParams struct {
	Target
	Path string `json:"path"`
}

type ShapeAppendParams struct {
	Target
	ShapeType string `json:"shape_type"`
	Bounds    Rect   `json:"bounds"`
}

type FillParams struct {
	Target
	Fill Fill `json:"fill"`
}

type GroupParams struct {
	Target
	Shapes []int `json:"shapes"`
}

type TextParams struct {
	Target
	Text string `json:"text"`
}

type ParagraphAlignmentParams struct {
	Target
	Paragraph int    `json:"paragraph"`
	Alignment string `json:"alignment"`
}

type AutofitParams struct {
	Target
	Autofit string `json:"autofit"`
}

type VerticalParams struct {
	Target
	Vertical string `json:"vertical"`
}

type HTMLParams struct {
	Target
	HTML string `json:"html"`
}

type ChartAppendParams struct {
	Target
	ChartType string `json:"chart_type"`
	Bounds    Rect   `json:"bounds"`
}

type SmartArtAppendParams struct {
	Target
	Layout string `json:"layout"`
	Bounds Rect   `json:"bounds"`
}

type TableAppendParams struct {
	Target
	Left    float64   `json:"left"`
	Top     float64   `json:"top"`
	Widths  []float64 `json:"widths"`
	Heights []float64 `json:"heights"`
}

// TableFillParams carries cell text as Cells[row][column].
type TableFillParams struct {
	Target
	Cells [][]string `json:"cells"`
}

type MasterImageParams struct {
	Doc       string `json:"doc"`
	Master    int    `json:"master"`
	ImagePath string `json:"image_path"`
	Bounds    Rect   `json:"bounds"`
}

type ShapeListResult struct {
	Shapes []ShapeInfo `json:"shapes"`
}
