package ops

// Parameter structs are decoded from tool arguments by the dispatch layer.
// Paths arrive already resolved against the storage root.

type FileParams struct {
	Filepath string `mapstructure:"filepath"`
}

type SlideParams struct {
	Filepath string `mapstructure:"filepath"`
	SlideNum int    `mapstructure:"slide_num"`
}

type ShapeParams struct {
	Filepath string `mapstructure:"filepath"`
	SlideNum int    `mapstructure:"slide_num"`
	ShapeNum int    `mapstructure:"shape_num"`
}

// Box is an origin and size in points.
type Box struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type AddShapeParams struct {
	Filepath  string  `mapstructure:"filepath"`
	SlideNum  int     `mapstructure:"slide_num"`
	Box       `mapstructure:",squash"`
	ShapeType string  `mapstructure:"shape_type"`
	LineColor *string `mapstructure:"line_color"`
	FillColor *string `mapstructure:"fill_color"`
}

type AddTextShapeParams struct {
	Filepath string `mapstructure:"filepath"`
	SlideNum int    `mapstructure:"slide_num"`
	ShapeNum *int   `mapstructure:"shape_num"`
	Text     string `mapstructure:"text"`
}

type AddChartParams struct {
	Filepath  string `mapstructure:"filepath"`
	SlideNum  int    `mapstructure:"slide_num"`
	Box       `mapstructure:",squash"`
	ChartType string `mapstructure:"chart_type"`
}

type CreateSmartArtParams struct {
	Filepath   string `mapstructure:"filepath"`
	SlideNum   int    `mapstructure:"slide_num"`
	Box        `mapstructure:",squash"`
	LayoutType string `mapstructure:"layout_type"`
}

type CreateTableParams struct {
	Filepath string    `mapstructure:"filepath"`
	SlideNum int       `mapstructure:"slide_num"`
	X        float64   `mapstructure:"x"`
	Y        float64   `mapstructure:"y"`
	Widths   []float64 `mapstructure:"widths"`
	Heights  []float64 `mapstructure:"heights"`
}

type AddTextTableParams struct {
	Filepath string   `mapstructure:"filepath"`
	SlideNum int      `mapstructure:"slide_num"`
	ShapeNum int      `mapstructure:"shape_num"`
	DataStr  []string `mapstructure:"data_str"`
}

type FillPictureParams struct {
	Filepath   string `mapstructure:"filepath"`
	SlideNum   int    `mapstructure:"slide_num"`
	ShapeNum   int    `mapstructure:"shape_num"`
	PictureURL string `mapstructure:"picture_url"`
}

type GroupShapesParams struct {
	Filepath     string `mapstructure:"filepath"`
	SlideNum     int    `mapstructure:"slide_num"`
	ShapeNumList []int  `mapstructure:"shape_num_list"`
}

type SetAlignmentParams struct {
	Filepath          string `mapstructure:"filepath"`
	SlideNum          int    `mapstructure:"slide_num"`
	ShapeNum          int    `mapstructure:"shape_num"`
	ParagraphNum      int    `mapstructure:"paragraph_num"`
	TextAlignmentType string `mapstructure:"text_alignment_type"`
}

type SetAutofitParams struct {
	Filepath    string `mapstructure:"filepath"`
	SlideNum    int    `mapstructure:"slide_num"`
	ShapeNum    int    `mapstructure:"shape_num"`
	AutofitType string `mapstructure:"autofit_type"`
}

type SetVerticalTextParams struct {
	Filepath         string `mapstructure:"filepath"`
	SlideNum         int    `mapstructure:"slide_num"`
	ShapeNum         int    `mapstructure:"shape_num"`
	VerticalTextType string `mapstructure:"verticaltext_type"`
}

type SetTextColorParams struct {
	Filepath string  `mapstructure:"filepath"`
	SlideNum int     `mapstructure:"slide_num"`
	ShapeNum int     `mapstructure:"shape_num"`
	Color    *string `mapstructure:"color"`
}

type AppendHTMLParams struct {
	Filepath string `mapstructure:"filepath"`
	SlideNum int    `mapstructure:"slide_num"`
	ShapeNum int    `mapstructure:"shape_num"`
	CodeHTML string `mapstructure:"code_html"`
}

type MasterImageParams struct {
	Filepath      string `mapstructure:"filepath"`
	ImageFilepath string `mapstructure:"image_filepath"`
	MasterNum     int    `mapstructure:"master_num"`
	Box           `mapstructure:",squash"`
}

type SlidePositionParams struct {
	Filepath    string `mapstructure:"filepath"`
	SlideNum    int    `mapstructure:"slide_num"`
	SlideNumber int    `mapstructure:"slide_number"`
}

type OutputParams struct {
	Filepath       string `mapstructure:"filepath"`
	OutputFilepath string `mapstructure:"output_filepath"`
}

type ShapeToImageParams struct {
	Filepath       string `mapstructure:"filepath"`
	SlideNum       int    `mapstructure:"slide_num"`
	OutputFilepath string `mapstructure:"output_filepath"`
}

type ConvertParams struct {
	Filepath       string `mapstructure:"filepath"`
	OutputFilepath string `mapstructure:"output_filepath"`
	FormatType     string `mapstructure:"format_type"`
}

type CompareParams struct {
	Filepath      string `mapstructure:"filepath"`
	OtherFilepath string `mapstructure:"other_filepath"`
	Context       bool   `mapstructure:"context"`
}
