package toolworker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// FakeFormat marks files written by the Fake engine.
const FakeFormat = "pptmcp-fake"

const (
	fakeSlideWidth  = 960
	fakeSlideHeight = 540
)

// FakeDeck is the document model the Fake engine keeps per handle. Saving in
// the pptx2019 format writes it as JSON.
type FakeDeck struct {
	Format  string       `json:"format"`
	Slides  []FakeSlide  `json:"slides"`
	Masters []FakeMaster `json:"masters"`
}

type FakeSlide struct {
	Shapes []FakeShape `json:"shapes"`
}

type FakeMaster struct {
	Shapes []FakeShape `json:"shapes"`
}

type FakeParagraph struct {
	Text      string `json:"text"`
	Alignment string `json:"alignment,omitempty"`
}

type FakeShape struct {
	Name        string          `json:"name,omitempty"`
	Kind        string          `json:"kind"`
	ShapeType   string          `json:"shape_type,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Bounds      Rect            `json:"bounds"`
	Fill        *Fill           `json:"fill,omitempty"`
	Line        *Fill           `json:"line,omitempty"`
	TextFill    *Fill           `json:"text_fill,omitempty"`
	Autofit     string          `json:"autofit,omitempty"`
	Vertical    string          `json:"vertical,omitempty"`
	Paragraphs  []FakeParagraph `json:"paragraphs,omitempty"`
	Cells       [][]string      `json:"cells,omitempty"`
	Children    []FakeShape     `json:"children,omitempty"`
	ChartType   string          `json:"chart_type,omitempty"`
	Layout      string          `json:"layout,omitempty"`
	Image       string          `json:"image,omitempty"`
}

// NewFakeDeck returns the engine default document: one blank slide and one
// master.
func NewFakeDeck() *FakeDeck {
	return &FakeDeck{
		Format:  FakeFormat,
		Slides:  []FakeSlide{{}},
		Masters: []FakeMaster{{}},
	}
}

func ReadFakeDeck(path string) (*FakeDeck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var deck FakeDeck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if deck.Format != FakeFormat {
		return nil, fmt.Errorf("%s is not a presentation", path)
	}
	return &deck, nil
}

func WriteFakeDeck(path string, deck *FakeDeck) error {
	deck.Format = FakeFormat
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Fake is an in-process engine that implements the worker protocol over
// FakeDeck snapshots.
type Fake struct {
	mu   sync.Mutex
	docs map[string]*FakeDeck
}

func NewFake() *Fake {
	return &Fake{docs: make(map[string]*FakeDeck)}
}

// OpenDocuments reports how many handles are currently bound.
func (f *Fake) OpenDocuments() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

func (f *Fake) Call(_ context.Context, method string, params any, result any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch method {
	case MethodWorkerGetInfo:
		return assignResult(result, WorkerInfo{OK: true, Worker: "fake"})
	case MethodPresentationNew:
		var p LoadParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		f.docs[p.Doc] = NewFakeDeck()
		return assignResult(result, map[string]any{"ok": true})
	case MethodPresentationLoad:
		var p LoadParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := ReadFakeDeck(p.Path)
		if err != nil {
			return newRemoteError(CodeDocumentLoadFailed, err.Error())
		}
		f.docs[p.Doc] = deck
		return assignResult(result, map[string]any{"ok": true})
	case MethodPresentationSave:
		var p SaveParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		if err := fakeSave(deck, p.Path, p.Format); err != nil {
			return err
		}
		return assignResult(result, map[string]any{"ok": true})
	case MethodPresentationClose:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		delete(f.docs, p.Doc)
		return assignResult(result, map[string]any{"ok": true})
	case MethodPresentationInfo:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		return assignResult(result, PresentationInfo{SlideCount: len(deck.Slides), MasterCount: len(deck.Masters)})
	}

	return f.callSlide(method, params, result)
}

func (f *Fake) callSlide(method string, params any, result any) error {
	switch method {
	case MethodSlideAppend:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		deck.Slides = append(deck.Slides, FakeSlide{})
		return assignResult(result, IndexResult{Index: len(deck.Slides) - 1})
	case MethodSlideRemove:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		// Removing one past the end is accepted and changes nothing.
		if p.Slide == len(deck.Slides) {
			return assignResult(result, map[string]any{"ok": true})
		}
		if err := checkIndex("slide", p.Slide, len(deck.Slides)); err != nil {
			return err
		}
		deck.Slides = append(deck.Slides[:p.Slide], deck.Slides[p.Slide+1:]...)
		return assignResult(result, map[string]any{"ok": true})
	case MethodSlideSetNumber:
		var p SlideNumberParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		if err := checkIndex("slide", p.Slide, len(deck.Slides)); err != nil {
			return err
		}
		if p.Number < 1 || p.Number > len(deck.Slides) {
			return newRemoteError(CodeIndexOutOfRange, fmt.Sprintf("slide number %d outside 1..%d", p.Number, len(deck.Slides)))
		}
		moved := deck.Slides[p.Slide]
		rest := append(append([]FakeSlide{}, deck.Slides[:p.Slide]...), deck.Slides[p.Slide+1:]...)
		target := p.Number - 1
		deck.Slides = append(append(append([]FakeSlide{}, rest[:target]...), moved), rest[target:]...)
		return assignResult(result, map[string]any{"ok": true})
	case MethodSlideExportSVG, MethodSlideRenderImage:
		var p ExportParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		slide, err := f.slide(p.Doc, p.Slide)
		if err != nil {
			return err
		}
		content := fakeSVG(slide)
		if method == MethodSlideRenderImage {
			content = blankPNGBytes()
		}
		if err := os.WriteFile(p.Path, content, 0o600); err != nil {
			return newRemoteError(CodeEngineFailed, err.Error())
		}
		return assignResult(result, map[string]any{"ok": true})
	case MethodShapeList:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		slide, err := f.slide(p.Doc, p.Slide)
		if err != nil {
			return err
		}
		shapes := make([]ShapeInfo, 0, len(slide.Shapes))
		for idx, shape := range slide.Shapes {
			shapes = append(shapes, describeShape(idx, shape))
		}
		return assignResult(result, ShapeListResult{Shapes: shapes})
	case MethodShapeAppend:
		var p ShapeAppendParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		return f.appendShape(p.Target, FakeShape{Kind: KindAutoShape, ShapeType: p.ShapeType, Bounds: p.Bounds}, result)
	case MethodChartAppend:
		var p ChartAppendParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		return f.appendShape(p.Target, FakeShape{Kind: KindChart, ChartType: p.ChartType, Bounds: p.Bounds}, result)
	case MethodSmartArtAppend:
		var p SmartArtAppendParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		return f.appendShape(p.Target, FakeShape{Kind: KindSmartArt, Layout: p.Layout, Bounds: p.Bounds}, result)
	case MethodTableAppend:
		var p TableAppendParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		if len(p.Widths) == 0 || len(p.Heights) == 0 {
			return newRemoteError(CodeEngineFailed, "table needs at least one row and one column")
		}
		bounds := Rect{Left: p.Left, Top: p.Top, Right: p.Left + sum(p.Widths), Bottom: p.Top + sum(p.Heights)}
		cells := make([][]string, len(p.Heights))
		for row := range cells {
			cells[row] = make([]string, len(p.Widths))
		}
		return f.appendShape(p.Target, FakeShape{Kind: KindTable, Bounds: bounds, Cells: cells}, result)
	case MethodMasterAppendImage:
		var p MasterImageParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		deck, err := f.doc(p.Doc)
		if err != nil {
			return err
		}
		if err := checkIndex("master", p.Master, len(deck.Masters)); err != nil {
			return err
		}
		if err := checkImage(p.ImagePath); err != nil {
			return err
		}
		master := &deck.Masters[p.Master]
		master.Shapes = append(master.Shapes, FakeShape{
			Name:   fmt.Sprintf("Picture %d", len(master.Shapes)+1),
			Kind:   KindPicture,
			Bounds: p.Bounds,
			Line:   &Fill{Type: FillNone},
			Image:  p.ImagePath,
		})
		return assignResult(result, IndexResult{Index: len(master.Shapes) - 1})
	}

	return f.callShape(method, params, result)
}

func (f *Fake) callShape(method string, params any, result any) error {
	switch method {
	case MethodShapeRemove:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		slide, err := f.slide(p.Doc, p.Slide)
		if err != nil {
			return err
		}
		if p.Shape == len(slide.Shapes) {
			return assignResult(result, map[string]any{"ok": true})
		}
		if err := checkIndex("shape", p.Shape, len(slide.Shapes)); err != nil {
			return err
		}
		slide.Shapes = append(slide.Shapes[:p.Shape], slide.Shapes[p.Shape+1:]...)
		return assignResult(result, map[string]any{"ok": true})
	case MethodShapeSetFill, MethodShapeSetLine, MethodTextSetFill:
		var p FillParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.shape(p.Target)
		if err != nil {
			return err
		}
		fill := p.Fill
		switch method {
		case MethodShapeSetFill:
			if fill.Type == FillPicture && strings.TrimSpace(fill.PictureURL) == "" {
				return newRemoteError(CodeEngineFailed, "picture fill needs a picture url")
			}
			shape.Fill = &fill
		case MethodShapeSetLine:
			shape.Line = &fill
		default:
			if err := requireTextFrame(shape); err != nil {
				return err
			}
			shape.TextFill = &fill
		}
		return assignResult(result, map[string]any{"ok": true})
	case MethodShapeGroup:
		var p GroupParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		slide, err := f.slide(p.Doc, p.Slide)
		if err != nil {
			return err
		}
		index, err := groupShapes(slide, p.Shapes)
		if err != nil {
			return err
		}
		return assignResult(result, IndexResult{Index: index})
	case MethodShapeUngroup:
		var p Target
		if err := assignResult(&p, params); err != nil {
			return err
		}
		slide, err := f.slide(p.Doc, p.Slide)
		if err != nil {
			return err
		}
		if err := checkIndex("shape", p.Shape, len(slide.Shapes)); err != nil {
			return err
		}
		group := slide.Shapes[p.Shape]
		if group.Kind != KindGroup {
			return newRemoteError(CodeTypeMismatch, fmt.Sprintf("shape %d is not a group", p.Shape))
		}
		shapes := append([]FakeShape{}, slide.Shapes[:p.Shape]...)
		shapes = append(shapes, group.Children...)
		shapes = append(shapes, slide.Shapes[p.Shape+1:]...)
		slide.Shapes = shapes
		return assignResult(result, CountResult{Count: len(group.Children)})
	case MethodShapeRenderImage:
		var p ExportParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		if _, err := f.shape(p.Target); err != nil {
			return err
		}
		if err := os.WriteFile(p.Path, blankPNGBytes(), 0o600); err != nil {
			return newRemoteError(CodeEngineFailed, err.Error())
		}
		return assignResult(result, map[string]any{"ok": true})
	}

	return f.callText(method, params, result)
}

func (f *Fake) callText(method string, params any, result any) error {
	switch method {
	case MethodTextSet:
		var p TextParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.textShape(p.Target)
		if err != nil {
			return err
		}
		shape.Paragraphs = shape.Paragraphs[:0]
		for _, line := range strings.Split(p.Text, "\n") {
			shape.Paragraphs = append(shape.Paragraphs, FakeParagraph{Text: line})
		}
		return assignResult(result, map[string]any{"ok": true})
	case MethodTextSetAutofit:
		var p AutofitParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.textShape(p.Target)
		if err != nil {
			return err
		}
		shape.Autofit = p.Autofit
		return assignResult(result, map[string]any{"ok": true})
	case MethodTextSetVertical:
		var p VerticalParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.textShape(p.Target)
		if err != nil {
			return err
		}
		shape.Vertical = p.Vertical
		return assignResult(result, map[string]any{"ok": true})
	case MethodParagraphSetAlignment:
		var p ParagraphAlignmentParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.textShape(p.Target)
		if err != nil {
			return err
		}
		if err := checkIndex("paragraph", p.Paragraph, len(shape.Paragraphs)); err != nil {
			return err
		}
		shape.Paragraphs[p.Paragraph].Alignment = p.Alignment
		return assignResult(result, map[string]any{"ok": true})
	case MethodParagraphsReplaceHTML:
		var p HTMLParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.textShape(p.Target)
		if err != nil {
			return err
		}
		paragraphs, err := htmlParagraphs(p.HTML)
		if err != nil {
			return newRemoteError(CodeEngineFailed, err.Error())
		}
		shape.Paragraphs = paragraphs
		return assignResult(result, CountResult{Count: len(paragraphs)})
	case MethodTableFill:
		var p TableFillParams
		if err := assignResult(&p, params); err != nil {
			return err
		}
		shape, err := f.shape(p.Target)
		if err != nil {
			return err
		}
		if shape.Kind != KindTable {
			return newRemoteError(CodeTypeMismatch, fmt.Sprintf("shape %d is not a table", p.Shape))
		}
		for row := 0; row < len(shape.Cells) && row < len(p.Cells); row++ {
			for col := 0; col < len(shape.Cells[row]) && col < len(p.Cells[row]); col++ {
				shape.Cells[row][col] = p.Cells[row][col]
			}
		}
		return assignResult(result, map[string]any{"ok": true})
	}
	return newRemoteError(CodeEngineFailed, "unknown method "+method)
}

func (f *Fake) Close() error {
	return nil
}

func (f *Fake) HealthCheck(_ context.Context) error {
	return nil
}

func (f *Fake) doc(handle string) (*FakeDeck, error) {
	deck, ok := f.docs[handle]
	if !ok {
		return nil, newRemoteError(CodeEngineFailed, fmt.Sprintf("unknown document %q", handle))
	}
	return deck, nil
}

func (f *Fake) slide(handle string, index int) (*FakeSlide, error) {
	deck, err := f.doc(handle)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("slide", index, len(deck.Slides)); err != nil {
		return nil, err
	}
	return &deck.Slides[index], nil
}

func (f *Fake) shape(target Target) (*FakeShape, error) {
	slide, err := f.slide(target.Doc, target.Slide)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("shape", target.Shape, len(slide.Shapes)); err != nil {
		return nil, err
	}
	return &slide.Shapes[target.Shape], nil
}

func (f *Fake) textShape(target Target) (*FakeShape, error) {
	shape, err := f.shape(target)
	if err != nil {
		return nil, err
	}
	if err := requireTextFrame(shape); err != nil {
		return nil, err
	}
	return shape, nil
}

func (f *Fake) appendShape(target Target, shape FakeShape, result any) error {
	slide, err := f.slide(target.Doc, target.Slide)
	if err != nil {
		return err
	}
	if shape.Name == "" {
		shape.Name = fmt.Sprintf("Shape %d", len(slide.Shapes)+1)
	}
	slide.Shapes = append(slide.Shapes, shape)
	return assignResult(result, IndexResult{Index: len(slide.Shapes) - 1})
}

func requireTextFrame(shape *FakeShape) error {
	if shape.Kind != KindAutoShape {
		return newRemoteError(CodeTypeMismatch, fmt.Sprintf("%s shape has no text frame", shape.Kind))
	}
	return nil
}

func checkIndex(what string, index, count int) error {
	if index < 0 || index >= count {
		return newRemoteError(CodeIndexOutOfRange, fmt.Sprintf("%s index %d out of range (count %d)", what, index, count))
	}
	return nil
}

func checkImage(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return newRemoteError(CodeEngineFailed, err.Error())
	}
	defer file.Close()
	if _, err := io.ReadAll(file); err != nil {
		return newRemoteError(CodeEngineFailed, err.Error())
	}
	return nil
}

// groupShapes replaces the addressed shapes with one group placed where the
// first of them was.
func groupShapes(slide *FakeSlide, indices []int) (int, error) {
	if len(indices) < 2 {
		return 0, newRemoteError(CodeEngineFailed, "grouping needs at least two shapes")
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if err := checkIndex("shape", idx, len(slide.Shapes)); err != nil {
			return 0, err
		}
		if seen[idx] {
			return 0, newRemoteError(CodeEngineFailed, fmt.Sprintf("shape %d listed twice", idx))
		}
		seen[idx] = true
	}
	children := make([]FakeShape, 0, len(indices))
	for _, idx := range indices {
		children = append(children, slide.Shapes[idx])
	}
	sorted := append([]int{}, indices...)
	sort.Ints(sorted)
	at := sorted[0]

	group := FakeShape{
		Name:     fmt.Sprintf("Group %d", at+1),
		Kind:     KindGroup,
		Bounds:   unionBounds(children),
		Children: children,
	}
	remaining := make([]FakeShape, 0, len(slide.Shapes)-len(indices)+1)
	for idx, shape := range slide.Shapes {
		if idx == at {
			remaining = append(remaining, group)
		}
		if seen[idx] {
			continue
		}
		remaining = append(remaining, shape)
	}
	slide.Shapes = remaining
	return at, nil
}

func unionBounds(shapes []FakeShape) Rect {
	bounds := shapes[0].Bounds
	for _, shape := range shapes[1:] {
		bounds.Left = min(bounds.Left, shape.Bounds.Left)
		bounds.Top = min(bounds.Top, shape.Bounds.Top)
		bounds.Right = max(bounds.Right, shape.Bounds.Right)
		bounds.Bottom = max(bounds.Bottom, shape.Bounds.Bottom)
	}
	return bounds
}

func describeShape(index int, shape FakeShape) ShapeInfo {
	info := ShapeInfo{
		Index:          index,
		Name:           shape.Name,
		Kind:           shape.Kind,
		ShapeType:      shape.ShapeType,
		Placeholder:    shape.Placeholder,
		Bounds:         shape.Bounds,
		Text:           fakeShapeText(shape),
		ParagraphCount: len(shape.Paragraphs),
		Children:       len(shape.Children),
		ChartType:      shape.ChartType,
		Layout:         shape.Layout,
	}
	if shape.Kind == KindTable {
		info.Rows = len(shape.Cells)
		if len(shape.Cells) > 0 {
			info.Columns = len(shape.Cells[0])
		}
	}
	return info
}

func fakeShapeText(shape FakeShape) string {
	switch shape.Kind {
	case KindTable:
		rows := make([]string, 0, len(shape.Cells))
		for _, row := range shape.Cells {
			rows = append(rows, strings.Join(row, "\t"))
		}
		return strings.Join(rows, "\n")
	case KindGroup:
		parts := []string{}
		for _, child := range shape.Children {
			if text := fakeShapeText(child); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "\n")
	}
	lines := make([]string, 0, len(shape.Paragraphs))
	for _, paragraph := range shape.Paragraphs {
		lines = append(lines, paragraph.Text)
	}
	return strings.Join(lines, "\n")
}

var htmlBlockTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func htmlParagraphs(fragment string) ([]FakeParagraph, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	paragraphs := []FakeParagraph{}
	var current strings.Builder
	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			paragraphs = append(paragraphs, FakeParagraph{Text: text})
		}
		current.Reset()
	}
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			flush()
			return paragraphs, nil
		case html.TextToken:
			current.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if htmlBlockTags[string(name)] {
				flush()
			}
		}
	}
}

func fakeSave(deck *FakeDeck, path, format string) error {
	var content []byte
	switch strings.ToLower(format) {
	case FormatPptx2019, "":
		if err := WriteFakeDeck(path, deck); err != nil {
			return newRemoteError(CodeEngineFailed, err.Error())
		}
		return nil
	case FormatPDF:
		content = []byte("%PDF-1.4\n" + fakeDeckText(deck))
	case FormatHTML:
		var buf bytes.Buffer
		buf.WriteString("<html><body>\n")
		for idx, slide := range deck.Slides {
			fmt.Fprintf(&buf, "<section id=\"slide-%d\">\n", idx)
			for _, shape := range slide.Shapes {
				if text := fakeShapeText(shape); text != "" {
					fmt.Fprintf(&buf, "<p>%s</p>\n", html.EscapeString(text))
				}
			}
			buf.WriteString("</section>\n")
		}
		buf.WriteString("</body></html>\n")
		content = buf.Bytes()
	case FormatOFD, FormatXPS:
		content = []byte(strings.ToUpper(format) + "\n" + fakeDeckText(deck))
	default:
		return newRemoteError(CodeEngineFailed, "unsupported save format "+format)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return newRemoteError(CodeEngineFailed, err.Error())
	}
	return nil
}

func fakeDeckText(deck *FakeDeck) string {
	var buf strings.Builder
	for idx, slide := range deck.Slides {
		fmt.Fprintf(&buf, "slide %d\n", idx+1)
		for _, shape := range slide.Shapes {
			if text := fakeShapeText(shape); text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}

func fakeSVG(slide *FakeSlide) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", fakeSlideWidth, fakeSlideHeight)
	for _, shape := range slide.Shapes {
		b := shape.Bounds
		fmt.Fprintf(&buf, "<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"black\"/>\n", b.Left, b.Top, b.Width(), b.Height())
		if text := fakeShapeText(shape); text != "" {
			fmt.Fprintf(&buf, "<text x=\"%g\" y=\"%g\">%s</text>\n", b.Left, b.Top, html.EscapeString(text))
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func sum(values []float64) float64 {
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total
}

func assignResult(dest any, src any) error {
	if dest == nil {
		return nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func blankPNGBytes() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 220, G: 220, B: 220, A: 255})
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
