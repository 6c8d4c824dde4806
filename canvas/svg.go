package canvas

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
)

// SVG records like a Recorder and serializes the drawing as an SVG document.
// The turtle's y axis points up, so y is flipped on output.
type SVG struct {
	*Recorder

	Stroke      string
	StrokeWidth float64
	Margin      float64
	Title       string
}

func NewSVG() *SVG {
	return &SVG{
		Recorder:    NewRecorder(),
		Stroke:      "#2f6b2f",
		StrokeWidth: 1,
		Margin:      10,
	}
}

// Document builds the SVG tree of everything drawn so far.
func (s *SVG) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	lo, hi, ok := s.Bounds()
	if !ok {
		root.CreateAttr("viewBox", "0 0 0 0")
	} else {
		width := hi.X - lo.X + 2*s.Margin
		height := hi.Y - lo.Y + 2*s.Margin
		root.CreateAttr("viewBox", fmt.Sprintf("%s %s %s %s",
			formatFloat(lo.X-s.Margin), formatFloat(-hi.Y-s.Margin),
			formatFloat(width), formatFloat(height)))
		root.CreateAttr("width", formatFloat(width))
		root.CreateAttr("height", formatFloat(height))
	}

	if s.Title != "" {
		root.CreateElement("title").SetText(s.Title)
	}

	group := root.CreateElement("g")
	group.CreateAttr("stroke", s.Stroke)
	group.CreateAttr("stroke-width", formatFloat(s.StrokeWidth))
	group.CreateAttr("stroke-linecap", "round")
	for _, seg := range s.Segments {
		line := group.CreateElement("line")
		line.CreateAttr("x1", formatFloat(seg.From.X))
		line.CreateAttr("y1", formatFloat(-seg.From.Y))
		line.CreateAttr("x2", formatFloat(seg.To.X))
		line.CreateAttr("y2", formatFloat(-seg.To.Y))
	}

	doc.Indent(2)
	return doc
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	return s.Document().WriteTo(w)
}

func (s *SVG) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
