// Package canvas provides drawing surfaces for plantgen.Interpreter.Render.
package canvas

import (
	"math"

	"github.com/viktordanov/plantgen"
)

// Segment is a visible line drawn with the pen down.
type Segment struct {
	From, To plantgen.Point
}

// Recorder keeps the drawn segments in memory. It is the reference
// implementation of plantgen.Canvas.
type Recorder struct {
	Segments []Segment
	// Relocations counts pen-up moves.
	Relocations int

	penDown bool
	pos     plantgen.Point
	heading float64
}

var _ plantgen.Canvas = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{penDown: true}
}

func (r *Recorder) PenDown() {
	r.penDown = true
}

func (r *Recorder) PenUp() {
	r.penDown = false
}

func (r *Recorder) IsDown() bool {
	return r.penDown
}

func (r *Recorder) MoveTo(x, y float64) {
	to := plantgen.Point{X: x, Y: y}
	if r.penDown {
		r.Segments = append(r.Segments, Segment{From: r.pos, To: to})
	} else {
		r.Relocations++
	}
	r.pos = to
}

func (r *Recorder) SetHeading(angle float64) {
	r.heading = angle
}

// Clear removes everything drawn and returns the cursor to the origin,
// heading 0 with the pen down.
func (r *Recorder) Clear() {
	r.Segments = r.Segments[:0]
	r.Relocations = 0
	r.pos = plantgen.Point{}
	r.heading = 0
	r.penDown = true
}

func (r *Recorder) Position() (float64, float64) {
	return r.pos.X, r.pos.Y
}

func (r *Recorder) Heading() float64 {
	return r.heading
}

// Bounds returns the smallest rectangle holding every segment. ok is false
// when nothing was drawn.
func (r *Recorder) Bounds() (lo, hi plantgen.Point, ok bool) {
	if len(r.Segments) == 0 {
		return lo, hi, false
	}
	lo = plantgen.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = plantgen.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range r.Segments {
		for _, p := range [2]plantgen.Point{s.From, s.To} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}
