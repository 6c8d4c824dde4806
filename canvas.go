package plantgen

// Canvas is the drawing surface driven by Interpreter.Render. MoveTo draws a
// segment from the current position when the pen is down and only relocates
// when it is up.
type Canvas interface {
	PenDown()
	PenUp()
	MoveTo(x, y float64)
	SetHeading(angle float64)
	Clear()
	Position() (x, y float64)
	Heading() float64
}
