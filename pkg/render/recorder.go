package render

import "image/color"

// Op is the kind of a recorded draw command.
type Op int

const (
	OpClear Op = iota
	OpFillCircle
	OpFillRect
	OpStrokeLine
	OpText
)

// Command is one recorded draw call. Fields not used by Op are zero.
type Command struct {
	Op             Op
	X, Y, X2, Y2   float64 // FillRect stores width/height in X2/Y2
	R, Width, Size float64
	Align          Align
	Text           string
	Color          color.Color
}

// Recorder is a Surface that keeps the commands of the current frame so they
// can be replayed later, e.g. from a backend's own draw callback. Clear starts
// a new frame.
type Recorder struct {
	cmds []Command
}

func NewRecorder() *Recorder {
	return &Recorder{cmds: make([]Command, 0, 64)}
}

func (r *Recorder) Clear() {
	r.cmds = append(r.cmds[:0], Command{Op: OpClear})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpFillCircle, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpFillRect, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpStrokeLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (r *Recorder) Text(s string, x, y, size float64, align Align, c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpText, Text: s, X: x, Y: y, Size: size, Align: align, Color: c})
}

// Commands returns the commands of the current frame. The slice is reused by
// the next Clear.
func (r *Recorder) Commands() []Command { return r.cmds }

// Replay issues the current frame's commands to dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.cmds {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpFillCircle:
			dst.FillCircle(c.X, c.Y, c.R, c.Color)
		case OpFillRect:
			dst.FillRect(c.X, c.Y, c.X2, c.Y2, c.Color)
		case OpStrokeLine:
			dst.StrokeLine(c.X, c.Y, c.X2, c.Y2, c.Width, c.Color)
		case OpText:
			dst.Text(c.Text, c.X, c.Y, c.Size, c.Align, c.Color)
		}
	}
}

// Count returns how many commands of kind op the current frame holds. It
// exists for tests that assert on what a frame drew.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}
