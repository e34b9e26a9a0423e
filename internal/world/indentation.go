package world

import "fmt"

// IndentationMax is the number of steps an edge endpoint can be pushed.
const IndentationMax = 8

// Indentation describes how far the two endpoints of a cube edge have been
// pushed toward each other. Start is measured from the endpoint with the lower
// coordinate along the edge axis, End from the endpoint with the higher one.
type Indentation struct {
	start uint8
	end   uint8
}

// NewIndentation creates an indentation, clamping both values into [0, IndentationMax].
func NewIndentation(start, end int) Indentation {
	return Indentation{
		start: clampStep(start),
		end:   clampStep(end),
	}
}

func (i Indentation) Start() int {
	return int(i.start)
}

func (i Indentation) End() int {
	return int(i.end)
}

func (i *Indentation) SetStart(position int) {
	i.start = clampStep(position)
}

func (i *Indentation) SetEnd(position int) {
	i.end = clampStep(position)
}

// IndentStart moves the start endpoint by steps. Negative steps pull it back.
func (i *Indentation) IndentStart(steps int) {
	i.start = clampStep(int(i.start) + steps)
}

// IndentEnd moves the end endpoint by steps. Negative steps pull it back.
func (i *Indentation) IndentEnd(steps int) {
	i.end = clampStep(int(i.end) + steps)
}

// Offset is the remaining edge length in steps. Negative when the endpoints overlap.
func (i Indentation) Offset() int {
	return IndentationMax - int(i.start) - int(i.end)
}

// Mirror swaps start and end, used when a rotation flips the edge direction.
func (i *Indentation) Mirror() {
	i.start, i.end = i.end, i.start
}

// Mirrored returns a mirrored copy.
func (i Indentation) Mirrored() Indentation {
	return Indentation{start: i.end, end: i.start}
}

func (i Indentation) IsZero() bool {
	return i.start == 0 && i.end == 0
}

func (i Indentation) String() string {
	return fmt.Sprintf("%d/%d", i.start, i.end)
}

func clampStep(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > IndentationMax {
		return IndentationMax
	}
	return uint8(v)
}
