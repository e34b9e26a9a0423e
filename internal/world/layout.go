package world

import rl "github.com/gen2brain/raylib-go/raylib"

// Canonical numbering shared by child creation, vertex reconstruction,
// rotation, neighbor lookup and collision naming.
//
// Child and corner index i:  bit 0 = x, bit 1 = y, bit 2 = z. A set bit means
// the upper half (children) or the max side (corners).
//
// Edge index: 0-3 run along x (index = y + 2z), 4-7 along y (4 + x + 2z),
// 8-11 along z (8 + x + 2y), where x, y, z are the corner bits the edge keeps fixed.
//
// Face index: 2*axis + side, side 1 being the max side.
//   0 left (-x), 1 right (+x), 2 front (-y), 3 back (+y), 4 bottom (-z), 5 top (+z)

const (
	SubCubes = 8
	Edges    = 12
	Faces    = 6
	Corners  = 8
)

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Bit returns the child/corner index bit belonging to the axis.
func (a Axis) Bit() int {
	return 1 << a
}

// AxisVector returns a vector of the given length along axis.
func AxisVector(a Axis, length float32) rl.Vector3 {
	switch a {
	case AxisX:
		return rl.Vector3{X: length}
	case AxisY:
		return rl.Vector3{Y: length}
	default:
		return rl.Vector3{Z: length}
	}
}

type Direction uint8

const (
	Negative Direction = iota
	Positive
)

func (d Direction) Opposite() Direction {
	if d == Positive {
		return Negative
	}
	return Positive
}

func (d Direction) String() string {
	if d == Positive {
		return "positive"
	}
	return "negative"
}

// CornerBit reports whether corner (or child) index i is on the max side of axis.
func CornerBit(i int, axis Axis) bool {
	return i&axis.Bit() != 0
}

// ChildOffset returns the offset of child i from its parent's position, in
// units of the child size.
func ChildOffset(i int) rl.Vector3 {
	var offset rl.Vector3
	if CornerBit(i, AxisX) {
		offset.X = 1
	}
	if CornerBit(i, AxisY) {
		offset.Y = 1
	}
	if CornerBit(i, AxisZ) {
		offset.Z = 1
	}
	return offset
}

// EdgeOf returns the edge parallel to axis that passes through corner.
func EdgeOf(axis Axis, corner int) int {
	x, y, z := corner&1, (corner>>1)&1, (corner>>2)&1
	switch axis {
	case AxisX:
		return y + 2*z
	case AxisY:
		return 4 + x + 2*z
	default:
		return 8 + x + 2*y
	}
}

// EdgeAxis returns the axis an edge runs along.
func EdgeAxis(edge int) Axis {
	return Axis(edge / 4)
}

// EdgeCorners lists the start and end corner of every edge. The start corner
// has the lower coordinate along the edge axis.
var EdgeCorners = [Edges][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// FaceCorners lists the corners of every face, counter-clockwise when seen
// from outside the cube.
var FaceCorners = [Faces][4]int{
	{0, 4, 6, 2}, // left
	{1, 3, 7, 5}, // right
	{0, 1, 5, 4}, // front
	{2, 6, 7, 3}, // back
	{0, 2, 3, 1}, // bottom
	{4, 5, 7, 6}, // top
}

// FaceEdges lists the edges of every face. Edge k connects FaceCorners[f][k]
// and FaceCorners[f][(k+1)%4].
var FaceEdges = [Faces][4]int{
	{8, 6, 10, 4},
	{5, 11, 7, 9},
	{0, 9, 2, 8},
	{10, 3, 11, 1},
	{4, 1, 5, 0},
	{2, 7, 3, 6},
}

// FaceNormals are the outward unit normals of the faces.
var FaceNormals = [Faces]rl.Vector3{
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: 1},
}

// FaceAxis returns the axis a face is perpendicular to and whether it is the max side.
func FaceAxis(face int) (Axis, bool) {
	return Axis(face / 2), face%2 == 1
}

var FaceNames = [Faces]string{
	"left",
	"right",
	"front",
	"back",
	"bottom",
	"top",
}

var CornerNames = [Corners]string{
	"left front bottom",
	"right front bottom",
	"left back bottom",
	"right back bottom",
	"left front top",
	"right front top",
	"left back top",
	"right back top",
}

var EdgeNames = [Edges]string{
	"middle bottom front",
	"middle bottom back",
	"middle top front",
	"middle top back",
	"left bottom",
	"right bottom",
	"left top",
	"right top",
	"left front",
	"right front",
	"left back",
	"right back",
}

// RotationAxis holds the index permutations for a 90 degree turn around one
// axis. Every cycle {a, b, c, d} moves the content of slot a to b, b to c,
// c to d and d to a.
type RotationAxis struct {
	Axis Axis
	// Children are the two 4-cycles of child slots, one per half along the axis.
	Children [2][4]int
	// Edges are three 4-cycles. The last one holds the edges parallel to the axis.
	Edges [3][4]int
	// QuarterMirror are the edge slots whose indentation has to be mirrored
	// after a 90 degree turn, ThreeQuarterMirror after a 270 degree turn.
	QuarterMirror      [4]int
	ThreeQuarterMirror [4]int
}

// Rotation tables for turns following the right-hand rule around +x, +y and +z.
var (
	RotateX = RotationAxis{
		Axis:               AxisX,
		Children:           [2][4]int{{0, 2, 6, 4}, {1, 3, 7, 5}},
		Edges:              [3][4]int{{4, 10, 6, 8}, {5, 11, 7, 9}, {0, 1, 3, 2}},
		QuarterMirror:      [4]int{4, 5, 6, 7},
		ThreeQuarterMirror: [4]int{8, 9, 10, 11},
	}
	RotateY = RotationAxis{
		Axis:               AxisY,
		Children:           [2][4]int{{0, 4, 5, 1}, {2, 6, 7, 3}},
		Edges:              [3][4]int{{0, 8, 2, 9}, {1, 10, 3, 11}, {4, 6, 7, 5}},
		QuarterMirror:      [4]int{8, 9, 10, 11},
		ThreeQuarterMirror: [4]int{0, 1, 2, 3},
	}
	RotateZ = RotationAxis{
		Axis:               AxisZ,
		Children:           [2][4]int{{0, 1, 3, 2}, {4, 5, 7, 6}},
		Edges:              [3][4]int{{0, 5, 1, 4}, {2, 7, 3, 6}, {8, 9, 11, 10}},
		QuarterMirror:      [4]int{0, 1, 2, 3},
		ThreeQuarterMirror: [4]int{4, 5, 6, 7},
	}
)

// Rotation returns the rotation table for an axis.
func Rotation(axis Axis) RotationAxis {
	switch axis {
	case AxisX:
		return RotateX
	case AxisY:
		return RotateY
	default:
		return RotateZ
	}
}
