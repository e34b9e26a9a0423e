package world

import (
	"math"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ErrTypeNotNormal       = "cube-not-normal"
	ErrTypeEdgeOutOfRange  = "edge-out-of-range"
	ErrTypeChildOutOfRange = "child-out-of-range"
)

// Type is the kind of an octree node.
type Type uint8

const (
	// Empty cubes hold no geometry and are not navigable into.
	Empty Type = iota
	// Solid cubes are undeformed boxes.
	Solid
	// Normal cubes are boxes deformed by edge indentations.
	Normal
	// Octant cubes are subdivided into 8 children and hold no geometry.
	Octant
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "empty"
	case Solid:
		return "solid"
	case Normal:
		return "normal"
	case Octant:
		return "octant"
	default:
		return "unknown"
	}
}

// DefaultType is the type of children created by subdividing a cube.
const DefaultType = Solid

// DefaultSize is the edge length of a world root when none is given.
const DefaultSize = 32

// Polygon is a world space triangle.
type Polygon [3]rl.Vector3

// Cube is a node of the octree world.
type Cube struct {
	kind     Type
	size     float32
	position rl.Vector3

	// The root points to itself.
	parent *Cube
	// Slot in the parent's children, -1 for a root.
	index int

	indentations [Edges]Indentation
	children     [SubCubes]*Cube

	cacheMu           sync.Mutex
	polygonCache      []Polygon
	polygonCacheValid bool
}

// New creates a root cube.
func New(kind Type, size float32, position rl.Vector3) *Cube {
	c := &Cube{
		size:     size,
		position: position,
		index:    -1,
	}
	c.parent = c
	c.SetType(kind)
	return c
}

func newChild(parent *Cube, index int, kind Type, size float32, position rl.Vector3) *Cube {
	c := &Cube{
		size:     size,
		position: position,
		parent:   parent,
		index:    index,
	}
	c.SetType(kind)
	return c
}

func (c *Cube) Type() Type {
	return c.kind
}

func (c *Cube) Size() float32 {
	return c.size
}

// Position is the minimum corner of the cube.
func (c *Cube) Position() rl.Vector3 {
	return c.position
}

func (c *Cube) Center() rl.Vector3 {
	return rl.Vector3AddValue(c.position, c.size/2)
}

// BoundingBox is axis aligned and does not account for rotation.
func (c *Cube) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(c.position, rl.Vector3AddValue(c.position, c.size))
}

func (c *Cube) BoundingSphereRadius() float32 {
	return c.size * float32(math.Sqrt(3)) / 2
}

// SquaredDistance is the squared distance between the cube center and pos.
func (c *Cube) SquaredDistance(pos rl.Vector3) float32 {
	return rl.Vector3DistanceSqr(c.Center(), pos)
}

func (c *Cube) Parent() *Cube {
	return c.parent
}

// Index returns the slot the cube occupies in its parent. Roots have none.
func (c *Cube) Index() (int, bool) {
	if c.IsRoot() {
		return -1, false
	}
	return c.index, true
}

func (c *Cube) IsRoot() bool {
	return c.parent == c
}

// IsLeaf reports whether the cube carries geometry.
func (c *Cube) IsLeaf() bool {
	return c.kind == Solid || c.kind == Normal
}

func (c *Cube) Root() *Cube {
	root := c
	for !root.IsRoot() {
		root = root.parent
	}
	return root
}

// GridLevel is the depth of the cube, the root being level 0.
func (c *Cube) GridLevel() int {
	level := 0
	for n := c; !n.IsRoot(); n = n.parent {
		level++
	}
	return level
}

// CountGeometryCubes counts the solid and normal cubes in this subtree.
func (c *Cube) CountGeometryCubes() int {
	switch c.kind {
	case Solid, Normal:
		return 1
	case Octant:
		count := 0
		for _, child := range c.children {
			count += child.CountGeometryCubes()
		}
		return count
	default:
		return 0
	}
}

// Children returns the 8 children. All entries are nil unless the cube is an octant.
func (c *Cube) Children() [SubCubes]*Cube {
	return c.children
}

// Child returns child i and panics when i is not a valid child index.
func (c *Cube) Child(i int) *Cube {
	return c.children[i]
}

// ChildAt is the checked version of Child.
func (c *Cube) ChildAt(i int) (*Cube, error) {
	if i < 0 || i >= SubCubes {
		return nil, errors.New("child index out of range").
			WithType(ErrTypeChildOutOfRange).
			WithTag("index", i)
	}
	return c.children[i], nil
}

func (c *Cube) Indentations() [Edges]Indentation {
	return c.indentations
}

// SetType changes the cube type. Leaving Octant removes all children,
// entering Octant creates 8 children of DefaultType and entering Normal
// resets the indentations.
func (c *Cube) SetType(kind Type) {
	if c.kind == kind {
		return
	}

	if c.kind == Octant {
		c.removeChildren()
	}

	switch kind {
	case Normal:
		c.indentations = [Edges]Indentation{}
	case Octant:
		half := c.size / 2
		for i := range c.children {
			offset := rl.Vector3Scale(ChildOffset(i), half)
			c.children[i] = newChild(c, i, DefaultType, half, rl.Vector3Add(c.position, offset))
		}
	}

	c.kind = kind
	c.InvalidatePolygonCache()
}

// removeChildren detaches the children recursively. Detached cubes become
// roots of their own, so stale references stay harmless.
func (c *Cube) removeChildren() {
	for i, child := range c.children {
		if child == nil {
			continue
		}
		child.removeChildren()
		child.parent = child
		child.index = -1
		c.children[i] = nil
	}
}

// SetIndent replaces the indentation of an edge.
func (c *Cube) SetIndent(edge int, indentation Indentation) error {
	if err := c.checkIndentable(edge); err != nil {
		return err
	}
	c.indentations[edge] = indentation
	c.InvalidatePolygonCache()
	return nil
}

// Indent pushes one endpoint of an edge by steps. A positive direction moves
// the start endpoint, otherwise the end endpoint.
func (c *Cube) Indent(edge int, positiveDirection bool, steps int) error {
	if err := c.checkIndentable(edge); err != nil {
		return err
	}
	if positiveDirection {
		c.indentations[edge].IndentStart(steps)
	} else {
		c.indentations[edge].IndentEnd(steps)
	}
	c.InvalidatePolygonCache()
	return nil
}

func (c *Cube) checkIndentable(edge int) error {
	if c.kind != Normal {
		return errors.New("cube is not a normal cube").
			WithType(ErrTypeNotNormal).
			WithTag("type", c.kind.String())
	}
	if edge < 0 || edge >= Edges {
		return errors.New("edge index out of range").
			WithType(ErrTypeEdgeOutOfRange).
			WithTag("edge", edge)
	}
	return nil
}

// Vertices returns the 8 corners, indexed by the canonical corner numbering.
// Only valid for solid and normal cubes.
func (c *Cube) Vertices() [Corners]rl.Vector3 {
	if !c.IsLeaf() {
		panic("world: vertices requested from a " + c.kind.String() + " cube")
	}

	min := c.position
	max := rl.Vector3AddValue(c.position, c.size)
	step := c.size / IndentationMax

	var vertices [Corners]rl.Vector3
	for i := range vertices {
		vertices[i] = rl.Vector3{
			X: c.vertexCoord(i, AxisX, min.X, max.X, step),
			Y: c.vertexCoord(i, AxisY, min.Y, max.Y, step),
			Z: c.vertexCoord(i, AxisZ, min.Z, max.Z, step),
		}
	}
	return vertices
}

func (c *Cube) vertexCoord(corner int, axis Axis, min, max, step float32) float32 {
	upper := CornerBit(corner, axis)
	if c.kind != Normal {
		if upper {
			return max
		}
		return min
	}

	ind := c.indentations[EdgeOf(axis, corner)]
	if upper {
		return max - float32(ind.End())*step
	}
	return min + float32(ind.Start())*step
}

// Clone deep copies the subtree. The copy is a root.
func (c *Cube) Clone() *Cube {
	return c.clone(nil, -1)
}

func (c *Cube) clone(parent *Cube, index int) *Cube {
	n := &Cube{
		kind:         c.kind,
		size:         c.size,
		position:     c.position,
		parent:       parent,
		index:        index,
		indentations: c.indentations,
	}
	if parent == nil {
		n.parent = n
	}

	if c.kind == Octant {
		for i, child := range c.children {
			n.children[i] = child.clone(n, i)
		}
	}

	c.cacheMu.Lock()
	n.polygonCache = c.polygonCache
	n.polygonCacheValid = c.polygonCacheValid
	c.cacheMu.Unlock()

	return n
}

// Restore replaces the contents of the cube with a deep copy of snapshot.
// The cube keeps its place in the tree; the copied subtree is moved and
// scaled to the cube's position and size.
func (c *Cube) Restore(snapshot *Cube) {
	if c.kind == Octant {
		c.removeChildren()
	}

	c.kind = snapshot.kind
	c.indentations = snapshot.indentations
	if snapshot.kind == Octant {
		for i, child := range snapshot.children {
			c.children[i] = child.clone(c, i)
		}
	}
	c.relocate(c.position, c.size)
}

// relocate moves the subtree to position, rescales it to size and lays the
// children out again according to their slots.
func (c *Cube) relocate(position rl.Vector3, size float32) {
	c.position = position
	c.size = size
	c.InvalidatePolygonCache()
	if c.kind != Octant {
		return
	}

	half := size / 2
	for i, child := range c.children {
		child.parent = c
		child.index = i
		child.relocate(rl.Vector3Add(position, rl.Vector3Scale(ChildOffset(i), half)), half)
	}
}

// Walk visits the subtree in pre-order. Returning false from fn skips the
// children of the visited cube.
func (c *Cube) Walk(fn func(*Cube) bool) {
	if !fn(c) || c.kind != Octant {
		return
	}
	for _, child := range c.children {
		child.Walk(fn)
	}
}
