package world

// Neighbor returns the cube adjacent to c across the face selected by axis and
// direction. The result has the same size as c, or is larger when the tree is
// not subdivided that deep on the other side. It returns nil when c touches
// the world boundary in that direction.
func (c *Cube) Neighbor(axis Axis, direction Direction) *Cube {
	if c.IsRoot() {
		return nil
	}

	bit := axis.Bit()
	outward := direction == Positive

	// Climb while the node already sits on the requested side of its parent.
	var path []int
	n := c
	for CornerBit(n.index, axis) == outward {
		path = append(path, n.index)
		n = n.parent
		if n.IsRoot() {
			return nil
		}
	}

	neighbor := n.parent.children[n.index^bit]
	for i := len(path) - 1; i >= 0 && neighbor.kind == Octant; i-- {
		neighbor = neighbor.children[path[i]^bit]
	}
	return neighbor
}
