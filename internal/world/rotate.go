package world

// Rotate turns the cube around its center by rotations quarter turns around
// axis, following the right-hand rule. Negative values turn the other way.
// Octant cubes rotate their whole subtree.
func (c *Cube) Rotate(axis Axis, rotations int) {
	turns := ((rotations % 4) + 4) % 4
	if turns == 0 {
		return
	}

	c.rotate(Rotation(axis), turns)
	if c.kind == Octant {
		c.relocate(c.position, c.size)
	}
}

func (c *Cube) rotate(r RotationAxis, turns int) {
	switch c.kind {
	case Normal:
		for _, edges := range r.Edges {
			cycle(c.indentations[:], edges, turns)
		}
		mirrorEdges(&c.indentations, r, turns)
		c.InvalidatePolygonCache()

	case Octant:
		for _, children := range r.Children {
			cycle(c.children[:], children, turns)
		}
		for i, child := range c.children {
			child.index = i
			child.rotate(r, turns)
		}
	}
}

func mirrorEdges(indentations *[Edges]Indentation, r RotationAxis, turns int) {
	switch turns {
	case 1:
		for _, e := range r.QuarterMirror {
			indentations[e].Mirror()
		}
	case 2:
		for _, edges := range r.Edges[:2] {
			for _, e := range edges {
				indentations[e].Mirror()
			}
		}
	case 3:
		for _, e := range r.ThreeQuarterMirror {
			indentations[e].Mirror()
		}
	}
}

// cycle moves the content of slot c[k] to slot c[k+1], turns times.
func cycle[T any](s []T, c [4]int, turns int) {
	a, b, d, e := c[0], c[1], c[2], c[3]
	switch turns {
	case 1:
		s[a], s[b], s[d], s[e] = s[e], s[a], s[b], s[d]
	case 2:
		s[a], s[d] = s[d], s[a]
		s[b], s[e] = s[e], s[b]
	case 3:
		s[a], s[b], s[d], s[e] = s[b], s[d], s[e], s[a]
	}
}
