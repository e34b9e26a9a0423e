package world

// UpdatePolygonCache rebuilds the triangles of the cube. Solid and normal
// cubes produce 12 triangles, the other types none.
func (c *Cube) UpdatePolygonCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.updatePolygonCache()
}

func (c *Cube) updatePolygonCache() {
	c.polygonCache = c.buildPolygons()
	c.polygonCacheValid = true
	instrumentPolygonCacheUpdate(c.kind)
}

func (c *Cube) InvalidatePolygonCache() {
	c.cacheMu.Lock()
	c.polygonCacheValid = false
	c.cacheMu.Unlock()
}

func (c *Cube) PolygonCacheValid() bool {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	return c.polygonCacheValid
}

// PolygonCache returns the cached triangles, valid or not.
func (c *Cube) PolygonCache() []Polygon {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	return c.polygonCache
}

// Polygons collects the polygon caches of all geometry cubes in the subtree,
// children before parents. With updateInvalid, stale caches are rebuilt
// first. Otherwise cubes with a stale cache are left out.
func (c *Cube) Polygons(updateInvalid bool) [][]Polygon {
	var polygons [][]Polygon
	c.collectPolygons(updateInvalid, &polygons)
	return polygons
}

func (c *Cube) collectPolygons(updateInvalid bool, polygons *[][]Polygon) {
	if c.kind == Octant {
		for _, child := range c.children {
			child.collectPolygons(updateInvalid, polygons)
		}
		return
	}
	if !c.IsLeaf() {
		return
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if !c.polygonCacheValid {
		if !updateInvalid {
			return
		}
		c.updatePolygonCache()
	}
	*polygons = append(*polygons, c.polygonCache)
}

func (c *Cube) buildPolygons() []Polygon {
	if !c.IsLeaf() {
		return nil
	}

	vertices := c.Vertices()
	polygons := make([]Polygon, 0, 2*Faces)
	for face, corners := range FaceCorners {
		q0, q1, q2, q3 := vertices[corners[0]], vertices[corners[1]], vertices[corners[2]], vertices[corners[3]]
		if c.flipDiagonal(face) {
			polygons = append(polygons, Polygon{q0, q1, q3}, Polygon{q1, q2, q3})
		} else {
			polygons = append(polygons, Polygon{q0, q1, q2}, Polygon{q0, q2, q3})
		}
	}
	return polygons
}

// flipDiagonal reports whether the face quad is split across corners 1 and 3
// instead of 0 and 2, which keeps an indented face folded outward.
func (c *Cube) flipDiagonal(face int) bool {
	if c.kind != Normal {
		return false
	}
	corners := FaceCorners[face]
	return c.faceDepth(face, corners[1])+c.faceDepth(face, corners[3]) <
		c.faceDepth(face, corners[0])+c.faceDepth(face, corners[2])
}

// faceDepth is how far a face corner has been pushed into the cube along the
// face axis.
func (c *Cube) faceDepth(face, corner int) int {
	axis, max := FaceAxis(face)
	ind := c.indentations[EdgeOf(axis, corner)]
	if max {
		return ind.End()
	}
	return ind.Start()
}
