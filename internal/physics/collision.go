package physics

import (
	"math"

	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Boxed is anything with an axis aligned cube shape.
type Boxed interface {
	Center() rl.Vector3
	Size() float32
}

// Feature is a named face, corner or edge of a hit cube. Position is the face
// center, the corner or the edge midpoint in world space.
type Feature struct {
	Index    int
	Name     string
	Position rl.Vector3
}

// RayCubeCollision describes where a ray hits a cube: the selected face, the
// intersection with that face's plane and the corner and edge of the face
// nearest to the intersection.
type RayCubeCollision[T Boxed] struct {
	cube         T
	intersection rl.Vector3
	face         Feature
	corner       Feature
	edge         Feature
}

// NewRayCubeCollision computes the hit details of a ray known to hit cube.
// Only faces turned toward the ray are considered. Among them the one whose
// plane intersection lies nearest to the cube center is selected.
func NewRayCubeCollision[T Boxed](cube T, pos, dir rl.Vector3) *RayCubeCollision[T] {
	center := cube.Center()
	half := cube.Size() / 2
	at := func(unit rl.Vector3) rl.Vector3 {
		return rl.Vector3Add(center, rl.Vector3Scale(unit, half))
	}

	c := &RayCubeCollision[T]{cube: cube}
	c.face = faceFeature(0, at)
	c.intersection = c.face.Position

	nearest := float32(math.MaxFloat32)
	for f, normal := range world.FaceNormals {
		denominator := rl.Vector3DotProduct(dir, normal)
		if denominator >= 0 {
			continue
		}

		planePos := at(normal)
		distance := rl.Vector3DotProduct(rl.Vector3Subtract(pos, planePos), normal) / denominator
		intersection := rl.Vector3Subtract(pos, rl.Vector3Scale(dir, distance))

		if d := rl.Vector3DistanceSqr(center, intersection); d < nearest {
			nearest = d
			c.face = faceFeature(f, at)
			c.intersection = intersection
		}
	}

	nearest = float32(math.MaxFloat32)
	for _, corner := range world.FaceCorners[c.face.Index] {
		position := at(unitCorner(corner))
		if d := rl.Vector3DistanceSqr(position, c.intersection); d < nearest {
			nearest = d
			c.corner = Feature{Index: corner, Name: world.CornerNames[corner], Position: position}
		}
	}

	nearest = float32(math.MaxFloat32)
	for _, edge := range world.FaceEdges[c.face.Index] {
		corners := world.EdgeCorners[edge]
		position := at(rl.Vector3Lerp(unitCorner(corners[0]), unitCorner(corners[1]), 0.5))
		if d := rl.Vector3DistanceSqr(position, c.intersection); d < nearest {
			nearest = d
			c.edge = Feature{Index: edge, Name: world.EdgeNames[edge], Position: position}
		}
	}

	return c
}

func faceFeature(face int, at func(rl.Vector3) rl.Vector3) Feature {
	return Feature{
		Index:    face,
		Name:     world.FaceNames[face],
		Position: at(world.FaceNormals[face]),
	}
}

func (c *RayCubeCollision[T]) Cube() T {
	return c.cube
}

func (c *RayCubeCollision[T]) Intersection() rl.Vector3 {
	return c.intersection
}

func (c *RayCubeCollision[T]) Face() Feature {
	return c.face
}

func (c *RayCubeCollision[T]) Corner() Feature {
	return c.corner
}

func (c *RayCubeCollision[T]) Edge() Feature {
	return c.edge
}
