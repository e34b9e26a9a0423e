package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromBox converts a raylib bounding box.
func NewAABBFromBox(box rl.BoundingBox) AABB {
	return AABB{
		Min: rl.Vector3Min(box.Min, box.Max),
		Max: rl.Vector3Max(box.Min, box.Max),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Lerp(a.Min, a.Max, 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth per axis and side, pushing a toward +axis then -axis.
	var result rl.Vector3
	best := float32(-1)
	for _, axis := range axes {
		push := component(b.Max, axis) - component(a.Min, axis)
		if best < 0 || push < best {
			best = push
			result = withComponent(rl.Vector3{}, axis, push)
		}

		push = component(a.Max, axis) - component(b.Min, axis)
		if push < best {
			best = push
			result = withComponent(rl.Vector3{}, axis, -push)
		}
	}
	return result
}
