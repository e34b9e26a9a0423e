package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rayEpsilon = 1e-6

// RaySphere reports whether the ray hits the sphere. Spheres entirely behind
// the origin are missed, an origin inside the sphere always hits.
func RaySphere(origin, direction, center rl.Vector3, radius float32) bool {
	if isZero(direction) {
		return false
	}
	direction = rl.Vector3Normalize(direction)

	diff := rl.Vector3Subtract(center, origin)
	t0 := rl.Vector3DotProduct(diff, direction)
	distanceSqr := rl.Vector3DotProduct(diff, diff) - t0*t0
	radiusSqr := radius * radius
	if distanceSqr > radiusSqr {
		return false
	}

	t1 := float32(math.Sqrt(float64(radiusSqr - distanceSqr)))
	t := t0 + t1
	if t0 > t1+rayEpsilon {
		t = t0 - t1
	}
	return t > rayEpsilon
}

// RayBox reports whether the ray hits the box, using the slab method on the
// inverse direction. Boxes entirely behind the origin are missed.
func RayBox(origin, direction rl.Vector3, box AABB) bool {
	inverse := rl.Vector3Invert(direction)

	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for _, axis := range axes {
		o := component(origin, axis)
		lo, hi := component(box.Min, axis), component(box.Max, axis)

		// A zero component gives an infinite inverse. The ray is parallel
		// to the slab, which it either lies in or misses entirely.
		if component(direction, axis) == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}

		inv := component(inverse, axis)
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		if inv < 0 {
			t1, t2 = t2, t1
		}

		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}

	return tmax >= 0
}
