package physics

import (
	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var axes = [3]world.Axis{world.AxisX, world.AxisY, world.AxisZ}

// component returns the coordinate of v along axis.
func component(v rl.Vector3, axis world.Axis) float32 {
	switch axis {
	case world.AxisX:
		return v.X
	case world.AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// withComponent returns v with the coordinate along axis replaced.
func withComponent(v rl.Vector3, axis world.Axis, value float32) rl.Vector3 {
	switch axis {
	case world.AxisX:
		v.X = value
	case world.AxisY:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// unitCorner maps a corner index onto the cube [-1, 1]^3.
func unitCorner(corner int) rl.Vector3 {
	return rl.Vector3SubtractValue(rl.Vector3Scale(world.ChildOffset(corner), 2), 1)
}

func isZero(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
