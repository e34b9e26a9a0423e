package camera

import (
	"math"

	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Up is the world up axis.
var Up = rl.Vector3{X: 0, Y: 0, Z: 1}

const maxPitch = 89

// Camera is a free flying view into the octree world. Angles are in degrees,
// yaw turning around +z starting at +x.
type Camera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
}

func New(pos rl.Vector3) *Camera {
	return &Camera{
		Position:  pos,
		Yaw:       -135.0,
		Pitch:     -30.0,
		MoveSpeed: 8.0, // Units per second
		LookSpeed: 0.1,
	}
}

// Look turns the camera by a mouse style delta scaled by LookSpeed.
func (c *Camera) Look(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw * c.LookSpeed
	c.Pitch += deltaPitch * c.LookSpeed

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Move walks the camera along the horizontal plane. forward and right are
// input axes in [-1, 1], diagonal input is normalized.
func (c *Camera) Move(forward, right, deltaTime float32) {
	f, r := c.directions()

	moveDir := rl.Vector3Add(rl.Vector3Scale(f, forward), rl.Vector3Scale(r, right))
	if rl.Vector3LengthSqr(moveDir) > 0 {
		moveDir = rl.Vector3Normalize(moveDir)
	}
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(moveDir, c.MoveSpeed*deltaTime))
}

func (c *Camera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: float32(-math.Cos(yawRad)),
	}
	return
}

// Forward is the unit view direction.
func (c *Camera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
		Z: float32(math.Sin(pitchRad)),
	}
}

// Ray is the pick ray through the center of the view.
func (c *Camera) Ray() rl.Ray {
	return rl.NewRay(c.Position, c.Forward())
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         Up,
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// Pick returns the cube in the center of the view.
func (c *Camera) Pick(root *world.Cube, opts ...physics.QueryOption) *physics.RayCubeCollision[*world.Cube] {
	ray := c.Ray()
	return physics.NewOctreeCollisionQuery(root).CheckForCollision(ray.Position, ray.Direction, opts...)
}

func (c *Camera) bounds(radius float32) physics.AABB {
	return physics.NewAABBFromCenter(c.Position, rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius})
}

// Collides reports whether a box of half extent radius around the camera
// overlaps any geometry cube.
func (c *Camera) Collides(root *world.Cube, radius float32) bool {
	return len(overlapping(root, c.bounds(radius))) > 0
}

// PushOut moves the camera out of all geometry it overlaps and returns the
// total translation applied.
func (c *Camera) PushOut(root *world.Cube, radius float32) rl.Vector3 {
	start := c.Position
	for _, box := range overlapping(root, c.bounds(radius)) {
		pushOut := c.bounds(radius).Resolve(box)
		c.Position = rl.Vector3Add(c.Position, pushOut)
	}
	return rl.Vector3Subtract(c.Position, start)
}

func overlapping(root *world.Cube, bounds physics.AABB) []physics.AABB {
	var boxes []physics.AABB
	root.Walk(func(cube *world.Cube) bool {
		box := physics.NewAABBFromBox(cube.BoundingBox())
		if cube.Type() == world.Empty || !bounds.Intersects(box) {
			return false
		}
		if cube.IsLeaf() {
			boxes = append(boxes, box)
		}
		return true
	})
	return boxes
}
