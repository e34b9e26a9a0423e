package camera

import (
	"testing"

	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func requireVectorInDelta(t *testing.T, expected, actual rl.Vector3) {
	require.InDelta(t, expected.X, actual.X, 1e-4)
	require.InDelta(t, expected.Y, actual.Y, 1e-4)
	require.InDelta(t, expected.Z, actual.Z, 1e-4)
}

func TestForward(t *testing.T) {
	c := New(rl.Vector3{})

	c.Yaw, c.Pitch = 0, 0
	requireVectorInDelta(t, rl.NewVector3(1, 0, 0), c.Forward())

	c.Yaw = 90
	requireVectorInDelta(t, rl.NewVector3(0, 1, 0), c.Forward())

	c.Yaw, c.Pitch = 0, 45
	requireVectorInDelta(t, rl.NewVector3(0.7071, 0, 0.7071), c.Forward())

	require.InDelta(t, 1, rl.Vector3Length(New(rl.Vector3{}).Forward()), 1e-5)
}

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.LookSpeed = 1

	c.Look(10, 1000)
	require.Equal(t, float32(-125), c.Yaw)
	require.Equal(t, float32(89), c.Pitch)

	c.Look(0, -1000)
	require.Equal(t, float32(-89), c.Pitch)
}

func TestMove(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw = 0
	c.MoveSpeed = 2

	c.Move(1, 0, 0.5)
	requireVectorInDelta(t, rl.NewVector3(1, 0, 0), c.Position)

	c.Move(1, 1, 1)
	require.InDelta(t, 2, rl.Vector3Distance(rl.NewVector3(1, 0, 0), c.Position), 1e-5)
	require.Zero(t, c.Position.Z)
}

func TestRay(t *testing.T) {
	c := New(rl.NewVector3(1, 2, 3))
	ray := c.Ray()
	require.Equal(t, c.Position, ray.Position)
	require.Equal(t, c.Forward(), ray.Direction)

	rc := c.GetRaylibCamera()
	require.Equal(t, Up, rc.Up)
	requireVectorInDelta(t, rl.Vector3Add(c.Position, c.Forward()), rc.Target)
}

func TestPick(t *testing.T) {
	root := world.New(world.Octant, 4, rl.NewVector3(-2, -2, -2))
	c := New(rl.NewVector3(-1, -1, 10))
	c.Pitch = -90

	hit := c.Pick(root)
	require.NotNil(t, hit)
	require.Same(t, root.Child(4), hit.Cube())
	require.Equal(t, "top", hit.Face().Name)

	hit = c.Pick(root, physics.WithMaxDepth(0))
	require.NotNil(t, hit)
	require.Same(t, root, hit.Cube())

	c.Pitch = 30
	require.Nil(t, c.Pick(root))
}

func TestCollidesAndPushOut(t *testing.T) {
	root := world.New(world.Octant, 4, rl.Vector3{})
	for i := range world.SubCubes {
		if i != 7 {
			root.Child(i).SetType(world.Empty)
		}
	}

	c := New(rl.NewVector3(3, 3, 4.5))
	require.True(t, c.Collides(root, 1))
	require.False(t, c.Collides(root, 0.25))

	push := c.PushOut(root, 1)
	requireVectorInDelta(t, rl.NewVector3(0, 0, 0.5), push)
	requireVectorInDelta(t, rl.NewVector3(3, 3, 5), c.Position)

	c.Position = rl.NewVector3(1, 1, 1)
	require.False(t, c.Collides(root, 0.5))
	require.Equal(t, rl.Vector3Zero(), c.PushOut(root, 0.5))
}
