package physics

import (
	"math/rand"
	"testing"

	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func unitCube() *world.Cube {
	return world.New(world.Solid, 1, rl.NewVector3(-0.5, -0.5, -0.5))
}

// newTestWorld returns a fully subdivided tree of the given depth spanning [-1, 1]^3.
func newTestWorld(depth int) *world.Cube {
	root := world.New(world.Solid, 2, rl.NewVector3(-1, -1, -1))
	var subdivide func(c *world.Cube, level int)
	subdivide = func(c *world.Cube, level int) {
		if level == depth {
			return
		}
		c.SetType(world.Octant)
		for _, child := range c.Children() {
			subdivide(child, level+1)
		}
	}
	subdivide(root, 0)
	return root
}

func TestQueryMiss(t *testing.T) {
	q := NewOctreeCollisionQuery(unitCube())

	require.Nil(t, q.CheckForCollision(rl.NewVector3(0, 0, 10), rl.Vector3Zero()))
	require.Nil(t, q.CheckForCollision(rl.NewVector3(0, 0, 10), rl.NewVector3(0, 0, 1)))
	require.Nil(t, q.CheckForCollision(rl.NewVector3(3, 0, 10), rl.NewVector3(0, 0, -1)))
}

func TestQueryHit(t *testing.T) {
	cube := unitCube()
	q := NewOctreeCollisionQuery(cube)

	hit := q.CheckForCollision(rl.NewVector3(0, 0, 10), rl.NewVector3(0, 0, -1))
	require.NotNil(t, hit)
	require.Same(t, cube, hit.Cube())
	require.Equal(t, "top", hit.Face().Name)
	requireVectorInDelta(t, rl.NewVector3(0, 0, 0.5), hit.Intersection())
}

func TestQueryEmptyRoot(t *testing.T) {
	q := NewOctreeCollisionQuery(world.New(world.Empty, 4, rl.Vector3{}))

	hit, stats := q.CheckForCollisionStats(rl.NewVector3(2, 2, 10), rl.NewVector3(0, 0, -1))
	require.Nil(t, hit)
	require.Equal(t, 1, stats.Visited)
}

func TestQueryNearestChild(t *testing.T) {
	root := newTestWorld(1)
	q := NewOctreeCollisionQuery(root)

	pos := rl.NewVector3(0.5, 0.5, 10)
	dir := rl.NewVector3(0, 0, -1)

	hit := q.CheckForCollision(pos, dir)
	require.NotNil(t, hit)
	require.Same(t, root.Child(7), hit.Cube())
	require.Equal(t, "top", hit.Face().Name)
	requireVectorInDelta(t, rl.NewVector3(0.5, 0.5, 1), hit.Intersection())

	root.Child(7).SetType(world.Empty)
	hit = q.CheckForCollision(pos, dir)
	require.NotNil(t, hit)
	require.Same(t, root.Child(3), hit.Cube())
	requireVectorInDelta(t, rl.NewVector3(0.5, 0.5, 0), hit.Intersection())

	root.Child(3).SetType(world.Empty)
	require.Nil(t, q.CheckForCollision(pos, dir))
}

func TestQueryReturnsDeepestHit(t *testing.T) {
	root := newTestWorld(2)
	q := NewOctreeCollisionQuery(root)

	hit := q.CheckForCollision(rl.NewVector3(0.75, 0.75, 10), rl.NewVector3(0, 0, -1))
	require.NotNil(t, hit)
	require.Same(t, root.Child(7).Child(7), hit.Cube())
	require.Equal(t, 2, hit.Cube().GridLevel())
}

func TestQueryMaxDepth(t *testing.T) {
	root := newTestWorld(3)
	q := NewOctreeCollisionQuery(root)
	pos := rl.NewVector3(0.75, 0.75, 10)
	dir := rl.NewVector3(0, 0, -1)

	hit := q.CheckForCollision(pos, dir, WithMaxDepth(0))
	require.NotNil(t, hit)
	require.Same(t, root, hit.Cube())

	hit = q.CheckForCollision(pos, dir, WithMaxDepth(1))
	require.NotNil(t, hit)
	require.Same(t, root.Child(7), hit.Cube())
	require.Equal(t, world.Octant, hit.Cube().Type())

	hit = q.CheckForCollision(pos, dir)
	require.NotNil(t, hit)
	require.Equal(t, 3, hit.Cube().GridLevel())
}

func TestQueryOctantHitBound(t *testing.T) {
	root := newTestWorld(3)
	q := NewOctreeCollisionQuery(root)
	rnd := rand.New(rand.NewSource(42))

	random := func(scale float32) float32 {
		return (rnd.Float32()*2 - 1) * scale
	}

	hits := 0
	for range 500 {
		pos := rl.NewVector3(random(5), random(5), random(5))
		target := rl.NewVector3(random(1), random(1), random(1))
		dir := rl.Vector3Subtract(target, pos)

		hit, stats := q.CheckForCollisionStats(pos, dir)
		require.LessOrEqual(t, stats.MaxOctantHits, 4)
		if hit != nil {
			hits++
			require.True(t, hit.Cube().IsLeaf())
		}
	}
	require.Positive(t, hits)
}

func BenchmarkCheckForCollision(b *testing.B) {
	root := newTestWorld(4)
	q := NewOctreeCollisionQuery(root)
	pos := rl.NewVector3(-3, -2.5, 4)
	dir := rl.NewVector3(1, 0.9, -1.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.CheckForCollision(pos, dir)
	}
}
