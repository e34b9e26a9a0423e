package physics

import (
	"math"

	"voxelworld/internal/world"

	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxOctantHits is the number of octants a straight line can pass through.
const maxOctantHits = 4

// QueryOption configures a single collision query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	maxDepth    uint32
	hasMaxDepth bool
}

// WithMaxDepth stops the descent at depth, the root being depth 0. Octant
// cubes reached at that depth are hit as if they were solid.
func WithMaxDepth(depth uint32) QueryOption {
	return func(c *queryConfig) {
		c.maxDepth = depth
		c.hasMaxDepth = true
	}
}

// QueryStats reports how much of the tree a query touched.
type QueryStats struct {
	// Cubes tested against the ray.
	Visited int
	// Largest number of hit children found inside a single octant.
	MaxOctantHits int
}

// OctreeCollisionQuery finds the cube a ray hits in an octree.
type OctreeCollisionQuery struct {
	root *world.Cube
}

func NewOctreeCollisionQuery(root *world.Cube) *OctreeCollisionQuery {
	return &OctreeCollisionQuery{root: root}
}

// CheckForCollision returns the nearest hit or nil when the ray misses all
// geometry.
func (q *OctreeCollisionQuery) CheckForCollision(pos, dir rl.Vector3, opts ...QueryOption) *RayCubeCollision[*world.Cube] {
	hit, _ := q.CheckForCollisionStats(pos, dir, opts...)
	return hit
}

// CheckForCollisionStats is CheckForCollision reporting traversal statistics.
func (q *OctreeCollisionQuery) CheckForCollisionStats(pos, dir rl.Vector3, opts ...QueryOption) (*RayCubeCollision[*world.Cube], QueryStats) {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats QueryStats
	if isZero(dir) {
		logs.WithTag("origin", pos).Debug("collision query with zero direction ignored")
		instrumentPrune(stageDegenerate)
		instrumentQuery(false)
		return nil, stats
	}

	hit := checkCube(q.root, pos, dir, 0, cfg, &stats)
	instrumentQuery(hit != nil)
	return hit, stats
}

func checkCube(cube *world.Cube, pos, dir rl.Vector3, depth uint32, cfg queryConfig, stats *QueryStats) *RayCubeCollision[*world.Cube] {
	stats.Visited++

	if cube.Type() == world.Empty {
		instrumentPrune(stageEmpty)
		return nil
	}
	if !RaySphere(pos, dir, cube.Center(), cube.BoundingSphereRadius()) {
		instrumentPrune(stageSphere)
		return nil
	}
	if !RayBox(pos, dir, NewAABBFromBox(cube.BoundingBox())) {
		instrumentPrune(stageBox)
		return nil
	}

	if cube.IsLeaf() || (cfg.hasMaxDepth && depth >= cfg.maxDepth) {
		return NewRayCubeCollision(cube, pos, dir)
	}

	var nearest *RayCubeCollision[*world.Cube]
	nearestDistance := float32(math.MaxFloat32)
	hits := 0
	for _, child := range cube.Children() {
		if child.Type() == world.Empty {
			continue
		}

		hit := checkCube(child, pos, dir, depth+1, cfg, stats)
		if hit == nil {
			continue
		}
		hits++

		// Nearest by child center, not by distance along the ray.
		if d := child.SquaredDistance(pos); d < nearestDistance {
			nearestDistance = d
			nearest = hit
		}
		if hits == maxOctantHits {
			break
		}
	}

	if hits > stats.MaxOctantHits {
		stats.MaxOctantHits = hits
	}
	return nearest
}
