package physics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultLabel = "result"
	stageLabel  = "stage"

	resultHit  = "hit"
	resultMiss = "miss"

	stageEmpty      = "empty"
	stageDegenerate = "degenerate"
	stageSphere     = "sphere"
	stageBox        = "box"
)

var (
	collisionQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxelworld_collision_queries_total",
		Help: "The total number of octree collision queries.",
	}, []string{resultLabel})

	collisionPrunes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxelworld_collision_prunes_total",
		Help: "The total number of cubes discarded by a collision query.",
	}, []string{stageLabel})
)

func instrumentQuery(hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}

	collisionQueries.
		With(prometheus.Labels{resultLabel: result}).
		Inc()
}

func instrumentPrune(stage string) {
	collisionPrunes.
		With(prometheus.Labels{stageLabel: stage}).
		Inc()
}
