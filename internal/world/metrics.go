package world

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	typeLabel = "type"
)

var (
	polygonCacheUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxelworld_polygon_cache_updates_total",
		Help: "The total number of polygon cache rebuilds.",
	}, []string{typeLabel})
)

func instrumentPolygonCacheUpdate(t Type) {
	polygonCacheUpdates.
		With(prometheus.Labels{typeLabel: t.String()}).
		Inc()
}
