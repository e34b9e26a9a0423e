package main

import (
	"io"
	"strings"

	"voxelworld/internal/mesh"
	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/encoding/json"
)

const metricsPrefix = "voxelworld_"

type report struct {
	Version       string      `json:"version"`
	Seed          int         `json:"seed"`
	GeometryCubes int         `json:"geometryCubes"`
	Mesh          meshReport  `json:"mesh"`
	Camera        [3]float32  `json:"camera"`
	Pick          *pickReport `json:"pick,omitempty"`
	EditRoundTrip bool        `json:"editRoundTrip"`
}

type meshReport struct {
	Triangles int `json:"triangles"`
	Vertices  int `json:"vertices"`
}

func newMeshReport(m *mesh.Mesh) meshReport {
	return meshReport{
		Triangles: m.TriangleCount(),
		Vertices:  m.VertexCount(),
	}
}

type pickReport struct {
	GridLevel    int        `json:"gridLevel"`
	Type         string     `json:"type"`
	Position     [3]float32 `json:"position"`
	Size         float32    `json:"size"`
	Intersection [3]float32 `json:"intersection"`
	Face         string     `json:"face"`
	Corner       string     `json:"corner"`
	Edge         string     `json:"edge"`
}

func newPickReport(hit *physics.RayCubeCollision[*world.Cube]) *pickReport {
	cube := hit.Cube()
	return &pickReport{
		GridLevel:    cube.GridLevel(),
		Type:         cube.Type().String(),
		Position:     toArray(cube.Position()),
		Size:         cube.Size(),
		Intersection: toArray(hit.Intersection()),
		Face:         hit.Face().Name,
		Corner:       hit.Corner().Name,
		Edge:         hit.Edge().Name,
	}
}

func toArray(v rl.Vector3) [3]float32 {
	return rl.Vector3ToFloatV(v)
}

func writeReport(w io.Writer, rep report, indent bool) error {
	var b []byte
	var err error
	if indent {
		b, err = json.MarshalIndent(rep, "", "  ")
	} else {
		b, err = json.Marshal(rep)
	}
	if err != nil {
		return errors.New("encoding report failed").Wrap(err)
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return errors.New("writing report failed").Wrap(err)
	}
	return nil
}

// logMetrics logs the value of every voxelworld counter.
func logMetrics(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logs.Warn(errors.New("gathering metrics failed").Wrap(err))
		return
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricsPrefix) {
			continue
		}

		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}

			logs.WithTag("metric", family.GetName()).
				WithTag("labels", strings.Join(labels, ",")).
				WithTag("value", metric.GetCounter().GetValue()).
				Info("metric")
		}
	}
}
