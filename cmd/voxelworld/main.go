package main

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"syscall"

	"voxelworld/internal/camera"
	"voxelworld/internal/editor"
	"voxelworld/internal/mesh"
	"voxelworld/internal/world"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/encoding/json"
)

var (
	// The voxelworld version number. Set at build.
	version = "v0.1.0"
)

// This will effectively disable obfuscation of the config struct. Without it, the keys would get obfuscated causing the cli package to generate garbled command-line options.
var _ = reflect.TypeOf(config{})

type config struct {
	LogLevel       string `cli:""        env:"VOXELWORLD_LOG_LEVEL"       help:"Log level (debug|info|warning|error)."`
	LogIndent      bool   `cli:""        env:"VOXELWORLD_LOG_INDENT"      help:"Indent logs."`
	WorldSize      int    `cli:""        env:"VOXELWORLD_WORLD_SIZE"      help:"Edge length of the world root cube."`
	Depth          int    `cli:""        env:"VOXELWORLD_DEPTH"           help:"Maximum subdivision depth of the generated world."`
	Seed           int    `cli:""        env:"VOXELWORLD_SEED"            help:"Seed of the world generator."`
	IndentDensity  int    `cli:",hidden" env:"VOXELWORLD_INDENT_DENSITY"  help:"Chance in percent that a generated edge is indented."`
	CameraPosition string `cli:""        env:"VOXELWORLD_CAMERA_POSITION" help:"Camera position as x,y,z."`
	CameraYaw      int    `cli:""        env:"VOXELWORLD_CAMERA_YAW"      help:"Camera yaw in degrees."`
	CameraPitch    int    `cli:""        env:"VOXELWORLD_CAMERA_PITCH"    help:"Camera pitch in degrees."`
	CameraRadius   string `cli:",hidden" env:"VOXELWORLD_CAMERA_RADIUS"   help:"Half extent of the camera collision box."`
	GridLevel      int    `cli:""        env:"VOXELWORLD_GRID_LEVEL"      help:"Deepest level the editor selects, -1 for any."`
	EditRoundTrip  bool   `cli:""        env:"VOXELWORLD_EDIT_ROUND_TRIP" help:"Indent the selected cube and undo it again."`
	ReportIndent   bool   `cli:""        env:"VOXELWORLD_REPORT_INDENT"   help:"Indent the JSON report."`
	Version        bool   `cli:""        env:"-"                          help:"Show version."`
	Help           bool   `cli:""        env:"-"                          help:"Show help."`
}

func main() {
	conf := config{
		LogLevel:       logs.InfoLevel.String(),
		WorldSize:      world.DefaultSize,
		Depth:          4,
		Seed:           1,
		IndentDensity:  25,
		CameraPosition: "-8,-8,40",
		CameraYaw:      45,
		CameraPitch:    -60,
		CameraRadius:   "0.5",
		GridLevel:      editor.AnyGridLevel,
		EditRoundTrip:  true,
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Generates a voxel world, meshes it and picks the cube under the camera.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("seed", conf.Seed).
		WithTag("depth", conf.Depth).
		Info("starting voxelworld")

	rep, err := run(ctx, conf)
	if err != nil {
		logs.Fatal(err)
	}

	if err := writeReport(os.Stdout, rep, conf.ReportIndent); err != nil {
		logs.Fatal(errors.New("writing report failed").Wrap(err))
	}
	logMetrics(prometheus.DefaultGatherer)
}

func run(ctx context.Context, conf config) (report, error) {
	rep := report{
		Version: version,
		Seed:    conf.Seed,
	}

	root, err := generate(ctx, generatorConfig{
		Size:          float32(conf.WorldSize),
		Depth:         conf.Depth,
		Seed:          int64(conf.Seed),
		IndentDensity: conf.IndentDensity,
	})
	if err != nil {
		return rep, errors.New("generating world failed").Wrap(err)
	}

	rep.GeometryCubes = root.CountGeometryCubes()
	logs.WithTag("geometry_cubes", rep.GeometryCubes).Info("world generated")

	m := mesh.Build(root.Polygons(true))
	rep.Mesh = newMeshReport(m)
	logs.WithTag("triangles", m.TriangleCount()).
		WithTag("vertices", m.VertexCount()).
		Info("world meshed")

	position, err := parseVector(conf.CameraPosition)
	if err != nil {
		return rep, errors.New("invalid camera position").Wrap(err)
	}
	radius, err := strconv.ParseFloat(conf.CameraRadius, 32)
	if err != nil {
		return rep, errors.New("invalid camera radius").Wrap(err)
	}

	cam := camera.New(position)
	cam.Yaw = float32(conf.CameraYaw)
	cam.Pitch = float32(conf.CameraPitch)

	if cam.Collides(root, float32(radius)) {
		push := cam.PushOut(root, float32(radius))
		logs.WithTag("push", push).Info("camera pushed out of geometry")
	}
	rep.Camera = toArray(cam.Position)

	ed := editor.New(root, cam)
	ed.GridLevel = conf.GridLevel

	hit := ed.Select()
	if hit == nil {
		logs.WithTag("editor_id", ed.ID).Info("nothing under the camera")
		return rep, nil
	}
	rep.Pick = newPickReport(hit)

	if conf.EditRoundTrip && hit.Cube().IsLeaf() {
		if err := editRoundTrip(ed, root); err != nil {
			return rep, err
		}
		rep.EditRoundTrip = true
	}
	return rep, nil
}

// editRoundTrip indents the selected cube, checks that only its polygons went
// stale and undoes the edit.
func editRoundTrip(ed *editor.Editor, root *world.Cube) error {
	before := len(root.Polygons(false))

	if err := ed.IndentNearestEdge(true, 2); err != nil {
		return errors.New("editing selection failed").Wrap(err)
	}
	if stale := before - len(root.Polygons(false)); stale != 1 {
		return errors.Newf("edit invalidated %d polygon caches", stale)
	}

	if err := ed.Undo(); err != nil {
		return errors.New("undoing edit failed").Wrap(err)
	}

	after := len(root.Polygons(true))
	if after != before {
		return errors.Newf("undo left %d polygon caches, expected %d", after, before)
	}

	logs.WithTag("editor_id", ed.ID).Info("edit round trip done")
	return nil
}

func validateConfig(conf config) error {
	if conf.WorldSize <= 0 {
		return errors.New("world size must be positive").
			WithTag("world_size", conf.WorldSize)
	}

	if conf.Depth < 0 {
		return errors.New("depth must not be negative").
			WithTag("depth", conf.Depth)
	}

	if conf.IndentDensity < 0 || conf.IndentDensity > 100 {
		return errors.New("indent density must be a percentage").
			WithTag("indent_density", conf.IndentDensity)
	}

	if _, err := parseVector(conf.CameraPosition); err != nil {
		return errors.New("invalid camera position").Wrap(err)
	}

	if _, err := strconv.ParseFloat(conf.CameraRadius, 32); err != nil {
		return errors.New("invalid camera radius").Wrap(err)
	}

	return nil
}

func parseVector(s string) (rl.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rl.Vector3{}, errors.New("vector needs 3 comma separated components").
			WithTag("value", s)
	}

	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rl.Vector3{}, errors.New("invalid vector component").
				WithTag("value", s).
				Wrap(err)
		}
		v[i] = float32(f)
	}
	return rl.NewVector3(v[0], v[1], v[2]), nil
}
