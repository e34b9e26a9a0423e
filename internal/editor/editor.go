package editor

import (
	"voxelworld/internal/camera"
	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
)

const (
	ErrTypeNothingSelected = "nothing-selected"
	ErrTypeNothingToUndo   = "nothing-to-undo"
	ErrTypeStaleSelection  = "stale-selection"
	ErrTypeUndoPathInvalid = "undo-path-invalid"
)

// AnyGridLevel lets selection descend to the smallest cube.
const AnyGridLevel = -1

// Editor edits the cube under the camera crosshair.
type Editor struct {
	ID     uuid.UUID
	World  *world.Cube
	Camera *camera.Camera

	// GridLevel caps the depth of the cube Select picks.
	GridLevel int

	selected *physics.RayCubeCollision[*world.Cube]

	undoStack []undoState
}

func New(root *world.Cube, cam *camera.Camera) *Editor {
	return &Editor{
		ID:        uuid.New(),
		World:     root,
		Camera:    cam,
		GridLevel: AnyGridLevel,
		undoStack: make([]undoState, 0, maxUndoStack),
	}
}

// Select picks the cube in the center of the camera view. The selection is
// cleared when nothing is hit.
func (e *Editor) Select() *physics.RayCubeCollision[*world.Cube] {
	var opts []physics.QueryOption
	if e.GridLevel >= 0 {
		opts = append(opts, physics.WithMaxDepth(uint32(e.GridLevel)))
	}

	e.selected = e.Camera.Pick(e.World, opts...)
	if e.selected != nil {
		logs.WithTag("editor_id", e.ID).
			WithTag("face", e.selected.Face().Name).
			WithTag("grid_level", e.selected.Cube().GridLevel()).
			Debug("cube selected")
	}
	return e.selected
}

func (e *Editor) Selected() *physics.RayCubeCollision[*world.Cube] {
	return e.selected
}

// SetType changes the type of the selected cube.
func (e *Editor) SetType(t world.Type) error {
	cube, err := e.selectedCube()
	if err != nil {
		return err
	}

	e.pushUndo(cube)
	cube.SetType(t)
	logs.WithTag("editor_id", e.ID).WithTag("type", t.String()).Debug("cube type changed")
	return nil
}

// Subdivide turns the selected cube into an octant.
func (e *Editor) Subdivide() error {
	return e.SetType(world.Octant)
}

// IndentNearestEdge indents the edge of the selected cube nearest to the
// selection point. Solid cubes are turned into normal cubes first.
func (e *Editor) IndentNearestEdge(positiveDirection bool, steps int) error {
	cube, err := e.selectedCube()
	if err != nil {
		return err
	}

	edge := e.selected.Edge().Index
	e.pushUndo(cube)
	if cube.Type() == world.Solid {
		cube.SetType(world.Normal)
	}

	if err := cube.Indent(edge, positiveDirection, steps); err != nil {
		e.dropUndo()
		return errors.New("indenting selection failed").
			WithTag("editor_id", e.ID).
			Wrap(err)
	}

	logs.WithTag("editor_id", e.ID).
		WithTag("edge", e.selected.Edge().Name).
		WithTag("steps", steps).
		Debug("edge indented")
	return nil
}

// Rotate turns the selected cube around axis.
func (e *Editor) Rotate(axis world.Axis, rotations int) error {
	cube, err := e.selectedCube()
	if err != nil {
		return err
	}

	e.pushUndo(cube)
	cube.Rotate(axis, rotations)
	logs.WithTag("editor_id", e.ID).
		WithTag("axis", axis.String()).
		WithTag("rotations", rotations).
		Debug("cube rotated")
	return nil
}

func (e *Editor) selectedCube() (*world.Cube, error) {
	if e.selected == nil {
		return nil, errors.New("no cube selected").
			WithType(ErrTypeNothingSelected).
			WithTag("editor_id", e.ID)
	}

	cube := e.selected.Cube()
	if cube.Root() != e.World {
		e.selected = nil
		return nil, errors.New("selected cube is no longer part of the world").
			WithType(ErrTypeStaleSelection).
			WithTag("editor_id", e.ID)
	}
	return cube, nil
}
