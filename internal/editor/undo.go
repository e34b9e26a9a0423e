package editor

import (
	"voxelworld/internal/world"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

const maxUndoStack = 50

// undoState captures a cube subtree before an edit. The cube is located again
// through its child index path from the world root, which survives the edit.
type undoState struct {
	path     []int
	snapshot *world.Cube
}

// pushUndo saves the current state of the cube about to be edited.
func (e *Editor) pushUndo(cube *world.Cube) {
	// Cap stack size
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
		logs.WithTag("editor_id", e.ID).
			WithTag("max", maxUndoStack).
			Debug("undo history full, dropping oldest edit")
	}
	e.undoStack = append(e.undoStack, undoState{
		path:     pathOf(cube),
		snapshot: cube.Clone(),
	})
}

func (e *Editor) dropUndo() {
	if len(e.undoStack) > 0 {
		e.undoStack = e.undoStack[:len(e.undoStack)-1]
	}
}

// UndoDepth is the number of edits that can be undone.
func (e *Editor) UndoDepth() int {
	return len(e.undoStack)
}

// Undo reverts the last edit and selects nothing.
func (e *Editor) Undo() error {
	if len(e.undoStack) == 0 {
		return errors.New("nothing to undo").
			WithType(ErrTypeNothingToUndo).
			WithTag("editor_id", e.ID)
	}

	// Pop last state
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	cube, err := follow(e.World, state.path)
	if err != nil {
		return errors.New("undo target not found").
			WithType(ErrTypeUndoPathInvalid).
			WithTag("editor_id", e.ID).
			Wrap(err)
	}

	cube.Restore(state.snapshot)
	e.selected = nil

	logs.WithTag("editor_id", e.ID).
		WithTag("grid_level", len(state.path)).
		Debug("edit undone")
	return nil
}

// pathOf returns the child indices leading from the root to cube.
func pathOf(cube *world.Cube) []int {
	path := make([]int, cube.GridLevel())
	for n := cube; !n.IsRoot(); n = n.Parent() {
		index, _ := n.Index()
		path[n.GridLevel()-1] = index
	}
	return path
}

func follow(root *world.Cube, path []int) (*world.Cube, error) {
	cube := root
	for level, index := range path {
		if cube.Type() != world.Octant {
			return nil, errors.New("cube on undo path is not subdivided").
				WithTag("grid_level", level).
				WithTag("type", cube.Type().String())
		}
		cube = cube.Child(index)
	}
	return cube, nil
}
