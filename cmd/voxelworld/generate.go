package main

import (
	"context"
	"math/rand"

	"voxelworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type generatorConfig struct {
	Size          float32
	Depth         int
	Seed          int64
	IndentDensity int
}

// generate builds a random world centered on the origin. The same config
// always yields the same world.
func generate(ctx context.Context, conf generatorConfig) (*world.Cube, error) {
	half := conf.Size / 2
	root := world.New(world.Octant, conf.Size, rl.NewVector3(-half, -half, -half))
	if conf.Depth == 0 {
		root.SetType(world.Solid)
		return root, nil
	}

	g := generator{
		conf: conf,
		rnd:  rand.New(rand.NewSource(conf.Seed)),
	}
	for _, child := range root.Children() {
		if err := g.fill(ctx, child, 1); err != nil {
			return nil, err
		}
	}
	return root, nil
}

type generator struct {
	conf generatorConfig
	rnd  *rand.Rand
}

func (g *generator) fill(ctx context.Context, cube *world.Cube, level int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if level < g.conf.Depth && g.rnd.Intn(3) == 0 {
		cube.SetType(world.Octant)
		for _, child := range cube.Children() {
			if err := g.fill(ctx, child, level+1); err != nil {
				return err
			}
		}
		return nil
	}

	switch n := g.rnd.Intn(10); {
	case n < 2:
		cube.SetType(world.Empty)
	case n < 7:
		cube.SetType(world.Solid)
	default:
		cube.SetType(world.Normal)
		return g.indent(cube)
	}
	return nil
}

func (g *generator) indent(cube *world.Cube) error {
	for edge := range world.Edges {
		if g.rnd.Intn(100) >= g.conf.IndentDensity {
			continue
		}
		start := g.rnd.Intn(world.IndentationMax/2 + 1)
		end := g.rnd.Intn(world.IndentationMax/2 + 1)
		if err := cube.SetIndent(edge, world.NewIndentation(start, end)); err != nil {
			return err
		}
	}

	axis := world.Axis(g.rnd.Intn(3))
	cube.Rotate(axis, g.rnd.Intn(4))
	return nil
}
