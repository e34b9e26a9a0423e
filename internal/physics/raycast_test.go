package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func TestRaySphere(t *testing.T) {
	center := rl.NewVector3(0, 0, 0)

	tests := []struct {
		name      string
		origin    rl.Vector3
		direction rl.Vector3
		expected  bool
	}{
		{
			name:      "hit",
			origin:    rl.NewVector3(0, 0, 10),
			direction: rl.NewVector3(0, 0, -3),
			expected:  true,
		},
		{
			name:      "miss beside",
			origin:    rl.NewVector3(2, 0, 10),
			direction: rl.NewVector3(0, 0, -1),
			expected:  false,
		},
		{
			name:      "behind",
			origin:    rl.NewVector3(0, 0, 10),
			direction: rl.NewVector3(0, 0, 1),
			expected:  false,
		},
		{
			name:      "inside",
			origin:    rl.NewVector3(0.2, 0, 0),
			direction: rl.NewVector3(1, 1, 0),
			expected:  true,
		},
		{
			name:      "zero direction",
			origin:    rl.NewVector3(0, 0, 10),
			direction: rl.Vector3Zero(),
			expected:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, RaySphere(test.origin, test.direction, center, 1))
		})
	}
}

func TestRayBox(t *testing.T) {
	box := AABB{Min: rl.NewVector3(-0.5, -0.5, -0.5), Max: rl.NewVector3(0.5, 0.5, 0.5)}

	tests := []struct {
		name      string
		origin    rl.Vector3
		direction rl.Vector3
		expected  bool
	}{
		{
			name:      "axis aligned hit",
			origin:    rl.NewVector3(0, 0, 10),
			direction: rl.NewVector3(0, 0, -1),
			expected:  true,
		},
		{
			name:      "axis aligned miss",
			origin:    rl.NewVector3(2, 0, 10),
			direction: rl.NewVector3(0, 0, -1),
			expected:  false,
		},
		{
			name:      "diagonal hit",
			origin:    rl.NewVector3(-5, -5, -5),
			direction: rl.NewVector3(1, 1, 1),
			expected:  true,
		},
		{
			name:      "diagonal miss",
			origin:    rl.NewVector3(-5, 5, -5),
			direction: rl.NewVector3(1, 1, 1),
			expected:  false,
		},
		{
			name:      "behind",
			origin:    rl.NewVector3(0, 0, 10),
			direction: rl.NewVector3(0, 0, 1),
			expected:  false,
		},
		{
			name:      "origin inside",
			origin:    rl.NewVector3(0.1, 0.1, 0.1),
			direction: rl.NewVector3(-1, 0, 0),
			expected:  true,
		},
		{
			name:      "parallel on the boundary plane",
			origin:    rl.NewVector3(0.5, 0, 10),
			direction: rl.NewVector3(0, 0, -1),
			expected:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, RayBox(test.origin, test.direction, box))
		})
	}
}
