package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func TestNewAABBFromCenter(t *testing.T) {
	a := NewAABBFromCenter(rl.NewVector3(1, 2, 3), rl.NewVector3(2, 4, 6))
	require.Equal(t, rl.NewVector3(0, 0, 0), a.Min)
	require.Equal(t, rl.NewVector3(2, 4, 6), a.Max)
	require.Equal(t, rl.NewVector3(1, 2, 3), a.Center())
	require.Equal(t, rl.NewVector3(2, 4, 6), a.Size())
}

func TestNewAABBFromBox(t *testing.T) {
	a := NewAABBFromBox(rl.NewBoundingBox(rl.NewVector3(1, -1, 5), rl.NewVector3(-1, 1, 2)))
	require.Equal(t, rl.NewVector3(-1, -1, 2), a.Min)
	require.Equal(t, rl.NewVector3(1, 1, 5), a.Max)
}

func TestAABBContains(t *testing.T) {
	a := AABB{Min: rl.NewVector3(0, 0, 0), Max: rl.NewVector3(1, 1, 1)}
	require.True(t, a.Contains(rl.NewVector3(0.5, 0.5, 0.5)))
	require.True(t, a.Contains(rl.NewVector3(1, 0, 1)))
	require.False(t, a.Contains(rl.NewVector3(1.1, 0.5, 0.5)))
}

func TestAABBIntersects(t *testing.T) {
	a := AABB{Min: rl.NewVector3(0, 0, 0), Max: rl.NewVector3(2, 2, 2)}

	tests := []struct {
		name     string
		b        AABB
		expected bool
	}{
		{
			name:     "overlapping",
			b:        AABB{Min: rl.NewVector3(1, 1, 1), Max: rl.NewVector3(3, 3, 3)},
			expected: true,
		},
		{
			name:     "touching",
			b:        AABB{Min: rl.NewVector3(2, 0, 0), Max: rl.NewVector3(3, 2, 2)},
			expected: true,
		},
		{
			name:     "separate",
			b:        AABB{Min: rl.NewVector3(0, 3, 0), Max: rl.NewVector3(2, 4, 2)},
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, a.Intersects(test.b))
			require.Equal(t, test.expected, test.b.Intersects(a))
		})
	}
}

func TestAABBResolve(t *testing.T) {
	b := AABB{Min: rl.NewVector3(0, 0, 0), Max: rl.NewVector3(4, 4, 4)}

	a := NewAABBFromCenter(rl.NewVector3(4.5, 2, 2), rl.NewVector3(2, 2, 2))
	require.Equal(t, rl.NewVector3(0.5, 0, 0), a.Resolve(b))

	a = NewAABBFromCenter(rl.NewVector3(2, 2, -0.75), rl.NewVector3(2, 2, 2))
	require.Equal(t, rl.NewVector3(0, 0, -0.25), a.Resolve(b))

	a = NewAABBFromCenter(rl.NewVector3(10, 10, 10), rl.NewVector3(1, 1, 1))
	require.Equal(t, rl.Vector3Zero(), a.Resolve(b))
}
