package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionReverse(t *testing.T) {
	cases := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for in, want := range cases {
		assert.Equal(t, want, in.Reverse())
		assert.Equal(t, in, in.Reverse().Reverse())
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}

func TestEdgeFromDirectionsRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		e := EdgeFromDirections([]Direction{d})
		got := DirectionsFromEdge(e)
		assert.Contains(t, got, d)
	}
}

func TestEdgeFromDirectionsCombines(t *testing.T) {
	e := EdgeFromDirections([]Direction{Up, Left})
	assert.True(t, e.Has(EdgeTop))
	assert.True(t, e.Has(EdgeLeft))
	assert.False(t, e.Has(EdgeBottom))
	assert.False(t, e.Has(EdgeRight))
}

func TestDirectionsFromEdgeOrder(t *testing.T) {
	e := EdgeTop | EdgeLeft | EdgeRight | EdgeBottom
	got := DirectionsFromEdge(e)
	assert.Equal(t, []Direction{Left, Right, Up, Down}, got)
}
