package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/edgeguard/internal/model"
)

func TestInArena(t *testing.T) {
	tests := []struct {
		c    model.Coordinate
		want bool
	}{
		{model.At(13, 0), true},
		{model.At(14, 0), true},
		{model.At(12, 0), false},
		{model.At(15, 0), false},
		{model.At(0, 13), true},
		{model.At(27, 13), true},
		{model.At(0, 14), true},
		{model.At(27, 14), true},
		{model.At(13, 27), true},
		{model.At(12, 27), false},
		{model.At(3, 10), true},
		{model.At(2, 10), false},
		{model.At(-1, 13), false},
		{model.At(13, 28), false},
		{model.At(13, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, InArena(tt.c))
		})
	}
}

func TestOnOwnHalf(t *testing.T) {
	assert.True(t, OnOwnHalf(model.At(13, 0)))
	assert.True(t, OnOwnHalf(model.At(0, 13)))
	assert.False(t, OnOwnHalf(model.At(0, 14)))
}

func TestOwnEdges(t *testing.T) {
	edges := OwnEdges()
	assert.Len(t, edges, ArenaSize)
	assert.Equal(t, model.At(13, 0), edges[0])
	assert.Equal(t, model.At(0, 13), edges[13])
	assert.Equal(t, model.At(14, 0), edges[14])
	assert.Equal(t, model.At(27, 13), edges[27])

	for _, c := range edges {
		assert.True(t, InArena(c), c.String())
		assert.True(t, OnOwnEdge(c), c.String())
	}
	assert.True(t, OnOwnEdge(model.At(3, 10)))
	assert.False(t, OnOwnEdge(model.At(4, 10)))
	assert.False(t, OnOwnEdge(model.At(0, 14)))
}
