package gridtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosArithmetic(t *testing.T) {
	p := NewPos(1, 2, 3)
	q := NewPos(4, -1, 0)
	assert.Equal(t, NewPos(5, 1, 3), p.Add(q))
	assert.Equal(t, NewPos(-3, 3, 3), p.Sub(q))
	assert.Equal(t, NewPos(3, 4, 5), p.AddScalar(2))
	assert.True(t, p.Equal(NewPos(1, 2, 3)))
	assert.False(t, p.Equal(q))
}

func TestPosFillAndDims(t *testing.T) {
	p := Fill(4, 7)
	require.Equal(t, 4, p.Dims())
	for _, c := range p {
		assert.Equal(t, int64(7), c)
	}
}

func TestPosClone(t *testing.T) {
	p := NewPos(1, 2)
	q := p.Clone()
	q[0] = 99
	assert.Equal(t, int64(1), p[0], "Clone must not alias the source")
}

func TestPosDimensionMismatchPanics(t *testing.T) {
	p := NewPos(1, 2)
	q := NewPos(1, 2, 3)
	assert.Panics(t, func() { p.Add(q) })
}

func TestFloorDivNegative(t *testing.T) {
	assert.Equal(t, int64(-1), floorDiv(-1, 4))
	assert.Equal(t, int64(-1), floorDiv(-4, 4))
	assert.Equal(t, int64(-2), floorDiv(-5, 4))
	assert.Equal(t, int64(0), floorDiv(0, 4))
	assert.Equal(t, int64(1), floorDiv(4, 4))
}

func TestPosClampDown(t *testing.T) {
	p := NewPos(-5, -1, 5, 8)
	got := p.ClampDown(4)
	assert.Equal(t, NewPos(-8, -4, 4, 8), got)
}
