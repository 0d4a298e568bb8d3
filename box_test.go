package gridtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxContainsAndOverlaps(t *testing.T) {
	b := NewBox(NewPos(0, 0), NewPos(10, 10))
	assert.True(t, b.Contains(NewPos(5, 5)))
	assert.True(t, b.Contains(NewPos(0, 0)))
	assert.True(t, b.Contains(NewPos(10, 10)))
	assert.False(t, b.Contains(NewPos(11, 0)))

	other := NewBox(NewPos(9, 9), NewPos(20, 20))
	assert.True(t, b.Overlaps(other))
	disjoint := NewBox(NewPos(11, 0), NewPos(20, 20))
	assert.False(t, b.Overlaps(disjoint))
}

func TestBoxIntersect(t *testing.T) {
	a := NewBox(NewPos(0, 0), NewPos(10, 10))
	b := NewBox(NewPos(5, -5), NewPos(15, 5))
	inter, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, NewBox(NewPos(5, 0), NewPos(10, 5)), inter)

	c := NewBox(NewPos(11, 11), NewPos(20, 20))
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestBoxClamp(t *testing.T) {
	b := NewBox(NewPos(-1, 3), NewPos(5, 9))
	got := b.Clamp(4)
	assert.Equal(t, NewBox(NewPos(-4, 0), NewPos(7, 11)), got)
}

func TestBoxShape(t *testing.T) {
	b := NewBox(NewPos(2, 2), NewPos(4, 6))
	assert.Equal(t, NewPos(3, 5), b.Shape())
}

func TestBoxDiffDisjointIsWholeBox(t *testing.T) {
	a := NewBox(NewPos(0, 0), NewPos(5, 5))
	b := NewBox(NewPos(100, 100), NewPos(110, 110))
	diff := a.Diff(b)
	require.Len(t, diff, 1)
	assert.Equal(t, a, diff[0])
}

func TestBoxDiffCoversRemainder(t *testing.T) {
	a := NewBox(NewPos(0, 0), NewPos(9, 9))
	b := NewBox(NewPos(3, 3), NewPos(6, 6))
	diff := a.Diff(b)

	covered := map[[2]int64]bool{}
	for _, piece := range diff {
		require.False(t, piece.Empty())
		it := piece.PosIter(NewPos(1, 1))
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			covered[[2]int64{p[0], p[1]}] = true
			assert.False(t, b.Contains(p), "diff must not include any position of the subtracted box")
		}
	}
	it := a.PosIter(NewPos(1, 1))
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if !b.Contains(p) {
			assert.True(t, covered[[2]int64{p[0], p[1]}], "diff must cover every position of a not in b")
		}
	}
}

func TestBoundingBox(t *testing.T) {
	a := NewBox(NewPos(-5, 0), NewPos(0, 3))
	b := NewBox(NewPos(2, -2), NewPos(9, 9))
	got := BoundingBox(a, b)
	assert.Equal(t, NewBox(NewPos(-5, -2), NewPos(9, 9)), got)
}

func TestPosIterRowMajorOrder(t *testing.T) {
	b := NewBox(NewPos(0, 0), NewPos(3, 1))
	it := b.PosIter(NewPos(2, 1))
	var got []Pos
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	require.Len(t, got, 4)
	assert.Equal(t, NewPos(0, 0), got[0])
	assert.Equal(t, NewPos(0, 1), got[1])
	assert.Equal(t, NewPos(2, 0), got[2])
	assert.Equal(t, NewPos(2, 1), got[3])
}

func TestBoxIterTilesFully(t *testing.T) {
	b := NewBox(NewPos(0, 0), NewPos(3, 3))
	it := b.BoxIter(NewPos(2, 2))
	var cells []Box
	for {
		cell, ok := it.Next()
		if !ok {
			break
		}
		cells = append(cells, cell)
	}
	require.Len(t, cells, 4)
	for _, cell := range cells {
		assert.Equal(t, NewPos(2, 2), cell.Shape())
	}
}
