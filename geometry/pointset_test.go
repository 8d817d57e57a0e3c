package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	ps.Push(Pt(1, 2))
	assert.False(t, ps.Empty())
	top, ok := ps.Peek(0)
	assert.True(t, ok)
	assert.Equal(t, Pt(1, 2), top)
	p, ok := ps.Pop()
	assert.True(t, ok)
	assert.Equal(t, Pt(1, 2), p)
	assert.True(t, ps.Empty())

	_, ok = ps.Pop()
	assert.False(t, ok, "popping an empty stack")

	ps.Push(Pt(1, 2))
	ps.Push(Pt(3, 4))
	assert.Equal(t, 2, ps.Len())
	below, ok := ps.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, Pt(1, 2), below)
	_, ok = ps.Peek(2)
	assert.False(t, ok)
	p, _ = ps.Pop()
	assert.Equal(t, Pt(3, 4), p)
	p, _ = ps.Pop()
	assert.Equal(t, Pt(1, 2), p)
	assert.True(t, ps.Empty())
}

func TestSort(t *testing.T) {
	points := PointSet{{3, 1}, {1, 2}, {2, 1}, {1, 0}}

	byX := points.Clone()
	byX.SortByX()
	if d := cmp.Diff(PointSet{{1, 0}, {1, 2}, {2, 1}, {3, 1}}, byX); d != "" {
		t.Errorf("SortByX mismatch (-want +got):\n%s", d)
	}

	byY := points.Clone()
	byY.SortByY()
	if d := cmp.Diff(PointSet{{1, 0}, {2, 1}, {3, 1}, {1, 2}}, byY); d != "" {
		t.Errorf("SortByY mismatch (-want +got):\n%s", d)
	}

	assert.Equal(t, PointSet{{3, 1}, {1, 2}, {2, 1}, {1, 0}}, points, "clones are sorted, not the original")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, PointSet{{0, 0}, {1, 1}}.Validate("test", 2))

	err := PointSet{{0, 0}}.Validate("test", 2)
	require.Error(t, err)
	assert.True(t, IsInsufficientPoints(err))
	assert.False(t, IsDegenerateGeometry(err))
	assert.EqualError(t, err, "test: need at least 2 points, got 1")
}

func TestAllCollinear(t *testing.T) {
	assert.True(t, PointSet{}.AllCollinear())
	assert.True(t, PointSet{{1, 1}}.AllCollinear())
	assert.True(t, PointSet{{1, 1}, {1, 1}, {1, 1}}.AllCollinear(), "copies of one point")
	assert.True(t, PointSet{{0, 0}, {1, 1}, {2, 2}, {-5, -5}}.AllCollinear())
	assert.True(t, PointSet{{0, 0}, {0, 0}, {0, 3}, {0, 1}}.AllCollinear(), "vertical line with a duplicate first point")
	assert.False(t, PointSet{{0, 0}, {1, 1}, {2, 2.0001}}.AllCollinear())
}

func TestHullSet(t *testing.T) {
	set := NewHullSet(Pt(1, 1), Pt(0, 0), Pt(1, 1))
	assert.Len(t, set, 2, "duplicates merge")
	assert.True(t, set.Contains(Pt(0, 0)))
	assert.False(t, set.Contains(Pt(2, 2)))
	assert.True(t, set.Equals(NewHullSet(Pt(0, 0), Pt(1, 1))))
	assert.False(t, set.Equals(NewHullSet(Pt(0, 0), Pt(2, 2))))
	assert.False(t, set.Equals(NewHullSet(Pt(0, 0))))
	assert.Equal(t, PointSet{{0, 0}, {1, 1}}, set.Points())
}
