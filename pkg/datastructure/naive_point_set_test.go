package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaivePointSet(t *testing.T) {
	t.Run("nil and empty input", func(t *testing.T) {
		_, err := NewNaivePointSet(nil)
		assert.ErrorIs(t, err, ErrEmptyPoints)

		_, err = NewNaivePointSet([]Point{})
		assert.ErrorIs(t, err, ErrEmptyPoints)

		_, err = (&NaivePointSet{}).Nearest(1, 1)
		assert.ErrorIs(t, err, ErrEmptyPointSet)
	})

	t.Run("nearest is the first point", func(t *testing.T) {
		ps, err := NewNaivePointSet([]Point{NewPoint(1, 1), NewPoint(5, 5), NewPoint(9, 9)})
		require.NoError(t, err)

		got, err := ps.Nearest(0, 0)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(1, 1), got)
	})

	t.Run("ties keep the first point", func(t *testing.T) {
		ps, err := NewNaivePointSet([]Point{NewPoint(10, 10), NewPoint(-1, 0), NewPoint(1, 0), NewPoint(0, 1)})
		require.NoError(t, err)

		got, err := ps.Nearest(0, 0)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(-1, 0), got)
	})

	t.Run("duplicates", func(t *testing.T) {
		ps, err := NewNaivePointSet([]Point{NewPoint(2, 2), NewPoint(2, 2), NewPoint(3, 3)})
		require.NoError(t, err)
		assert.Equal(t, 3, ps.Size())

		got, err := ps.Nearest(2.1, 2.1)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(2, 2), got)
	})

	t.Run("defensive copy", func(t *testing.T) {
		points := []Point{NewPoint(0, 0), NewPoint(10, 10)}
		ps, err := NewNaivePointSet(points)
		require.NoError(t, err)

		points[1] = NewPoint(1, 1)
		got, err := ps.Nearest(2, 2)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(0, 0), got)
	})
}

func TestPointDistance(t *testing.T) {
	p := NewPoint(1, 2)
	assert.Equal(t, 25.0, p.DistanceSquaredTo(4, 6))
	assert.Equal(t, 5.0, p.Distance(NewPoint(4, 6)))
	assert.Equal(t, "(1, 2)", p.String())
	assert.Equal(t, "(-0.5, 3.25)", NewPoint(-0.5, 3.25).String())
}

func TestPointSetInterface(t *testing.T) {
	points := []Point{NewPoint(0, 0), NewPoint(3, 4)}
	naive, err := NewNaivePointSet(points)
	require.NoError(t, err)
	kd, err := NewKDTreePointSet(points)
	require.NoError(t, err)

	for _, ps := range []PointSet{naive, kd} {
		got, err := ps.Nearest(2.9, 3.9)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(3, 4), got)
		assert.Equal(t, 2, ps.Size())
	}
}
