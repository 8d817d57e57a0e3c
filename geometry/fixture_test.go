package geometry

// This contains no actual tests. It holds point set builders and validity
// helpers shared by the tests in this package.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Uniform random points in [-50, 50]². With random floats, exact duplicates
// and exactly collinear triples don't happen in practice.
func randomPoints(seed int64, n int) PointSet {
	rng := rand.New(rand.NewSource(seed))
	points := make(PointSet, n)
	for i := range points {
		points[i] = Point{X: rng.Float64()*100 - 50, Y: rng.Float64()*100 - 50}
	}
	return points
}

// Random points on an integer grid, so duplicates and collinear triples are
// common.
func gridPoints(seed int64, n, size int) PointSet {
	rng := rand.New(rand.NewSource(seed))
	points := make(PointSet, n)
	for i := range points {
		points[i] = Point{X: float64(rng.Intn(size)), Y: float64(rng.Intn(size))}
	}
	return points
}

func shuffled(seed int64, points PointSet) PointSet {
	result := points.Clone()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

func square() PointSet {
	return PointSet{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {2, 3}, {5, 5}, {7, 1}, {9, 9}}
}

// Helper to check that an ordered hull is valid for a point set. The rules are:
// 1. Every hull vertex is one of the points.
// 2. No vertex is repeated.
// 3. The hull winds counterclockwise and every turn is a left turn.
// 4. Every point is inside or on the hull.
func assertValidHull(t *testing.T, points PointSet, hull []Point) {
	t.Helper()
	require.GreaterOrEqual(t, len(hull), 3, "hull must be a polygon")

	pointSet := NewHullSet(points...)
	seen := make(HullSet)
	for _, vertex := range hull {
		require.True(t, pointSet.Contains(vertex), "hull vertex %v is not an input point", vertex)
		require.False(t, seen.Contains(vertex), "hull vertex %v is repeated", vertex)
		seen.Add(vertex)
	}

	poly := Polygon{Points: hull}
	require.True(t, poly.IsCCW(), "hull is not counterclockwise: %v", hull)
	require.True(t, poly.IsConvex(), "hull is not convex: %v", hull)
	for _, p := range points {
		assert.True(t, poly.ContainsConvex(p), "point %v is outside the hull", p)
	}
}
