package geometry

import "fmt"

// Points are plain values. Two points are the same point exactly when their
// coordinates are equal; there is no tolerance, so near-duplicates survive as
// distinct points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A Vector is the difference of two points. It is never stored in results.
type Vector struct {
	X float64
	Y float64
}

// An ordered sequence of points. Algorithms only ever reorder it by sorting.
type PointSet []Point

// Unordered hull result, as produced by BruteForceHull.
type HullSet map[Point]struct{}

// The closest pair together with its distance.
type Pair struct {
	A, B     Point
	Distance float64
}

type PointStack []Point
