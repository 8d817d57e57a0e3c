package geometry

import "math"

// Tolerance for the polygon checks below. The hull algorithms themselves never
// use it; they decide with exact predicates.
const Tolerance = 1e-9

// A polygon given by its vertices in order, without repeating the first vertex
// at the end. The ordered hull results can be wrapped in one directly.
type Polygon struct {
	Points []Point
}

// Twice the area is the sum of the cross products of consecutive vertices
// (shoelace formula). Counterclockwise polygons have positive area.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Reports whether every turn of the polygon is a left turn (or straight), so
// that a counterclockwise polygon is convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	for i := range poly.Points {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]
		if Orientation(a, b, c) < -Tolerance {
			return false
		}
	}
	return true
}

// Reports whether p is inside or on the boundary of a convex counterclockwise
// polygon, by checking that p is not to the right of any edge.
func (poly Polygon) ContainsConvex(p Point) bool {
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if Orientation(vertex, next, p) < -Tolerance {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
