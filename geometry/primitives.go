package geometry

import "math"

// Sub computes p−o.
func (p Point) Sub(o Point) Vector {
	return Vector{X: p.X - o.X, Y: p.Y - o.Y}
}

func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))
}

// The determinant of (p - origin) and (q - origin), which is twice the signed
// area of the triangle. Positive means q is counterclockwise from p around
// origin, zero means the three points are collinear, and negative means
// clockwise. Every hull algorithm in this package uses this convention.
func Orientation(origin, p, q Point) float64 {
	return p.Sub(origin).Cross(q.Sub(origin))
}

// The unsigned angle between two vectors, in [0, π]. A zero length vector has
// no direction, so the angle is 0 by convention.
func AngleBetween(u, v Vector) float64 {
	if u.IsZero() || v.IsZero() {
		return 0
	}
	// atan2 keeps full precision near 0 and π, where acos of the normalized dot
	// product does not
	return math.Atan2(math.Abs(u.Cross(v)), u.Dot(v))
}

// Lexicographic ordering: if two points have the same Y value, the one with the
// smaller X value is "lower". Unlike a bare Y comparison this gives every point
// set a unique lowest and highest point.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) Above(otherPoint Point) bool {
	return otherPoint.Below(p)
}

// Reports whether p lies on the closed segment from a to b. The caller is
// expected to know already that the three points are collinear.
func onSegment(p, a, b Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
