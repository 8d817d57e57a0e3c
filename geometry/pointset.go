package geometry

import "sort"

func (ps PointSet) Clone() PointSet {
	clone := make(PointSet, len(ps))
	copy(clone, ps)
	return clone
}

// Sort in place by X, breaking ties by Y.
func (ps PointSet) SortByX() {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].X == ps[j].X {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}

// Sort in place by Y, breaking ties by X (see Point.Below).
func (ps PointSet) SortByY() {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Below(ps[j])
	})
}

// Check that the set has at least min points. This replaces the interactive
// "enter points until there are enough" loop: callers decide whether to retry.
func (ps PointSet) Validate(operation string, min int) error {
	if len(ps) < min {
		return newInsufficientPointsError(operation, min, len(ps))
	}
	return nil
}

// Reports whether every point lies on a single line. A set made of copies of
// one point counts as collinear.
func (ps PointSet) AllCollinear() bool {
	if len(ps) == 0 {
		return true
	}
	origin := ps[0]
	// Find a second point distinct from the first to define the line
	var direction Point
	found := false
	for _, p := range ps[1:] {
		if p != origin {
			direction = p
			found = true
			break
		}
	}
	if !found {
		return true
	}
	for _, p := range ps {
		if Orientation(origin, direction, p) != 0 {
			return false
		}
	}
	return true
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. The second return value is false if the stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

// Peek at the point i places below the top, so Peek(0) is the top.
func (s *PointStack) Peek(i int) (Point, bool) {
	if i < 0 || i >= len(*s) {
		return Point{}, false
	}
	return (*s)[len(*s)-1-i], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (set HullSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set HullSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set HullSet) Equals(other HullSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// The members of the set, sorted lowest first so output is reproducible.
func (set HullSet) Points() PointSet {
	points := make(PointSet, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	points.SortByY()
	return points
}

// Collect points into a set, merging duplicates.
func NewHullSet(points ...Point) HullSet {
	set := make(HullSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}
