package geometry

import "math"

// QuickHull. The lowest and highest points form the base edge, which splits
// the remaining points into a right and a left side. Each side is then
// refined recursively by its farthest point from the current edge. Points
// lying exactly on the base edge's line are dropped.
//
// The result is counterclockwise: the lowest point, the chain on the right,
// the highest point, then the chain on the left. Collinear input degrades to
// just the two extreme points.
func QuickHull(points PointSet) ([]Point, error) {
	if err := points.Validate("quickhull", 3); err != nil {
		return nil, err
	}

	sorted := points.Clone()
	sorted.SortByY()
	lowest, highest := sorted[0], sorted[len(sorted)-1]
	if lowest == highest {
		return []Point{lowest}, nil
	}

	var left, right PointSet
	for _, p := range sorted[1 : len(sorted)-1] {
		switch o := Orientation(lowest, highest, p); {
		case o > 0:
			left = append(left, p)
		case o < 0:
			right = append(right, p)
		}
	}

	hull := []Point{lowest}
	hull = append(hull, findHull(right, lowest, highest)...)
	hull = append(hull, highest)
	hull = append(hull, findHull(left, highest, lowest)...)
	return hull, nil
}

// Given points strictly to the right of the directed edge start→end, return
// the hull vertices between start and end, in order. Neither endpoint is
// included.
func findHull(points PointSet, start, end Point) []Point {
	if len(points) == 0 {
		return nil
	}

	farthest := points[0]
	maxArea := math.Abs(Orientation(start, end, farthest))
	for _, p := range points[1:] {
		if area := math.Abs(Orientation(start, end, p)); area > maxArea {
			farthest = p
			maxArea = area
		}
	}

	// Anything not strictly outside one of the two new edges is inside the
	// triangle start, farthest, end, and can't be on the hull.
	var outsideStart, outsideEnd PointSet
	for _, p := range points {
		if Orientation(start, farthest, p) < 0 {
			outsideStart = append(outsideStart, p)
		} else if Orientation(farthest, end, p) < 0 {
			outsideEnd = append(outsideEnd, p)
		}
	}

	chain := findHull(outsideStart, start, farthest)
	chain = append(chain, farthest)
	return append(chain, findHull(outsideEnd, farthest, end)...)
}
