package geometry

// Brute force convex hull. Every pair of points is tested as a candidate edge,
// which is O(n³) overall.
//
// The result is an unordered set, not a polygon. Only the endpoints of
// accepted edges are collected, so a point lying in the middle of a hull edge
// is not part of the result.
func BruteForceHull(points PointSet) (HullSet, error) {
	if err := points.Validate("brute force hull", 3); err != nil {
		return nil, err
	}

	result := make(HullSet)
	for i, a := range points {
		for _, b := range points[i+1:] {
			if isHullEdge(a, b, points) {
				result.Add(a)
				result.Add(b)
			}
		}
	}
	return result, nil
}

// A segment is a hull edge when every other point is on the same side of its
// line as the first point tested. Points on the segment itself don't take a
// side, but a collinear point beyond either end means the segment is only part
// of an edge, and is rejected.
func isHullEdge(a, b Point, points PointSet) bool {
	side := 0
	for _, c := range points {
		if c == a || c == b {
			continue
		}

		currentSide := sign(Orientation(a, b, c))
		if currentSide == 0 {
			if onSegment(c, a, b) {
				continue
			}
			return false
		}

		if side == 0 {
			side = currentSide
		} else if side != currentSide {
			return false
		}
	}
	return true
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
