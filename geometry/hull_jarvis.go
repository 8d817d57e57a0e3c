package geometry

import "math"

// Gift wrapping. Two wraps meet at the lowest and highest points: the first
// climbs the right side of the hull, always turning as little as possible away
// from the +X direction, and the second descends the left side measuring from
// -X. The result is counterclockwise, starts at the lowest point, and does not
// repeat it at the end.
//
// Collinear input has no hull polygon and fails with a DegenerateGeometryError.
func JarvisMarch(points PointSet) (hull []Point, err error) {
	const operation = "jarvis march"
	if err := points.Validate(operation, 3); err != nil {
		return nil, err
	}
	if points.AllCollinear() {
		return nil, newDegenerateGeometryError(operation, "all %d points are collinear", len(points))
	}

	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()

	sorted := points.Clone()
	sorted.SortByY()
	lowest, highest := sorted[0], sorted[len(sorted)-1]

	hull = jarvisWrap(sorted, lowest, highest, true)
	hull = append(hull, jarvisWrap(sorted, lowest, highest, false)...)
	return hull, nil
}

// Wrap from one anchor toward the other, returning the chain without the
// anchor it ends on. Points must be sorted by Y.
func jarvisWrap(points PointSet, lowest, highest Point, ascending bool) []Point {
	start, reference := lowest, Vector{X: 1, Y: 0}
	if !ascending {
		start, reference = highest, Vector{X: -1, Y: 0}
	}

	chain := []Point{start}
	for {
		current := chain[len(chain)-1]

		var selected Point
		found := false
		minAngle := math.Inf(1)
		for _, candidate := range points {
			if candidate == current ||
				(ascending && candidate.Y < current.Y) ||
				(!ascending && candidate.Y > current.Y) {
				continue
			}

			// Ties go to the last candidate seen
			angle := AngleBetween(reference, candidate.Sub(current))
			if angle <= minAngle {
				minAngle = angle
				selected = candidate
				found = true
			}
		}

		if !found {
			throw(newDegenerateGeometryError("jarvis march", "no candidate after %v", current))
		}
		if selected == lowest || selected == highest {
			break
		}
		// Every step adds a distinct hull point, so a longer chain means the
		// wrap is going around in circles.
		if len(chain) >= len(points) {
			throw(newDegenerateGeometryError("jarvis march", "wrap from %v did not reach the opposite anchor", start))
		}
		chain = append(chain, selected)
	}
	return chain
}
