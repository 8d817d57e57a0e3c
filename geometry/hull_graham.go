package geometry

import "sort"

// Graham scan. The lowest point is the anchor, and the remaining points are
// visited in order of their angle from the +X direction around it, closer
// points first on ties. Visiting a point pops every stack point that would
// make a clockwise or straight turn, so the stack always ends in a left turn.
// The result is counterclockwise and starts at the anchor.
//
// Collinear input has no hull polygon and fails with a DegenerateGeometryError.
func GrahamScan(points PointSet) ([]Point, error) {
	const operation = "graham scan"
	if err := points.Validate(operation, 3); err != nil {
		return nil, err
	}
	if points.AllCollinear() {
		return nil, newDegenerateGeometryError(operation, "all %d points are collinear", len(points))
	}

	sorted := points.Clone()
	sorted.SortByY()
	anchor := sorted[0]

	type angledPoint struct {
		Point
		angle    float64
		distance float64
	}
	xAxis := Vector{X: 1, Y: 0}
	rest := make([]angledPoint, 0, len(sorted)-1)
	for _, p := range sorted[1:] {
		// A copy of the anchor has no angle around it
		if p == anchor {
			continue
		}
		rest = append(rest, angledPoint{
			Point:    p,
			angle:    AngleBetween(xAxis, p.Sub(anchor)),
			distance: Distance(anchor, p),
		})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].angle == rest[j].angle {
			return rest[i].distance < rest[j].distance
		}
		return rest[i].angle < rest[j].angle
	})

	stack := PointStack{anchor, rest[0].Point, rest[1].Point}
	for _, candidate := range rest[2:] {
		for stack.Len() >= 2 {
			top, _ := stack.Peek(0)
			below, _ := stack.Peek(1)
			if Orientation(below, top, candidate.Point) > 0 {
				break
			}
			stack.Pop()
		}
		stack.Push(candidate.Point)
	}
	return []Point(stack), nil
}
