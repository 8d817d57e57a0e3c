package geometry

import "math"

// In a y-sorted strip, a point only needs to be compared against this many of
// the points that follow it. Any delta × 2·delta box straddling the dividing
// line holds at most 8 points that are pairwise at least delta apart, so a
// closer pair is never more than 7 positions apart.
const stripWindow = 7

// The minimum pairwise distance of a point set, by divide and conquer over the
// points sorted by X. The caller's slice is left untouched.
func ClosestPair(points PointSet) (float64, error) {
	pair, err := ClosestPairPoints(points)
	if err != nil {
		return 0, err
	}
	return pair.Distance, nil
}

// Like ClosestPair, but also reports which two points are closest. When
// several pairs share the minimum distance, which one is reported is
// unspecified.
func ClosestPairPoints(points PointSet) (Pair, error) {
	if err := points.Validate("closest pair", 2); err != nil {
		return Pair{}, err
	}
	sorted := points.Clone()
	sorted.SortByX()
	return closestPairSortedX(sorted), nil
}

// O(n²) reference: compares every pair.
func ClosestPairBruteForce(points PointSet) (Pair, error) {
	if err := points.Validate("brute force closest pair", 2); err != nil {
		return Pair{}, err
	}
	return bruteForcePair(points), nil
}

// A pair with infinite distance, used by slices that have no pairs at all.
func noPair() Pair {
	return Pair{Distance: math.Inf(1)}
}

func closer(a, b Pair) Pair {
	if b.Distance < a.Distance {
		return b
	}
	return a
}

func bruteForcePair(points PointSet) Pair {
	best := noPair()
	for i, a := range points {
		for _, b := range points[i+1:] {
			best = closer(best, Pair{A: a, B: b, Distance: Distance(a, b)})
		}
	}
	return best
}

// Points must be sorted by X. The slice is only read, never reordered, so the
// halves can share its backing array.
func closestPairSortedX(points PointSet) Pair {
	if len(points) <= 3 {
		return bruteForcePair(points)
	}

	// The left half keeps the midpoint
	mid := len(points) / 2
	best := closer(
		closestPairSortedX(points[:mid+1]),
		closestPairSortedX(points[mid+1:]),
	)

	midX := points[mid].X
	strip := make(PointSet, 0, len(points))
	for _, p := range points {
		if math.Abs(p.X-midX) <= best.Distance {
			strip = append(strip, p)
		}
	}
	strip.SortByY()

	return closer(best, closestInStrip(strip))
}

// Strip must be sorted by Y.
func closestInStrip(strip PointSet) Pair {
	best := noPair()
	for i, a := range strip {
		end := i + stripWindow
		if end > len(strip)-1 {
			end = len(strip) - 1
		}
		for _, b := range strip[i+1 : end+1] {
			best = closer(best, Pair{A: a, B: b, Distance: Distance(a, b)})
		}
	}
	return best
}
