package geometry

import "sort"

// Divide and conquer with both orderings computed once up front. Each level
// partitions its Y-sorted list into the halves' Y-sorted lists, so the strip
// comes out already sorted and no level has to sort again.
func ClosestPairSortedXY(points PointSet) (Pair, error) {
	if err := points.Validate("sorted xy closest pair", 2); err != nil {
		return Pair{}, err
	}

	sorted := points.Clone()
	sorted.SortByX()

	// A point's rank is its position in X order. Every recursive call covers a
	// contiguous range of ranks, which is how the Y list is split without any
	// ambiguity between duplicate points.
	byX := make([]rankedPoint, len(sorted))
	for i, p := range sorted {
		byX[i] = rankedPoint{Point: p, rank: i}
	}
	byY := make([]rankedPoint, len(byX))
	copy(byY, byX)
	sort.SliceStable(byY, func(i, j int) bool {
		return byY[i].Below(byY[j].Point)
	})

	return closestPairXY(byX, byY), nil
}

type rankedPoint struct {
	Point
	rank int
}

func unrank(ranked []rankedPoint) PointSet {
	points := make(PointSet, len(ranked))
	for i, p := range ranked {
		points[i] = p.Point
	}
	return points
}

func closestPairXY(byX, byY []rankedPoint) Pair {
	if len(byX) <= 3 {
		return bruteForcePair(unrank(byX))
	}

	mid := len(byX) / 2
	midRank := byX[mid].rank
	leftY := make([]rankedPoint, 0, mid+1)
	rightY := make([]rankedPoint, 0, len(byX)-mid-1)
	for _, p := range byY {
		if p.rank <= midRank {
			leftY = append(leftY, p)
		} else {
			rightY = append(rightY, p)
		}
	}

	best := closer(
		closestPairXY(byX[:mid+1], leftY),
		closestPairXY(byX[mid+1:], rightY),
	)

	midX := byX[mid].X
	strip := make(PointSet, 0, len(byY))
	for _, p := range byY {
		if p.X-midX <= best.Distance && midX-p.X <= best.Distance {
			strip = append(strip, p.Point)
		}
	}

	return closer(best, closestInStrip(strip))
}
