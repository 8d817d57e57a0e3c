package geometry

import (
	"github.com/dhconnelly/rtreego"
)

// R-tree node fan-out bounds
const (
	indexMinChildren = 25
	indexMaxChildren = 50
)

type indexedPoint struct {
	Point
	id int
}

// Points are stored as zero size rectangles, so distances reported by the tree
// are exact point distances.
func (p *indexedPoint) Bounds() rtreego.Rect {
	return rtreego.Point{p.X, p.Y}.ToRect(0)
}

// Closest pair by nearest neighbour queries against an R-tree. This is an
// independent cross-check for the divide and conquer solvers: it shares none
// of their recursion, only Distance.
func ClosestPairIndexed(points PointSet) (Pair, error) {
	if err := points.Validate("indexed closest pair", 2); err != nil {
		return Pair{}, err
	}

	tree := rtreego.NewTree(2, indexMinChildren, indexMaxChildren)
	indexed := make([]*indexedPoint, len(points))
	for i, p := range points {
		indexed[i] = &indexedPoint{Point: p, id: i}
		tree.Insert(indexed[i])
	}

	best := noPair()
	for _, p := range indexed {
		// The two nearest objects are the point itself and its nearest
		// neighbour, unless duplicates push the point out, in which case a
		// duplicate at distance 0 is just as good.
		for _, spatial := range tree.NearestNeighbors(2, rtreego.Point{p.X, p.Y}) {
			neighbor, ok := spatial.(*indexedPoint)
			if !ok || neighbor == nil || neighbor.id == p.id {
				continue
			}
			best = closer(best, Pair{A: p.Point, B: neighbor.Point, Distance: Distance(p.Point, neighbor.Point)})
		}
	}
	return best, nil
}
