// Closest pair and convex hull computations for finite sets of points in the
// plane.
//
// The closest pair is found by divide and conquer in O(n log n). The convex
// hull can be built four ways: brute force, Jarvis march (gift wrapping),
// Graham scan and QuickHull. Brute force reports an unordered set of hull
// points, while the other three report a counterclockwise polygon. The two
// kinds of result are kept apart by HullResult.Ordered.
package planar

import (
	"strings"

	"github.com/osuushi/planar/geometry"
	"github.com/pkg/errors"
)

type Point = geometry.Point
type PointSet = geometry.PointSet
type HullSet = geometry.HullSet
type Pair = geometry.Pair
type Polygon = geometry.Polygon

type InsufficientPointsError = geometry.InsufficientPointsError
type DegenerateGeometryError = geometry.DegenerateGeometryError

// Convex hull construction strategy.
type Algorithm int

const (
	BruteForce Algorithm = iota
	JarvisMarch
	GrahamScan
	QuickHull
)

var Algorithms = []Algorithm{BruteForce, JarvisMarch, GrahamScan, QuickHull}

var algorithmNames = map[Algorithm]string{
	BruteForce:  "brute",
	JarvisMarch: "jarvis",
	GrahamScan:  "graham",
	QuickHull:   "quick",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// Whether the algorithm reports its hull as an ordered polygon. Only brute
// force doesn't.
func (a Algorithm) Ordered() bool {
	return a != BruteForce
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for algorithm, algorithmName := range algorithmNames {
		if strings.EqualFold(name, algorithmName) {
			return algorithm, nil
		}
	}
	return 0, errors.Errorf("unknown hull algorithm %q", name)
}

type HullResult struct {
	Algorithm Algorithm
	// For ordered results, the polygon vertices counterclockwise. Otherwise the
	// members of the hull set, lowest first.
	Vertices []Point
	Ordered  bool
}

func (r HullResult) Set() HullSet {
	return geometry.NewHullSet(r.Vertices...)
}

// The hull as a polygon. The second return value is false for unordered
// results, whose vertex order means nothing.
func (r HullResult) Polygon() (Polygon, bool) {
	if !r.Ordered {
		return Polygon{}, false
	}
	return Polygon{Points: r.Vertices}, true
}

// Compute the convex hull of points with the given algorithm.
func Hull(algorithm Algorithm, points ...Point) (HullResult, error) {
	result := HullResult{Algorithm: algorithm, Ordered: algorithm.Ordered()}
	var err error
	switch algorithm {
	case BruteForce:
		var set HullSet
		set, err = geometry.BruteForceHull(points)
		if err == nil {
			result.Vertices = set.Points()
		}
	case JarvisMarch:
		result.Vertices, err = geometry.JarvisMarch(points)
	case GrahamScan:
		result.Vertices, err = geometry.GrahamScan(points)
	case QuickHull:
		result.Vertices, err = geometry.QuickHull(points)
	default:
		return HullResult{}, errors.Errorf("unknown hull algorithm %d", int(algorithm))
	}
	if err != nil {
		return HullResult{}, err
	}
	return result, nil
}

// Closest pair strategy. All of them agree on the distance.
type PairAlgorithm int

const (
	DivideAndConquer PairAlgorithm = iota
	SortedXY
	BruteForcePairs
	Indexed
)

var PairAlgorithms = []PairAlgorithm{DivideAndConquer, SortedXY, BruteForcePairs, Indexed}

var pairAlgorithmNames = map[PairAlgorithm]string{
	DivideAndConquer: "dac",
	SortedXY:         "xy",
	BruteForcePairs:  "brute",
	Indexed:          "indexed",
}

func (a PairAlgorithm) String() string {
	if name, ok := pairAlgorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

func ParsePairAlgorithm(name string) (PairAlgorithm, error) {
	for algorithm, algorithmName := range pairAlgorithmNames {
		if strings.EqualFold(name, algorithmName) {
			return algorithm, nil
		}
	}
	return 0, errors.Errorf("unknown closest pair algorithm %q", name)
}

// The minimum distance between any two of the points.
func ClosestPair(points ...Point) (float64, error) {
	return geometry.ClosestPair(points)
}

// Find the closest pair of points with the given algorithm.
func FindClosestPair(algorithm PairAlgorithm, points ...Point) (Pair, error) {
	switch algorithm {
	case DivideAndConquer:
		return geometry.ClosestPairPoints(points)
	case SortedXY:
		return geometry.ClosestPairSortedXY(points)
	case BruteForcePairs:
		return geometry.ClosestPairBruteForce(points)
	case Indexed:
		return geometry.ClosestPairIndexed(points)
	}
	return Pair{}, errors.Errorf("unknown closest pair algorithm %d", int(algorithm))
}
