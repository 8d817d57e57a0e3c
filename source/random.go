package source

import (
	"math"
	"math/rand"

	fastnoiselite "github.com/furui/fastnoiselite-go"
	"github.com/osuushi/planar/geometry"
)

// Random points are drawn from the square [-Extent, Extent]².
const Extent = 50.0

const (
	clusterFrequency = 0.04
	// Floor on the acceptance probability, so that sampling always terminates
	// quickly even where the noise bottoms out.
	minAcceptance = 0.05
)

// Uniformly distributed random points.
func Uniform(rng *rand.Rand, n int) geometry.PointSet {
	points := make(geometry.PointSet, n)
	for i := range points {
		points[i] = randomPoint(rng)
	}
	return points
}

// Random points that bunch up into clusters. Candidates are drawn uniformly,
// then kept with a probability that follows 2D value noise, so dense and empty
// regions alternate across the square.
func Clustered(rng *rand.Rand, n int) geometry.PointSet {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int31()
	noise.Frequency = clusterFrequency

	points := make(geometry.PointSet, 0, n)
	for len(points) < n {
		p := randomPoint(rng)
		// Noise is in [-1, 1]; squaring the shifted value sharpens the clusters
		value := float64(noise.GetNoise2D(fastnoiselite.FNLfloat(p.X), fastnoiselite.FNLfloat(p.Y)))
		acceptance := math.Max(minAcceptance, math.Pow((value+1)/2, 2))
		if rng.Float64() < acceptance {
			points = append(points, p)
		}
	}
	return points
}

func randomPoint(rng *rand.Rand) geometry.Point {
	return geometry.Point{
		X: (rng.Float64()*2 - 1) * Extent,
		Y: (rng.Float64()*2 - 1) * Extent,
	}
}
