package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/osuushi/planar"
	"github.com/osuushi/planar/geometry"
)

// Cubic and quadratic algorithms are skipped above these sizes
const (
	maxBruteForceHullPoints = 300
	maxBruteForcePairPoints = 5000
)

type timing struct {
	name  string
	total time.Duration
	runs  int
}

func (t *timing) measure(fn func() error) error {
	start := time.Now()
	err := fn()
	t.total += time.Since(start)
	t.runs++
	return err
}

func runBench(rng *rand.Rand, out io.Writer) error {
	var timings []*timing
	pairTimings := map[planar.PairAlgorithm]*timing{}
	for _, algorithm := range planar.PairAlgorithms {
		pairTimings[algorithm] = &timing{name: "closest pair " + algorithm.String()}
		timings = append(timings, pairTimings[algorithm])
	}
	hullTimings := map[planar.Algorithm]*timing{}
	for _, algorithm := range planar.Algorithms {
		hullTimings[algorithm] = &timing{name: "hull " + algorithm.String()}
		timings = append(timings, hullTimings[algorithm])
	}

	bar := pb.New(*trials)
	bar.Output = os.Stderr
	bar.Start()
	for trial := 0; trial < *trials; trial++ {
		points, err := loadValidPoints(rng, 3)
		if err != nil {
			return err
		}

		for _, algorithm := range planar.PairAlgorithms {
			if algorithm == planar.BruteForcePairs && len(points) > maxBruteForcePairPoints {
				continue
			}
			err := pairTimings[algorithm].measure(func() error {
				_, err := planar.FindClosestPair(algorithm, points...)
				return err
			})
			if err != nil {
				return err
			}
		}

		for _, algorithm := range planar.Algorithms {
			if algorithm == planar.BruteForce && len(points) > maxBruteForceHullPoints {
				continue
			}
			err := hullTimings[algorithm].measure(func() error {
				_, err := planar.Hull(algorithm, points...)
				return err
			})
			// Collinear sets are a property of the input, not a failure of the run
			if err != nil && !geometry.IsDegenerateGeometry(err) {
				return err
			}
		}
		bar.Increment()
	}
	bar.Finish()

	fmt.Fprintf(out, "%s %d trials\n", au.Bold("benchmark"), *trials)
	for _, t := range timings {
		if t.runs == 0 {
			fmt.Fprintf(out, "  %-22s %s\n", t.name, au.Yellow("skipped"))
			continue
		}
		mean := t.total / time.Duration(t.runs)
		fmt.Fprintf(out, "  %-22s %s\n", t.name, au.Cyan(mean.String()))
	}
	return nil
}
