package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar"
	"github.com/osuushi/planar/dbg"
	"github.com/osuushi/planar/geometry"
	"github.com/osuushi/planar/render"
	"github.com/osuushi/planar/source"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Points come from stdin, a file, an embedded fixture
// or a random generator; see --help for the commands.

var (
	app = kingpin.New("planar", "Closest pair and convex hull of a set of 2D points.")

	sourceName = app.Flag("source", "Where points come from.").Default("uniform").
			Enum("text", "uniform", "clustered", "yaml", "svg", "fixture")
	inputPath   = app.Flag("file", "Input file for the text, yaml and svg sources. Defaults to stdin.").Default("").String()
	fixtureName = app.Flag("fixture", "Embedded fixture for the fixture source.").Default("square").String()
	count       = app.Flag("count", "Number of random points.").Short('n').Default("100").Int()
	seed        = app.Flag("seed", "Random seed. 0 seeds from the clock.").Default("0").Int64()
	profileDir  = app.Flag("profile", "Write a CPU profile to this directory.").Default("").String()
	noColor     = app.Flag("no-color", "Disable colored output.").Default("false").Bool()

	closestCmd       = app.Command("closest", "Find the closest pair of points.")
	closestAlgorithm = closestCmd.Flag("algorithm", "Closest pair algorithm.").Short('a').Default("dac").
				Enum("dac", "xy", "brute", "indexed")

	hullCmd       = app.Command("hull", "Compute the convex hull.")
	hullAlgorithm = hullCmd.Flag("algorithm", "Convex hull algorithm.").Short('a').Default("quick").
			Enum("brute", "jarvis", "graham", "quick")
	pngPath   = hullCmd.Flag("png", "Draw the points and hull to this PNG file.").Default("").String()
	showImage = hullCmd.Flag("imgcat", "Print the drawing in the terminal (iTerm only).").Default("false").Bool()
	scale     = hullCmd.Flag("scale", "Pixels per unit in the drawing.").Default("8").Float64()
	verbose   = hullCmd.Flag("verbose", "Label hull vertices with readable names.").Short('v').Default("false").Bool()

	benchCmd = app.Command("bench", "Time every algorithm on the same point sets.")
	trials   = benchCmd.Flag("trials", "Number of point sets to time.").Default("10").Int()
)

// Random point sets that turn out degenerate are redrawn this many times
const maxRedraws = 5

var au aurora.Aurora

func main() {
	log.SetFlags(0)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au = aurora.NewAurora(!*noColor)

	if err := run(command, os.Stdout); err != nil {
		log.Fatalf("%s %v", au.Red("error:"), err)
	}
}

func run(command string, out io.Writer) error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir)).Stop()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	switch command {
	case closestCmd.FullCommand():
		return runClosest(rng, out)
	case hullCmd.FullCommand():
		return runHull(rng, out)
	case benchCmd.FullCommand():
		return runBench(rng, out)
	}
	return errors.Errorf("unknown command %q", command)
}

func isRandomSource() bool {
	return *sourceName == "uniform" || *sourceName == "clustered"
}

func loadPoints(rng *rand.Rand) (geometry.PointSet, error) {
	switch *sourceName {
	case "uniform":
		return source.Uniform(rng, *count), nil
	case "clustered":
		return source.Clustered(rng, *count), nil
	case "fixture":
		return source.Fixture(*fixtureName)
	}

	in := os.Stdin
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}

	switch *sourceName {
	case "yaml":
		return source.YAML(in)
	case "svg":
		return source.SVG(in)
	}
	return source.Text(in)
}

// Load points and check there are at least min of them.
func loadValidPoints(rng *rand.Rand, min int) (geometry.PointSet, error) {
	points, err := loadPoints(rng)
	if err != nil {
		return nil, err
	}
	if err := source.Validate(points, min); err != nil {
		return nil, err
	}
	return points, nil
}

func runClosest(rng *rand.Rand, out io.Writer) error {
	algorithm, err := planar.ParsePairAlgorithm(*closestAlgorithm)
	if err != nil {
		return err
	}
	points, err := loadValidPoints(rng, 2)
	if err != nil {
		return err
	}

	pair, err := planar.FindClosestPair(algorithm, points...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d points, %s\n", au.Bold("closest pair"), len(points), algorithm)
	fmt.Fprintf(out, "  %v and %v\n", pair.A, pair.B)
	fmt.Fprintf(out, "  distance %s\n", au.Green(fmt.Sprintf("%g", pair.Distance)))
	return nil
}

func runHull(rng *rand.Rand, out io.Writer) error {
	algorithm, err := planar.ParseAlgorithm(*hullAlgorithm)
	if err != nil {
		return err
	}

	var points geometry.PointSet
	var result planar.HullResult
	for attempt := 0; ; attempt++ {
		points, err = loadValidPoints(rng, 3)
		if err != nil {
			return err
		}
		result, err = planar.Hull(algorithm, points...)
		if err == nil {
			break
		}
		// A fresh random set will almost surely not be collinear again
		if !geometry.IsDegenerateGeometry(err) || !isRandomSource() || attempt >= maxRedraws {
			return err
		}
		log.Printf("%s %v, drawing new points", au.Yellow("warning:"), err)
	}

	kind := "unordered set"
	if result.Ordered {
		kind = "counterclockwise polygon"
	}
	fmt.Fprintf(out, "%s %d points, %s, %d hull points (%s)\n",
		au.Bold("convex hull"), len(points), algorithm, len(result.Vertices), kind)
	for _, p := range result.Vertices {
		if *verbose {
			fmt.Fprintf(out, "  %s\n", dbg.Label(p))
		} else {
			fmt.Fprintf(out, "  %v\n", p)
		}
	}
	if polygon, ok := result.Polygon(); ok {
		fmt.Fprintf(out, "  area %s\n", au.Green(fmt.Sprintf("%g", polygon.Area())))
	}

	if *pngPath == "" && !*showImage {
		return nil
	}
	path := *pngPath
	if path == "" {
		path = filepath.Join(os.TempDir(), "planar_hull.png")
	}
	c := render.Draw(points, result.Vertices, result.Ordered, *scale)
	if err := render.SavePNG(c, path); err != nil {
		return err
	}
	if *showImage {
		render.Cat(path, out)
	}
	return nil
}
