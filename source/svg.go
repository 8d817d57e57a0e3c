package source

import (
	"embed"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/planar/geometry"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It collects the center of
// every <circle> and every vertex of every <polygon>, in document order, and
// ignores everything else, including transforms.
func SVG(r io.Reader) (geometry.PointSet, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := geometry.PointSet{}
	err = walkElements(rootEl, func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := parseCoordinates(el.Attributes["cx"], el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "circle")
			}
			points = append(points, p)
		case "polygon":
			vertices, err := parsePolygonPoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrap(err, "polygon")
			}
			points = append(points, vertices...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

func walkElements(el *svgparser.Element, visit func(*svgparser.Element) error) error {
	if err := visit(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := walkElements(child, visit); err != nil {
			return err
		}
	}
	return nil
}

func parsePolygonPoints(pointString string) (geometry.PointSet, error) {
	var points geometry.PointSet
	for _, pointString := range strings.Fields(pointString) {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		p, err := parseCoordinates(coordinates[0], coordinates[1])
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func parseCoordinates(xString, yString string) (geometry.Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return geometry.Point{X: x, Y: y}, nil
}

// Fixtures are available by name in the fixtures/ directory, sans extension.
//
//go:embed fixtures
var fixtures embed.FS

func Fixture(name string) (geometry.PointSet, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer fixture.Close()

	points, err := SVG(fixture)
	return points, errors.Wrapf(err, "fixture %q", name)
}

// Names of the embedded fixtures.
func FixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}
