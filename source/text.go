// Point acquisition. Nothing in here is needed to compute a hull or a closest
// pair; it produces the PointSets those computations consume.
package source

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/planar/geometry"
	"github.com/pkg/errors"
)

// Read points written one per line as "x y". Blank lines and lines starting
// with # are skipped.
func Text(r io.Reader) (geometry.PointSet, error) {
	points := geometry.PointSet{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (geometry.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geometry.Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geometry.Point{X: x, Y: y}, nil
}

// Check that a point set is big enough for an operation that needs min points.
// Sources never retry on their own; a caller that wants to keep asking for
// points loops on this.
func Validate(points geometry.PointSet, min int) error {
	return points.Validate("point source", min)
}
