package source

import (
	"io"

	"github.com/osuushi/planar/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Point files look like:
//
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 3, y: 4}
type yamlPointFile struct {
	Points []yamlPoint `yaml:"points"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func YAML(r io.Reader) (geometry.PointSet, error) {
	var file yamlPointFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return geometry.PointSet{}, nil
		}
		return nil, errors.Wrap(err, "decoding yaml points")
	}

	points := make(geometry.PointSet, len(file.Points))
	for i, p := range file.Points {
		points[i] = geometry.Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

// Write points in the format YAML reads.
func WriteYAML(w io.Writer, points geometry.PointSet) error {
	file := yamlPointFile{Points: make([]yamlPoint, len(points))}
	for i, p := range points {
		file.Points[i] = yamlPoint{X: p.X, Y: p.Y}
	}
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return errors.Wrap(encoder.Encode(file), "encoding yaml points")
}
