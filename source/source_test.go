package source

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/osuushi/planar/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := "# a comment\n0 0\n\n3 4\n  1.5   -2e1  \n"
		points, err := Text(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, geometry.PointSet{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1.5, Y: -20}}, points)
	})

	t.Run("empty input", func(t *testing.T) {
		points, err := Text(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("wrong coordinate count", func(t *testing.T) {
		_, err := Text(strings.NewReader("0 0\n1 2 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := Text(strings.NewReader("0 zero\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid y value")
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(geometry.PointSet{{X: 0, Y: 0}, {X: 1, Y: 1}}, 2))

	err := Validate(geometry.PointSet{{X: 0, Y: 0}}, 2)
	require.Error(t, err)
	assert.True(t, geometry.IsInsufficientPoints(err))
}

func TestUniform(t *testing.T) {
	points := Uniform(rand.New(rand.NewSource(1)), 500)
	require.Len(t, points, 500)
	for _, p := range points {
		assert.True(t, p.X >= -Extent && p.X <= Extent, "x out of range: %v", p)
		assert.True(t, p.Y >= -Extent && p.Y <= Extent, "y out of range: %v", p)
	}

	again := Uniform(rand.New(rand.NewSource(1)), 500)
	assert.Equal(t, points, again, "same seed should give the same points")
}

func TestClustered(t *testing.T) {
	points := Clustered(rand.New(rand.NewSource(7)), 300)
	require.Len(t, points, 300)
	for _, p := range points {
		assert.True(t, p.X >= -Extent && p.X <= Extent, "x out of range: %v", p)
		assert.True(t, p.Y >= -Extent && p.Y <= Extent, "y out of range: %v", p)
	}
}

func TestYAML(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		input := "points:\n  - {x: 0, y: 0}\n  - {x: 3, y: 4}\n  - {x: -1.25, y: 2}\n"
		points, err := YAML(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, geometry.PointSet{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: -1.25, Y: 2}}, points)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := YAML(strings.NewReader("points:\n  - {x: 0, y: 0, z: 1}\n"))
		assert.Error(t, err)
	})

	t.Run("written points read back", func(t *testing.T) {
		points := Uniform(rand.New(rand.NewSource(3)), 20)
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, points))
		readBack, err := YAML(&buf)
		require.NoError(t, err)
		assert.Equal(t, points, readBack)
	})
}

func TestSVG(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 1,0 1,1"/>
  <g><circle cx="0.5" cy="0.25" r="1"/></g>
</svg>`
	points, err := SVG(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, geometry.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.25}}, points)

	_, err = SVG(strings.NewReader(`<svg><polygon points="0,0 1"/></svg>`))
	assert.Error(t, err)
}

func TestFixture(t *testing.T) {
	assert.ElementsMatch(t, []string{"collinear", "square", "star", "triangle"}, FixtureNames())

	square, err := Fixture("square")
	require.NoError(t, err)
	assert.Len(t, square, 8)

	collinear, err := Fixture("collinear")
	require.NoError(t, err)
	assert.Equal(t, geometry.PointSet{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, collinear)

	_, err = Fixture("nope")
	assert.Error(t, err)
}
