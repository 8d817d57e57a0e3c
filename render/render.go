// Images of point sets and their hulls, for eyeballing results.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planar/geometry"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const Padding = 20

const pointRadius = 3

// Draw the points with the hull points highlighted. When closed is true the
// hull is also outlined as a polygon, which only makes sense for an ordered
// hull.
//
// The context is flipped so that Y grows upward, like the coordinates.
func Draw(points geometry.PointSet, hull []geometry.Point, closed bool, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + Padding*2
	height := int(scale*(maxY-minY)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(Padding, Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if closed && len(hull) > 0 {
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	// Point radii are in pixels, so undo the scale for them
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, pointRadius/scale)
		c.Fill()
	}
	c.SetRGB(1, 0.3, 0)
	for _, p := range hull {
		c.DrawCircle(p.X, p.Y, 1.5*pointRadius/scale)
		c.Fill()
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a PNG file to the terminal. Only terminals that speak the iTerm image
// protocol will show anything.
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
