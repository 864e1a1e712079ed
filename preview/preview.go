// Package preview renders hatch output to a raster image, mainly so the
// result can be eyeballed straight in the terminal without opening the
// SVG anywhere.
package preview

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hatch/geometry"
	"github.com/osuushi/hatch/svg"
	"github.com/pkg/errors"
)

const padding = 10

func init() {
	// Temp names must differ between runs, not just within one.
	petname.NonDeterministicMode()
}

// SavePNG draws the contour and hatch segments into a PNG of the given
// canvas size, with the same uniform-scale, Y-up-to-Y-down transform the
// SVG writer uses.
func SavePNG(path string, contour, hatch []geometry.Segment, width, height int) error {
	all := append(append([]geometry.Segment{}, contour...), hatch...)
	if len(all) == 0 {
		return errors.New("nothing to draw")
	}
	minX, minY, maxX, maxY := svg.Bounds(all)

	c := gg.NewContext(width+padding*2, height+padding*2)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width+padding*2), float64(height+padding*2))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then fit the
	// bounding box to the canvas.
	c.Translate(0, float64(height+padding*2))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	scale := math.Min(float64(width)/(maxX-minX), float64(height)/(maxY-minY))
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	for _, s := range hatch {
		c.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	c.Stroke()

	c.SetLineWidth(2)
	for _, s := range contour {
		c.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	c.Stroke()

	return errors.Wrapf(c.SavePNG(path), "failed to save %s", path)
}

// Show cats an image straight into the terminal (iTerm2-style inline
// images; other terminals will print garbage, which is on the user).
func Show(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}

// TempFile returns a fresh preview path in the system temp directory.
// The name is a random petname rather than a fixed string, so two runs
// previewing at once don't clobber each other's image.
func TempFile() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("hatch-%s.png", petname.Generate(2, "-")))
}
