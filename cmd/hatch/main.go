package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hatch"
	"github.com/osuushi/hatch/preview"
	"github.com/osuushi/hatch/svg"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Fixed canvas size for both the SVG document and the PNG preview.
const canvasWidth, canvasHeight = 400, 400

var (
	app = kingpin.New("hatch", "Fill a convex quadrilateral with hatch lines and render the result as SVG.")

	points = app.Flag("points", "Corner points, 8 floats: \"x1 y1 x2 y2 x3 y3 x4 y4\".").Required().String()
	angle  = app.Flag("angle", "Hatch angle in degrees (0 is horizontal).").Required().Float64()
	step   = app.Flag("step", "Distance between hatch lines; must be positive.").Required().Float64()
	svgOut = app.Flag("svg", "Write an SVG rendering to this file.").PlaceHolder("PATH").String()
	pngOut = app.Flag("png", "Write a PNG rendering to this file.").PlaceHolder("PATH").String()
	show   = app.Flag("show", "Display the rendering inline in the terminal (implies a temp PNG unless --png is given).").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	rect, err := hatch.ParsePoints(*points)
	if err != nil {
		fail(err)
	}
	if *step <= 0 {
		fail(fmt.Errorf("step must be positive, got %g", *step))
	}

	segments := hatch.Generate(rect, *angle, *step)
	contour := hatch.Contour(rect)

	for _, segment := range segments {
		fmt.Println("Line:", segment)
	}
	fmt.Println(aurora.Green(fmt.Sprintf("%d hatch lines", len(segments))))

	if *svgOut != "" {
		if err := writeSVG(*svgOut, segments, contour); err != nil {
			fail(err)
		}
	}

	pngPath := *pngOut
	if pngPath == "" && *show {
		pngPath = preview.TempFile()
	}
	if pngPath != "" {
		if err := preview.SavePNG(pngPath, contour, segments, canvasWidth, canvasHeight); err != nil {
			fail(err)
		}
		if *show {
			if err := preview.Show(pngPath); err != nil {
				fail(err)
			}
		}
	}
}

func writeSVG(path string, segments, contour []hatch.Segment) error {
	w, err := svg.NewWriter(path, canvasWidth, canvasHeight)
	if err != nil {
		return err
	}
	w.DrawSegments(segments, svg.Hatch)
	w.DrawSegments(contour, svg.Contour)
	return w.Close()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}
