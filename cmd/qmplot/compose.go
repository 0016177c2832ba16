package main

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/liqingbioinfo/qmplot/manhattan"
	"github.com/liqingbioinfo/qmplot/qq"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/wcharczuk/go-chart/v2"
)

// writeCombined renders both plots as PNG, composes them onto a single
// canvas with the Manhattan plot on top and the Q-Q plot centered below,
// and writes <prefix>.combined.png.
func writeCombined(plots *plotSet, outPrefix string, dpi float64) error {
	top, err := renderImage(manhattan.Plot(plots.layout, plots.signals, plots.manhattan))
	if err != nil {
		return err
	}

	bottom, err := renderImage(qq.Plot(plots.expected, plots.observed, plots.qq))
	if err != nil {
		return err
	}

	combined := combinePanels(top, bottom, dpi)

	filename := outPrefix + ".combined.png"
	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if err := png.Encode(outFile, combined); err != nil {
		return err
	}

	log.Println("Wrote", filename)

	return nil
}

func renderImage(graph chart.Chart) (image.Image, error) {
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return png.Decode(buffer)
}

// combinePanels stacks two images on a millimeter-sized canvas and
// rasterizes the result back to pixels at the requested DPI.
func combinePanels(top, bottom image.Image, dpi float64) image.Image {
	dpmm := canvas.Resolution(dpi / 25.4)

	topW := float64(top.Bounds().Dx()) / float64(dpmm)
	topH := float64(top.Bounds().Dy()) / float64(dpmm)
	bottomW := float64(bottom.Bounds().Dx()) / float64(dpmm)
	bottomH := float64(bottom.Bounds().Dy()) / float64(dpmm)

	width := math.Max(topW, bottomW)

	c := canvas.New(width, topH+bottomH)
	ctx := canvas.NewContext(c)

	// The context's y-axis points up, so the top panel sits above bottomH.
	ctx.DrawImage((width-topW)/2, bottomH, top, dpmm)
	ctx.DrawImage((width-bottomW)/2, 0, bottom, dpmm)

	return rasterizer.Draw(c, dpmm, canvas.DefaultColorSpace)
}
