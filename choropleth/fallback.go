package choropleth

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// FallbackCharts renders the bar-chart stand-in used when the map cannot be
// produced: a top-15 chart and an all-countries log-scale chart, composited
// side by side into sample_charts.png, plus an SVG per chart.
func FallbackCharts(counts []CountryCount, outDir, title, colour string) error {
	if len(counts) == 0 {
		return pfx.Err(fmt.Errorf("no country counts to chart"))
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return pfx.Err(err)
	}

	ramp, err := Ramp(colour)
	if err != nil {
		return err
	}

	top := counts
	if len(top) > 15 {
		top = top[:15]
	}

	topChart := barChart("Top 15 Countries - "+title, top, ramp, false)
	logChart := barChart("All Countries - Log Scale", counts, ramp, true)

	if err := renderSVG(topChart, filepath.Join(outDir, "sample_charts_top15.svg")); err != nil {
		return err
	}
	if err := renderSVG(logChart, filepath.Join(outDir, "sample_charts_log.svg")); err != nil {
		return err
	}

	return compositePNG([]chart.BarChart{topChart, logChart}, filepath.Join(outDir, "sample_charts.png"))
}

type imageWithWidth struct {
	img   image.Image
	width int
}

func barChart(title string, counts []CountryCount, ramp func(float64) color.RGBA, logScale bool) chart.BarChart {
	bars := make([]chart.Value, 0, len(counts))

	labelStep := len(counts)/20 + 1
	for i, cc := range counts {
		value := float64(cc.Count)
		if logScale {
			value = math.Log10(float64(cc.Count) + 1)
		}

		label := cc.Country
		if logScale && i%labelStep != 0 {
			label = " "
		}

		// Shade bars along the ramp, largest darkest
		t := 1.0
		if len(counts) > 1 {
			t = 1.0 - 0.7*float64(i)/float64(len(counts)-1)
		}
		col := ramp(t)

		bars = append(bars, chart.Value{
			Value: value,
			Label: label,
			Style: chart.Style{
				FillColor:   drawing.Color{R: col.R, G: col.G, B: col.B, A: 255},
				StrokeWidth: 0,
			},
		})
	}

	width := 80 * len(bars)
	if width < 800 {
		width = 800
	}
	if width > 2400 {
		width = 2400
	}

	return chart.BarChart{
		Title:    title,
		Width:    width,
		Height:   600,
		BarWidth: 30,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: bars,
	}
}

func renderSVG(graph chart.BarChart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(graph.Render(chart.SVG, f))
}

// compositePNG renders each chart to PNG and lays them out side by side on
// one white canvas.
func compositePNG(charts []chart.BarChart, path string) error {
	totalW, maxH := 0, 0
	images := make([]imageWithWidth, 0, len(charts))

	for _, graph := range charts {
		var buf bytes.Buffer
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return pfx.Err(err)
		}

		img, err := png.Decode(&buf)
		if err != nil {
			return pfx.Err(err)
		}

		b := img.Bounds()
		images = append(images, imageWithWidth{img: img, width: b.Dx()})
		totalW += b.Dx()
		if b.Dy() > maxH {
			maxH = b.Dy()
		}
	}

	dc := gg.NewContext(totalW, maxH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	x := 0
	for _, iw := range images {
		dc.DrawImage(iw.img, x, 0)
		x += iw.width
	}

	return pfx.Err(dc.SavePNG(path))
}
