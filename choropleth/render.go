package choropleth

import (
	"image/color"
	"math"
	"sort"

	"github.com/tdewolff/canvas"

	"github.com/bge-barcoding/boldtools"
)

// minLabelDistance keeps count labels from piling up; positions closer than
// this many degrees to an already placed label are skipped.
const minLabelDistance = 1.5

var noDataFill = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 255}

type MapConfig struct {
	Title   string
	Colour  string
	WidthIn float64
}

// RenderMap draws the shaded country map. Features without data are light
// gray; features with data are shaded on a log scale against maxCount.
// Count labels are placed at feature centroids, largest counts first, and
// suppressed when they would overlap or fall outside the bounds.
func RenderMap(features []*Feature, bounds Bounds, maxCount int, cfg MapConfig) (*canvas.Canvas, error) {
	ramp, err := Ramp(cfg.Colour)
	if err != nil {
		return nil, err
	}

	family, err := boldtools.ChartFonts()
	if err != nil {
		return nil, err
	}

	const titleSpace = 18.0 // mm reserved above the map
	w := cfg.WidthIn * boldtools.MMPerInch
	mapH := w * bounds.Height() / bounds.Width()
	h := mapH + titleSpace

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	project := func(lon, lat float64) (float64, float64) {
		x := (lon - bounds.MinLon) / bounds.Width() * w
		y := (lat - bounds.MinLat) / bounds.Height() * mapH
		return x, y
	}

	visible := make([]*Feature, 0, len(features))
	for _, f := range features {
		if bounds.Intersects(f) {
			visible = append(visible, f)
		}
	}

	// Fill order: no-data features first so shaded ones sit on top along
	// shared borders.
	ctx.SetStrokeColor(canvas.White)
	ctx.SetStrokeWidth(0.2)
	for _, f := range visible {
		if f.HasData {
			continue
		}
		ctx.SetFillColor(noDataFill)
		ctx.DrawPath(0, 0, featurePath(f, project))
	}
	for _, f := range visible {
		if !f.HasData {
			continue
		}
		ctx.SetFillColor(ramp(LogNorm(f.Count, maxCount)))
		ctx.DrawPath(0, 0, featurePath(f, project))
	}

	drawCountLabels(ctx, family, visible, bounds, project)

	if cfg.Title != "" {
		face := family.Face(22, canvas.Black, canvas.FontBold, canvas.FontNormal)
		ctx.DrawText(w/2, h-8, canvas.NewTextLine(face, cfg.Title, canvas.Center))
	}

	return c, nil
}

func featurePath(f *Feature, project func(lon, lat float64) (float64, float64)) *canvas.Path {
	p := &canvas.Path{}
	for _, ring := range f.Rings {
		if len(ring) < 3 {
			continue
		}
		x, y := project(ring[0].X, ring[0].Y)
		p.MoveTo(x, y)
		for _, pt := range ring[1:] {
			x, y = project(pt.X, pt.Y)
			p.LineTo(x, y)
		}
		p.Close()
	}
	return p
}

func drawCountLabels(ctx *canvas.Context, family *canvas.FontFamily, features []*Feature, bounds Bounds, project func(lon, lat float64) (float64, float64)) {
	labeled := make([]*Feature, 0, len(features))
	for _, f := range features {
		if f.HasData {
			labeled = append(labeled, f)
		}
	}
	// Largest counts get label priority
	sort.Slice(labeled, func(i, j int) bool { return labeled[i].Count > labeled[j].Count })

	face := family.Face(10, canvas.Black, canvas.FontBold, canvas.FontNormal)

	var placed []Point
	for _, f := range labeled {
		ctr := f.Centroid()
		if !bounds.Contains(ctr.X, ctr.Y) {
			continue
		}

		overlaps := false
		for _, prev := range placed {
			if math.Hypot(ctr.X-prev.X, ctr.Y-prev.Y) < minLabelDistance {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		placed = append(placed, ctr)

		x, y := project(ctr.X, ctr.Y)
		text := canvas.NewTextLine(face, boldtools.FormatThousands(f.Count), canvas.Center)
		b := text.Bounds()

		const pad = 1.2
		boxW, boxH := b.W+2*pad, b.H+2*pad
		ctx.SetFillColor(color.RGBA{R: 255, G: 255, B: 255, A: 230})
		ctx.SetStrokeColor(canvas.Black)
		ctx.SetStrokeWidth(0.1)
		ctx.DrawPath(x-boxW/2, y-boxH/2, canvas.RoundedRectangle(boxW, boxH, pad))

		ctx.DrawText(x, y, text)
	}
}
