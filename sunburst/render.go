package sunburst

import (
	"math"

	"github.com/tdewolff/canvas"

	"github.com/bge-barcoding/boldtools"
)

type RenderConfig struct {
	Title             string
	WidthIn, HeightIn float64
	LineWidth         float64 // wedge border width, in points
	LabelThresholdDeg float64 // hide labels on wedges narrower than this
	CountUnique       bool
}

const ptToMM = 25.4 / 72.0

// Render draws the laid-out wedges onto a canvas. The caller decides the
// output format when saving.
func Render(res *Result, total int, cfg RenderConfig) (*canvas.Canvas, error) {
	family, err := boldtools.ChartFonts()
	if err != nil {
		return nil, err
	}

	w := cfg.WidthIn * boldtools.MMPerInch
	h := cfg.HeightIn * boldtools.MMPerInch
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	cx, cy := w/2, h/2
	// The outer ring plus a 10% margin fills the shorter edge.
	scale := math.Min(w, h) / 2 / (MaxRadius * 1.1)

	stroke := cfg.LineWidth * ptToMM
	for _, seg := range res.Segments {
		ctx.SetFillColor(seg.Color)
		ctx.SetStrokeColor(canvas.White)
		ctx.SetStrokeWidth(stroke)
		ctx.DrawPath(cx, cy, wedgePath(seg, scale))
	}

	// Labels after all wedges so borders never cross text
	for _, seg := range res.Segments {
		if seg.Angle() <= cfg.LabelThresholdDeg {
			continue
		}
		drawSegmentLabel(ctx, family, seg, cx, cy, scale)
	}

	// Center disc with the grand total
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(1.0)
	ctx.DrawPath(cx, cy, canvas.Circle(CenterRadius*scale))

	centerLabel := "Total\nSamples"
	if cfg.CountUnique {
		centerLabel = "Unique\nValues"
	}
	face := family.Face(14, canvas.Black, canvas.FontBold, canvas.FontNormal)
	ctx.DrawText(cx, cy, canvas.NewTextLine(face, centerLabel+"\n"+boldtools.FormatThousands(total), canvas.Center))

	if cfg.Title != "" {
		titleFace := family.Face(18, canvas.Black, canvas.FontBold, canvas.FontNormal)
		ctx.DrawText(cx, h-10, canvas.NewTextLine(titleFace, cfg.Title, canvas.Center))
	}

	return c, nil
}

// wedgePath builds an annular wedge centered on the origin.
func wedgePath(seg Segment, scale float64) *canvas.Path {
	start, end := seg.Start, seg.End
	if end-start >= 360 {
		// A full ring has no usable arc endpoints; leave a hairline gap.
		end = start + 359.99
	}

	ri := seg.InnerR * scale
	ro := seg.OuterR * scale
	a0 := start * math.Pi / 180
	a1 := end * math.Pi / 180
	large := end-start > 180

	p := &canvas.Path{}
	p.MoveTo(ri*math.Cos(a0), ri*math.Sin(a0))
	p.LineTo(ro*math.Cos(a0), ro*math.Sin(a0))
	p.ArcTo(ro, ro, 0, large, true, ro*math.Cos(a1), ro*math.Sin(a1))
	p.LineTo(ri*math.Cos(a1), ri*math.Sin(a1))
	p.ArcTo(ri, ri, 0, large, false, ri*math.Cos(a0), ri*math.Sin(a0))
	p.Close()

	return p
}

func drawSegmentLabel(ctx *canvas.Context, family *canvas.FontFamily, seg Segment, cx, cy, scale float64) {
	midAngle := (seg.Start + seg.End) / 2
	midRadius := (seg.InnerR + seg.OuterR) / 2 * scale

	rad := midAngle * math.Pi / 180
	x := cx + midRadius*math.Cos(rad)
	y := cy + midRadius*math.Sin(rad)

	// Radial text, flipped in the lower half so it reads outward
	rotation := midAngle
	if midAngle > 90 && midAngle <= 270 {
		rotation += 180
	}

	size := 14.0 - float64(seg.Level)
	if size > 12 {
		size = 12
	}
	if size < 6 {
		size = 6
	}
	if seg.Angle() < 10 && size > 8 {
		size -= 2
	}

	style := canvas.FontRegular
	if seg.Level <= 2 {
		style = canvas.FontBold
	}

	face := family.Face(size, canvas.Black, style, canvas.FontNormal)

	ctx.Push()
	ctx.Translate(x, y)
	ctx.Rotate(rotation)
	ctx.DrawText(0, 0, canvas.NewTextLine(face, seg.Key+"\n"+boldtools.FormatThousands(seg.Value), canvas.Center))
	ctx.Pop()
}
