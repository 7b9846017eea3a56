package choropleth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Bounds is a lon/lat bounding box.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// ParseBounds reads "minLon,minLat,maxLon,maxLat".
func ParseBounds(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, pfx.Err(fmt.Errorf("bounds must be minLon,minLat,maxLon,maxLat; got %q", s))
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, pfx.Err(err)
		}
		vals[i] = v
	}

	return &Bounds{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}, nil
}

// BoundsFromFeatures unions the boxes of the features with data, extends
// them by border degrees, and clamps to valid coordinates. When no feature
// carries data, the union of all features is used instead.
func BoundsFromFeatures(features []*Feature, border float64) Bounds {
	withData := make([]*Feature, 0, len(features))
	for _, f := range features {
		if f.HasData {
			withData = append(withData, f)
		}
	}
	if len(withData) == 0 {
		withData = features
	}

	b := Bounds{MinLon: 180, MinLat: 90, MaxLon: -180, MaxLat: -90}
	for _, f := range withData {
		if f.MinX < b.MinLon {
			b.MinLon = f.MinX
		}
		if f.MinY < b.MinLat {
			b.MinLat = f.MinY
		}
		if f.MaxX > b.MaxLon {
			b.MaxLon = f.MaxX
		}
		if f.MaxY > b.MaxLat {
			b.MaxLat = f.MaxY
		}
	}

	b.MinLon -= border
	b.MaxLon += border
	b.MinLat -= border
	b.MaxLat += border

	return b.Clamp()
}

// Clamp limits the box to [-180,180] longitude and [-90,90] latitude.
func (b Bounds) Clamp() Bounds {
	if b.MinLon < -180 {
		b.MinLon = -180
	}
	if b.MaxLon > 180 {
		b.MaxLon = 180
	}
	if b.MinLat < -90 {
		b.MinLat = -90
	}
	if b.MaxLat > 90 {
		b.MaxLat = 90
	}
	return b
}

// Contains reports whether the point lies inside the box.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinLon && x <= b.MaxLon && y >= b.MinLat && y <= b.MaxLat
}

// Intersects reports whether a feature's box overlaps the bounds.
func (b Bounds) Intersects(f *Feature) bool {
	return f.MinX <= b.MaxLon && f.MaxX >= b.MinLon && f.MinY <= b.MaxLat && f.MaxY >= b.MinLat
}

func (b Bounds) Width() float64  { return b.MaxLon - b.MinLon }
func (b Bounds) Height() float64 { return b.MaxLat - b.MinLat }
