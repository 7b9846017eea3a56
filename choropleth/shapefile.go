package choropleth

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	shp "github.com/jonas-p/go-shp"
)

// nameAttributes are the Natural Earth attribute columns consulted when
// matching country names, in order of preference.
var nameAttributes = []string{"NAME", "NAME_LONG", "NAME_EN", "ADMIN"}

// likelyShapefileNames mark a shapefile as a probable country-boundary
// layer when a directory holds several.
var likelyShapefileNames = []string{"countries", "admin", "ne_", "world"}

type Point struct{ X, Y float64 }

// Feature is one shapefile geometry plus the attribute names used for
// country matching and the sample count joined onto it.
type Feature struct {
	Names [][2]string // attribute column, value
	Rings [][]Point

	MinX, MinY, MaxX, MaxY float64

	Count   int
	HasData bool
}

// Centroid returns the area centroid of the feature's largest ring, falling
// back to the bounding-box center for degenerate rings.
func (f *Feature) Centroid() Point {
	var largest []Point
	for _, ring := range f.Rings {
		if len(ring) > len(largest) {
			largest = ring
		}
	}

	var area, cx, cy float64
	for i := 0; i < len(largest); i++ {
		p, q := largest[i], largest[(i+1)%len(largest)]
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}

	if math.Abs(area) < 1e-12 {
		return Point{X: (f.MinX + f.MaxX) / 2, Y: (f.MinY + f.MaxY) / 2}
	}

	area *= 0.5
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// FindShapefile locates the shapefile to use. With an explicit name, that
// file must exist under dir. Otherwise dir is searched recursively; a single
// hit wins outright, multiple hits prefer a likely country layer, then the
// first found.
func FindShapefile(dir, explicit string) (string, error) {
	if explicit != "" {
		path := filepath.Join(dir, explicit)
		if _, err := os.Stat(path); err != nil {
			return "", pfx.Err(fmt.Errorf("specified shapefile does not exist: %s", path))
		}
		return path, nil
	}

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".shp") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return "", pfx.Err(err)
	}

	if len(found) == 0 {
		return "", pfx.Err(fmt.Errorf("no shapefiles found in %s", dir))
	}
	if len(found) == 1 {
		return found[0], nil
	}

	for _, path := range found {
		base := strings.ToLower(filepath.Base(path))
		for _, likely := range likelyShapefileNames {
			if strings.Contains(base, likely) {
				return path, nil
			}
		}
	}

	return found[0], nil
}

// LoadFeatures reads every polygon from the shapefile along with its country
// name attributes. French Guiana features are skipped so they do not drag
// France's bounds to South America.
func LoadFeatures(path string) ([]*Feature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	fields := r.Fields()
	nameFieldIdx := make(map[string]int)
	for i, field := range fields {
		name := strings.ToUpper(field.String())
		for _, want := range nameAttributes {
			if name == want {
				nameFieldIdx[want] = i
			}
		}
	}

	var features []*Feature

rows:
	for r.Next() {
		n, shape := r.Shape()

		var box shp.Box
		var points []shp.Point
		var parts []int32

		switch geom := shape.(type) {
		case *shp.Polygon:
			box, points, parts = geom.Box, geom.Points, geom.Parts
		case *shp.PolygonZ:
			box, points, parts = geom.Box, geom.Points, geom.Parts
		default:
			continue
		}

		f := &Feature{MinX: box.MinX, MinY: box.MinY, MaxX: box.MaxX, MaxY: box.MaxY}

		for _, attr := range nameAttributes {
			idx, ok := nameFieldIdx[attr]
			if !ok {
				continue
			}
			value := strings.TrimSpace(r.ReadAttribute(n, idx))
			if value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), "french guiana") {
				continue rows
			}
			f.Names = append(f.Names, [2]string{attr, value})
		}

		for i := range parts {
			begin := int(parts[i])
			end := len(points)
			if i+1 < len(parts) {
				end = int(parts[i+1])
			}

			ring := make([]Point, 0, end-begin)
			for _, p := range points[begin:end] {
				ring = append(ring, Point{X: p.X, Y: p.Y})
			}
			f.Rings = append(f.Rings, ring)
		}

		features = append(features, f)
	}

	return features, nil
}

// MatchResult reports how country names joined onto geometry.
type MatchResult struct {
	Matched   int
	Unmatched []CountryCount

	// Fuzzy lists data names that only joined by substring, with the
	// shapefile name they landed on.
	Fuzzy map[string]string
}

// Match joins counts onto features by name: alias-resolved exact match over
// the name attributes first, then case-insensitive substring match against
// the raw data name. Every feature carrying a matched name receives the
// count.
func Match(features []*Feature, counts []CountryCount, aliases map[string]string) *MatchResult {
	res := &MatchResult{Fuzzy: map[string]string{}}

	for _, cc := range counts {
		canonical := CanonicalName(cc.Country, aliases)

		matched := false
		for _, f := range features {
			for _, name := range f.Names {
				if name[1] == canonical {
					f.Count = cc.Count
					f.HasData = true
					matched = true
					break
				}
			}
		}

		if !matched {
			needle := strings.ToLower(cc.Country)
			for _, f := range features {
				for _, name := range f.Names {
					if strings.Contains(strings.ToLower(name[1]), needle) {
						f.Count = cc.Count
						f.HasData = true
						matched = true
						res.Fuzzy[cc.Country] = name[1]
						break
					}
				}
			}
		}

		if matched {
			res.Matched++
		} else {
			res.Unmatched = append(res.Unmatched, cc)
		}
	}

	return res
}
