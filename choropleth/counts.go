// Package choropleth joins per-country sample counts onto shapefile
// geometry and renders shaded maps, with bar charts as a fallback.
package choropleth

import (
	"sort"

	"github.com/bge-barcoding/boldtools/tabular"
)

// CountryCount is one country's tally.
type CountryCount struct {
	Country string
	Count   int
}

// CountByCountry groups the table by countryCol. With an empty valueCol rows
// are counted; otherwise non-empty values there are counted, or distinct
// values when unique is set. The result is sorted by count, descending.
func CountByCountry(t *tabular.Table, countryCol, valueCol string, unique bool) ([]CountryCount, error) {
	counts, err := t.GroupCount(countryCol, valueCol, unique)
	if err != nil {
		return nil, err
	}

	out := make([]CountryCount, 0, len(counts))
	for country, n := range counts {
		out = append(out, CountryCount{Country: country, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})

	return out, nil
}

// MaxCount returns the largest tally, or zero for an empty slice.
func MaxCount(counts []CountryCount) int {
	max := 0
	for _, c := range counts {
		if c.Count > max {
			max = c.Count
		}
	}
	return max
}
