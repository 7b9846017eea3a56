package choropleth

import (
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// countryAliases maps the country spellings seen in sample metadata to the
// names Natural Earth shapefiles use. Names not listed here pass through
// unchanged.
var countryAliases = map[string]string{
	"United-Kingdom":         "United Kingdom",
	"UK":                     "United Kingdom",
	"North-Macedonia":        "North Macedonia",
	"Bosnia-Herzegovina":     "Bosnia and Herz.",
	"Bosnia and Herzegovina": "Bosnia and Herz.",
	"Czech Republic":         "Czechia",
	"Turkiye":                "Turkey",
	"USA":                    "United States of America",
	"United States":          "United States of America",
	"US":                     "United States of America",
	"Russian Federation":     "Russia",
	"Korea":                  "South Korea",
}

// Alias is one row of a user-supplied alias file, mapping a data spelling to
// a shapefile spelling.
type Alias struct {
	From string `csv:"from"`
	To   string `csv:"to"`
}

// LoadAliases reads extra country-name aliases from a CSV file with from,to
// columns.
func LoadAliases(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var aliases []*Alias
	if err := gocsv.Unmarshal(f, &aliases); err != nil {
		return nil, pfx.Err(err)
	}

	out := make(map[string]string, len(aliases))
	for _, a := range aliases {
		if a.From != "" && a.To != "" {
			out[a.From] = a.To
		}
	}

	return out, nil
}

// CanonicalName resolves a data country name against the user aliases first,
// then the built-in table, falling back to the name itself.
func CanonicalName(name string, extra map[string]string) string {
	if mapped, ok := extra[name]; ok {
		return mapped
	}
	if mapped, ok := countryAliases[name]; ok {
		return mapped
	}
	return name
}
