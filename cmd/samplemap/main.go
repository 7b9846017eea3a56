// samplemap draws a choropleth map of sample counts by country from a CSV
// export and a country-boundary shapefile. When the map cannot be produced,
// bar charts are written instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bge-barcoding/boldtools"
	"github.com/bge-barcoding/boldtools/choropleth"
	_ "github.com/bge-barcoding/boldtools/compileinfoprint"
	"github.com/bge-barcoding/boldtools/tabular"
)

func main() {
	var input, outDir, mapData, shapefileName, countryCol, countCol, title, colour, boundsSpec, aliasesPath string
	var unique bool
	var border, width float64

	flag.StringVar(&input, "input", "", "Path to the input CSV file.")
	flag.StringVar(&outDir, "out", "", "Directory to save output files.")
	flag.StringVar(&mapData, "mapdata", "", "Directory containing map data (shapefiles).")
	flag.StringVar(&shapefileName, "shapefile", "", "Specific shapefile name; when empty, .shp files are searched for.")
	flag.StringVar(&countryCol, "countrycol", "Country", "Column containing country names.")
	flag.StringVar(&countCol, "countcol", "", "Column to count values from; counts rows per country when empty.")
	flag.BoolVar(&unique, "unique", false, "Count unique values in -countcol instead of all values.")
	flag.Float64Var(&border, "border", 5, "Degrees to extend map borders beyond the matched countries.")
	flag.StringVar(&title, "title", "Sample Distribution by Country", "Map title.")
	flag.StringVar(&colour, "colour", "blue", fmt.Sprintf("Color scheme, one of %v.", choropleth.ColourNames()))
	flag.StringVar(&boundsSpec, "bounds", "", "Explicit map bounds as minLon,minLat,maxLon,maxLat.")
	flag.StringVar(&aliasesPath, "aliases", "", "Optional CSV (from,to columns) of extra country-name aliases.")
	flag.Float64Var(&width, "width", 18, "Map width in inches.")
	flag.Parse()

	if input == "" || outDir == "" || mapData == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	input = boldtools.ExpandHome(input)
	mapData = boldtools.ExpandHome(mapData)

	table, err := loadCSV(input)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Total rows in dataset: %d\n", table.NumRows())

	counts, err := choropleth.CountByCountry(table, countryCol, countCol, unique)
	if err != nil {
		log.Fatalln(err)
	}
	if len(counts) == 0 {
		log.Fatalf("No rows with a non-empty %q value\n", countryCol)
	}
	printCounts(counts, countCol, unique)

	aliases := map[string]string{}
	if aliasesPath != "" {
		aliases, err = choropleth.LoadAliases(aliasesPath)
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("Loaded %d extra country aliases from %s\n", len(aliases), aliasesPath)
	}

	if err := drawMap(counts, aliases, mapData, shapefileName, outDir, title, colour, boundsSpec, border, width); err != nil {
		log.Printf("Map creation failed (%v). Creating fallback charts...\n", err)
		if err := choropleth.FallbackCharts(counts, outDir, title, colour); err != nil {
			log.Fatalln(err)
		}
		log.Printf("Charts saved in: %s\n", outDir)
		return
	}

	log.Println("Mapping complete!")
	log.Printf("Files saved in: %s\n", outDir)
}

func drawMap(counts []choropleth.CountryCount, aliases map[string]string, mapData, shapefileName, outDir, title, colour, boundsSpec string, border, width float64) error {
	shapePath, err := choropleth.FindShapefile(mapData, shapefileName)
	if err != nil {
		return err
	}
	log.Printf("Using shapefile: %s\n", shapePath)

	features, err := choropleth.LoadFeatures(shapePath)
	if err != nil {
		return err
	}
	log.Printf("Loaded world data with %d features\n", len(features))

	match := choropleth.Match(features, counts, aliases)
	log.Printf("Matched %d countries out of %d in dataset\n", match.Matched, len(counts))
	for data, mapName := range match.Fuzzy {
		log.Printf("Fuzzy matched: %s -> %s\n", data, mapName)
	}
	for i, cc := range match.Unmatched {
		if i == 10 {
			log.Printf("... and %d more unmatched countries\n", len(match.Unmatched)-10)
			break
		}
		log.Printf("Unmatched country: %s (%d)\n", cc.Country, cc.Count)
	}

	var bounds choropleth.Bounds
	if boundsSpec != "" {
		parsed, err := choropleth.ParseBounds(boundsSpec)
		if err != nil {
			return err
		}
		bounds = parsed.Clamp()
		log.Printf("Using custom map bounds: %+v\n", bounds)
	} else {
		if match.Matched == 0 {
			log.Println("Warning: No countries matched in map data. Using world bounds.")
		}
		bounds = choropleth.BoundsFromFeatures(features, border)
		log.Printf("Map bounds: %+v\n", bounds)
	}

	c, err := choropleth.RenderMap(features, bounds, choropleth.MaxCount(counts), choropleth.MapConfig{
		Title:   title,
		Colour:  colour,
		WidthIn: width,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, name := range []string{"sample_map.png", "sample_map.svg"} {
		path := filepath.Join(outDir, name)
		if err := boldtools.WriteCanvas(c, path); err != nil {
			return err
		}
		log.Printf("Map saved: %s\n", path)
	}

	return nil
}

func loadCSV(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	delim := boldtools.DetermineDelimiter(f, boldtools.DelimiterForFile(path))
	f.Seek(0, 0)

	records, err := tabular.ReadRecordsFrom(bufio.NewReaderSize(f, tabular.BufferSize), delim)
	if err != nil {
		return nil, err
	}

	return tabular.FromRecords(records)
}

func printCounts(counts []choropleth.CountryCount, countCol string, unique bool) {
	countType := "rows"
	if countCol != "" {
		countType = "values in " + countCol
		if unique {
			countType = "unique values in " + countCol
		}
	}
	log.Printf("Counting %s per country\n", countType)

	for i, cc := range counts {
		if i == 10 {
			log.Printf("... and %d more countries\n", len(counts)-10)
			break
		}
		log.Printf("  %s: %d\n", cc.Country, cc.Count)
	}
}
