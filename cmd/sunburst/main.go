// sunburst renders a hierarchical sunburst chart from up to five category
// columns of a CSV export.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bge-barcoding/boldtools"
	_ "github.com/bge-barcoding/boldtools/compileinfoprint"
	"github.com/bge-barcoding/boldtools/sunburst"
	"github.com/bge-barcoding/boldtools/tabular"
)

func main() {
	var input, sampleID, output, title, otherLabel, colorMode string
	var level1, level2, level3, level4, level5 string
	var countUnique, noAutoFormats bool
	var threshold, labelThreshold, lineWidth, width, height float64
	var inheritLevel int

	flag.StringVar(&input, "input", "", "Path to the input CSV file.")
	flag.StringVar(&sampleID, "sampleid", "Sample-ID", "Column holding sample identifiers.")
	flag.StringVar(&level1, "level1", "Partner_sub", "Column for ring 1.")
	flag.StringVar(&level2, "level2", "partner", "Column for ring 2.")
	flag.StringVar(&level3, "level3", "Project-Code", "Column for ring 3.")
	flag.StringVar(&level4, "level4", "", "Column for ring 4 (optional).")
	flag.StringVar(&level5, "level5", "", "Column for ring 5 (optional).")
	flag.BoolVar(&countUnique, "unique", false, "Count distinct sample IDs instead of rows.")
	flag.Float64Var(&threshold, "threshold", 0, "Percentage below which slices are grouped into the other-label bucket (0 disables).")
	flag.StringVar(&otherLabel, "otherlabel", "Other", "Label for the aggregated small-slice bucket.")
	flag.Float64Var(&labelThreshold, "labelthreshold", 5, "Minimum wedge angle in degrees that still gets a label.")
	flag.IntVar(&inheritLevel, "inherit", 1, "Ring from which deeper rings inherit their parent's color (1-based).")
	flag.StringVar(&colorMode, "colormode", "variations", "Color inheritance mode: variations or same.")
	flag.Float64Var(&lineWidth, "linewidth", 0.5, "Width of the white borders between wedges, in points.")
	flag.StringVar(&output, "output", "sunburst_chart.png", "Output file; the extension selects PNG, SVG, or PDF.")
	flag.StringVar(&title, "title", "Data Sunburst Analysis", "Chart title.")
	flag.Float64Var(&width, "width", 18, "Figure width in inches.")
	flag.Float64Var(&height, "height", 18, "Figure height in inches.")
	flag.BoolVar(&noAutoFormats, "noautoformats", false, "Skip the automatic SVG and PDF sibling outputs.")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}
	input = boldtools.ExpandHome(input)
	output = boldtools.ExpandHome(output)
	if threshold < 0 || threshold > 100 {
		log.Fatalf("-threshold must be between 0 and 100 (got %v)\n", threshold)
	}
	if colorMode != "variations" && colorMode != "same" {
		log.Fatalf("-colormode must be variations or same (got %q)\n", colorMode)
	}

	levels := sunburst.ActiveLevels([]string{level1, level2, level3, level4, level5})
	if len(levels) == 0 {
		log.Fatalln("No level columns set; need at least -level1")
	}
	if inheritLevel < 1 || inheritLevel > len(levels) {
		log.Fatalf("-inherit must be between 1 and %d (the number of active levels)\n", len(levels))
	}

	table, err := loadCSV(input)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Loaded %d rows from %s\n", table.NumRows(), input)

	root, kept, err := sunburst.Build(table, sampleID, levels, countUnique)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("After removing rows with missing data: %d rows\n", kept)
	log.Printf("Active hierarchy levels: %d - %v\n", len(levels), levels)

	res := sunburst.Layout(root, sunburst.Config{
		Levels:       len(levels),
		InheritLevel: inheritLevel,
		SameColor:    colorMode == "same",
		ThresholdPct: threshold,
		OtherLabel:   otherLabel,
	})

	total := root.Total()

	c, err := sunburst.Render(res, total, sunburst.RenderConfig{
		Title:             title,
		WidthIn:           width,
		HeightIn:          height,
		LineWidth:         lineWidth,
		LabelThresholdDeg: labelThreshold,
		CountUnique:       countUnique,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if err := boldtools.WriteCanvas(c, output); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Sunburst chart saved as %s\n", output)

	if !noAutoFormats {
		base := strings.TrimSuffix(output, ext(output))
		for _, sibling := range []string{".svg", ".pdf"} {
			if strings.EqualFold(ext(output), sibling) {
				continue
			}
			if err := boldtools.WriteCanvas(c, base+sibling); err != nil {
				log.Fatalln(err)
			}
			log.Printf("Also saved %s version: %s\n", strings.ToUpper(sibling[1:]), base+sibling)
		}
	}

	printSummary(res, levels, total, countUnique, threshold, otherLabel)
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

func ext(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}

func printSummary(res *sunburst.Result, levels []string, total int, countUnique bool, threshold float64, otherLabel string) {
	countType := "samples"
	if countUnique {
		countType = "unique values"
	}

	fmt.Printf("\nSummary Statistics:\n")
	fmt.Printf("Total %s: %s\n", countType, boldtools.FormatThousands(total))
	fmt.Printf("Number of levels: %d\n", len(levels))

	if threshold > 0 && len(res.Aggregated) > 0 {
		fmt.Printf("\nSmall slice aggregation (threshold: %g%%):\n", threshold)
		for ring := 1; ring <= len(levels); ring++ {
			items := res.Aggregated[ring]
			if len(items) == 0 {
				continue
			}
			fmt.Printf("  Level %d: %d items aggregated into %q\n", ring, len(items), otherLabel)
			for i, item := range items {
				if i == 5 {
					fmt.Printf("    ... and %d more\n", len(items)-5)
					break
				}
				fmt.Printf("    - %s\n", item)
			}
		}
	}

	for i, name := range levels {
		n := 0
		for _, seg := range res.Segments {
			if seg.Level == i+1 {
				n++
			}
		}
		fmt.Printf("Level %d (%s): %d categories\n", i+1, name, n)
	}

	for _, seg := range res.Segments {
		if seg.Level != 1 {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = float64(seg.Value) / float64(total) * 100
		}
		fmt.Printf("  %s: %s %s (%.1f%%)\n", seg.Key, boldtools.FormatThousands(seg.Value), countType, pct)
	}
}
