// extracttaxonomy pulls taxonomy records for a set of plate IDs out of BOLD
// project directories. Each directory must hold merged_custom_fields.tsv,
// taxonomy.tsv, and lab.tsv; matches are joined on sample identifier with a
// plate/well fallback and written as one TSV with the process ID in front.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bge-barcoding/boldtools"
	"github.com/bge-barcoding/boldtools/bold"
	_ "github.com/bge-barcoding/boldtools/compileinfoprint"
	"github.com/bge-barcoding/boldtools/tabular"
)

const (
	customFieldsFile = "merged_custom_fields.tsv"
	taxonomyFile     = "taxonomy.tsv"
	labFile          = "lab.tsv"
)

func main() {
	var baseDir, output string

	flag.StringVar(&baseDir, "dir", ".", "Base directory whose subdirectories are searched for TSV triplets.")
	flag.StringVar(&output, "output", "extracted_taxonomy.tsv", "Output TSV file.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] plateID [plateID ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	plateIDs := flag.Args()
	if len(plateIDs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	baseDir = boldtools.ExpandHome(baseDir)

	plates := make(map[string]bool, len(plateIDs))
	for _, id := range plateIDs {
		plates[id] = true
	}

	log.Printf("Searching for plate IDs: %v\n", plateIDs)
	log.Printf("Base directory: %s\n", baseDir)

	triplets, err := findTriplets(baseDir)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Found %d directories with all three required TSV files\n", len(triplets))
	if len(triplets) == 0 {
		log.Fatalf("No directories found with %s, %s, and %s files\n", customFieldsFile, taxonomyFile, labFile)
	}

	ext := bold.NewExtraction()

	for _, dir := range triplets {
		log.Printf("Processing: %s\n", dir)

		merged, taxonomy, lab, err := loadTriplet(dir)
		if err != nil {
			log.Println(err)
			continue
		}

		n, err := ext.Match(merged, taxonomy, lab, plates)
		if err != nil {
			log.Println(err)
			continue
		}
		if n > 0 {
			log.Printf("  Found %d matching records\n", n)
		}
	}

	out := ext.Table()
	if out.NumRows() == 0 {
		log.Fatalf("No matching records found for plate IDs: %v\n", plateIDs)
	}

	if err := out.WriteTSVFile(output, nil); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Extracted %d total records to %s\n", out.NumRows(), output)
	log.Printf("Columns in output: %v\n", out.Cols())
	log.Printf("Unique plate IDs found: %v\n", ext.PlateIDs())
}

// findTriplets returns the subdirectories of baseDir that hold all three
// required files.
func findTriplets(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(baseDir, entry.Name())
		complete := true
		for _, name := range []string{customFieldsFile, taxonomyFile, labFile} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				complete = false
				break
			}
		}
		if complete {
			out = append(out, dir)
		}
	}

	return out, nil
}

func loadTriplet(dir string) (merged, taxonomy, lab *tabular.Table, err error) {
	// The custom-fields file carries a machine-readable first row; its real
	// headers sit in row 2.
	records, err := tabular.ReadRecords(filepath.Join(dir, customFieldsFile), '\t')
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading %s: %w", dir, err)
	}
	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("%s: %s has no data rows", dir, customFieldsFile)
	}
	merged, err = tabular.FromRecords(records[1:])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading %s: %w", dir, err)
	}

	for name, dst := range map[string]**tabular.Table{taxonomyFile: &taxonomy, labFile: &lab} {
		records, err := tabular.ReadRecords(filepath.Join(dir, name), '\t')
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading %s: %w", dir, err)
		}
		t, err := tabular.FromRecords(records)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error loading %s: %w", dir, err)
		}
		*dst = t
	}

	return merged, taxonomy, lab, nil
}
