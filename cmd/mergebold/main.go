// mergebold combines merged BOLD output files from different datasets (e.g.
// plants and animals) whose field sets only partly overlap. Columns are
// unified by name; machine-readable UUID headers are detected per file and
// reconciled into one row on output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bge-barcoding/boldtools"
	_ "github.com/bge-barcoding/boldtools/compileinfoprint"
)

func main() {
	var output, logName string

	flag.StringVar(&output, "output", "", "Output file name (default: bold_final_merged.tsv in the input folder).")
	flag.StringVar(&logName, "log", "", "Log file name (default: timestamped bold_merge_log in the input folder).")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] folder\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	folder := boldtools.ExpandHome(flag.Arg(0))

	info, err := os.Stat(folder)
	if err != nil {
		log.Fatalf("Folder does not exist: %s\n", folder)
	}
	if !info.IsDir() {
		log.Fatalf("Path is not a directory: %s\n", folder)
	}

	if output == "" {
		output = filepath.Join(folder, "bold_final_merged.tsv")
	} else if !filepath.IsAbs(output) {
		output = filepath.Join(folder, output)
	}

	if logName == "" {
		logName = filepath.Join(folder, fmt.Sprintf("bold_merge_log_%s.log", time.Now().Format("20060102_150405")))
	} else if !filepath.IsAbs(logName) {
		logName = filepath.Join(folder, logName)
	}

	logFile, err := os.Create(logName)
	if err != nil {
		log.Fatalln(err)
	}
	defer logFile.Close()
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))

	log.Printf("Starting BOLD output merge process for folder: %s\n", folder)
	log.Printf("Output file: %s\n", output)

	if err := mergeOutputs(folder, output); err != nil {
		log.Fatalf("Merge failed: %v (see log at %s)\n", err, logName)
	}

	log.Println("BOLD merge completed successfully!")
	log.Printf("Log file: %s\n", logName)
}
