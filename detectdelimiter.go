package boldtools

import (
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. When detection is
// inconclusive, fallback is returned.
func DetermineDelimiter(r io.Reader, fallback rune) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return fallback
}

// DelimiterForFile guesses a delimiter from the file extension alone. BOLD
// exports are tab-delimited .tsv files; everything else is treated as comma
// delimited.
func DelimiterForFile(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}

	return ','
}
