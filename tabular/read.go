package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// BufferSize for file readers. BOLD exports routinely carry hundreds of
// columns per row.
const BufferSize = 4096 * 16

// ReadRecords reads every record from a delimited file without interpreting
// any of them. Rows may be ragged; quoting is lazy to tolerate stray quotes
// inside free-text fields.
func ReadRecords(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadRecordsFrom(bufio.NewReaderSize(f, BufferSize), comma)
}

func ReadRecordsFrom(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}
