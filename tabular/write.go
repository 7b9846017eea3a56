package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// WriteTSV writes the table as tab-delimited text. When extraTopRow is
// non-nil it is emitted above the header, which is how BOLD represents its
// machine-readable column identifiers.
func (t *Table) WriteTSV(w io.Writer, extraTopRow []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if extraTopRow != nil {
		if err := cw.Write(extraTopRow); err != nil {
			return pfx.Err(err)
		}
	}
	if err := cw.Write(t.cols); err != nil {
		return pfx.Err(err)
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()
	return pfx.Err(cw.Error())
}

// WriteTSVFile writes the table to path, creating parent directories as
// needed.
func (t *Table) WriteTSVFile(path string, extraTopRow []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pfx.Err(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, BufferSize)
	if err := t.WriteTSV(w, extraTopRow); err != nil {
		return err
	}

	return pfx.Err(w.Flush())
}
