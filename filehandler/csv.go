package filehandler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CSVHandler loads and saves delimiter-separated text files.
type CSVHandler struct{}

func (CSVHandler) Extension() string { return "csv" }

// Load reads the file at path and returns its records in file order.
// Standard quoting rules apply; rows may have differing field counts.
func (CSVHandler) Load(path string, opts Options) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = opts.delimiter()
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// Save writes data to path, one record per line, fully replacing any
// existing content.
func (CSVHandler) Save(path string, data [][]string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = opts.delimiter()
	if err := w.WriteAll(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
