package filehandler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/parquet-go/parquet-go"
)

// parquetRow is the on-disk record shape: one list-typed string column per
// row, preserving the [][]string model without a per-file schema.
type parquetRow struct {
	Fields []string `parquet:"fields,list"`
}

// ParquetHandler loads and saves tabular data as parquet files.
// Options.Delimiter is ignored (parquet is not a delimited format).
type ParquetHandler struct{}

func (ParquetHandler) Extension() string { return "parquet" }

// Load reads all rows from the parquet file at path, in file order.
func (ParquetHandler) Load(path string, _ Options) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	rows, err := parquet.Read[parquetRow](f, stat.Size())
	if err != nil {
		return nil, err
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = r.Fields
	}
	return data, nil
}

// Save writes data to path, fully replacing any existing content.
func (ParquetHandler) Save(path string, data [][]string, _ Options) error {
	rows := make([]parquetRow, len(data))
	for i, fields := range data {
		rows[i] = parquetRow{Fields: fields}
	}
	return parquet.WriteFile(path, rows)
}
