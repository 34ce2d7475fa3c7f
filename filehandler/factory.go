package filehandler

import "fmt"

// handlers maps data-source name to handler constructor. Fixed at process
// start; extend by adding entries here.
var handlers = map[string]func() Handler{
	"csv":     func() Handler { return CSVHandler{} },
	"parquet": func() Handler { return ParquetHandler{} },
}

// CreateHandler returns a fresh Handler for the given data source. Lookup
// is case-sensitive and uncached. Fails with ErrUnsupportedDataSource when
// no handler is registered for the name.
func CreateHandler(dataSource string) (Handler, error) {
	newHandler, ok := handlers[dataSource]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use: csv, parquet)", ErrUnsupportedDataSource, dataSource)
	}
	return newHandler(), nil
}
