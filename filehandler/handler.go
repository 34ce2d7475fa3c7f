package filehandler

// DefaultDelimiter is the field separator used by delimited text formats
// when Options.Delimiter is unset.
const DefaultDelimiter = ','

// Options carries per-call format options, passed by value.
// The zero value selects each format's defaults.
type Options struct {
	// Delimiter is the field separator for delimited text formats.
	// Zero means DefaultDelimiter. Non-delimited formats ignore it.
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// Handler is the abstraction for loading and saving tabular data files.
// Rows are ordered slices of string fields; a header line, if present, is
// an ordinary row. Implementations hold no state: each call is a single
// synchronous open/process/close sequence, so a handler value may be
// reused or discarded freely.
type Handler interface {
	Load(path string, opts Options) ([][]string, error)
	Save(path string, data [][]string, opts Options) error
	Extension() string
}
