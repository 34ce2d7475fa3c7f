package app

import (
	"log/slog"

	"tabfile/filehandler"
)

// Converter loads a file with one handler and saves it with another.
// Both handlers share the same Options.
type Converter struct {
	Source filehandler.Handler
	Target filehandler.Handler
	Opts   filehandler.Options
}

// NewConverter builds a Converter from config via the handler factory.
// Fails when either configured format has no registered handler.
func NewConverter(cfg *Config) (*Converter, error) {
	src, err := filehandler.CreateHandler(cfg.SourceFormat)
	if err != nil {
		return nil, err
	}
	dst, err := filehandler.CreateHandler(cfg.TargetFormat)
	if err != nil {
		return nil, err
	}
	return &Converter{
		Source: src,
		Target: dst,
		Opts:   filehandler.Options{Delimiter: cfg.DelimiterRune()},
	}, nil
}

// Run converts in to out. All-or-nothing: a failed load writes nothing.
func (c *Converter) Run(in, out string) error {
	data, err := c.Source.Load(in, c.Opts)
	if err != nil {
		return err
	}
	slog.Info("loaded", "path", in, "format", c.Source.Extension(), "rows", len(data))
	if err := c.Target.Save(out, data, c.Opts); err != nil {
		return err
	}
	slog.Info("saved", "path", out, "format", c.Target.Extension(), "rows", len(data))
	return nil
}
