package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"tabfile/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file, using system environment")
	}

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <in> <out>\n", os.Args[0])
		os.Exit(2)
	}

	slog.Info("converting", "from", a.Config.SourceFormat, "to", a.Config.TargetFormat, "delimiter", a.Config.Delimiter)
	if err := a.Conv.Run(os.Args[1], os.Args[2]); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
