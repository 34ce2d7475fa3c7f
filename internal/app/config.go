package app

import "os"

// Config holds converter configuration from env
type Config struct {
	SourceFormat string // handler key for reading the input file
	TargetFormat string // handler key for writing the output file
	Delimiter    string // field separator for delimited text formats
	LogLevel     string // debug | info | warn | error
}

// LoadConfig reads config from environment
func LoadConfig() *Config {
	return &Config{
		SourceFormat: getEnv("TABFILE_FROM", "csv"),
		TargetFormat: getEnv("TABFILE_TO", "parquet"),
		Delimiter:    getEnv("TABFILE_DELIMITER", ","),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// DelimiterRune returns the first rune of Delimiter, ',' when unset.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
