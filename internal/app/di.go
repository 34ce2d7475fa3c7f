package app

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() *Config {
	return LoadConfig()
}

// ProvideConverter builds the Converter from config (for Wire).
func ProvideConverter(cfg *Config) (*Converter, error) {
	return NewConverter(cfg)
}
