package config

// Config is the effective configuration
type Config struct {
	Target  Target  `koanf:"target" toml:"target"`
	Graph   Graph   `koanf:"graph" toml:"graph"`
	Listing Listing `koanf:"listing" toml:"listing"`
	Output  Output  `koanf:"output" toml:"output"`
	Cache   Cache   `koanf:"cache" toml:"cache"`
}

// Target is the default resolution context
type Target struct {
	Framework string `koanf:"framework" toml:"framework"`
	Runtime   string `koanf:"runtime" toml:"runtime"`
	Locale    string `koanf:"locale" toml:"locale"`
}

// Graph selects the runtime compatibility graph
type Graph struct {
	Path    string `koanf:"path" toml:"path"`
	Builtin bool   `koanf:"builtin" toml:"builtin"`
}

// Listing holds listing filters
type Listing struct {
	Exclude []string `koanf:"exclude" toml:"exclude"`
}

// Output holds rendering options
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Cache holds parse cache options
type Cache struct {
	Shared bool `koanf:"shared" toml:"shared"`
}
