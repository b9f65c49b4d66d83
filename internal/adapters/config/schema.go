package config

// Configfile represents the structure of the melt.yaml configuration file.
type Configfile struct {
	Version      string       `yaml:"version"`
	Tool         string       `yaml:"tool"`
	Compiler     string       `yaml:"compiler"`
	Analyzer     string       `yaml:"analyzer"`
	Preprocessor string       `yaml:"preprocessor"`
	PPX          string       `yaml:"ppx"`
	Extensions   []string     `yaml:"extensions"`
	Flags        []string     `yaml:"flags"`
	Packages     []string     `yaml:"packages"`
	Libraries    []LibraryDTO `yaml:"libraries"`
}

// LibraryDTO represents a derived library path in the configuration.
type LibraryDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
