package main

// Config holds the CLI defaults that can be overridden by a JSON config
// file passed with --config; flags beat the file where both are given.
type Config struct {
	// Workers is the bulk-scramble pool size; zero means one per CPU.
	Workers int `json:"workers"`

	// ScrambleCount is the default sample size for the stats subcommand.
	ScrambleCount int `json:"scramble_count"`

	// CacheDepth is the build radius for solver pattern databases.
	CacheDepth int `json:"cache_depth"`

	// LogFile, when set, mirrors all logging into a rotating file.
	LogFile string `json:"log_file"`

	Verbose bool `json:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Workers:       0,
		ScrambleCount: 1000,
		CacheDepth:    6,
	}
}
