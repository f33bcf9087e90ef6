package config

import (
	"flag"
	"os"
)

// Flags holds parsed command-line flag values and which were set.
type Flags struct {
	Addr   string
	Engine string
	Config string
	Set    map[string]bool
}

// ParseConfigFlags parses command-line flags and returns them as a Flags struct.
func ParseConfigFlags() Flags {
	addrPtr := flag.String("addr", ":9999", "HTTP listen address")
	enginePtr := flag.String("engine", "", "transport engine: nethttp or fasthttp")
	cfgPtr := flag.String("config", "./config.yaml", "Path to config file")
	flag.Parse()
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	return Flags{Addr: *addrPtr, Engine: *enginePtr, Config: *cfgPtr, Set: setFlags}
}

// ResolveConfigPath decides the config file path using the flag-provided value
// and the environment variable `POSTSDB_CONFIG` when the flag was not set.
func ResolveConfigPath(flagPath string, flagSet bool) string {
	if flagSet {
		return flagPath
	}
	if p := os.Getenv("POSTSDB_CONFIG"); p != "" {
		return p
	}
	return flagPath
}
