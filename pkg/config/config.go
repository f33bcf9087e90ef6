package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// EffectiveConfigResult is the single resolved configuration the server
// runs with, plus where its listen address came from.
type EffectiveConfigResult struct {
	Config *Config
	Addr   string
	Engine string
	Source string // "flags", "env", or "config"
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvOverrides applies POSTSDB_* environment overrides onto the provided
// cfg and reports whether any env var was used.
func LoadEnvOverrides(cfg *Config) bool {
	envUsed := false

	if v := os.Getenv("POSTSDB_ADDR"); v != "" {
		envUsed = true
		if h, p, err := net.SplitHostPort(v); err == nil {
			cfg.Server.Address = h
			if pi, err := strconv.Atoi(p); err == nil {
				cfg.Server.Port = pi
			}
		} else {
			cfg.Server.Address = v
		}
	} else {
		if host := os.Getenv("POSTSDB_ADDRESS"); host != "" {
			envUsed = true
			cfg.Server.Address = host
		}
		if port := os.Getenv("POSTSDB_PORT"); port != "" {
			envUsed = true
			if pi, err := strconv.Atoi(port); err == nil {
				cfg.Server.Port = pi
			}
		}
	}

	if v := os.Getenv("POSTSDB_ENGINE"); v != "" {
		envUsed = true
		cfg.Server.Engine = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("POSTSDB_MAX_REQUEST_BYTES"); v != "" {
		if b, err := humanize.ParseBytes(strings.TrimSpace(v)); err == nil {
			envUsed = true
			cfg.Server.MaxRequestBytes = SizeBytes(b)
		}
	}
	if v := os.Getenv("POSTSDB_LOG_LEVEL"); v != "" {
		envUsed = true
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("POSTSDB_RATE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			envUsed = true
			cfg.Security.RateLimit.RPS = f
		}
	}
	if v := os.Getenv("POSTSDB_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			envUsed = true
			cfg.Security.RateLimit.Burst = n
		}
	}
	if v := os.Getenv("POSTSDB_REPORT_ENABLED"); v != "" {
		envUsed = true
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			cfg.Reporting.Enabled = true
		default:
			cfg.Reporting.Enabled = false
		}
	}
	if v := os.Getenv("POSTSDB_REPORT_CRON"); v != "" {
		envUsed = true
		cfg.Reporting.Cron = strings.TrimSpace(v)
	}
	if c := os.Getenv("POSTSDB_TLS_CERT"); c != "" {
		envUsed = true
		cfg.Server.TLS.CertFile = c
	}
	if k := os.Getenv("POSTSDB_TLS_KEY"); k != "" {
		envUsed = true
		cfg.Server.TLS.KeyFile = k
	}

	return envUsed
}

// LoadEffective loads the config file (when present), applies env overrides
// and lets explicitly set flags win. It returns the effective result the
// server runs with.
func LoadEffective(flags Flags) (EffectiveConfigResult, error) {
	cfgPath := ResolveConfigPath(flags.Config, flags.Set["config"])
	cfg, err := Load(cfgPath)
	fromFile := err == nil
	if err != nil {
		if flags.Set["config"] {
			// an explicitly requested config file must load
			return EffectiveConfigResult{}, err
		}
		cfg = &Config{}
	}
	envUsed := LoadEnvOverrides(cfg)

	eff := EffectiveConfigResult{Config: cfg, Addr: cfg.Addr(), Engine: cfg.Server.Engine}
	switch {
	case flags.Set["addr"] || flags.Set["engine"]:
		eff.Source = "flags"
	case envUsed:
		eff.Source = "env"
	case fromFile:
		eff.Source = "config"
	default:
		eff.Source = "flags"
	}
	if flags.Set["addr"] {
		eff.Addr = flags.Addr
	}
	if flags.Set["engine"] {
		eff.Engine = strings.ToLower(strings.TrimSpace(flags.Engine))
	}
	if eff.Engine == "" {
		eff.Engine = "nethttp"
	}
	return eff, nil
}
