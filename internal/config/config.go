// Package config loads invpart settings from defaults, an optional YAML file
// and INVPART_* environment variables, in that order of precedence (lowest
// first). Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusvoltaire/invpart/codec"
	"github.com/zeusvoltaire/invpart/log"
	"github.com/zeusvoltaire/invpart/partition"
)

// Strategy names accepted in Codec.Strategy.
const (
	StrategyBacktracking = "backtracking"
	StrategyMITM         = "mitm"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// PartitionConfig controls partition counting.
type PartitionConfig struct {
	// Method is "coin-change" (default) or "pentagonal".
	Method string `yaml:"method"`

	// Workers enables the parallel fill when > 1.
	Workers int `yaml:"workers"`

	// MaxN rejects larger inputs; 0 disables the limit.
	MaxN int `yaml:"maxN"`
}

// CodecConfig controls the encode and decode commands.
type CodecConfig struct {
	// LookupTable is a CSV path; empty selects the built-in ASCII table.
	LookupTable string `yaml:"lookupTable"`

	// Constant is C as a base-10 numeral.
	Constant string `yaml:"constant"`

	// MinLength and MaxLength bound password lengths.
	MinLength int `yaml:"minLength"`
	MaxLength int `yaml:"maxLength"`

	// Strategy is "backtracking" (default) or "mitm".
	Strategy string `yaml:"strategy"`

	// MaxSolutions stops decoding after this many candidates; 0 = all.
	MaxSolutions int `yaml:"maxSolutions"`

	// Prune enables bound pruning in the backtracking strategy.
	Prune bool `yaml:"prune"`

	// MaxEntries caps the meet-in-the-middle index.
	MaxEntries int `yaml:"maxEntries"`

	// Timeout aborts decoding; 0 = no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// Config is the full invpart configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string `yaml:"logLevel"`

	// MetricsFile, when set, receives Prometheus metrics in text format on exit.
	MetricsFile string `yaml:"metricsFile"`

	Partition PartitionConfig `yaml:"partition"`
	Codec     CodecConfig     `yaml:"codec"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: log.LevelInfo,
		Partition: PartitionConfig{
			Method:  partition.CoinChange.String(),
			Workers: 1,
			MaxN:    100000,
		},
		Codec: CodecConfig{
			Constant:     codec.DefaultConstant,
			MinLength:    codec.DefaultMinLength,
			MaxLength:    codec.DefaultMaxLength,
			Strategy:     StrategyBacktracking,
			MaxSolutions: 10,
			Prune:        true,
			MaxEntries:   codec.DefaultMaxEntries,
			Timeout:      30 * time.Second,
		},
	}
}

// Load reads path over DefaultConfig and applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.SetDefaults()

	return cfg, nil
}

// SetDefaults fills fields left empty by the file or environment.
func (cfg *Config) SetDefaults() {
	def := DefaultConfig()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Partition.Method == "" {
		cfg.Partition.Method = def.Partition.Method
	}
	if cfg.Partition.Workers == 0 {
		cfg.Partition.Workers = def.Partition.Workers
	}
	if cfg.Codec.Constant == "" {
		cfg.Codec.Constant = def.Codec.Constant
	}
	if cfg.Codec.MinLength == 0 {
		cfg.Codec.MinLength = def.Codec.MinLength
	}
	if cfg.Codec.MaxLength == 0 {
		cfg.Codec.MaxLength = def.Codec.MaxLength
	}
	if cfg.Codec.Strategy == "" {
		cfg.Codec.Strategy = def.Codec.Strategy
	}
	if cfg.Codec.MaxEntries == 0 {
		cfg.Codec.MaxEntries = def.Codec.MaxEntries
	}
}

// ApplyEnv overrides cfg from INVPART_* variables resolved through lookup.
//
//	INVPART_LOG_LEVEL, INVPART_METRICS_FILE,
//	INVPART_METHOD, INVPART_WORKERS, INVPART_MAX_N,
//	INVPART_LOOKUP_TABLE, INVPART_STRATEGY, INVPART_MAX_SOLUTIONS, INVPART_TIMEOUT
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
		}
		*dst = n
		return nil
	}

	str("INVPART_LOG_LEVEL", &cfg.LogLevel)
	str("INVPART_METRICS_FILE", &cfg.MetricsFile)
	str("INVPART_METHOD", &cfg.Partition.Method)
	str("INVPART_LOOKUP_TABLE", &cfg.Codec.LookupTable)
	str("INVPART_STRATEGY", &cfg.Codec.Strategy)
	if err := num("INVPART_WORKERS", &cfg.Partition.Workers); err != nil {
		return err
	}
	if err := num("INVPART_MAX_N", &cfg.Partition.MaxN); err != nil {
		return err
	}
	if err := num("INVPART_MAX_SOLUTIONS", &cfg.Codec.MaxSolutions); err != nil {
		return err
	}
	if v, ok := lookup("INVPART_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: INVPART_TIMEOUT=%q: %v", ErrInvalid, v, err)
		}
		cfg.Codec.Timeout = d
	}

	return nil
}

// Validate checks every field; the first violation is returned wrapped in ErrInvalid.
func (cfg *Config) Validate() error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := partition.ParseMethod(cfg.Partition.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.Partition.Workers < 0 {
		return fmt.Errorf("%w: partition.workers must be >= 0, got %d", ErrInvalid, cfg.Partition.Workers)
	}
	if cfg.Partition.MaxN < 0 {
		return fmt.Errorf("%w: partition.maxN must be >= 0, got %d", ErrInvalid, cfg.Partition.MaxN)
	}
	if _, err := cfg.Codec.ConstantValue(); err != nil {
		return err
	}
	if cfg.Codec.MinLength < 1 || cfg.Codec.MaxLength < cfg.Codec.MinLength {
		return fmt.Errorf("%w: codec length bounds [%d, %d] need 1 <= min <= max",
			ErrInvalid, cfg.Codec.MinLength, cfg.Codec.MaxLength)
	}
	switch cfg.Codec.Strategy {
	case StrategyBacktracking, StrategyMITM:
	default:
		return fmt.Errorf("%w: unknown codec.strategy %q", ErrInvalid, cfg.Codec.Strategy)
	}
	if cfg.Codec.MaxSolutions < 0 || cfg.Codec.MaxEntries < 0 || cfg.Codec.Timeout < 0 {
		return fmt.Errorf("%w: codec limits must be non-negative", ErrInvalid)
	}

	return nil
}

// PartitionOptions converts the partition section into partition.Options.
// Call Validate first; an unknown method falls back to CoinChange.
func (cfg *Config) PartitionOptions() partition.Options {
	m, _ := partition.ParseMethod(cfg.Partition.Method)
	return partition.Options{
		Method:  m,
		Workers: cfg.Partition.Workers,
		MaxN:    cfg.Partition.MaxN,
	}
}

// ConstantValue parses Constant as a non-negative base-10 integer.
func (c CodecConfig) ConstantValue() (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(c.Constant), 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: codec.constant %q is not a non-negative integer", ErrInvalid, c.Constant)
	}

	return v, nil
}
