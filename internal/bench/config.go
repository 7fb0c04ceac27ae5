package bench

import (
	"io/fs"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"

	"github.com/llxisdsh/kit"
	"github.com/llxisdsh/kit/internal/logutil"
)

// EnvPrefix prefixes every environment override, e.g. COLLBENCH_WORKERS.
const EnvPrefix = "collbench"

// Config drives a benchmark run.
type Config struct {
	// Workers is the number of maps filled concurrently, one per worker.
	Workers int `toml:"workers" envconfig:"WORKERS"`
	// Keys is the number of keys inserted into every map.
	Keys int `toml:"keys" envconfig:"KEYS"`
	// DeleteRatio is the share of keys deleted again after insertion.
	DeleteRatio float64 `toml:"delete-ratio" envconfig:"DELETE_RATIO"`
	// InitialCapacity is the slot count every map starts with.
	InitialCapacity int `toml:"initial-capacity" envconfig:"INITIAL_CAPACITY"`
	// LoadFactor is the growth threshold of every map.
	LoadFactor float64 `toml:"load-factor" envconfig:"LOAD_FACTOR"`
	// FoldCase makes keys case-insensitive.
	FoldCase bool `toml:"fold-case" envconfig:"FOLD_CASE"`

	Log logutil.LogConfig `toml:"log" envconfig:"LOG"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Workers:         4,
		Keys:            100000,
		DeleteRatio:     0.5,
		InitialCapacity: 2,
		LoadFactor:      kit.DefaultLoadFactor,
		Log:             logutil.DefaultLogConfig(),
	}
}

// LoadConfig starts from DefaultConfig, applies the TOML file when file is
// not empty, then a .env file in the working directory if one exists, then
// COLLBENCH_* environment variables. The result is validated.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if file != "" {
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			return nil, errors.Wrapf(err, "decode %s", file)
		}
	}
	// Load a .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Workers <= 0 {
		err = multierr.Append(err, errors.Newf("workers must be positive, got %d", c.Workers))
	}
	if c.Keys < 0 {
		err = multierr.Append(err, errors.Newf("keys must not be negative, got %d", c.Keys))
	}
	if math.IsNaN(c.DeleteRatio) || c.DeleteRatio < 0 || c.DeleteRatio > 1 {
		err = multierr.Append(err, errors.Newf("delete-ratio must be within [0, 1], got %v", c.DeleteRatio))
	}
	if math.IsNaN(c.LoadFactor) || c.LoadFactor <= 0 {
		err = multierr.Append(err, errors.Newf("load-factor must be positive, got %v", c.LoadFactor))
	}
	if logErr := c.Log.Validate(); logErr != nil {
		err = multierr.Append(err, logErr)
	}
	return err
}

// Encode renders c as TOML.
func (c *Config) Encode() (string, error) {
	b := kit.NewStrBuilder()
	if err := toml.NewEncoder(b).Encode(c); err != nil {
		return "", errors.Wrap(err, "encode config")
	}
	return b.Build().String(), nil
}
