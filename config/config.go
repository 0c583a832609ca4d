package config

import (
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/kbukum/prism/condition"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/validation"
)

// ServiceName is the default service name used for file lookup and the env prefix.
const ServiceName = "prism"

// Config is the complete prism configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`

	// DataDir holds the KEYS/ and TRIALS/ trees.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir" validate:"required"`
	// Databases lists the key files to merge, in merge order.
	Databases []string `yaml:"databases" mapstructure:"databases" validate:"min=1,unique,dive,required"`
	// EvalDatabase is held out of standard training pools.
	EvalDatabase string `yaml:"eval_database" mapstructure:"eval_database" validate:"required"`

	// Preprocess maps extra keys to path templates such as "/wav/{uri}.wav".
	// Keys are lower-cased by the loader.
	Preprocess map[string]string `yaml:"preprocess" mapstructure:"preprocess"`

	Debug   DebugConfig   `yaml:"debug" mapstructure:"debug"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// DebugConfig caps the partitions of the Debug protocol.
type DebugConfig struct {
	TrainLimit int `yaml:"train_limit" mapstructure:"train_limit" validate:"gte=1"`
	EvalLimit  int `yaml:"eval_limit" mapstructure:"eval_limit" validate:"gte=1"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if len(c.Databases) == 0 {
		c.Databases = slices.Clone(keystore.DefaultDatabases)
	}
	if c.EvalDatabase == "" {
		c.EvalDatabase = condition.DefaultEvalDatabase
	}
	if c.Debug.TrainLimit == 0 {
		c.Debug.TrainLimit = condition.DefaultDebugTrainLimit
	}
	if c.Debug.EvalLimit == 0 {
		c.Debug.EvalLimit = condition.DefaultDebugEvalLimit
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	v := validation.New()
	for i, db := range c.Databases {
		v.Identifier(fmt.Sprintf("databases[%d]", i), db)
	}
	err := v.Custom(slices.Contains(c.Databases, c.EvalDatabase), "eval_database",
		fmt.Sprintf("%s is not among the configured databases", c.EvalDatabase)).
		Err()
	if err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Settings returns the protocol settings derived from the configuration.
func (c *Config) Settings() condition.Settings {
	return condition.Settings{
		EvalDatabase:    c.EvalDatabase,
		DebugTrainLimit: c.Debug.TrainLimit,
		DebugEvalLimit:  c.Debug.EvalLimit,
	}
}

// DataFS returns the data directory as a file system.
func (c *Config) DataFS() fs.FS {
	return os.DirFS(c.DataDir)
}

// Load reads, defaults and validates the prism configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
