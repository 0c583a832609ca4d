package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/prism/errors"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for a service.
// Returns explicit paths if provided, otherwise searches for them.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(
			fmt.Sprintf("./%s.yml", serviceName),
			fmt.Sprintf("./%s.yaml", serviceName),
			fmt.Sprintf("./config/%s.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting(
			fmt.Sprintf("./.env.%s", serviceName),
			"./.env",
			"./config/.env",
		)
	}
	return resolved
}

func (r *Resolver) firstExisting(paths ...string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig loads configuration for a service into the provided cfg struct.
// A missing config file is not an error; a config file that exists but
// cannot be parsed is.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Configuration(files.ConfigFile, err)
		}
	}

	// .env values never override variables already set in the environment.
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return errors.Configuration(files.EnvFile, err)
		}
	}
	if err := bindEnv(v, envPrefix(serviceName), cfg); err != nil {
		return errors.Configuration("environment", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return errors.Configuration(files.ConfigFile, err).WithDetail("service", serviceName)
	}
	return nil
}

func envPrefix(serviceName string) string {
	return strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")) + "_"
}

// bindEnv binds one environment variable per leaf key of cfg, derived from
// mapstructure tags: debug.train_limit is read from PRISM_DEBUG_TRAIN_LIMIT.
// Map-valued keys are left to the config file.
func bindEnv(v *viper.Viper, prefix string, cfg interface{}) error {
	for _, key := range configKeys(reflect.TypeOf(cfg), "") {
		env := prefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// configKeys lists the dotted leaf keys of a struct type.
func configKeys(t reflect.Type, parent string) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if parent != "" {
			name = parent + "." + name
		}
		switch ft := f.Type; ft.Kind() {
		case reflect.Struct:
			keys = append(keys, configKeys(ft, name)...)
		case reflect.Map:
		default:
			keys = append(keys, name)
		}
	}
	return keys
}
