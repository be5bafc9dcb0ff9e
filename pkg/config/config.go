// Package config resolves the merge configuration from flags, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file and the environment.
const (
	KeyDeclarations   = "declarations"
	KeyImplementation = "implementation"
	KeyOutput         = "output"
	KeyTailLines      = "tail-lines"
	KeyMarker         = "marker"
	KeyDryRun         = "dry-run"

	EnvPrefix = "UNIHDR"
)

// Defaults for the optional settings.
const (
	DefaultTailLineCount = 2
	DefaultMarkerPrefix  = "#define"
)

// Config holds the options for a single merge.
type Config struct {
	DeclarationsPath   string `mapstructure:"declarations" yaml:"declarations"`     // Header with the inclusion guard.
	ImplementationPath string `mapstructure:"implementation" yaml:"implementation"` // Companion source file.
	OutputPath         string `mapstructure:"output" yaml:"output"`                 // Destination of the single header.
	TailLineCount      int    `mapstructure:"tail-lines" yaml:"tail-lines"`         // Trailing header lines closing the guard.
	MarkerPrefix       string `mapstructure:"marker" yaml:"marker"`                 // First implementation line to keep starts with this.
	DryRun             bool   `mapstructure:"dry-run" yaml:"dry-run"`               // Merge without writing the output.
}

// Default returns a Config with every optional field set.
func Default() Config {
	return Config{
		TailLineCount: DefaultTailLineCount,
		MarkerPrefix:  DefaultMarkerPrefix,
	}
}

// New returns a viper instance with the defaults and environment binding
// applied. When configFile is non-empty it is read as YAML.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyTailLines, DefaultTailLineCount)
	v.SetDefault(KeyMarker, DefaultMarkerPrefix)
	v.SetDefault(KeyDryRun, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{KeyDeclarations, KeyImplementation, KeyOutput} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s to environment: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Decode fills a Config from v without validating it.
func Decode(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or out-of-range option at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.DeclarationsPath == "" {
		result = multierror.Append(result, errors.New("declarations path is required"))
	}
	if c.ImplementationPath == "" {
		result = multierror.Append(result, errors.New("implementation path is required"))
	}
	if c.OutputPath == "" {
		result = multierror.Append(result, errors.New("output path is required"))
	}
	if c.TailLineCount < 0 {
		result = multierror.Append(result, fmt.Errorf("tail line count must not be negative, got %d", c.TailLineCount))
	}

	return result.ErrorOrNil()
}
