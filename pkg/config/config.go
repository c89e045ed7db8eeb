// Package config loads configuration for the tree-simulation CLI: a
// config file read with viper, layered under command-line flag
// overrides and environment variables, following the same
// file-then-flags-then-env pattern the teacher's config package used for
// its service configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every run parameter the simulator accepts, independent of
// how it was supplied (file, flag, or environment variable).
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Output     OutputConfig     `mapstructure:"output"`
	Log        LogConfig        `mapstructure:"log"`
}

// SimulationConfig holds the parameters of one simulation run.
type SimulationConfig struct {
	Size          int     `mapstructure:"size"`
	Num           int     `mapstructure:"num"`
	Threads       int     `mapstructure:"threads"`
	Seed          int64   `mapstructure:"seed"`
	RandGen       string  `mapstructure:"randgen"`
	Method        string  `mapstructure:"method"` // "simulate" or "readfile"
	Beta          float64 `mapstructure:"beta"`
	Gamma         float64 `mapstructure:"gamma"`
	Mu            float64 `mapstructure:"mu"`
	Poisson       bool    `mapstructure:"poisson"`
	Triangulation bool    `mapstructure:"triangulation"`
	Precision     uint    `mapstructure:"precision"`
	InFile        string  `mapstructure:"infile"`
	Vertex        string  `mapstructure:"vertex"`
}

// OutputConfig holds the six optional output destinations as read from
// a config file. cmd/grant does not consult this section: outputs are
// requested only through their command-line flags.
type OutputConfig struct {
	OutFile     string `mapstructure:"outfile"`
	LoopFile    string `mapstructure:"loopfile"`
	DegFile     string `mapstructure:"degfile"`
	HeightFile  string `mapstructure:"heightfile"`
	ProfileFile string `mapstructure:"profile"`
	CentFile    string `mapstructure:"centfile"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the specified file path, falling back to
// defaults if the file does not exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("grant")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/grant")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file, use defaults
		} else if os.IsNotExist(err) {
			// explicit path doesn't exist, use defaults
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GRANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for tests).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.size", 1000)
	v.SetDefault("simulation.num", 1)
	v.SetDefault("simulation.threads", 1)
	v.SetDefault("simulation.randgen", "pcg")
	v.SetDefault("simulation.method", "simulate")
	v.SetDefault("simulation.beta", -1.0)
	v.SetDefault("simulation.gamma", -1.0)
	v.SetDefault("simulation.mu", -1.0)
	v.SetDefault("simulation.precision", 256)

	v.SetDefault("log.level", "info")
}

// Validate checks the configuration for values the driver can't recover
// from on its own.
func (c *Config) Validate() error {
	if c.Simulation.Size < 0 {
		return fmt.Errorf("simulation size must not be negative")
	}
	if c.Simulation.Threads < 1 {
		return fmt.Errorf("thread count must be at least 1")
	}
	if c.Simulation.Num < 1 {
		return fmt.Errorf("num must be at least 1")
	}
	return nil
}
