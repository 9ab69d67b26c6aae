// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/nlcatalog/validate"
)

// config is the resolved CLI configuration: defaults, then the optional
// YAML file, then NLCATALOG_* environment variables, then flags.
type config struct {
	LogLevel string      `mapstructure:"log_level"`
	Check    checkConfig `mapstructure:"check"`
}

type checkConfig struct {
	Workers      int      `mapstructure:"workers"`
	RelTol       float64  `mapstructure:"rel_tol"`
	AbsTol       float64  `mapstructure:"abs_tol"`
	ResidualTol  float64  `mapstructure:"residual_tol"`
	StepScale    float64  `mapstructure:"step_scale"`
	NoiseFactor  float64  `mapstructure:"noise_factor"`
	DescentProbe bool     `mapstructure:"descent_probe"`
	Format       string   `mapstructure:"format"`
	Problems     []string `mapstructure:"problems"`
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errBadConfig = errors.New("nlcatalog: invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("check.workers", validate.DefaultWorkers)
	v.SetDefault("check.rel_tol", validate.DefaultRelTol)
	v.SetDefault("check.abs_tol", validate.DefaultAbsTol)
	v.SetDefault("check.residual_tol", validate.DefaultResidualTol)
	v.SetDefault("check.step_scale", validate.DefaultStepScale)
	v.SetDefault("check.noise_factor", validate.DefaultNoiseFactor)
	v.SetDefault("check.descent_probe", validate.DefaultDescentProbe)
	v.SetDefault("check.format", formatText)
}

// loadConfig reads cfgFile (when set) and unmarshals v into a config.
// A missing default file is not an error; a missing explicit file is.
func loadConfig(v *viper.Viper, cfgFile string) (config, error) {
	setDefaults(v)
	v.SetEnvPrefix("NLCATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("nlcatalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/nlcatalog")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Check.Format {
	case formatText, formatYAML:
	default:
		return fmt.Errorf("check.format %q (want text or yaml): %w", c.Check.Format, errBadConfig)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("check.workers %d: %w", c.Check.Workers, errBadConfig)
	}
	for name, v := range map[string]float64{
		"rel_tol": c.Check.RelTol, "abs_tol": c.Check.AbsTol,
		"residual_tol": c.Check.ResidualTol, "noise_factor": c.Check.NoiseFactor,
	} {
		if v < 0 {
			return fmt.Errorf("check.%s %g: %w", name, v, errBadConfig)
		}
	}
	if c.Check.StepScale <= 0 {
		return fmt.Errorf("check.step_scale %g: %w", c.Check.StepScale, errBadConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %v: %w", err, errBadConfig)
	}

	return nil
}

// options maps the check section onto harness options.
func (c checkConfig) options(logger *zap.Logger) []validate.Option {
	return []validate.Option{
		validate.WithWorkers(c.Workers),
		validate.WithRelTol(c.RelTol),
		validate.WithAbsTol(c.AbsTol),
		validate.WithResidualTol(c.ResidualTol),
		validate.WithStepScale(c.StepScale),
		validate.WithNoiseFactor(c.NoiseFactor),
		validate.WithDescentProbe(c.DescentProbe),
		validate.WithProblems(c.Problems...),
		validate.WithLogger(logger),
	}
}

// newLogger builds a console logger on errOut at the configured level.
func newLogger(level string, errOut zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), errOut, zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}
