// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/nlcatalog/catalog"
	"github.com/katalvlaran/nlcatalog/registry"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	out     io.Writer
	errOut  io.Writer
	v       *viper.Viper
	cfgFile string
	cfg     config
	logger  *zap.Logger
	reg     *registry.Registry
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "nlcatalog",
		Short: "Catalog of nonlinear-equation benchmark problems",
		Long: `nlcatalog lists the benchmark systems F(x) = 0 of the catalog, shows their
metadata, and checks every analytic Jacobian against central differences.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./nlcatalog.yaml or ~/.config/nlcatalog/nlcatalog.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	mustBind(a.v, "log_level", pf.Lookup("log-level"))

	root.AddCommand(a.listCmd(), a.showCmd(), a.checkCmd(), a.solveStepCmd())

	return root
}

// mustBind binds a config key to a flag. A failure is a wiring mistake in
// command construction.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("nlcatalog: binding %q: %v", key, err))
	}
}

// setup resolves the configuration, the logger and the catalog.
func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = newLogger(cfg.LogLevel, zapcore.AddSync(a.errOut)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	if a.reg, err = catalog.New(); err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}
	a.logger.Debug("catalog ready", zap.Int("problems", a.reg.Len()), zap.String("config", a.v.ConfigFileUsed()))

	return nil
}
