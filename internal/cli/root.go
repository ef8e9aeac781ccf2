// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/katalvlaran/dunits/units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var headingStyle = lipgloss.NewStyle().Bold(true)

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	cfg    Config
	logger *log.Logger
	reg    *units.Registry
}

// NewRootCommand builds the dunit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	v := newViper()
	var cfgFile string

	root := &cobra.Command{
		Use:   "dunit",
		Short: "Resolve units and convert dimensioned quantities",
		Long: `dunit resolves unit names (with SI prefixes) to dimensioned values
and converts quantities between compatible units.

Examples:
  dunit lookup km
  dunit convert 42.195 km mile
  dunit units --family imperial
  dunit const c`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().String("log-level", DefaultConfig().LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().Int("precision", DefaultConfig().Precision, "significant digits for convert (-1 = shortest)")
	_ = v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(keyPrecision, root.PersistentFlags().Lookup("precision"))

	root.AddCommand(
		newLookupCommand(a),
		newConvertCommand(a),
		newUnitsCommand(a),
		newConstCommand(a),
	)
	return root
}

// setup loads configuration, builds the logger and the registry.
func (a *app) setup(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	cfg, err := loadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	reg, err := units.NewSI(units.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.reg = reg
	a.logger.Debug("registry ready", "config", cfgFile, "precision", cfg.Precision)
	return nil
}

// Execute runs the CLI with fang's styled help and error output.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewRootCommand(), fang.WithVersion(Version))
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{Prefix: "dunit", Level: lvl})
}
