// Package cli implements typedtxctl's cobra command tree: a thin,
// I/O-performing collaborator over the pure starknet-typedtx core.
package cli

import (
	"fmt"

	"github.com/NethermindEth/starknet-typedtx/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configF     = "config"
	logLevelF   = "log-level"
	logBackendF = "log-backend"

	defaultLogLevel   = utils.INFO
	defaultLogBackend = "slog"

	configFlagUsage = "YAML config file. Flags take precedence over values read from it."

	logLevelFlagUsage = `Verbosity of the logs. Options:
debug
info
warn
error
fatal
`

	logBackendFlagUsage = `Logging backend. Options:
slog (structured stdlib log/slog output)
zap (coloured console output via go.uber.org/zap)
`
)

// NewCmd builds the typedtxctl root command and its subcommand tree.
func NewCmd() *cobra.Command {
	logLevel := defaultLogLevel
	var cfgFile, logBackend string

	rootCmd := &cobra.Command{
		Use:   "typedtxctl [command]",
		Short: "Hash Starknet typed-data messages and transactions.",
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, configF, "", configFlagUsage)
	rootCmd.PersistentFlags().Var(&logLevel, logLevelF, logLevelFlagUsage)
	rootCmd.PersistentFlags().StringVar(&logBackend, logBackendF, defaultLogBackend, logBackendFlagUsage)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
		}
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		if !cmd.Flags().Changed(logLevelF) {
			if s := v.GetString(logLevelF); s != "" {
				if err := logLevel.Set(s); err != nil {
					return fmt.Errorf("parse %s from config: %w", logLevelF, err)
				}
			}
		}
		if !cmd.Flags().Changed(logBackendF) {
			if s := v.GetString(logBackendF); s != "" {
				logBackend = s
			}
		}
		return nil
	}

	rootCmd.AddCommand(newHashCmd(&logLevel, &logBackend))
	return rootCmd
}

func newLogger(level *utils.LogLevel, backend *string) (utils.Logger, error) {
	switch *backend {
	case "zap":
		return utils.NewZapLogger(*level, true)
	case "slog", "":
		return utils.NewSlogLogger(*level, false)
	default:
		return nil, fmt.Errorf("unknown %s %q: want slog or zap", logBackendF, *backend)
	}
}
