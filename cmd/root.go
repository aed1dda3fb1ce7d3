package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mj1618/yman/internal/config"
	"github.com/mj1618/yman/internal/logging"
	"github.com/mj1618/yman/internal/output"
	"github.com/mj1618/yman/internal/service"
	"github.com/mj1618/yman/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yman",
	Short: "Yakuake session management",
	Long: `Store the open Yakuake tabs (title, directory, command and environment)
under a name and restore them later into fresh tabs.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	closeState()
	if err != nil {
		os.Exit(1)
	}
}

// closeState releases the service built for the command that just ran.
func closeState() {
	if state == nil {
		return
	}
	if err := state.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	state = nil
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/yman/config.toml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flags directly so subcommands cannot
		// shadow them.
		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: piped output → json, terminal → yaml.
		if format == "" {
			if output.IsOutputPiped() {
				format = string(output.FormatJSON)
			} else {
				format = string(output.FormatYAML)
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		svc, err := loadService(commandContext(cmd))
		if err != nil {
			return err
		}
		state = svc
		return nil
	}
}

// state is the service shared by all commands, set by PersistentPreRunE.
var state *service.Service

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadService reads configuration from the root flags, creates the config
// directories and opens the session store.
func loadService(ctx context.Context) (*service.Service, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create config directories: %w", err)
	}
	return service.New(ctx, cfg, logger)
}
