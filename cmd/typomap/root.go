package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zchrykng/typomap"
	"github.com/zchrykng/typomap/internal/config"
	"github.com/zchrykng/typomap/internal/logging"
	"github.com/zchrykng/typomap/keyboard"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typomap",
		Short: "Build static autocorrect tables from a word frequency list",
		Long: `typomap expands the most frequent words of a frequency list into their
single-edit typos and writes a typo -> correction table plus the set of valid words.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to typomap.yaml (defaults are used when empty)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(
		newBuildCmd(opts),
		newEditsCmd(opts),
		newAuditCmd(opts),
		newInitCmd(),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{
		Level:   level,
		JSON:    o.logJSON,
		Service: "typomap",
		Output:  cmd.ErrOrStderr(),
	}), nil
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}

// newBuilder maps cfg onto builder options.
func newBuilder(cfg config.Config, logger *slog.Logger) (*typomap.Builder, error) {
	return typomap.NewBuilder(
		typomap.WithMaxEditDistance(cfg.MaxEditDistance),
		typomap.WithTopN(cfg.TopN),
		typomap.WithMaxTyposPerWord(cfg.MaxTyposPerWord),
		typomap.WithMinWordLength(cfg.MinWordLength),
		typomap.WithWhitelist(cfg.ShortWordWhitelist...),
		typomap.WithExclude(cfg.Exclude...),
		typomap.WithLayout(keyboard.QWERTY().WithOverrides(cfg.Keyboard)),
		typomap.WithLogger(logger),
	)
}

// commandContext returns the command context, or a background context when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
