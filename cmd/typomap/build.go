package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/zchrykng/typomap"
	"github.com/zchrykng/typomap/artifact"
	"github.com/zchrykng/typomap/internal/config"
	"github.com/zchrykng/typomap/utilities"
)

const maxReportedViolations = 20

type buildFlags struct {
	dictionary string
	overrides  string
	out        string
	validWords string
	format     string
	pkg        string
	topN       int
	maxTypos   int
	verify     bool
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the correction table and valid-word set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			report, err := runBuild(commandContext(cmd), cfg, f.verify, logger)
			if err != nil {
				return err
			}
			report.print(cmd.OutOrStdout())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.dictionary, "dictionary", "", "word frequency list")
	flags.StringVar(&f.overrides, "overrides", "", "YAML file of manual corrections")
	flags.StringVarP(&f.out, "out", "o", "", "corrections artifact path")
	flags.StringVar(&f.validWords, "valid-words", "", "valid-words artifact path")
	flags.StringVar(&f.format, "format", "", "artifact format: js, json or go")
	flags.StringVar(&f.pkg, "package", "", "package name for the go format")
	flags.IntVar(&f.topN, "top-n", 0, "number of most frequent words to keep")
	flags.IntVar(&f.maxTypos, "max-typos", 0, "typos generated per word, 0 for all")
	flags.BoolVar(&f.verify, "verify", false, "audit the table and fail on violations")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *buildFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("dictionary") {
		cfg.Dictionary = f.dictionary
	}
	if changed("overrides") {
		cfg.Overrides = f.overrides
	}
	if changed("out") {
		cfg.Output.Corrections = f.out
	}
	if changed("valid-words") {
		cfg.Output.ValidWords = f.validWords
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("package") {
		cfg.Output.Package = f.pkg
	}
	if changed("top-n") {
		cfg.TopN = f.topN
	}
	if changed("max-typos") {
		cfg.MaxTyposPerWord = f.maxTypos
	}
}

type artifactInfo struct {
	path        string
	bytes       int
	fingerprint string
}

type buildReport struct {
	stats       typomap.LoadStats
	vocabulary  int
	generated   int
	overrides   int
	corrections int
	artifacts   []artifactInfo
}

func runBuild(ctx context.Context, cfg config.Config, verify bool, logger *slog.Logger) (*buildReport, error) {
	format, err := artifact.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	w := artifact.Writer{Format: format, Package: cfg.Output.Package}

	b, err := newBuilder(cfg, logger)
	if err != nil {
		return nil, err
	}

	v, stats, err := b.LoadVocabularyFile(cfg.Dictionary)
	if err != nil {
		return nil, err
	}

	m := b.Build(v)
	report := &buildReport{stats: stats, vocabulary: v.Len(), generated: len(m)}

	sources, closeSources := overrideSources(cfg)
	defer closeSources()

	overrideCtx, cancel := overridesContext(ctx, cfg)
	defer cancel()
	overrides := b.CollectOverrides(overrideCtx, sources...)
	report.overrides = m.Merge(overrides)
	report.corrections = len(m)

	if verify {
		if violations := b.Audit(v, m, overrides); len(violations) > 0 {
			for i, vi := range violations {
				if i == maxReportedViolations {
					break
				}
				logger.Error("invalid correction", "typo", vi.Typo, "word", vi.Word, "reason", string(vi.Reason))
			}
			return nil, fmt.Errorf("audit found %d invalid corrections", len(violations))
		}
	}

	// render both before writing either
	corrections, err := w.Corrections(m.Sorted())
	if err != nil {
		return nil, fmt.Errorf("render corrections: %w", err)
	}
	validWords, err := w.ValidWords(v.Words())
	if err != nil {
		return nil, fmt.Errorf("render valid words: %w", err)
	}

	for _, a := range []struct {
		path string
		data []byte
	}{
		{cfg.Output.Corrections, corrections},
		{cfg.Output.ValidWords, validWords},
	} {
		if err := artifact.WriteFile(a.path, a.data); err != nil {
			return nil, err
		}
		info := artifactInfo{path: a.path, bytes: len(a.data), fingerprint: utilities.FingerprintHex(a.data)}
		report.artifacts = append(report.artifacts, info)
		logger.Info("wrote artifact", "path", info.path, "bytes", info.bytes, "fnv64a", info.fingerprint)
	}

	return report, nil
}

// overridesContext bounds override loading by the Redis timeout when Redis is enabled.
func overridesContext(ctx context.Context, cfg config.Config) (context.Context, context.CancelFunc) {
	if cfg.Redis.Enabled() && cfg.Redis.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Redis.Timeout)
	}
	return ctx, func() {}
}

// overrideSources lists the configured override sources in merge order.
func overrideSources(cfg config.Config) ([]typomap.OverrideSource, func()) {
	var sources []typomap.OverrideSource
	if cfg.Overrides != "" {
		sources = append(sources, typomap.FileOverrides{Path: cfg.Overrides})
	}
	if !cfg.Redis.Enabled() {
		return sources, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sources = append(sources, typomap.NewRedisOverrides(client, cfg.Redis.Key))
	return sources, func() { _ = client.Close() }
}

func (r *buildReport) print(out io.Writer) {
	table := tabby.NewCustom(tabwriter.NewWriter(out, 0, 0, 2, ' ', 0))
	table.AddHeader("STEP", "COUNT")
	table.AddLine("frequency lines", r.stats.Lines)
	table.AddLine("skipped lines", r.stats.Skipped)
	table.AddLine("unique words", r.stats.Unique)
	table.AddLine("vocabulary", r.vocabulary)
	table.AddLine("generated corrections", r.generated)
	table.AddLine("overrides applied", r.overrides)
	table.AddLine("final corrections", r.corrections)
	table.Print()

	fmt.Fprintln(out)

	files := tabby.NewCustom(tabwriter.NewWriter(out, 0, 0, 2, ' ', 0))
	files.AddHeader("ARTIFACT", "BYTES", "FNV64A")
	for _, a := range r.artifacts {
		files.AddLine(a.path, a.bytes, a.fingerprint)
	}
	files.Print()
}
