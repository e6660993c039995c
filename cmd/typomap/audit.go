package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zchrykng/typomap/artifact"
)

func newAuditCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check an existing corrections artifact against the frequency list",
		Long: `audit reloads the vocabulary and overrides named by the config and reports
corrections whose key is a valid or whitelisted word, whose target is unknown, or
which are not a single edit. Only the js and json formats can be read back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			format, err := artifact.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(cfg.Output.Corrections)
			if err != nil {
				return err
			}
			m, err := artifact.Writer{Format: format}.ReadCorrections(data)
			if err != nil {
				return err
			}

			b, err := newBuilder(cfg, logger)
			if err != nil {
				return err
			}
			v, _, err := b.LoadVocabularyFile(cfg.Dictionary)
			if err != nil {
				return err
			}

			sources, closeSources := overrideSources(cfg)
			defer closeSources()
			ctx, cancel := overridesContext(commandContext(cmd), cfg)
			defer cancel()
			overrides := b.CollectOverrides(ctx, sources...)

			violations := b.Audit(v, m, overrides)
			out := cmd.OutOrStdout()
			for _, vi := range violations {
				fmt.Fprintln(out, vi)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d of %d corrections are invalid", len(violations), len(m))
			}
			fmt.Fprintf(out, "%d corrections ok\n", len(m))
			return nil
		},
	}
}
