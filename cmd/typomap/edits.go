package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zchrykng/typomap"
)

func newEditsCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "edits <word>...",
		Short: "Print the single-edit typos generated for words, in priority order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.MaxTyposPerWord
			}

			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			b, err := newBuilder(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, word := range args {
				edits := b.Edits(typomap.Lower(word))
				if limit > 0 && len(edits) > limit {
					edits = edits[:limit]
				}
				if len(args) > 1 {
					fmt.Fprintf(out, "%s:\n", word)
				}
				for _, e := range edits {
					fmt.Fprintln(out, e)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most n typos, 0 for all (default: max_typos_per_word)")
	return cmd
}
