// Package typomap builds a static typo → correction lookup table from a ranked word
// frequency list.
//
// Every vocabulary word is expanded into its single-edit variants (deletions,
// transpositions, keyboard-adjacent substitutions and insertions). Variants that are
// not themselves valid words become correction keys; when several words produce the
// same variant the most frequent one wins.
package typomap

import (
	"errors"
	"fmt"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gobwas/glob"

	"github.com/zchrykng/typomap/keyboard"
	"github.com/zchrykng/typomap/staging"
)

const progressEvery = 1000

var ErrInvalidOption = errors.New("invalid option")

// CorrectionMap maps a typo to the single word it corrects to.
type CorrectionMap map[string]string

type Builder struct {
	TopN            int
	MaxTyposPerWord int
	MinWordLength   int

	// Whitelisted words are always admitted to the vocabulary and never used as typos.
	Whitelist mapset.Set[string]
	Layout    *keyboard.Layout

	exclude []glob.Glob
	logger  *slog.Logger
}

func NewBuilder(opts ...Option) (*Builder, error) {
	o := DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}

	if o.MaxEditDistance != 1 {
		return nil, fmt.Errorf("%w: maxEditDistance must be 1, got %d", ErrInvalidOption, o.MaxEditDistance)
	}
	if o.TopN <= 0 {
		return nil, fmt.Errorf("%w: topN must be > 0", ErrInvalidOption)
	}
	if o.MaxTyposPerWord < 0 {
		return nil, fmt.Errorf("%w: maxTyposPerWord must be >= 0", ErrInvalidOption)
	}
	if o.MinWordLength < 1 {
		return nil, fmt.Errorf("%w: minWordLength must be >= 1", ErrInvalidOption)
	}

	b := &Builder{
		TopN:            o.TopN,
		MaxTyposPerWord: o.MaxTyposPerWord,
		MinWordLength:   o.MinWordLength,
		Whitelist:       mapset.NewThreadUnsafeSet[string](),
		Layout:          o.Layout,
		logger:          o.Logger,
	}
	if b.Layout == nil {
		b.Layout = keyboard.QWERTY()
	}
	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}

	for _, w := range o.Whitelist {
		if w = Lower(w); w != "" {
			b.Whitelist.Add(w)
		}
	}

	for _, pattern := range o.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidOption, pattern, err)
		}
		b.exclude = append(b.exclude, g)
	}

	return b, nil
}

// Build generates the correction map for v. Words are visited in v's order, which is
// descending frequency, so on equal frequency the first word to claim a typo keeps it.
func (b *Builder) Build(v *Vocabulary) CorrectionMap {
	capacity := v.Len() * b.MaxTyposPerWord
	if capacity == 0 {
		capacity = v.Len()
	}
	stage := staging.NewCandidateStage[string](capacity)

	total := v.Len()
	for i, e := range v.Entries() {
		if i%progressEvery == 0 {
			b.logger.Debug("generating typos", "processed", i, "total", total)
		}

		typos := b.Edits(e.Word)
		if b.MaxTyposPerWord > 0 && len(typos) > b.MaxTyposPerWord {
			typos = typos[:b.MaxTyposPerWord]
		}

		for _, typo := range typos {
			if b.Whitelist.Contains(typo) || v.Contains(typo) {
				continue
			}
			stage.Add(typo, e.Word, e.Frequency)
		}
	}

	m := make(CorrectionMap, stage.CandidateCount())
	stage.CommitTo(m)

	b.logger.Info("generated corrections",
		"words", total,
		"corrections", len(m),
		"candidates", stage.Proposed(),
		"conflicts_replaced", stage.Replaced())
	return m
}

// Merge applies overrides on top of m unconditionally and returns how many were applied.
func (m CorrectionMap) Merge(overrides map[string]string) int {
	for typo, word := range overrides {
		m[typo] = word
	}
	return len(overrides)
}

// Sorted returns the entries of m ordered by typo.
func (m CorrectionMap) Sorted() Corrections {
	out := make(Corrections, 0, len(m))
	for typo, word := range m {
		out = append(out, Correction{Typo: typo, Word: word})
	}
	out.Sort()
	return out
}

func (b *Builder) excluded(word string) bool {
	for _, g := range b.exclude {
		if g.Match(word) {
			return true
		}
	}
	return false
}
