package typomap

import (
	"log/slog"

	"github.com/zchrykng/typomap/keyboard"
)

// DefaultWhitelist holds short function words that are always valid and never corrected.
var DefaultWhitelist = []string{
	"is", "by", "to", "in", "on", "at", "an", "it", "as", "be", "he", "we",
	"me", "my", "do", "go", "so", "no", "up", "us", "if", "or", "of", "am",
}

var DefaultOptions = BuilderOptions{
	MaxEditDistance: 1,
	TopN:            30000,
	MaxTyposPerWord: 20,
	MinWordLength:   3,
	Whitelist:       DefaultWhitelist,
}

type BuilderOptions struct {
	// MaxEditDistance is fixed at 1; any other value is rejected.
	MaxEditDistance int
	// TopN is the number of most frequent words kept in the vocabulary.
	TopN int
	// MaxTyposPerWord caps the generated edits per word before filtering. 0 disables the cap.
	MaxTyposPerWord int
	// MinWordLength is the shortest non-whitelisted word admitted to the vocabulary.
	MinWordLength int
	Whitelist     []string
	// Exclude holds glob patterns; matching words never enter the vocabulary.
	Exclude []string
	Layout  *keyboard.Layout
	Logger  *slog.Logger
}

type Option interface {
	Apply(options *BuilderOptions)
}

type FuncOption struct {
	ops func(options *BuilderOptions)
}

func (w FuncOption) Apply(conf *BuilderOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *BuilderOptions)) *FuncOption {
	return &FuncOption{ops: f}
}

func WithMaxEditDistance(maxEditDistance int) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithTopN(topN int) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.TopN = topN
	})
}

func WithMaxTyposPerWord(maxTypos int) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.MaxTyposPerWord = maxTypos
	})
}

func WithMinWordLength(length int) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.MinWordLength = length
	})
}

// WithWhitelist replaces the short-word whitelist.
func WithWhitelist(words ...string) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.Whitelist = words
	})
}

func WithExclude(patterns ...string) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.Exclude = patterns
	})
}

func WithLayout(layout *keyboard.Layout) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.Layout = layout
	})
}

func WithLogger(logger *slog.Logger) Option {
	return NewFuncOption(func(options *BuilderOptions) {
		options.Logger = logger
	})
}
