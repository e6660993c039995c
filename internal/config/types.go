package config

import (
	"time"

	"github.com/zchrykng/typomap"
)

// Config is the on-disk build configuration (typomap.yaml).
type Config struct {
	// Dictionary is the word frequency list, one "word frequency" pair per line.
	Dictionary string `yaml:"dictionary" validate:"required"`
	// Overrides is an optional YAML mapping of typo to correction.
	Overrides string `yaml:"overrides"`
	Output    Output `yaml:"output"`

	MaxEditDistance    int               `yaml:"max_edit_distance" validate:"eq=1"`
	TopN               int               `yaml:"top_n" validate:"gt=0"`
	MaxTyposPerWord    int               `yaml:"max_typos_per_word" validate:"gte=0"`
	MinWordLength      int               `yaml:"min_word_length" validate:"gte=1"`
	ShortWordWhitelist []string          `yaml:"short_word_whitelist" validate:"dive,required"`
	Exclude            []string          `yaml:"exclude" validate:"dive,required"`
	Keyboard           map[string]string `yaml:"keyboard,omitempty" validate:"dive,keys,len=1,endkeys"`

	Redis Redis `yaml:"redis"`
}

type Output struct {
	Corrections string `yaml:"corrections" validate:"required"`
	ValidWords  string `yaml:"valid_words" validate:"required,nefield=Corrections"`
	Format      string `yaml:"format" validate:"oneof=js json go"`
	Package     string `yaml:"package" validate:"required_if=Format go"`
}

// Redis configures the optional Redis hash override source. An empty Addr disables it.
type Redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password,omitempty"`
	DB       int           `yaml:"db" validate:"gte=0"`
	Key      string        `yaml:"key" validate:"required_with=Addr"`
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dictionary: "assets/frequency_dictionary_en_82_765.txt",
		Overrides:  "overrides.yaml",
		Output: Output{
			Corrections: "dictionary.js",
			ValidWords:  "validWords.js",
			Format:      "js",
			Package:     "dictionary",
		},
		MaxEditDistance:    typomap.DefaultOptions.MaxEditDistance,
		TopN:               typomap.DefaultOptions.TopN,
		MaxTyposPerWord:    typomap.DefaultOptions.MaxTyposPerWord,
		MinWordLength:      typomap.DefaultOptions.MinWordLength,
		ShortWordWhitelist: append([]string(nil), typomap.DefaultWhitelist...),
		Redis: Redis{
			Key:     "typomap:overrides",
			Timeout: 5 * time.Second,
		},
	}
}
