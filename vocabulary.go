package typomap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxLineSize = 1024 * 1024

// Entry is a word and its corpus frequency.
type Entry struct {
	Word      string
	Frequency int
}

// Vocabulary is the ranked set of valid words. It is immutable once built.
type Vocabulary struct {
	entries []Entry
	index   map[string]int
}

// NewVocabulary wraps entries, which must already be ranked, without filtering them.
// A repeated word keeps its first position.
func NewVocabulary(entries []Entry) *Vocabulary {
	v := &Vocabulary{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, prs := v.index[e.Word]; prs {
			continue
		}
		v.index[e.Word] = len(v.entries)
		v.entries = append(v.entries, e)
	}
	return v
}

func (v *Vocabulary) Len() int {
	return len(v.entries)
}

func (v *Vocabulary) Contains(word string) bool {
	_, prs := v.index[word]
	return prs
}

// Frequency returns the frequency of word, or 0 when it is not in v.
func (v *Vocabulary) Frequency(word string) int {
	if i, prs := v.index[word]; prs {
		return v.entries[i].Frequency
	}
	return 0
}

// Entries returns the ranked entries. The slice must not be modified.
func (v *Vocabulary) Entries() []Entry {
	return v.entries
}

// Words returns the ranked words.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.Word
	}
	return out
}

// LoadStats describes one pass over a frequency source.
type LoadStats struct {
	Lines      int
	Skipped    int
	Duplicates int
	Unique     int
	Kept       int
}

func (b *Builder) LoadVocabularyFile(corpus string) (*Vocabulary, LoadStats, error) {
	f, err := os.Open(corpus)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("frequency source %s: %w", corpus, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("frequency source %s: %w", corpus, err)
	}
	// pipes and empty files cannot be mapped, stream them instead
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return b.LoadVocabulary(f)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("frequency source %s: map: %w", corpus, err)
	}
	defer data.Unmap()

	return b.LoadVocabulary(bytes.NewReader(data))
}

// LoadVocabulary reads "word frequency" lines from corpus and returns the filtered,
// ranked vocabulary. Malformed lines are skipped.
func (b *Builder) LoadVocabulary(corpus io.Reader) (*Vocabulary, LoadStats, error) {
	var stats LoadStats
	var entries []Entry
	positions := make(map[string]int)
	lower := cases.Lower(language.Und)

	scanner := bufio.NewScanner(corpus)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		word, count, ok := parseLine(scanner.Text(), lower)
		if !ok {
			stats.Skipped++
			continue
		}

		if i, prs := positions[word]; prs {
			entries[i].Frequency = count
			stats.Duplicates++
			continue
		}
		positions[word] = len(entries)
		entries = append(entries, Entry{Word: word, Frequency: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading frequency source: %w", err)
	}

	stats.Unique = len(entries)
	v := b.Filter(entries)
	stats.Kept = v.Len()

	b.logger.Debug("loaded frequency source",
		"lines", stats.Lines,
		"skipped", stats.Skipped,
		"duplicates", stats.Duplicates)
	b.logger.Info("vocabulary ready", "unique_words", stats.Unique, "kept", stats.Kept, "top_n", b.TopN)

	return v, stats, nil
}

// Lower folds word the way frequency source words are folded.
func Lower(word string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(word))
}

// Filter drops excluded and too-short words, ranks the rest by descending frequency
// (keeping input order among equals) and keeps the first TopN.
func (b *Builder) Filter(entries []Entry) *Vocabulary {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if b.excluded(e.Word) {
			continue
		}
		if len([]rune(e.Word)) < b.MinWordLength && !b.Whitelist.Contains(e.Word) {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Frequency > kept[j].Frequency
	})

	if len(kept) > b.TopN {
		kept = kept[:b.TopN]
	}
	return NewVocabulary(kept)
}

func parseLine(line string, lower cases.Caser) (string, int, bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", 0, false
	}

	count, err := strconv.Atoi(parts[1])
	if err != nil || count < 0 {
		return "", 0, false
	}

	word := lower.String(parts[0])
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", 0, false
		}
	}
	return word, count, true
}
