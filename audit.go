package typomap

import (
	"fmt"

	"github.com/hbollon/go-edlib"

	"github.com/zchrykng/typomap/utilities"
)

type Reason string

const (
	ReasonVocabularyKey Reason = "key is a vocabulary word"
	ReasonWhitelistKey  Reason = "key is whitelisted"
	ReasonUnknownTarget Reason = "target is not a vocabulary word"
	ReasonNotSingleEdit Reason = "key is not one edit from target"
)

// Violation is a correction map entry that breaks a build invariant.
type Violation struct {
	Typo   string
	Word   string
	Reason Reason
}

func (v Violation) String() string {
	return fmt.Sprintf("%s -> %s: %s", v.Typo, v.Word, v.Reason)
}

// EditDistance is the optimal string alignment distance between a and b.
// Insertions, deletions, substitutions and adjacent transpositions cost one each.
func EditDistance(a, b string) int {
	return edlib.OSADamerauLevenshteinDistance(a, b)
}

// SingleEdit reports whether typo is exactly one edit away from word.
func SingleEdit(typo, word string) bool {
	if utilities.Abs(len([]rune(typo))-len([]rune(word))) > 1 {
		return false
	}
	return EditDistance(typo, word) == 1
}

// Audit checks m against v. Keys present in overrides with the same target are
// trusted and skipped. Violations are ordered by typo.
func (b *Builder) Audit(v *Vocabulary, m CorrectionMap, overrides map[string]string) []Violation {
	var out []Violation

	for _, c := range m.Sorted() {
		if w, prs := overrides[c.Typo]; prs && w == c.Word {
			continue
		}

		switch {
		case v.Contains(c.Typo):
			out = append(out, Violation{Typo: c.Typo, Word: c.Word, Reason: ReasonVocabularyKey})
		case b.Whitelist.Contains(c.Typo):
			out = append(out, Violation{Typo: c.Typo, Word: c.Word, Reason: ReasonWhitelistKey})
		case !v.Contains(c.Word):
			out = append(out, Violation{Typo: c.Typo, Word: c.Word, Reason: ReasonUnknownTarget})
		case !SingleEdit(c.Typo, c.Word):
			out = append(out, Violation{Typo: c.Typo, Word: c.Word, Reason: ReasonNotSingleEdit})
		}
	}

	return out
}
