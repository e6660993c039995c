package typomap

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Edits returns every single-edit variant of word in a fixed order: deletions,
// transpositions, adjacent-key substitutions, then insertions. Each family is sorted
// lexicographically and a variant is listed once, under the first family producing it.
// Neither word itself nor the empty string is ever returned.
func (b *Builder) Edits(word string) []string {
	r := []rune(word)
	n := len(r)

	seen := mapset.NewThreadUnsafeSet[string]()
	seen.Add(word)
	seen.Add("")

	alphabet := b.Layout.Alphabet()
	out := make([]string, 0, len(alphabet)*(n+1)+3*n)

	collect := func(family []string) {
		sort.Strings(family)
		for _, e := range family {
			if seen.Add(e) {
				out = append(out, e)
			}
		}
	}

	// deletes
	deletes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		deletes = append(deletes, string(r[:i])+string(r[i+1:]))
	}
	collect(deletes)

	// transposes
	transposes := make([]string, 0, n)
	for i := 0; i+1 < n; i++ {
		buf := make([]rune, n)
		copy(buf, r)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		transposes = append(transposes, string(buf))
	}
	collect(transposes)

	// substitutions, adjacent keys only
	var replaces []string
	for i := 0; i < n; i++ {
		for _, c := range b.Layout.Neighbours(r[i]) {
			buf := make([]rune, n)
			copy(buf, r)
			buf[i] = c
			replaces = append(replaces, string(buf))
		}
	}
	collect(replaces)

	// inserts, every letter at every position
	inserts := make([]string, 0, len(alphabet)*(n+1))
	for i := 0; i <= n; i++ {
		for _, c := range alphabet {
			inserts = append(inserts, string(r[:i])+string(c)+string(r[i:]))
		}
	}
	collect(inserts)

	return out
}

// EditSet is Edits as an unordered set.
func (b *Builder) EditSet(word string) mapset.Set[string] {
	return mapset.NewSet(b.Edits(word)...)
}
