package typomap

import (
	"fmt"
	"sort"
)

// Correction is one entry of a correction map.
type Correction struct {
	Typo string // Typo is the misspelled key
	Word string // Word is what the typo corrects to
}

// String implements the stringer interface
func (c Correction) String() string {
	return fmt.Sprintf("{%s -> %s}", c.Typo, c.Word)
}

// Corrections exists to implement the sort interface
type Corrections []Correction

// Len returns the length of the Corrections array
func (c Corrections) Len() int {
	return len(c)
}

// Swap the positions of two Correction in the array
func (c Corrections) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Less orders by typo, then by word
func (c Corrections) Less(i, j int) bool {
	if c[i].Typo == c[j].Typo {
		return c[i].Word < c[j].Word
	}
	return c[i].Typo < c[j].Typo
}

func (c Corrections) Sort() {
	sort.Sort(c)
}
