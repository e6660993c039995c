package keyboard

// Alphabet is the set of letters tried for insertions.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// qwerty lists, for each letter, the keys physically adjacent to it on a QWERTY keyboard
var qwerty = map[rune]string{
	'a': "qwsz", 'b': "vghn", 'c': "xdfv", 'd': "serfcx", 'e': "wsdr", 'f': "drtgvc",
	'g': "ftyhbv", 'h': "gyujnb", 'i': "ujko", 'j': "huikmn", 'k': "jiolm", 'l': "kop",
	'm': "njk", 'n': "bhjm", 'o': "iklp", 'p': "ol", 'q': "wa", 'r': "edft", 's': "wedxz",
	't': "rfgy", 'u': "yhji", 'v': "cfgb", 'w': "qase", 'x': "zsdc", 'y': "tghu", 'z': "asx",
}

// Layout is a keyboard adjacency model plus the alphabet used for insertions.
type Layout struct {
	alphabet  []rune
	adjacency map[rune][]rune
}

// QWERTY returns the default US QWERTY layout.
func QWERTY() *Layout {
	return New(Alphabet, qwerty)
}

// New builds a layout from an insertion alphabet and an adjacency table.
// Letters absent from the table have no neighbours.
func New(alphabet string, adjacency map[rune]string) *Layout {
	l := &Layout{
		alphabet:  []rune(alphabet),
		adjacency: make(map[rune][]rune, len(adjacency)),
	}
	for k, v := range adjacency {
		l.adjacency[k] = []rune(v)
	}
	return l
}

// WithOverrides returns a copy of l where every letter in overrides gets the given neighbours.
// An empty value removes the letter's neighbours.
func (l *Layout) WithOverrides(overrides map[string]string) *Layout {
	out := &Layout{
		alphabet:  l.alphabet,
		adjacency: make(map[rune][]rune, len(l.adjacency)),
	}
	for k, v := range l.adjacency {
		out.adjacency[k] = v
	}
	for k, v := range overrides {
		r := []rune(k)
		if len(r) != 1 {
			continue
		}
		if v == "" {
			delete(out.adjacency, r[0])
			continue
		}
		out.adjacency[r[0]] = []rune(v)
	}
	return out
}

// Neighbours returns the keys adjacent to r, or nil.
func (l *Layout) Neighbours(r rune) []rune {
	return l.adjacency[r]
}

// Alphabet returns the insertion alphabet.
func (l *Layout) Alphabet() []rune {
	return l.alphabet
}
