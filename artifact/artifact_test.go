package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchrykng/typomap"
)

var sample = typomap.CorrectionMap{
	"teh":   "the",
	"tge":   "the",
	"qu\"o": "quo\"te",
}

func TestJSCorrections(t *testing.T) {
	w := Writer{Format: FormatJS}

	out, err := w.Corrections(sample.Sorted())
	require.NoError(t, err)

	assert.Equal(t, `const correctionMap={"qu\"o":"quo\"te","teh":"the","tge":"the"};`, string(out))

	back, err := w.ReadCorrections(out)
	require.NoError(t, err)
	assert.Equal(t, sample, back)
}

func TestJSValidWords(t *testing.T) {
	w := Writer{Format: FormatJS}
	words := []string{"the", "of", "say \"hi\""}

	out, err := w.ValidWords(words)
	require.NoError(t, err)

	assert.Equal(t, `const validWords=new Set(["the","of","say \"hi\""]);`, string(out))

	back, err := w.ReadValidWords(out)
	require.NoError(t, err)
	assert.Equal(t, words, back)
}

func TestJSONRoundTrip(t *testing.T) {
	w := Writer{Format: FormatJSON}

	out, err := w.Corrections(sample.Sorted())
	require.NoError(t, err)
	back, err := w.ReadCorrections(out)
	require.NoError(t, err)
	assert.Equal(t, sample, back)

	out, err = w.ValidWords([]string{"a", "b"})
	require.NoError(t, err)
	words, err := w.ReadValidWords(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)
}

func TestEmptyArtifacts(t *testing.T) {
	w := Writer{Format: FormatJS}

	out, err := w.Corrections(nil)
	require.NoError(t, err)
	assert.Equal(t, "const correctionMap={};", string(out))

	out, err = w.ValidWords(nil)
	require.NoError(t, err)
	assert.Equal(t, "const validWords=new Set([]);", string(out))
}

func TestGoSource(t *testing.T) {
	w := Writer{Format: FormatGo, Package: "dictionary"}

	out, err := w.Corrections(sample.Sorted())
	require.NoError(t, err)
	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by typomap. DO NOT EDIT."))
	assert.Contains(t, src, "package dictionary")
	assert.Contains(t, src, `"teh":   "the",`)
	assert.Contains(t, src, `"qu\"o": "quo\"te",`)

	out, err = w.ValidWords([]string{"the", "of"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "var ValidWords = []string{\n\t\"the\",\n\t\"of\",\n}")

	_, err = w.ReadCorrections(out)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestGoSourceRejectsBadPackage(t *testing.T) {
	w := Writer{Format: FormatGo, Package: "not-a-name"}

	_, err := w.Corrections(sample.Sorted())
	assert.Error(t, err)
}

func TestReadCorrectionsRejectsForeignInput(t *testing.T) {
	w := Writer{Format: FormatJS}

	_, err := w.ReadCorrections([]byte(`var x = {};`))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatJS},
		{"js", FormatJS},
		{"json", FormatJSON},
		{"go", FormatGo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dictionary.js")

	require.NoError(t, WriteFile(path, []byte("first version, longer")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
