// Package artifact renders correction maps and valid-word sets into the files
// shipped to the autocorrect client.
package artifact

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/renameio/v2"

	"github.com/zchrykng/typomap"
)

const (
	jsCorrectionsPrefix = "const correctionMap="
	jsValidWordsPrefix  = "const validWords=new Set("
)

//go:embed corrections.go.tmpl
var correctionsTemplate string

//go:embed validwords.go.tmpl
var validWordsTemplate string

var (
	correctionsTmpl = template.Must(template.New("corrections").Parse(correctionsTemplate))
	validWordsTmpl  = template.Must(template.New("validwords").Parse(validWordsTemplate))
)

var ErrUnsupported = errors.New("unsupported for this format")

// Writer renders artifacts in one Format.
type Writer struct {
	Format Format
	// Package names the generated package for FormatGo.
	Package string
}

// Corrections renders a correction map. Entries are written in the order given.
func (w Writer) Corrections(c typomap.Corrections) ([]byte, error) {
	switch w.Format {
	case FormatJS:
		var buf bytes.Buffer
		buf.WriteString(jsCorrectionsPrefix)
		writeObject(&buf, c)
		buf.WriteString(";")
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		writeObject(&buf, c)
		buf.WriteString("\n")
		return buf.Bytes(), nil
	case FormatGo:
		return w.render(correctionsTmpl, map[string]any{
			"Package":     w.Package,
			"Corrections": c,
		})
	}
	return nil, fmt.Errorf("unknown format %d", w.Format)
}

// ValidWords renders the valid-word set in the order given.
func (w Writer) ValidWords(words []string) ([]byte, error) {
	switch w.Format {
	case FormatJS:
		var buf bytes.Buffer
		buf.WriteString(jsValidWordsPrefix)
		writeArray(&buf, words)
		buf.WriteString(");")
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		writeArray(&buf, words)
		buf.WriteString("\n")
		return buf.Bytes(), nil
	case FormatGo:
		return w.render(validWordsTmpl, map[string]any{
			"Package": w.Package,
			"Words":   words,
		})
	}
	return nil, fmt.Errorf("unknown format %d", w.Format)
}

// ReadCorrections parses a corrections artifact produced by Corrections.
func (w Writer) ReadCorrections(data []byte) (typomap.CorrectionMap, error) {
	body, err := w.unwrap(data, jsCorrectionsPrefix, ";")
	if err != nil {
		return nil, err
	}
	m := make(typomap.CorrectionMap)
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("read corrections: %w", err)
	}
	return m, nil
}

// ReadValidWords parses a valid-words artifact produced by ValidWords.
func (w Writer) ReadValidWords(data []byte) ([]string, error) {
	body, err := w.unwrap(data, jsValidWordsPrefix, ");")
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, fmt.Errorf("read valid words: %w", err)
	}
	return words, nil
}

// WriteFile replaces path with data atomically, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w Writer) render(tmpl *template.Template, data map[string]any) ([]byte, error) {
	if !token.IsIdentifier(w.Package) {
		return nil, fmt.Errorf("invalid package name %q", w.Package)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return source, nil
}

func (w Writer) unwrap(data []byte, prefix, suffix string) ([]byte, error) {
	switch w.Format {
	case FormatJSON:
		return data, nil
	case FormatJS:
		s := strings.TrimSpace(string(data))
		if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
			return nil, fmt.Errorf("not a %s artifact", w.Format)
		}
		return []byte(s[len(prefix) : len(s)-len(suffix)]), nil
	}
	return nil, fmt.Errorf("read %s: %w", w.Format, ErrUnsupported)
}

func writeObject(buf *bytes.Buffer, c typomap.Corrections) {
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, e.Typo)
		buf.WriteByte(':')
		writeString(buf, e.Word)
	}
	buf.WriteByte('}')
}

func writeArray(buf *bytes.Buffer, words []string) {
	buf.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, w)
	}
	buf.WriteByte(']')
}

// writeString writes s as a JSON string literal, which is also a valid JS literal.
func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
