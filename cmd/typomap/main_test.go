package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchrykng/typomap/internal/config"
)

const fixtureFrequencies = `the 100
ten 50
and 80
x1 9
is 70
`

type fixture struct {
	dir        string
	config     string
	dictionary string
	overrides  string
	out        string
	validWords string
}

func newFixture(t *testing.T, overrides string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:        dir,
		config:     filepath.Join(dir, "typomap.yaml"),
		dictionary: filepath.Join(dir, "freq.txt"),
		overrides:  filepath.Join(dir, "overrides.yaml"),
		out:        filepath.Join(dir, "out", "corrections.json"),
		validWords: filepath.Join(dir, "out", "valid.json"),
	}

	require.NoError(t, os.WriteFile(f.dictionary, []byte(fixtureFrequencies), 0o644))
	if overrides != "" {
		require.NoError(t, os.WriteFile(f.overrides, []byte(overrides), 0o644))
	}

	cfg := fmt.Sprintf(`dictionary: %q
overrides: %q
output:
  format: json
  corrections: %q
  valid_words: %q
`, f.dictionary, f.overrides, f.out, f.validWords)
	require.NoError(t, os.WriteFile(f.config, []byte(cfg), 0o644))
	return f
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestBuildCommand(t *testing.T) {
	f := newFixture(t, "teh: ten\nalot: a lot\n")

	stdout, _, err := run(t, "build", "--config", f.config, "--verify")
	require.NoError(t, err)

	var m map[string]string
	readJSON(t, f.out, &m)
	assert.Equal(t, "ten", m["teh"], "overrides win over generated corrections")
	assert.Equal(t, "a lot", m["alot"])
	assert.Equal(t, "the", m["te"])
	assert.Equal(t, "and", m["adn"])
	assert.NotContains(t, m, "he")
	assert.NotContains(t, m, "the")

	var words []string
	readJSON(t, f.validWords, &words)
	assert.Equal(t, []string{"the", "and", "is", "ten"}, words)

	assert.Contains(t, stdout, "final corrections")
	assert.Contains(t, stdout, f.out)
}

func TestBuildIsByteIdentical(t *testing.T) {
	f := newFixture(t, "teh: the\n")

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		out := filepath.Join(f.dir, fmt.Sprintf("run%d.js", i))
		valid := filepath.Join(f.dir, fmt.Sprintf("valid%d.js", i))
		_, _, err := run(t, "build", "--config", f.config, "--format", "js", "--out", out, "--valid-words", valid)
		require.NoError(t, err)

		for _, p := range []string{out, valid} {
			data, err := os.ReadFile(p)
			require.NoError(t, err)
			outputs = append(outputs, data)
		}
	}

	assert.Equal(t, outputs[0], outputs[2])
	assert.Equal(t, outputs[1], outputs[3])
	assert.True(t, bytes.HasPrefix(outputs[0], []byte("const correctionMap={")))
	assert.Equal(t, `const validWords=new Set(["the","and","is","ten"]);`, string(outputs[1]))
}

func TestBuildMissingDictionary(t *testing.T) {
	f := newFixture(t, "")
	missing := filepath.Join(f.dir, "absent.txt")

	_, _, err := run(t, "build", "--config", f.config, "--dictionary", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)

	_, statErr := os.Stat(f.out)
	assert.True(t, os.IsNotExist(statErr), "no artifact is written")
}

func TestBuildMalformedOverridesAreSkipped(t *testing.T) {
	f := newFixture(t, "alot: [a lot\n")

	_, stderr, err := run(t, "build", "--config", f.config)
	require.NoError(t, err)

	var m map[string]string
	readJSON(t, f.out, &m)
	assert.NotContains(t, m, "alot")
	assert.Contains(t, stderr, "skipping overrides")
}

func TestBuildUnwritableArtifact(t *testing.T) {
	f := newFixture(t, "")
	// the dictionary is a regular file, so nothing can be created below it
	out := filepath.Join(f.dictionary, "corrections.json")

	_, _, err := run(t, "build", "--config", f.config, "--out", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), out)

	_, statErr := os.Stat(f.validWords)
	assert.True(t, os.IsNotExist(statErr), "later artifacts are not written")
}

func TestBuildGoFormat(t *testing.T) {
	f := newFixture(t, "")
	out := filepath.Join(f.dir, "words.go")
	valid := filepath.Join(f.dir, "valid_words.go")

	_, _, err := run(t, "build", "--config", f.config, "--format", "go", "--package", "autocorrect",
		"--out", out, "--valid-words", valid)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package autocorrect")
	assert.Contains(t, string(data), "var Corrections = map[string]string{")
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	f := newFixture(t, "")

	_, _, err := run(t, "build", "--config", f.config, "--top-n", "0")
	assert.ErrorContains(t, err, "invalid config")
}

func TestEditsCommand(t *testing.T) {
	stdout, _, err := run(t, "edits", "-n", "5", "The")
	require.NoError(t, err)

	assert.Equal(t, "he\nte\nth\nhte\nteh\n", stdout)
}

func TestEditsCommandMultipleWords(t *testing.T) {
	stdout, _, err := run(t, "edits", "-n", "1", "the", "ten")
	require.NoError(t, err)

	assert.Equal(t, "the:\nhe\nten:\nen\n", stdout)
}

func TestEditsCommandFoldsCase(t *testing.T) {
	stdout, _, err := run(t, "edits", "-n", "1", "ÉCOLE")
	require.NoError(t, err)

	assert.Equal(t, "cole\n", stdout)
}

func TestOverridesContext(t *testing.T) {
	cfg := config.Default()

	ctx, cancel := overridesContext(context.Background(), cfg)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok, "no deadline without redis")

	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.Timeout = time.Minute
	ctx, cancel = overridesContext(context.Background(), cfg)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestAuditCommand(t *testing.T) {
	f := newFixture(t, "alot: a lot\n")

	_, _, err := run(t, "build", "--config", f.config)
	require.NoError(t, err)

	stdout, _, err := run(t, "audit", "--config", f.config)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "corrections ok\n"))

	// corrupt the artifact with a real word as a key
	var m map[string]string
	readJSON(t, f.out, &m)
	m["ten"] = "the"
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.out, data, 0o644))

	stdout, _, err = run(t, "audit", "--config", f.config)
	require.Error(t, err)
	assert.Contains(t, stdout, "ten -> the: key is a vocabulary word")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typomap.yaml")

	_, _, err := run(t, "init", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "top_n: 30000")

	_, _, err = run(t, "init", path)
	assert.Error(t, err)

	_, _, err = run(t, "init", "--force", path)
	assert.NoError(t, err)
}
