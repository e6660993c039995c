package typomap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// OverrideSource supplies manual corrections that always win over generated ones.
type OverrideSource interface {
	Name() string
	// Load returns nil, nil when the source does not exist.
	Load(ctx context.Context) (map[string]string, error)
}

// ParseOverrides decodes a flat YAML mapping of typo to correction.
// Keys are lowercased; surrounding whitespace is trimmed; empty keys or values are dropped.
func ParseOverrides(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return normalizeOverrides(raw), nil
}

// FileOverrides reads overrides from a YAML file.
type FileOverrides struct {
	Path string
}

func (fo FileOverrides) Name() string {
	return fo.Path
}

func (fo FileOverrides) Load(_ context.Context) (map[string]string, error) {
	f, err := os.Open(fo.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("override source %s: %w", fo.Path, err)
	}
	defer f.Close()

	m, err := ParseOverrides(f)
	if err != nil {
		return nil, fmt.Errorf("override source %s: %w", fo.Path, err)
	}
	return m, nil
}

type hashGetter interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisOverrides reads overrides from the fields of a Redis hash.
type RedisOverrides struct {
	client hashGetter
	key    string
}

// NewRedisOverrides wraps a Redis client (usually *redis.Client) and hash key.
func NewRedisOverrides(client hashGetter, key string) *RedisOverrides {
	return &RedisOverrides{client: client, key: key}
}

func (ro *RedisOverrides) Name() string {
	return "redis:" + ro.key
}

func (ro *RedisOverrides) Load(ctx context.Context) (map[string]string, error) {
	raw, err := ro.client.HGetAll(ctx, ro.key).Result()
	if err != nil {
		return nil, fmt.Errorf("override source %s: %w", ro.Name(), err)
	}
	// HGETALL on a missing key is an empty reply
	if len(raw) == 0 {
		return nil, nil
	}
	return normalizeOverrides(raw), nil
}

func normalizeOverrides(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		k = Lower(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// CollectOverrides loads sources in order, later sources winning on shared keys.
// A source that fails to load is logged and contributes nothing.
func (b *Builder) CollectOverrides(ctx context.Context, sources ...OverrideSource) map[string]string {
	out := make(map[string]string)
	for _, src := range sources {
		m, err := src.Load(ctx)
		if err != nil {
			b.logger.Warn("skipping overrides", "source", src.Name(), "error", err)
			continue
		}
		if m == nil {
			b.logger.Debug("override source not found", "source", src.Name())
			continue
		}
		for k, v := range m {
			out[k] = v
		}
		b.logger.Info("loaded overrides", "source", src.Name(), "entries", len(m))
	}
	return out
}
