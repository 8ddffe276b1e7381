package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
)

// Entry is one template delivered by a Source.
type Entry struct {
	Language  language.Tag
	Namespace string
	Key       string
	Template  string
}

func (e Entry) validate() error {
	switch {
	case e.Language == language.Und:
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyLanguage)
	case e.Namespace == "":
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyNamespace)
	case e.Key == "":
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyKey)
	}
	return nil
}

// Source loads templates from outside the process.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Entry, error)

func (f SourceFunc) Load(ctx context.Context) ([]Entry, error) {
	return f(ctx)
}

// RedisSource keeps templates in a single Redis hash. Each field is named
// "lang:namespace:key" and holds the template text.
type RedisSource struct {
	client redis.Cmdable
	key    string
}

// NewRedisSource returns a source reading the hash stored at hashKey.
func NewRedisSource(client redis.Cmdable, hashKey string) *RedisSource {
	return &RedisSource{client: client, key: hashKey}
}

// Load reads every field of the hash. A field that does not follow the
// naming scheme fails the load.
func (s *RedisSource) Load(ctx context.Context) ([]Entry, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("catalog: reading hash %q: %w", s.key, err)
	}

	entries := make([]Entry, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		e, err := parseField(field)
		if err != nil {
			return nil, err
		}
		e.Template = fields[field]
		entries = append(entries, e)
	}
	return entries, nil
}

// Put stores entries in the hash, replacing existing templates.
func (s *RedisSource) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	values := make([]any, 0, len(entries)*2)
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return err
		}
		values = append(values, buildKey(e.Language, e.Namespace, e.Key), e.Template)
	}
	return s.client.HSet(ctx, s.key, values...).Err()
}

// Delete removes templates from the hash.
func (s *RedisSource) Delete(ctx context.Context, lang language.Tag, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = buildKey(lang, namespace, k)
	}
	return s.client.HDel(ctx, s.key, fields...).Err()
}

// parseField splits "lang:namespace:key". The key may itself contain colons.
func parseField(field string) (Entry, error) {
	parts := strings.SplitN(field, ":", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return Entry{}, fmt.Errorf("%w: field %q", ErrInvalidEntry, field)
	}
	lang, err := language.Parse(parts[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: field %q: %s", ErrInvalidEntry, field, err)
	}
	return Entry{Language: lang, Namespace: parts[1], Key: parts[2]}, nil
}
