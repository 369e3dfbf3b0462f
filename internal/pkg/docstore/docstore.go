// Package docstore keeps named collections of JSON documents in a relational
// database. Each collection is a table of (id, doc, created_at, updated_at);
// PostgreSQL stores doc as JSONB, SQLite as JSON text.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrInvalidField      = errors.New("invalid field name")
)

// SingletonID is the fixed key of the only document in a singleton
// collection. The primary key keeps a second row from ever existing.
const SingletonID = "singleton"

// Range matches documents whose Field, compared as text, is in [From, To).
type Range struct {
	Field string
	From  string
	To    string
}

// Query filters a collection. A zero Query matches everything.
type Query struct {
	Equals map[string]string
	Range  *Range
}

// Where returns a copy of q with field = value added.
func (q Query) Where(field, value string) Query {
	eq := make(map[string]string, len(q.Equals)+1)
	for k, v := range q.Equals {
		eq[k] = v
	}
	eq[field] = value
	q.Equals = eq
	return q
}

type Store interface {
	// Migrate creates the tables backing the given collections.
	Migrate(ctx context.Context, collections ...string) error

	Insert(ctx context.Context, collection, id string, doc any) error
	Get(ctx context.Context, collection, id string, dst any) error
	Find(ctx context.Context, collection string, q Query) ([]json.RawMessage, error)
	Count(ctx context.Context, collection string, q Query) (int, error)

	// Patch overwrites top-level fields of an existing document.
	Patch(ctx context.Context, collection, id string, fields map[string]any) error
	// Merge patches the document, inserting fields as a new document when
	// none exists under id.
	Merge(ctx context.Context, collection, id string, fields map[string]any) error
	// Put replaces or inserts the whole document and reports whether it was
	// inserted.
	Put(ctx context.Context, collection, id string, doc any) (created bool, err error)
	// PutIfAbsent inserts doc unless id already exists.
	PutIfAbsent(ctx context.Context, collection, id string, doc any) (created bool, err error)

	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close()
}

// FindAs runs q and decodes every matching document into T.
func FindAs[T any](ctx context.Context, s Store, collection string, q Query) ([]T, error) {
	raws, err := s.Find(ctx, collection, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

var identRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func checkCollection(name string) error {
	if !identRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

func checkQuery(q Query) error {
	for field := range q.Equals {
		if !identRegex.MatchString(field) {
			return fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
	}
	if q.Range != nil && !identRegex.MatchString(q.Range.Field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, q.Range.Field)
	}
	return nil
}

// encodeFields validates field names and encodes each value as JSON text.
func encodeFields(fields map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for field, value := range fields {
		if !identRegex.MatchString(field) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", field, err)
		}
		out[field] = string(b)
	}
	return out, nil
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func now() string {
	return time.Now().UTC().Format(timeLayout)
}
