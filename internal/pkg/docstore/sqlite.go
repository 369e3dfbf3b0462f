package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps a database opened with database.NewSQLiteDB.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func quote(name string) string {
	return `"` + name + `"`
}

func (s *sqliteStore) Migrate(ctx context.Context, collections ...string) error {
	for _, c := range collections {
		if err := checkCollection(c); err != nil {
			return err
		}
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				doc TEXT NOT NULL CHECK (json_valid(doc)),
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)
		`, quote(c))
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", c, err)
		}
	}
	return nil
}

func (s *sqliteStore) Insert(ctx context.Context, collection, id string, doc any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	ts := now()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)`, quote(collection))
	if _, err := s.db.ExecContext(ctx, query, id, string(b), ts, ts); err != nil {
		return fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, collection, id string, dst any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = ?`, quote(collection))
	var raw string
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s document: %w", collection, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", collection, err)
	}
	return nil
}

func (s *sqliteStore) where(q Query) (string, []interface{}) {
	var conds []string
	var args []interface{}

	fields := make([]string, 0, len(q.Equals))
	for f := range q.Equals {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		conds = append(conds, "json_extract(doc, ?) = ?")
		args = append(args, "$."+f, q.Equals[f])
	}
	if q.Range != nil {
		conds = append(conds, "json_extract(doc, ?) >= ? AND json_extract(doc, ?) < ?")
		path := "$." + q.Range.Field
		args = append(args, path, q.Range.From, path, q.Range.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *sqliteStore) Find(ctx context.Context, collection string, q Query) ([]json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if err := checkQuery(q); err != nil {
		return nil, err
	}

	where, args := s.where(q)
	query := fmt.Sprintf(`SELECT doc FROM %s%s ORDER BY created_at, id`, quote(collection), where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", collection, err)
		}
		docs = append(docs, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (s *sqliteStore) Count(ctx context.Context, collection string, q Query) (int, error) {
	if err := checkCollection(collection); err != nil {
		return 0, err
	}
	if err := checkQuery(q); err != nil {
		return 0, err
	}

	where, args := s.where(q)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, quote(collection), where)

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

// jsonSet renders json_set(doc, ?, json(?), ...) for the given fields.
func jsonSet(fields map[string]string) (string, []interface{}) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	expr := "json_set(doc"
	var args []interface{}
	for _, f := range names {
		expr += ", ?, json(?)"
		args = append(args, "$."+f, fields[f])
	}
	return expr + ")", args
}

func (s *sqliteStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}

	set, args := jsonSet(encoded)
	query := fmt.Sprintf(`UPDATE %s SET doc = %s, updated_at = ? WHERE id = ?`, quote(collection), set)
	args = append(args, now(), id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch %s document: %w", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to patch %s document: %w", collection, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	initial, err := encodePatch(fields)
	if err != nil {
		return err
	}

	ts := now()
	set, setArgs := jsonSet(encoded)
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			doc = %s,
			updated_at = excluded.updated_at
	`, quote(collection), set)
	args := append([]interface{}{id, initial, ts, ts}, setArgs...)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to merge %s document: %w", collection, err)
	}
	return nil
}

func (s *sqliteStore) Put(ctx context.Context, collection, id string, doc any) (bool, error) {
	if err := checkCollection(collection); err != nil {
		return false, err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = ?`, quote(collection)), id,
	).Scan(&existing); err != nil {
		return false, fmt.Errorf("failed to put %s document: %w", collection, err)
	}

	ts := now()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			doc = excluded.doc,
			updated_at = excluded.updated_at
	`, quote(collection))
	if _, err := tx.ExecContext(ctx, query, id, string(b), ts, ts); err != nil {
		return false, fmt.Errorf("failed to put %s document: %w", collection, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return existing == 0, nil
}

func (s *sqliteStore) PutIfAbsent(ctx context.Context, collection, id string, doc any) (bool, error) {
	if err := checkCollection(collection); err != nil {
		return false, err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	ts := now()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, quote(collection))
	res, err := s.db.ExecContext(ctx, query, id, string(b), ts, ts)
	if err != nil {
		return false, fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	return n == 1, nil
}

func (s *sqliteStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() {
	s.db.Close()
}
