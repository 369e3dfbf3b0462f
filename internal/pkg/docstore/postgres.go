package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/database"
)

type postgresStore struct {
	db *database.DB
	q  database.Querier
}

func NewPostgresStore(db *database.DB) Store {
	return &postgresStore{db: db, q: db.Pool}
}

func (s *postgresStore) Migrate(ctx context.Context, collections ...string) error {
	for _, c := range collections {
		if err := checkCollection(c); err != nil {
			return err
		}
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				doc JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, pgx.Identifier{c}.Sanitize())
		if _, err := s.q.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", c, err)
		}
	}
	return nil
}

func (s *postgresStore) Insert(ctx context.Context, collection, id string, doc any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, pgx.Identifier{collection}.Sanitize())
	if _, err := s.q.Exec(ctx, query, id, string(b)); err != nil {
		return fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	return nil
}

func (s *postgresStore) Get(ctx context.Context, collection, id string, dst any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, pgx.Identifier{collection}.Sanitize())
	var raw []byte
	if err := s.q.QueryRow(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s document: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", collection, err)
	}
	return nil
}

// where builds a WHERE clause; placeholders start at $start.
func (s *postgresStore) where(q Query, start int) (string, []interface{}) {
	var conds []string
	var args []interface{}
	argIdx := start

	fields := make([]string, 0, len(q.Equals))
	for f := range q.Equals {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		conds = append(conds, fmt.Sprintf("doc->>$%d = $%d", argIdx, argIdx+1))
		args = append(args, f, q.Equals[f])
		argIdx += 2
	}
	if q.Range != nil {
		conds = append(conds, fmt.Sprintf(`(doc->>$%d) COLLATE "C" >= $%d AND (doc->>$%d) COLLATE "C" < $%d`,
			argIdx, argIdx+1, argIdx, argIdx+2))
		args = append(args, q.Range.Field, q.Range.From, q.Range.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *postgresStore) Find(ctx context.Context, collection string, q Query) ([]json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if err := checkQuery(q); err != nil {
		return nil, err
	}

	where, args := s.where(q, 1)
	query := fmt.Sprintf(`SELECT doc FROM %s%s ORDER BY created_at, id`, pgx.Identifier{collection}.Sanitize(), where)

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var raw []byte
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

func (s *postgresStore) Count(ctx context.Context, collection string, q Query) (int, error) {
	if err := checkCollection(collection); err != nil {
		return 0, err
	}
	if err := checkQuery(q); err != nil {
		return 0, err
	}

	where, args := s.where(q, 1)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, pgx.Identifier{collection}.Sanitize(), where)

	var n int
	if err := s.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

func (s *postgresStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	b, err := encodePatch(fields)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb, updated_at = NOW() WHERE id = $1`,
		pgx.Identifier{collection}.Sanitize())
	tag, err := s.q.Exec(ctx, query, id, b)
	if err != nil {
		return fmt.Errorf("failed to patch %s document: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresStore) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	b, err := encodePatch(fields)
	if err != nil {
		return err
	}

	table := pgx.Identifier{collection}.Sanitize()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			doc = %s.doc || EXCLUDED.doc,
			updated_at = NOW()
	`, table, table)
	if _, err := s.q.Exec(ctx, query, id, b); err != nil {
		return fmt.Errorf("failed to merge %s document: %w", collection, err)
	}
	return nil
}

func (s *postgresStore) Put(ctx context.Context, collection, id string, doc any) (bool, error) {
	if err := checkCollection(collection); err != nil {
		return false, err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`, pgx.Identifier{collection}.Sanitize())

	var inserted bool
	if err := s.q.QueryRow(ctx, query, id, string(b)).Scan(&inserted); err != nil {
		return false, fmt.Errorf("failed to put %s document: %w", collection, err)
	}
	return inserted, nil
}

func (s *postgresStore) PutIfAbsent(ctx context.Context, collection, id string, doc any) (bool, error) {
	if err := checkCollection(collection); err != nil {
		return false, err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb) ON CONFLICT (id) DO NOTHING`,
		pgx.Identifier{collection}.Sanitize())
	var tag pgconn.CommandTag
	if tag, err = s.q.Exec(ctx, query, id, string(b)); err != nil {
		return false, fmt.Errorf("failed to insert %s document: %w", collection, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *postgresStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.q.Query(ctx, `
		SELECT table_name::text FROM information_schema.tables
		WHERE table_schema = current_schema()
		ORDER BY table_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan collection name: %w", err)
	}
	return names, nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *postgresStore) Close() {
	s.db.Close()
}

func encodePatch(fields map[string]any) (string, error) {
	encoded, err := encodeFields(fields)
	if err != nil {
		return "", err
	}
	obj := make(map[string]json.RawMessage, len(encoded))
	for k, v := range encoded {
		obj[k] = json.RawMessage(v)
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("failed to encode patch: %w", err)
	}
	return string(b), nil
}
