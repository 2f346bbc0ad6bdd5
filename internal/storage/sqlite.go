package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matsen/namenotes/internal/name"
	_ "modernc.org/sqlite"
)

// Index is an ephemeral SQLite copy of a collection for aggregate queries.
// The JSON store stays the source of truth; an Index is rebuilt on every use.
type Index struct {
	db *sql.DB
}

// Count is one row of a grouped count.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Stats summarizes a collection.
type Stats struct {
	Total      int     `json:"total"`
	Unique     int     `json:"unique"`
	Fictional  int     `json:"fictional"`
	ByGender   []Count `json:"by_gender"`
	ByLanguage []Count `json:"by_language"`
}

// OpenIndex opens an in-memory index with an empty schema.
func OpenIndex(ctx context.Context) (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// Each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func createSchema(ctx context.Context, db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS names (
			seq INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			language TEXT,
			meaning TEXT,
			gender INTEGER NOT NULL,
			fictional INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_names_language ON names(language);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Rebuild replaces the indexed rows with c.
func (ix *Index) Rebuild(ctx context.Context, c name.Collection) (int, error) {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM names"); err != nil {
		return 0, fmt.Errorf("clearing names table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO names (seq, name, language, meaning, gender, fictional)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing names insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range c {
		_, err := stmt.ExecContext(ctx,
			i, r.Name, nullableString(r.Language), nullableString(r.Meaning),
			int(r.Gender), r.Fictional,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing names: %w", err)
	}
	return len(c), nil
}

// nullableString maps an absent optional text to NULL.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Stats computes totals and per-gender and per-language counts.
// Genders are listed in their natural order with zero counts included;
// languages by descending count, records without a language under an empty key.
func (ix *Index) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	row := ix.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT name), COALESCE(SUM(fictional), 0)
		FROM names
	`)
	if err := row.Scan(&st.Total, &st.Unique, &st.Fictional); err != nil {
		return nil, fmt.Errorf("counting names: %w", err)
	}

	byGender := make(map[int]int)
	rows, err := ix.db.QueryContext(ctx, `SELECT gender, COUNT(*) FROM names GROUP BY gender`)
	if err != nil {
		return nil, fmt.Errorf("querying genders: %w", err)
	}
	for rows.Next() {
		var g, n int
		if err := rows.Scan(&g, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning gender row: %w", err)
		}
		byGender[g] = n
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating genders: %w", err)
	}
	rows.Close()

	for _, g := range []name.Gender{name.Male, name.Female, name.Unisex} {
		st.ByGender = append(st.ByGender, Count{Key: g.String(), Count: byGender[int(g)]})
	}

	rows, err = ix.db.QueryContext(ctx, `
		SELECT COALESCE(language, ''), COUNT(*) AS n
		FROM names
		GROUP BY language
		ORDER BY n DESC, language
	`)
	if err != nil {
		return nil, fmt.Errorf("querying languages: %w", err)
	}
	defer rows.Close()

	st.ByLanguage = []Count{}
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning language row: %w", err)
		}
		st.ByLanguage = append(st.ByLanguage, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating languages: %w", err)
	}

	return &st, nil
}

// ComputeStats builds a throwaway index over c and returns its stats.
func ComputeStats(ctx context.Context, c name.Collection) (*Stats, error) {
	ix, err := OpenIndex(ctx)
	if err != nil {
		return nil, err
	}
	defer ix.Close()

	if _, err := ix.Rebuild(ctx, c); err != nil {
		return nil, err
	}
	return ix.Stats(ctx)
}
