// Package registry records completed solves in a small SQLite database
// next to the cache files, so the shell can list which variants have
// been solved on this machine and how big their state spaces were.
package registry

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/domino14/gobbler/rules"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sizes INTEGER NOT NULL,
	per_size INTEGER NOT NULL,
	allow_move INTEGER NOT NULL,
	discovered INTEGER NOT NULL,
	solved INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL
);`

type Registry struct {
	db *sql.DB
}

// Solve is one recorded solve run.
type Solve struct {
	Rules      rules.Rules
	Discovered uint64
	Solved     uint64
	Elapsed    time.Duration
	CreatedAt  time.Time
}

func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Registry{db: db}, nil
}

func (r *Registry) Record(s Solve) error {
	allowMove := 0
	if s.Rules.AllowMove {
		allowMove = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO solves (sizes, per_size, allow_move, discovered, solved, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Rules.Sizes, s.Rules.PerSize, allowMove,
		s.Discovered, s.Solved, s.Elapsed.Milliseconds(),
		s.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (r *Registry) List() ([]Solve, error) {
	rows, err := r.db.Query(
		`SELECT sizes, per_size, allow_move, discovered, solved, elapsed_ms, created_at
		 FROM solves ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var allowMove int
		var elapsedMs int64
		var createdAt string
		if err := rows.Scan(&s.Rules.Sizes, &s.Rules.PerSize, &allowMove,
			&s.Discovered, &s.Solved, &elapsedMs, &createdAt); err != nil {
			return nil, err
		}
		s.Rules.AllowMove = allowMove != 0
		s.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			s.CreatedAt = t
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

func (r *Registry) Close() error {
	return r.db.Close()
}
