// Package history keeps a SQLite log of solve requests and their outcomes.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/philipparndt/gotri/pkg/triangle"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	rule        TEXT NOT NULL,
	input_json  TEXT NOT NULL,
	output_json TEXT,
	error       TEXT,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at);
`

// ErrNotFound is returned by Get for an unknown id
var ErrNotFound = errors.New("history: entry not found")

// Entry is one recorded solve
type Entry struct {
	ID        string
	Name      string
	Rule      string
	Input     triangle.MeasurementSet
	Output    triangle.MeasurementSet
	Error     string
	CreatedAt time.Time
}

// Store manages solve history in SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens (creating if needed) the database at path. ":memory:"
// gives a throwaway store.
func NewStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores the outcome of one solve and returns the new entry
func (s *Store) Record(ctx context.Context, name string, in triangle.MeasurementSet, sol *triangle.Solution, solveErr error) (Entry, error) {
	e := Entry{
		ID:        uuid.New().String(),
		Name:      name,
		Input:     in,
		CreatedAt: s.now().UTC(),
	}
	if sol != nil {
		e.Rule = sol.Rule
		e.Output = sol.Set
	}
	if solveErr != nil {
		e.Error = solveErr.Error()
	}

	inJSON, err := encodeSet(e.Input)
	if err != nil {
		return Entry{}, err
	}
	var outJSON sql.NullString
	if sol != nil {
		b, err := encodeSet(e.Output)
		if err != nil {
			return Entry{}, err
		}
		outJSON = sql.NullString{String: b, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO solves (id, name, rule, input_json, output_json, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Rule, inJSON, outJSON, sql.NullString{String: e.Error, Valid: e.Error != ""},
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert solve: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. A limit <= 0 lists all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, name, rule, input_json, output_json, error, created_at
		FROM solves ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry with the given id
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, rule, input_json, output_json, error, created_at
		 FROM solves WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// Clear deletes every entry and returns how many were removed
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM solves")
	if err != nil {
		return 0, fmt.Errorf("clear solves: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e         Entry
		inJSON    string
		outJSON   sql.NullString
		errText   sql.NullString
		createdAt string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Rule, &inJSON, &outJSON, &errText, &createdAt); err != nil {
		return Entry{}, err
	}

	var err error
	if e.Input, err = decodeSet(inJSON); err != nil {
		return Entry{}, err
	}
	if outJSON.Valid {
		if e.Output, err = decodeSet(outJSON.String); err != nil {
			return Entry{}, err
		}
	}
	e.Error = errText.String
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	return e, nil
}

// encodeSet stores only known, finite fields; lenient solves may carry NaN
// which JSON cannot represent.
func encodeSet(m triangle.MeasurementSet) (string, error) {
	fields := make(map[string]float64)
	for _, f := range triangle.AllFields() {
		v := m.Get(f)
		if m.Known(f) && !math.IsInf(v, 0) && !math.IsNaN(v) {
			fields[f.String()] = v
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal measurements: %w", err)
	}
	return string(b), nil
}

func decodeSet(data string) (triangle.MeasurementSet, error) {
	var fields map[string]float64
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return triangle.MeasurementSet{}, fmt.Errorf("unmarshal measurements: %w", err)
	}

	var m triangle.MeasurementSet
	for name, v := range fields {
		f, err := triangle.ParseField(name)
		if err != nil {
			return triangle.MeasurementSet{}, err
		}
		m.Set(f, v)
	}
	return m, nil
}
