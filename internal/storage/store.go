// Package storage keeps a journal of dungeon runs and the floors generated in
// them. SQLite (pure-Go modernc.org/sqlite driver) is the default; a
// postgres:// DSN switches to PostgreSQL through lib/pq.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/delve/internal/dungeon"
)

// Store manages the journal database connection.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Run is one descent, from the first floor to wherever the player stopped.
type Run struct {
	ID         int64
	Seed       int64
	Difficulty string
	Deepest    int
	Floors     int
	StartedAt  time.Time
}

// FloorEntry is one recorded floor of a run.
type FloorEntry struct {
	ID        int64
	RunID     int64
	Depth     int
	Rooms     int
	Monsters  int
	Items     int
	Skipped   int
	Walkable  int
	CreatedAt time.Time
}

// Open connects to the journal described by dsn and runs migrations.
// A SQLite path may start with ~; parent directories are created.
func Open(dsn string) (*Store, error) {
	dialect := NewDialect(DialectFor(dsn))

	if dialect.DriverName() == "sqlite" {
		path, err := prepareSQLitePath(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if dialect.DriverName() == "sqlite" {
		// pragmas are per connection
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: init statement %q failed: %w", stmt, err)
		}
	}

	store := &Store{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func prepareSQLitePath(path string) (string, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	pk := s.dialect.PrimaryKey()
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id ` + pk + `,
			seed BIGINT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			deepest INTEGER NOT NULL DEFAULT 0,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS floors (
			id ` + pk + `,
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			depth INTEGER NOT NULL,
			rooms INTEGER NOT NULL,
			monsters INTEGER NOT NULL,
			items INTEGER NOT NULL,
			skipped INTEGER NOT NULL DEFAULT 0,
			walkable INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_floors_run_id ON floors(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Dialect returns the SQL dialect in use.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// insert runs an INSERT and returns the new row id.
func (s *Store) insert(query string, args ...any) (int64, error) {
	if s.dialect.SupportsLastInsertID() {
		res, err := s.db.Exec(s.qb.Build(query), args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	var id int64
	err := s.db.QueryRow(s.qb.BuildWithReturning(query, "id"), args...).Scan(&id)
	return id, err
}

// StartRun records the beginning of a descent and returns its id.
func (s *Store) StartRun(seed int64, difficulty string) (int64, error) {
	if difficulty == "" {
		difficulty = "normal"
	}
	id, err := s.insert("INSERT INTO runs (seed, difficulty) VALUES (?, ?)", seed, difficulty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start run: %w", err)
	}
	return id, nil
}

// RecordFloor stores a floor summary and raises the run's deepest depth.
func (s *Store) RecordFloor(runID int64, rec dungeon.FloorRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		s.qb.Build(`INSERT INTO floors (run_id, depth, rooms, monsters, items, skipped, walkable)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		runID, rec.Depth, rec.Rooms, rec.Monsters, rec.Items, rec.Skipped, rec.Walkable,
	); err != nil {
		return fmt.Errorf("storage: cannot save floor: %w", err)
	}

	if _, err := tx.Exec(
		s.qb.Build("UPDATE runs SET deepest = ? WHERE id = ? AND deepest < ?"),
		rec.Depth, runID, rec.Depth,
	); err != nil {
		return fmt.Errorf("storage: cannot update run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit floor: %w", err)
	}
	return nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		s.qb.Build(`SELECT r.id, r.seed, r.difficulty, r.deepest, r.started_at,
		        (SELECT COUNT(*) FROM floors f WHERE f.run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Difficulty, &r.Deepest, &startedAt, &r.Floors); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunFloors returns every floor recorded for a run, in the order generated.
func (s *Store) RunFloors(runID int64) ([]FloorEntry, error) {
	rows, err := s.db.Query(
		s.qb.Build(`SELECT id, run_id, depth, rooms, monsters, items, skipped, walkable, created_at
		 FROM floors
		 WHERE run_id = ?
		 ORDER BY id`),
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query floors: %w", err)
	}
	defer rows.Close()

	var floors []FloorEntry
	for rows.Next() {
		var f FloorEntry
		var createdAt any
		if err := rows.Scan(&f.ID, &f.RunID, &f.Depth, &f.Rooms, &f.Monsters, &f.Items, &f.Skipped, &f.Walkable, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		f.CreatedAt = parseTime(createdAt)
		floors = append(floors, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return floors, nil
}

// Run returns a single run, or nil when it does not exist.
func (s *Store) Run(runID int64) (*Run, error) {
	var r Run
	var startedAt any
	err := s.db.QueryRow(
		s.qb.Build(`SELECT r.id, r.seed, r.difficulty, r.deepest, r.started_at,
		        (SELECT COUNT(*) FROM floors f WHERE f.run_id = r.id)
		 FROM runs r
		 WHERE r.id = ?`),
		runID,
	).Scan(&r.ID, &r.Seed, &r.Difficulty, &r.Deepest, &startedAt, &r.Floors)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.StartedAt = parseTime(startedAt)
	return &r, nil
}

// DeepestDepth returns the deepest floor reached across all runs, 0 if none.
func (s *Store) DeepestDepth() (int, error) {
	var deepest sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(deepest) FROM runs").Scan(&deepest); err != nil {
		return 0, fmt.Errorf("storage: cannot query deepest depth: %w", err)
	}
	if !deepest.Valid {
		return 0, nil
	}
	return int(deepest.Int64), nil
}

// Journal returns a dungeon.Journal that records floors under runID.
func (s *Store) Journal(runID int64) dungeon.Journal {
	return runJournal{store: s, runID: runID}
}

type runJournal struct {
	store *Store
	runID int64
}

func (j runJournal) RecordFloor(rec dungeon.FloorRecord) error {
	return j.store.RecordFloor(j.runID, rec)
}

// parseTime handles drivers returning time.Time as well as SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
