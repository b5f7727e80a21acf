// Package store keeps a per-session journal of ledger actions in an
// in-memory SQLite database. Nothing survives Close.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Kind classifies a journal entry.
type Kind string

// Journal entry kinds.
const (
	KindAdded     Kind = "added"
	KindCompleted Kind = "completed"
	KindDeleted   Kind = "deleted"
	KindRejected  Kind = "rejected"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindAdded, KindCompleted, KindDeleted, KindRejected}

// Entry is one recorded action.
type Entry struct {
	Seq       int64
	SessionID string
	Kind      Kind
	HabitID   int
	HabitName string
	Detail    string
	At        time.Time
}

// Journal is an append-only log of what happened during one session.
type Journal struct {
	db        *sql.DB
	sessionID string
	now       func() time.Time
}

// Open creates an empty journal with a fresh session id.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{
		db:        db,
		sessionID: uuid.New().String(),
		now:       time.Now,
	}, nil
}

// Close discards the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

// SessionID identifies the session this journal belongs to.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Record appends an entry.
func (j *Journal) Record(kind Kind, habitID int, habitName, detail string) error {
	at := j.now().UTC().Format(time.RFC3339Nano)
	_, err := j.db.Exec(`INSERT INTO journal
		(session_id, kind, habit_id, habit_name, detail, at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		j.sessionID, string(kind), habitID, habitName, detail, at,
	)
	if err != nil {
		return fmt.Errorf("recording %s entry: %w", kind, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	query := `SELECT seq, session_id, kind, habit_id, habit_name, detail, at
		FROM journal ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, at string
		if err := rows.Scan(&e.Seq, &e.SessionID, &kind, &e.HabitID, &e.HabitName, &e.Detail, &at); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		e.At, _ = time.Parse(time.RFC3339Nano, at)
		e.At = e.At.Local()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByKind returns the number of entries per kind. Kinds with no entries
// are absent.
func (j *Journal) CountByKind() (map[Kind]int, error) {
	rows, err := j.db.Query("SELECT kind, COUNT(*) FROM journal GROUP BY kind")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}

// Len returns the number of entries.
func (j *Journal) Len() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM journal").Scan(&count)
	return count, err
}
