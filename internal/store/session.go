package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is one application run.
type Session struct {
	ID          string
	StartedAt   time.Time
	EndedAt     *time.Time
	Frames      int
	Strokes     int
	Clears      int
	ModeToggles int
}

// SessionStats are the counters recorded when a session finishes.
type SessionStats struct {
	Frames      int
	Strokes     int
	Clears      int
	ModeToggles int
}

// SessionRepository journals application runs.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Start records a new session beginning at startedAt and returns it.
func (r *SessionRepository) Start(startedAt time.Time) (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		StartedAt: startedAt,
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		sess.ID, sess.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// Finish stamps the end time and statistics of a session.
func (r *SessionRepository) Finish(id string, endedAt time.Time, stats SessionStats) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, frames = ?, strokes = ?, clears = ?, mode_toggles = ?
		 WHERE id = ?`,
		endedAt, stats.Frames, stats.Strokes, stats.Clears, stats.ModeToggles, id,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at, frames, strokes, clears, mode_toggles
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.StartedAt, &endedAt, &sess.Frames, &sess.Strokes, &sess.Clears, &sess.ModeToggles)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if endedAt.Valid {
		t := endedAt.Time
		sess.EndedAt = &t
	}
	return sess, nil
}

// List returns the most recent sessions first, at most limit rows.
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, started_at, ended_at, frames, strokes, clears, mode_toggles
		 FROM sessions ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		var endedAt sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &endedAt, &sess.Frames, &sess.Strokes, &sess.Clears, &sess.ModeToggles); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			t := endedAt.Time
			sess.EndedAt = &t
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}
