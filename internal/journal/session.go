package journal

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is one run of the control loop.
type Session struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Frames     int64
	HandFrames int64
}

// Ended reports whether the session was closed.
func (s *Session) Ended() bool {
	return !s.EndedAt.IsZero()
}

// SessionRepository reads and writes sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Begin inserts a new open session with a random ID.
func (r *SessionRepository) Begin(startedAt time.Time) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		session.ID, session.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// End closes a session and stores its frame counters.
func (r *SessionRepository) End(session *Session) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, frames = ?, hand_frames = ? WHERE id = ?`,
		session.EndedAt, session.Frames, session.HandFrames, session.ID,
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
	session := &Session{}
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at, frames, hand_frames FROM sessions WHERE id = ?`,
		id,
	).Scan(&session.ID, &session.StartedAt, &endedAt, &session.Frames, &session.HandFrames)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if endedAt.Valid {
		session.EndedAt = endedAt.Time
	}
	return session, nil
}

// List returns all sessions, most recent first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, started_at, ended_at, frames, hand_frames FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session := &Session{}
		var endedAt sql.NullTime
		if err := rows.Scan(&session.ID, &session.StartedAt, &endedAt, &session.Frames, &session.HandFrames); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			session.EndedAt = endedAt.Time
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
