package journal

import (
	"database/sql"
	"time"
)

// Transition kinds.
const (
	KindEntered  = "entered"
	KindReleased = "released"
	KindChanged  = "changed"
)

// Transition is a recorded mode change.
type Transition struct {
	ID        int64
	SessionID string
	Frame     int64
	From      string
	To        string
	Kind      string
	At        time.Time
}

// TransitionRepository reads and writes transitions.
type TransitionRepository struct {
	db *sql.DB
}

// Transitions returns the transition repository for this store.
func (s *Store) Transitions() *TransitionRepository {
	return &TransitionRepository{db: s.db}
}

// Record inserts t and sets its ID.
func (r *TransitionRepository) Record(t *Transition) error {
	result, err := r.db.Exec(
		`INSERT INTO transitions (session_id, frame, from_mode, to_mode, kind, at) VALUES (?, ?, ?, ?, ?, ?)`,
		t.SessionID, t.Frame, t.From, t.To, t.Kind, t.At,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id

	return nil
}

// ListBySession returns a session's transitions in frame order.
func (r *TransitionRepository) ListBySession(sessionID string) ([]*Transition, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, frame, from_mode, to_mode, kind, at
		 FROM transitions WHERE session_id = ? ORDER BY frame, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transitions []*Transition
	for rows.Next() {
		t := &Transition{}
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Frame, &t.From, &t.To, &t.Kind, &t.At); err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	return transitions, rows.Err()
}
