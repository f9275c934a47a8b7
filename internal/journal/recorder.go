package journal

import (
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/mode"
)

// Recorder journals one session from frame reports.
type Recorder struct {
	store   *Store
	session *Session
	frame   int64
	now     func() time.Time
}

// Start begins a new session in store.
func Start(store *Store) (*Recorder, error) {
	r := &Recorder{store: store, now: time.Now}

	session, err := store.Sessions().Begin(r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to begin session: %w", err)
	}
	r.session = session

	return r, nil
}

// SessionID returns the ID of the session being recorded.
func (r *Recorder) SessionID() string {
	return r.session.ID
}

// Observe counts a processed frame and records its mode change, if any.
func (r *Recorder) Observe(report control.Report) error {
	r.frame++
	r.session.Frames++
	if report.HandPresent {
		r.session.HandFrames++
	}

	if !report.Changed() {
		return nil
	}

	t := &Transition{
		SessionID: r.session.ID,
		Frame:     r.frame,
		From:      report.Prev.String(),
		To:        report.State.String(),
		Kind:      transitionKind(report.Prev, report.State),
		At:        r.now(),
	}
	if err := r.store.Transitions().Record(t); err != nil {
		return fmt.Errorf("failed to record transition: %w", err)
	}

	return nil
}

// Finish closes the session with the collected counters. Calling it again
// after a successful call does nothing.
func (r *Recorder) Finish() error {
	if r.session.Ended() {
		return nil
	}

	r.session.EndedAt = r.now()
	if err := r.store.Sessions().End(r.session); err != nil {
		r.session.EndedAt = time.Time{}
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func transitionKind(prev, next mode.State) string {
	switch {
	case next.Entered(prev):
		return KindEntered
	case next.Exited(prev):
		return KindReleased
	default:
		return KindChanged
	}
}
