// Package navsession provides lightweight session bookkeeping for a single
// run of the navigation core: a unique identifier and a logger tagged with
// it, so log output from concurrent or successive runs (replay-harness
// invocations, on-robot restarts) can be told apart.
package navsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/trzy/robart/logging"
)

// Session identifies a single run of the navigation core.
type Session struct {
	id        uuid.UUID
	startedAt time.Time
	logger    logging.Logger
}

// New starts a session and, if logger is non-nil, logs its start.
func New(logger logging.Logger) *Session {
	s := &Session{id: uuid.New(), startedAt: time.Now(), logger: logger}
	if logger != nil {
		logger.Infow("session started", "session", s.id, "startedAt", s.startedAt)
	}
	return s
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Logger returns a Logger tagged with this session's identifier, for every
// log line the caller emits under this run. Returns nil if the session was
// created without a base logger.
func (s *Session) Logger() logging.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With("session", s.id)
}
