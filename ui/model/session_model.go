package model

import (
	"time"
)

// SessionModel tracks how long the tracker has been locked onto the target
// window in the current lock session, and the accumulated locked time.
// It is decoupled from the UI; presenters should poll Values() and update
// views. The zero value is ready to use.
type SessionModel struct {
	active              bool
	lockStart           time.Time
	lastSessionDuration time.Duration
	accumulated         time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current lock state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(locked bool, now time.Time) {
	if m == nil {
		return
	}
	if locked {
		if !m.active { // transition unlocked -> locked
			m.active = true
			m.lockStart = now
			m.lastSessionDuration = 0
		}
		m.lastSessionDuration = now.Sub(m.lockStart)
	} else if m.active { // transition locked -> unlocked
		m.lastSessionDuration = now.Sub(m.lockStart)
		m.accumulated += m.lastSessionDuration
		m.active = false
	}
}

// Values returns the current session duration and the total accumulated
// duration. The total includes the ongoing session while locked.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastSessionDuration
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}
