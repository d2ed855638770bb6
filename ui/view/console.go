package view

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ConsoleView is a minimal text sink for presenter output. It prints the
// pointer status line whenever it changes and retains the latest session
// values for shutdown reporting.
type ConsoleView struct {
	mu         sync.Mutex
	w          io.Writer
	lastStatus string
	session    time.Duration
	total      time.Duration
}

func NewConsoleView(w io.Writer) *ConsoleView {
	return &ConsoleView{w: w}
}

// SetStatusLine prints the status line when it differs from the previous
// one.
func (v *ConsoleView) SetStatusLine(s string) {
	if v == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if s == v.lastStatus {
		return
	}
	v.lastStatus = s
	fmt.Fprintln(v.w, s)
}

// SetSession retains the latest lock-session durations.
func (v *ConsoleView) SetSession(session, total time.Duration) {
	if v == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session = session
	v.total = total
}

// Session returns the last reported lock-session durations.
func (v *ConsoleView) Session() (session, total time.Duration) {
	if v == nil {
		return 0, 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session, v.total
}
