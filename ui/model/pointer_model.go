package model

// PointerModel holds the last sampled pointer position and its formatted
// status line. No synchronization needed: updates occur on the poll tick.
type PointerModel struct {
	x, y  int
	line  string
	valid bool
}

func NewPointerModel() *PointerModel { return &PointerModel{} }

// Set stores a pointer sample and its rendered status line.
func (m *PointerModel) Set(x, y int, line string) {
	if m == nil {
		return
	}
	m.x, m.y, m.line, m.valid = x, y, line, true
}

// Position returns the last pointer sample, if any.
func (m *PointerModel) Position() (int, int, bool) {
	if m == nil {
		return 0, 0, false
	}
	return m.x, m.y, m.valid
}

// StatusLine returns the last rendered status line (empty before the first
// sample).
func (m *PointerModel) StatusLine() string {
	if m == nil {
		return ""
	}
	return m.line
}
