package state

// AppState contains the container page's own state. The selection and the
// display cursor are owned by the selector, not stored here.
type AppState struct {
	// UI state
	Width         int
	Height        int
	PresetIndex   int    // highlighted row in the preset list
	StatusMessage string // status bar message
	StatusIsError bool
	InPagerMode   bool // an external pager owns the terminal

	// Exit state
	Finished bool // user pressed q; print the result
	Aborted  bool // user pressed ctrl+c; print nothing
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus sets an informational status message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError sets an error status message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// MovePresetIndex moves the preset highlight by delta, wrapping within count rows
func (s *AppState) MovePresetIndex(delta, count int) {
	if count <= 0 {
		s.PresetIndex = 0
		return
	}
	s.PresetIndex = ((s.PresetIndex+delta)%count + count) % count
}
