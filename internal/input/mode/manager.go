package mode

import "fmt"

// Manager tracks the current mode and coordinates mode transitions.
// It is not safe for concurrent use.
type Manager struct {
	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a manager in Search mode.
func NewManager() *Manager {
	return &Manager{current: Search}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// IsMode returns true if the current mode is mode.
func (m *Manager) IsMode(mode Mode) bool {
	return m.current == mode
}

// Switch changes to mode and notifies callbacks.
// Switching to the current mode does nothing and reports false.
func (m *Manager) Switch(mode Mode) (bool, error) {
	if !mode.Valid() {
		return false, fmt.Errorf("unknown mode: %s", mode)
	}
	if mode == m.current {
		return false, nil
	}

	from := m.current
	m.current = mode

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, mode)
		}
	}
	return true, nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
