package markov

import "errors"

var (
	// ErrInvalidWindowSize is returned when a Window is constructed with a
	// capacity below one.
	ErrInvalidWindowSize = errors.New("markov: window capacity must be at least 1")
	// ErrEmptySource is returned when a Window is constructed from an empty slice.
	ErrEmptySource = errors.New("markov: cannot create window from an empty slice")
)

// Window is a fixed-capacity cyclic buffer of tokens. Writes at any logical
// index land on slot `index mod capacity`, so the buffer always holds the
// last `capacity` tokens written with increasing indices. Slots start out as
// empty strings; callers that read before `capacity` writes have happened
// get those placeholders back.
type Window struct {
	slots []string
}

// NewWindow returns a Window with the given capacity. Capacities below one
// fail with ErrInvalidWindowSize.
func NewWindow(capacity int) (*Window, error) {
	if capacity < 1 {
		return nil, ErrInvalidWindowSize
	}
	return &Window{slots: make([]string, capacity)}, nil
}

// WindowFrom returns a Window whose slots are a copy of values. An empty
// slice fails with ErrEmptySource.
func WindowFrom(values []string) (*Window, error) {
	if len(values) == 0 {
		return nil, ErrEmptySource
	}
	slots := make([]string, len(values))
	copy(slots, values)
	return &Window{slots: slots}, nil
}

// Cap returns the fixed capacity of the window.
func (w *Window) Cap() int {
	return len(w.slots)
}

// index maps a logical index onto a slot in [0, capacity). Negative indices
// are first normalized by repeated addition of the capacity.
func (w *Window) index(i int) int {
	for i < 0 {
		i += len(w.slots)
	}
	return i % len(w.slots)
}

// Set stores value at logical index i, overwriting the previous occupant of
// the slot.
func (w *Window) Set(i int, value string) {
	w.slots[w.index(i)] = value
}

// At returns the value stored at logical index i.
func (w *Window) At(i int) string {
	return w.slots[w.index(i)]
}

// Snapshot returns all slots as a new slice, starting at logical index
// offset and proceeding through the buffer in increasing modular order,
// wrapping around once. Writing tokens at indices 0..n-1 and snapshotting at
// offset n reconstructs the last `capacity` tokens oldest-to-newest.
func (w *Window) Snapshot(offset int) []string {
	out := make([]string, len(w.slots))
	for i := range w.slots {
		out[i] = w.slots[w.index(offset+i)]
	}
	return out
}
