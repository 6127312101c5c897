package clip

// ClipStack manages nested rectangular clip regions with push/pop
// operations. Each pushed region is intersected with the current one, so
// the active clip never grows while entries are on the stack.
type ClipStack struct {
	entries []Rect
	bounds  Rect
}

// NewClipStack creates a new clip stack with the given bounds.
// The bounds represent the maximum clipping area (typically the surface size).
func NewClipStack(bounds Rect) *ClipStack {
	return &ClipStack{
		entries: make([]Rect, 0, 4),
		bounds:  bounds,
	}
}

// PushRect saves the current bounds and narrows them to r.
func (cs *ClipStack) PushRect(r Rect) {
	cs.entries = append(cs.entries, cs.bounds)
	cs.bounds = cs.bounds.Intersect(r)
}

// Pop restores the bounds active before the last PushRect.
// Returns false if the stack is empty.
func (cs *ClipStack) Pop() bool {
	if len(cs.entries) == 0 {
		return false
	}
	cs.bounds = cs.entries[len(cs.entries)-1]
	cs.entries = cs.entries[:len(cs.entries)-1]
	return true
}

// Bounds returns the active clip bounds.
func (cs *ClipStack) Bounds() Rect {
	return cs.bounds
}

// Reset drops every saved entry and sets new bounds.
func (cs *ClipStack) Reset(bounds Rect) {
	cs.entries = cs.entries[:0]
	cs.bounds = bounds
}

// Set replaces the active bounds and keeps the saved entries.
func (cs *ClipStack) Set(bounds Rect) {
	cs.bounds = bounds
}
