package pixsurf

import (
	"fmt"
	"log/slog"
)

// Lock opens a lock scope on s, its root and all subsurfaces of that root,
// for direct access through Pixels. Lock waits for a running operation
// to finish; from then on every other operation on the root, from any
// goroutine, waits until the matching Unlock brings the count back to zero.
// Calls nest: each Lock needs its own Unlock.
//
// The lock count has a single owner. Code holding a lock must not call
// other operations on the same surface, which would wait for themselves.
func (s *Surface) Lock() {
	sh := s.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.lockMu.Lock()
	sh.locks++
	sh.lockMu.Unlock()
}

// Unlock decrements the lock count. Unlocking a surface whose count is
// already zero returns ErrLockState.
func (s *Surface) Unlock() error {
	sh := s.shared
	sh.lockMu.Lock()
	defer sh.lockMu.Unlock()
	if sh.locks == 0 {
		Logger().Warn("pixsurf: unlock of unlocked surface", slog.Uint64("surface", sh.id))
		return fmt.Errorf("%w: surface is not locked", ErrLockState)
	}
	sh.locks--
	if sh.locks == 0 {
		sh.unlocked.Broadcast()
	}
	return nil
}

// IsLocked reports whether the lock count is positive.
func (s *Surface) IsLocked() bool {
	return s.shared.held()
}

// LockCount returns the current lock count.
func (s *Surface) LockCount() int {
	s.shared.lockMu.Lock()
	defer s.shared.lockMu.Unlock()
	return s.shared.locks
}

// Pixels returns the raw pixel memory of s, starting at its first pixel.
// Row y begins at byte y*Pitch(). The surface must be locked, and the
// slice must not be used after the matching Unlock.
func (s *Surface) Pixels() ([]byte, error) {
	if !s.IsLocked() {
		return nil, fmt.Errorf("%w: Pixels requires a locked surface", ErrLockState)
	}
	return s.buf.Data()[s.buf.Offset():], nil
}
