package notify

import (
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultLifetime is how long a notice stays up when no lifetime is configured.
const DefaultLifetime = 3 * time.Second

type Notice struct {
	Seq      uint64
	Kind     Kind
	Message  string
	PostedAt time.Time
}

// Board holds at most one active notice. Posting replaces whatever is
// showing; each post gets a new sequence number so a timer armed for an
// older notice cannot retire a newer one.
type Board struct {
	current  *Notice
	seq      uint64
	lifetime time.Duration
	now      func() time.Time
}

func NewBoard(lifetime time.Duration) *Board {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Board{lifetime: lifetime, now: time.Now}
}

// WithClock replaces the board's time source. Intended for tests.
func (b *Board) WithClock(clock func() time.Time) *Board {
	b.now = clock
	return b
}

func (b *Board) Lifetime() time.Duration {
	return b.lifetime
}

func (b *Board) Post(kind Kind, message string) Notice {
	b.seq++
	n := Notice{Seq: b.seq, Kind: kind, Message: message, PostedAt: b.now()}
	b.current = &n
	return n
}

// Current returns the active notice. A notice past its lifetime is retired
// here even if no timer fired for it.
func (b *Board) Current() (Notice, bool) {
	if b.current == nil {
		return Notice{}, false
	}
	if !b.now().Before(b.current.PostedAt.Add(b.lifetime)) {
		b.current = nil
		return Notice{}, false
	}
	return *b.current, true
}

// Retire removes the notice with the given sequence number if it is still
// the active one. It reports whether anything was removed.
func (b *Board) Retire(seq uint64) bool {
	if b.current == nil || b.current.Seq != seq {
		return false
	}
	b.current = nil
	return true
}
