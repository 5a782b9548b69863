package sim

// EventKind identifies a tick-scoped event queue.
type EventKind int

const (
	EventCollision EventKind = iota // A projectile destroyed an adversary
	EventShot                       // The actor fired

	eventKindCount
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventShot:
		return "shot"
	default:
		return "unknown"
	}
}

// EventBus holds one zero-payload queue per event kind.
//
// Producers Emit markers during a tick; a consumer checks Pending or Drain
// and reacts once regardless of how many markers arrived. Reset runs at the
// end of every tick, so nothing carries over to the next one.
type EventBus struct {
	counts [eventKindCount]int
}

// Emit appends one marker of kind k.
func (b *EventBus) Emit(k EventKind) {
	if k < 0 || k >= eventKindCount {
		return
	}
	b.counts[k]++
}

// Pending returns the number of unconsumed markers of kind k.
func (b *EventBus) Pending(k EventKind) int {
	if k < 0 || k >= eventKindCount {
		return 0
	}
	return b.counts[k]
}

// Drain returns the number of markers of kind k and clears that queue.
func (b *EventBus) Drain(k EventKind) int {
	n := b.Pending(k)
	if n > 0 {
		b.counts[k] = 0
	}
	return n
}

// Reset clears every queue.
func (b *EventBus) Reset() {
	b.counts = [eventKindCount]int{}
}
