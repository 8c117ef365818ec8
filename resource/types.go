package resource

// Handle stands in for a Go value wherever the host stores a void*.
// The low 32 bits are a 1-based slot, the high bits the slot's generation,
// so a handle whose slot was freed and reused no longer resolves.
// Handle 0 is reserved and always invalid.
type Handle uintptr

const slotBits = 32

func makeHandle(slot uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<slotBits | uint64(slot))
}

func (h Handle) slot() uint32 {
	return uint32(uint64(h))
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> slotBits)
}

// Kind tags what a stored value is for, so a handle handed back by the
// host for one purpose is not misread as another.
type Kind uint32

const (
	KindAny Kind = iota
	KindWrapped
	KindExternal
	KindInstanceData
	KindCallback
	KindFinalizeHint
)

var kindNames = [...]string{"any", "wrapped", "external", "instance-data", "callback", "finalize-hint"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind"
}

// EventType is a resource lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventBorrowed
	EventBorrowReturned
)

// Event represents a resource lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage for resources.
type Backend interface {
	// Create stores a value and returns a handle.
	Create(kind Kind, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Drop removes a value and returns it. It fails while the value is
	// borrowed.
	Drop(handle Handle) (any, bool)

	// Close releases all resources held by the backend.
	Close() error
}

// Dropper is optionally implemented by values that need cleanup when
// their handle is removed.
type Dropper interface {
	Drop()
}
