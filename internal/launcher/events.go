package launcher

type EventKind int

const (
	EventNone EventKind = iota
	EventClose
	EventRight
	EventLeft
	EventConfirm
	EventQuitKey
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventRight:
		return "right"
	case EventLeft:
		return "left"
	case EventConfirm:
		return "confirm"
	case EventQuitKey:
		return "quit-key"
	default:
		return "none"
	}
}

type Event struct {
	Kind EventKind
}

// Queue carries input from the toolkit goroutine to the frame loop.
type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push never blocks; it reports false when the queue is full and the
// event was dropped. Close events are retried on a full queue by
// discarding the oldest pending event.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
	}
	if ev.Kind != EventClose {
		return false
	}
	select {
	case <-q.ch:
	default:
	}
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Pop returns the next pending event without waiting.
func (q *Queue) Pop() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

func (q *Queue) Len() int {
	return len(q.ch)
}
