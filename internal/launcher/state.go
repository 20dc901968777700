package launcher

// State is the selection cursor plus the running flag. Only the loop
// mutates it, once per drained event.
type State struct {
	count    int
	selected int
	running  bool
}

func NewState(count int) State {
	return State{count: count, running: true}
}

func (s *State) Selected() int { return s.selected }
func (s *State) Running() bool { return s.running }

func (s *State) Next() {
	if s.count == 0 {
		return
	}
	s.selected = (s.selected + 1) % s.count
}

// Prev wraps from the first entry to the last.
func (s *State) Prev() {
	if s.count == 0 {
		return
	}
	s.selected = ((s.selected-1)%s.count + s.count) % s.count
}

// Stop is terminal; a stopped state never runs again.
func (s *State) Stop() {
	s.running = false
}
