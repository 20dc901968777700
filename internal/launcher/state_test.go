package launcher

import "testing"

func TestState_RightWrapsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := NewState(n)
			for i := 0; i < start; i++ {
				s.Next()
			}
			for i := 0; i < n; i++ {
				s.Next()
			}
			if s.Selected() != start {
				t.Errorf("n=%d start=%d: after %d rights got %d", n, start, n, s.Selected())
			}
		}
	}
}

func TestState_LeftFromZeroIsLast(t *testing.T) {
	for n := 1; n <= 7; n++ {
		s := NewState(n)
		s.Prev()
		if s.Selected() != n-1 {
			t.Errorf("n=%d: left from 0 = %d, want %d", n, s.Selected(), n-1)
		}
	}
}

func TestState_FourEntryScenario(t *testing.T) {
	s := NewState(4)
	for i := 0; i < 4; i++ {
		s.Next()
	}
	if s.Selected() != 0 {
		t.Fatalf("after 4 rights = %d, want 0", s.Selected())
	}
	s.Prev()
	if s.Selected() != 3 {
		t.Fatalf("after left = %d, want 3", s.Selected())
	}
}

func TestState_StopIsTerminal(t *testing.T) {
	s := NewState(3)
	if !s.Running() {
		t.Fatal("new state should be running")
	}
	s.Stop()
	s.Next()
	if s.Running() {
		t.Fatal("stopped state must stay stopped")
	}
}
