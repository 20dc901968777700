package process

import (
	"errors"
	"os/exec"
	"time"
)

// Handle is the only reference the launcher keeps to a started child.
// Nothing in the frame loop waits on it; callers that care about the
// outcome can block on Done or Wait.
type Handle struct {
	ID        string
	Argv      []string
	PID       int
	StartedAt time.Time

	done     chan struct{}
	err      error
	exitCode int
}

func newHandle(id string, argv []string, cmd *exec.Cmd) *Handle {
	return &Handle{
		ID:        id,
		Argv:      argv,
		PID:       cmd.Process.Pid,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
		exitCode:  -1,
	}
}

// reap waits for the child so it never lingers as a zombie.
func (h *Handle) reap(cmd *exec.Cmd) {
	err := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		h.exitCode = 0
	case errors.As(err, &exitErr):
		h.exitCode = exitErr.ExitCode()
		h.err = err
	default:
		h.err = err
	}
	close(h.done)
}

// Done is closed once the child has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the child exits and returns its exit error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// ExitCode is -1 while the child is running or if it was killed by a signal.
func (h *Handle) ExitCode() int {
	select {
	case <-h.done:
		return h.exitCode
	default:
		return -1
	}
}
