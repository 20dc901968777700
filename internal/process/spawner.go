package process

import (
	"fmt"
	"os/exec"

	"console-launcher/internal/logger"

	"github.com/google/uuid"
)

// Detached starts children in their own session with no stdio attached.
type Detached struct {
	logger logger.Logger
	dir    string
}

func NewDetached(log logger.Logger) *Detached {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Detached{logger: log}
}

// WithDir sets the working directory used for launched children.
func (d *Detached) WithDir(dir string) *Detached {
	d.dir = dir
	return d
}

// Spawn starts argv and returns immediately. The child outlives the
// launcher; its exit is only recorded on the returned handle.
func (d *Detached) Spawn(argv []string) (*Handle, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = d.dir
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	h := newHandle("launch_"+uuid.New().String()[:8], argv, cmd)
	go func() {
		h.reap(cmd)
		d.logger.Debug("Process", "child exited", map[string]interface{}{
			"launch_id": h.ID,
			"pid":       h.PID,
			"exit_code": h.exitCode,
		})
	}()

	return h, nil
}
