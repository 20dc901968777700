package logger

import (
	"bytes"
	"io"
	"sync"
)

// HeldWriter passes writes through to its target except while held, when
// they are buffered until Release. It keeps log lines off a terminal that
// a full-screen backend currently owns.
type HeldWriter struct {
	mu   sync.Mutex
	out  io.Writer
	buf  bytes.Buffer
	held bool
}

func NewHeldWriter(out io.Writer) *HeldWriter {
	return &HeldWriter{out: out}
}

func (h *HeldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.held {
		return h.buf.Write(p)
	}
	return h.out.Write(p)
}

// Hold starts buffering.
func (h *HeldWriter) Hold() {
	h.mu.Lock()
	h.held = true
	h.mu.Unlock()
}

// Release writes everything buffered since Hold and resumes pass-through.
// Safe to call when not held.
func (h *HeldWriter) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.held = false
	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.out.Write(h.buf.Bytes())
	h.buf.Reset()
	return err
}
