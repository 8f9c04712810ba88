package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner animates a bubbles spinner on out (usually stderr) while a slow
// call such as an LLM request is running. It does not need a tea.Program.
type Spinner struct {
	out    io.Writer
	frames spinner.Spinner
	label  string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSpinner creates a stopped spinner showing label after the frame.
func NewSpinner(out io.Writer, label string) *Spinner {
	return &Spinner{out: out, frames: spinner.MiniDot, label: label}
}

// Start begins drawing. Calling Start on a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

func (s *Spinner) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.frames.FPS)
	defer ticker.Stop()

	for i := 0; ; i++ {
		frame := s.frames.Frames[i%len(s.frames.Frames)]
		fmt.Fprintf(s.out, "\r%s%s", StylePrimary.Render(frame), s.label)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop waits for the drawing goroutine to exit and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}

	cancel()
	<-done
	fmt.Fprint(s.out, "\r\033[K")
}
