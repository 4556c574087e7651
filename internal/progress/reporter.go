package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter shows that a request is in flight. It has no notion of how far
// along the request is.
type Reporter interface {
	Start(message string)
	Finish(message string)
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter writing to stderr otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: os.Stderr}
	}
	return NewTerminalReporter(os.Stderr)
}

// TerminalReporter displays a spinner until Finish is called.
type TerminalReporter struct {
	w        io.Writer
	interval time.Duration

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	stop chan struct{}
	done chan struct{}
}

// NewTerminalReporter creates a spinner writing to w.
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w, interval: 100 * time.Millisecond}
}

func (r *TerminalReporter) Start(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		return
	}

	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionClearOnFinish(),
	)
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.spin(r.bar, r.stop, r.done)
}

// spin advances the spinner; progressbar only redraws on Add.
func (r *TerminalReporter) spin(bar *progressbar.ProgressBar, stop, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			_ = bar.Add(1)
		}
	}
}

func (r *TerminalReporter) Finish(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		return
	}

	close(r.stop)
	<-r.done
	_ = r.bar.Finish()
	r.bar = nil
	if message != "" {
		fmt.Fprintln(r.w, message)
	}
}

// CIReporter prints line-by-line status suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	start time.Time
}

// NewCIReporter creates a CIReporter writing to w.
func NewCIReporter(w io.Writer) *CIReporter {
	return &CIReporter{w: w}
}

func (r *CIReporter) Start(message string) {
	r.start = time.Now()
	fmt.Fprintln(r.w, message)
}

func (r *CIReporter) Finish(message string) {
	if message == "" {
		message = "Done"
	}
	fmt.Fprintf(r.w, "%s (%s)\n", message, time.Since(r.start).Round(time.Millisecond))
}
