package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// SpinnerSink reports deployment progress on stderr with a spinner
type SpinnerSink struct {
	out     io.Writer
	spinner *spinner.Spinner
	stage   string
	started time.Time
}

// NewSpinnerSink creates a spinner-based progress sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkTo(os.Stderr)
}

// NewSpinnerSinkTo creates a spinner-based progress sink writing to out
func NewSpinnerSinkTo(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{out: out, spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.completeStage()
	r.stage = event.Stage
	r.started = time.Now()

	switch event.Stage {
	case usecase.StageCompleted:
		r.spinner.Stop()
		r.stage = ""
		return
	case usecase.StageDeploying:
		// Deploy can block on a confirmation prompt; a spinner would redraw over it
		r.spinner.Stop()
		color.New(color.FgYellow).Fprintf(r.out, "● %s\n", event.Message)
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error ends the current stage as failed. The spinner stays stopped.
func (r *SpinnerSink) Error(message string) {
	r.spinner.Stop()
	r.stage = ""
	color.New(color.FgRed).Fprintf(r.out, "✗ %s\n", message)
}

// pause stops the spinner while fn writes, then restarts it
func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// completeStage prints a check mark for a finished resolve step
func (r *SpinnerSink) completeStage() {
	if r.stage != usecase.StageResolving {
		return
	}
	r.spinner.Stop()
	color.New(color.FgGreen).Fprintf(r.out, "✓%s (%s)\n", r.spinner.Suffix, time.Since(r.started).Round(time.Millisecond))
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
