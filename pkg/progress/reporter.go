package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// The progress package reports trackable units of work to the terminal.
// A stage declares its total step count up front; every step is then reported
// through TrackStep, which brackets the work with a spinner and prints the
// step outcome. The Reporter interface is what the publication workflow
// depends on; tests substitute a recording mock.

// =============================================================================
// Types
// =============================================================================

// Reporter defines the interface for stage and step progress reporting
type Reporter interface {
	BeginStage(title string, totalSteps int)
	TrackStep(description string, fn func() error) error
}

// SpinnerReporter implements the Reporter interface using a terminal spinner
type SpinnerReporter struct {
	verbose bool
	title   string
	total   int
	current int
}

// =============================================================================
// Constructor
// =============================================================================

// NewSpinnerReporter creates a new SpinnerReporter instance
func NewSpinnerReporter() *SpinnerReporter {
	return &SpinnerReporter{}
}

// =============================================================================
// Public Methods
// =============================================================================

// SetVerbosity switches from spinner animation to plain step lines
func (r *SpinnerReporter) SetVerbosity(verbose bool) {
	r.verbose = verbose
}

// BeginStage declares a new stage and its total step count
func (r *SpinnerReporter) BeginStage(title string, totalSteps int) {
	r.title = title
	r.total = totalSteps
	r.current = 0
	fmt.Fprintf(os.Stderr, "%s (%d steps)\n", title, totalSteps)
}

// TrackStep reports one unit of work. The step is counted when it starts; its
// outcome is printed when fn returns, and fn's error is passed through.
func (r *SpinnerReporter) TrackStep(description string, fn func() error) error {
	r.current++
	label := fmt.Sprintf("(%d/%d) %s", r.current, r.total, description)

	if r.verbose {
		fmt.Fprintln(os.Stderr, label)
		err := fn()
		r.printOutcome(label, err)
		return err
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithColor("green"), spinner.WithWriter(os.Stderr))
	spin.Suffix = " " + label
	spin.Start()

	err := fn()

	spin.Stop()
	r.printOutcome(label, err)
	return err
}

// =============================================================================
// Private Methods
// =============================================================================

// printOutcome prints the step result line
func (r *SpinnerReporter) printOutcome(label string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s - \033[31mFailed\033[0m\n", label)
		return
	}
	fmt.Fprintf(os.Stderr, "\033[32m✔\033[0m %s - \033[32mDone\033[0m\n", label)
}

// Ensure SpinnerReporter implements Reporter interface
var _ Reporter = (*SpinnerReporter)(nil)
