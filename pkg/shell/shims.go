package shell

import (
	"os"
	"os/exec"
)

// The Shims provides mockable wrappers around system and process operations.
// It serves as a testing aid by allowing process execution and filesystem
// lookups to be intercepted without spawning real commands.

// =============================================================================
// Types
// =============================================================================

// Shims provides mockable wrappers around system and process operations
type Shims struct {
	Getwd           func() (string, error)
	Stat            func(name string) (os.FileInfo, error)
	Command         func(name string, arg ...string) *exec.Cmd
	CmdRun          func(cmd *exec.Cmd) error
	CmdStart        func(cmd *exec.Cmd) error
	CmdWait         func(cmd *exec.Cmd) error
	ProcessExitCode func(ps *os.ProcessState) int
}

// =============================================================================
// Helpers
// =============================================================================

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		Getwd:   os.Getwd,
		Stat:    os.Stat,
		Command: exec.Command,
		CmdRun: func(cmd *exec.Cmd) error {
			return cmd.Run()
		},
		CmdStart: func(cmd *exec.Cmd) error {
			return cmd.Start()
		},
		CmdWait: func(cmd *exec.Cmd) error {
			return cmd.Wait()
		},
		ProcessExitCode: func(ps *os.ProcessState) int {
			return ps.ExitCode()
		},
	}
}
