package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/stemforge/cli/pkg/di"
)

// The Shell package is a unified interface for external process execution.
// It provides command execution with captured output for the archive extraction
// tool and the exec-based cloud drivers, plus project root discovery used to
// locate stemforge.yaml and the on-disk catalog.

// =============================================================================
// Constants
// =============================================================================

// maxFolderSearchDepth is the maximum depth to search for the project root
const maxFolderSearchDepth = 10

// =============================================================================
// Types
// =============================================================================

// Shell is the interface that defines shell operations.
type Shell interface {
	Initialize() error
	SetVerbosity(verbose bool)
	GetProjectRoot() (string, error)
	Exec(command string, args ...string) (string, error)
	ExecSilent(command string, args ...string) (string, error)
	ExecCombined(command string, args ...string) (string, int, error)
}

// DefaultShell is the default implementation of the Shell interface
type DefaultShell struct {
	Shell
	projectRoot string
	injector    di.Injector
	verbose     bool
	shims       *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewDefaultShell creates a new instance of DefaultShell
func NewDefaultShell(injector di.Injector) *DefaultShell {
	return &DefaultShell{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize initializes the shell
func (s *DefaultShell) Initialize() error {
	return nil
}

// SetVerbosity sets the verbosity flag
func (s *DefaultShell) SetVerbosity(verbose bool) {
	s.verbose = verbose
}

// GetProjectRoot finds the project root. It checks for a cached root first.
// If not found, it looks for "stemforge.yaml" or "stemforge.yml" in the current
// directory and its parents up to a maximum depth. Returns the starting directory if not found.
func (s *DefaultShell) GetProjectRoot() (string, error) {
	if s.projectRoot != "" {
		return s.projectRoot, nil
	}

	originalDir, err := s.shims.Getwd()
	if err != nil {
		return "", err
	}

	currentDir := originalDir
	depth := 0
	for {
		if depth > maxFolderSearchDepth {
			return originalDir, nil
		}

		stemforgeYaml := filepath.Join(currentDir, "stemforge.yaml")
		stemforgeYml := filepath.Join(currentDir, "stemforge.yml")

		if _, err := s.shims.Stat(stemforgeYaml); err == nil {
			s.projectRoot = currentDir
			return s.projectRoot, nil
		}
		if _, err := s.shims.Stat(stemforgeYml); err == nil {
			s.projectRoot = currentDir
			return s.projectRoot, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return originalDir, nil
		}
		currentDir = parentDir
		depth++
	}
}

// Exec runs a command with args, capturing stdout and stderr. It prints output and returns stdout as a string.
func (s *DefaultShell) Exec(command string, args ...string) (string, error) {
	cmd := s.shims.Command(command, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)
	if err := s.shims.CmdStart(cmd); err != nil {
		return stdoutBuf.String(), fmt.Errorf("command start failed: %w", err)
	}
	if err := s.shims.CmdWait(cmd); err != nil {
		return stdoutBuf.String(), fmt.Errorf("command execution failed: %w", err)
	}
	return stdoutBuf.String(), nil
}

// ExecSilent is a method that runs a command quietly, capturing its output.
// It returns the command's stdout as a string and any error encountered.
func (s *DefaultShell) ExecSilent(command string, args ...string) (string, error) {
	if s.verbose {
		return s.Exec(command, args...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := s.shims.Command(command, args...)
	if cmd == nil {
		return "", fmt.Errorf("failed to create command")
	}

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := s.shims.CmdRun(cmd); err != nil {
		return stdoutBuf.String(), fmt.Errorf("command execution failed: %w\n%s", err, stderrBuf.String())
	}

	return stdoutBuf.String(), nil
}

// ExecCombined runs a command capturing stdout and stderr interleaved, and reports
// the process exit status alongside the output. The output is returned on failure
// as well, so callers can attach it to their own diagnostics.
func (s *DefaultShell) ExecCombined(command string, args ...string) (string, int, error) {
	var combinedBuf bytes.Buffer
	cmd := s.shims.Command(command, args...)
	if cmd == nil {
		return "", -1, fmt.Errorf("failed to create command")
	}

	cmd.Stdout = &combinedBuf
	cmd.Stderr = &combinedBuf

	if err := s.shims.CmdRun(cmd); err != nil {
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = s.shims.ProcessExitCode(cmd.ProcessState)
		}
		return combinedBuf.String(), exitCode, fmt.Errorf("command execution failed: %w", err)
	}

	return combinedBuf.String(), 0, nil
}

// Ensure DefaultShell implements Shell interface
var _ Shell = (*DefaultShell)(nil)
