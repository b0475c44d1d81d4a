package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stemforge/cli/pkg/di"
)

// =============================================================================
// Test Setup
// =============================================================================

// executeCommand runs the root command with the given args against an injector
// pre-populated by the test, returning the combined command output.
func executeCommand(t *testing.T, injector di.Injector, args ...string) (string, error) {
	t.Helper()

	ctx := context.WithValue(context.Background(), injectorKey, injector)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	// Cobra only copies the root context onto a subcommand whose own context
	// is still nil, so after the first execution in this process a subcommand
	// would keep serving the previous run's context. Set the fresh context on
	// every subcommand so each invocation sees this run's injector.
	for _, sub := range rootCmd.Commands() {
		sub.SetContext(ctx)
	}

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}
