package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/stemforge/cli/pkg/di"
)

// The cmd package wires the stemforge commands. A single injector is created
// per invocation and handed to commands through the command context; commands
// register concrete components on it and hand it to their pipeline.

// contextKey is the type used for context values set by Execute
type contextKey string

// injectorKey is the context key under which the injector is stored
const injectorKey contextKey = "injector"

// verbose is the persistent verbosity flag
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "stemforge",
	Short:        "Publish VM images to configured infrastructure backends",
	Long:         "Stemforge ingests stemcell archives, validates them, and publishes the contained VM image to every backend configured in stemforge.yaml.",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	injector := di.NewInjector()
	ctx := context.WithValue(context.Background(), injectorKey, injector)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
