package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stemforge/cli/pkg/config"
	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// backendsCmd represents the backends command
var backendsCmd = &cobra.Command{
	Use:          "backends",
	Short:        "List the configured infrastructure backends",
	Long:         "List the backends configured in stemforge.yaml in publication order.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector := cmd.Context().Value(injectorKey).(di.Injector)

		sh, ok := injector.Resolve("shell").(shell.Shell)
		if !ok {
			sh = shell.NewDefaultShell(injector)
			injector.Register("shell", sh)
		}

		handler := config.NewYamlConfigHandler(injector)
		projectRoot, err := sh.GetProjectRoot()
		if err != nil {
			return fmt.Errorf("error retrieving project root: %w", err)
		}
		if err := handler.LoadConfig(filepath.Join(projectRoot, "stemforge.yaml")); err != nil {
			return err
		}

		backends := handler.Backends()
		if len(backends) == 0 {
			cmd.Println("No backends configured")
			return nil
		}

		for _, backend := range backends {
			cmd.Printf("%s\t%s\n", backend.ID, backend.Driver)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
