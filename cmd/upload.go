package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemforge/cli/pkg/catalog"
	"github.com/stemforge/cli/pkg/config"
	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/download"
	"github.com/stemforge/cli/pkg/pipelines"
	"github.com/stemforge/cli/pkg/progress"
	"github.com/stemforge/cli/pkg/shell"
	"github.com/stemforge/cli/pkg/stemcell"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [archive]",
	Short: "Publish a stemcell archive to all configured backends",
	Long: `Publish a stemcell archive to every backend configured in stemforge.yaml.

The archive may be a local path or an http(s) URL. Remote archives are
downloaded to a temporary file first and may be verified against an expected
SHA-1 digest. The archive is extracted, its manifest validated, and the
contained image is published to each backend in configuration order, recording
one catalog entry per backend.

Examples:
  # Publish a local archive
  stemforge upload bosh-stemcell-ubuntu.tgz

  # Publish a remote archive with checksum verification
  stemforge upload https://example.com/stemcells/ubuntu.tgz --sha1 2fb5b5a9f7b54e1f4eab3e6fcbfb580dbdfe8b21

  # Republish over existing catalog entries
  stemforge upload bosh-stemcell-ubuntu.tgz --fix`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector := cmd.Context().Value(injectorKey).(di.Injector)

		registerUploadComponents(injector)

		pipeline := pipelines.NewUploadPipeline()
		if err := pipeline.Initialize(injector); err != nil {
			return fmt.Errorf("failed to initialize upload pipeline: %w", err)
		}

		sha1, _ := cmd.Flags().GetString("sha1")
		fix, _ := cmd.Flags().GetBool("fix")
		remote, _ := cmd.Flags().GetBool("remote")

		ctx := cmd.Context()
		ctx = context.WithValue(ctx, "archivePath", args[0])
		ctx = context.WithValue(ctx, "sha1", sha1)
		ctx = context.WithValue(ctx, "fix", fix)
		ctx = context.WithValue(ctx, "remote", remote)

		return pipeline.Execute(ctx)
	},
}

// registerUploadComponents registers the concrete collaborators of the upload
// pipeline on the injector, honoring any instances registered beforehand
// (tests pre-register mocks under the same names).
func registerUploadComponents(injector di.Injector) {
	if injector.Resolve("shell") == nil {
		sh := shell.NewDefaultShell(injector)
		sh.SetVerbosity(verbose)
		injector.Register("shell", sh)
	}
	if injector.Resolve("configHandler") == nil {
		injector.Register("configHandler", config.NewYamlConfigHandler(injector))
	}
	if injector.Resolve("downloader") == nil {
		injector.Register("downloader", download.NewHTTPDownloader())
	}
	if injector.Resolve("verifier") == nil {
		injector.Register("verifier", stemcell.NewSHA1Verifier())
	}
	if injector.Resolve("archive") == nil {
		injector.Register("archive", stemcell.NewTarArchive())
	}
	if injector.Resolve("catalogStore") == nil {
		injector.Register("catalogStore", catalog.NewYamlStore(injector))
	}
	if injector.Resolve("progressReporter") == nil {
		reporter := progress.NewSpinnerReporter()
		reporter.SetVerbosity(verbose)
		injector.Register("progressReporter", reporter)
	}
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().String("sha1", "", "Expected SHA-1 digest of a remote archive")
	uploadCmd.Flags().Bool("fix", false, "Republish over existing catalog entries")
	uploadCmd.Flags().Bool("remote", false, "Treat the archive argument as a remote locator")
}
