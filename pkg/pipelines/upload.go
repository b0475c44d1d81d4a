package pipelines

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stemforge/cli/pkg/catalog"
	"github.com/stemforge/cli/pkg/cloud"
	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/download"
	"github.com/stemforge/cli/pkg/progress"
	"github.com/stemforge/cli/pkg/stemcell"
)

// The UploadPipeline ingests a stemcell archive, validates it, and publishes
// the contained image to every configured backend, recording one catalog entry
// per backend. The whole run is described up front as an ordered step plan;
// the declared step total and the executed steps come from the same slice, so
// the two cannot drift apart. Publication is strictly sequential in backend
// order, with no rollback across backends: a failure partway through leaves
// earlier backends published.

// =============================================================================
// Types
// =============================================================================

// UploadOptions holds the per-run options of a stemcell upload
type UploadOptions struct {
	// Archive is the local path or remote URL of the stemcell archive
	Archive string
	// Remote forces the archive to be treated as a remote locator
	Remote bool
	// SHA1 is the expected digest of a remote archive; empty disables verification
	SHA1 string
	// Fix permits re-publication over an existing catalog entry
	Fix bool
}

// uploadState carries the data flowing between plan steps
type uploadState struct {
	localPath  string
	downloaded bool
	workDir    string
	descriptor *stemcell.Descriptor
	imagePath  string
}

// uploadStep is one trackable unit of work in the step plan
type uploadStep struct {
	description string
	// backendIndex is -1 for steps that are not tied to a backend
	backendIndex int
	run          func() error
}

// publishTarget pairs a configured backend id with its constructed driver
type publishTarget struct {
	id     string
	driver cloud.Driver
}

// UploadPipeline publishes a stemcell archive to all configured backends
type UploadPipeline struct {
	BasePipeline
	downloader download.Downloader
	verifier   stemcell.Verifier
	archive    stemcell.Archive
	store      catalog.Store
	reporter   progress.Reporter
	shims      *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewUploadPipeline creates a new UploadPipeline instance
func NewUploadPipeline() *UploadPipeline {
	return &UploadPipeline{
		BasePipeline: *NewBasePipeline(),
		shims:        NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize resolves the pipeline's collaborators from the injector and loads
// the project configuration.
func (p *UploadPipeline) Initialize(injector di.Injector) error {
	if err := p.BasePipeline.Initialize(injector); err != nil {
		return err
	}
	if err := p.loadConfig(); err != nil {
		return err
	}

	downloader, ok := injector.Resolve("downloader").(download.Downloader)
	if !ok {
		return fmt.Errorf("failed to resolve downloader from injector")
	}
	p.downloader = downloader

	verifier, ok := injector.Resolve("verifier").(stemcell.Verifier)
	if !ok {
		return fmt.Errorf("failed to resolve verifier from injector")
	}
	p.verifier = verifier

	archive, ok := injector.Resolve("archive").(stemcell.Archive)
	if !ok {
		return fmt.Errorf("failed to resolve archive from injector")
	}
	p.archive = archive

	store, ok := injector.Resolve("catalogStore").(catalog.Store)
	if !ok {
		return fmt.Errorf("failed to resolve catalog store from injector")
	}
	p.store = store

	reporter, ok := injector.Resolve("progressReporter").(progress.Reporter)
	if !ok {
		return fmt.Errorf("failed to resolve progress reporter from injector")
	}
	p.reporter = reporter

	if err := p.downloader.Initialize(injector); err != nil {
		return fmt.Errorf("failed to initialize downloader: %w", err)
	}
	if err := p.verifier.Initialize(injector); err != nil {
		return fmt.Errorf("failed to initialize verifier: %w", err)
	}
	if err := p.archive.Initialize(injector); err != nil {
		return fmt.Errorf("failed to initialize archive: %w", err)
	}
	if err := p.store.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize catalog store: %w", err)
	}

	return nil
}

// Execute runs the upload pipeline. The run options are read from context values:
// - "archivePath": local path or remote URL of the stemcell archive
// - "remote": treat the archive as a remote locator
// - "sha1": expected digest for a remote archive
// - "fix": permit re-publication over existing catalog entries
func (p *UploadPipeline) Execute(ctx context.Context) error {
	archivePath, ok := ctx.Value("archivePath").(string)
	if !ok || archivePath == "" {
		return fmt.Errorf("archive path not specified in context")
	}

	opts := UploadOptions{Archive: archivePath}
	if remote, ok := ctx.Value("remote").(bool); ok {
		opts.Remote = remote
	}
	if sha1, ok := ctx.Value("sha1").(string); ok {
		opts.SHA1 = sha1
	}
	if fix, ok := ctx.Value("fix").(bool); ok {
		opts.Fix = fix
	}

	locator, err := p.Upload(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Stemcell published successfully: %s\n", locator)
	return nil
}

// Upload runs the publication workflow and returns the catalog locator of the
// published stemcell (/stemcells/{name}/{version}). Temporary artifacts are
// removed on every exit path; a cleanup failure never masks the workflow error
// but is surfaced when nothing else failed.
func (p *UploadPipeline) Upload(opts UploadOptions) (locator string, retErr error) {
	backends := p.configHandler.Backends()
	targets := make([]publishTarget, len(backends))
	for i, backend := range backends {
		driver, err := p.shims.NewDriver(p.injector, backend)
		if err != nil {
			return "", err
		}
		targets[i] = publishTarget{id: backend.ID, driver: driver}
	}

	remote := opts.Remote || download.IsRemoteLocator(opts.Archive)
	state := &uploadState{localPath: opts.Archive}
	defer p.cleanup(state, &retErr)

	plan := p.buildStepPlan(opts, remote, targets, state)
	p.reporter.BeginStage("Publishing stemcell", len(plan))

	continueOnFailure := p.configHandler.ContinueOnBackendFailure()
	var firstErr error
	skipBackend := -1
	for _, step := range plan {
		if step.backendIndex >= 0 && step.backendIndex == skipBackend {
			continue
		}
		if err := p.reporter.TrackStep(step.description, step.run); err != nil {
			if step.backendIndex >= 0 && continueOnFailure {
				if firstErr == nil {
					firstErr = err
				}
				skipBackend = step.backendIndex
				continue
			}
			return "", err
		}
	}
	if firstErr != nil {
		return "", firstErr
	}

	return fmt.Sprintf("/stemcells/%s/%s", state.descriptor.Name, state.descriptor.Version), nil
}

// =============================================================================
// Private Methods
// =============================================================================

// buildStepPlan derives the ordered list of trackable steps from the run
// configuration. The declared step total is the length of this plan and
// execution iterates the same slice: 2 core steps, plus one for a remote
// fetch, plus one for checksum verification, plus three per backend.
func (p *UploadPipeline) buildStepPlan(opts UploadOptions, remote bool, targets []publishTarget, state *uploadState) []uploadStep {
	var plan []uploadStep

	if remote {
		plan = append(plan, uploadStep{
			description:  "Downloading stemcell archive",
			backendIndex: -1,
			run: func() error {
				return p.fetchArchive(opts.Archive, state)
			},
		})
		if opts.SHA1 != "" {
			plan = append(plan, uploadStep{
				description:  "Verifying stemcell checksum",
				backendIndex: -1,
				run: func() error {
					return p.verifier.Verify(state.localPath, opts.SHA1)
				},
			})
		}
	}

	plan = append(plan, uploadStep{
		description:  "Extracting stemcell archive",
		backendIndex: -1,
		run: func() error {
			workDir, err := p.archive.Extract(state.localPath)
			state.workDir = workDir
			return err
		},
	})

	plan = append(plan, uploadStep{
		description:  "Verifying stemcell manifest",
		backendIndex: -1,
		run: func() error {
			descriptor, err := p.archive.ReadManifest(state.workDir)
			if err != nil {
				return err
			}
			imagePath, err := p.archive.ImagePath(state.workDir)
			if err != nil {
				return err
			}
			state.descriptor = descriptor
			state.imagePath = imagePath
			return nil
		},
	})

	for i, target := range targets {
		var record *catalog.Record

		plan = append(plan, uploadStep{
			description:  fmt.Sprintf("Checking stemcell catalog (%s)", target.id),
			backendIndex: i,
			run: func() error {
				existing, err := p.store.FindByNameVersionBackend(state.descriptor.Name, state.descriptor.Version, target.id)
				switch {
				case err == nil:
					if !opts.Fix {
						return &catalog.DuplicateRecordError{
							Name:      state.descriptor.Name,
							Version:   state.descriptor.Version,
							BackendID: target.id,
						}
					}
					record = existing
				case errors.Is(err, catalog.ErrRecordNotFound):
					record = &catalog.Record{
						Name:            state.descriptor.Name,
						OperatingSystem: state.descriptor.OperatingSystem,
						Version:         state.descriptor.Version,
						SHA1:            state.descriptor.SHA1,
						BackendID:       target.id,
					}
				default:
					return fmt.Errorf("failed to look up stemcell record for backend %s: %w", target.id, err)
				}
				return nil
			},
		})

		plan = append(plan, uploadStep{
			description:  fmt.Sprintf("Creating stemcell image (%s)", target.id),
			backendIndex: i,
			run: func() error {
				imageID, err := target.driver.CreateImage(state.imagePath, state.descriptor.CloudProperties)
				if err != nil {
					return &cloud.ImageCreationError{BackendID: target.id, Err: err}
				}
				record.ImageID = imageID
				return nil
			},
		})

		plan = append(plan, uploadStep{
			description:  fmt.Sprintf("Saving stemcell record (%s)", target.id),
			backendIndex: i,
			run: func() error {
				if err := p.store.Save(record); err != nil {
					return fmt.Errorf("failed to save stemcell record for backend %s: %w", target.id, err)
				}
				return nil
			},
		})
	}

	return plan
}

// fetchArchive materializes a remote archive as a local temporary file with a
// collision-resistant name. The destination is recorded before fetching so a
// partial download is still cleaned up.
func (p *UploadPipeline) fetchArchive(locator string, state *uploadState) error {
	buf := make([]byte, 8)
	if _, err := p.shims.RandRead(buf); err != nil {
		return fmt.Errorf("failed to generate temporary file name: %w", err)
	}
	destPath := filepath.Join(p.shims.TempDir(), fmt.Sprintf("stemforge-archive-%x.tgz", buf))

	state.localPath = destPath
	state.downloaded = true

	if err := p.downloader.Fetch(locator, destPath); err != nil {
		var fetchErr *download.FetchError
		if errors.As(err, &fetchErr) {
			return err
		}
		return &download.FetchError{Locator: locator, Err: err}
	}

	return nil
}

// cleanup removes the extraction directory and any locally materialized copy
// of the archive. It runs exactly once per resource; failures are logged, and
// surfaced only when the workflow itself succeeded.
func (p *UploadPipeline) cleanup(state *uploadState, retErr *error) {
	var cleanupErr error

	if state.workDir != "" {
		if err := p.shims.RemoveAll(state.workDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove extraction directory %s: %v\n", state.workDir, err)
			cleanupErr = err
		}
		state.workDir = ""
	}

	if state.downloaded && state.localPath != "" {
		if err := p.shims.Remove(state.localPath); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove downloaded archive %s: %v\n", state.localPath, err)
			if cleanupErr == nil {
				cleanupErr = err
			}
		}
		state.downloaded = false
	}

	if *retErr == nil && cleanupErr != nil {
		*retErr = fmt.Errorf("cleanup failed: %w", cleanupErr)
	}
}

// Ensure UploadPipeline implements Pipeline interface
var _ Pipeline = (*UploadPipeline)(nil)
