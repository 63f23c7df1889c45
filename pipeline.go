package shipflow

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/randalmurphal/shipflow/version"
)

// DefaultMetadataFile is the library descriptor the metadata gate
// requires in the working tree.
const DefaultMetadataFile = "library.properties"

// DefaultLintCommand is the style checker invoked by the style gate.
const DefaultLintCommand = "arduino-lint"

// Pipeline runs the release-gating checks in a fixed order: version
// ordering, metadata presence, code style. The first hard failure
// stops the pipeline; later gates do not run. A pre-release candidate
// is a logged warning, not a failure.
type Pipeline struct {
	// WorkDir is the root of the working tree under validation.
	WorkDir string

	// MetadataFile is the descriptor checked by the metadata gate.
	// Defaults to DefaultMetadataFile.
	MetadataFile string

	// LintMode is passed to the style checker's --library-manager flag.
	LintMode string

	// Runner executes the style checker. Defaults to ExecRunner.
	Runner CommandRunner
}

// NewPipeline creates a pipeline over the working tree rooted at dir.
func NewPipeline(dir, lintMode string) *Pipeline {
	return &Pipeline{
		WorkDir:      dir,
		MetadataFile: DefaultMetadataFile,
		LintMode:     lintMode,
		Runner:       NewExecRunner(),
	}
}

// Run gates the candidate release. It returns nil when every check
// passes (warnings included) or the first failing check's error.
func (p *Pipeline) Run(candidate, baseline string) error {
	if err := p.checkVersion(candidate, baseline); err != nil {
		return err
	}
	if err := p.checkMetadata(); err != nil {
		return err
	}
	return p.checkStyle()
}

// checkVersion requires the candidate to strictly exceed the baseline.
// Malformed input surfaces as a wrapped version.ErrInvalid.
func (p *Pipeline) checkVersion(candidate, baseline string) error {
	result, err := version.Compare(candidate, baseline)
	if err != nil {
		return err
	}

	if result.CandidatePrerelease {
		slog.Warn("candidate version is a pre-release", "version", candidate)
	}

	if !result.CandidateNewer {
		return fmt.Errorf("%w: %q is not greater than %q", ErrVersionNotAdvanced, candidate, baseline)
	}

	slog.Info("version validation passed", "baseline", baseline, "candidate", candidate)
	return nil
}

func (p *Pipeline) checkMetadata() error {
	name := p.MetadataFile
	if name == "" {
		name = DefaultMetadataFile
	}

	if _, err := os.Stat(filepath.Join(p.WorkDir, name)); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingMetadata, name)
	}

	slog.Info("metadata validation passed", "file", name)
	return nil
}

func (p *Pipeline) checkStyle() error {
	runner := p.Runner
	if runner == nil {
		runner = NewExecRunner()
	}

	output, err := runner.Run(p.WorkDir, DefaultLintCommand, "--library-manager", p.LintMode)
	if err != nil {
		// CommandError carries the linter's diagnostic output.
		return fmt.Errorf("%w: %v", ErrStyleViolation, err)
	}

	if output != "" {
		slog.Info("style validation passed", "output", output)
	} else {
		slog.Info("style validation passed")
	}
	return nil
}
