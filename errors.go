package shipflow

import "errors"

// Release gating errors
var (
	// ErrVersionNotAdvanced indicates the candidate version does not
	// strictly exceed the baseline.
	ErrVersionNotAdvanced = errors.New("candidate version does not exceed baseline")

	// ErrMissingMetadata indicates the library descriptor file is
	// absent from the working tree.
	ErrMissingMetadata = errors.New("library metadata file is missing")

	// ErrStyleViolation indicates the style checker reported problems.
	ErrStyleViolation = errors.New("code style validation failed")
)

// Orchestration errors
var (
	// ErrMissingParameters indicates required trigger parameters were
	// not supplied for the pull-request path.
	ErrMissingParameters = errors.New("missing required trigger parameters")

	// ErrPRCreateFailed indicates the release pull request could not
	// be opened, other than the already-exists case.
	ErrPRCreateFailed = errors.New("failed to create release pull request")

	// ErrMergeFailed indicates the forge refused or failed the merge.
	ErrMergeFailed = errors.New("failed to merge release pull request")

	// ErrPublishFailed indicates the release could not be published.
	ErrPublishFailed = errors.New("failed to publish release")
)
