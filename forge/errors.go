package forge

import "errors"

// Forge client errors
var (
	// ErrPRExists indicates a pull request is already open for the
	// branch pair. The orchestrator treats this as a clean stop.
	ErrPRExists = errors.New("pull request already exists for this branch pair")

	// ErrPRNotFound indicates the pull request does not exist.
	ErrPRNotFound = errors.New("pull request not found")

	// ErrPRNotMergeable indicates the forge refused the merge
	// (conflict, closed pull request, or branch protection).
	ErrPRNotMergeable = errors.New("pull request cannot be merged")
)
