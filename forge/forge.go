package forge

import (
	"context"
	"fmt"
)

// InitialVersion is the baseline reported when a repository has no
// published releases yet. A first tag always exceeds it, so the version
// gate passes for a repository's first-ever release.
const InitialVersion = "0.0.0"

// Client is the interface for the forge operations a release needs.
// Implementations exist for GitHub and GitLab.
type Client interface {
	// LatestReleaseVersion returns the tag of the most recent published
	// release, or InitialVersion when the repository has none.
	LatestReleaseVersion(ctx context.Context) (string, error)

	// OpenPullRequest opens a release pull request from head into base
	// and returns its number. Returns ErrPRExists when the forge
	// reports a pull request already open for this branch pair.
	OpenPullRequest(ctx context.Context, head, base, version string) (int, error)

	// MergePullRequest squash-merges the pull request.
	MergePullRequest(ctx context.Context, number int) error

	// PublishRelease creates a release tagged "v<version>", marked
	// pre-release when the version carries a pre-release label.
	PublishRelease(ctx context.Context, version string) error
}

// PRTitle is the generated title for a release pull request.
func PRTitle(version string) string {
	return fmt.Sprintf("Release: %s", version)
}

// PRBody is the generated body for a release pull request or release.
func PRBody(version string) string {
	return fmt.Sprintf("Automated release for version %s.", version)
}
