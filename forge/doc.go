// Package forge provides the release operations shipflow needs from a
// hosted git forge.
//
// Core types:
//   - Client: Interface over the four forge operations a release needs
//   - GitHubClient: GitHub implementation using go-github
//   - GitLabClient: GitLab implementation using go-gitlab
//   - Mock: Func-field mock with call counters for testing
//
// Every operation is a single blocking round trip. Transport and HTTP
// failures are translated into errors the orchestrator can classify;
// the one non-error special case is a duplicate pull request, reported
// as ErrPRExists.
//
// Example usage:
//
//	client, _ := forge.NewGitHubClient(token, "owner", "repo")
//	baseline, err := client.LatestReleaseVersion(ctx)
package forge
