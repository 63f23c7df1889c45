package shipflow

import "strings"

// EventKind identifies the trigger event that starts an orchestration
// run.
type EventKind string

const (
	// EventPullRequest fires when a release pull request is updated.
	EventPullRequest EventKind = "pull_request"

	// EventPush fires on a push; only tag pushes start a release.
	EventPush EventKind = "push"
)

// tagRefPrefix marks a pushed ref as a tag reference.
const tagRefPrefix = "refs/tags/"

// Input carries one run's trigger parameters and branch configuration.
// It is built once at process start and passed in whole; core logic
// never reads the environment directly.
type Input struct {
	// Event selects the orchestration entry path.
	Event EventKind

	// Pull-request trigger parameters.
	CandidateVersion  string
	BaselineVersion   string
	PullRequestNumber int

	// Ref is the pushed git reference (tag-push trigger).
	Ref string

	// SourceBranch is the development branch releases are cut from.
	SourceBranch string

	// TargetBranch is the release branch promotions land on.
	TargetBranch string

	// LintMode selects the style checker's library-manager mode.
	LintMode string
}

// TagName extracts the tag name from the pushed ref. ok is false when
// the ref is not a tag reference.
func (in Input) TagName() (tag string, ok bool) {
	return strings.CutPrefix(in.Ref, tagRefPrefix)
}
