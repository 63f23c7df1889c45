package shipflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/shipflow/forge"
)

// State identifies where an orchestration run is in its lifecycle.
type State string

const (
	StateStart      State = "start"
	StateValidating State = "validating"
	StateMerging    State = "merging"
	StatePublishing State = "publishing"
	StateDone       State = "done"
	StateAborted    State = "aborted"
)

// Outcome is the terminal result of one orchestration run.
type Outcome struct {
	// State is StateDone on success or clean stop, StateAborted on
	// any failure.
	State State

	// Skipped is true for clean no-ops: non-tag pushes, unsupported
	// event kinds, and a pre-existing release pull request.
	Skipped bool

	// Reason describes a skip or abort in human terms.
	Reason string
}

// Orchestrator drives one release attempt through validation, merge,
// and publish. It holds no state between runs; the forge is the system
// of record. Failures abort the run immediately with no rollback of
// steps already completed.
type Orchestrator struct {
	Client   forge.Client
	Pipeline *Pipeline
	Input    Input
}

// Run dispatches on the trigger event kind and executes the matching
// release path. Unknown event kinds complete cleanly with a warning.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	switch o.Input.Event {
	case EventPullRequest:
		return o.handlePullRequest(ctx)
	case EventPush:
		return o.handleTagPush(ctx)
	default:
		slog.Warn("unsupported event kind, skipping", "event", string(o.Input.Event))
		return Outcome{State: StateDone, Skipped: true, Reason: "unsupported event kind"}, nil
	}
}

// handlePullRequest validates the versions attached to a release pull
// request, then merges it and publishes the release.
func (o *Orchestrator) handlePullRequest(ctx context.Context) (Outcome, error) {
	in := o.Input
	slog.Info("handling pull request trigger", "pr", in.PullRequestNumber)

	if in.CandidateVersion == "" || in.BaselineVersion == "" || in.PullRequestNumber == 0 {
		return o.abort(fmt.Errorf("%w: candidate version, baseline version, and pull request number are required", ErrMissingParameters))
	}

	if err := o.validate(in.CandidateVersion, in.BaselineVersion); err != nil {
		return o.abort(err)
	}

	return o.mergeAndPublish(ctx, in.PullRequestNumber, in.CandidateVersion)
}

// handleTagPush turns a pushed tag into a full promotion: resolve the
// baseline from the forge, validate, open the release pull request,
// merge it, publish. Non-tag pushes are a clean no-op.
func (o *Orchestrator) handleTagPush(ctx context.Context) (Outcome, error) {
	in := o.Input

	tag, ok := in.TagName()
	if !ok {
		slog.Info("push is not a tag push, skipping", "ref", in.Ref)
		return Outcome{State: StateDone, Skipped: true, Reason: "ref is not a tag"}, nil
	}
	slog.Info("handling tag push trigger", "tag", tag)

	baseline, err := o.Client.LatestReleaseVersion(ctx)
	if err != nil {
		return o.abort(err)
	}
	slog.Info("resolved baseline release", "baseline", baseline, "branch", in.TargetBranch)

	if err := o.validate(tag, baseline); err != nil {
		return o.abort(err)
	}

	slog.Info("opening release pull request", "head", in.SourceBranch, "base", in.TargetBranch)
	number, err := o.Client.OpenPullRequest(ctx, in.SourceBranch, in.TargetBranch, tag)
	if err != nil {
		if errors.Is(err, forge.ErrPRExists) {
			// Deliberate clean stop: the existing pull request is not
			// looked up or resumed.
			slog.Warn("release pull request already exists, stopping", "head", in.SourceBranch, "base", in.TargetBranch)
			return Outcome{State: StateDone, Skipped: true, Reason: "pull request already exists"}, nil
		}
		return o.abort(fmt.Errorf("%w: %v", ErrPRCreateFailed, err))
	}
	slog.Info("created release pull request", "pr", number)

	return o.mergeAndPublish(ctx, number, tag)
}

func (o *Orchestrator) validate(candidate, baseline string) error {
	slog.Info("validating release", "state", string(StateValidating))
	return o.Pipeline.Run(candidate, baseline)
}

// mergeAndPublish is the shared tail of both trigger paths. Once the
// merge succeeds there is no rollback; a publish failure leaves the
// merged pull request in place and aborts.
func (o *Orchestrator) mergeAndPublish(ctx context.Context, number int, version string) (Outcome, error) {
	slog.Info("merging release pull request", "state", string(StateMerging), "pr", number)
	if err := o.Client.MergePullRequest(ctx, number); err != nil {
		return o.abort(fmt.Errorf("%w: %v", ErrMergeFailed, err))
	}

	slog.Info("publishing release", "state", string(StatePublishing), "version", version)
	if err := o.Client.PublishRelease(ctx, version); err != nil {
		return o.abort(fmt.Errorf("%w: %v", ErrPublishFailed, err))
	}

	slog.Info("release complete", "version", version)
	return Outcome{State: StateDone}, nil
}

func (o *Orchestrator) abort(err error) (Outcome, error) {
	return Outcome{State: StateAborted, Reason: err.Error()}, err
}
