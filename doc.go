// Package shipflow automates promotion of a library from a development
// branch to a release branch on a hosted git forge.
//
// One orchestration run is started by a trigger event, either a
// pull-request update or a tag push. The run validates the proposed
// release (version ordering, library metadata, code style) and then
// performs the release side effects exactly once: squash-merge the
// release pull request and publish a tagged release.
//
// The package is organized into subpackages by domain:
//
//   - version: Semantic-version comparison for release gating
//   - forge: Forge client implementations for GitHub and GitLab
//   - config: Trigger input resolution from environment and file
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/shipflow"
//	    "github.com/randalmurphal/shipflow/forge"
//	)
//
//	client, _ := forge.NewGitHubClient(token, "owner", "repo")
//	orch := &shipflow.Orchestrator{
//	    Client:   client,
//	    Pipeline: shipflow.NewPipeline(".", "update"),
//	    Input:    input,
//	}
//	outcome, err := orch.Run(ctx)
//
// See individual package documentation for detailed usage.
package shipflow
