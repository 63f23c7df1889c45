package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/randalmurphal/shipflow/version"
)

// GitHubClient implements Client for GitHub repositories.
type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubClient creates a new GitHub forge client.
// token is a personal access token or GitHub App token.
// owner and repo identify the repository (e.g., "randalmurphal", "shipflow").
func NewGitHubClient(token, owner, repo string) (*GitHubClient, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	return &GitHubClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// LatestReleaseVersion fetches the latest published release tag.
// A 404 means the repository has no releases yet and resolves to
// InitialVersion rather than an error.
func (c *GitHubClient) LatestReleaseVersion(ctx context.Context) (string, error) {
	release, resp, err := c.client.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return InitialVersion, nil
		}
		return "", fmt.Errorf("get latest release: %w", err)
	}
	return release.GetTagName(), nil
}

// OpenPullRequest opens a release PR from head into base.
func (c *GitHubClient) OpenPullRequest(ctx context.Context, head, base, version string) (int, error) {
	newPR := &github.NewPullRequest{
		Title: github.String(PRTitle(version)),
		Body:  github.String(PRBody(version)),
		Head:  github.String(head),
		Base:  github.String(base),
	}

	pr, resp, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, newPR)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			if strings.Contains(err.Error(), "A pull request already exists") {
				return 0, ErrPRExists
			}
		}
		return 0, fmt.Errorf("create PR: %w", err)
	}

	return pr.GetNumber(), nil
}

// MergePullRequest squash-merges the pull request.
func (c *GitHubClient) MergePullRequest(ctx context.Context, number int) error {
	opts := &github.PullRequestOptions{MergeMethod: "squash"}

	_, resp, err := c.client.PullRequests.Merge(ctx, c.owner, c.repo, number, "", opts)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("merge PR #%d: %w", number, ErrPRNotFound)
			case http.StatusMethodNotAllowed, http.StatusConflict:
				return fmt.Errorf("merge PR #%d: %w: %v", number, ErrPRNotMergeable, err)
			}
		}
		return fmt.Errorf("merge PR #%d: %w", number, err)
	}
	return nil
}

// PublishRelease creates a release tagged "v<version>".
func (c *GitHubClient) PublishRelease(ctx context.Context, ver string) error {
	tag := "v" + version.Canonical(ver)

	release := &github.RepositoryRelease{
		TagName:    github.String(tag),
		Name:       github.String("Release " + tag),
		Body:       github.String(PRBody(tag)),
		Draft:      github.Bool(false),
		Prerelease: github.Bool(version.IsPrerelease(ver)),
	}

	_, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, release)
	if err != nil {
		return fmt.Errorf("create release %s: %w", tag, err)
	}
	return nil
}
