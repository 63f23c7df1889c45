package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/xanzy/go-gitlab"

	"github.com/randalmurphal/shipflow/version"
)

// GitLabClient implements Client for GitLab repositories, mapping the
// pull-request operations onto merge requests.
type GitLabClient struct {
	client    *gitlab.Client
	projectID string // Numeric ID or "namespace/project"
}

// NewGitLabClient creates a new GitLab forge client.
// token is a personal access token.
// baseURL is the GitLab instance URL (empty for gitlab.com).
// projectID can be a numeric ID or "namespace/project" path.
func NewGitLabClient(token, baseURL, projectID string) (*GitLabClient, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	if projectID == "" {
		return nil, fmt.Errorf("project ID is required")
	}

	var client *gitlab.Client
	var err error

	if baseURL != "" {
		client, err = gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	} else {
		client, err = gitlab.NewClient(token)
	}
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabClient{
		client:    client,
		projectID: projectID,
	}, nil
}

// LatestReleaseVersion fetches the tag of the most recent release.
func (c *GitLabClient) LatestReleaseVersion(ctx context.Context) (string, error) {
	opts := &gitlab.ListReleasesOptions{
		ListOptions: gitlab.ListOptions{PerPage: 1},
	}

	releases, resp, err := c.client.Releases.ListReleases(c.projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return InitialVersion, nil
		}
		return "", fmt.Errorf("list releases: %w", err)
	}
	if len(releases) == 0 {
		return InitialVersion, nil
	}
	return releases[0].TagName, nil
}

// OpenPullRequest opens a release merge request from head into base.
func (c *GitLabClient) OpenPullRequest(ctx context.Context, head, base, version string) (int, error) {
	mrOpts := &gitlab.CreateMergeRequestOptions{
		Title:        gitlab.Ptr(PRTitle(version)),
		Description:  gitlab.Ptr(PRBody(version)),
		SourceBranch: gitlab.Ptr(head),
		TargetBranch: gitlab.Ptr(base),
	}

	mr, resp, err := c.client.MergeRequests.CreateMergeRequest(c.projectID, mrOpts, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return 0, ErrPRExists
		}
		if strings.Contains(err.Error(), "already exists") {
			return 0, ErrPRExists
		}
		return 0, fmt.Errorf("create MR: %w", err)
	}

	return mr.IID, nil
}

// MergePullRequest squash-merges the merge request.
func (c *GitLabClient) MergePullRequest(ctx context.Context, number int) error {
	opts := &gitlab.AcceptMergeRequestOptions{
		Squash: gitlab.Ptr(true),
	}

	_, resp, err := c.client.MergeRequests.AcceptMergeRequest(c.projectID, number, opts, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("merge MR !%d: %w", number, ErrPRNotFound)
			case http.StatusMethodNotAllowed, http.StatusConflict:
				return fmt.Errorf("merge MR !%d: %w: %v", number, ErrPRNotMergeable, err)
			}
		}
		return fmt.Errorf("merge MR !%d: %w", number, err)
	}
	return nil
}

// PublishRelease creates a release tagged "v<version>".
func (c *GitLabClient) PublishRelease(ctx context.Context, ver string) error {
	tag := "v" + version.Canonical(ver)

	opts := &gitlab.CreateReleaseOptions{
		Name:        gitlab.Ptr("Release " + tag),
		TagName:     gitlab.Ptr(tag),
		Description: gitlab.Ptr(PRBody(tag)),
	}

	_, _, err := c.client.Releases.CreateRelease(c.projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create release %s: %w", tag, err)
	}
	return nil
}
