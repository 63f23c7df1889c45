package forge

import "context"

// Mock is a mock implementation of Client for testing. Each operation
// records its calls so tests can assert ordering and counts.
type Mock struct {
	LatestReleaseVersionFunc func(ctx context.Context) (string, error)
	OpenPullRequestFunc      func(ctx context.Context, head, base, version string) (int, error)
	MergePullRequestFunc     func(ctx context.Context, number int) error
	PublishReleaseFunc       func(ctx context.Context, version string) error

	LatestReleaseVersionCalls int
	OpenPullRequestCalls      int
	MergePullRequestCalls     int
	PublishReleaseCalls       int

	// Calls records operation names in invocation order.
	Calls []string
}

// LatestReleaseVersion implements Client.
func (m *Mock) LatestReleaseVersion(ctx context.Context) (string, error) {
	m.LatestReleaseVersionCalls++
	m.Calls = append(m.Calls, "latest")
	if m.LatestReleaseVersionFunc != nil {
		return m.LatestReleaseVersionFunc(ctx)
	}
	return InitialVersion, nil
}

// OpenPullRequest implements Client.
func (m *Mock) OpenPullRequest(ctx context.Context, head, base, version string) (int, error) {
	m.OpenPullRequestCalls++
	m.Calls = append(m.Calls, "open")
	if m.OpenPullRequestFunc != nil {
		return m.OpenPullRequestFunc(ctx, head, base, version)
	}
	return 1, nil
}

// MergePullRequest implements Client.
func (m *Mock) MergePullRequest(ctx context.Context, number int) error {
	m.MergePullRequestCalls++
	m.Calls = append(m.Calls, "merge")
	if m.MergePullRequestFunc != nil {
		return m.MergePullRequestFunc(ctx, number)
	}
	return nil
}

// PublishRelease implements Client.
func (m *Mock) PublishRelease(ctx context.Context, version string) error {
	m.PublishReleaseCalls++
	m.Calls = append(m.Calls, "publish")
	if m.PublishReleaseFunc != nil {
		return m.PublishReleaseFunc(ctx, version)
	}
	return nil
}
