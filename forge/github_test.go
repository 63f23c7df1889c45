package forge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-github/v57/github"
)

// newTestGitHubClient creates a GitHubClient pointing to a test server.
func newTestGitHubClient(t *testing.T, handler http.Handler) (*GitHubClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)

	client := github.NewClient(nil)
	baseURL := server.URL + "/"
	client.BaseURL, _ = client.BaseURL.Parse(baseURL)

	return &GitHubClient{
		client: client,
		owner:  "testowner",
		repo:   "testrepo",
	}, server
}

func TestNewGitHubClient(t *testing.T) {
	t.Run("valid inputs", func(t *testing.T) {
		c, err := NewGitHubClient("token123", "owner", "repo")
		if err != nil {
			t.Fatalf("NewGitHubClient: %v", err)
		}
		if c.owner != "owner" || c.repo != "repo" {
			t.Errorf("owner/repo = %s/%s", c.owner, c.repo)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if _, err := NewGitHubClient("", "owner", "repo"); err == nil {
			t.Error("expected error for missing token")
		}
	})

	t.Run("missing repo", func(t *testing.T) {
		if _, err := NewGitHubClient("token", "owner", ""); err == nil {
			t.Error("expected error for missing repo")
		}
	})
}

func TestGitHubClient_LatestReleaseVersion(t *testing.T) {
	t.Run("existing release", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]string{"tag_name": "v1.4.2"})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		got, err := client.LatestReleaseVersion(context.Background())
		if err != nil {
			t.Fatalf("LatestReleaseVersion: %v", err)
		}
		if got != "v1.4.2" {
			t.Errorf("version = %q, want v1.4.2", got)
		}
	})

	t.Run("no releases resolves to initial version", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		got, err := client.LatestReleaseVersion(context.Background())
		if err != nil {
			t.Fatalf("LatestReleaseVersion: %v", err)
		}
		if got != InitialVersion {
			t.Errorf("version = %q, want %q", got, InitialVersion)
		}
	})

	t.Run("server error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		if _, err := client.LatestReleaseVersion(context.Background()); err == nil {
			t.Error("expected error for 500 response")
		}
	})
}

func TestGitHubClient_OpenPullRequest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}

			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["title"] != "Release: 1.2.0" {
				t.Errorf("title = %v", body["title"])
			}
			if body["head"] != "dev" || body["base"] != "release" {
				t.Errorf("head/base = %v/%v", body["head"], body["base"])
			}

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]int{"number": 42})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		number, err := client.OpenPullRequest(context.Background(), "dev", "release", "1.2.0")
		if err != nil {
			t.Fatalf("OpenPullRequest: %v", err)
		}
		if number != 42 {
			t.Errorf("number = %d, want 42", number)
		}
	})

	t.Run("duplicate PR", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Validation Failed",
				"errors": []map[string]string{
					{"message": "A pull request already exists for testowner:dev."},
				},
			})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		_, err := client.OpenPullRequest(context.Background(), "dev", "release", "1.2.0")
		if !errors.Is(err, ErrPRExists) {
			t.Errorf("error = %v, want ErrPRExists", err)
		}
	})

	t.Run("other validation failure", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Validation Failed",
				"errors":  []map[string]string{{"message": "No commits between release and dev"}},
			})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		_, err := client.OpenPullRequest(context.Background(), "dev", "release", "1.2.0")
		if err == nil || errors.Is(err, ErrPRExists) {
			t.Errorf("error = %v, want generic failure", err)
		}
	})
}

func TestGitHubClient_MergePullRequest(t *testing.T) {
	t.Run("merged", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("method = %s, want PUT", r.Method)
			}
			if !strings.HasSuffix(r.URL.Path, "/pulls/7/merge") {
				t.Errorf("path = %s", r.URL.Path)
			}

			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["merge_method"] != "squash" {
				t.Errorf("merge_method = %v, want squash", body["merge_method"])
			}

			json.NewEncoder(w).Encode(map[string]any{"merged": true})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		if err := client.MergePullRequest(context.Background(), 7); err != nil {
			t.Fatalf("MergePullRequest: %v", err)
		}
	})

	t.Run("not mergeable", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(map[string]string{"message": "Pull Request is not mergeable"})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		err := client.MergePullRequest(context.Background(), 7)
		if !errors.Is(err, ErrPRNotMergeable) {
			t.Errorf("error = %v, want ErrPRNotMergeable", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		err := client.MergePullRequest(context.Background(), 7)
		if !errors.Is(err, ErrPRNotFound) {
			t.Errorf("error = %v, want ErrPRNotFound", err)
		}
	})
}

func TestGitHubClient_PublishRelease(t *testing.T) {
	t.Run("final release", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["tag_name"] != "v1.2.0" {
				t.Errorf("tag_name = %v, want v1.2.0", body["tag_name"])
			}
			if body["prerelease"] != false {
				t.Errorf("prerelease = %v, want false", body["prerelease"])
			}
			if body["draft"] != false {
				t.Errorf("draft = %v, want false", body["draft"])
			}

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 1})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		if err := client.PublishRelease(context.Background(), "1.2.0"); err != nil {
			t.Fatalf("PublishRelease: %v", err)
		}
	})

	t.Run("prerelease flag and v prefix normalization", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["tag_name"] != "v1.3.0-rc.1" {
				t.Errorf("tag_name = %v, want v1.3.0-rc.1", body["tag_name"])
			}
			if body["prerelease"] != true {
				t.Errorf("prerelease = %v, want true", body["prerelease"])
			}

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 1})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		if err := client.PublishRelease(context.Background(), "v1.3.0-rc.1"); err != nil {
			t.Fatalf("PublishRelease: %v", err)
		}
	})

	t.Run("publish failure", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "tag already exists"})
		})
		client, server := newTestGitHubClient(t, handler)
		defer server.Close()

		if err := client.PublishRelease(context.Background(), "1.2.0"); err == nil {
			t.Error("expected error for 422 response")
		}
	})
}
