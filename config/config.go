package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/shipflow"
	"github.com/randalmurphal/shipflow/forge"
)

// FileName is the optional repo-local configuration file.
const FileName = ".shipflow.yaml"

// Forge identifiers accepted in configuration.
const (
	ForgeGitHub = "github"
	ForgeGitLab = "gitlab"
)

// Config is the resolved process configuration: the trigger input plus
// forge credentials and validation settings. It is built once by Load
// and treated as immutable afterwards.
type Config struct {
	// Input carries the trigger parameters handed to the orchestrator.
	Input shipflow.Input

	// Token authenticates against the forge API.
	Token string

	// Repository is "owner/repo" (GitHub) or "namespace/project"
	// (GitLab).
	Repository string

	// Forge selects the client implementation. Defaults to GitHub.
	Forge string

	// GitLabURL is the instance URL for self-hosted GitLab; empty for
	// gitlab.com.
	GitLabURL string

	// MetadataFile is the library descriptor the pipeline requires.
	MetadataFile string

	// WorkDir is the working tree under validation.
	WorkDir string
}

// fileConfig mirrors the .shipflow.yaml layout.
type fileConfig struct {
	Forge        string `yaml:"forge"`
	Repository   string `yaml:"repository"`
	GitLabURL    string `yaml:"gitlab_url"`
	SourceBranch string `yaml:"source_branch"`
	TargetBranch string `yaml:"target_branch"`
	LintMode     string `yaml:"lint_mode"`
	MetadataFile string `yaml:"metadata_file"`
}

// Load resolves configuration for the working tree at dir. Values from
// the process environment override the optional .shipflow.yaml, which
// overrides built-in defaults.
func Load(dir string) (*Config, error) {
	return load(dir, os.Getenv)
}

// load is Load with an injectable environment for testing.
func load(dir string, getenv func(string) string) (*Config, error) {
	fc := fileConfig{
		Forge:        ForgeGitHub,
		LintMode:     "update",
		MetadataFile: shipflow.DefaultMetadataFile,
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", FileName, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	cfg := &Config{
		Token:        getenv("GITHUB_TOKEN"),
		Repository:   overlay(getenv("GITHUB_REPOSITORY"), fc.Repository),
		Forge:        overlay(getenv("SHIPFLOW_FORGE"), fc.Forge),
		GitLabURL:    overlay(getenv("CI_SERVER_URL"), fc.GitLabURL),
		MetadataFile: fc.MetadataFile,
		WorkDir:      dir,
	}

	if cfg.Forge == ForgeGitLab && getenv("GITLAB_TOKEN") != "" {
		cfg.Token = getenv("GITLAB_TOKEN")
	}

	// PR_NUMBER is left zero when absent or malformed; the
	// orchestrator rejects the run with a missing-parameters abort.
	prNumber, _ := strconv.Atoi(getenv("PR_NUMBER"))

	cfg.Input = shipflow.Input{
		Event:             shipflow.EventKind(getenv("GITHUB_EVENT_NAME")),
		CandidateVersion:  getenv("pr_version"),
		BaselineVersion:   getenv("main_version"),
		PullRequestNumber: prNumber,
		Ref:               getenv("GITHUB_REF"),
		SourceBranch:      overlay(getenv("INPUT_SOURCE-BRANCH"), fc.SourceBranch),
		TargetBranch:      overlay(getenv("INPUT_TARGET-BRANCH"), fc.TargetBranch),
		LintMode:          overlay(getenv("INPUT_LINT-MODE"), fc.LintMode),
	}

	return cfg, nil
}

// overlay returns env when set, otherwise the file/default value.
func overlay(env, fallback string) string {
	if env != "" {
		return env
	}
	return fallback
}

// NewForgeClient builds the forge client this configuration selects.
func (c *Config) NewForgeClient() (forge.Client, error) {
	switch c.Forge {
	case ForgeGitLab:
		return forge.NewGitLabClient(c.Token, c.GitLabURL, c.Repository)
	case ForgeGitHub, "":
		owner, repo, ok := strings.Cut(c.Repository, "/")
		if !ok {
			return nil, fmt.Errorf("repository %q is not in owner/repo form", c.Repository)
		}
		return forge.NewGitHubClient(c.Token, owner, repo)
	default:
		return nil, fmt.Errorf("unknown forge %q", c.Forge)
	}
}

// NewPipeline builds the validation pipeline this configuration
// describes.
func (c *Config) NewPipeline() *shipflow.Pipeline {
	p := shipflow.NewPipeline(c.WorkDir, c.Input.LintMode)
	p.MetadataFile = c.MetadataFile
	return p
}
