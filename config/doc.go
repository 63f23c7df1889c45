// Package config resolves one run's trigger input and forge settings.
//
// Configuration is layered with clear precedence:
//  1. Environment variables (highest priority)
//  2. Local config (.shipflow.yaml in the working tree)
//  3. Built-in defaults (lowest priority)
//
// The environment variable names follow the invoking CI environment
// (GITHUB_EVENT_NAME, GITHUB_REF, INPUT_SOURCE-BRANCH, ...), so the
// binary drops into a forge workflow without extra glue. Everything is
// resolved once at process start into an immutable Config; core logic
// never reads the environment itself.
//
// # Basic Usage
//
//	cfg, err := config.Load(".")
//	if err != nil { ... }
//	client, err := cfg.NewForgeClient()
package config
