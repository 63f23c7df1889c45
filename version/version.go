// Package version wraps semantic-version comparison for release gating.
//
// Core functions:
//   - Compare: total-order comparison of two version strings
//   - IsPrerelease: reports whether a version carries a pre-release label
//
// Version strings may carry a leading "v" prefix; it is stripped before
// parsing. Malformed input yields an error wrapping ErrInvalid rather
// than a panic, so callers can translate it into their own taxonomy.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalid indicates a string is not a valid semantic version.
var ErrInvalid = errors.New("invalid semantic version")

// Result describes how a candidate version relates to a baseline.
type Result struct {
	// CandidateNewer is true when the candidate strictly exceeds the
	// baseline under semver precedence.
	CandidateNewer bool

	// CandidatePrerelease is true when the candidate carries a
	// pre-release label (e.g. "1.3.0-rc.1").
	CandidatePrerelease bool
}

// Compare parses both version strings and orders candidate against
// baseline using standard semver precedence. Pre-release versions order
// before their corresponding final release.
func Compare(candidate, baseline string) (Result, error) {
	candV, err := parse(candidate)
	if err != nil {
		return Result{}, err
	}
	baseV, err := parse(baseline)
	if err != nil {
		return Result{}, err
	}

	return Result{
		CandidateNewer:      candV.GreaterThan(baseV),
		CandidatePrerelease: candV.Prerelease() != "",
	}, nil
}

// IsPrerelease reports whether the version string carries a pre-release
// label. Returns false for malformed input; callers that need to reject
// malformed versions should use Compare first.
func IsPrerelease(v string) bool {
	parsed, err := parse(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() != ""
}

// Canonical returns the version with any leading "v" stripped.
func Canonical(v string) string {
	return strings.TrimPrefix(v, "v")
}

func parse(v string) (*semver.Version, error) {
	parsed, err := semver.StrictNewVersion(Canonical(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalid, v, err)
	}
	return parsed, nil
}
