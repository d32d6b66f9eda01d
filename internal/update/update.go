// Package update checks GitHub releases for a newer cardkit build and
// replaces the running binary.
package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub slug releases are published under.
const Repo = "stefanclaw/cardkit"

// Result holds the outcome of an update check or apply.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	Applied         bool
}

// Summary returns a one-line, human-readable description of r.
func (r *Result) Summary() string {
	switch {
	case r.Applied:
		return fmt.Sprintf("Updated to v%s. Restart cardkit to use the new version.", r.LatestVersion)
	case r.UpdateAvailable:
		return fmt.Sprintf("Update available: v%s → v%s. Run /update to upgrade.", r.CurrentVersion, r.LatestVersion)
	default:
		return "Already running the latest version."
	}
}

// IsRelease reports whether version is a release build that can be updated.
func IsRelease(version string) bool {
	return version != "" && version != "dev"
}

// newer reports whether latest should replace current. A current version
// that is not valid semver (e.g. "dev") is older than any release.
func newer(current, latest string) bool {
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	cv, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	return lv.GreaterThan(cv)
}

func detect(ctx context.Context) (*selfupdate.Updater, *selfupdate.Release, bool, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, nil, false, fmt.Errorf("creating github source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source: source,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
	})
	if err != nil {
		return nil, nil, false, fmt.Errorf("creating updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, nil, false, fmt.Errorf("checking for updates: %w", err)
	}
	return updater, latest, found, nil
}

// Check queries GitHub for the latest release and reports whether an update
// is available. It does not download or replace anything.
func Check(ctx context.Context, currentVersion string) (*Result, error) {
	_, latest, found, err := detect(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{CurrentVersion: currentVersion}
	if found {
		res.LatestVersion = latest.Version()
		res.UpdateAvailable = newer(currentVersion, res.LatestVersion)
	}
	return res, nil
}

// Apply downloads and installs the latest release, replacing the current
// binary in-place.
func Apply(ctx context.Context, currentVersion string) (*Result, error) {
	updater, latest, found, err := detect(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{CurrentVersion: currentVersion}
	if !found {
		return res, nil
	}
	res.LatestVersion = latest.Version()
	if !newer(currentVersion, res.LatestVersion) {
		return res, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("finding executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}

	res.UpdateAvailable = true
	res.Applied = true
	return res, nil
}
