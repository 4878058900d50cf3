package dephub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/dephub/dephub-semver/providers/versioneer"
	"golang.org/x/sync/errgroup"
)

// UpdatesChecker represents checkers interface.
type UpdatesChecker interface {
	// LastUpdates returns the newest available release for every locked dependency that has one.
	LastUpdates(ctx context.Context, locked []Requirement, opts CheckOptions) ([]Update, error)
}

// CheckOptions tune LastUpdates.
type CheckOptions struct {
	// IncludePrerelease allows prerelease versions as update candidates.
	// Locked prerelease versions always consider prerelease candidates.
	IncludePrerelease bool
	// Concurrency limits parallel release lookups, runtime.NumCPU() when <= 0.
	Concurrency int
}

// Update represents one package update.
type Update struct {
	Name           string `json:"name" yaml:"name"`
	Version        string `json:"version" yaml:"version"`
	CurrentVersion string `json:"current_version" yaml:"current_version"`
	// Major is set when the update changes the major version.
	Major bool `json:"major" yaml:"major"`
	// Prerelease is set when the update is a prerelease version.
	Prerelease bool `json:"prerelease" yaml:"prerelease"`
}

// NewUpdatesChecker constructs new ReleaseUpdatesChecker.
// A nil logger discards all output.
func NewUpdatesChecker(provider ReleaseProvider, logger *log.Logger) UpdatesChecker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ReleaseUpdatesChecker{provider: provider, logger: logger}
}

// ReleaseUpdatesChecker compares locked versions against releases from a ReleaseProvider.
type ReleaseUpdatesChecker struct {
	provider ReleaseProvider
	logger   *log.Logger
}

// LastUpdates returns the newest available release for every locked dependency that has one.
//
// Packages unknown to the provider are skipped. The result keeps the order of locked.
func (uc ReleaseUpdatesChecker) LastUpdates(ctx context.Context, locked []Requirement, opts CheckOptions) ([]Update, error) {
	if len(locked) == 0 {
		return nil, fmt.Errorf("no packages provided")
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	found := make([]*Update, len(locked))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, pkg := range locked {
		g.Go(func() error {
			releases, err := uc.provider.Releases(gctx, pkg.Name)
			if err != nil {
				if errors.Is(err, ErrPackageNotFound) {
					uc.logger.Debug("no releases known", "package", pkg.Name)
					return nil
				}
				return fmt.Errorf("unable to get %q releases: %w", pkg.Name, err)
			}

			includePre := opts.IncludePrerelease || pkg.Version.IsPrerelease()
			latest, ok := versioneer.Latest(releases, includePre)
			if !ok || !pkg.Version.Precedes(latest) {
				uc.logger.Debug("up to date", "package", pkg.Name, "version", pkg.Version)
				return nil
			}

			uc.logger.Debug("update available", "package", pkg.Name, "current", pkg.Version, "latest", latest)
			found[i] = &Update{
				Name:           pkg.Name,
				Version:        latest.String(),
				CurrentVersion: pkg.Version.String(),
				Major:          latest.Major() > pkg.Version.Major(),
				Prerelease:     latest.IsPrerelease(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]Update, 0, len(locked))
	for _, u := range found {
		if u != nil {
			result = append(result, *u)
		}
	}
	return result, nil
}
