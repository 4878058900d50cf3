package dephub

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dephub/dephub-semver/providers/versioneer"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrPackageNotFound is returned by a ReleaseProvider for a package it has no releases for.
	ErrPackageNotFound = errors.New("package not found")
)

// ReleaseProvider returns the known releases of a package.
type ReleaseProvider interface {
	// Releases returns package versions ordered by ascending precedence,
	// ErrPackageNotFound when the package is unknown.
	Releases(ctx context.Context, name string) ([]versioneer.Version, error)
}

// Catalog holds available releases per package, ordered by precedence.
// It is read-only once built and safe for concurrent use.
type Catalog struct {
	releases map[string][]versioneer.Version
}

// NewCatalog groups releases by package name and sorts every group by precedence.
func NewCatalog(releases []Requirement) *Catalog {
	c := &Catalog{releases: make(map[string][]versioneer.Version)}
	for _, rel := range releases {
		c.releases[rel.Name] = append(c.releases[rel.Name], rel.Version)
	}
	for _, vs := range c.releases {
		versioneer.Sort(vs)
	}
	return c
}

// LoadCatalog reads every source concurrently and merges them into one Catalog.
func LoadCatalog(ctx context.Context, src DependencySource, specs ...SourceSpec) (*Catalog, error) {
	loaded := make([][]Requirement, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			reqs, err := src.Requirements(gctx, spec.Type, &spec.Options)
			if err != nil {
				return fmt.Errorf("unable to load %s releases: %w", spec.Type, err)
			}
			loaded[i] = reqs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Requirement
	for _, reqs := range loaded {
		all = append(all, reqs...)
	}
	return NewCatalog(all), nil
}

// Names returns package names in alphabetical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.releases))
	for name := range c.releases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions returns a copy of the package releases, nil for an unknown package.
func (c *Catalog) Versions(name string) []versioneer.Version {
	vs, ok := c.releases[name]
	if !ok {
		return nil
	}
	res := make([]versioneer.Version, len(vs))
	copy(res, vs)
	return res
}

// Latest returns the highest release of the package.
// Prereleases are only considered when includePrerelease is set.
func (c *Catalog) Latest(name string, includePrerelease bool) (versioneer.Version, bool) {
	return versioneer.Latest(c.releases[name], includePrerelease)
}

// Releases implements ReleaseProvider.
func (c *Catalog) Releases(ctx context.Context, name string) ([]versioneer.Version, error) {
	vs := c.Versions(name)
	if vs == nil {
		return nil, ErrPackageNotFound
	}
	return vs, nil
}
