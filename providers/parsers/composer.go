package parsers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dephub/dephub-semver/providers/fetchers"
)

// NewComposerParser constructs Composer lock file parser.
// Development packages are included when includeDev is set.
func NewComposerParser(fetcher fetchers.FileFetcher, includeDev bool) DependencyParser {
	return &ComposerParser{fetcher: fetcher, IncludeDev: includeDev}
}

// ComposerParser represents concrete Composer parser implementation.
type ComposerParser struct {
	fetcher fetchers.FileFetcher
	// IncludeDev adds 'packages-dev' entries to the result.
	IncludeDev bool
}

// ComposerLock represents Composer lock file (composer.lock).
type ComposerLock struct {
	Packages    []Requirement `json:"packages"`
	PackagesDev []Requirement `json:"packages-dev"`
}

// Requirements method returns locked packages versions from composer.lock.
func (c ComposerParser) Requirements(ctx context.Context) ([]Requirement, error) {
	b, err := c.fetcher.FileContent(ctx, "composer.lock")
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to fetch composer dependencies from the source: %w", err)
	}

	var composer ComposerLock
	err = json.Unmarshal(b, &composer)
	if err != nil {
		return nil, fmt.Errorf("unable to parse composer file content: %w", err)
	}

	pkgs := composer.Packages
	if c.IncludeDev {
		pkgs = append(pkgs, composer.PackagesDev...)
	}

	res := make([]Requirement, 0, len(pkgs))
	for _, pkg := range pkgs {
		res = append(res, Requirement{Name: pkg.Name, Version: trimTagPrefix(pkg.Version)})
	}

	return res, nil
}
