package parsers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dephub/dephub-semver/providers/fetchers"
	"github.com/google/go-github/v33/github"
)

// NewGitHubReleasesParser constructs parser for a saved GitHub releases listing
// (the JSON body of 'GET /repos/{owner}/{repo}/releases').
// All releases are reported under the 'name' package.
// If 'filename' parameter is an empty string - 'releases.json' will be used instead.
func NewGitHubReleasesParser(fetcher fetchers.FileFetcher, name, filename string) DependencyParser {
	if filename == "" {
		filename = "releases.json"
	}
	return &GitHubReleasesParser{fetcher: fetcher, Name: name, SourceName: filename}
}

// GitHubReleasesParser reads release tags from a GitHub releases listing.
type GitHubReleasesParser struct {
	fetcher fetchers.FileFetcher
	// Name is the package name the releases belong to.
	Name string
	// SourceName is the source filename (e.g. 'releases.json')
	SourceName string
}

// Requirements method returns one entry per published release, drafts are skipped.
func (c GitHubReleasesParser) Requirements(ctx context.Context) ([]Requirement, error) {
	b, err := c.fetcher.FileContent(ctx, c.SourceName)
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to fetch releases from the source: %w", err)
	}

	var releases []*github.RepositoryRelease
	if err = json.Unmarshal(b, &releases); err != nil {
		return nil, fmt.Errorf("unable to parse releases file content: %w", err)
	}

	res := make([]Requirement, 0, len(releases))
	for _, rel := range releases {
		if rel.GetDraft() || rel.GetTagName() == "" {
			continue
		}
		res = append(res, Requirement{Name: c.Name, Version: trimTagPrefix(rel.GetTagName())})
	}

	return res, nil
}
