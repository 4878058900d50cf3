/*
Package dephub provides convinient api for reading dependency versions and checking them for updates.

Usage:

	src := dephub.NewDirSource("./project")
	locked, err := src.Requirements(ctx, dephub.ComposerType, nil)
	...
	catalog, err := dephub.LoadCatalog(ctx, src, releaseSpecs...)
	...
	updates, err := dephub.NewUpdatesChecker(catalog, logger).LastUpdates(ctx, locked, dephub.CheckOptions{})
*/
package dephub

import (
	"context"
	"fmt"
	"strings"

	"github.com/dephub/dephub-semver/providers/fetchers"
	"github.com/dephub/dephub-semver/providers/parsers"
	"github.com/dephub/dephub-semver/providers/versioneer"
)

// DepType represents dependency source file type flag.
type DepType string

// Available source file types
const (
	// ComposerType represents PHP's Composer lock file (composer.lock).
	ComposerType = DepType("composer")
	// TextType represents plain text versions list (versions.txt).
	TextType = DepType("text")
	// ManifestType represents YAML or TOML versions manifest (versions.yaml).
	ManifestType = DepType("manifest")
	// GitHubReleasesType represents saved GitHub releases listing (releases.json).
	GitHubReleasesType = DepType("github-releases")
)

// DepTypes lists every supported DepType.
var DepTypes = []DepType{ComposerType, TextType, ManifestType, GitHubReleasesType}

// ParseDepType converts a flag value into DepType.
func ParseDepType(s string) (DepType, error) {
	for _, typ := range DepTypes {
		if string(typ) == s {
			return typ, nil
		}
	}
	return "", fmt.Errorf("unsupported source type %q", s)
}

// Requirement represents one dependency with a parsed version.
type Requirement struct {
	Name    string             `json:"name" yaml:"name"`
	Version versioneer.Version `json:"version" yaml:"version"`
}

// ParserOptions tune how a source file is read. A nil *ParserOptions means defaults.
type ParserOptions struct {
	// Filename overrides the default file name of the source type.
	Filename string
	// Package names the package a GitHub releases listing belongs to.
	Package string
	// IncludeDev adds Composer development packages.
	IncludeDev bool
	// SkipInvalid drops entries whose version is not a semantic version
	// (e.g. Composer 'dev-master') instead of failing.
	SkipInvalid bool
}

// DependencySource represents abstraction over dependency source files and
// provides convinient interface to fetch packages information.
type DependencySource interface {
	// Requirements returns list of name/version pairs with parsed versions.
	Requirements(ctx context.Context, typ DepType, opts *ParserOptions) ([]Requirement, error)
}

// NewMemorySource constructs DependencySource over in-memory files.
func NewMemorySource(files map[string][]byte) DependencySource {
	return &MemoryDependencySource{
		fetchers.ByteMapFetcher{Files: files},
	}
}

// MemoryDependencySource represents in-memory DependencySource implementation.
type MemoryDependencySource struct {
	fetcher fetchers.ByteMapFetcher
}

// Requirements returns list of name/version pairs with parsed versions.
func (ldds MemoryDependencySource) Requirements(ctx context.Context, typ DepType, opts *ParserOptions) ([]Requirement, error) {
	return parseRequirements(ctx, typ, ldds.fetcher, opts)
}

// NewDirSource constructs DependencySource reading files below the root directory.
func NewDirSource(root string) DependencySource {
	return &DirDependencySource{fetcher: fetchers.NewDirFetcher(root)}
}

// DirDependencySource represents local directory DependencySource implementation.
type DirDependencySource struct {
	fetcher fetchers.FileFetcher
}

// Requirements returns list of name/version pairs with parsed versions.
func (dds DirDependencySource) Requirements(ctx context.Context, typ DepType, opts *ParserOptions) ([]Requirement, error) {
	return parseRequirements(ctx, typ, dds.fetcher, opts)
}

func parseRequirements(ctx context.Context, typ DepType, fetcher fetchers.FileFetcher, opts *ParserOptions) ([]Requirement, error) {
	if opts == nil {
		opts = &ParserOptions{}
	}
	parser, err := solveParser(typ, fetcher, opts)
	if err != nil {
		return nil, err
	}
	raw, err := parser.Requirements(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Requirement, 0, len(raw))
	for _, r := range raw {
		v, err := versioneer.Parse(r.Version)
		if err != nil {
			if opts.SkipInvalid {
				continue
			}
			return nil, fmt.Errorf("package %q: %w", r.Name, err)
		}
		result = append(result, Requirement{Name: r.Name, Version: v})
	}
	return result, nil
}

// solveParser - helper to get configured source file parser
func solveParser(typ DepType, fetcher fetchers.FileFetcher, opts *ParserOptions) (parsers.DependencyParser, error) {
	switch typ {
	case ComposerType:
		return parsers.NewComposerParser(fetcher, opts.IncludeDev), nil
	case TextType:
		return parsers.NewTextParser(fetcher, opts.Filename), nil
	case ManifestType:
		return parsers.NewManifestParser(fetcher, opts.Filename), nil
	case GitHubReleasesType:
		if opts.Package == "" {
			return nil, fmt.Errorf("package name is required for %s source", typ)
		}
		return parsers.NewGitHubReleasesParser(fetcher, opts.Package, opts.Filename), nil
	}
	return nil, fmt.Errorf("unsupported source type %q", typ)
}

// SourceSpec names one source file to read: its type and parser options.
type SourceSpec struct {
	Type    DepType
	Options ParserOptions
}

// ParseSourceSpec parses 'TYPE[:FILE[:PACKAGE]]' (e.g. 'github-releases:releases.json:acme/http').
func ParseSourceSpec(s string) (SourceSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	typ, err := ParseDepType(parts[0])
	if err != nil {
		return SourceSpec{}, err
	}
	spec := SourceSpec{Type: typ}
	if len(parts) > 1 {
		spec.Options.Filename = parts[1]
	}
	if len(parts) > 2 {
		spec.Options.Package = parts[2]
	}
	if typ == GitHubReleasesType && spec.Options.Package == "" {
		return SourceSpec{}, fmt.Errorf("source %q: package name is required for %s source", s, typ)
	}
	return spec, nil
}
