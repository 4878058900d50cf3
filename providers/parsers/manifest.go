package parsers

import (
	"context"
	"fmt"
	"path"

	"github.com/dephub/dephub-semver/providers/fetchers"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// NewManifestParser constructs versions manifest parser.
// If 'filename' parameter is an empty string - 'versions.yaml' will be used instead.
// The file format (YAML or TOML) is picked by the filename extension.
func NewManifestParser(fetcher fetchers.FileFetcher, filename string) DependencyParser {
	if filename == "" {
		filename = "versions.yaml"
	}
	return &ManifestParser{fetcher: fetcher, SourceName: filename}
}

// ManifestParser represents versions manifest parser implementation.
//
// YAML form:
//
//	packages:
//	  - name: acme/lib
//	    version: 1.2.3
//
// TOML form:
//
//	[[packages]]
//	name = "acme/lib"
//	version = "1.2.3"
type ManifestParser struct {
	fetcher fetchers.FileFetcher
	// SourceName is the source filename (e.g. 'versions.toml')
	SourceName string
}

// Manifest represents versions manifest file (versions.yaml or versions.toml).
type Manifest struct {
	Packages []Requirement `yaml:"packages" toml:"packages"`
}

// Requirements method returns manifest packages in file order.
func (c ManifestParser) Requirements(ctx context.Context) ([]Requirement, error) {
	b, err := c.fetcher.FileContent(ctx, c.SourceName)
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to fetch versions manifest from the source: %w", err)
	}

	var manifest Manifest
	switch ext := path.Ext(c.SourceName); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &manifest)
	case ".toml":
		err = toml.Unmarshal(b, &manifest)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse manifest file content: %w", err)
	}

	res := make([]Requirement, 0, len(manifest.Packages))
	for i, pkg := range manifest.Packages {
		if pkg.Name == "" || pkg.Version == "" {
			return nil, fmt.Errorf("manifest package #%d: name and version are required", i+1)
		}
		res = append(res, pkg)
	}

	return res, nil
}
