/*
Package parsers provides parsers for every supported dependency manifest file.

Goals:
  - Parsing locked dependency files and release lists into name/version pairs

Version strings are returned as written in the source (apart from a trimmed
'v' tag prefix); validating them is left to the versioneer package.
*/
package parsers

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

// DependencyParser represents basic interface for parsers in this package.
type DependencyParser interface {
	// Requirements have to return list of name/version pairs found in the source file.
	Requirements(context.Context) ([]Requirement, error)
}

// Requirement represents one locked dependency or one available release.
type Requirement struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Version string `json:"version" yaml:"version" toml:"version"`
}

// trimTagPrefix strips a single leading 'v' or 'V' used by git tags (e.g. 'v1.2.3').
func trimTagPrefix(tag string) string {
	if strings.HasPrefix(tag, "v") || strings.HasPrefix(tag, "V") {
		return tag[1:]
	}
	return tag
}
