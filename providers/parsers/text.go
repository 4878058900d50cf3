package parsers

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/dephub/dephub-semver/providers/fetchers"
)

// NewTextParser constructs plain text versions list parser.
// If 'filename' parameter is an empty string - 'versions.txt' will be used instead.
func NewTextParser(fetcher fetchers.FileFetcher, filename string) DependencyParser {
	if filename == "" {
		return &TextParser{fetcher: fetcher, SourceName: "versions.txt"}
	}
	return &TextParser{fetcher: fetcher, SourceName: filename}
}

// TextParser represents plain text parser implementation.
//
// Every non-empty line holds one 'name version', 'name==version' or
// 'name@version' pair, '#' starts a comment.
type TextParser struct {
	fetcher fetchers.FileFetcher
	// SourceName is the source filename (e.g. 'versions.txt')
	SourceName string
}

// Requirements method returns name/version pairs in file order.
func (c TextParser) Requirements(ctx context.Context) ([]Requirement, error) {
	b, err := c.fetcher.FileContent(ctx, c.SourceName)
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to fetch versions list from the source: %w", err)
	}

	return parseVersionsTxt(b)
}

// parseVersionsTxt contains versions.txt files parsing logic.
func parseVersionsTxt(fileContent []byte) ([]Requirement, error) {
	result := []Requirement{}
	scanner := bufio.NewScanner(bytes.NewReader(fileContent))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.SplitN(scanner.Text(), "#", 2)[0]) // remove comments
		if line == "" {
			continue
		}

		name, version, ok := splitTextLine(line)
		if !ok {
			return nil, fmt.Errorf("line %d: expected 'name version' pair, got %q", lineNo, line)
		}
		result = append(result, Requirement{Name: name, Version: version})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read versions list: %w", err)
	}

	return result, nil
}

// splitTextLine splits one line into name and version.
// The last '@' is the delimiter, so scoped names like '@scope/pkg@1.2.3' keep their leading '@'.
func splitTextLine(line string) (string, string, bool) {
	if name, version, found := strings.Cut(line, "=="); found {
		return splitPair(name, version)
	}
	if i := strings.LastIndex(line, "@"); i > 0 {
		return splitPair(line[:i], line[i+1:])
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

func splitPair(name, version string) (string, string, bool) {
	name, version = stripSpaces(name), stripSpaces(version)
	return name, version, name != "" && version != ""
}

// Fast way to strip all whitespaces from a string
func stripSpaces(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
