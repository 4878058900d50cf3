package parsers

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/dephub/dephub-semver/providers/fetchers"
)

var releasesJSONFixture = []byte(`[
	{
		"id": 3,
		"tag_name": "v2.0.0-rc.1",
		"name": "2.0.0 RC1",
		"draft": false,
		"prerelease": true,
		"html_url": "https://github.com/acme/http/releases/tag/v2.0.0-rc.1"
	},
	{
		"id": 2,
		"tag_name": "v1.5.0",
		"draft": true
	},
	{
		"id": 1,
		"tag_name": "v1.4.2",
		"draft": false,
		"prerelease": false
	},
	{
		"id": 0,
		"name": "untagged"
	}
]`)

func TestGitHubReleasesParserRequirementsMethod(t *testing.T) {
	bf := fetchers.ByteMapFetcher{Files: map[string][]byte{"releases.json": releasesJSONFixture}}
	parser := NewGitHubReleasesParser(bf, "acme/http", "")

	reqs, err := parser.Requirements(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on releases requirements call : %v", err)
	}

	expectedRequirements := []Requirement{
		{Name: "acme/http", Version: "2.0.0-rc.1"},
		{Name: "acme/http", Version: "1.4.2"},
	}
	if !reflect.DeepEqual(reqs, expectedRequirements) {
		t.Errorf("unexpected releases requirements, got: '%+v'", reqs)
	}
}

func TestGitHubReleasesParserRequirementsMethod_Errors(t *testing.T) {
	bf := fetchers.ByteMapFetcher{Files: map[string][]byte{"releases.json": []byte(`{"message": "Not Found"}`)}}
	reqs, err := NewGitHubReleasesParser(bf, "acme/http", "").Requirements(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unable to parse releases file content") {
		t.Errorf("expected parse error, got %v", err)
	}
	if reqs != nil {
		t.Errorf("expected nil requirements, got: %+v", reqs)
	}

	_, err = NewGitHubReleasesParser(bf, "acme/http", "other.json").Requirements(context.Background())
	if err != ErrFileNotFound {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}
