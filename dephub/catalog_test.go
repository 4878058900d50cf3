package dephub

import (
	"context"
	"testing"

	"github.com/dephub/dephub-semver/providers/versioneer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := NewCatalog([]Requirement{
		{Name: "b", Version: versioneer.MustParse("1.10.0")},
		{Name: "a", Version: versioneer.MustParse("2.0.0-rc.1")},
		{Name: "b", Version: versioneer.MustParse("1.2.0")},
		{Name: "a", Version: versioneer.MustParse("1.0.0")},
		{Name: "b", Version: versioneer.MustParse("1.9.0")},
	})

	assert.Equal(t, []string{"a", "b"}, catalog.Names())

	vs := catalog.Versions("b")
	require.Len(t, vs, 3)
	assert.Equal(t, []string{"1.2.0", "1.9.0", "1.10.0"}, []string{vs[0].String(), vs[1].String(), vs[2].String()})
	assert.Nil(t, catalog.Versions("c"))

	latest, ok := catalog.Latest("a", false)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", latest.String())

	latest, ok = catalog.Latest("a", true)
	require.True(t, ok)
	assert.Equal(t, "2.0.0-rc.1", latest.String())

	_, ok = catalog.Latest("c", true)
	assert.False(t, ok)

	_, err := catalog.Releases(context.Background(), "c")
	assert.Equal(t, ErrPackageNotFound, err)
}

func TestCatalog_VersionsAreCopies(t *testing.T) {
	catalog := NewCatalog([]Requirement{{Name: "a", Version: versioneer.MustParse("1.0.0")}})
	vs := catalog.Versions("a")
	vs[0] = versioneer.MustParse("9.9.9")

	latest, _ := catalog.Latest("a", false)
	assert.Equal(t, "1.0.0", latest.String())
}

func TestLoadCatalog(t *testing.T) {
	src := NewMemorySource(fileMapMockData)

	catalog, err := LoadCatalog(context.Background(), src,
		SourceSpec{Type: ManifestType},
		SourceSpec{Type: GitHubReleasesType, Options: ParserOptions{Package: "acme/http"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"acme/http", "acme/log"}, catalog.Names())
	latest, ok := catalog.Latest("acme/http", false)
	require.True(t, ok)
	assert.Equal(t, "1.5.0", latest.String())
	latest, ok = catalog.Latest("acme/http", true)
	require.True(t, ok)
	assert.Equal(t, "2.0.0-rc.2", latest.String())
}

func TestLoadCatalog_Error(t *testing.T) {
	src := NewMemorySource(fileMapMockData)

	catalog, err := LoadCatalog(context.Background(), src,
		SourceSpec{Type: ManifestType},
		SourceSpec{Type: TextType, Options: ParserOptions{Filename: "missing.txt"}},
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to load text releases")
	assert.Nil(t, catalog)
}
