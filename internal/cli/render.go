package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dephub/dephub-semver/internal/config"
	"github.com/dephub/dephub-semver/providers/versioneer"
	"gopkg.in/yaml.v3"
)

// render writes v in the configured format; text output is delegated to the text callback.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		return text(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// identifierInfo is the output form of a prerelease identifier.
type identifierInfo struct {
	Value string `json:"value" yaml:"value"`
	Kind  string `json:"kind" yaml:"kind"`
}

// versionInfo is the output form of a parsed version.
type versionInfo struct {
	Version    string           `json:"version" yaml:"version"`
	Major      uint64           `json:"major" yaml:"major"`
	Minor      uint64           `json:"minor" yaml:"minor"`
	Patch      uint64           `json:"patch" yaml:"patch"`
	Prerelease []identifierInfo `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      []string         `json:"build,omitempty" yaml:"build,omitempty"`
}

func newVersionInfo(v versioneer.Version) versionInfo {
	info := versionInfo{
		Version: v.String(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
		Build:   v.Build(),
	}
	for _, id := range v.Prerelease() {
		info.Prerelease = append(info.Prerelease, identifierInfo{Value: id.String(), Kind: id.Kind().String()})
	}
	return info
}
