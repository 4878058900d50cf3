/*
Package versioneer provides semantic version parsing and precedence ordering.

Versions follow the 'MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]' grammar of
Semantic Versioning 2.0.0. A Version can only be obtained from Parse (or the
zero value, which is '0.0.0') and is never mutated afterwards, so values can be
shared between goroutines freely.

Usage:

	a, err := versioneer.Parse("1.0.0-beta.2")
	if err != nil {
		return err
	}
	b := versioneer.MustParse("1.0.0")
	if a.Precedes(b) {
		// a is older than b
	}

Build metadata never takes part in precedence: Compare reports Equal for
'1.0.0+build1' and '1.0.0+build2'. Use Version.Equal for literal equality.
*/
package versioneer

import (
	"strconv"
	"strings"
)

// Version represents a parsed semantic version (e.g. '1.4.2-rc.1+exp.sha.5114f85').
type Version struct {
	major, minor, patch uint64
	prerelease          []Identifier
	build               []string
}

// Major method returns integer value of the major version segment (e.g. '?.0.0')
func (v Version) Major() uint64 {
	return v.major
}

// Minor method returns integer value of the minor version segment (e.g. '0.?.0')
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch method returns integer value of the patch version segment (e.g. '0.0.?')
func (v Version) Patch() uint64 {
	return v.patch
}

// Prerelease method returns a copy of the prerelease identifiers, nil for a release version.
func (v Version) Prerelease() []Identifier {
	if len(v.prerelease) == 0 {
		return nil
	}
	ids := make([]Identifier, len(v.prerelease))
	copy(ids, v.prerelease)
	return ids
}

// Build method returns a copy of the build metadata identifiers, nil if there are none.
func (v Version) Build() []string {
	if len(v.build) == 0 {
		return nil
	}
	ids := make([]string, len(v.build))
	copy(ids, v.build)
	return ids
}

// IsPrerelease reports whether the version carries a prerelease tag.
func (v Version) IsPrerelease() bool {
	return len(v.prerelease) != 0
}

// Compare method returns the precedence of v relative to other.
func (v Version) Compare(other Version) Ordering {
	return Compare(v, other)
}

// Precedes reports whether v has lower precedence than other.
func (v Version) Precedes(other Version) bool {
	return Compare(v, other) == Less
}

// Equal reports literal equality, build metadata included.
//
// Two versions that differ only in build metadata are Equal under Compare
// but not under this method.
func (v Version) Equal(other Version) bool {
	if Compare(v, other) != Equal || len(v.build) != len(other.build) {
		return false
	}
	for i := range v.build {
		if v.build[i] != other.build[i] {
			return false
		}
	}
	return true
}

// String returns the canonical text form, identical to the text it was parsed from.
func (v Version) String() string {
	var b strings.Builder
	b.Grow(16)
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	for i, id := range v.prerelease {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.String())
	}
	if len(v.build) != 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler, so versions are written as plain strings.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
