package versioneer

// Ordering is the result of a precedence comparison.
type Ordering int

// Comparison results
const (
	Less    = Ordering(-1)
	Equal   = Ordering(0)
	Greater = Ordering(1)
)

// String returns '<', '=' or '>'.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return "="
}

// Compare computes the precedence of a relative to b.
//
// Rules are applied in order and the first one that tells the versions apart wins:
//  1. MAJOR, MINOR and PATCH, most significant first;
//  2. a version with a prerelease tag is lower than the same version without one;
//  3. prerelease identifiers pairwise, left to right: numeric ones as integers,
//     alphanumeric ones as text, numeric always lower than alphanumeric, and
//     when one list is a prefix of the other the shorter one is lower.
//
// Build metadata is ignored.
func Compare(a, b Version) Ordering {
	if o := compareBase(a, b); o != Equal {
		return o
	}

	switch {
	case len(a.prerelease) == 0 && len(b.prerelease) == 0:
		return Equal
	case len(a.prerelease) == 0:
		return Greater
	case len(b.prerelease) == 0:
		return Less
	}

	return comparePrerelease(a.prerelease, b.prerelease)
}

// Precedes reports whether a has lower precedence than b.
func Precedes(a, b Version) bool {
	return Compare(a, b) == Less
}

func compareBase(a, b Version) Ordering {
	switch {
	case a.major != b.major:
		return compareUint(a.major, b.major)
	case a.minor != b.minor:
		return compareUint(a.minor, b.minor)
	}
	return compareUint(a.patch, b.patch)
}

func comparePrerelease(a, b []Identifier) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if o := compareIdentifiers(a[i], b[i]); o != Equal {
			return o
		}
	}
	return compareUint(uint64(len(a)), uint64(len(b)))
}

func compareUint(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
