package versioneer

import (
	"errors"
	"testing"
)

// FuzzParse checks that Parse never panics and that accepted input round trips.
func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"", ".", "..", "1", "1.2", "1.2.3", "01.2.3", "1.2.3-", "1.2.3+", "1.2.3-+",
		"1.0.0-alpha.1+build.007", "1.0.0-0.0", "1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
		"v1.2.3", "1.2.3+a+b", "18446744073709551616.0.0", "1.0.0-a..b", "1. 2.3",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) returned error not matching ErrInvalidFormat: %v", input, err)
			}
			return
		}
		if v.String() != input {
			t.Errorf("Parse(%q).String() = %q", input, v.String())
		}
		if Compare(v, v) != Equal {
			t.Errorf("Compare(%q, %q) is not Equal", input, input)
		}
	})
}
