package versioneer

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParse_Parts(t *testing.T) {
	raw := "1.4.2"
	version, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version.Major() != 1 || version.Minor() != 4 || version.Patch() != 2 || version.String() != raw {
		t.Errorf("version %q parsed incorrectly, got '%+v'", raw, version)
	}
	if version.Prerelease() != nil || version.Build() != nil || version.IsPrerelease() {
		t.Errorf("expected no prerelease and no build for %q, got '%+v'", raw, version)
	}
}

func TestParse_PrereleaseAndBuild(t *testing.T) {
	raw := "1.0.0-rc.1.x-y-z.0+exp.sha.5114f85.007"
	version, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPre := []Identifier{
		{kind: Alphanumeric, text: "rc"},
		{kind: Numeric, num: 1, text: "1"},
		{kind: Alphanumeric, text: "x-y-z"},
		{kind: Numeric, num: 0, text: "0"},
	}
	if !reflect.DeepEqual(version.Prerelease(), expectedPre) {
		t.Errorf("unexpected prerelease identifiers, got '%+v'", version.Prerelease())
	}
	expectedBuild := []string{"exp", "sha", "5114f85", "007"}
	if !reflect.DeepEqual(version.Build(), expectedBuild) {
		t.Errorf("unexpected build identifiers, got '%+v'", version.Build())
	}
	if version.String() != raw {
		t.Errorf("expected canonical form %q, got %q", raw, version.String())
	}
}

func TestParse_Valid(t *testing.T) {
	cases := []string{
		"0.0.0",
		"0.1.0",
		"10.20.30",
		"1.1.2-prerelease+meta",
		"1.1.2+meta",
		"1.1.2+meta-valid",
		"1.0.0-alpha",
		"1.0.0-beta",
		"1.0.0-alpha.beta",
		"1.0.0-alpha.beta.1",
		"1.0.0-alpha.1",
		"1.0.0-alpha0.valid",
		"1.0.0-alpha.0valid",
		"1.0.0-alpha-a.b-c-somethinglong+build.1-aef.1-its-okay",
		"1.0.0-rc.1+build.1",
		"2.0.0-rc.1+build.123",
		"1.2.3-beta",
		"10.2.3-DEV-SNAPSHOT",
		"1.2.3-SNAPSHOT-123",
		"2.0.0+build.1848",
		"2.0.1-alpha.1227",
		"1.0.0-alpha+beta",
		"1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
		"1.2.3----R-S.12.9.1--.12+meta",
		"1.2.3----RC-SNAPSHOT.12.9.1--.12",
		"1.0.0+0.build.1-rc.10000aaa-kk-0.1",
		"1.0.0-0A.is.legal",
		"18446744073709551615.0.0",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			v, err := Parse(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != raw {
				t.Errorf("expected round trip to %q, got %q", raw, v.String())
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		Raw     string
		Part    Part
		Segment string
		Reason  Reason
	}{
		{"", PartBase, "", ReasonWrongSegmentCount},
		{"1", PartBase, "1", ReasonWrongSegmentCount},
		{"1.2", PartBase, "1.2", ReasonWrongSegmentCount},
		{"1.2.3.4", PartBase, "1.2.3.4", ReasonWrongSegmentCount},
		{"-1.2.3", PartBase, "", ReasonWrongSegmentCount},
		{"+invalid", PartBase, "", ReasonWrongSegmentCount},
		{"01.2.3", PartBase, "01", ReasonLeadingZero},
		{"1.02.3", PartBase, "02", ReasonLeadingZero},
		{"1.2.03", PartBase, "03", ReasonLeadingZero},
		{"1..3", PartBase, "", ReasonEmptyIdentifier},
		{"1.2.", PartBase, "", ReasonEmptyIdentifier},
		{"v1.2.3", PartBase, "v1", ReasonNonDigit},
		{"1.2.3a", PartBase, "3a", ReasonNonDigit},
		{" 1.2.3", PartBase, " 1", ReasonNonDigit},
		{"1.2.3 ", PartBase, "3 ", ReasonNonDigit},
		{"a.b.c", PartBase, "a", ReasonNonDigit},
		{"18446744073709551616.0.0", PartBase, "18446744073709551616", ReasonOutOfRange},
		{"1.2.3-", PartPrerelease, "-", ReasonInvalidSeparator},
		{"1.2.3-+build", PartPrerelease, "-", ReasonInvalidSeparator},
		{"1.2.3-0123", PartPrerelease, "0123", ReasonLeadingZero},
		{"1.2.3-0123.0123", PartPrerelease, "0123", ReasonLeadingZero},
		{"1.0.0-alpha.01", PartPrerelease, "01", ReasonLeadingZero},
		{"1.0.0-alpha..1", PartPrerelease, "", ReasonEmptyIdentifier},
		{"1.0.0-alpha.", PartPrerelease, "", ReasonEmptyIdentifier},
		{"1.0.0-alpha_beta", PartPrerelease, "alpha_beta", ReasonInvalidCharacter},
		{"1.0.0-alpha.99999999999999999999", PartPrerelease, "99999999999999999999", ReasonOutOfRange},
		{"1.2.3+", PartBuild, "+", ReasonInvalidSeparator},
		{"1.2.3+a+b", PartBuild, "a+b", ReasonInvalidSeparator},
		{"1.2.3+meta..1", PartBuild, "", ReasonEmptyIdentifier},
		{"1.2.3+meta.", PartBuild, "", ReasonEmptyIdentifier},
		{"1.2.3+m@ta", PartBuild, "m@ta", ReasonInvalidCharacter},
		// fail-fast: the base violation wins over later ones
		{"01.2.3-01+", PartBase, "01", ReasonLeadingZero},
		{"1.2.3-01+", PartPrerelease, "01", ReasonLeadingZero},
	}

	for _, tcase := range cases {
		caseName := fmt.Sprintf("%q->%s", tcase.Raw, tcase.Reason)
		t.Run(caseName, func(t *testing.T) {
			version, err := Parse(tcase.Raw)
			if err == nil {
				t.Fatalf("expected error on invalid version, got none")
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("expected error to match ErrInvalidFormat, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Input != tcase.Raw || perr.Part != tcase.Part || perr.Segment != tcase.Segment || perr.Reason != tcase.Reason {
				t.Errorf("unexpected parse error, got '%+v'", perr)
			}
			if !reflect.DeepEqual(version, Version{}) {
				t.Errorf("expected zero version on error, got '%+v'", version)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("1.02.3")
	expected := `invalid version format "1.02.3": base segment "02": leading-zero`
	if err == nil || err.Error() != expected {
		t.Errorf("expected error %q, got %v", expected, err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on invalid version, got none")
		}
	}()
	MustParse("1.2")
}

func TestVersion_AccessorsReturnCopies(t *testing.T) {
	v := MustParse("1.0.0-alpha.1+build.5")

	pre := v.Prerelease()
	pre[0] = Identifier{kind: Alphanumeric, text: "zzz"}
	build := v.Build()
	build[0] = "changed"

	if v.String() != "1.0.0-alpha.1+build.5" {
		t.Errorf("version mutated through accessor result, got %q", v.String())
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]IdentifierKind{
		"0":     Numeric,
		"123":   Numeric,
		"0123":  Numeric,
		"alpha": Alphanumeric,
		"1a":    Alphanumeric,
		"-":     Alphanumeric,
		"x-1":   Alphanumeric,
		"DEV":   Alphanumeric,
	}
	for text, expected := range cases {
		if kind := Classify(text); kind != expected {
			t.Errorf("Classify(%q): expected %s, got %s", text, expected, kind)
		}
	}
}
