package versioneer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is matched (errors.Is) by every error returned from Parse.
	ErrInvalidFormat = errors.New("invalid version format")
)

// Reason names the grammar rule a version string violated.
type Reason string

// Parse failure reasons
const (
	ReasonWrongSegmentCount = Reason("wrong-segment-count") // base is not exactly MAJOR.MINOR.PATCH
	ReasonNonDigit          = Reason("non-digit")           // base component with a non-digit character
	ReasonLeadingZero       = Reason("leading-zero")        // numeric component or identifier like '01'
	ReasonEmptyIdentifier   = Reason("empty-identifier")    // empty component or identifier (e.g. '1..2' or 'rc.')
	ReasonInvalidSeparator  = Reason("invalid-separator")   // dangling '-' or '+', or '+' inside build metadata
	ReasonInvalidCharacter  = Reason("invalid-character")   // identifier character outside [0-9A-Za-z-]
	ReasonOutOfRange        = Reason("out-of-range")        // numeric value does not fit in 64 bits
)

// Part names the section of a version string a ParseError refers to.
type Part string

// Version string parts
const (
	PartBase       = Part("base")
	PartPrerelease = Part("prerelease")
	PartBuild      = Part("build")
)

// ParseError describes the first grammar violation found in a version string.
type ParseError struct {
	Input   string // Whole string passed to Parse
	Part    Part   // Section of Input holding the violation
	Segment string // Offending substring
	Reason  Reason // Violated rule
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s segment %q: %s", ErrInvalidFormat, e.Input, e.Part, e.Segment, e.Reason)
}

// Unwrap makes every ParseError match ErrInvalidFormat.
func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// Parse converts raw text into a Version.
//
// Parsing is fail-fast: the first violation found scanning base, prerelease
// and then build metadata is returned as a *ParseError together with the zero Version.
func Parse(raw string) (Version, error) {
	core, build, hasBuild := strings.Cut(raw, "+")
	base, pre, hasPre := strings.Cut(core, "-")

	segments := strings.Split(base, ".")
	if len(segments) != 3 {
		return Version{}, &ParseError{Input: raw, Part: PartBase, Segment: base, Reason: ReasonWrongSegmentCount}
	}
	var nums [3]uint64
	for i, s := range segments {
		n, reason := parseBaseNumber(s)
		if reason != "" {
			return Version{}, &ParseError{Input: raw, Part: PartBase, Segment: s, Reason: reason}
		}
		nums[i] = n
	}
	v := Version{major: nums[0], minor: nums[1], patch: nums[2]}

	if hasPre {
		ids, perr := parsePrerelease(raw, pre)
		if perr != nil {
			return Version{}, perr
		}
		v.prerelease = ids
	}

	if hasBuild {
		ids, perr := parseBuild(raw, build)
		if perr != nil {
			return Version{}, perr
		}
		v.build = ids
	}

	return v, nil
}

// MustParse is like Parse but panics on invalid input.
// Use it for hardcoded versions only.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("versioneer.MustParse: %v", err))
	}
	return v
}

// parseBaseNumber validates one MAJOR/MINOR/PATCH component.
func parseBaseNumber(s string) (uint64, Reason) {
	if s == "" {
		return 0, ReasonEmptyIdentifier
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, ReasonNonDigit
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, ReasonLeadingZero
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ReasonOutOfRange
	}
	return n, ""
}

func parsePrerelease(raw, text string) ([]Identifier, *ParseError) {
	if text == "" {
		return nil, &ParseError{Input: raw, Part: PartPrerelease, Segment: "-", Reason: ReasonInvalidSeparator}
	}
	segments := strings.Split(text, ".")
	ids := make([]Identifier, 0, len(segments))
	for _, s := range segments {
		if reason := checkIdentifier(s); reason != "" {
			return nil, &ParseError{Input: raw, Part: PartPrerelease, Segment: s, Reason: reason}
		}
		if Classify(s) == Numeric && len(s) > 1 && s[0] == '0' {
			return nil, &ParseError{Input: raw, Part: PartPrerelease, Segment: s, Reason: ReasonLeadingZero}
		}
		id, err := newIdentifier(s)
		if err != nil {
			return nil, &ParseError{Input: raw, Part: PartPrerelease, Segment: s, Reason: ReasonOutOfRange}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseBuild(raw, text string) ([]string, *ParseError) {
	if text == "" {
		return nil, &ParseError{Input: raw, Part: PartBuild, Segment: "+", Reason: ReasonInvalidSeparator}
	}
	segments := strings.Split(text, ".")
	for _, s := range segments {
		if reason := checkIdentifier(s); reason != "" {
			return nil, &ParseError{Input: raw, Part: PartBuild, Segment: s, Reason: reason}
		}
	}
	return segments, nil
}

// checkIdentifier validates a prerelease or build identifier against [0-9A-Za-z-]+.
func checkIdentifier(s string) Reason {
	if s == "" {
		return ReasonEmptyIdentifier
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c), c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '-':
		case c == '+':
			return ReasonInvalidSeparator
		default:
			return ReasonInvalidCharacter
		}
	}
	return ""
}
