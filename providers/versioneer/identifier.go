package versioneer

import "strconv"

// IdentifierKind tags a prerelease identifier as numeric or alphanumeric.
type IdentifierKind int

// Identifier kinds
const (
	// Numeric identifiers consist of decimal digits only and compare as integers.
	Numeric IdentifierKind = iota
	// Alphanumeric identifiers contain at least one non-digit and compare as text.
	Alphanumeric
)

// String returns the kind name.
func (k IdentifierKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "alphanumeric"
}

// Identifier represents one dot-separated prerelease identifier (e.g. 'rc' or '11' in 'rc.11').
type Identifier struct {
	kind IdentifierKind
	num  uint64
	text string
}

// Kind method returns the identifier kind.
func (id Identifier) Kind() IdentifierKind {
	return id.kind
}

// IsNumeric reports whether the identifier is numeric.
func (id Identifier) IsNumeric() bool {
	return id.kind == Numeric
}

// Numeric method returns the integer value of a numeric identifier, 0 for alphanumeric ones.
func (id Identifier) Numeric() uint64 {
	return id.num
}

// String returns the identifier text.
func (id Identifier) String() string {
	return id.text
}

// Classify tags text as Numeric when every character is a decimal digit and
// Alphanumeric otherwise. Charset validity is checked by the parser beforehand.
func Classify(text string) IdentifierKind {
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return Alphanumeric
		}
	}
	return Numeric
}

// compareIdentifiers orders two prerelease identifiers at the same position.
func compareIdentifiers(a, b Identifier) Ordering {
	switch {
	case a.kind == Numeric && b.kind == Numeric:
		return compareUint(a.num, b.num)
	case a.kind == Numeric:
		return Less // numeric always has lower precedence than alphanumeric
	case b.kind == Numeric:
		return Greater
	}
	switch {
	case a.text < b.text:
		return Less
	case a.text > b.text:
		return Greater
	}
	return Equal
}

// newIdentifier builds an identifier from validated text.
func newIdentifier(text string) (Identifier, error) {
	if Classify(text) == Alphanumeric {
		return Identifier{kind: Alphanumeric, text: text}, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{kind: Numeric, num: n, text: text}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
