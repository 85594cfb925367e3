package token

import (
	"unicode"

	"inputmask/utils"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindDigit        // '#': decimal digit
	KindUpper        // 'U': letter, folded to upper case
	KindLower        // 'L': letter, folded to lower case
	KindAlphaNumeric // 'A': letter or digit
	KindLetter       // '?': letter
	KindWildcard     // '*': any character
	KindHex          // 'H': 0-9, a-f, A-F
	KindEscape       // '\'': emits the next mask character verbatim
	KindLiteral      // anything else, emitted verbatim

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Mask characters recognized by FromRune.
const (
	RuneDigit        = '#'
	RuneUpper        = 'U'
	RuneLower        = 'L'
	RuneAlphaNumeric = 'A'
	RuneLetter       = '?'
	RuneWildcard     = '*'
	RuneHex          = 'H'
	RuneEscape       = '\''
)

var hexRanges = [][2]rune{{'0', '9'}, {'a', 'f'}, {'A', 'F'}}

// Token is a single compiled mask slot.
// Value is the mask rune for type kinds and the emitted rune for literals and
// escaped literals.
type Token struct {
	Kind  KindEnum
	Value rune
}

// FromRune classifies a mask rune.
func FromRune(r rune) KindEnum {
	switch r {
	default:
		return KindLiteral
	case RuneDigit:
		return KindDigit
	case RuneUpper:
		return KindUpper
	case RuneLower:
		return KindLower
	case RuneAlphaNumeric:
		return KindAlphaNumeric
	case RuneLetter:
		return KindLetter
	case RuneWildcard:
		return KindWildcard
	case RuneHex:
		return KindHex
	case RuneEscape:
		return KindEscape
	}
}

// IsType reports whether k consumes one input character checked by Accepts.
func (k KindEnum) IsType() bool {
	switch k {
	default:
		return false
	case KindDigit, KindUpper, KindLower, KindAlphaNumeric, KindLetter, KindWildcard, KindHex:
		return true
	}
}

// Accepts reports whether the input rune r may fill a slot of kind k.
// Escape always accepts; plain literals never do, they are matched by equality.
func (k KindEnum) Accepts(r rune) bool {
	switch k {
	default:
		return false
	case KindDigit:
		return unicode.IsDigit(r)
	case KindUpper, KindLower, KindLetter:
		return unicode.IsLetter(r)
	case KindAlphaNumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	case KindWildcard, KindEscape:
		return true
	case KindHex:
		return utils.IsInAnyRange(r, hexRanges...)
	}
}

// Transform returns r as it should be written into a slot of kind k.
func (k KindEnum) Transform(r rune) rune {
	switch k {
	default:
		return r
	case KindUpper:
		return unicode.ToUpper(r)
	case KindLower:
		return unicode.ToLower(r)
	}
}
