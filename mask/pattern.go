package mask

import (
	"slices"

	"inputmask/token"
)

// Pattern is a compiled mask.
type Pattern struct {
	source string
	length int
	tokens []token.Token
}

// Compile classifies every character of mask once and folds escape pairs
// into single literal slots.
// It fails when the mask ends with an escape that has nothing to escape.
func Compile(mask string) (*Pattern, error) {
	runes := []rune(mask)
	tokens := make([]token.Token, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		kind := token.FromRune(runes[i])
		if kind != token.KindEscape {
			tokens = append(tokens, token.Token{Kind: kind, Value: runes[i]})
			continue
		}

		if i+1 >= len(runes) {
			return nil, &MalformedPatternError{
				Mask:     mask,
				Position: i,
				Reason:   "escape character has nothing to escape",
			}
		}

		i++
		tokens = append(tokens, token.Token{Kind: token.KindEscape, Value: runes[i]})
	}

	return &Pattern{
		source: mask,
		length: len(runes),
		tokens: tokens,
	}, nil
}

// MustCompile is like Compile but panics if the mask is malformed.
func MustCompile(mask string) *Pattern {
	p, err := Compile(mask)
	if err != nil {
		panic(err)
	}

	return p
}

// Format compiles mask and applies it to text.
func Format(mask, text string) (string, error) {
	p, err := Compile(mask)
	if err != nil {
		return "", err
	}

	return p.Apply(text), nil
}

// Capacity is the maximum number of characters the mask can render:
// the mask length minus the escape characters.
func (p *Pattern) Capacity() int {
	return len(p.tokens)
}

// Len is the length of the source mask in characters, escapes included.
func (p *Pattern) Len() int {
	return p.length
}

// Tokens returns a copy of the compiled slots.
func (p *Pattern) Tokens() []token.Token {
	return slices.Clone(p.tokens)
}

// String returns the source mask.
func (p *Pattern) String() string {
	return p.source
}
