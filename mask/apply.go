package mask

import (
	"strings"
	"unicode/utf8"

	"inputmask/token"
)

// Apply renders text through the mask.
//
// Text longer than Capacity characters is cut to its first Capacity
// characters and returned byte for byte, without masking; invalid UTF-8
// bytes count as one character each and are kept as they are.
// Otherwise the mask is walked slot by slot with two cursors: maskPos moves on
// every emitted slot, inputPos only when an input character is consumed.
// The walk ends when the input or the mask runs out, or when an input
// character does not fit its type slot.
func (p *Pattern) Apply(text string) string {
	if utf8.RuneCountInString(text) > len(p.tokens) {
		return text[:prefixLen(text, len(p.tokens))]
	}

	if text == "" {
		return text
	}

	input := []rune(text)

	var out strings.Builder
	out.Grow(len(text) + len(p.tokens))

	maskPos, inputPos := 0, 0
	for maskPos < len(p.tokens) && inputPos < len(input) {
		tok := p.tokens[maskPos]
		src := input[inputPos]

		if !tok.Kind.IsType() {
			if src == tok.Value {
				// typed through the separator; hold it back while it is the last character.
				// Escaped literals are always written.
				if tok.Kind == token.KindLiteral && inputPos == len(input)-1 {
					break
				}

				inputPos++
			}

			out.WriteRune(tok.Value)
			maskPos++

			continue
		}

		if !tok.Kind.Accepts(src) {
			break
		}

		out.WriteRune(tok.Kind.Transform(src))
		maskPos++
		inputPos++
	}

	return out.String()
}

// prefixLen returns the byte length of the first n characters of s.
func prefixLen(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}

	return len(s)
}
