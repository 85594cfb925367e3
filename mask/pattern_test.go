package mask_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputmask/mask"
	"inputmask/token"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mask     string
		capacity int
		length   int
		tokens   []token.Token
	}{
		{
			name:     "empty",
			mask:     "",
			capacity: 0,
			length:   0,
			tokens:   []token.Token{},
		},
		{
			name:     "types and literals",
			mask:     "#-U",
			capacity: 3,
			length:   3,
			tokens: []token.Token{
				{Kind: token.KindDigit, Value: '#'},
				{Kind: token.KindLiteral, Value: '-'},
				{Kind: token.KindUpper, Value: 'U'},
			},
		},
		{
			name:     "escaped type character",
			mask:     "'U##",
			capacity: 3,
			length:   4,
			tokens: []token.Token{
				{Kind: token.KindEscape, Value: 'U'},
				{Kind: token.KindDigit, Value: '#'},
				{Kind: token.KindDigit, Value: '#'},
			},
		},
		{
			name:     "escaped apostrophe",
			mask:     "''#",
			capacity: 2,
			length:   3,
			tokens: []token.Token{
				{Kind: token.KindEscape, Value: '\''},
				{Kind: token.KindDigit, Value: '#'},
			},
		},
		{
			name:     "every kind",
			mask:     "#ULA?*H'#x",
			capacity: 9,
			length:   10,
			tokens: []token.Token{
				{Kind: token.KindDigit, Value: '#'},
				{Kind: token.KindUpper, Value: 'U'},
				{Kind: token.KindLower, Value: 'L'},
				{Kind: token.KindAlphaNumeric, Value: 'A'},
				{Kind: token.KindLetter, Value: '?'},
				{Kind: token.KindWildcard, Value: '*'},
				{Kind: token.KindHex, Value: 'H'},
				{Kind: token.KindEscape, Value: '#'},
				{Kind: token.KindLiteral, Value: 'x'},
			},
		},
		{
			name:     "multi-byte literals",
			mask:     "№ ###",
			capacity: 5,
			length:   5,
			tokens: []token.Token{
				{Kind: token.KindLiteral, Value: '№'},
				{Kind: token.KindLiteral, Value: ' '},
				{Kind: token.KindDigit, Value: '#'},
				{Kind: token.KindDigit, Value: '#'},
				{Kind: token.KindDigit, Value: '#'},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := mask.Compile(tt.mask)
			require.NoError(t, err)

			assert.Equal(t, tt.mask, p.String())
			assert.Equal(t, tt.capacity, p.Capacity())
			assert.Equal(t, tt.length, p.Len())
			assert.Equal(t, tt.tokens, p.Tokens(), spew.Sdump(p.Tokens()))
		})
	}
}

func TestCompileMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mask     string
		position int
	}{
		{"'", 0},
		{"##'", 2},
		{"''''#'", 5},
		{"№'", 1},
	}

	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			t.Parallel()

			p, err := mask.Compile(tt.mask)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, mask.ErrMalformedPattern)

			var malformed *mask.MalformedPatternError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.mask, malformed.Mask)
			assert.Equal(t, tt.position, malformed.Position)
			assert.Contains(t, err.Error(), "nothing to escape")
		})
	}
}

func TestMustCompile(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { mask.MustCompile("(###)") })
	assert.Panics(t, func() { mask.MustCompile("#'") })
}

func TestTokensIsACopy(t *testing.T) {
	t.Parallel()

	p := mask.MustCompile("##")
	tokens := p.Tokens()
	tokens[0] = token.Token{Kind: token.KindLiteral, Value: 'x'}

	assert.Equal(t, "12", p.Apply("12"))
	assert.Equal(t, token.KindDigit, p.Tokens()[0].Kind)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	out, err := mask.Format("UU-##", "ab12")
	require.NoError(t, err)
	assert.Equal(t, "AB-12", out)

	out, err = mask.Format("##'", "12")
	require.ErrorIs(t, err, mask.ErrMalformedPattern)
	assert.Empty(t, out)
}
