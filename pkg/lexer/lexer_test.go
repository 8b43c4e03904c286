package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokensRecognizesBothLambdaSpellings(t *testing.T) {
	for _, src := range []string{"λx.x", `\x.x`} {
		toks, err := Tokens(src)
		require.NoError(t, err)
		require.Equal(t, Lambda, toks[0].Type)
		require.Equal(t, Ident, toks[1].Type)
		require.Equal(t, Dot, toks[2].Type)
		require.Equal(t, Ident, toks[3].Type)
		require.Equal(t, EOF, toks[4].Type)
	}
}

func TestTokensRecognizesArrowAsDotAlternative(t *testing.T) {
	toks, err := Tokens(`\x -> x`)
	require.NoError(t, err)
	require.Equal(t, []TokenType{Lambda, Ident, Arrow, Ident, EOF}, typesOf(toks))
}

func TestTokensRecognizesParensAndLet(t *testing.T) {
	toks, err := Tokens("let I = (λx.x)")
	require.NoError(t, err)
	require.Equal(t, []TokenType{Let, Ident, Equal, LParen, Lambda, Ident, Dot, Ident, RParen, EOF}, typesOf(toks))
}

func TestTokensAllowsTrailingPrimeInIdentifiers(t *testing.T) {
	toks, err := Tokens("y'")
	require.NoError(t, err)
	require.Equal(t, "y'", toks[0].Literal)
}

func TestTokensSkipsWhitespace(t *testing.T) {
	toks, err := Tokens("  x   y ")
	require.NoError(t, err)
	require.Equal(t, []TokenType{Ident, Ident, EOF}, typesOf(toks))
}

func TestTokensReportsLexErrorWithLocation(t *testing.T) {
	_, err := Tokens("x @ y")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, '@', lexErr.Rune)
	require.Equal(t, 2, lexErr.Begin)
}

func typesOf(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}
