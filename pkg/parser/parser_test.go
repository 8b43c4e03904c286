package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/lambdarepl/pkg/lambda"
)

func TestParseVariable(t *testing.T) {
	term, err := Parse("x")
	require.NoError(t, err)
	require.True(t, lambda.Equal(term, &lambda.Var{Name: "x"}))
}

func TestParseLambdaSingleParam(t *testing.T) {
	term, err := Parse(`\x.x`)
	require.NoError(t, err)
	require.True(t, lambda.Equal(term, &lambda.Lambda{Param: "x", Body: &lambda.Var{Name: "x"}}))
}

func TestParseImplicitCurrying(t *testing.T) {
	// \x y.x desugars to \x.\y.x
	term, err := Parse(`\x y.x`)
	require.NoError(t, err)
	want := &lambda.Lambda{Param: "x", Body: &lambda.Lambda{Param: "y", Body: &lambda.Var{Name: "x"}}}
	require.True(t, lambda.Equal(term, want))
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	// a b c parses as (a b) c
	term, err := Parse("a b c")
	require.NoError(t, err)
	want := &lambda.Apply{
		Fn:  &lambda.Apply{Fn: &lambda.Var{Name: "a"}, Arg: &lambda.Var{Name: "b"}},
		Arg: &lambda.Var{Name: "c"},
	}
	require.True(t, lambda.Equal(term, want))
}

func TestParseTrailingLambdaAbsorbsRestOfApplication(t *testing.T) {
	// a \x.x parses as a (\x.x), not (a) applied piecewise
	term, err := Parse(`a \x.x`)
	require.NoError(t, err)
	want := &lambda.Apply{
		Fn:  &lambda.Var{Name: "a"},
		Arg: &lambda.Lambda{Param: "x", Body: &lambda.Var{Name: "x"}},
	}
	require.True(t, lambda.Equal(term, want))
}

func TestParseParensOverrideAssociativity(t *testing.T) {
	// a (b c) differs in shape from (a b) c
	term, err := Parse("a (b c)")
	require.NoError(t, err)
	want := &lambda.Apply{
		Fn:  &lambda.Var{Name: "a"},
		Arg: &lambda.Apply{Fn: &lambda.Var{Name: "b"}, Arg: &lambda.Var{Name: "c"}},
	}
	require.True(t, lambda.Equal(term, want))
}

func TestParseLet(t *testing.T) {
	term, err := Parse(`let I = \x.x`)
	require.NoError(t, err)
	let, ok := term.(*lambda.Let)
	require.True(t, ok)
	require.Equal(t, "I", let.Name)
	require.True(t, lambda.Equal(let.Value, &lambda.Lambda{Param: "x", Body: &lambda.Var{Name: "x"}}))
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse("x )")
	require.Error(t, err)
}

func TestParseRejectsUnclosedParen(t *testing.T) {
	_, err := Parse("(x")
	require.Error(t, err)
}

func TestParseRejectsLambdaWithoutParams(t *testing.T) {
	_, err := Parse(`\.x`)
	require.Error(t, err)
}
