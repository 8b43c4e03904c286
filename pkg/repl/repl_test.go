package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/vic/lambdarepl/pkg/lambda"
)

// newTestREPL builds a REPL without readline, since readline.NewEx
// wants a real terminal — Eval/LoadFile never touch r.rl.
func newTestREPL() (*REPL, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := &REPL{
		Ctx: lambda.NewContext(),
		Out: out,
		Log: hclog.NewNullLogger(),
	}
	return r, out
}

func TestEvalIgnoresBlankAndComment(t *testing.T) {
	r, out := newTestREPL()
	require.False(t, r.Eval("   "))
	require.False(t, r.Eval("# a comment"))
	require.Equal(t, "", out.String())
}

func TestEvalQuitDirective(t *testing.T) {
	r, _ := newTestREPL()
	require.True(t, r.Eval(":q"))
}

func TestEvalPrintsReducedExpression(t *testing.T) {
	r, out := newTestREPL()
	r.Eval(`(\x.x) a`)
	require.Equal(t, "a\n", out.String())
}

func TestEvalLetDefinesAndDisplaysArrow(t *testing.T) {
	r, out := newTestREPL()
	r.Eval(`let I = \x.x`)
	require.Contains(t, out.String(), "I =>")
	_, ok := r.Ctx.Definitions["I"]
	require.True(t, ok)
}

func TestEvalParseErrorReportsWithoutPanicking(t *testing.T) {
	r, out := newTestREPL()
	r.Eval("(")
	require.Contains(t, out.String(), "parse error")
}

func TestDirectiveTogglesFlagAndReportsState(t *testing.T) {
	r, out := newTestREPL()
	r.Eval(":h")
	require.Contains(t, out.String(), ":h: on")
	require.True(t, r.Ctx.Flags.Has(lambda.HaskellStyle))

	out.Reset()
	r.Eval(":h")
	require.Contains(t, out.String(), ":h: off")
}

func TestDirectiveUnknownWarnsWithoutQuitting(t *testing.T) {
	r, _ := newTestREPL()
	quit := r.Eval(":bogus")
	require.False(t, quit)
}

func TestLoadFileEvaluatesEachLine(t *testing.T) {
	r, out := newTestREPL()
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.lc")
	require.NoError(t, os.WriteFile(path, []byte("# a header\nlet I = \\x.x\nI a\n"), 0o644))

	err := r.LoadFile(path)
	require.NoError(t, err)
	require.Contains(t, out.String(), "I =>")
	require.Contains(t, out.String(), "a")
}

func TestLoadFileAggregatesSkippedLines(t *testing.T) {
	r, _ := newTestREPL()
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.lc")
	require.NoError(t, os.WriteFile(path, []byte("x\n(\ny\n"), 0o644))

	err := r.LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 lines skipped")
}

func TestLoadFileReturnsIOErrorForMissingPath(t *testing.T) {
	r, _ := newTestREPL()
	err := r.LoadFile(filepath.Join(t.TempDir(), "does-not-exist.lc"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
