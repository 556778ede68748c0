package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacer/dckparse/ast"
	"github.com/pacer/dckparse/internal/deck/lexer"
	"github.com/pacer/dckparse/internal/deck/testutil"
)

type equationsFixture struct {
	Valid []struct {
		Name     string   `toml:"name"`
		Input    string   `toml:"input"`
		Declared int      `toml:"declared"`
		Want     []string `toml:"want"`
		Next     int      `toml:"next"`
		Comments int      `toml:"comments"`
	} `toml:"valid"`
	Invalid []struct {
		Name    string `toml:"name"`
		Input   string `toml:"input"`
		Message string `toml:"message"`
		Offset  int    `toml:"offset"`
	} `toml:"invalid"`
}

func loadEquationsFixture(t *testing.T) equationsFixture {
	t.Helper()

	fixture := testutil.LoadTOML[equationsFixture](t, "testdata/equations.toml")
	require.NotEmpty(t, fixture.Valid)
	require.NotEmpty(t, fixture.Invalid)

	return fixture
}

func TestParseEquations_Fixtures(t *testing.T) {
	fixture := loadEquationsFixture(t)

	for _, tt := range fixture.Valid {
		t.Run(tt.Name, func(t *testing.T) {
			result, err := ParseEquations(tt.Input, 0)
			require.NoError(t, err)

			block := result.Value
			require.NotNil(t, block.DeclaredCount)
			assert.Equal(t, tt.Declared, *block.DeclaredCount)

			got := make([]string, 0, len(block.Equations))
			for _, equation := range block.Equations {
				got = append(got, equation.String())
			}

			assert.Equal(t, tt.Want, got)
			assert.Equal(t, tt.Next, result.Next)
			assert.Len(t, block.Comments, tt.Comments)
			assert.Equal(t, block.Comments, result.Comments)
		})
	}
}

func TestParseEquations_FixtureErrors(t *testing.T) {
	fixture := loadEquationsFixture(t)

	for _, tt := range fixture.Invalid {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ParseEquations(tt.Input, 0)
			testutil.RequireErrorAt(t, err, tt.Message, tt.Offset)
		})
	}
}

func TestParseEquations_Tree(t *testing.T) {
	input := "EQUATIONS 2\na = 1\nb = a+1\n"

	result, err := ParseEquations(input, 0)
	require.NoError(t, err)

	declared := 2
	want := ast.NewEquations(&declared, []ast.Equation{
		ast.NewEquation("a", ast.Int(1)),
		ast.NewEquation("b", ast.Add(ast.MustVariable("a"), ast.Int(1))),
	}, nil)

	assert.True(t, ast.EqualEquations(want, result.Value), "got %s", result.Value)
	assert.Equal(t, len(input)-1, result.Next)
}

func TestParseEquations_StartOffset(t *testing.T) {
	input := "VERSION 18\nEQUATIONS 1\nq = [2,1]/2"

	result, err := ParseEquations(input, 11)
	require.NoError(t, err)
	require.Len(t, result.Value.Equations, 1)
	assert.Equal(t, "q = ([2,1] / 2)", result.Value.Equations[0].String())
	assert.Equal(t, len(input), result.Next)

	_, err = ParseEquations(input, 0)
	testutil.RequireErrorAt(t, err, `Expected keyword "EQUATIONS" but found identifier.`, 0)
}

func TestParseEquations_CommentsAcrossDelegation(t *testing.T) {
	input := "EQUATIONS 2 ! header\n" +
		"a = 1 ! one\n" +
		"b = a + ! inside\n" +
		"  1\n" +
		"! trailer\n"

	result, err := ParseEquations(input, 0)
	require.NoError(t, err)
	require.Len(t, result.Value.Equations, 2)

	comments := result.Value.Comments
	require.Len(t, comments, 4)

	want := []struct {
		text     string
		position lexer.Position
		inline   bool
	}{
		{"header", lexer.Position{Line: 0, Character: 12}, true},
		{"one", lexer.Position{Line: 1, Character: 6}, true},
		{"inside", lexer.Position{Line: 2, Character: 8}, true},
		{"trailer", lexer.Position{Line: 4, Character: 0}, false},
	}

	for i, w := range want {
		assert.Equal(t, w.text, comments[i].Text)
		assert.Equal(t, w.position, comments[i].Position)
		assert.Equal(t, w.inline, comments[i].Inline)
	}
}

func TestParseEquations_DelegatedFailureIsUnchanged(t *testing.T) {
	input := "EQUATIONS 1\na = (1 + [3,-2])"

	_, blockErr := ParseEquations(input, 0)
	require.Error(t, blockErr)

	_, exprErr := ParseExpression(input, 15)
	require.Error(t, exprErr)

	assert.Equal(t, exprErr, blockErr)
	assert.ErrorIs(t, blockErr, ErrNegativeUnitNumber)
}

func TestParseEquations_LexicalErrorAfterRightHandSide(t *testing.T) {
	// '=' is not an expression token, so the right-hand side of "a" cannot
	// look past its end.
	_, err := ParseEquations("EQUATIONS 2\na = 1\n= 2", 0)
	testutil.RequireErrorAt(t, err, "Not a recognized token.", 18)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, LexicalError, parseErr.Kind)
}

func TestParseEquations_OptionsReachRightHandSides(t *testing.T) {
	input := "EQUATIONS 2\na = 1\nb = ((1))"

	result, err := ParseEquations(input, 0, WithMaxDepth(3))
	require.NoError(t, err)
	assert.Len(t, result.Value.Equations, 2)

	result, err = ParseEquations(input, 0, WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, result.Value.Equations, 1, "a failing equation after the first ends the block")

	_, err = ParseEquations("EQUATIONS 1\nb = ((1))", 0, WithMaxDepth(2))
	assert.ErrorIs(t, err, ErrMaxDepth)
}

func TestParseEquations_LogsEndOfBlock(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result, err := ParseEquations("EQUATIONS 1\na = 1\nCONSTANTS 1\n", 0, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 17, result.Next)

	logs := buf.String()
	assert.Contains(t, logs, "delegated parse done")
	assert.Contains(t, logs, "end of equations block")
	assert.Contains(t, logs, "offset=17")
	assert.Contains(t, logs, "discarded_error_offset=28")
	assert.Contains(t, logs, "Expected equals sign")
}

func TestParseEquations_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := ParseEquations("EQUATIONS 1\na = 1\n", 0, WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
