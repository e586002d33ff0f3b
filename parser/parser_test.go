package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lread/ast"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out ast.Value
	}{
		{`val`, ast.Symbol("val")},
		{`+`, ast.Symbol("+")},
		{`👻`, ast.Symbol("👻")},
		{`a-b?!`, ast.Symbol("a-b?!")},
		{`.5`, ast.Symbol(".5")},
		{`"string"`, ast.Text("string")},
		{`"hello world"`, ast.Text("hello world")},
		{`"(not a list)"`, ast.Text("(not a list)")},
		{`"back\slash"`, ast.Text(`back\slash`)},
		{"\"tab\there\"", ast.Text("tab\there")},
		{`42`, ast.Integer(42)},
		{`007`, ast.Integer(7)},
		{`42.1`, ast.Float(42.1)},
		{`0.5`, ast.Float(0.5)},
		{`()`, ast.List{}},
		{`(+ 1 2)`, ast.NewList(ast.Symbol("+"), ast.Integer(1), ast.Integer(2))},
		{`(println "foo")`, ast.NewList(ast.Symbol("println"), ast.Text("foo"))},
		{`(println foo)`, ast.NewList(ast.Symbol("println"), ast.Symbol("foo"))},
		{
			`(+ 1 (- 2 1))`,
			ast.NewList(
				ast.Symbol("+"),
				ast.Integer(1),
				ast.NewList(ast.Symbol("-"), ast.Integer(2), ast.Integer(1)),
			),
		},
		{
			`(a (b (c (d))))`,
			ast.NewList(ast.Symbol("a"),
				ast.NewList(ast.Symbol("b"),
					ast.NewList(ast.Symbol("c"),
						ast.NewList(ast.Symbol("d"))))),
		},
		{`(1.5 2)`, ast.NewList(ast.Float(1.5), ast.Integer(2))},
		{`(1"a")`, ast.NewList(ast.Integer(1), ast.Text("a"))},
		{`(()())`, ast.NewList(ast.List{}, ast.List{})},
		{"  \t 42 \t ", ast.Integer(42)},
		{"( +\t1  2 )", ast.NewList(ast.Symbol("+"), ast.Integer(1), ast.Integer(2))},
	}

	for _, tc := range testCases {
		t.Run(tc.In, func(t *testing.T) {
			v, err := Parse(tc.In)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.Out, v); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.In, diff)
			}
			assert.True(t, ast.Equal(tc.Out, v))
		})
	}
}

func TestParserEncode(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`val`, `val`},
		{`"foo"`, `"foo"`},
		{`42`, `42`},
		{`42.1`, `42.1`},
		{`42.10`, `42.1`},
		{`1.0`, `1`},
		{`007`, `7`},
		{`(+ 1 2)`, `(+ 1 2)`},
		{`(println "foo")`, `(println "foo")`},
		{"(  +   1\t\t(-   2 1)  )", `(+ 1 (- 2 1))`},
	}

	for i := range testCases {
		v, err := Parse(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, v.Encode())
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Text string
		Msg  string
	}{
		{``, ErrEmptyInput, "", "scanner error: out of bounds"},
		{"   \t ", ErrEmptyInput, "", "scanner error: out of bounds"},
		{`(+ 1 2`, ErrUnterminatedList, "", "scanner error: missing closing paren"},
		{`(`, ErrUnterminatedList, "", "scanner error: missing closing paren"},
		{`((1)`, ErrUnterminatedList, "", "scanner error: missing closing paren"},
		{`(a (b`, ErrUnterminatedList, "", "scanner error: missing closing paren"},
		{`"foo`, ErrUnterminatedString, "", "scanner error: missing closing quote"},
		{`"`, ErrUnterminatedString, "", "scanner error: missing closing quote"},
		{`""`, ErrUnterminatedString, "", "scanner error: missing closing quote"},
		{`(println "foo)`, ErrUnterminatedString, "", "scanner error: missing closing quote"},
		{`15a`, ErrTrailingInput, "a", `scanner error: has more text "a"`},
		{`42.`, ErrTrailingInput, ".", `scanner error: has more text "."`},
		{`1 2`, ErrTrailingInput, "2", `scanner error: has more text "2"`},
		{`(a) (b)  `, ErrTrailingInput, "(b)  ", `scanner error: has more text "(b)  "`},
		{`(a))`, ErrTrailingInput, ")", `scanner error: has more text ")"`},
		{`"a"b`, ErrTrailingInput, "b", `scanner error: has more text "b"`},
		{`)`, ErrUnexpectedCloseParen, "", "scanner error: unexpected closing paren"},
		{
			`99999999999999999999`,
			ErrNumberOutOfRange,
			"99999999999999999999",
			`scanner error: number out of range "99999999999999999999"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.In, func(t *testing.T) {
			v, err := Parse(tc.In)
			assert.Nil(t, v)
			require.Error(t, err)

			assert.True(t, errors.Is(err, tc.Err), "expected %v, got %v", tc.Err, err)
			assert.Equal(t, tc.Msg, err.Error())

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.Text, perr.Text)
		})
	}
}

func TestErrorOffset(t *testing.T) {
	_, err := Parse(`  (a b`)
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KindUnterminatedList, perr.Kind)
	assert.Equal(t, 6, perr.Offset)

	_, err = Parse(`15a`)
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Offset)
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, "unterminated_list", KindUnterminatedList.String())
	assert.Equal(t, "invalid", ErrorKind(200).String())

	assert.False(t, errors.Is(ErrEmptyInput, ErrTrailingInput))
	assert.True(t, errors.Is(errors.Wrap(ErrTrailingInput, "line 3"), ErrTrailingInput))
}

func TestAllowEmptyText(t *testing.T) {
	opts := Options{AllowEmptyText: true}

	{
		v, err := ParseWithOptions(`""`, opts)
		require.NoError(t, err)
		assert.Equal(t, ast.Text(""), v)
		assert.Equal(t, `""`, v.Encode())
	}

	{
		v, err := ParseWithOptions(`(concat "" "a")`, opts)
		require.NoError(t, err)
		assert.Equal(t, ast.NewList(ast.Symbol("concat"), ast.Text(""), ast.Text("a")), v)
	}

	{
		_, err := ParseWithOptions(`"`, opts)
		assert.True(t, errors.Is(err, ErrUnterminatedString))
	}
}

func TestMaxDepth(t *testing.T) {
	opts := Options{MaxDepth: 2}

	{
		v, err := ParseWithOptions(`((1) (2))`, opts)
		require.NoError(t, err)
		assert.Equal(t, 2, ast.Depth(v))
	}

	{
		_, err := ParseWithOptions(`(((1)))`, opts)
		assert.True(t, errors.Is(err, ErrMaxDepthExceeded))
		assert.Equal(t, "scanner error: maximum nesting depth exceeded", err.Error())
	}

	{
		_, err := ParseWithOptions(`(1 (2) (3 (4)))`, opts)
		assert.True(t, errors.Is(err, ErrMaxDepthExceeded))
	}
}

func TestWordSymbols(t *testing.T) {
	testCases := []struct {
		In   string
		Word ast.Value
		Err  error
		Def  ast.Value
		DErr error
	}{
		{In: `)`, Word: ast.Symbol(")"), DErr: ErrUnexpectedCloseParen},
		{In: `a)b`, Word: ast.Symbol("a)b"), DErr: ErrTrailingInput},
		{In: `a"b`, Word: ast.Symbol(`a"b`), DErr: ErrTrailingInput},
		{In: `(a)`, Err: ErrUnterminatedList, Def: ast.NewList(ast.Symbol("a"))},
		{In: `(a )`, Word: ast.NewList(ast.Symbol("a")), Def: ast.NewList(ast.Symbol("a"))},
		{In: `(1 "x")`, Word: ast.NewList(ast.Integer(1), ast.Text("x")), Def: ast.NewList(ast.Integer(1), ast.Text("x"))},
		{In: `(println foo) `, Err: ErrUnterminatedList, Def: ast.NewList(ast.Symbol("println"), ast.Symbol("foo"))},
	}

	for _, tc := range testCases {
		t.Run(tc.In, func(t *testing.T) {
			v, err := ParseWithOptions(tc.In, Options{WordSymbols: true})
			if tc.Err != nil {
				assert.Nil(t, v)
				assert.True(t, errors.Is(err, tc.Err), "expected %v, got %v", tc.Err, err)
			} else {
				require.NoError(t, err)
				assert.True(t, ast.Equal(tc.Word, v), "got %v", v)
			}

			v, err = Parse(tc.In)
			if tc.DErr != nil {
				assert.Nil(t, v)
				assert.True(t, errors.Is(err, tc.DErr), "expected %v, got %v", tc.DErr, err)
			} else {
				require.NoError(t, err)
				assert.True(t, ast.Equal(tc.Def, v), "got %v", v)
			}
		})
	}
}

func TestDeepNestingUnbounded(t *testing.T) {
	const depth = 10000

	in := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	v, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, depth, ast.Depth(v))
	assert.Equal(t, in, v.Encode())
}

func TestWhitespaceInsignificant(t *testing.T) {
	base := []string{"(", "+", "1", "(", "-", "2.5", `"x y"`, ")", "sym", ")"}

	expected, err := Parse(strings.Join(base, " "))
	require.NoError(t, err)

	separators := []string{"  ", "\t", " \t  ", "\n", "\r\n", "\u00a0", "\u2003"}
	for _, sep := range separators {
		in := sep + strings.Join(base, sep) + sep
		v, err := Parse(in)
		require.NoError(t, err, "%q", in)
		assert.True(t, ast.Equal(expected, v), "%q", in)
	}
}

func TestParsersAreIndependent(t *testing.T) {
	first := New(`(a b`)
	second := New(`(a b)`)

	_, err := first.Parse()
	assert.True(t, errors.Is(err, ErrUnterminatedList))

	v, err := second.Parse()
	require.NoError(t, err)
	assert.Equal(t, ast.NewList(ast.Symbol("a"), ast.Symbol("b")), v)
}
