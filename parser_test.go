// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	prog, err := Parse(strings.NewReader(`.v a,b,c
.i a,b,c
.o a,b,c
BEGIN
t1 a
t3 a,b,c
v'2 b,c
q2 a,b
END
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, prog.Variables)
	assert.Equal(t, []int{
		int(GateToffoli), 1, 0,
		int(GateToffoli), 3, 0, 1, 2,
		int(GateVdag), 2, 1, 2,
		int(GateQ), 2, 0, 1,
	}, prog.gates)
}

func TestParseHeaderOrder(t *testing.T) {
	// header tags may come in any order once .v is known
	_, err := Parse(strings.NewReader(".v a,b\n.o b\n.i a\n.c 1\nBEGIN\nEND\n"))
	assert.NoError(t, err)
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	_, err := Parse(strings.NewReader(".v a\n.i a\n.o a\nbegin\nT1 a\nEnd\n"))
	assert.NoError(t, err)
}

func TestParseErrors(t *testing.T) {
	var errorTests = []struct {
		src  string
		line int
		msg  string
	}{
		{"BEGIN\n", 1, "missing variable listing (.v)"},
		{".v a\nBEGIN\n", 2, "missing input variable listing (.i)"},
		{".v a\n.i a\nBEGIN\n", 3, "missing output variable listing (.o)"},
		{".v a,b\n.i a\n.o a\nBEGIN\n", 4, "missing constant input variable listing (.c)"},
		{".v a\n.v a\n", 2, "duplicate variable listing (.v)"},
		{".v a,a\n", 1, "duplicate variable name"},
		{".v 1a\n", 1, "variable names must begin with an alpha character"},
		{".v a, b\n", 1, "whitespace at beginning or end of variable name"},
		{".v a,,b\n", 1, "missing variable name"},
		{".i a\n", 1, "missing variable listing (.v)"},
		{".v a\n.i b\n", 2, "undeclared input"},
		{".v a\n.i a,a\n", 2, "duplicate input"},
		{".v a\n.o b\n", 2, "undeclared output"},
		{".v a\n.c 0\n", 2, "missing input variable listing (.i)"},
		{".v a,b\n.i a\n.c x\n", 3, "expected number >= 0"},
		{".v a,b\n.i a\n.c 1,2\n", 3, "more constants than missing inputs"},
		{".x a\n", 1, "expected tag or BEGIN"},
		{".v a\n.i a\n.o a\nBEGIN\nw1 a\n", 5, "expected gate or END"},
		{".v a\n.i a\n.o a\nBEGIN\nt a\n", 5, "expected parameter count"},
		{".v a\n.i a\n.o a\nBEGIN\nt0 a\n", 5, "expected parameter count"},
		{".v a\n.i a\n.o a\nBEGIN\nh'1 a\n", 5, "expected parameter count"},
		{".v a\n.i a\n.o a\nBEGIN\nt1 b\n", 5, "undeclared variable"},
		{".v a,b\n.i a,b\n.o a,b\nBEGIN\nt1 a,b\n", 5, "too many parameters"},
		{".v a,b\n.i a,b\n.o a,b\nBEGIN\nt2 a\n", 5, "not enough parameters"},
		{".v a,b\n.i a,b\n.o a,b\nBEGIN\nt2 b,a\n", 5, "parameters must be in variable order"},
		{".v a,b\n.i a,b\n.o a,b\nBEGIN\nt2 a,a\n", 5, "parameters must be in variable order"},
		{".v a,b\n.i a,b\n.o a,b\nBEGIN\nf1 a\n", 5, "too few parameters for gate f"},
		{".v a\n.i a\n.o a\nBEGIN extra\n", 4, "expected eol or comment"},
		{".v a\n.i a\n.o a\nBEGIN\nt1 a extra\n", 5, "undeclared variable"},
	}
	for _, tt := range errorTests {
		_, err := Parse(strings.NewReader(tt.src))
		require.Error(t, err, "input %q", tt.src)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q", tt.src)
		assert.Equal(t, tt.line, perr.Line, "input %q", tt.src)
		assert.Equal(t, tt.msg, perr.Msg, "input %q", tt.src)
		assert.Contains(t, err.Error(), ":", "errors carry line:column: context")
	}
}

func TestParseErrorColumn(t *testing.T) {
	_, err := Parse(strings.NewReader(".v a\n.i a\n.o a\nBEGIN\n   w1 a\n"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 5, perr.Line)
	assert.Equal(t, 3, perr.Col, "column is the byte offset from the line start")
	assert.Equal(t, "5:3: expected gate or END", err.Error())
}

// TestParseComments checks that a file where every header and gate line
// carries a trailing comment, with blank lines in between and text after END,
// parses to the same program as the stripped version.
func TestParseComments(t *testing.T) {
	commented := `# a two qubit circuit
.v a,b # the variables

.i a,b # all inputs

.o a,b # all outputs
BEGIN # gate list follows
t2 a,b # a CNOT

END # done
trailing garbage is ignored after END
`
	stripped := `.v a,b
.i a,b
.o a,b
BEGIN
t2 a,b
END
`
	p1, err := Parse(strings.NewReader(commented))
	require.NoError(t, err)
	p2, err := Parse(strings.NewReader(stripped))
	require.NoError(t, err)
	assert.Equal(t, p2, p1)
}

func TestParseMissingConstantsAllowed(t *testing.T) {
	// .c may be omitted when every variable is an input
	_, err := Parse(strings.NewReader(".v a,b\n.i a,b\n.o a,b\nBEGIN\nEND\n"))
	assert.NoError(t, err)
}
