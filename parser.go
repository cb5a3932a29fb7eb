// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"io"

	"github.com/bits-and-blooms/bitset"
)

// _MAXLITERAL caps parameter counts and constant values in circuit files.
const _MAXLITERAL = 0x7FFF

// Parse reads a circuit description in the ".tfc" dialect: tagged header
// lines (.v, .i, .o, .c), each at most once, then a gate list between BEGIN
// and END. The .v line must come before the other tags and .i before .c;
// otherwise the order is free. Lines may carry # comments and blank lines are
// ignored. Errors are reported with a "line:column: " prefix, where column is
// the byte offset from the line start.
func Parse(r io.Reader) (*Program, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ps := &parser{text: text}
	return ps.parse()
}

type parser struct {
	text      []byte
	pos       int
	line      int
	linestart int
}

type parserstate int

const (
	readingTags parserstate = iota
	readingGates
	reachedEnd
)

// ************************************************************

// Scanner helpers. A line ends at '\n' or at the end of input; a '#' starts a
// comment running to the end of the line.

func isspace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isalpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isdigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func (ps *parser) isEol() bool {
	return ps.pos >= len(ps.text) || ps.text[ps.pos] == '\n'
}

func (ps *parser) isEolOrComment() bool {
	return ps.isEol() || ps.text[ps.pos] == '#'
}

func (ps *parser) skipWs() {
	for !ps.isEol() && isspace(ps.text[ps.pos]) {
		ps.pos++
	}
}

func (ps *parser) errorf(format string, a ...interface{}) *ParseError {
	return newParseError(ps.line, ps.pos-ps.linestart, format, a...)
}

// keyword matches kw at the current position, followed by whitespace or the
// end of the line. On success the position moves past the keyword.
func (ps *parser) keyword(kw string, insensitive bool) bool {
	p := ps.pos
	for i := 0; i < len(kw); i++ {
		if p >= len(ps.text) || ps.text[p] == '\n' {
			return false
		}
		c := ps.text[p]
		if insensitive {
			if lower(c) != lower(kw[i]) {
				return false
			}
		} else if c != kw[i] {
			return false
		}
		p++
	}
	if p < len(ps.text) && ps.text[p] != '\n' && !isspace(ps.text[p]) {
		return false
	}
	ps.pos = p
	return true
}

// nextLine moves to the start of the next line. Anything but trailing
// whitespace or a comment at the current position is a parse error.
func (ps *parser) nextLine() error {
	ps.skipWs()
	if !ps.isEolOrComment() {
		return ps.errorf("expected eol or comment")
	}
	for !ps.isEol() {
		ps.pos++
	}
	if ps.pos < len(ps.text) {
		ps.pos++
	}
	return nil
}

// acceptList reads a comma-separated list of items running to the end of the
// line, calling back on each one. Items cannot be empty or carry surrounding
// whitespace.
func (ps *parser) acceptList(callback func(name string) error) error {
	for !ps.isEolOrComment() {
		start := ps.pos
		for !ps.isEolOrComment() && ps.text[ps.pos] != ',' {
			ps.pos++
		}
		end := ps.pos
		if ps.isEolOrComment() {
			// padding before the end of the line or a trailing comment is
			// not part of the last item
			for end > start && isspace(ps.text[end-1]) {
				end--
			}
		}
		if start == end {
			return ps.errorf("missing variable name")
		}
		if isspace(ps.text[start]) || isspace(ps.text[end-1]) {
			return ps.errorf("whitespace at beginning or end of variable name")
		}
		if err := callback(string(ps.text[start:end])); err != nil {
			return err
		}
		if !ps.isEolOrComment() && ps.text[ps.pos] == ',' {
			ps.pos++
		}
	}
	return nil
}

// acceptParamcount reads an unsigned parameter count with no leading zero.
func (ps *parser) acceptParamcount() (int, error) {
	if ps.isEol() || !isdigit(ps.text[ps.pos]) || ps.text[ps.pos] == '0' {
		return 0, ps.errorf("expected parameter count")
	}
	count := 0
	for !ps.isEol() && isdigit(ps.text[ps.pos]) {
		count = count*10 + int(ps.text[ps.pos]-'0')
		if count > _MAXLITERAL {
			return 0, ps.errorf("parameter count too big")
		}
		ps.pos++
	}
	if !ps.isEol() && !isspace(ps.text[ps.pos]) {
		return 0, ps.errorf("expected parameter count")
	}
	return count, nil
}

// ************************************************************

func (ps *parser) parse() (*Program, error) {
	prog := &Program{nameToID: make(map[string]int)}
	var hasV, hasI, hasO, hasC bool
	numInputs := 0
	state := readingTags
	for ps.pos < len(ps.text) {
		ps.linestart = ps.pos
		ps.line++
		if state == reachedEnd {
			break
		}
		ps.skipWs()
		if !ps.isEolOrComment() {
			var err error
			switch state {
			case readingTags:
				state, err = ps.parseTag(prog, &hasV, &hasI, &hasO, &hasC, &numInputs)
			case readingGates:
				state, err = ps.parseGate(prog)
			}
			if err != nil {
				return nil, err
			}
		}
		if err := ps.nextLine(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (ps *parser) parseTag(prog *Program, hasV, hasI, hasO, hasC *bool, numInputs *int) (parserstate, error) {
	if ps.keyword("BEGIN", true) {
		if !*hasV {
			return 0, ps.errorf("missing variable listing (.v)")
		}
		if !*hasI {
			return 0, ps.errorf("missing input variable listing (.i)")
		}
		if !*hasO {
			return 0, ps.errorf("missing output variable listing (.o)")
		}
		if !*hasC && *numInputs < prog.NumVars() {
			return 0, ps.errorf("missing constant input variable listing (.c)")
		}
		return readingGates, nil
	}
	switch {
	case ps.keyword(".v", false):
		if *hasV {
			return 0, ps.errorf("duplicate variable listing (.v)")
		}
		*hasV = true
		ps.skipWs()
		err := ps.acceptList(func(name string) error {
			if !isalpha(name[0]) {
				return ps.errorf("variable names must begin with an alpha character")
			}
			if _, ok := prog.nameToID[name]; ok {
				return ps.errorf("duplicate variable name")
			}
			prog.nameToID[name] = len(prog.Variables)
			prog.Variables = append(prog.Variables, name)
			return nil
		})
		if err != nil {
			return 0, err
		}
		prog.Inputs = bitset.New(uint(prog.NumVars()))
		prog.Outputs = bitset.New(uint(prog.NumVars()))
		prog.Constants = make([]int, prog.NumVars())
		for k := range prog.Constants {
			prog.Constants[k] = -1
		}
		return readingTags, nil
	case ps.keyword(".i", false):
		if !*hasV {
			return 0, ps.errorf("missing variable listing (.v)")
		}
		if *hasI {
			return 0, ps.errorf("duplicate input variable listing (.i)")
		}
		*hasI = true
		ps.skipWs()
		err := ps.acceptList(func(name string) error {
			if !isalpha(name[0]) {
				return ps.errorf("variable names must begin with an alpha character")
			}
			id, ok := prog.nameToID[name]
			if !ok {
				return ps.errorf("undeclared input")
			}
			if prog.Inputs.Test(uint(id)) {
				return ps.errorf("duplicate input")
			}
			prog.Inputs.Set(uint(id))
			*numInputs++
			return nil
		})
		return readingTags, err
	case ps.keyword(".o", false):
		if !*hasV {
			return 0, ps.errorf("missing variable listing (.v)")
		}
		if *hasO {
			return 0, ps.errorf("duplicate output variable listing (.o)")
		}
		*hasO = true
		ps.skipWs()
		err := ps.acceptList(func(name string) error {
			if !isalpha(name[0]) {
				return ps.errorf("variable names must begin with an alpha character")
			}
			id, ok := prog.nameToID[name]
			if !ok {
				return ps.errorf("undeclared output")
			}
			if prog.Outputs.Test(uint(id)) {
				return ps.errorf("duplicate output")
			}
			prog.Outputs.Set(uint(id))
			return nil
		})
		return readingTags, err
	case ps.keyword(".c", false):
		if !*hasV {
			return 0, ps.errorf("missing variable listing (.v)")
		}
		if !*hasI {
			return 0, ps.errorf("missing input variable listing (.i)")
		}
		if *hasC {
			return 0, ps.errorf("duplicate constant input variable listing (.c)")
		}
		*hasC = true
		currVar := 0
		ps.skipWs()
		err := ps.acceptList(func(name string) error {
			cval := 0
			for _, c := range []byte(name) {
				if !isdigit(c) {
					return ps.errorf("expected number >= 0")
				}
				cval = cval*10 + int(c-'0')
				if cval > _MAXLITERAL {
					return ps.errorf("constant value too big")
				}
			}
			// constants bind to the variables not listed as inputs, in
			// declaration order
			for currVar < prog.NumVars() && prog.Inputs.Test(uint(currVar)) {
				currVar++
			}
			if currVar >= prog.NumVars() {
				return ps.errorf("more constants than missing inputs")
			}
			prog.Constants[currVar] = cval
			currVar++
			return nil
		})
		return readingTags, err
	}
	return 0, ps.errorf("expected tag or BEGIN")
}

func (ps *parser) parseGate(prog *Program) (parserstate, error) {
	if ps.keyword("END", true) {
		return reachedEnd, nil
	}
	var g Gate
	switch lower(ps.text[ps.pos]) {
	case 't':
		g = GateToffoli
	case 'f':
		g = GateFredkin
	case 'y':
		g = GateY
	case 'z':
		g = GateZ
	case 'v':
		g = GateV
	case 'h':
		g = GateH
	case 'q':
		g = GateQ
	default:
		return 0, ps.errorf("expected gate or END")
	}
	ps.pos++
	if !ps.isEol() && ps.text[ps.pos] == '\'' {
		switch g {
		case GateV:
			g = GateVdag
		case GateQ:
			g = GateQdag
		default:
			return 0, ps.errorf("expected parameter count")
		}
		ps.pos++
	}
	count, err := ps.acceptParamcount()
	if err != nil {
		return 0, err
	}
	if count < g.minparams() {
		return 0, ps.errorf("too few parameters for gate %s", g)
	}
	ps.skipWs()
	vars := make([]int, 0, count)
	err = ps.acceptList(func(name string) error {
		if len(vars) == count {
			return ps.errorf("too many parameters")
		}
		id, ok := prog.nameToID[name]
		if !ok {
			return ps.errorf("undeclared variable")
		}
		vars = append(vars, id)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(vars) < count {
		return 0, ps.errorf("not enough parameters")
	}
	for k := 1; k < len(vars); k++ {
		if vars[k-1] >= vars[k] {
			return 0, ps.errorf("parameters must be in variable order")
		}
	}
	prog.pushgate(g, vars)
	return readingGates, nil
}
