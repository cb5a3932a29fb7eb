// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Program is the decoded form of a textual circuit description. Variables are
// identified by their declaration order, which is also the level order of the
// diagram. The gate list is kept as a flat stream of integers: for each gate
// an opcode, a parameter count, and that many variable ids, with the target(s)
// last.
type Program struct {
	Variables []string       // declared variable names, in level order
	Inputs    *bitset.BitSet // variables listed as circuit inputs
	Outputs   *bitset.BitSet // variables listed as circuit outputs
	Constants []int          // constant initial value per variable, -1 on inputs
	nameToID  map[string]int
	gates     []int
}

// NumVars returns the number of declared variables.
func (p *Program) NumVars() int {
	return len(p.Variables)
}

// pushgate appends a gate to the stream.
func (p *Program) pushgate(g Gate, vars []int) {
	p.gates = append(p.gates, int(g), len(vars))
	p.gates = append(p.gates, vars...)
}

// gatestring renders a gate the way it appears in the textual format, such as
// "t3 a,b,c".
func (p *Program) gatestring(g Gate, vars []int) string {
	names := make([]string, len(vars))
	for k, v := range vars {
		names[k] = p.Variables[v]
	}
	return fmt.Sprintf("%s%d %s", g, len(vars), strings.Join(names, ","))
}

// ************************************************************

// Run folds every gate of the program, in stream order, into the product of
// the per-gate matrices and returns the edge for the whole circuit. The
// running product starts at the identity and each gate matrix is composed by
// left-multiplication.
//
// Macro gates are not built directly: the evaluator owns a stack of pending
// gate streams, and a Fredkin pushes its three-Toffoli expansion as a fresh
// stream on top, so that evaluation recurses naturally.
func (b *QMDD) Run(p *Program) (Edge, error) {
	if p.NumVars() != int(b.varnum) {
		return Edge{}, fmt.Errorf("program has %d variables but the diagram was initialized with %d", p.NumVars(), b.varnum)
	}
	copy(b.level2var, p.Variables)
	root := b.Ident(0)
	streams := [][]int{p.gates}
	for len(streams) > 0 {
		s := streams[len(streams)-1]
		if len(s) == 0 {
			streams = streams[:len(streams)-1]
			continue
		}
		g := Gate(s[0])
		count := s[1]
		vars := s[2 : 2+count]
		streams[len(streams)-1] = s[2+count:]
		switch g {
		case GateFredkin:
			logger.Debug().Msg(p.gatestring(g, vars))
			streams = append(streams, expandfredkin(vars))
		case GateToffoli, GateY, GateZ, GateV, GateVdag, GateH, GateQ, GateQdag:
			logger.Debug().Msg(p.gatestring(g, vars))
			root = b.mul(b.BuildGate(g, vars), root)
		default:
			panic(fmt.Errorf("%w (%d)", errOpcode, g))
		}
	}
	return root, nil
}

// expandfredkin rewrites a controlled swap on targets a, b (with a < b) into
// three Toffolis: X on a controlled by b, then X on b controlled by the
// original controls and a, then X on a controlled by b again.
func expandfredkin(vars []int) []int {
	lo := vars[len(vars)-2]
	hi := vars[len(vars)-1]
	stream := []int{int(GateToffoli), 2, hi, lo}
	stream = append(stream, int(GateToffoli), len(vars))
	stream = append(stream, vars...)
	stream = append(stream, int(GateToffoli), 2, hi, lo)
	return stream
}
