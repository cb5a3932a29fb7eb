// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A reversible ripple adder stage built from Toffolis and CNOTs, in the
// spirit of the classical benchmarks distributed with reversible circuit
// toolkits. The whole unitary must be a permutation matrix, and composing the
// circuit with its own reverse must give back the identity, handle for
// handle.

const adderSrc = `# one stage of a reversible ripple adder
.v cin,a,b,cout
.i cin,a,b
.o a,b,cout
.c 0
BEGIN
t3 a,b,cout
t2 a,b
t3 cin,b,cout
t2 cin,b
END
`

func TestAdderPermutation(t *testing.T) {
	prog, err := Parse(strings.NewReader(adderSrc))
	require.NoError(t, err)
	b, err := New(prog.NumVars(), Nodesize(1<<14), Cachesize(1<<10))
	require.NoError(t, err)
	root, err := b.Run(prog)
	require.NoError(t, err)

	require.Equal(t, w1, root.w)
	m := dense(b, root)
	one := cplxOne()
	for c := 0; c < 16; c++ {
		ones := 0
		for r := 0; r < 16; r++ {
			if m[r][c] == one {
				ones++
			} else {
				assert.Equal(t, cplxZero(), m[r][c], "row %d col %d", r, c)
			}
		}
		assert.Equal(t, 1, ones, "column %d of a permutation matrix", c)
	}
}

func TestAdderReverse(t *testing.T) {
	prog, err := Parse(strings.NewReader(adderSrc))
	require.NoError(t, err)
	b, err := New(prog.NumVars(), Nodesize(1<<14), Cachesize(1<<10))
	require.NoError(t, err)
	root, err := b.Run(prog)
	require.NoError(t, err)

	// every gate of the adder is self-inverse, so running the gate list in
	// reverse order undoes the circuit
	reversed := &Program{
		Variables: prog.Variables,
		Inputs:    prog.Inputs,
		Outputs:   prog.Outputs,
		Constants: prog.Constants,
		nameToID:  prog.nameToID,
	}
	reversed.pushgate(GateToffoli, []int{0, 2})
	reversed.pushgate(GateToffoli, []int{0, 2, 3})
	reversed.pushgate(GateToffoli, []int{1, 2})
	reversed.pushgate(GateToffoli, []int{1, 2, 3})
	back, err := b.Run(reversed)
	require.NoError(t, err)
	assert.Equal(t, b.Ident(0), b.Mul(back, root))
}

func BenchmarkToffoliChain(bb *testing.B) {
	src := `.v a,b,c,d,e
.i a,b,c,d,e
.o a,b,c,d,e
BEGIN
h1 a
t2 a,b
t3 a,b,c
t4 a,b,c,d
t5 a,b,c,d,e
f3 a,d,e
h1 a
END
`
	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		bb.Fatal(err)
	}
	bb.ResetTimer()
	for i := 0; i < bb.N; i++ {
		b, err := New(prog.NumVars(), Nodesize(1<<16))
		if err != nil {
			bb.Fatal(err)
		}
		if _, err := b.Run(prog); err != nil {
			bb.Fatal(err)
		}
	}
}
