// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import "fmt"

// initidents precomputes the identity sub-matrices over the variable suffixes
// k..varnum-1, folding Kronecker products from the bottom. We call this
// function only once, during initialization; every controlled gate build
// reuses these edges for its "control is 0" branches.
func (b *QMDD) initidents() {
	b.idents = make([]Edge, b.varnum+1)
	b.idents[b.varnum] = b.Terminal()
	for k := b.varnum - 1; k >= 0; k-- {
		b.idents[k] = b.kro(b.primedge(k, primI), b.idents[k+1])
	}
}

// Ident returns the cached edge for the identity matrix over the variables
// k..Varnum-1. Ident(0) is the identity for the whole circuit and
// Ident(Varnum) is the terminal edge.
func (b *QMDD) Ident(k int) Edge {
	if k < 0 || int32(k) > b.varnum {
		panic(fmt.Errorf("unknown level (%d) in call to Ident", k))
	}
	return b.idents[k]
}
