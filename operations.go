// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import "fmt"

// wapply computes the result of a weight operation through the weight cache.
// On a miss we fetch the two values, compute exactly, intern the result and
// record it. Fast paths for the two sentinel handles never reach the cache.
func (b *QMDD) wapply(h0, h1 int32, op Operator) int32 {
	switch op {
	case OPadd:
		if h0 == w0 {
			return h1
		}
		if h1 == w0 {
			return h0
		}
	case OPsub:
		if h1 == w0 {
			return h0
		}
	case OPmul:
		if h0 == w0 || h1 == w0 {
			return w0
		}
		if h0 == w1 {
			return h1
		}
		if h1 == w1 {
			return h0
		}
	case OPdiv:
		if h0 == w0 {
			return w0
		}
		if h1 == w1 {
			return h0
		}
	default:
		panic(fmt.Errorf("%w (%s in wapply)", errOpcode, op))
	}
	if res, ok := b.matchweight(h0, h1, op); ok {
		return res
	}
	v0 := b.weights.get(h0)
	v1 := b.weights.get(h1)
	var v cplx
	switch op {
	case OPadd:
		v = v0.add(v1)
	case OPsub:
		v = v0.sub(v1)
	case OPmul:
		v = v0.mul(v1)
	case OPdiv:
		v = v0.div(v1)
	}
	return b.setweight(h0, h1, op, b.weights.insert(v))
}

// ************************************************************

// normalize rewrites a weight vector in place so that its first non-zero
// entry, in index order, is exactly w1, dividing the following non-zero
// entries by the extracted factor. It returns the factor, which the caller
// must push onto the incoming edge, or w0 when all four entries are zero.
func (b *QMDD) normalize(ws *[4]int32) int32 {
	k := -1
	for i := 0; i < 4; i++ {
		if ws[i] != w0 {
			k = i
			break
		}
	}
	if k < 0 {
		return w0
	}
	s := ws[k]
	ws[k] = w1
	for j := k + 1; j < 4; j++ {
		if ws[j] != w0 {
			ws[j] = b.wapply(ws[j], s, OPdiv)
		}
	}
	return s
}

// makeedge normalizes the four quadrant edges and builds the canonical node
// for them at the given level. The extracted factor becomes the weight of the
// returned edge; when all quadrants are zero the whole node collapses to the
// zero edge.
func (b *QMDD) makeedge(level int32, z [4]Edge) Edge {
	var children, ws [4]int32
	for i := 0; i < 4; i++ {
		children[i] = z[i].n
		ws[i] = z[i].w
	}
	factor := b.normalize(&ws)
	if factor == w0 {
		return b.Zero()
	}
	return Edge{w: factor, n: b.makenode(level, children, ws)}
}

// quadrant returns the sub-edge of e for block (row, col) of the decomposition
// at level top. An edge that does not branch on top contributes itself to
// every block.
func (b *QMDD) quadrant(e Edge, top int32, row, col int) Edge {
	if b.level(e.n) != top {
		return e
	}
	i := 2*row + col
	return Edge{w: b.wapply(e.w, b.weight(e.n, i), OPmul), n: b.child(e.n, i)}
}

// ************************************************************

// Apply computes the result of a binary edge operation, where op must be one
// of OPadd, OPmul or OPkro.
func (b *QMDD) Apply(e0, e1 Edge, op Operator) Edge {
	switch op {
	case OPadd:
		return b.add(e0, e1)
	case OPmul:
		return b.mul(e0, e1)
	case OPkro:
		return b.kro(e0, e1)
	}
	panic(fmt.Errorf("%w (%s in Apply)", errOpcode, op))
}

// Add returns the edge for the sum of the two matrices denoted by e0 and e1.
func (b *QMDD) Add(e0, e1 Edge) Edge {
	return b.add(e0, e1)
}

// Mul returns the edge for the matrix product of e0 by e1, in that order.
func (b *QMDD) Mul(e0, e1 Edge) Edge {
	return b.mul(e0, e1)
}

// Kro returns the edge for the Kronecker product of e0 by e1. Unless e0 is a
// scalar, every variable of e0 must sit strictly above every variable of e1;
// breaking this precondition is a programming error and panics.
func (b *QMDD) Kro(e0, e1 Edge) Edge {
	return b.kro(e0, e1)
}

func (b *QMDD) add(e0, e1 Edge) Edge {
	if b.isterminal(e0.n) {
		if e0.w == w0 {
			return e1
		}
		if b.isterminal(e1.n) {
			return Edge{w: b.wapply(e0.w, e1.w, OPadd), n: b.terminal}
		}
	}
	// addition commutes, so operands are put in a canonical order to make
	// memoization effective
	if b.level(e0.n) > b.level(e1.n) ||
		(b.level(e0.n) == b.level(e1.n) && (e0.n > e1.n || (e0.n == e1.n && e0.w > e1.w))) {
		e0, e1 = e1, e0
	}
	if e1.w == w0 {
		return e0
	}
	if res, ok := b.matchedge(e0, e1, OPadd); ok {
		return res
	}
	top := b.level(e0.n)
	var z [4]Edge
	for i := 0; i < 4; i++ {
		q0 := Edge{w: b.wapply(e0.w, b.weight(e0.n, i), OPmul), n: b.child(e0.n, i)}
		q1 := e1
		if b.level(e1.n) == top {
			q1 = Edge{w: b.wapply(e1.w, b.weight(e1.n, i), OPmul), n: b.child(e1.n, i)}
		}
		z[i] = b.add(q0, q1)
	}
	return b.setedge(e0, e1, OPadd, b.makeedge(top, z))
}

func (b *QMDD) mul(e0, e1 Edge) Edge {
	if b.isterminal(e0.n) {
		switch e0.w {
		case w0:
			return b.Zero()
		case w1:
			return e1
		}
		return Edge{w: b.wapply(e0.w, e1.w, OPmul), n: e1.n}
	}
	if b.isterminal(e1.n) {
		// multiplication by a scalar commutes, unlike the general case
		switch e1.w {
		case w0:
			return b.Zero()
		case w1:
			return e0
		}
		return Edge{w: b.wapply(e0.w, e1.w, OPmul), n: e0.n}
	}
	if res, ok := b.matchedge(e0, e1, OPmul); ok {
		return res
	}
	top := b.level(e0.n)
	if l1 := b.level(e1.n); l1 < top {
		top = l1
	}
	var z [4]Edge
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			s := b.mul(b.quadrant(e0, top, i, 0), b.quadrant(e1, top, 0, j))
			s = b.add(s, b.mul(b.quadrant(e0, top, i, 1), b.quadrant(e1, top, 1, j)))
			z[2*i+j] = s
		}
	}
	return b.setedge(e0, e1, OPmul, b.makeedge(top, z))
}

func (b *QMDD) kro(e0, e1 Edge) Edge {
	if b.isterminal(e0.n) {
		switch e0.w {
		case w0:
			return b.Zero()
		case w1:
			return e1
		}
		return Edge{w: b.wapply(e0.w, e1.w, OPmul), n: e1.n}
	}
	if b.level(e0.n) >= b.level(e1.n) {
		panic(fmt.Errorf("%w (levels %d and %d)", errKroOrder, b.level(e0.n), b.level(e1.n)))
	}
	if res, ok := b.matchedge(e0, e1, OPkro); ok {
		return res
	}
	var z [4]Edge
	for i := 0; i < 4; i++ {
		z[i] = b.kro(Edge{w: b.weight(e0.n, i), n: b.child(e0.n, i)}, e1)
	}
	res := b.makeedge(b.level(e0.n), z)
	res.w = b.wapply(e0.w, res.w, OPmul)
	return b.setedge(e0, e1, OPkro, res)
}
