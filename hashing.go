// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

// Hash functions and cache accessors.

// _PAIR is a mapping function that maps (bijectively) a pair of non-negative
// integers into a unique integer, before folding with the cache mask.
func _PAIR(a, b int32) int64 {
	x := int64(a)
	y := int64(b)
	return ((x+y)*(x+y+1))/2 + x
}

func _TRIPLE(a, b, c int32) int64 {
	p := _PAIR(a, b)
	return (p+int64(c))*(p+int64(c)+1)/2 + p
}

// ************************************************************

// The hash for an edge operation is #(e0, e1, op), folding the two handles of
// each edge pairwise.

func (b *QMDD) edgehash(e0, e1 Edge, op Operator) int32 {
	h := _TRIPLE(int32(_PAIR(e0.w, e0.n)&int64(b.ecache.mask)), int32(_PAIR(e1.w, e1.n)&int64(b.ecache.mask)), int32(op))
	return int32(h) & b.ecache.mask
}

func (b *QMDD) matchedge(e0, e1 Edge, op Operator) (Edge, bool) {
	entry := b.ecache.table[b.edgehash(e0, e1, op)]
	if entry.a == e0 && entry.b == e1 && entry.op == op {
		b.opHit++
		return entry.res, true
	}
	b.opMiss++
	return Edge{}, false
}

func (b *QMDD) setedge(e0, e1 Edge, op Operator, res Edge) Edge {
	b.ecache.table[b.edgehash(e0, e1, op)] = edgedata{
		a:   e0,
		b:   e1,
		op:  op,
		res: res,
	}
	return res
}

// ************************************************************

// The hash for a weight operation is #(h0, h1, op).

func (b *QMDD) weighthash(h0, h1 int32, op Operator) int32 {
	return int32(_TRIPLE(h0, h1, int32(op))) & b.wcache.mask
}

func (b *QMDD) matchweight(h0, h1 int32, op Operator) (int32, bool) {
	entry := b.wcache.table[b.weighthash(h0, h1, op)]
	if entry.a == h0 && entry.b == h1 && entry.op == op {
		b.opHit++
		return entry.res, true
	}
	b.opMiss++
	return wInvalid, false
}

func (b *QMDD) setweight(h0, h1 int32, op Operator, res int32) int32 {
	b.wcache.table[b.weighthash(h0, h1, op)] = weightdata{
		a:   h0,
		b:   h1,
		op:  op,
		res: res,
	}
	return res
}
