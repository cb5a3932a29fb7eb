// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"fmt"
)

// QMDD is a Quantum Multiple-valued Decision Diagram over a fixed set of
// circuit variables. All the nodes of the diagram are interned in a single
// monotone arena owned by the QMDD; node indices are stable for the lifetime
// of the program and nodes are never freed.
type QMDD struct {
	nodes     []qnode      // Node arena. The terminal is always at index 0
	table     []int32      // Open-addressed unique table of node indices, sized like the arena
	mask      int32        // Power-of-two mask used by the unique table and hash
	terminal  int32        // Index of the terminal node
	varnum    int32        // Number of circuit variables
	level2var []string     // Variable names, used for display
	weights   *weighttable // Interned weight values
	idents    []Edge       // Identity sub-matrices over levels k..varnum-1, by level
	ecache    edgecache    // Cache for add/mul/kronecker results
	wcache    weightcache  // Cache for weight operation results
	cacheStat              // Information about table and cache usage
}

// New initializes a QMDD for a circuit with varnum variables. Options can be
// used to change the capacity of the node arena (Nodesize) and of the
// operation caches (Cachesize).
func New(varnum int, options ...func(*configs)) (*QMDD, error) {
	if varnum < 1 || int32(varnum) > _MAXVAR {
		return nil, fmt.Errorf("bad number of variables (%d) in call to New", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &QMDD{
		nodes:   make([]qnode, 0, c.nodesize),
		table:   make([]int32, c.nodesize),
		mask:    int32(c.nodesize - 1),
		varnum:  int32(varnum),
		weights: newweighttable(_DEFAULTWEIGHTSIZE),
	}
	for k := range b.table {
		b.table[k] = wInvalid
	}
	b.level2var = make([]string, varnum)
	for k := range b.level2var {
		b.level2var[k] = fmt.Sprintf("x%d", k)
	}
	// The terminal is allocated first, at level varnum, with four self-loops
	// weighted 1. The self-loops let the recursive operators resolve base
	// cases without branching.
	b.nodes = append(b.nodes, qnode{
		level:    b.varnum,
		children: [4]int32{0, 0, 0, 0},
		weights:  [4]int32{w1, w1, w1, w1},
	})
	b.terminal = 0
	b.ecache.init(c.cachesize)
	b.wcache.init(c.cachesize)
	b.initidents()
	return b, nil
}

// Varnum returns the number of circuit variables.
func (b *QMDD) Varnum() int {
	return int(b.varnum)
}

// Terminal returns the edge for the 1x1 identity: the terminal node with
// weight 1.
func (b *QMDD) Terminal() Edge {
	return Edge{w: w1, n: b.terminal}
}

// Zero returns the canonical zero edge.
func (b *QMDD) Zero() Edge {
	return Edge{w: w0, n: b.terminal}
}

// ************************************************************

// nodehash is a cheap sum of the numeric components of a node, folded with the
// table mask.
func (b *QMDD) nodehash(level int32, children, weights [4]int32) int32 {
	h := level
	for i := 0; i < 4; i++ {
		h += children[i] + weights[i]
	}
	return h & b.mask
}

// makenode returns the canonical node for the given level, children and edge
// weights. Zero-weight slots are redirected to the terminal first, so that
// value-equal nodes are always bit-equal; a fully redundant node is rejected
// and the common child returned in its place. The caller must pass a weight
// vector in normalized form (see normalize).
func (b *QMDD) makenode(level int32, children, weights [4]int32) int32 {
	b.uniqueAccess++
	for i := 0; i < 4; i++ {
		if weights[i] == w0 {
			children[i] = b.terminal
		}
	}
	if children[0] == children[1] && children[1] == children[2] && children[2] == children[3] &&
		weights[0] == weights[1] && weights[1] == weights[2] && weights[2] == weights[3] {
		return children[0]
	}
	h := b.nodehash(level, children, weights)
	for b.table[h] != wInvalid {
		n := &b.nodes[b.table[h]]
		if n.level == level && n.children == children && n.weights == weights {
			b.uniqueHit++
			return b.table[h]
		}
		b.uniqueChain++
		h = (h + 1) & b.mask
	}
	b.uniqueMiss++
	if len(b.nodes) == cap(b.nodes) {
		panic(fmt.Errorf("%w (capacity %d)", errMemory, cap(b.nodes)))
	}
	b.nodes = append(b.nodes, qnode{level: level, children: children, weights: weights})
	res := int32(len(b.nodes) - 1)
	b.table[h] = res
	return res
}
