// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

// configs is used to store the values of the different parameters of a QMDD.
type configs struct {
	varnum    int // number of circuit variables
	nodesize  int // capacity of the node arena (power of two)
	cachesize int // number of entries in each operation cache (power of two)
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:    varnum,
		nodesize:  _DEFAULTNODESIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// pow2gte returns the smallest power of two greater than or equal to size.
func pow2gte(size int) int {
	p := 1
	for p < size {
		p <<= 1
	}
	return p
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets the capacity of the node arena, rounded up to a power of two. The arena
// is a hard bound: an operation that needs more unique nodes than its capacity
// aborts the computation. The default capacity is about a million nodes
// (1 << 20).
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = pow2gte(size)
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the number of entries in each of the two operation caches, rounded
// up to a power of two. Caches are direct-mapped and replace on collision, so
// their size only affects performance, never results. The default is 1024
// entries.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.cachesize = pow2gte(size)
		}
	}
}
