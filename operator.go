// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

// Operator describes the operations available on edges with Apply. Operators
// OPadd to OPkro apply to edges; OPsub and OPdiv are only meaningful for
// weights and appear in the weight cache.
type Operator int

const (
	OPadd Operator = iota // Matrix addition
	OPmul                 // Matrix multiplication
	OPkro                 // Kronecker (tensor) product
	OPsub                 // Weight subtraction. Not an edge operation
	OPdiv                 // Weight division. Not an edge operation
)

var opnames = [5]string{
	OPadd: "add",
	OPmul: "mul",
	OPkro: "kro",
	OPsub: "sub",
	OPdiv: "div",
}

func (op Operator) String() string {
	return opnames[op]
}
