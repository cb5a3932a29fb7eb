// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd_test

import (
	"fmt"
	"strings"

	"github.com/dalzilio/qmdd"
)

// This example shows the basic usage of the package: parse a circuit
// description, build the QMDD for its unitary, and inspect the root edge.
func Example_basic() {
	circuit := `.v a,b
.i a,b
.o a,b
BEGIN
h1 a
h1 a
t2 a,b
END
`
	prog, err := qmdd.Parse(strings.NewReader(circuit))
	if err != nil {
		fmt.Println(err)
		return
	}
	b, err := qmdd.New(prog.NumVars())
	if err != nil {
		fmt.Println(err)
		return
	}
	root, err := b.Run(prog)
	if err != nil {
		fmt.Println(err)
		return
	}
	// the two Hadamards cancel out, so the circuit reduces to a plain CNOT
	fmt.Printf("root weight: %s\n", b.Weight(root))
	fmt.Printf("root level:  %d\n", b.Level(root))
	fmt.Printf("same as cnot: %v\n", root == b.BuildGate(qmdd.GateToffoli, []int{0, 1}))
	// Output:
	// root weight: 1
	// root level:  0
	// same as cnot: true
}
