// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package qmdd defines a concrete type for Quantum Multiple-valued Decision
Diagrams (QMDD), a canonical, edge-weighted DAG representation for the unitary
matrix of a reversible or quantum circuit over a fixed set of variables.

Basics

Each diagram has a fixed number of variables, Varnum, declared when it is
initialized (using the function New). Variables are identified by an integer
level in the interval [0..Varnum), where level 0 is the topmost variable used
to split a matrix into its four quadrants. Level Varnum is reserved for the
unique terminal node, whose four children point back at itself with weight 1.

Operations over diagrams return an Edge; that is a pair made of a weight and
the index of a node in the diagram. Weights are exact complex values over the
ring Q[√2, i], stored as four machine-integer rationals, so two equal matrices
always reduce to the same edge: the same weight handle and the same node
index. This canonicity rests on three invariants maintained by the kernel: no
node has four equal children with four equal weights; no two live nodes share
the same level, children and weights; and in every node the first non-zero
outgoing weight (in quadrant order) is exactly 1, any common factor being
pushed up onto incoming edges.

Circuits

A circuit is described in a line-oriented textual format (the ".tfc" dialect)
declaring variables, inputs, outputs and constants, followed by a gate list
between BEGIN and END. Supported gates are the multi-controlled Toffoli and
Fredkin together with the usual single-target primitives (Pauli Y and Z, √NOT
and its inverse, Hadamard, and the π/4 rotations). Parse builds a Program from
this format and Run folds every gate, in stream order, into the product of the
per-gate matrices, returning the root edge for the whole circuit.

Memory management

All nodes are interned in a single monotone arena with a fixed, power-of-two
capacity chosen at initialization. Node indices are stable for the lifetime of
the diagram and nodes are never freed; exhausting the arena is a fatal error.
Two independent diagrams never share state.
*/
package qmdd
