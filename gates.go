// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Gate enumerates the gates of the textual format. Toffoli covers the plain
// NOT (no control) and the CNOT (one control); Fredkin is a macro gate that
// never reaches the matrix builder, it expands into three Toffolis.
type Gate int

const (
	GateToffoli Gate = iota
	GateFredkin
	GateY
	GateZ
	GateV
	GateVdag
	GateH
	GateQ
	GateQdag
)

var gatenames = [9]string{
	GateToffoli: "t",
	GateFredkin: "f",
	GateY:       "y",
	GateZ:       "z",
	GateV:       "v",
	GateVdag:    "v'",
	GateH:       "h",
	GateQ:       "q",
	GateQdag:    "q'",
}

func (g Gate) String() string {
	return gatenames[g]
}

// minparams returns the minimal legal parameter count for a gate.
func (g Gate) minparams() int {
	if g == GateFredkin {
		return 2
	}
	return 1
}

// ************************************************************

// prim identifies one of the fixed 2x2 primitives used to assemble gate
// matrices. The projectors are only used to build controlled gates and never
// appear as user gates.
type prim int

const (
	primI prim = iota
	primX
	primY
	primZ
	primV
	primVdag
	primH
	primQ
	primQdag
	primP0
	primP1
)

// primvalues returns the quadrant weight vector [w00, w01, w10, w11] of a
// primitive, built with exact weight arithmetic.
func primvalues(p prim) [4]cplx {
	zero := cplxZero()
	one := cplxOne()
	i := cplxImag()
	half := one.div(one.add(one))
	// 1/√2 reduces to (1/2)√2, and (1±i)/√2 follows by multiplication
	invsqrt2 := one.div(cplxSqrt2())
	switch p {
	case primI:
		return [4]cplx{one, zero, zero, one}
	case primX:
		return [4]cplx{zero, one, one, zero}
	case primY:
		return [4]cplx{zero, i.neg(), i, zero}
	case primZ:
		return [4]cplx{one, zero, zero, one.neg()}
	case primV:
		return [4]cplx{half.mul(one.add(i)), half.mul(one.sub(i)), half.mul(one.sub(i)), half.mul(one.add(i))}
	case primVdag:
		return [4]cplx{half.mul(one.sub(i)), half.mul(one.add(i)), half.mul(one.add(i)), half.mul(one.sub(i))}
	case primH:
		return [4]cplx{invsqrt2, invsqrt2, invsqrt2, invsqrt2.neg()}
	case primQ:
		return [4]cplx{one, zero, zero, invsqrt2.mul(one.add(i))}
	case primQdag:
		return [4]cplx{one, zero, zero, invsqrt2.mul(one.sub(i))}
	case primP0:
		return [4]cplx{one, zero, zero, zero}
	case primP1:
		return [4]cplx{zero, zero, zero, one}
	}
	panic(fmt.Errorf("%w (primitive %d)", errOpcode, p))
}

// target returns the primitive applied on the target variable of a gate.
func (g Gate) target() prim {
	switch g {
	case GateToffoli:
		return primX
	case GateY:
		return primY
	case GateZ:
		return primZ
	case GateV:
		return primV
	case GateVdag:
		return primVdag
	case GateH:
		return primH
	case GateQ:
		return primQ
	case GateQdag:
		return primQdag
	}
	panic(fmt.Errorf("%w (%s has no target primitive)", errOpcode, g))
}

// primedge builds the level-local edge for a 2x2 primitive: a node at the
// given level whose four children are the terminal. Normalization applies, so
// for instance the Hadamard yields an edge weighted 1/√2 over the node
// [1, 1, 1, -1].
func (b *QMDD) primedge(level int32, p prim) Edge {
	var z [4]Edge
	for i, v := range primvalues(p) {
		z[i] = Edge{w: b.weights.insert(v), n: b.terminal}
	}
	return b.makeedge(level, z)
}

// ************************************************************

// BuildGate returns the edge for the full 2^n x 2^n matrix of a gate, where
// the last variable id in vars is the target and all preceding ones are
// controls. Controls may sit above or below the target; the caller is
// responsible for the id ordering conventions of the textual format.
func (b *QMDD) BuildGate(g Gate, vars []int) Edge {
	target := int32(vars[len(vars)-1])
	controls := bitset.New(uint(b.varnum))
	for _, v := range vars[:len(vars)-1] {
		controls.Set(uint(v))
	}
	// active is the action of the gate conditional on every control seen so
	// far being 1; inactive is the identity branch taken when one of the
	// controls below the target is 0. Above the target only active remains,
	// the identity branch being completed level by level.
	active := b.Terminal()
	inactive := b.Zero()
	for level := b.varnum - 1; level >= 0; level-- {
		switch {
		case level > target:
			if controls.Test(uint(level)) {
				active = b.kro(b.primedge(level, primP1), active)
				inactive = b.add(
					b.kro(b.primedge(level, primP0), b.idents[level+1]),
					b.kro(b.primedge(level, primP1), inactive),
				)
			} else {
				active = b.kro(b.primedge(level, primI), active)
				inactive = b.kro(b.primedge(level, primI), inactive)
			}
		case level == target:
			active = b.add(
				b.kro(b.primedge(level, primI), inactive),
				b.kro(b.primedge(level, g.target()), active),
			)
			inactive = b.Zero()
		default:
			if controls.Test(uint(level)) {
				active = b.add(
					b.kro(b.primedge(level, primP0), b.idents[level+1]),
					b.kro(b.primedge(level, primP1), active),
				)
			} else {
				active = b.kro(b.primedge(level, primI), active)
			}
		}
	}
	return active
}
