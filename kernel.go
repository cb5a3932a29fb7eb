// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"errors"
)

// _MAXVAR is the maximal number of levels in a QMDD. One extra level is
// reserved for the terminal node.
const _MAXVAR int32 = 0x1FFFFF

// _DEFAULTNODESIZE is the default capacity of the node arena. The arena is the
// hard bound on the total number of unique nodes; it is never resized.
const _DEFAULTNODESIZE int = 1 << 20

// _DEFAULTCACHESIZE is the default number of entries in each of the two
// operation caches (edge operations and weight operations).
const _DEFAULTCACHESIZE int = 1 << 10

// _DEFAULTWEIGHTSIZE is the initial capacity of the weight table. The table
// grows as needed; only its two first entries, for the constants 0 and 1, are
// at fixed positions.
const _DEFAULTWEIGHTSIZE int = 1 << 8

// w0 and w1 are the reserved handles for the weight values 0 and 1. A handle,
// once minted, permanently denotes the same value.
const (
	w0 int32 = 0
	w1 int32 = 1
)

// wInvalid is the sentinel weight handle used to mark empty cache entries and
// free slots in the unique table.
const wInvalid int32 = -1

var errMemory = errors.New("node arena exhausted")
var errDivisionByZero = errors.New("weight division by zero")
var errKroOrder = errors.New("kronecker operands out of level order")
var errOpcode = errors.New("unknown opcode in gate stream")
