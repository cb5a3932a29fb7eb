// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

// weighttable interns the distinct weight values appearing in the diagram and
// maps them to small handles. The table is append-only: a handle, once minted,
// permanently denotes the same value, and two equal values share one handle.
// The first two entries are the sentinels for the constants 0 and 1.
type weighttable struct {
	values []cplx
}

func newweighttable(size int) *weighttable {
	wt := &weighttable{values: make([]cplx, 2, size)}
	wt.values[w0] = cplxZero()
	wt.values[w1] = cplxOne()
	return wt
}

// insert returns the handle for value v, appending it if it was never seen
// before. The table stays small in practice (a few hundred entries), so a
// linear scan is good enough and keeps equality exact.
func (wt *weighttable) insert(v cplx) int32 {
	for k, w := range wt.values {
		if w == v {
			return int32(k)
		}
	}
	wt.values = append(wt.values, v)
	return int32(len(wt.values) - 1)
}

func (wt *weighttable) get(h int32) cplx {
	return wt.values[h]
}
