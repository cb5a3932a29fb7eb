// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"fmt"
	"strings"
)

// Weights are exact complex values over the ring Q[√2, i]. A value is encoded
// with two irrationals, for its real and imaginary parts, and an irrational is
// a pair of rationals (a, b) denoting a + b√2. Rationals are kept in reduced
// form with a positive denominator, so comparing two values is plain structural
// equality.

type rat struct {
	num int64
	den int64
}

// irr is a value of the form a + b√2.
type irr struct {
	a rat
	b rat
}

// cplx is a complex value re + im·i with irrational parts.
type cplx struct {
	re irr
	im irr
}

// ************************************************************

func gcd(p, q int64) int64 {
	if p < 0 {
		p = -p
	}
	if q < 0 {
		q = -q
	}
	for q != 0 {
		p, q = q, p%q
	}
	return p
}

// mkrat returns the canonical form of num/den: coprime components with den
// positive. The denominator cannot be zero.
func mkrat(num, den int64) rat {
	if den == 0 {
		panic(errDivisionByZero)
	}
	if num == 0 {
		return rat{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return rat{num / g, den / g}
}

func (p rat) isZero() bool {
	return p.num == 0
}

func (p rat) neg() rat {
	return rat{-p.num, p.den}
}

func (p rat) add(q rat) rat {
	return mkrat(p.num*q.den+q.num*p.den, p.den*q.den)
}

func (p rat) sub(q rat) rat {
	return mkrat(p.num*q.den-q.num*p.den, p.den*q.den)
}

func (p rat) mul(q rat) rat {
	return mkrat(p.num*q.num, p.den*q.den)
}

func (p rat) div(q rat) rat {
	if p.num == 0 {
		return rat{0, 1}
	}
	if q.num == 0 {
		panic(errDivisionByZero)
	}
	return mkrat(p.num*q.den, p.den*q.num)
}

func (p rat) String() string {
	if p.den == 1 {
		return fmt.Sprintf("%d", p.num)
	}
	return fmt.Sprintf("%d/%d", p.num, p.den)
}

// ************************************************************

func (x irr) isZero() bool {
	return x.a.isZero() && x.b.isZero()
}

func (x irr) neg() irr {
	return irr{x.a.neg(), x.b.neg()}
}

func (x irr) add(y irr) irr {
	return irr{x.a.add(y.a), x.b.add(y.b)}
}

func (x irr) sub(y irr) irr {
	return irr{x.a.sub(y.a), x.b.sub(y.b)}
}

// mul computes (a + b√2)(c + d√2) = (ac + 2bd) + (ad + bc)√2.
func (x irr) mul(y irr) irr {
	two := rat{2, 1}
	return irr{
		a: x.a.mul(y.a).add(two.mul(x.b.mul(y.b))),
		b: x.a.mul(y.b).add(x.b.mul(y.a)),
	}
}

// div multiplies by the conjugate (c - d√2) over the norm (c² - 2d²).
func (x irr) div(y irr) irr {
	if x.isZero() {
		return irr{rat{0, 1}, rat{0, 1}}
	}
	two := rat{2, 1}
	norm := y.a.mul(y.a).sub(two.mul(y.b.mul(y.b)))
	if norm.isZero() {
		panic(errDivisionByZero)
	}
	num := x.mul(irr{y.a, y.b.neg()})
	return irr{num.a.div(norm), num.b.div(norm)}
}

func (x irr) String() string {
	if x.isZero() {
		return "0"
	}
	var sb strings.Builder
	if !x.a.isZero() {
		sb.WriteString(x.a.String())
	}
	if !x.b.isZero() {
		if !x.a.isZero() && x.b.num > 0 {
			sb.WriteByte('+')
		}
		switch {
		case x.b.num == 1 && x.b.den == 1:
		case x.b.num == -1 && x.b.den == 1:
			sb.WriteByte('-')
		default:
			sb.WriteString(x.b.String())
		}
		sb.WriteString("√2")
	}
	return sb.String()
}

// terms reports how many non-zero terms appear in the printed form of x.
func (x irr) terms() int {
	c := 0
	if !x.a.isZero() {
		c++
	}
	if !x.b.isZero() {
		c++
	}
	return c
}

// ************************************************************

func cplxZero() cplx {
	return cplx{re: irr{rat{0, 1}, rat{0, 1}}, im: irr{rat{0, 1}, rat{0, 1}}}
}

func cplxOne() cplx {
	return cplx{re: irr{rat{1, 1}, rat{0, 1}}, im: irr{rat{0, 1}, rat{0, 1}}}
}

func cplxImag() cplx {
	return cplx{re: irr{rat{0, 1}, rat{0, 1}}, im: irr{rat{1, 1}, rat{0, 1}}}
}

func cplxSqrt2() cplx {
	return cplx{re: irr{rat{0, 1}, rat{1, 1}}, im: irr{rat{0, 1}, rat{0, 1}}}
}

func (x cplx) isZero() bool {
	return x.re.isZero() && x.im.isZero()
}

func (x cplx) neg() cplx {
	return cplx{x.re.neg(), x.im.neg()}
}

func (x cplx) add(y cplx) cplx {
	return cplx{x.re.add(y.re), x.im.add(y.im)}
}

func (x cplx) sub(y cplx) cplx {
	return cplx{x.re.sub(y.re), x.im.sub(y.im)}
}

// mul computes (a + bi)(c + di) = (ac - bd) + (ad + bc)i.
func (x cplx) mul(y cplx) cplx {
	return cplx{
		re: x.re.mul(y.re).sub(x.im.mul(y.im)),
		im: x.re.mul(y.im).add(x.im.mul(y.re)),
	}
}

// div computes (a + bi)/(c + di) = (ac + bd)/(c² + d²) + ((bc - ad)/(c² + d²))i.
func (x cplx) div(y cplx) cplx {
	if x.isZero() {
		return cplxZero()
	}
	norm := y.re.mul(y.re).add(y.im.mul(y.im))
	if norm.isZero() {
		panic(errDivisionByZero)
	}
	return cplx{
		re: x.re.mul(y.re).add(x.im.mul(y.im)).div(norm),
		im: x.im.mul(y.re).sub(x.re.mul(y.im)).div(norm),
	}
}

// String returns a compact human form for the value, such as 1/2+1/2i or
// -1/2√2. Parentheses group a compound imaginary coefficient, as in (1+√2)i.
func (x cplx) String() string {
	if x.isZero() {
		return "0"
	}
	var sb strings.Builder
	if !x.re.isZero() {
		sb.WriteString(x.re.String())
	}
	if !x.im.isZero() {
		ims := x.im.String()
		if !x.re.isZero() && ims[0] != '-' {
			sb.WriteByte('+')
		}
		if x.im.terms() > 1 {
			sb.WriteString("(" + ims + ")")
		} else if ims == "1" {
			// coefficient 1 is left implicit
		} else if ims == "-1" {
			sb.WriteByte('-')
		} else {
			sb.WriteString(ims)
		}
		sb.WriteByte('i')
	}
	return sb.String()
}
