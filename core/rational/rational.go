// Package rational provides exact rational numbers for dimension exponents.
// Values are kept in lowest terms with a positive denominator, so two
// Rationals are equal exactly when their fields are equal.
package rational

import (
	"math"
	"math/bits"
	"strconv"

	"dimensional/internal/errors"
)

// Rational is an exact fraction num/den in lowest terms
type Rational struct {
	num int64
	den int64
}

var (
	// Zero is 0/1
	Zero = Rational{num: 0, den: 1}

	// One is 1/1
	One = Rational{num: 1, den: 1}

	// MinusOne is -1/1
	MinusOne = Rational{num: -1, den: 1}
)

// New creates num/den reduced to lowest terms. A zero denominator panics.
func New(num, den int64) Rational {
	if den == 0 {
		panic(errors.InvalidArgument("rational denominator must not be zero"))
	}
	if den < 0 {
		num, den = neg(num), neg(den)
	}
	if num == 0 {
		return Zero
	}
	g := gcd(abs(num), den)
	return Rational{num: num / g, den: den / g}
}

// Int creates the integer n as a Rational
func Int(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Num returns the numerator
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator, always positive
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// IsZero reports whether r is zero
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt reports whether r has denominator 1
func (r Rational) IsInt() bool {
	return r.Den() == 1
}

// Equal reports exact equality
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Cmp returns -1, 0 or +1
func (r Rational) Cmp(o Rational) int {
	// cross multiplication can overflow, compare via the difference
	d := r.Sub(o)
	switch {
	case d.num < 0:
		return -1
	case d.num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -r
func (r Rational) Neg() Rational {
	return Rational{num: neg(r.num), den: r.Den()}
}

// Inv returns 1/r. Inverting zero panics.
func (r Rational) Inv() Rational {
	if r.num == 0 {
		panic(errors.InvalidArgument("cannot invert zero exponent"))
	}
	return New(r.Den(), r.num)
}

// Add returns r + o
func (r Rational) Add(o Rational) Rational {
	rd, od := r.Den(), o.Den()
	g := gcd(rd, od)
	// r.num*(od/g) + o.num*(rd/g) over rd*(od/g)
	left := mul(r.num, od/g)
	right := mul(o.num, rd/g)
	return New(add(left, right), mul(rd, od/g))
}

// Sub returns r - o
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o
func (r Rational) Mul(o Rational) Rational {
	if r.num == 0 || o.num == 0 {
		return Zero
	}
	// cross-reduce first to keep intermediates small
	g1 := gcd(abs(r.num), o.Den())
	g2 := gcd(abs(o.num), r.Den())
	return New(mul(r.num/g1, o.num/g2), mul(r.Den()/g2, o.Den()/g1))
}

// Float64 returns the nearest float64
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders integers bare and fractions as num/den
func (r Rational) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return neg(n)
	}
	return n
}

func neg(n int64) int64 {
	if n == math.MinInt64 {
		panic(errors.Internal("rational overflow", nil))
	}
	return -n
}

func add(a, b int64) int64 {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		panic(errors.Internal("rational overflow", nil))
	}
	return s
}

func mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(abs(a)), uint64(abs(b)))
	if hi != 0 || lo > math.MaxInt64 {
		panic(errors.Internal("rational overflow", nil))
	}
	p := int64(lo)
	if (a < 0) != (b < 0) {
		p = -p
	}
	return p
}
