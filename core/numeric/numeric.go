// Package numeric provides the decimal arithmetic shared by units and measures.
// All helpers are pure; the only package state is the precision setting,
// which is stored atomically and normally written once at startup.
package numeric

import (
	"math/big"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"dimensional/internal/errors"
)

// Precision controls the inexact paths of the decimal helpers
type Precision struct {
	// DivisionPlaces is the number of decimal places kept when a quotient does not terminate
	DivisionPlaces int32 `json:"division_places" hcl:"division_places,optional"`

	// RootDigits is the number of significant digits used when searching for an exact root
	RootDigits int32 `json:"root_digits" hcl:"root_digits,optional"`
}

// DefaultPrecision returns the precision used when nothing is configured
func DefaultPrecision() Precision {
	return Precision{
		DivisionPlaces: 34,
		RootDigits:     12,
	}
}

var current atomic.Pointer[Precision]

func init() {
	p := DefaultPrecision()
	current.Store(&p)
}

// Configure replaces the active precision. Non-positive fields keep their defaults.
func Configure(p Precision) {
	def := DefaultPrecision()
	if p.DivisionPlaces <= 0 {
		p.DivisionPlaces = def.DivisionPlaces
	}
	if p.RootDigits <= 0 {
		p.RootDigits = def.RootDigits
	}
	current.Store(&p)
}

// Current returns the active precision
func Current() Precision {
	return *current.Load()
}

var (
	ten = big.NewInt(10)
	two = big.NewInt(2)
	fiv = big.NewInt(5)
)

// One is the decimal 1
var One = decimal.NewFromInt(1)

// Number is any Go numeric literal type accepted by Of
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Of converts a Go number into a decimal in minimal form.
// Floats go through their shortest decimal representation; named float32
// types are widened to float64 first.
func Of[T Number](v T) decimal.Decimal {
	if f, ok := any(v).(float32); ok {
		return Minimal(decimal.NewFromFloat32(f))
	}

	var one T = 1
	switch {
	case one/2 != 0:
		// float kinds
		return Minimal(decimal.NewFromFloat(float64(v)))
	case one-2 > 0:
		// unsigned kinds wrap below zero
		return Minimal(decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0))
	}
	return Minimal(decimal.NewFromInt(int64(v)))
}

// Minimal strips trailing zeros from the coefficient, so 1.500 becomes 1.5
// and 1000 is stored as 1e3. The numeric value is unchanged.
func Minimal(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	coef := d.Coefficient()
	exp := d.Exponent()
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef, q = q, coef
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}

// Quo returns a / b. The quotient is exact whenever it terminates, that is
// when b's coefficient has no prime factors other than 2 and 5; otherwise it
// is rounded to the configured number of decimal places.
func Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, errors.InvalidArgument("division by zero")
	}
	if inv, ok := exactInverse(b); ok {
		return Minimal(a.Mul(inv)), nil
	}
	return Minimal(a.DivRound(b, Current().DivisionPlaces)), nil
}

// exactInverse computes 1/b exactly when it has a finite decimal expansion
func exactInverse(b decimal.Decimal) (decimal.Decimal, bool) {
	b = Minimal(b)
	coef := new(big.Int).Abs(b.Coefficient())

	rest := new(big.Int).Set(coef)
	twos, fives := strip(rest, two), strip(rest, fiv)
	if rest.Cmp(big.NewInt(1)) != 0 {
		return decimal.Zero, false
	}

	k := twos
	if fives > k {
		k = fives
	}
	// 1/coef = (10^k / coef) * 10^-k
	m := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
	m.Quo(m, coef)
	if b.Sign() < 0 {
		m.Neg(m)
	}
	return decimal.NewFromBigInt(m, -int32(k)-b.Exponent()), true
}

func strip(n *big.Int, p *big.Int) int {
	count := 0
	q, r := new(big.Int), new(big.Int)
	for n.Sign() != 0 {
		q.QuoRem(n, p, r)
		if r.Sign() != 0 {
			break
		}
		n.Set(q)
		count++
	}
	return count
}

// Positive reports whether d is strictly greater than zero
func Positive(d decimal.Decimal) bool {
	return d.Sign() > 0
}
