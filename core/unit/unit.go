// Package unit implements units: a dimension with a strictly positive decimal scale.
// Every operation delegates the dimension to package dimension and the scale
// to package numeric.
package unit

import (
	"github.com/shopspring/decimal"

	"dimensional/core/dimension"
	"dimensional/core/numeric"
	"dimensional/core/rational"
	"dimensional/internal/errors"
)

// Unit is an immutable dimension plus positive scale
type Unit struct {
	dimension dimension.Dimension
	scale     decimal.Decimal
	name      string
}

// Option configures a Unit at construction
type Option func(*Unit)

// WithName sets the display name
func WithName(name string) Option {
	return func(u *Unit) {
		u.name = name
	}
}

// New creates a unit. A scale that is not strictly positive is an
// INVALID_ARGUMENT error; no unit can be a non-positive multiple of its base.
func New(dim dimension.Dimension, scale decimal.Decimal, opts ...Option) (Unit, error) {
	if !numeric.Positive(scale) {
		return Unit{}, errors.Newf(errors.TypeInvalidArgument, "unit scale must be positive, got %s", scale).
			WithContext("dimension", dim.String())
	}
	u := Unit{
		dimension: dim,
		scale:     numeric.Minimal(scale),
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u, nil
}

// MustNew is New that panics on an invalid scale
func MustNew(dim dimension.Dimension, scale decimal.Decimal, opts ...Option) Unit {
	u, err := New(dim, scale, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Base returns the scale-1 unit of a dimension
func Base(dim dimension.Dimension, opts ...Option) Unit {
	return MustNew(dim, numeric.One, opts...)
}

// Dimensionless returns the dimensionless unit with scale 1
func Dimensionless() Unit {
	return Base(dimension.Dimensionless())
}

// Scalar treats a bare number as a dimensionless unit of that scale.
// It panics when n is not strictly positive.
func Scalar(n decimal.Decimal) Unit {
	return MustNew(dimension.Dimensionless(), n)
}

// Dimension returns the unit's dimension
func (u Unit) Dimension() dimension.Dimension {
	return u.dimension
}

// Scale returns the unit's scale; the zero Unit reports 1
func (u Unit) Scale() decimal.Decimal {
	if u.scale.Sign() == 0 {
		return numeric.One
	}
	return u.scale
}

// Name returns the display name, empty when unnamed
func (u Unit) Name() string {
	return u.name
}

// Rename returns a copy of u under a new display name
func (u Unit) Rename(name string) Unit {
	u.name = name
	return u
}

// Equal reports equal dimensions and exactly equal scales. Names are ignored.
func (u Unit) Equal(o Unit) bool {
	return u.dimension.Equal(o.dimension) && u.Scale().Equal(o.Scale())
}

// String renders "<scale> <dimension>"
func (u Unit) String() string {
	return u.Scale().String() + " " + u.dimension.String()
}

// Equal reports whether a and b are the same unit
func Equal(a, b Unit) bool {
	return a.Equal(b)
}

// Pow raises u to an exact rational exponent. The dimension exponent is
// exact; the scale is exact for integer exponents and for rational exponents
// whose root is exactly representable, and otherwise goes through float64.
// A zero exponent yields the dimensionless unit with scale 1.
func Pow(u Unit, exp rational.Rational) Unit {
	if exp.IsZero() {
		return Dimensionless()
	}
	scale, err := numeric.Pow(u.Scale(), exp)
	if err != nil {
		// only reachable when the result exponent leaves the decimal range
		panic(errors.Wrapf(errors.TypeInvalidArgument, err, "cannot raise unit %s to %s", u, exp))
	}
	return MustNew(dimension.Pow(u.dimension, exp), scale)
}

// Inverse returns u^-1
func Inverse(u Unit) Unit {
	return Pow(u, rational.MinusOne)
}

// Multiply returns a * b
func Multiply(a, b Unit) Unit {
	return MustNew(dimension.Multiply(a.dimension, b.dimension), a.Scale().Mul(b.Scale()))
}

// MultiplyScalar returns u * n, with n treated as a dimensionless unit
func MultiplyScalar(u Unit, n decimal.Decimal) Unit {
	return Multiply(u, Scalar(n))
}

// Divide returns a / b
func Divide(a, b Unit) Unit {
	scale, err := numeric.Quo(a.Scale(), b.Scale())
	if err != nil {
		panic(err)
	}
	return MustNew(dimension.Divide(a.dimension, b.dimension), scale)
}

// DivideScalar returns u / n, with n treated as a dimensionless unit
func DivideScalar(u Unit, n decimal.Decimal) Unit {
	return Divide(u, Scalar(n))
}

// ScalarDivide returns n / u, which is n times the inverse of u
func ScalarDivide(n decimal.Decimal, u Unit) Unit {
	return Multiply(Scalar(n), Inverse(u))
}

// Compare orders two units of the same dimension by scale.
// Units of different dimensions yield a DIMENSION_MISMATCH error.
func Compare(a, b Unit) (int, error) {
	if !a.dimension.Equal(b.dimension) {
		return 0, errors.DimensionMismatch("compare units", a, b)
	}
	return a.Scale().Cmp(b.Scale()), nil
}

// RelativeScale returns from.scale / to.scale, the factor that converts a
// quantity expressed in from into one expressed in to.
// Units of different dimensions yield a DIMENSION_MISMATCH error.
func RelativeScale(from, to Unit) (decimal.Decimal, error) {
	if !from.dimension.Equal(to.dimension) {
		return decimal.Zero, errors.DimensionMismatch("relative scale", from, to)
	}
	return numeric.Quo(from.Scale(), to.Scale())
}
