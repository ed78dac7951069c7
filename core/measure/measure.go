// Package measure implements measures: a unit plus a signed decimal quantity.
//
// Operations that combine independently built measures (Add, Subtract,
// Convert, Compare) report incompatibility as an error value of type
// DIMENSION_MISMATCH or UNIT_MISMATCH rather than panicking.
//
// Equal and Compare are strict: they require identical units. Equivalent and
// CompareEquivalent normalize both sides first and only require equal
// dimensions.
package measure

import (
	"github.com/shopspring/decimal"

	"dimensional/core/numeric"
	"dimensional/core/rational"
	"dimensional/core/unit"
	"dimensional/internal/errors"
)

// Measure is an immutable quantity expressed in a unit
type Measure struct {
	unit     unit.Unit
	quantity decimal.Decimal
}

// New creates a measure. The quantity may have any sign.
func New(u unit.Unit, quantity decimal.Decimal) Measure {
	return Measure{unit: u, quantity: numeric.Minimal(quantity)}
}

// Scalar treats a bare number as a dimensionless measure
func Scalar(n decimal.Decimal) Measure {
	return New(unit.Dimensionless(), n)
}

// Unit returns the measure's unit
func (m Measure) Unit() unit.Unit {
	return m.unit
}

// Quantity returns the measure's quantity
func (m Measure) Quantity() decimal.Decimal {
	return m.quantity
}

// Equal reports identical units and exactly equal quantities.
// 1 km and 1000 m are not Equal; see Equivalent.
func (m Measure) Equal(o Measure) bool {
	return m.unit.Equal(o.unit) && m.quantity.Equal(o.quantity)
}

// String renders "<quantity> <unit>"
func (m Measure) String() string {
	return m.quantity.String() + " " + m.unit.String()
}

// Equal reports whether a and b are strictly equal
func Equal(a, b Measure) bool {
	return a.Equal(b)
}

// Multiply returns a * b
func Multiply(a, b Measure) Measure {
	return New(unit.Multiply(a.unit, b.unit), a.quantity.Mul(b.quantity))
}

// MultiplyScalar returns m * n, with n treated as a dimensionless measure
func MultiplyScalar(m Measure, n decimal.Decimal) Measure {
	return Multiply(m, Scalar(n))
}

// Divide returns a / b. A zero divisor quantity is an INVALID_ARGUMENT error.
func Divide(a, b Measure) (Measure, error) {
	q, err := numeric.Quo(a.quantity, b.quantity)
	if err != nil {
		return Measure{}, errors.Wrapf(errors.TypeInvalidArgument, err, "cannot divide %s by %s", a, b)
	}
	return New(unit.Divide(a.unit, b.unit), q), nil
}

// DivideScalar returns m / n, with n treated as a dimensionless measure
func DivideScalar(m Measure, n decimal.Decimal) (Measure, error) {
	return Divide(m, Scalar(n))
}

// ScalarDivide returns n / m
func ScalarDivide(n decimal.Decimal, m Measure) (Measure, error) {
	return Divide(Scalar(n), m)
}

// Pow raises m to an exact rational exponent. The unit follows unit.Pow and
// the quantity follows numeric.Pow, so non-integer exponents are exact only
// for exactly representable roots. A zero exponent yields quantity 1 in the
// dimensionless unit. Even roots of negative quantities and negative powers
// of zero are INVALID_ARGUMENT errors.
func Pow(m Measure, exp rational.Rational) (Measure, error) {
	q, err := numeric.Pow(m.quantity, exp)
	if err != nil {
		return Measure{}, errors.Wrapf(errors.TypeInvalidArgument, err, "cannot raise %s to %s", m, exp)
	}
	return New(unit.Pow(m.unit, exp), q), nil
}

// Normalize rewrites m in the scale-1 unit of its dimension
func Normalize(m Measure) Measure {
	return New(unit.Base(m.unit.Dimension()), m.quantity.Mul(m.unit.Scale()))
}

// Add returns a + b in the base unit of their shared dimension.
// Operands of different dimensions yield a DIMENSION_MISMATCH error.
func Add(a, b Measure) (Measure, error) {
	if !a.unit.Dimension().Equal(b.unit.Dimension()) {
		return Measure{}, errors.DimensionMismatch("add", a, b)
	}
	na, nb := Normalize(a), Normalize(b)
	return New(na.unit, na.quantity.Add(nb.quantity)), nil
}

// Subtract returns a - b in the base unit of their shared dimension.
// Operands of different dimensions yield a DIMENSION_MISMATCH error.
func Subtract(a, b Measure) (Measure, error) {
	if !a.unit.Dimension().Equal(b.unit.Dimension()) {
		return Measure{}, errors.DimensionMismatch("subtract", a, b)
	}
	na, nb := Normalize(a), Normalize(b)
	return New(na.unit, na.quantity.Sub(nb.quantity)), nil
}

// Sum adds measures left to right. It needs at least one operand.
func Sum(first Measure, rest ...Measure) (Measure, error) {
	total := Normalize(first)
	for _, m := range rest {
		next, err := Add(total, m)
		if err != nil {
			return Measure{}, err
		}
		total = next
	}
	return total, nil
}

// Convert re-expresses m in another unit of the same dimension.
// Units of different dimensions yield a DIMENSION_MISMATCH error.
func Convert(m Measure, to unit.Unit) (Measure, error) {
	factor, err := unit.RelativeScale(m.unit, to)
	if err != nil {
		return Measure{}, err
	}
	return New(to, m.quantity.Mul(factor)), nil
}

// Compare orders measures expressed in the same unit.
// Different units yield a UNIT_MISMATCH error even when dimensions agree.
func Compare(a, b Measure) (int, error) {
	if !a.unit.Equal(b.unit) {
		return 0, errors.UnitMismatch("compare", a, b)
	}
	return a.quantity.Cmp(b.quantity), nil
}

// Equivalent reports whether a and b denote the same physical amount
func Equivalent(a, b Measure) bool {
	return Normalize(a).Equal(Normalize(b))
}

// CompareEquivalent orders measures of the same dimension after normalizing.
// Different dimensions yield a DIMENSION_MISMATCH error.
func CompareEquivalent(a, b Measure) (int, error) {
	if !a.unit.Dimension().Equal(b.unit.Dimension()) {
		return 0, errors.DimensionMismatch("compare", a, b)
	}
	return Normalize(a).quantity.Cmp(Normalize(b).quantity), nil
}

// ToUnit folds the quantity into the scale, producing a unit.
// A non-positive product is an INVALID_ARGUMENT error.
func ToUnit(m Measure) (unit.Unit, error) {
	return unit.New(m.unit.Dimension(), m.unit.Scale().Mul(m.quantity))
}

// FromUnit turns a unit's scale into a quantity over the base unit
func FromUnit(u unit.Unit) Measure {
	return New(unit.Base(u.Dimension()), u.Scale())
}
