// Package dimension implements the canonical dimension algebra.
//
// A Dimension is either a leaf over a single Base or a product of bases raised
// to exact rational exponents. Every constructor canonicalizes: composite
// operands are flattened, exponents are summed per base, zero exponents are
// dropped and the remaining terms are sorted by base name. Two dimensions are
// equal exactly when their canonical terms are equal, however they were built.
package dimension

import (
	"sort"
	"strconv"
	"strings"

	"dimensional/core/rational"
)

// Base is an irreducible, named dimension atom such as "length".
// Bases compare by name value.
type Base struct {
	name string
}

// NewBase creates a base identity
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the base name
func (b Base) Name() string {
	return b.name
}

// String implements fmt.Stringer
func (b Base) String() string {
	return b.name
}

// Term is one base raised to a nonzero exponent in a canonical dimension
type Term struct {
	Base     Base
	Exponent rational.Rational
}

// Factor is a dimension raised to an exponent, the input to Compose
type Factor struct {
	Dimension Dimension
	Exponent  rational.Rational
}

// Of builds a Factor with an integer exponent
func Of(d Dimension, exp int64) Factor {
	return Factor{Dimension: d, Exponent: rational.Int(exp)}
}

// Dimension is an immutable canonical dimension. The zero value is dimensionless.
type Dimension struct {
	// terms is sorted by base name, with distinct bases and nonzero exponents
	terms []Term

	// leaf is set when the dimension was created directly from a base name
	leaf bool
}

// New creates the leaf dimension for a base name
func New(name string) Dimension {
	return Dimension{
		terms: []Term{{Base: NewBase(name), Exponent: rational.One}},
		leaf:  true,
	}
}

// Dimensionless returns the identity of multiplication
func Dimensionless() Dimension {
	return Dimension{}
}

// Compose canonicalizes a product of dimensions raised to exponents.
// Compose() is the dimensionless dimension.
func Compose(factors ...Factor) Dimension {
	sums := make(map[Base]rational.Rational)
	for _, f := range factors {
		if f.Exponent.IsZero() {
			continue
		}
		for _, t := range f.Dimension.terms {
			sums[t.Base] = sums[t.Base].Add(t.Exponent.Mul(f.Exponent))
		}
	}

	terms := make([]Term, 0, len(sums))
	for base, exp := range sums {
		if exp.IsZero() {
			continue
		}
		terms = append(terms, Term{Base: base, Exponent: exp})
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Base.name < terms[j].Base.name
	})

	if len(terms) == 0 {
		return Dimension{}
	}
	return Dimension{terms: terms}
}

// Pow raises d to an exact rational exponent. A zero exponent yields the
// dimensionless dimension regardless of d.
func Pow(d Dimension, exp rational.Rational) Dimension {
	if exp.IsZero() {
		return Dimensionless()
	}
	return Compose(Factor{Dimension: d, Exponent: exp})
}

// Multiply returns a * b
func Multiply(a, b Dimension) Dimension {
	return Compose(Of(a, 1), Of(b, 1))
}

// Divide returns a / b
func Divide(a, b Dimension) Dimension {
	return Multiply(a, Pow(b, rational.MinusOne))
}

// Inverse returns d^-1
func Inverse(d Dimension) Dimension {
	return Pow(d, rational.MinusOne)
}

// Equal reports whether a and b have identical canonical terms
func Equal(a, b Dimension) bool {
	return a.Equal(b)
}

// Equal reports whether d and o have identical canonical terms.
// A leaf equals the composite {base: 1}.
func (d Dimension) Equal(o Dimension) bool {
	if len(d.terms) != len(o.terms) {
		return false
	}
	for i := range d.terms {
		if d.terms[i].Base != o.terms[i].Base || !d.terms[i].Exponent.Equal(o.terms[i].Exponent) {
			return false
		}
	}
	return true
}

// IsDimensionless reports whether d has no terms
func (d Dimension) IsDimensionless() bool {
	return len(d.terms) == 0
}

// IsLeaf reports whether d was created directly from a base name
func (d Dimension) IsLeaf() bool {
	return d.leaf
}

// Terms returns a copy of the canonical terms in base-name order
func (d Dimension) Terms() []Term {
	out := make([]Term, len(d.terms))
	copy(out, d.terms)
	return out
}

// Exponent returns the exponent of base in d, zero when absent
func (d Dimension) Exponent(base Base) rational.Rational {
	i := sort.Search(len(d.terms), func(i int) bool {
		return d.terms[i].Base.name >= base.name
	})
	if i < len(d.terms) && d.terms[i].Base == base {
		return d.terms[i].Exponent
	}
	return rational.Zero
}

// Key returns a canonical string that is equal for two dimensions
// exactly when they are Equal. Suitable as a map key.
func (d Dimension) Key() string {
	var b strings.Builder
	for _, t := range d.terms {
		b.WriteString(strconv.Quote(t.Base.name))
		b.WriteByte('^')
		b.WriteString(t.Exponent.String())
		b.WriteByte(';')
	}
	return b.String()
}

// String renders the canonical terms as "base^exp" joined by spaces.
// The dimensionless dimension renders as "1".
func (d Dimension) String() string {
	if len(d.terms) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, t := range d.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Base.name)
		b.WriteByte('^')
		b.WriteString(t.Exponent.String())
	}
	return b.String()
}
