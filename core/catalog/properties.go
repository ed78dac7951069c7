// Package catalog - Algebraic self checks
// Exercises the dimension, unit and measure laws over every catalog entry.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dimensional/core/dimension"
	"dimensional/core/measure"
	"dimensional/core/numeric"
	"dimensional/core/rational"
	"dimensional/core/unit"
)

// Property is a named law checked over a catalog
type Property struct {
	Name  string
	Check func(c *Catalog) []error
}

// DefaultProperties returns the standard algebraic laws
func DefaultProperties() []Property {
	return []Property{
		{Name: "dimension multiply commutes and associates", Check: checkMultiplyLaws},
		{Name: "dimension powers compose", Check: checkPowComposition},
		{Name: "unit identity powers", Check: checkUnitPowIdentity},
		{Name: "conversion round trip", Check: checkConversionRoundTrip},
	}
}

// PropertyResult is the outcome of one property
type PropertyResult struct {
	Name       string
	Violations []error
}

// Passed reports whether the property held
func (r PropertyResult) Passed() bool {
	return len(r.Violations) == 0
}

// CheckProperties runs each property against the catalog
func (c *Catalog) CheckProperties(props []Property) []PropertyResult {
	results := make([]PropertyResult, 0, len(props))
	for _, p := range props {
		results = append(results, PropertyResult{Name: p.Name, Violations: p.Check(c)})
	}
	return results
}

// roundTripPlaces is how many decimal places a round trip through
// non-terminating scale ratios must preserve
const roundTripPlaces = 20

var sampleExponents = []rational.Rational{
	rational.Int(2),
	rational.Int(-1),
	rational.New(1, 2),
	rational.New(-2, 3),
}

func distinctDimensions(c *Catalog) []dimension.Dimension {
	var dims []dimension.Dimension
	seen := make(map[string]bool)
	for _, e := range c.Entries() {
		d := e.Unit.Dimension()
		if !seen[d.Key()] {
			seen[d.Key()] = true
			dims = append(dims, d)
		}
	}
	return dims
}

func checkMultiplyLaws(c *Catalog) []error {
	var errs []error
	dims := distinctDimensions(c)
	for _, a := range dims {
		if !a.Equal(dimension.Multiply(a, dimension.Dimensionless())) {
			errs = append(errs, fmt.Errorf("%s * 1 != %s", a, a))
		}
		for _, b := range dims {
			if !dimension.Multiply(a, b).Equal(dimension.Multiply(b, a)) {
				errs = append(errs, fmt.Errorf("%s * %s does not commute", a, b))
			}
			for _, d := range dims {
				left := dimension.Multiply(dimension.Multiply(a, b), d)
				right := dimension.Multiply(a, dimension.Multiply(b, d))
				if !left.Equal(right) {
					errs = append(errs, fmt.Errorf("(%s * %s) * %s does not associate", a, b, d))
				}
			}
		}
	}
	return errs
}

func checkPowComposition(c *Catalog) []error {
	var errs []error
	for _, d := range distinctDimensions(c) {
		if !d.Equal(dimension.Pow(d, rational.One)) {
			errs = append(errs, fmt.Errorf("%s^1 != %s", d, d))
		}
		for _, p := range sampleExponents {
			for _, q := range sampleExponents {
				left := dimension.Pow(dimension.Pow(d, p), q)
				right := dimension.Pow(d, p.Mul(q))
				if !left.Equal(right) {
					errs = append(errs, fmt.Errorf("(%s^%s)^%s != %s^%s", d, p, q, d, p.Mul(q)))
				}
			}
		}
	}
	return errs
}

func checkUnitPowIdentity(c *Catalog) []error {
	var errs []error
	for _, e := range c.Entries() {
		if !unit.Equal(e.Unit, unit.Pow(e.Unit, rational.One)) {
			errs = append(errs, fmt.Errorf("%s^1 != %s", e.Name, e.Name))
		}
		zero := unit.Pow(e.Unit, rational.Zero)
		if !zero.Dimension().IsDimensionless() || !zero.Scale().Equal(numeric.One) {
			errs = append(errs, fmt.Errorf("%s^0 = %s", e.Name, zero))
		}
	}
	return errs
}

func checkConversionRoundTrip(c *Catalog) []error {
	var errs []error
	samples := []decimal.Decimal{numeric.Of(1), numeric.Of(-2.5), numeric.Of(1234.5678)}
	for _, from := range c.Entries() {
		for _, to := range c.CompatibleWith(from.Unit) {
			for _, q := range samples {
				m := measure.New(from.Unit, q)
				there, err := measure.Convert(m, to.Unit)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s -> %s: %w", from.Name, to.Name, err))
					continue
				}
				back, err := measure.Convert(there, from.Unit)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s -> %s: %w", to.Name, from.Name, err))
					continue
				}
				got := measure.Normalize(back).Quantity().Round(roundTripPlaces)
				want := measure.Normalize(m).Quantity().Round(roundTripPlaces)
				if !got.Equal(want) {
					errs = append(errs, fmt.Errorf("%s via %s: %s != %s", m, to.Name, back, m))
				}
			}
		}
	}
	return errs
}
