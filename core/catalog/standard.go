// Package catalog - Standard catalog
// SI base dimensions, a handful of derived dimensions and common units.
package catalog

import (
	"github.com/shopspring/decimal"

	"dimensional/core/dimension"
	"dimensional/core/numeric"
	"dimensional/core/rational"
	"dimensional/core/unit"
)

// Pi to 36 significant digits
var Pi = decimal.RequireFromString("3.14159265358979323846264338327950288")

// Base dimensions
var (
	Length      = dimension.New("length")
	Time        = dimension.New("time")
	Mass        = dimension.New("mass")
	Current     = dimension.New("current")
	Temperature = dimension.New("temperature")
	Amount      = dimension.New("amount")
	Luminosity  = dimension.New("luminosity")
	Angle       = dimension.New("angle")
)

// Derived dimensions
var (
	Area         = dimension.Pow(Length, rational.Int(2))
	Volume       = dimension.Pow(Length, rational.Int(3))
	Speed        = dimension.Divide(Length, Time)
	Acceleration = dimension.Divide(Speed, Time)
	Force        = dimension.Multiply(Mass, Acceleration)
	Energy       = dimension.Multiply(Force, Length)
	Power        = dimension.Divide(Energy, Time)
	Frequency    = dimension.Inverse(Time)
)

// Base units
var (
	Meter    = unit.Base(Length, unit.WithName("meter"))
	Second   = unit.Base(Time, unit.WithName("second"))
	Kilogram = unit.Base(Mass, unit.WithName("kilogram"))
	Ampere   = unit.Base(Current, unit.WithName("ampere"))
	Kelvin   = unit.Base(Temperature, unit.WithName("kelvin"))
	Mole     = unit.Base(Amount, unit.WithName("mole"))
	Candela  = unit.Base(Luminosity, unit.WithName("candela"))
	Radian   = unit.Base(Angle, unit.WithName("radian"))
)

// Scaled units
var (
	Kilometer  = unit.MultiplyScalar(Meter, numeric.Of(1000)).Rename("kilometer")
	Centimeter = unit.DivideScalar(Meter, numeric.Of(100)).Rename("centimeter")
	Millimeter = unit.DivideScalar(Meter, numeric.Of(1000)).Rename("millimeter")
	Inch       = unit.MultiplyScalar(Centimeter, numeric.Of(2.54)).Rename("inch")
	Foot       = unit.MultiplyScalar(Inch, numeric.Of(12)).Rename("foot")
	Mile       = unit.MultiplyScalar(Foot, numeric.Of(5280)).Rename("mile")

	Minute = unit.MultiplyScalar(Second, numeric.Of(60)).Rename("minute")
	Hour   = unit.MultiplyScalar(Minute, numeric.Of(60)).Rename("hour")

	Gram  = unit.DivideScalar(Kilogram, numeric.Of(1000)).Rename("gram")
	Pound = unit.MultiplyScalar(Kilogram, numeric.Of(0.45359237)).Rename("pound")

	Liter = unit.Pow(unit.DivideScalar(Meter, numeric.Of(10)), rational.Int(3)).Rename("liter")
)

// Degree is pi/180 radians. Its scale does not terminate, so it is rounded
// with the division precision active at the time of the call.
func Degree() unit.Unit {
	return unit.DivideScalar(unit.MultiplyScalar(Radian, Pi), numeric.Of(180)).Rename("degree")
}

// KilometerPerHour is 1000/3600 meters per second, rounded the same way as Degree
func KilometerPerHour() unit.Unit {
	return unit.Divide(Kilometer, Hour).Rename("kilometer per hour")
}

// Derived units
var (
	MeterPerSecond = unit.Divide(Meter, Second).Rename("meter per second")
	Newton         = unit.Multiply(Kilogram, unit.Divide(Meter, unit.Pow(Second, rational.Int(2)))).Rename("newton")
	Joule          = unit.Multiply(Newton, Meter).Rename("joule")
	Watt           = unit.Divide(Joule, Second).Rename("watt")
	Hertz          = unit.Inverse(Second).Rename("hertz")
)

// Standard returns a validated catalog populated with the standard units.
// Rounded scales follow the division precision active when it is called.
func Standard() *Catalog {
	c := NewCatalog()
	RegisterStandard(c)
	c.MustValidate()
	return c
}

// RegisterStandard populates the catalog with the standard units
func RegisterStandard(c *Catalog) {
	// ============================================
	// BASE UNITS
	// ============================================
	c.Register(Entry{Name: "meter", Symbol: "m", Kind: KindBase, Unit: Meter})
	c.Register(Entry{Name: "second", Symbol: "s", Kind: KindBase, Unit: Second})
	c.Register(Entry{Name: "kilogram", Symbol: "kg", Kind: KindBase, Unit: Kilogram})
	c.Register(Entry{Name: "ampere", Symbol: "A", Kind: KindBase, Unit: Ampere})
	c.Register(Entry{Name: "kelvin", Symbol: "K", Kind: KindBase, Unit: Kelvin, Notes: "temperature differences only, no offsets"})
	c.Register(Entry{Name: "mole", Symbol: "mol", Kind: KindBase, Unit: Mole})
	c.Register(Entry{Name: "candela", Symbol: "cd", Kind: KindBase, Unit: Candela})
	c.Register(Entry{Name: "radian", Symbol: "rad", Kind: KindBase, Unit: Radian})

	// ============================================
	// SCALED UNITS
	// ============================================

	// Length
	c.Register(Entry{Name: "kilometer", Symbol: "km", Kind: KindScaled, Unit: Kilometer})
	c.Register(Entry{Name: "centimeter", Symbol: "cm", Kind: KindScaled, Unit: Centimeter})
	c.Register(Entry{Name: "millimeter", Symbol: "mm", Kind: KindScaled, Unit: Millimeter})
	c.Register(Entry{Name: "inch", Symbol: "in", Kind: KindScaled, Unit: Inch})
	c.Register(Entry{Name: "foot", Symbol: "ft", Kind: KindScaled, Unit: Foot})
	c.Register(Entry{Name: "mile", Symbol: "mi", Kind: KindScaled, Unit: Mile})

	// Time
	c.Register(Entry{Name: "minute", Symbol: "min", Kind: KindScaled, Unit: Minute})
	c.Register(Entry{Name: "hour", Symbol: "h", Kind: KindScaled, Unit: Hour})

	// Mass
	c.Register(Entry{Name: "gram", Symbol: "g", Kind: KindScaled, Unit: Gram})
	c.Register(Entry{Name: "pound", Symbol: "lb", Kind: KindScaled, Unit: Pound})

	// Angle
	c.Register(Entry{Name: "degree", Symbol: "°", Kind: KindScaled, Unit: Degree(), Notes: "pi/180 rad, pi truncated to 36 digits"})

	// Volume, speed
	c.Register(Entry{Name: "liter", Symbol: "L", Kind: KindScaled, Unit: Liter})
	c.Register(Entry{Name: "kilometer per hour", Symbol: "km/h", Kind: KindScaled, Unit: KilometerPerHour(), Notes: "scale rounded to the division precision"})

	// ============================================
	// DERIVED UNITS
	// ============================================
	c.Register(Entry{Name: "meter per second", Symbol: "m/s", Kind: KindDerived, Unit: MeterPerSecond})
	c.Register(Entry{Name: "newton", Symbol: "N", Kind: KindDerived, Unit: Newton})
	c.Register(Entry{Name: "joule", Symbol: "J", Kind: KindDerived, Unit: Joule})
	c.Register(Entry{Name: "watt", Symbol: "W", Kind: KindDerived, Unit: Watt})
	c.Register(Entry{Name: "hertz", Symbol: "Hz", Kind: KindDerived, Unit: Hertz})
}
