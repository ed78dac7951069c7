package measure

import (
	"testing"

	"github.com/shopspring/decimal"

	"dimensional/core/dimension"
	"dimensional/core/rational"
	"dimensional/core/unit"
	"dimensional/internal/errors"
)

var (
	length = dimension.New("length")
	time   = dimension.New("time")
	meter  = unit.Base(length)
	second = unit.Base(time)
	km     = unit.MultiplyScalar(meter, dec("1000"))
	cm     = unit.MultiplyScalar(meter, dec("0.01"))
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvertKilometersToMeters(t *testing.T) {
	got, err := Convert(New(km, dec("2")), meter)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Quantity().Equal(dec("2000")) {
		t.Errorf("quantity = %s, want 2000", got.Quantity())
	}
	if !got.Unit().Equal(meter) {
		t.Errorf("unit = %s, want meter", got.Unit())
	}
}

func TestSpeedTimesTime(t *testing.T) {
	speed := unit.Base(dimension.Divide(length, time))
	got := Multiply(New(speed, dec("10")), New(second, dec("2")))

	if !got.Unit().Dimension().Equal(length) {
		t.Errorf("dimension = %s, want length", got.Unit().Dimension())
	}
	if !got.Quantity().Equal(dec("20")) {
		t.Errorf("quantity = %s, want 20", got.Quantity())
	}
}

func TestAddAcrossUnits(t *testing.T) {
	got, err := Add(New(meter, dec("100")), New(cm, dec("100")))
	if err != nil {
		t.Fatal(err)
	}
	want := New(meter, dec("101"))
	if !Normalize(got).Equal(Normalize(want)) {
		t.Errorf("100 m + 100 cm = %s, want %s", got, want)
	}
	if !got.Unit().Scale().Equal(dec("1")) {
		t.Errorf("sum should be in the base unit, got %s", got.Unit())
	}
}

func TestSubtract(t *testing.T) {
	got, err := Subtract(New(km, dec("1")), New(meter, dec("1500")))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(New(meter, dec("-500"))) {
		t.Errorf("1 km - 1500 m = %s", got)
	}
}

func TestAddMismatchedDimensionsReturnsError(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Add must not panic on mismatched dimensions: %v", r)
		}
	}()

	_, err := Add(New(meter, dec("1")), New(second, dec("1")))
	if !errors.IsType(err, errors.TypeDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
	_, err = Subtract(New(meter, dec("1")), New(second, dec("1")))
	if !errors.IsType(err, errors.TypeDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
	_, err = Convert(New(meter, dec("1")), second)
	if !errors.IsType(err, errors.TypeDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
}

func TestSum(t *testing.T) {
	got, err := Sum(New(km, dec("1")), New(meter, dec("250")), New(cm, dec("50")))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(New(meter, dec("1250.5"))) {
		t.Errorf("sum = %s", got)
	}

	if _, err := Sum(New(meter, dec("1")), New(second, dec("1"))); err == nil {
		t.Error("expected error summing length and time")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	mm := unit.MultiplyScalar(meter, dec("0.001"))
	mile := unit.MultiplyScalar(meter, dec("1609.344"))
	inch := unit.MultiplyScalar(meter, dec("0.0254"))
	quantities := []string{"0", "1", "-2.5", "123456.789"}

	roundTrip := func(m Measure, to unit.Unit) Measure {
		t.Helper()
		there, err := Convert(m, to)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Convert(there, m.Unit())
		if err != nil {
			t.Fatal(err)
		}
		return back
	}

	// scale ratios between these terminate, so the round trip is exact
	exact := []unit.Unit{meter, km, cm, mm}
	for _, from := range exact {
		for _, to := range exact {
			for _, q := range quantities {
				m := New(from, dec(q))
				if back := roundTrip(m, to); !Equivalent(back, m) {
					t.Errorf("%s -> %s -> back = %s", m, to, back)
				}
			}
		}
	}

	// 1/1609.344 does not terminate; the round trip holds to the division precision
	for _, from := range []unit.Unit{meter, km, mile, inch} {
		for _, to := range []unit.Unit{mile, inch} {
			for _, q := range quantities {
				m := New(from, dec(q))
				back := Normalize(roundTrip(m, to))
				want := Normalize(m)
				if !back.Quantity().Round(20).Equal(want.Quantity().Round(20)) {
					t.Errorf("%s -> %s -> back = %s", m, to, back)
				}
			}
		}
	}
}

func TestEqualIsStrict(t *testing.T) {
	a := New(km, dec("1"))
	b := New(meter, dec("1000"))

	if Equal(a, b) {
		t.Error("1 km and 1000 m must not be strictly equal")
	}
	if !Equivalent(a, b) {
		t.Error("1 km and 1000 m must be equivalent")
	}
	if !Equal(New(meter, dec("1.50")), New(meter, dec("1.5"))) {
		t.Error("quantities compare by value")
	}
}

func TestCompare(t *testing.T) {
	got, err := Compare(New(meter, dec("3")), New(meter, dec("5")))
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}

	_, err = Compare(New(km, dec("1")), New(meter, dec("5")))
	if !errors.IsType(err, errors.TypeUnitMismatch) {
		t.Errorf("expected unit mismatch for km vs m, got %v", err)
	}

	got, err = CompareEquivalent(New(km, dec("1")), New(meter, dec("5")))
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("CompareEquivalent = %d, want 1", got)
	}

	if _, err := CompareEquivalent(New(km, dec("1")), New(second, dec("5"))); !errors.IsType(err, errors.TypeDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
}

func TestDivide(t *testing.T) {
	speed, err := Divide(New(km, dec("90")), New(unit.MultiplyScalar(second, dec("3600")), dec("1")))
	if err != nil {
		t.Fatal(err)
	}
	inMps, err := Convert(speed, unit.Base(dimension.Divide(length, time)))
	if err != nil {
		t.Fatal(err)
	}
	if !inMps.Quantity().Round(20).Equal(dec("25")) {
		t.Errorf("90 km/h = %s m/s, want 25", inMps.Quantity())
	}

	if _, err := Divide(New(meter, dec("1")), New(second, decimal.Zero)); !errors.IsType(err, errors.TypeInvalidArgument) {
		t.Errorf("expected invalid argument dividing by zero, got %v", err)
	}
}

func TestScalarOperands(t *testing.T) {
	doubled := MultiplyScalar(New(meter, dec("3")), dec("2"))
	if !doubled.Equal(New(meter, dec("6"))) {
		t.Errorf("3 m * 2 = %s", doubled)
	}

	half, err := DivideScalar(New(meter, dec("3")), dec("2"))
	if err != nil {
		t.Fatal(err)
	}
	if !half.Equal(New(meter, dec("1.5"))) {
		t.Errorf("3 m / 2 = %s", half)
	}

	freq, err := ScalarDivide(dec("10"), New(second, dec("4")))
	if err != nil {
		t.Fatal(err)
	}
	if !freq.Unit().Dimension().Equal(dimension.Inverse(time)) || !freq.Quantity().Equal(dec("2.5")) {
		t.Errorf("10 / 4 s = %s", freq)
	}
}

func TestPow(t *testing.T) {
	side := New(km, dec("3"))

	cube, err := Pow(side, rational.Int(3))
	if err != nil {
		t.Fatal(err)
	}
	if !cube.Quantity().Equal(dec("27")) || !cube.Unit().Scale().Equal(dec("1e9")) {
		t.Errorf("(3 km)^3 = %s", cube)
	}

	root, err := Pow(cube, rational.New(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !root.Equal(side) {
		t.Errorf("cube root = %s, want %s", root, side)
	}

	zero, err := Pow(New(km, dec("0")), rational.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if !zero.Equal(Scalar(dec("1"))) {
		t.Errorf("m^0 = %s, want 1 dimensionless", zero)
	}

	if _, err := Pow(New(meter, dec("-4")), rational.New(1, 2)); !errors.IsType(err, errors.TypeInvalidArgument) {
		t.Errorf("expected invalid argument for sqrt of negative, got %v", err)
	}
}

func TestToUnitFromUnit(t *testing.T) {
	u, err := ToUnit(New(km, dec("2")))
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equal(unit.MustNew(length, dec("2000"))) {
		t.Errorf("ToUnit = %s", u)
	}

	m := FromUnit(km)
	if !m.Equal(New(meter, dec("1000"))) {
		t.Errorf("FromUnit(km) = %s", m)
	}

	back, err := ToUnit(FromUnit(meter))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(meter) {
		t.Errorf("ToUnit(FromUnit(m)) = %s", back)
	}

	if _, err := ToUnit(New(meter, dec("-1"))); !errors.IsType(err, errors.TypeInvalidArgument) {
		t.Errorf("expected invalid argument for negative quantity, got %v", err)
	}
}

func TestString(t *testing.T) {
	m := New(km, dec("2.50"))
	if got := m.String(); got != "2.5 1000 length^1" {
		t.Errorf("String() = %q", got)
	}
}
