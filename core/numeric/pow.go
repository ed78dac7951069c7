package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"dimensional/core/rational"
	"dimensional/internal/errors"
)

// Pow raises d to a rational exponent.
//
// Integer exponents are exact: the power is built by repeated multiplication
// and negative exponents take the reciprocal through Quo. A non-integer
// exponent p/q is exact only when d has an exact q-th root that can be found
// at the configured RootDigits; otherwise the result is computed in float64
// and converted back, losing precision beyond roughly 15 significant digits.
// Only the leading digits of d go through float64; its power of ten is
// carried exactly, so magnitudes outside float64's range are still handled.
func Pow(d decimal.Decimal, e rational.Rational) (decimal.Decimal, error) {
	if e.IsZero() {
		return One, nil
	}
	if e.IsInt() {
		return PowInt(d, e.Num())
	}

	p, q := e.Num(), e.Den()
	if d.IsZero() {
		if p < 0 {
			return decimal.Zero, errors.InvalidArgument("zero raised to a negative exponent")
		}
		return decimal.Zero, nil
	}

	negative := d.Sign() < 0
	if negative && q%2 == 0 {
		return decimal.Zero, errors.Newf(errors.TypeInvalidArgument, "even root of negative value %s", d)
	}

	mantissa, k := splitForRoot(Minimal(d.Abs()), q)
	var result decimal.Decimal
	if root, ok := exactRoot(mantissa, q); ok {
		r, err := PowInt(root.Shift(int32(k)), p)
		if err != nil {
			return decimal.Zero, err
		}
		result = r
	} else {
		r, err := floatPow(mantissa, p, q, k)
		if err != nil {
			return decimal.Zero, err
		}
		result = r
	}

	// odd root of a negative base keeps the sign of (-1)^p
	if negative && p%2 != 0 {
		result = result.Neg()
	}
	return result, nil
}

// PowInt raises d to an integer exponent exactly
func PowInt(d decimal.Decimal, n int64) (decimal.Decimal, error) {
	if n == 0 {
		return One, nil
	}
	if n < 0 {
		if d.IsZero() {
			return decimal.Zero, errors.InvalidArgument("zero raised to a negative exponent")
		}
		pos, err := PowInt(d, -n)
		if err != nil {
			return decimal.Zero, err
		}
		return Quo(One, pos)
	}

	result := One
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return Minimal(result), nil
}

// splitForRoot writes d as m * 10^(k*q) with 1 <= m < 10^q, so that the
// q-th root of d is the q-th root of m shifted by k places. Only m ever goes
// through float64, which keeps the root search in range for any exponent.
func splitForRoot(d decimal.Decimal, q int64) (decimal.Decimal, int64) {
	coef := d.Coefficient()
	exp := int64(d.Exponent())
	mag := int64(len(coef.String())) - 1 + exp
	k := mag / q
	if mag%q < 0 {
		k--
	}
	shifted := exp - k*q
	if k < math.MinInt32 || k > math.MaxInt32 || shifted < math.MinInt32 || shifted > math.MaxInt32 {
		return d, 0
	}
	return decimal.NewFromBigInt(coef, int32(shifted)), k
}

// exactRoot looks for r with r^q == d exactly, starting from a float64 estimate
func exactRoot(d decimal.Decimal, q int64) (decimal.Decimal, bool) {
	f, _ := d.Float64()
	if f == 0 || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	est := math.Pow(f, 1/float64(q))
	if est == 0 || math.IsInf(est, 0) || math.IsNaN(est) {
		return decimal.Zero, false
	}

	digits := Current().RootDigits
	places := digits - 1 - int32(math.Floor(math.Log10(est)))
	candidate := Minimal(decimal.NewFromFloat(est).Round(places))
	if candidate.IsZero() {
		return decimal.Zero, false
	}

	back, err := PowInt(candidate, q)
	if err != nil || !back.Equal(d) {
		return decimal.Zero, false
	}
	return candidate, true
}

// floatPow approximates m^(p/q) * 10^(k*p). The power of ten is applied
// exactly as an exponent shift; only m^(p/q) is computed in float64.
func floatPow(m decimal.Decimal, p, q, k int64) (decimal.Decimal, error) {
	e := float64(p) / float64(q)
	if k != 0 && (p > math.MaxInt32 || p < -math.MaxInt32) {
		return decimal.Zero, errors.Newf(errors.TypeInvalidArgument, "%se%d^%g is outside decimal range", m, k*q, e)
	}
	shift := k * p

	var r decimal.Decimal
	f, _ := m.Float64()
	if v := math.Pow(f, e); v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
		r = decimal.NewFromFloat(v)
	} else {
		// m^e itself leaves float64 range: carry the integer part of its log10
		l := log10(m) * e
		ip := math.Floor(l)
		if ip < math.MinInt32 || ip > math.MaxInt32 {
			return decimal.Zero, errors.Newf(errors.TypeInvalidArgument, "%s^%g is outside decimal range", m, e)
		}
		r = decimal.NewFromFloat(math.Pow(10, l-ip)).Shift(int32(ip))
	}

	if total := int64(r.Exponent()) + shift; total < math.MinInt32 || total > math.MaxInt32 {
		return decimal.Zero, errors.Newf(errors.TypeInvalidArgument, "%se%d^%g is outside decimal range", m, k*q, e)
	}
	return Minimal(r.Shift(int32(shift))), nil
}

// log10 of a positive decimal from its leading digits and exponent
func log10(d decimal.Decimal) float64 {
	digits := d.Coefficient().String()
	lead := digits
	if len(lead) > 17 {
		lead = lead[:17]
	}
	f, _ := strconv.ParseFloat(lead, 64)
	return math.Log10(f) + float64(len(digits)-len(lead)) + float64(d.Exponent())
}
