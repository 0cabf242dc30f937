package entities

import (
	"fmt"
	"math"
	"math/bits"
)

// Money is a fixed-point amount in cents (2 fraction digits).
type Money int64

// Rate is a fixed-point fraction with 4 fraction digits (150 = 0.0150 = 1.5%).
type Rate int64

const (
	centsPerUnit    = 100
	rateDenominator = 10000
)

// Upper bounds accepted at the boundary: 12 digits for valuations, 10 for fees and
// 5 (4 fractional) for valuation rates.
const (
	MaxEstimatedValue Money = 999_999_999_999
	MaxFeeAmount      Money = 9_999_999_999
	MaxValuationRate  Rate  = 99_999
)

// MaxMoney is the saturation value of Money arithmetic.
const MaxMoney Money = math.MaxInt64

// MoneyFromFloat converts a decimal amount (e.g. 123.45) to Money, rounding half away from zero.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * centsPerUnit))
}

// Float returns the amount as a decimal value with 2 fraction digits.
func (m Money) Float() float64 {
	return float64(m) / centsPerUnit
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/centsPerUnit, v%centsPerUnit)
}

// MulRate returns m × r rounded half-up to the nearest cent. Both operands are expected
// non-negative; negative operands yield 0. The result saturates at MaxMoney.
func (m Money) MulRate(r Rate) Money {
	if m <= 0 || r <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(m), uint64(r))
	var carry uint64
	lo, carry = bits.Add64(lo, rateDenominator/2, 0)
	hi += carry
	if hi >= rateDenominator {
		return MaxMoney
	}
	q, _ := bits.Div64(hi, lo, rateDenominator)
	if q > math.MaxInt64 {
		return MaxMoney
	}
	return Money(q)
}

// Add returns m + o, saturating at MaxMoney.
func (m Money) Add(o Money) Money {
	if o > 0 && m > MaxMoney-o {
		return MaxMoney
	}
	return m + o
}

// Clamp bounds m to [lo, hi]. The lower bound wins when lo > hi.
func (m Money) Clamp(lo, hi Money) Money {
	if m < lo {
		return lo
	}
	if m > hi {
		return hi
	}
	return m
}

// RateFromFloat converts a decimal fraction (e.g. 0.015) to Rate.
func RateFromFloat(v float64) Rate {
	return Rate(math.Round(v * rateDenominator))
}

// Float returns the rate as a decimal fraction.
func (r Rate) Float() float64 {
	return float64(r) / rateDenominator
}

func (r Rate) String() string {
	return fmt.Sprintf("%d.%04d", int64(r)/rateDenominator, int64(r)%rateDenominator)
}
