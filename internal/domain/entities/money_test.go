package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, Money(12345), MoneyFromFloat(123.45))
	assert.Equal(t, Money(10), MoneyFromFloat(0.1))
	assert.Equal(t, "123.45", Money(12345).String())
	assert.Equal(t, "-0.05", Money(-5).String())
	assert.InDelta(t, 400.0, Money(40000).Float(), 0.0001)
	assert.Equal(t, Rate(150), RateFromFloat(0.015))
	assert.Equal(t, "0.0150", Rate(150).String())
	assert.Equal(t, Money(5000), Money(100).Clamp(5000, 10000))
}

func TestCalculateAmounts(t *testing.T) {
	tax, total := CalculateAmounts(40000, DefaultTaxRate)
	assert.Equal(t, Money(5200), tax)
	assert.Equal(t, Money(45200), total)

	// 13% of 0.50 = 0.065 -> 0.07
	tax, total = CalculateAmounts(50, DefaultTaxRate)
	assert.Equal(t, Money(7), tax)
	assert.Equal(t, Money(57), total)
}

func TestMoney_MulRateSaturates(t *testing.T) {
	assert.Equal(t, Money(15000), Money(1000000).MulRate(150))
	assert.Equal(t, Money(0), Money(-100).MulRate(150))
	assert.Equal(t, MaxMoney, MaxMoney.MulRate(20000))
	// 1e17 cents × 0.015 fits even though the intermediate product overflows int64
	assert.Equal(t, Money(1_500_000_000_000_000), Money(100_000_000_000_000_000).MulRate(150))
	assert.Equal(t, MaxMoney, MaxMoney.Add(1))
	assert.Equal(t, Money(30), Money(10).Add(20))
}
