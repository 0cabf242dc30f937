package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeSchedule_CalculateFee(t *testing.T) {
	cases := []struct {
		name     string
		schedule FeeSchedule
		value    Money
		want     Money
	}{
		{
			name:     "linear within bounds",
			schedule: FeeSchedule{BaseFee: 10000, ValuationRate: 150, MinimumFee: 5000, MaximumFee: 1000000},
			value:    2000000,
			want:     40000,
		},
		{
			name:     "clamped to minimum",
			schedule: FeeSchedule{BaseFee: 10000, ValuationRate: 1, MinimumFee: 50000, MaximumFee: 1000000},
			value:    10000,
			want:     50000,
		},
		{
			name:     "clamped to maximum",
			schedule: FeeSchedule{BaseFee: 10000, ValuationRate: 500, MinimumFee: 5000, MaximumFee: 100000},
			value:    100000000,
			want:     100000,
		},
		{
			name:     "zero valuation returns base",
			schedule: FeeSchedule{BaseFee: 7500, ValuationRate: 100, MinimumFee: 0, MaximumFee: 100000},
			value:    0,
			want:     7500,
		},
		{
			name:     "huge valuation clamps to maximum",
			schedule: FeeSchedule{BaseFee: 10000, ValuationRate: 150, MinimumFee: 5000, MaximumFee: 1000000},
			value:    MoneyFromFloat(1e15),
			want:     1000000,
		},
		{
			name:     "saturated valuation clamps to maximum",
			schedule: FeeSchedule{BaseFee: 10000, ValuationRate: MaxValuationRate, MinimumFee: 5000, MaximumFee: 1000000},
			value:    MaxMoney,
			want:     1000000,
		},
		{
			name:     "half cent rounds up",
			schedule: FeeSchedule{BaseFee: 0, ValuationRate: 5000, MinimumFee: 0, MaximumFee: 100000},
			value:    1,
			want:     1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.schedule.CalculateFee(tc.value))
		})
	}
}

func TestFeeSchedule_CalculateFeeAlwaysWithinBounds(t *testing.T) {
	s := FeeSchedule{BaseFee: 2500, ValuationRate: 275, MinimumFee: 10000, MaximumFee: 250000}
	for value := Money(0); value < 20000000; value += 123457 {
		fee := s.CalculateFee(value)
		assert.GreaterOrEqual(t, int64(fee), int64(s.MinimumFee))
		assert.LessOrEqual(t, int64(fee), int64(s.MaximumFee))
	}
}

func TestSelectEffectiveSchedule(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	expired := day(2023, time.December, 31)
	schedules := []FeeSchedule{
		{ID: "2023", EffectiveDate: day(2023, time.January, 1), ExpiryDate: &expired},
		{ID: "2024", EffectiveDate: day(2024, time.January, 1)},
		{ID: "2024-mid", EffectiveDate: day(2024, time.July, 1)},
	}

	t.Run("latest effective wins", func(t *testing.T) {
		got, ok := SelectEffectiveSchedule(schedules, day(2024, time.August, 3))
		assert.True(t, ok)
		assert.Equal(t, "2024-mid", got.ID)
	})

	t.Run("expiry date is inclusive", func(t *testing.T) {
		got, ok := SelectEffectiveSchedule(schedules, day(2023, time.December, 31).Add(15*time.Hour))
		assert.True(t, ok)
		assert.Equal(t, "2023", got.ID)
	})

	t.Run("none effective", func(t *testing.T) {
		_, ok := SelectEffectiveSchedule(schedules, day(2022, time.June, 1))
		assert.False(t, ok)
	})
}
