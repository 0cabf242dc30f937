package entities

import "time"

// FeeSchedule is a versioned fee formula for a permit type, valid in [EffectiveDate, ExpiryDate].
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (permit_type_id-index): permit_type_id
type FeeSchedule struct {
	ID            string     `json:"id"`
	PermitTypeID  string     `json:"permit_type_id"`
	Name          string     `json:"name"`
	EffectiveDate time.Time  `json:"effective_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	BaseFee       Money      `json:"base_fee"`
	ValuationRate Rate       `json:"valuation_rate"`
	MinimumFee    Money      `json:"minimum_fee"`
	MaximumFee    Money      `json:"maximum_fee"`
	FeeType       string     `json:"fee_type"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DefaultFeeType is used when a schedule is created without one.
const DefaultFeeType = "Standard"

// CalculateFee returns clamp(base + value × rate, minimum, maximum).
func (s FeeSchedule) CalculateFee(projectValue Money) Money {
	raw := s.BaseFee.Add(projectValue.MulRate(s.ValuationRate))
	return raw.Clamp(s.MinimumFee, s.MaximumFee)
}

// IsEffectiveOn reports whether the schedule applies on the calendar date of t.
func (s FeeSchedule) IsEffectiveOn(t time.Time) bool {
	day := DateOf(t)
	if day.Before(DateOf(s.EffectiveDate)) {
		return false
	}
	if s.ExpiryDate != nil && day.After(DateOf(*s.ExpiryDate)) {
		return false
	}
	return true
}

// SelectEffectiveSchedule picks the schedule effective on t with the latest effective date.
func SelectEffectiveSchedule(schedules []FeeSchedule, t time.Time) (FeeSchedule, bool) {
	var best FeeSchedule
	found := false
	for _, s := range schedules {
		if !s.IsEffectiveOn(t) {
			continue
		}
		if !found || s.EffectiveDate.After(best.EffectiveDate) {
			best = s
			found = true
		}
	}
	return best, found
}

func (s FeeSchedule) String() string {
	return s.Name
}
