package request

import (
	"time"

	"permit_tracker/internal/domain/entities"
)

type CreateFeeScheduleRequest struct {
	PermitTypeID  string   `json:"permit_type_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	EffectiveDate string   `json:"effective_date" binding:"required"`
	ExpiryDate    string   `json:"expiry_date"`
	BaseFee       float64  `json:"base_fee" binding:"gte=0,lte=99999999.99"`
	ValuationRate float64  `json:"valuation_rate" binding:"gte=0,lte=9.9999"`
	MinimumFee    *float64 `json:"minimum_fee" binding:"required,gte=0,lte=99999999.99"`
	MaximumFee    *float64 `json:"maximum_fee" binding:"required,gte=0,lte=99999999.99"`
	FeeType       string   `json:"fee_type"`
}

func (r CreateFeeScheduleRequest) ToEntity() (entities.FeeSchedule, error) {
	effective, err := ParseDate(r.EffectiveDate)
	if err != nil {
		return entities.FeeSchedule{}, err
	}
	var expiry *time.Time
	if r.ExpiryDate != "" {
		d, err := ParseDate(r.ExpiryDate)
		if err != nil {
			return entities.FeeSchedule{}, err
		}
		expiry = &d
	}
	return entities.FeeSchedule{
		PermitTypeID:  r.PermitTypeID,
		Name:          r.Name,
		EffectiveDate: effective,
		ExpiryDate:    expiry,
		BaseFee:       entities.MoneyFromFloat(r.BaseFee),
		ValuationRate: entities.RateFromFloat(r.ValuationRate),
		MinimumFee:    entities.MoneyFromFloat(*r.MinimumFee),
		MaximumFee:    entities.MoneyFromFloat(*r.MaximumFee),
		FeeType:       r.FeeType,
	}, nil
}
