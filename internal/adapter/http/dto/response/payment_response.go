package response

import (
	"time"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

type PaymentResponse struct {
	ApplicationNumber    string     `json:"application_number"`
	ReceiptNumber        string     `json:"receipt_number"`
	PaymentDate          time.Time  `json:"payment_date"`
	BaseAmount           float64    `json:"base_amount"`
	TaxAmount            float64    `json:"tax_amount"`
	TotalAmount          float64    `json:"total_amount"`
	PaymentMethod        string     `json:"payment_method"`
	Status               string     `json:"status"`
	GatewayTransactionID string     `json:"gateway_transaction_id,omitempty"`
	CardLastFour         string     `json:"card_last_four,omitempty"`
	PaidBy               string     `json:"paid_by,omitempty"`
	FeeScheduleID        string     `json:"fee_schedule_id,omitempty"`
	RefundAmount         float64    `json:"refund_amount"`
	RefundDate           *time.Time `json:"refund_date,omitempty"`
	RefundReason         string     `json:"refund_reason,omitempty"`

	GatewayPayloadRaw string `json:"gateway_payload_raw,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ApplicationNumber:    p.ApplicationNumber,
		ReceiptNumber:        p.ReceiptNumber,
		PaymentDate:          p.PaymentDate,
		BaseAmount:           p.BaseAmount.Float(),
		TaxAmount:            p.TaxAmount.Float(),
		TotalAmount:          p.TotalAmount.Float(),
		PaymentMethod:        string(p.PaymentMethod),
		Status:               string(p.Status),
		GatewayTransactionID: p.GatewayTransactionID,
		CardLastFour:         p.CardLastFour,
		PaidBy:               p.PaidBy,
		FeeScheduleID:        p.FeeScheduleID,
		RefundAmount:         p.RefundAmount.Float(),
		RefundDate:           p.RefundDate,
		RefundReason:         p.RefundReason,
		GatewayPayloadRaw:    string(p.GatewayPayloadRaw),
	}
}

type TransactionResponse struct {
	ID                   string    `json:"id"`
	TransactionType      string    `json:"transaction_type"`
	GatewayTransactionID string    `json:"gateway_transaction_id,omitempty"`
	Amount               float64   `json:"amount"`
	Status               string    `json:"status"`
	ResponseCode         string    `json:"response_code,omitempty"`
	ResponseMessage      string    `json:"response_message,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func FromTransactions(list []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, TransactionResponse{
			ID:                   t.ID,
			TransactionType:      string(t.Type),
			GatewayTransactionID: t.GatewayTransactionID,
			Amount:               t.Amount.Float(),
			Status:               string(t.Status),
			ResponseCode:         t.ResponseCode,
			ResponseMessage:      t.ResponseMessage,
			CreatedAt:            t.CreatedAt,
		})
	}
	return out
}

type FeeScheduleResponse struct {
	ID            string     `json:"id"`
	PermitTypeID  string     `json:"permit_type_id"`
	Name          string     `json:"name"`
	EffectiveDate time.Time  `json:"effective_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	BaseFee       float64    `json:"base_fee"`
	ValuationRate float64    `json:"valuation_rate"`
	MinimumFee    float64    `json:"minimum_fee"`
	MaximumFee    float64    `json:"maximum_fee"`
	FeeType       string     `json:"fee_type"`
}

func FromFeeSchedule(s entities.FeeSchedule) FeeScheduleResponse {
	return FeeScheduleResponse{
		ID:            s.ID,
		PermitTypeID:  s.PermitTypeID,
		Name:          s.Name,
		EffectiveDate: s.EffectiveDate,
		ExpiryDate:    s.ExpiryDate,
		BaseFee:       s.BaseFee.Float(),
		ValuationRate: s.ValuationRate.Float(),
		MinimumFee:    s.MinimumFee.Float(),
		MaximumFee:    s.MaximumFee.Float(),
		FeeType:       s.FeeType,
	}
}

func FromFeeSchedules(list []entities.FeeSchedule) []FeeScheduleResponse {
	out := make([]FeeScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromFeeSchedule(s))
	}
	return out
}

type FeeCalculationResponse struct {
	FeeScheduleID string  `json:"fee_schedule_id"`
	ProjectValue  float64 `json:"project_value"`
	Fee           float64 `json:"fee"`
}

type FeeQuoteResponse struct {
	ApplicationNumber string  `json:"application_number"`
	FeeScheduleID     string  `json:"fee_schedule_id"`
	ProjectValue      float64 `json:"project_value"`
	BaseAmount        float64 `json:"base_amount"`
	TaxRate           float64 `json:"tax_rate"`
	TaxAmount         float64 `json:"tax_amount"`
	TotalAmount       float64 `json:"total_amount"`
}

func FromFeeQuote(q usecase.FeeQuote) FeeQuoteResponse {
	return FeeQuoteResponse{
		ApplicationNumber: q.ApplicationNumber,
		FeeScheduleID:     q.FeeScheduleID,
		ProjectValue:      q.ProjectValue.Float(),
		BaseAmount:        q.BaseAmount.Float(),
		TaxRate:           q.TaxRate.Float(),
		TaxAmount:         q.TaxAmount.Float(),
		TotalAmount:       q.TotalAmount.Float(),
	}
}
