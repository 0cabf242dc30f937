package request

import (
	"encoding/json"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

type CreatePaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	FeeScheduleID string `json:"fee_schedule_id"`
	PaidBy        string `json:"paid_by"`
}

func (r CreatePaymentRequest) ToInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		Method:        entities.PaymentMethod(r.PaymentMethod),
		FeeScheduleID: r.FeeScheduleID,
		PaidBy:        r.PaidBy,
	}
}

// ProcessPaymentRequest is the optional envelope for the gateway charge route.
//
// `gateway_payload` is forwarded to Mercado Pago after the amount and reference are
// overwritten from the stored payment. A bare JSON object body is accepted as well.
type ProcessPaymentRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}

// RefundPaymentRequest refunds Amount, or everything still refundable when Amount is 0.
type RefundPaymentRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Reason string  `json:"reason"`
}

func (r RefundPaymentRequest) AmountMoney() entities.Money {
	return entities.MoneyFromFloat(r.Amount)
}
