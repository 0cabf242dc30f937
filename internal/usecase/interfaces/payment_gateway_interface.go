package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Provider responses are returned raw so they can be persisted for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	RefundPayment(ctx context.Context, providerPaymentID string, amount float64) (providerRefundID string, providerStatus string, providerResponse json.RawMessage, err error)
}
