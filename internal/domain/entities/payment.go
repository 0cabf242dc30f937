package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod is how the applicant pays the permit fee.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodDebitCard    PaymentMethod = "Debit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheque       PaymentMethod = "Cheque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBankTransfer, PaymentMethodCheque:
		return true
	}
	return false
}

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

// DefaultTaxRate is the sales tax applied on top of the base fee (13%).
const DefaultTaxRate Rate = 1300

// Payment is the fee payment of an application. There is at most one per application.
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - GSI1 (receipt_number-index): receipt_number
//
// GatewayPayloadRaw keeps the provider response body for traceability.
type Payment struct {
	ApplicationNumber    string        `json:"application_number"`
	ReceiptNumber        string        `json:"receipt_number"`
	PaymentDate          time.Time     `json:"payment_date"`
	BaseAmount           Money         `json:"base_amount"`
	TaxAmount            Money         `json:"tax_amount"`
	TotalAmount          Money         `json:"total_amount"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	Status               PaymentStatus `json:"status"`
	GatewayTransactionID string        `json:"gateway_transaction_id,omitempty"`
	CardLastFour         string        `json:"card_last_four,omitempty"`
	PaidBy               string        `json:"paid_by,omitempty"`
	FeeScheduleID        string        `json:"fee_schedule_id,omitempty"`
	RefundAmount         Money         `json:"refund_amount"`
	RefundDate           *time.Time    `json:"refund_date,omitempty"`
	RefundReason         string        `json:"refund_reason,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`

	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
}

// CalculateAmounts returns tax = base × taxRate (rounded half-up) and total = base + tax.
func CalculateAmounts(base Money, taxRate Rate) (tax, total Money) {
	tax = base.MulRate(taxRate)
	return tax, base + tax
}

// Refundable is the amount that can still be returned to the payer.
func (p Payment) Refundable() Money {
	if p.Status != PaymentStatusCompleted {
		return 0
	}
	return p.TotalAmount - p.RefundAmount
}

func (p Payment) String() string {
	return p.ReceiptNumber + " - " + p.TotalAmount.String()
}
