package entities

import "time"

// TransactionType is the kind of gateway interaction.
type TransactionType string

const (
	TransactionTypeAuthorization TransactionType = "Authorization"
	TransactionTypeCapture       TransactionType = "Capture"
	TransactionTypeRefund        TransactionType = "Refund"
)

// TransactionStatus is the gateway outcome.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "Success"
	TransactionStatusFailed  TransactionStatus = "Failed"
)

// Transaction is an append-only gateway log row of a payment.
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - SK: created_at#id
type Transaction struct {
	ID                   string            `json:"id"`
	ApplicationNumber    string            `json:"application_number"`
	ReceiptNumber        string            `json:"receipt_number"`
	Type                 TransactionType   `json:"transaction_type"`
	GatewayTransactionID string            `json:"gateway_transaction_id"`
	Amount               Money             `json:"amount"`
	Status               TransactionStatus `json:"status"`
	ResponseCode         string            `json:"response_code,omitempty"`
	ResponseMessage      string            `json:"response_message,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
}
