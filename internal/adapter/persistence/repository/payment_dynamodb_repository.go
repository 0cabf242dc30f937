package repository

import (
	"context"
	"encoding/json"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	paymentsKey          = "application_number"
	paymentsReceiptIndex = "receipt_number-index"
)

type paymentItem struct {
	ApplicationNumber    string                 `dynamodbav:"application_number"`
	ReceiptNumber        string                 `dynamodbav:"receipt_number"`
	PaymentDate          string                 `dynamodbav:"payment_date"`
	BaseAmount           int64                  `dynamodbav:"base_amount"`
	TaxAmount            int64                  `dynamodbav:"tax_amount"`
	TotalAmount          int64                  `dynamodbav:"total_amount"`
	PaymentMethod        string                 `dynamodbav:"payment_method"`
	Status               string                 `dynamodbav:"payment_status"`
	GatewayTransactionID string                 `dynamodbav:"gateway_transaction_id,omitempty"`
	CardLastFour         string                 `dynamodbav:"card_last_four,omitempty"`
	PaidBy               string                 `dynamodbav:"paid_by,omitempty"`
	FeeScheduleID        string                 `dynamodbav:"fee_schedule_id,omitempty"`
	RefundAmount         int64                  `dynamodbav:"refund_amount"`
	RefundDate           string                 `dynamodbav:"refund_date,omitempty"`
	RefundReason         string                 `dynamodbav:"refund_reason,omitempty"`
	CreatedAt            string                 `dynamodbav:"created_at"`
	UpdatedAt            string                 `dynamodbav:"updated_at"`
	GatewayPayload       map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayPayloadRaw    string                 `dynamodbav:"gateway_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: application_number (string), at most one payment per application
//   - GSI: receipt_number-index (PK: receipt_number)
//
// The provider payload is stored raw for audit and parsed for querying.
type PaymentDynamoRepository struct {
	t table
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := r.t.create(ctx, toPaymentItem(p), paymentsKey); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByApplication(ctx context.Context, applicationNumber string) (entities.Payment, error) {
	var it paymentItem
	found, err := r.t.get(ctx, stringKey(paymentsKey, applicationNumber), &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByReceipt(ctx context.Context, receiptNumber string) (entities.Payment, error) {
	raw, err := r.t.queryIndex(ctx, paymentsReceiptIndex, "receipt_number", receiptNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	items, err := unmarshalItems[paymentItem](raw)
	if err != nil || len(items) == 0 {
		return entities.Payment{}, err
	}
	return fromPaymentItem(items[0]), nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	ok, err := r.t.replace(ctx, toPaymentItem(p), paymentsKey)
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return p, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ApplicationNumber:    p.ApplicationNumber,
		ReceiptNumber:        p.ReceiptNumber,
		PaymentDate:          formatTime(p.PaymentDate),
		BaseAmount:           int64(p.BaseAmount),
		TaxAmount:            int64(p.TaxAmount),
		TotalAmount:          int64(p.TotalAmount),
		PaymentMethod:        string(p.PaymentMethod),
		Status:               string(p.Status),
		GatewayTransactionID: p.GatewayTransactionID,
		CardLastFour:         p.CardLastFour,
		PaidBy:               p.PaidBy,
		FeeScheduleID:        p.FeeScheduleID,
		RefundAmount:         int64(p.RefundAmount),
		RefundDate:           formatTimePtr(p.RefundDate),
		RefundReason:         p.RefundReason,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
		GatewayPayloadRaw:    string(p.GatewayPayloadRaw),
	}
	if len(p.GatewayPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.GatewayPayloadRaw, &parsed); err == nil {
			it.GatewayPayload = parsed
		}
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ApplicationNumber:    it.ApplicationNumber,
		ReceiptNumber:        it.ReceiptNumber,
		PaymentDate:          parseTime(it.PaymentDate),
		BaseAmount:           entities.Money(it.BaseAmount),
		TaxAmount:            entities.Money(it.TaxAmount),
		TotalAmount:          entities.Money(it.TotalAmount),
		PaymentMethod:        entities.PaymentMethod(it.PaymentMethod),
		Status:               entities.PaymentStatus(it.Status),
		GatewayTransactionID: it.GatewayTransactionID,
		CardLastFour:         it.CardLastFour,
		PaidBy:               it.PaidBy,
		FeeScheduleID:        it.FeeScheduleID,
		RefundAmount:         entities.Money(it.RefundAmount),
		RefundDate:           parseTimePtr(it.RefundDate),
		RefundReason:         it.RefundReason,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.GatewayPayloadRaw != "" {
		p.GatewayPayloadRaw = json.RawMessage(it.GatewayPayloadRaw)
	}
	return p
}
