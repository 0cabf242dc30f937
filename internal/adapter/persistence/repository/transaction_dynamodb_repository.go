package repository

import (
	"context"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	transactionsPartitionKey = "application_number"
	transactionsSortKey      = "created_at_id"
)

type transactionItem struct {
	ApplicationNumber    string `dynamodbav:"application_number"`
	CreatedAtID          string `dynamodbav:"created_at_id"`
	ID                   string `dynamodbav:"id"`
	ReceiptNumber        string `dynamodbav:"receipt_number"`
	Type                 string `dynamodbav:"transaction_type"`
	GatewayTransactionID string `dynamodbav:"gateway_transaction_id,omitempty"`
	Amount               int64  `dynamodbav:"amount"`
	Status               string `dynamodbav:"transaction_status"`
	ResponseCode         string `dynamodbav:"response_code,omitempty"`
	ResponseMessage      string `dynamodbav:"response_message,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository is the append-only log of gateway calls.
//
// Table requirements:
//   - PK: application_number (string)
//   - SK: created_at_id (string, "{created_at}#{id}")
type TransactionDynamoRepository struct {
	t table
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	if err := r.t.create(ctx, toTransactionItem(tx), transactionsSortKey); err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

// ListByApplication returns transactions oldest first.
func (r *TransactionDynamoRepository) ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Transaction, error) {
	raw, err := r.t.queryPartition(ctx, transactionsPartitionKey, applicationNumber)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[transactionItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Transaction, 0, len(items))
	for _, it := range items {
		out = append(out, fromTransactionItem(it))
	}
	return out, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	createdAt := formatTime(tx.CreatedAt)
	return transactionItem{
		ApplicationNumber:    tx.ApplicationNumber,
		CreatedAtID:          createdAt + "#" + tx.ID,
		ID:                   tx.ID,
		ReceiptNumber:        tx.ReceiptNumber,
		Type:                 string(tx.Type),
		GatewayTransactionID: tx.GatewayTransactionID,
		Amount:               int64(tx.Amount),
		Status:               string(tx.Status),
		ResponseCode:         tx.ResponseCode,
		ResponseMessage:      tx.ResponseMessage,
		CreatedAt:            createdAt,
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:                   it.ID,
		ApplicationNumber:    it.ApplicationNumber,
		ReceiptNumber:        it.ReceiptNumber,
		Type:                 entities.TransactionType(it.Type),
		GatewayTransactionID: it.GatewayTransactionID,
		Amount:               entities.Money(it.Amount),
		Status:               entities.TransactionStatus(it.Status),
		ResponseCode:         it.ResponseCode,
		ResponseMessage:      it.ResponseMessage,
		CreatedAt:            parseTime(it.CreatedAt),
	}
}
