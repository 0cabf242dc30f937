package repository

import (
	"context"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	historyPartitionKey = "application_number"
	historySortKey      = "changed_at_id"
)

type statusHistoryItem struct {
	ApplicationNumber string `dynamodbav:"application_number"`
	ChangedAtID       string `dynamodbav:"changed_at_id"`
	ID                string `dynamodbav:"id"`
	FromStatus        string `dynamodbav:"from_status"`
	ToStatus          string `dynamodbav:"to_status"`
	ChangedBy         string `dynamodbav:"changed_by,omitempty"`
	ChangedAt         string `dynamodbav:"changed_at"`
	ChangeReason      string `dynamodbav:"change_reason"`
}

// StatusHistoryDynamoRepository reads the append-only status audit trail.
//
// Table requirements:
//   - PK: application_number (string)
//   - SK: changed_at_id (string, "{changed_at}#{id}" with a fixed-width timestamp)
//
// Rows are only written by ApplicationDynamoRepository.TransitionStatus.
type StatusHistoryDynamoRepository struct {
	t table
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryDynamoRepository)(nil)

func NewStatusHistoryDynamoRepository(ddb DynamoAPI, tableName string) *StatusHistoryDynamoRepository {
	return &StatusHistoryDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

// ListByApplication returns the history in creation order.
func (r *StatusHistoryDynamoRepository) ListByApplication(ctx context.Context, number string) ([]entities.StatusHistory, error) {
	raw, err := r.t.queryPartition(ctx, historyPartitionKey, number)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[statusHistoryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StatusHistory, 0, len(items))
	for _, it := range items {
		out = append(out, fromStatusHistoryItem(it))
	}
	return out, nil
}

func (r *StatusHistoryDynamoRepository) DeleteByApplication(ctx context.Context, number string) error {
	return r.t.deletePartition(ctx, historyPartitionKey, number, historySortKey)
}

func toStatusHistoryItem(h entities.StatusHistory) statusHistoryItem {
	changedAt := formatTime(h.ChangedAt)
	return statusHistoryItem{
		ApplicationNumber: h.ApplicationNumber,
		ChangedAtID:       changedAt + "#" + h.ID,
		ID:                h.ID,
		FromStatus:        h.FromStatus,
		ToStatus:          h.ToStatus,
		ChangedBy:         h.ChangedBy,
		ChangedAt:         changedAt,
		ChangeReason:      h.ChangeReason,
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistory {
	return entities.StatusHistory{
		ID:                it.ID,
		ApplicationNumber: it.ApplicationNumber,
		FromStatus:        it.FromStatus,
		ToStatus:          it.ToStatus,
		ChangedBy:         it.ChangedBy,
		ChangedAt:         parseTime(it.ChangedAt),
		ChangeReason:      it.ChangeReason,
	}
}
