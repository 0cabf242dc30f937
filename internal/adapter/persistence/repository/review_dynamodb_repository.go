package repository

import (
	"context"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	reviewsPartitionKey = "application_number"
	reviewsSortKey      = "review_type"
)

type reviewItem struct {
	ApplicationNumber string `dynamodbav:"application_number"`
	ReviewType        string `dynamodbav:"review_type"`
	ID                string `dynamodbav:"id"`
	DepartmentCode    string `dynamodbav:"department_code"`
	ReviewerID        string `dynamodbav:"reviewer_id,omitempty"`
	AssignedDate      string `dynamodbav:"assigned_date"`
	StartDate         string `dynamodbav:"start_date,omitempty"`
	CompletionDate    string `dynamodbav:"completion_date,omitempty"`
	Decision          string `dynamodbav:"decision,omitempty"`
	FindingsSummary   string `dynamodbav:"findings_summary,omitempty"`
	Conditions        string `dynamodbav:"conditions,omitempty"`
	ReviewerNotes     string `dynamodbav:"reviewer_notes,omitempty"`
	ReviewDuration    int    `dynamodbav:"review_duration"`
	IsCompleted       bool   `dynamodbav:"is_completed"`
}

// ReviewDynamoRepository persists departmental reviews.
//
// Table requirements:
//   - PK: application_number (string)
//   - SK: review_type (string)
//
// The key makes (application, review type) unique.
type ReviewDynamoRepository struct {
	t table
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb DynamoAPI, tableName string) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	if err := r.t.create(ctx, toReviewItem(rv), reviewsSortKey); err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) Get(ctx context.Context, applicationNumber string, reviewType entities.ReviewType) (entities.Review, error) {
	var it reviewItem
	found, err := r.t.get(ctx, compositeKey(reviewsPartitionKey, applicationNumber, reviewsSortKey, string(reviewType)), &it)
	if err != nil || !found {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Review, error) {
	raw, err := r.t.queryPartition(ctx, reviewsPartitionKey, applicationNumber)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[reviewItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Review, 0, len(items))
	for _, it := range items {
		out = append(out, fromReviewItem(it))
	}
	return out, nil
}

func (r *ReviewDynamoRepository) Update(ctx context.Context, rv entities.Review) (entities.Review, error) {
	ok, err := r.t.replace(ctx, toReviewItem(rv), reviewsSortKey)
	if err != nil || !ok {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) DeleteByApplication(ctx context.Context, applicationNumber string) error {
	return r.t.deletePartition(ctx, reviewsPartitionKey, applicationNumber, reviewsSortKey)
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		ApplicationNumber: r.ApplicationNumber,
		ReviewType:        string(r.ReviewType),
		ID:                r.ID,
		DepartmentCode:    r.DepartmentCode,
		ReviewerID:        r.ReviewerID,
		AssignedDate:      formatTime(r.AssignedDate),
		StartDate:         formatTimePtr(r.StartDate),
		CompletionDate:    formatTimePtr(r.CompletionDate),
		Decision:          string(r.Decision),
		FindingsSummary:   r.FindingsSummary,
		Conditions:        r.Conditions,
		ReviewerNotes:     r.ReviewerNotes,
		ReviewDuration:    r.ReviewDuration,
		IsCompleted:       r.IsCompleted,
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:                it.ID,
		ApplicationNumber: it.ApplicationNumber,
		ReviewType:        entities.ReviewType(it.ReviewType),
		DepartmentCode:    it.DepartmentCode,
		ReviewerID:        it.ReviewerID,
		AssignedDate:      parseTime(it.AssignedDate),
		StartDate:         parseTimePtr(it.StartDate),
		CompletionDate:    parseTimePtr(it.CompletionDate),
		Decision:          entities.ReviewDecision(it.Decision),
		FindingsSummary:   it.FindingsSummary,
		Conditions:        it.Conditions,
		ReviewerNotes:     it.ReviewerNotes,
		ReviewDuration:    it.ReviewDuration,
		IsCompleted:       it.IsCompleted,
	}
}
