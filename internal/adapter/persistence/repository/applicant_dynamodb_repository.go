package repository

import (
	"context"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	applicantsPartitionKey = "application_number"
	applicantsSortKey      = "id"
)

type applicantItem struct {
	ApplicationNumber string `dynamodbav:"application_number"`
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id,omitempty"`
	FirstName         string `dynamodbav:"first_name"`
	LastName          string `dynamodbav:"last_name"`
	Email             string `dynamodbav:"email"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Organization      string `dynamodbav:"organization,omitempty"`
	Role              string `dynamodbav:"applicant_role"`
	IsActive          bool   `dynamodbav:"is_active"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// ApplicantDynamoRepository persists the parties attached to an application.
//
// Table requirements:
//   - PK: application_number (string)
//   - SK: id (string)
type ApplicantDynamoRepository struct {
	t table
}

var _ interfaces.IApplicantRepository = (*ApplicantDynamoRepository)(nil)

func NewApplicantDynamoRepository(ddb DynamoAPI, tableName string) *ApplicantDynamoRepository {
	return &ApplicantDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *ApplicantDynamoRepository) Create(ctx context.Context, a entities.Applicant) (entities.Applicant, error) {
	if err := r.t.create(ctx, toApplicantItem(a), applicantsSortKey); err != nil {
		return entities.Applicant{}, err
	}
	return a, nil
}

func (r *ApplicantDynamoRepository) ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Applicant, error) {
	raw, err := r.t.queryPartition(ctx, applicantsPartitionKey, applicationNumber)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[applicantItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Applicant, 0, len(items))
	for _, it := range items {
		out = append(out, fromApplicantItem(it))
	}
	return out, nil
}

func (r *ApplicantDynamoRepository) DeleteByApplication(ctx context.Context, applicationNumber string) error {
	return r.t.deletePartition(ctx, applicantsPartitionKey, applicationNumber, applicantsSortKey)
}

func toApplicantItem(a entities.Applicant) applicantItem {
	return applicantItem{
		ApplicationNumber: a.ApplicationNumber,
		ID:                a.ID,
		UserID:            a.UserID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             a.Phone,
		Organization:      a.Organization,
		Role:              a.Role,
		IsActive:          a.IsActive,
		CreatedAt:         formatTime(a.CreatedAt),
	}
}

func fromApplicantItem(it applicantItem) entities.Applicant {
	return entities.Applicant{
		ID:                it.ID,
		ApplicationNumber: it.ApplicationNumber,
		UserID:            it.UserID,
		FirstName:         it.FirstName,
		LastName:          it.LastName,
		Email:             it.Email,
		Phone:             it.Phone,
		Organization:      it.Organization,
		Role:              it.Role,
		IsActive:          it.IsActive,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
