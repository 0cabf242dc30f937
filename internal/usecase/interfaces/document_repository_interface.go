package interfaces

import (
	"context"

	"permit_tracker/internal/domain/entities"
)

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	Get(ctx context.Context, applicationNumber, id string) (entities.Document, error)
	ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Document, error)
	Update(ctx context.Context, d entities.Document) (entities.Document, error)
	Delete(ctx context.Context, applicationNumber, id string) error
	DeleteByApplication(ctx context.Context, applicationNumber string) error
}

// IReviewRepository persists reviews keyed by (application, review type).
// Create returns ErrAlreadyExists when the pair already has a review.
type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	Get(ctx context.Context, applicationNumber string, reviewType entities.ReviewType) (entities.Review, error)
	ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Review, error)
	Update(ctx context.Context, r entities.Review) (entities.Review, error)
	DeleteByApplication(ctx context.Context, applicationNumber string) error
}

type IApplicantRepository interface {
	Create(ctx context.Context, a entities.Applicant) (entities.Applicant, error)
	ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Applicant, error)
	DeleteByApplication(ctx context.Context, applicationNumber string) error
}
