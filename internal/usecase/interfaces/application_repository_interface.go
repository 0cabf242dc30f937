package interfaces

import (
	"context"
	"time"

	"permit_tracker/internal/domain/entities"
)

// ApplicationFilter narrows List. Empty fields match everything.
type ApplicationFilter struct {
	Status       string
	CreatedBy    string
	PermitTypeID string
}

// StatusChange is the atomic unit written by TransitionStatus: the application update
// (conditioned on From still being current) and its history row.
type StatusChange struct {
	ApplicationNumber    string
	From                 string
	To                   string
	ModifiedBy           string
	ModifiedAt           time.Time
	ActualCompletionDate *time.Time
	History              entities.StatusHistory
}

// IApplicationRepository abstracts DynamoDB persistence for Application.
//
// GetByNumber returns a zero Application (empty ApplicationNumber) when nothing matches.
// Create returns ErrAlreadyExists on a duplicate number; TransitionStatus returns
// ErrConcurrentModification when the current status is no longer From.
type IApplicationRepository interface {
	Create(ctx context.Context, a entities.Application) (entities.Application, error)
	GetByNumber(ctx context.Context, number string) (entities.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]entities.Application, error)
	Update(ctx context.Context, a entities.Application) (entities.Application, error)
	TransitionStatus(ctx context.Context, change StatusChange) (entities.Application, error)
	Delete(ctx context.Context, number string) error
}

// IStatusHistoryRepository reads the audit trail written by TransitionStatus.
type IStatusHistoryRepository interface {
	ListByApplication(ctx context.Context, number string) ([]entities.StatusHistory, error)
	DeleteByApplication(ctx context.Context, number string) error
}

// ISequenceRepository allocates per-(scope, year) sequence numbers atomically.
type ISequenceRepository interface {
	Next(ctx context.Context, scope string, year int) (int, error)
}
