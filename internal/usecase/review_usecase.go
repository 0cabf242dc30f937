package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidReviewType      = categorized(ErrValidation, "invalid review type")
	ErrInvalidReviewDecision  = categorized(ErrValidation, "invalid review decision")
	ErrReviewNotFound         = categorized(ErrNotFound, "review not found")
	ErrDepartmentNotFound     = categorized(ErrReference, "department not found")
	ErrReviewerNotFound       = categorized(ErrReference, "reviewer not found")
	ErrReviewAlreadyExists    = categorized(ErrConflict, "review already assigned for this type")
	ErrReviewAlreadyCompleted = categorized(ErrConflict, "review already completed")
)

type AssignReviewInput struct {
	ReviewType     entities.ReviewType
	DepartmentCode string
	ReviewerID     string
}

type CompleteReviewInput struct {
	Decision        entities.ReviewDecision
	FindingsSummary string
	Conditions      string
	ReviewerNotes   string
}

type IReviewUseCase interface {
	Assign(ctx context.Context, applicationNumber string, in AssignReviewInput) (entities.Review, error)
	List(ctx context.Context, applicationNumber string) ([]entities.Review, error)
	Start(ctx context.Context, applicationNumber string, reviewType entities.ReviewType, reviewerID string) (entities.Review, error)
	Complete(ctx context.Context, applicationNumber string, reviewType entities.ReviewType, in CompleteReviewInput) (entities.Review, error)
}

type ReviewUseCase struct {
	repo         interfaces.IReviewRepository
	applications interfaces.IApplicationRepository
	departments  interfaces.IDepartmentRepository
	users        interfaces.IUserRepository
	now          func() time.Time
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, applications interfaces.IApplicationRepository, departments interfaces.IDepartmentRepository, users interfaces.IUserRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, applications: applications, departments: departments, users: users, now: time.Now}
}

func (u *ReviewUseCase) Assign(ctx context.Context, applicationNumber string, in AssignReviewInput) (entities.Review, error) {
	if !in.ReviewType.Valid() {
		return entities.Review{}, ErrInvalidReviewType
	}
	a, err := getApplication(ctx, u.applications, applicationNumber)
	if err != nil {
		return entities.Review{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(in.DepartmentCode))
	dept, err := u.departments.GetByCode(ctx, code)
	if err != nil {
		return entities.Review{}, err
	}
	if dept.Code == "" {
		return entities.Review{}, ErrDepartmentNotFound
	}
	reviewerID := strings.TrimSpace(in.ReviewerID)
	if reviewerID != "" {
		if err := u.ensureReviewer(ctx, reviewerID); err != nil {
			return entities.Review{}, err
		}
	}

	r := entities.Review{
		ID:                uuid.NewString(),
		ApplicationNumber: a.ApplicationNumber,
		ReviewType:        in.ReviewType,
		DepartmentCode:    dept.Code,
		ReviewerID:        reviewerID,
		AssignedDate:      u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Review{}, mapRepositoryError(err, ErrReviewAlreadyExists)
	}
	log.Info().Str("application_number", a.ApplicationNumber).Str("review_type", string(in.ReviewType)).Str("department", dept.Code).Msg("[review][usecase] assign success")
	return created, nil
}

func (u *ReviewUseCase) ensureReviewer(ctx context.Context, id string) error {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrReviewerNotFound
	}
	return nil
}

func (u *ReviewUseCase) List(ctx context.Context, applicationNumber string) ([]entities.Review, error) {
	a, err := getApplication(ctx, u.applications, applicationNumber)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByApplication(ctx, a.ApplicationNumber)
}

// Start records the start date. Starting an already started review keeps the original date.
func (u *ReviewUseCase) Start(ctx context.Context, applicationNumber string, reviewType entities.ReviewType, reviewerID string) (entities.Review, error) {
	r, err := u.get(ctx, applicationNumber, reviewType)
	if err != nil {
		return entities.Review{}, err
	}
	if r.IsCompleted {
		return entities.Review{}, ErrReviewAlreadyCompleted
	}
	if reviewerID = strings.TrimSpace(reviewerID); reviewerID != "" && reviewerID != r.ReviewerID {
		if err := u.ensureReviewer(ctx, reviewerID); err != nil {
			return entities.Review{}, err
		}
		r.ReviewerID = reviewerID
	}
	if r.StartDate == nil {
		now := u.now().UTC()
		r.StartDate = &now
	}
	return u.repo.Update(ctx, r)
}

// Complete records the decision and the review duration in minutes.
func (u *ReviewUseCase) Complete(ctx context.Context, applicationNumber string, reviewType entities.ReviewType, in CompleteReviewInput) (entities.Review, error) {
	if !in.Decision.Valid() {
		return entities.Review{}, ErrInvalidReviewDecision
	}
	r, err := u.get(ctx, applicationNumber, reviewType)
	if err != nil {
		return entities.Review{}, err
	}
	if r.IsCompleted {
		return entities.Review{}, ErrReviewAlreadyCompleted
	}

	now := u.now().UTC()
	if r.StartDate == nil {
		r.StartDate = &now
	}
	r.CompletionDate = &now
	r.Decision = in.Decision
	r.FindingsSummary = strings.TrimSpace(in.FindingsSummary)
	r.Conditions = strings.TrimSpace(in.Conditions)
	r.ReviewerNotes = strings.TrimSpace(in.ReviewerNotes)
	r.ReviewDuration = r.DurationMinutes()
	r.IsCompleted = true

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}
	log.Info().
		Str("application_number", updated.ApplicationNumber).
		Str("review_type", string(updated.ReviewType)).
		Str("decision", string(updated.Decision)).
		Int("duration_minutes", updated.ReviewDuration).
		Msg("[review][usecase] complete success")
	return updated, nil
}

func (u *ReviewUseCase) get(ctx context.Context, applicationNumber string, reviewType entities.ReviewType) (entities.Review, error) {
	if !reviewType.Valid() {
		return entities.Review{}, ErrInvalidReviewType
	}
	a, err := getApplication(ctx, u.applications, applicationNumber)
	if err != nil {
		return entities.Review{}, err
	}
	r, err := u.repo.Get(ctx, a.ApplicationNumber, reviewType)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

// getApplication loads an application by number, mapping a miss to ErrApplicationNotFound.
func getApplication(ctx context.Context, repo interfaces.IApplicationRepository, number string) (entities.Application, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Application{}, ErrInvalidApplicationNumber
	}
	a, err := repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Application{}, err
	}
	if a.ApplicationNumber == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	return a, nil
}
