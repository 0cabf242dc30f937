package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/infrastructure/metrics"
	"permit_tracker/internal/usecase/interfaces"
)

type CreateApplicationInput struct {
	ProjectDescription string
	EstimatedValue     entities.Money
	Priority           entities.Priority
	PermitTypeID       string
	PropertyID         string
}

// UpdateApplicationInput carries a partial update. Nil fields are left unchanged.
type UpdateApplicationInput struct {
	ProjectDescription   *string
	EstimatedValue       *entities.Money
	Priority             *entities.Priority
	TargetCompletionDate *time.Time
	PropertyID           *string
}

// IApplicationUseCase exposes permit application operations, including the status tracker.
type IApplicationUseCase interface {
	Create(ctx context.Context, in CreateApplicationInput, actor string) (entities.Application, error)
	Get(ctx context.Context, number string) (entities.Application, error)
	List(ctx context.Context, filter interfaces.ApplicationFilter) ([]entities.Application, error)
	Update(ctx context.Context, number string, in UpdateApplicationInput, actor string) (entities.Application, error)
	Delete(ctx context.Context, number string) error
	Transition(ctx context.Context, number, newStatus, actor, reason string) (entities.Application, error)
	History(ctx context.Context, number string) ([]entities.StatusHistory, error)
}

// ApplicationRepositories groups the stores an application owns or references.
type ApplicationRepositories struct {
	Applications interfaces.IApplicationRepository
	History      interfaces.IStatusHistoryRepository
	Sequences    interfaces.ISequenceRepository
	Statuses     interfaces.IStatusRepository
	PermitTypes  interfaces.IPermitTypeRepository
	Properties   interfaces.IPropertyRepository
	Documents    interfaces.IDocumentRepository
	Reviews      interfaces.IReviewRepository
	Applicants   interfaces.IApplicantRepository
	Payments     interfaces.IPaymentRepository
}

type ApplicationUseCase struct {
	repos    ApplicationRepositories
	storage  interfaces.IFileStorage
	workflow entities.Workflow
	now      func() time.Time
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

// NewApplicationUseCase wires the use case. storage may be nil, in which case document files
// are left in place when an application is deleted.
func NewApplicationUseCase(repos ApplicationRepositories, storage interfaces.IFileStorage, workflow entities.Workflow) *ApplicationUseCase {
	if workflow == nil {
		workflow = entities.DefaultWorkflow()
	}
	return &ApplicationUseCase{repos: repos, storage: storage, workflow: workflow, now: time.Now}
}

func (u *ApplicationUseCase) Create(ctx context.Context, in CreateApplicationInput, actor string) (entities.Application, error) {
	in.ProjectDescription = strings.TrimSpace(in.ProjectDescription)
	in.PermitTypeID = strings.TrimSpace(in.PermitTypeID)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	if in.ProjectDescription == "" {
		return entities.Application{}, ErrInvalidProjectDescription
	}
	if in.EstimatedValue < 0 || in.EstimatedValue > entities.MaxEstimatedValue {
		return entities.Application{}, ErrInvalidEstimatedValue
	}
	if in.Priority == 0 {
		in.Priority = entities.PriorityNormal
	}
	if !in.Priority.Valid() {
		return entities.Application{}, ErrInvalidPriority
	}
	if in.PermitTypeID == "" {
		return entities.Application{}, ErrMissingPermitType
	}
	if in.PropertyID == "" {
		return entities.Application{}, ErrMissingProperty
	}

	permitType, err := u.repos.PermitTypes.GetByID(ctx, in.PermitTypeID)
	if err != nil {
		return entities.Application{}, err
	}
	if permitType.ID == "" {
		return entities.Application{}, ErrPermitTypeNotFound
	}
	property, err := u.repos.Properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return entities.Application{}, err
	}
	if property.ID == "" {
		return entities.Application{}, ErrPropertyNotFound
	}

	now := u.now().UTC()
	seq, err := u.repos.Sequences.Next(ctx, entities.SequenceScopeApplication, now.Year())
	if err != nil {
		log.Error().Err(err).Msg("[application][usecase] sequence allocation failed")
		return entities.Application{}, err
	}

	days := permitType.StandardProcessingDays
	if days <= 0 {
		days = entities.DefaultProcessingDays
	}
	target := entities.ComputeTargetCompletionDate(now, days)

	a := entities.Application{
		ApplicationNumber:    entities.FormatIdentifier(entities.ApplicationNumberPrefix, now.Year(), seq),
		ProjectDescription:   in.ProjectDescription,
		EstimatedValue:       in.EstimatedValue,
		CurrentStatus:        entities.StatusDraft,
		Priority:             in.Priority,
		SubmissionDate:       now,
		TargetCompletionDate: &target,
		CreatedBy:            strings.TrimSpace(actor),
		PermitTypeID:         permitType.ID,
		PropertyID:           property.ID,
		LastModifiedBy:       strings.TrimSpace(actor),
		LastModifiedDate:     now,
	}

	created, err := u.repos.Applications.Create(ctx, a)
	if err != nil {
		log.Error().Err(err).Str("application_number", a.ApplicationNumber).Msg("[application][usecase] create failed")
		return entities.Application{}, mapRepositoryError(err, ErrApplicationAlreadyExists)
	}
	metrics.RecordApplicationCreated()
	log.Info().Str("application_number", created.ApplicationNumber).Str("permit_type_id", created.PermitTypeID).Msg("[application][usecase] create success")
	return created, nil
}

func (u *ApplicationUseCase) Get(ctx context.Context, number string) (entities.Application, error) {
	return getApplication(ctx, u.repos.Applications, number)
}

func (u *ApplicationUseCase) List(ctx context.Context, filter interfaces.ApplicationFilter) ([]entities.Application, error) {
	filter.Status = entities.NormalizeStatusCode(filter.Status)
	filter.CreatedBy = strings.TrimSpace(filter.CreatedBy)
	filter.PermitTypeID = strings.TrimSpace(filter.PermitTypeID)
	return u.repos.Applications.List(ctx, filter)
}

func (u *ApplicationUseCase) Update(ctx context.Context, number string, in UpdateApplicationInput, actor string) (entities.Application, error) {
	a, err := u.Get(ctx, number)
	if err != nil {
		return entities.Application{}, err
	}

	if in.ProjectDescription != nil {
		desc := strings.TrimSpace(*in.ProjectDescription)
		if desc == "" {
			return entities.Application{}, ErrInvalidProjectDescription
		}
		a.ProjectDescription = desc
	}
	if in.EstimatedValue != nil {
		if *in.EstimatedValue < 0 || *in.EstimatedValue > entities.MaxEstimatedValue {
			return entities.Application{}, ErrInvalidEstimatedValue
		}
		a.EstimatedValue = *in.EstimatedValue
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return entities.Application{}, ErrInvalidPriority
		}
		a.Priority = *in.Priority
	}
	if in.TargetCompletionDate != nil {
		target := entities.DateOf(*in.TargetCompletionDate)
		a.TargetCompletionDate = &target
	}
	if in.PropertyID != nil {
		id := strings.TrimSpace(*in.PropertyID)
		property, err := u.repos.Properties.GetByID(ctx, id)
		if err != nil {
			return entities.Application{}, err
		}
		if property.ID == "" {
			return entities.Application{}, ErrPropertyNotFound
		}
		a.PropertyID = property.ID
	}

	if actor = strings.TrimSpace(actor); actor != "" {
		a.LastModifiedBy = actor
	}
	a.LastModifiedDate = u.now().UTC()

	updated, err := u.repos.Applications.Update(ctx, a)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ApplicationNumber == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	log.Info().Str("application_number", updated.ApplicationNumber).Msg("[application][usecase] update success")
	return updated, nil
}

// Delete removes the application and everything it owns. Paid applications cannot be deleted.
// Children are removed first and the application record last, so a failed cascade leaves the
// application in place and calling Delete again finishes the job.
func (u *ApplicationUseCase) Delete(ctx context.Context, number string) error {
	a, err := u.Get(ctx, number)
	if err != nil {
		return err
	}
	number = a.ApplicationNumber

	payment, err := u.repos.Payments.GetByApplication(ctx, number)
	if err != nil {
		return err
	}
	if payment.ApplicationNumber != "" {
		return ErrApplicationHasPayment
	}

	docs, err := u.repos.Documents.ListByApplication(ctx, number)
	if err != nil {
		return err
	}
	if u.storage != nil {
		for _, d := range docs {
			if d.StorageLocation == "" {
				continue
			}
			if err := u.storage.Delete(ctx, d.StorageLocation); err != nil {
				log.Warn().Err(err).Str("application_number", number).Str("document_id", d.ID).Msg("[application][usecase] document file delete failed")
			}
		}
	}

	if err := u.repos.Documents.DeleteByApplication(ctx, number); err != nil {
		return err
	}
	if err := u.repos.Reviews.DeleteByApplication(ctx, number); err != nil {
		return err
	}
	if err := u.repos.Applicants.DeleteByApplication(ctx, number); err != nil {
		return err
	}
	if err := u.repos.History.DeleteByApplication(ctx, number); err != nil {
		return err
	}
	if err := u.repos.Applications.Delete(ctx, number); err != nil {
		return err
	}
	log.Info().Str("application_number", number).Int("documents", len(docs)).Msg("[application][usecase] delete success")
	return nil
}

// Transition moves the application to newStatus and appends exactly one history row, atomically.
func (u *ApplicationUseCase) Transition(ctx context.Context, number, newStatus, actor, reason string) (entities.Application, error) {
	to := entities.NormalizeStatusCode(newStatus)
	if to == "" {
		return entities.Application{}, ErrInvalidStatusCode
	}

	a, err := u.Get(ctx, number)
	if err != nil {
		return entities.Application{}, err
	}
	from := a.CurrentStatus

	if err := u.ensureStatusInCatalog(ctx, to); err != nil {
		return entities.Application{}, err
	}
	if !u.workflow.CanTransition(from, to) {
		log.Warn().Str("application_number", a.ApplicationNumber).Str("from", from).Str("to", to).Msg("[application][usecase] transition rejected")
		return entities.Application{}, ErrInvalidTransition
	}

	now := u.now().UTC()
	actor = strings.TrimSpace(actor)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = entities.DefaultChangeReason(from, to)
	}

	change := interfaces.StatusChange{
		ApplicationNumber: a.ApplicationNumber,
		From:              from,
		To:                to,
		ModifiedBy:        actor,
		ModifiedAt:        now,
		History: entities.StatusHistory{
			ID:                uuid.NewString(),
			ApplicationNumber: a.ApplicationNumber,
			FromStatus:        from,
			ToStatus:          to,
			ChangedBy:         actor,
			ChangedAt:         now,
			ChangeReason:      reason,
		},
	}
	if u.workflow.IsTerminal(to) {
		change.ActualCompletionDate = &now
	}

	updated, err := u.repos.Applications.TransitionStatus(ctx, change)
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			log.Warn().Str("application_number", a.ApplicationNumber).Str("from", from).Str("to", to).Msg("[application][usecase] transition lost race")
			return entities.Application{}, ErrStatusChangedConcurrently
		}
		return entities.Application{}, err
	}
	metrics.RecordStatusTransition(from, to)
	log.Info().Str("application_number", a.ApplicationNumber).Str("from", from).Str("to", to).Str("changed_by", actor).Msg("[application][usecase] transition success")
	return updated, nil
}

func (u *ApplicationUseCase) ensureStatusInCatalog(ctx context.Context, code string) error {
	st, err := u.repos.Statuses.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if st.Code != "" {
		return nil
	}
	// An empty catalog means statuses are not managed; the workflow graph alone decides.
	all, err := u.repos.Statuses.List(ctx)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return ErrStatusNotFound
	}
	return nil
}

func (u *ApplicationUseCase) History(ctx context.Context, number string) ([]entities.StatusHistory, error) {
	a, err := u.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	return u.repos.History.ListByApplication(ctx, a.ApplicationNumber)
}
