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
	ErrInvalidFeeSchedule       = categorized(ErrValidation, "invalid fee schedule")
	ErrInvalidFeeBounds         = categorized(ErrValidation, "minimum fee must not exceed maximum fee")
	ErrMissingMaximumFee        = categorized(ErrValidation, "maximum fee is required when base fee or valuation rate is set")
	ErrInvalidFeeDates          = categorized(ErrValidation, "expiry date must not precede effective date")
	ErrInvalidProjectValue      = categorized(ErrValidation, "project value must be between 0 and 9999999999.99")
	ErrFeeScheduleNotFound      = categorized(ErrNotFound, "fee schedule not found")
	ErrFeeScheduleReference     = categorized(ErrReference, "fee schedule not found")
	ErrNoEffectiveFeeSchedule   = categorized(ErrReference, "no fee schedule in effect for permit type")
	ErrFeeScheduleAlreadyExists = categorized(ErrConflict, "fee schedule already exists")
)

// FeeQuote is the fee owed for an application under a schedule.
type FeeQuote struct {
	ApplicationNumber string
	FeeScheduleID     string
	ProjectValue      entities.Money
	BaseAmount        entities.Money
	TaxRate           entities.Rate
	TaxAmount         entities.Money
	TotalAmount       entities.Money
}

type IFeeScheduleUseCase interface {
	Create(ctx context.Context, s entities.FeeSchedule) (entities.FeeSchedule, error)
	Get(ctx context.Context, id string) (entities.FeeSchedule, error)
	List(ctx context.Context, permitTypeID string) ([]entities.FeeSchedule, error)
	Calculate(ctx context.Context, id string, projectValue entities.Money) (entities.Money, error)
	QuoteForApplication(ctx context.Context, applicationNumber string) (FeeQuote, error)
}

type FeeScheduleUseCase struct {
	repo         interfaces.IFeeScheduleRepository
	permitTypes  interfaces.IPermitTypeRepository
	applications interfaces.IApplicationRepository
	taxRate      entities.Rate
	now          func() time.Time
}

var _ IFeeScheduleUseCase = (*FeeScheduleUseCase)(nil)

func NewFeeScheduleUseCase(repo interfaces.IFeeScheduleRepository, permitTypes interfaces.IPermitTypeRepository, applications interfaces.IApplicationRepository, taxRate entities.Rate) *FeeScheduleUseCase {
	return &FeeScheduleUseCase{repo: repo, permitTypes: permitTypes, applications: applications, taxRate: taxRate, now: time.Now}
}

func (u *FeeScheduleUseCase) Create(ctx context.Context, s entities.FeeSchedule) (entities.FeeSchedule, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.PermitTypeID = strings.TrimSpace(s.PermitTypeID)
	s.FeeType = strings.TrimSpace(s.FeeType)
	if s.Name == "" || s.PermitTypeID == "" || s.EffectiveDate.IsZero() {
		return entities.FeeSchedule{}, ErrInvalidFeeSchedule
	}
	if s.BaseFee < 0 || s.ValuationRate < 0 || s.MinimumFee < 0 || s.MaximumFee < 0 {
		return entities.FeeSchedule{}, ErrInvalidFeeSchedule
	}
	if s.BaseFee > entities.MaxFeeAmount || s.MinimumFee > entities.MaxFeeAmount || s.MaximumFee > entities.MaxFeeAmount ||
		s.ValuationRate > entities.MaxValuationRate {
		return entities.FeeSchedule{}, ErrInvalidFeeSchedule
	}
	// a zero ceiling would clamp every computed fee to nothing
	if s.MaximumFee == 0 && (s.BaseFee > 0 || s.ValuationRate > 0) {
		return entities.FeeSchedule{}, ErrMissingMaximumFee
	}
	if s.MinimumFee > s.MaximumFee {
		return entities.FeeSchedule{}, ErrInvalidFeeBounds
	}
	if s.ExpiryDate != nil && s.ExpiryDate.Before(s.EffectiveDate) {
		return entities.FeeSchedule{}, ErrInvalidFeeDates
	}
	if s.FeeType == "" {
		s.FeeType = entities.DefaultFeeType
	}

	pt, err := u.permitTypes.GetByID(ctx, s.PermitTypeID)
	if err != nil {
		return entities.FeeSchedule{}, err
	}
	if pt.ID == "" {
		return entities.FeeSchedule{}, ErrPermitTypeNotFound
	}

	now := u.now().UTC()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.EffectiveDate = entities.DateOf(s.EffectiveDate)
	if s.ExpiryDate != nil {
		exp := entities.DateOf(*s.ExpiryDate)
		s.ExpiryDate = &exp
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.FeeSchedule{}, mapRepositoryError(err, ErrFeeScheduleAlreadyExists)
	}
	log.Info().Str("fee_schedule_id", created.ID).Str("permit_type_id", created.PermitTypeID).Msg("[fee][usecase] schedule created")
	return created, nil
}

func (u *FeeScheduleUseCase) Get(ctx context.Context, id string) (entities.FeeSchedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FeeSchedule{}, ErrFeeScheduleNotFound
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FeeSchedule{}, err
	}
	if s.ID == "" {
		return entities.FeeSchedule{}, ErrFeeScheduleNotFound
	}
	return s, nil
}

func (u *FeeScheduleUseCase) List(ctx context.Context, permitTypeID string) ([]entities.FeeSchedule, error) {
	if permitTypeID = strings.TrimSpace(permitTypeID); permitTypeID != "" {
		return u.repo.ListByPermitType(ctx, permitTypeID)
	}
	return u.repo.List(ctx)
}

func (u *FeeScheduleUseCase) Calculate(ctx context.Context, id string, projectValue entities.Money) (entities.Money, error) {
	if projectValue < 0 || projectValue > entities.MaxEstimatedValue {
		return 0, ErrInvalidProjectValue
	}
	s, err := u.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.CalculateFee(projectValue), nil
}

// QuoteForApplication prices the application's current valuation under the schedule in effect today.
func (u *FeeScheduleUseCase) QuoteForApplication(ctx context.Context, applicationNumber string) (FeeQuote, error) {
	applicationNumber = strings.TrimSpace(applicationNumber)
	if applicationNumber == "" {
		return FeeQuote{}, ErrInvalidApplicationNumber
	}
	a, err := u.applications.GetByNumber(ctx, applicationNumber)
	if err != nil {
		return FeeQuote{}, err
	}
	if a.ApplicationNumber == "" {
		return FeeQuote{}, ErrApplicationNotFound
	}
	s, err := effectiveSchedule(ctx, u.repo, a.PermitTypeID, u.now())
	if err != nil {
		return FeeQuote{}, err
	}
	return quoteFee(a, s, u.taxRate), nil
}

// effectiveSchedule returns the permit type's schedule in effect on t.
func effectiveSchedule(ctx context.Context, repo interfaces.IFeeScheduleRepository, permitTypeID string, t time.Time) (entities.FeeSchedule, error) {
	schedules, err := repo.ListByPermitType(ctx, permitTypeID)
	if err != nil {
		return entities.FeeSchedule{}, err
	}
	s, ok := entities.SelectEffectiveSchedule(schedules, t)
	if !ok {
		return entities.FeeSchedule{}, ErrNoEffectiveFeeSchedule
	}
	return s, nil
}

func quoteFee(a entities.Application, s entities.FeeSchedule, taxRate entities.Rate) FeeQuote {
	base := s.CalculateFee(a.EstimatedValue)
	tax, total := entities.CalculateAmounts(base, taxRate)
	return FeeQuote{
		ApplicationNumber: a.ApplicationNumber,
		FeeScheduleID:     s.ID,
		ProjectValue:      a.EstimatedValue,
		BaseAmount:        base,
		TaxRate:           taxRate,
		TaxAmount:         tax,
		TotalAmount:       total,
	}
}
