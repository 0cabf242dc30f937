package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidApplicant = categorized(ErrValidation, "applicant requires first name, last name and a valid email")
	ErrUserNotFound     = categorized(ErrReference, "user not found")
)

type IApplicantUseCase interface {
	Add(ctx context.Context, applicationNumber string, a entities.Applicant) (entities.Applicant, error)
	List(ctx context.Context, applicationNumber string) ([]entities.Applicant, error)
}

type ApplicantUseCase struct {
	repo         interfaces.IApplicantRepository
	applications interfaces.IApplicationRepository
	users        interfaces.IUserRepository
	now          func() time.Time
}

var _ IApplicantUseCase = (*ApplicantUseCase)(nil)

func NewApplicantUseCase(repo interfaces.IApplicantRepository, applications interfaces.IApplicationRepository, users interfaces.IUserRepository) *ApplicantUseCase {
	return &ApplicantUseCase{repo: repo, applications: applications, users: users, now: time.Now}
}

// Add attaches a party to the application. When UserID is set, missing names and email are
// filled from the user record.
func (u *ApplicantUseCase) Add(ctx context.Context, applicationNumber string, in entities.Applicant) (entities.Applicant, error) {
	app, err := getApplication(ctx, u.applications, applicationNumber)
	if err != nil {
		return entities.Applicant{}, err
	}

	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID != "" {
		user, err := u.users.GetByID(ctx, in.UserID)
		if err != nil {
			return entities.Applicant{}, err
		}
		if user.ID == "" {
			return entities.Applicant{}, ErrUserNotFound
		}
		if strings.TrimSpace(in.FirstName) == "" {
			in.FirstName = user.FirstName
		}
		if strings.TrimSpace(in.LastName) == "" {
			in.LastName = user.LastName
		}
		if strings.TrimSpace(in.Email) == "" {
			in.Email = user.Email
		}
		if strings.TrimSpace(in.Phone) == "" {
			in.Phone = user.Phone
		}
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FirstName == "" || in.LastName == "" {
		return entities.Applicant{}, ErrInvalidApplicant
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return entities.Applicant{}, ErrInvalidApplicant
	}
	if in.Role = strings.TrimSpace(in.Role); in.Role == "" {
		in.Role = entities.DefaultApplicantRole
	}

	in.ID = uuid.NewString()
	in.ApplicationNumber = app.ApplicationNumber
	in.IsActive = true
	in.CreatedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, in)
	if err != nil {
		return entities.Applicant{}, err
	}
	log.Info().Str("application_number", app.ApplicationNumber).Str("applicant_id", created.ID).Str("role", created.Role).Msg("[applicant][usecase] add success")
	return created, nil
}

func (u *ApplicantUseCase) List(ctx context.Context, applicationNumber string) ([]entities.Applicant, error) {
	app, err := getApplication(ctx, u.applications, applicationNumber)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByApplication(ctx, app.ApplicationNumber)
}
