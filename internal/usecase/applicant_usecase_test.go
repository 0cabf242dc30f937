package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"permit_tracker/internal/domain/entities"
	mock_interfaces "permit_tracker/internal/usecase/interfaces/mocks"
)

func TestApplicantUseCase_Add(t *testing.T) {
	setup := func(t *testing.T) (*ApplicantUseCase, *mock_interfaces.MockIApplicantRepository, *mock_interfaces.MockIApplicationRepository, *mock_interfaces.MockIUserRepository) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIApplicantRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewApplicantUseCase(repo, apps, users)
		uc.now = func() time.Time { return fixedNow }
		return uc, repo, apps, users
	}

	t.Run("invalid email", func(t *testing.T) {
		uc, _, apps, _ := setup(t)
		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)

		_, err := uc.Add(context.Background(), "BP-2024-00001", entities.Applicant{FirstName: "Ana", LastName: "Lee", Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidApplicant) {
			t.Fatalf("expected ErrInvalidApplicant, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, apps, users := setup(t)
		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := uc.Add(context.Background(), "BP-2024-00001", entities.Applicant{UserID: "u-1"})
		if !errors.Is(err, ErrUserNotFound) || !errors.Is(err, ErrReference) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("fills from user and defaults role", func(t *testing.T) {
		uc, repo, apps, users := setup(t)
		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", FirstName: "Ana", LastName: "Lee", Email: "Ana@Example.com", Phone: "555"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Applicant) (entities.Applicant, error) { return a, nil },
		)

		got, err := uc.Add(context.Background(), "BP-2024-00001", entities.Applicant{UserID: " u-1 ", LastName: "Lee-Park"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FirstName != "Ana" || got.LastName != "Lee-Park" || got.Email != "ana@example.com" || got.Phone != "555" {
			t.Fatalf("unexpected applicant: %+v", got)
		}
		if got.Role != entities.DefaultApplicantRole || !got.IsActive || got.ApplicationNumber != "BP-2024-00001" || got.ID == "" {
			t.Fatalf("unexpected applicant: %+v", got)
		}
	})

	t.Run("application not found", func(t *testing.T) {
		uc, _, apps, _ := setup(t)
		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00404").Return(entities.Application{}, nil)

		_, err := uc.Add(context.Background(), "BP-2024-00404", entities.Applicant{FirstName: "A", LastName: "B", Email: "a@b.com"})
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}
