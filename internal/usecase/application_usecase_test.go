package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
	mock_interfaces "permit_tracker/internal/usecase/interfaces/mocks"
)

type applicationMocks struct {
	apps       *mock_interfaces.MockIApplicationRepository
	history    *mock_interfaces.MockIStatusHistoryRepository
	sequences  *mock_interfaces.MockISequenceRepository
	statuses   *mock_interfaces.MockIStatusRepository
	types      *mock_interfaces.MockIPermitTypeRepository
	properties *mock_interfaces.MockIPropertyRepository
	documents  *mock_interfaces.MockIDocumentRepository
	reviews    *mock_interfaces.MockIReviewRepository
	applicants *mock_interfaces.MockIApplicantRepository
	payments   *mock_interfaces.MockIPaymentRepository
	files      *mock_interfaces.MockIFileStorage
}

var fixedNow = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

func newApplicationUseCaseForTest(ctrl *gomock.Controller) (*ApplicationUseCase, applicationMocks) {
	m := applicationMocks{
		apps:       mock_interfaces.NewMockIApplicationRepository(ctrl),
		history:    mock_interfaces.NewMockIStatusHistoryRepository(ctrl),
		sequences:  mock_interfaces.NewMockISequenceRepository(ctrl),
		statuses:   mock_interfaces.NewMockIStatusRepository(ctrl),
		types:      mock_interfaces.NewMockIPermitTypeRepository(ctrl),
		properties: mock_interfaces.NewMockIPropertyRepository(ctrl),
		documents:  mock_interfaces.NewMockIDocumentRepository(ctrl),
		reviews:    mock_interfaces.NewMockIReviewRepository(ctrl),
		applicants: mock_interfaces.NewMockIApplicantRepository(ctrl),
		payments:   mock_interfaces.NewMockIPaymentRepository(ctrl),
		files:      mock_interfaces.NewMockIFileStorage(ctrl),
	}
	uc := NewApplicationUseCase(ApplicationRepositories{
		Applications: m.apps,
		History:      m.history,
		Sequences:    m.sequences,
		Statuses:     m.statuses,
		PermitTypes:  m.types,
		Properties:   m.properties,
		Documents:    m.documents,
		Reviews:      m.reviews,
		Applicants:   m.applicants,
		Payments:     m.payments,
	}, m.files, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func application(status string) entities.Application {
	return entities.Application{
		ApplicationNumber:  "BP-2024-00001",
		ProjectDescription: "Deck",
		CurrentStatus:      status,
		Priority:           entities.PriorityNormal,
		PermitTypeID:       "pt-1",
		PropertyID:         "prop-1",
	}
}

func TestApplicationUseCase_Create(t *testing.T) {
	valid := CreateApplicationInput{
		ProjectDescription: "  Rear deck  ",
		EstimatedValue:     entities.Money(1_500_000),
		PermitTypeID:       "pt-1",
		PropertyID:         "prop-1",
	}

	validation := []struct {
		name string
		mut  func(in *CreateApplicationInput)
		want error
	}{
		{"blank description", func(in *CreateApplicationInput) { in.ProjectDescription = "  " }, ErrInvalidProjectDescription},
		{"negative value", func(in *CreateApplicationInput) { in.EstimatedValue = -1 }, ErrInvalidEstimatedValue},
		{"value above 12 digits", func(in *CreateApplicationInput) { in.EstimatedValue = entities.MaxEstimatedValue + 1 }, ErrInvalidEstimatedValue},
		{"bad priority", func(in *CreateApplicationInput) { in.Priority = 9 }, ErrInvalidPriority},
		{"missing permit type", func(in *CreateApplicationInput) { in.PermitTypeID = "" }, ErrMissingPermitType},
		{"missing property", func(in *CreateApplicationInput) { in.PropertyID = " " }, ErrMissingProperty},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, _ := newApplicationUseCaseForTest(ctrl)
			in := valid
			tc.mut(&in)
			_, err := uc.Create(context.Background(), in, "user-1")
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown permit type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{}, nil)

		_, err := uc.Create(context.Background(), valid, "user-1")
		if !errors.Is(err, ErrPermitTypeNotFound) || !errors.Is(err, ErrReference) {
			t.Fatalf("expected ErrPermitTypeNotFound, got %v", err)
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{ID: "pt-1"}, nil)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{}, nil)

		_, err := uc.Create(context.Background(), valid, "user-1")
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("success allocates number and target date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{ID: "pt-1", StandardProcessingDays: 30}, nil)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), entities.SequenceScopeApplication, 2024).Return(7, nil)
		m.apps.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Application{})).DoAndReturn(
			func(_ context.Context, a entities.Application) (entities.Application, error) {
				if a.ApplicationNumber != "BP-2024-00007" {
					t.Fatalf("unexpected number %q", a.ApplicationNumber)
				}
				if a.CurrentStatus != entities.StatusDraft || a.Priority != entities.PriorityNormal {
					t.Fatalf("unexpected defaults: %+v", a)
				}
				if a.ProjectDescription != "Rear deck" || a.CreatedBy != "user-1" {
					t.Fatalf("unexpected fields: %+v", a)
				}
				want := time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)
				if a.TargetCompletionDate == nil || !a.TargetCompletionDate.Equal(want) {
					t.Fatalf("expected target %v, got %v", want, a.TargetCompletionDate)
				}
				return a, nil
			},
		)

		got, err := uc.Create(context.Background(), valid, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ApplicationNumber != "BP-2024-00007" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("number collision is a concurrency error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{ID: "pt-1"}, nil)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), entities.SequenceScopeApplication, 2024).Return(1, nil)
		m.apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Application{}, interfaces.ErrAlreadyExists)

		_, err := uc.Create(context.Background(), valid, "user-1")
		if !errors.Is(err, ErrApplicationAlreadyExists) || !errors.Is(err, ErrConcurrency) {
			t.Fatalf("expected ErrApplicationAlreadyExists, got %v", err)
		}
	})
}

func TestApplicationUseCase_Get(t *testing.T) {
	t.Run("blank number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newApplicationUseCaseForTest(ctrl)
		_, err := uc.Get(context.Background(), " ")
		if !errors.Is(err, ErrInvalidApplicationNumber) {
			t.Fatalf("expected ErrInvalidApplicationNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00009").Return(entities.Application{}, nil)

		_, err := uc.Get(context.Background(), "BP-2024-00009")
		if !errors.Is(err, ErrApplicationNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}

func TestApplicationUseCase_List_NormalizesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, m := newApplicationUseCaseForTest(ctrl)
	m.apps.EXPECT().List(gomock.Any(), interfaces.ApplicationFilter{Status: "UNDER_REVIEW", CreatedBy: "user-1"}).
		Return([]entities.Application{application(entities.StatusUnderReview)}, nil)

	got, err := uc.List(context.Background(), interfaces.ApplicationFilter{Status: " under_review ", CreatedBy: " user-1 "})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}

func TestApplicationUseCase_Update(t *testing.T) {
	t.Run("applies partial fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		desc := "Larger deck"
		value := entities.Money(2_000_000)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.apps.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Application) (entities.Application, error) {
				if a.ProjectDescription != desc || a.EstimatedValue != value || a.LastModifiedBy != "user-2" {
					t.Fatalf("unexpected update: %+v", a)
				}
				if !a.LastModifiedDate.Equal(fixedNow) || a.CurrentStatus != entities.StatusDraft {
					t.Fatalf("unexpected update: %+v", a)
				}
				return a, nil
			},
		)

		_, err := uc.Update(context.Background(), "BP-2024-00001", UpdateApplicationInput{ProjectDescription: &desc, EstimatedValue: &value}, "user-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects blank description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		blank := " "
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)

		_, err := uc.Update(context.Background(), "BP-2024-00001", UpdateApplicationInput{ProjectDescription: &blank}, "user-2")
		if !errors.Is(err, ErrInvalidProjectDescription) {
			t.Fatalf("expected ErrInvalidProjectDescription, got %v", err)
		}
	})

	t.Run("rejects oversized value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		value := entities.MoneyFromFloat(1e15)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)

		_, err := uc.Update(context.Background(), "BP-2024-00001", UpdateApplicationInput{EstimatedValue: &value}, "user-2")
		if !errors.Is(err, ErrInvalidEstimatedValue) {
			t.Fatalf("expected ErrInvalidEstimatedValue, got %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.apps.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Application{}, nil)

		_, err := uc.Update(context.Background(), "BP-2024-00001", UpdateApplicationInput{}, "")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}

func TestApplicationUseCase_Transition(t *testing.T) {
	t.Run("blank status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newApplicationUseCaseForTest(ctrl)
		_, err := uc.Transition(context.Background(), "BP-2024-00001", "  ", "u", "")
		if !errors.Is(err, ErrInvalidStatusCode) {
			t.Fatalf("expected ErrInvalidStatusCode, got %v", err)
		}
	})

	t.Run("status missing from populated catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), "ON_HOLD").Return(entities.Status{}, nil)
		m.statuses.EXPECT().List(gomock.Any()).Return(entities.DefaultStatuses(), nil)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", "on_hold", "u", "")
		if !errors.Is(err, ErrStatusNotFound) || !errors.Is(err, ErrReference) {
			t.Fatalf("expected ErrStatusNotFound, got %v", err)
		}
	})

	t.Run("edge not in workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), entities.StatusApproved).Return(entities.Status{Code: entities.StatusApproved}, nil)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", entities.StatusApproved, "u", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("catalog-only status is not a transition target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), "ON_HOLD").Return(entities.Status{Code: "ON_HOLD", Name: "On hold"}, nil)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", "on_hold", "u", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal status never leaves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusApproved), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), entities.StatusUnderReview).Return(entities.Status{Code: entities.StatusUnderReview}, nil)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", entities.StatusUnderReview, "u", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success writes history with default reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), entities.StatusSubmitted).Return(entities.Status{}, nil)
		m.statuses.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.apps.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.StatusChange) (entities.Application, error) {
				if c.From != entities.StatusDraft || c.To != entities.StatusSubmitted || c.ModifiedBy != "user-1" {
					t.Fatalf("unexpected change: %+v", c)
				}
				if c.ActualCompletionDate != nil {
					t.Fatalf("non-terminal transition must not set completion date")
				}
				h := c.History
				if h.ID == "" || h.ChangeReason != "Status changed from DRAFT to SUBMITTED" || !h.ChangedAt.Equal(fixedNow) {
					t.Fatalf("unexpected history: %+v", h)
				}
				a := application(entities.StatusSubmitted)
				return a, nil
			},
		)

		got, err := uc.Transition(context.Background(), "BP-2024-00001", "submitted", "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStatus != entities.StatusSubmitted {
			t.Fatalf("unexpected status %q", got.CurrentStatus)
		}
	})

	t.Run("terminal target sets completion date and keeps reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusUnderReview), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), entities.StatusApproved).Return(entities.Status{Code: entities.StatusApproved}, nil)
		m.apps.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.StatusChange) (entities.Application, error) {
				if c.ActualCompletionDate == nil || !c.ActualCompletionDate.Equal(fixedNow) {
					t.Fatalf("expected completion date, got %v", c.ActualCompletionDate)
				}
				if c.History.ChangeReason != "All reviews passed" {
					t.Fatalf("unexpected reason %q", c.History.ChangeReason)
				}
				return application(entities.StatusApproved), nil
			},
		)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", entities.StatusApproved, "user-1", " All reviews passed ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.statuses.EXPECT().GetByCode(gomock.Any(), entities.StatusSubmitted).Return(entities.Status{Code: entities.StatusSubmitted}, nil)
		m.apps.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).Return(entities.Application{}, interfaces.ErrConcurrentModification)

		_, err := uc.Transition(context.Background(), "BP-2024-00001", entities.StatusSubmitted, "user-1", "")
		if !errors.Is(err, ErrStatusChangedConcurrently) || !errors.Is(err, ErrConcurrency) {
			t.Fatalf("expected ErrStatusChangedConcurrently, got %v", err)
		}
	})
}

func TestApplicationUseCase_Delete(t *testing.T) {
	t.Run("paid application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusSubmitted), nil)
		m.payments.EXPECT().GetByApplication(gomock.Any(), "BP-2024-00001").Return(entities.Payment{ApplicationNumber: "BP-2024-00001"}, nil)

		err := uc.Delete(context.Background(), "BP-2024-00001")
		if !errors.Is(err, ErrApplicationHasPayment) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrApplicationHasPayment, got %v", err)
		}
	})

	t.Run("cascades to owned records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.payments.EXPECT().GetByApplication(gomock.Any(), "BP-2024-00001").Return(entities.Payment{}, nil)
		m.documents.EXPECT().ListByApplication(gomock.Any(), "BP-2024-00001").Return([]entities.Document{
			{ID: "d-1", StorageLocation: "gs://bucket/a"},
			{ID: "d-2"},
		}, nil)
		m.files.EXPECT().Delete(gomock.Any(), "gs://bucket/a").Return(errors.New("gone"))
		gomock.InOrder(
			m.documents.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(nil),
			m.reviews.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(nil),
			m.applicants.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(nil),
			m.history.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(nil),
			m.apps.EXPECT().Delete(gomock.Any(), "BP-2024-00001").Return(nil),
		)

		if err := uc.Delete(context.Background(), "BP-2024-00001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("child delete failure keeps application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newApplicationUseCaseForTest(ctrl)
		m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusDraft), nil)
		m.payments.EXPECT().GetByApplication(gomock.Any(), "BP-2024-00001").Return(entities.Payment{}, nil)
		m.documents.EXPECT().ListByApplication(gomock.Any(), "BP-2024-00001").Return(nil, nil)
		m.documents.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(nil)
		m.reviews.EXPECT().DeleteByApplication(gomock.Any(), "BP-2024-00001").Return(errors.New("throttled"))
		m.apps.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		if err := uc.Delete(context.Background(), "BP-2024-00001"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestApplicationUseCase_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, m := newApplicationUseCaseForTest(ctrl)
	m.apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusSubmitted), nil)
	m.history.EXPECT().ListByApplication(gomock.Any(), "BP-2024-00001").Return([]entities.StatusHistory{{ID: "h-1"}}, nil)

	got, err := uc.History(context.Background(), "BP-2024-00001")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}
