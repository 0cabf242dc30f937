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

func standardSchedule() entities.FeeSchedule {
	return entities.FeeSchedule{
		ID:            "fs-1",
		PermitTypeID:  "pt-1",
		Name:          "Residential 2024",
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		BaseFee:       10_000,
		ValuationRate: 150,
		MinimumFee:    5_000,
		MaximumFee:    1_000_000,
		FeeType:       entities.DefaultFeeType,
	}
}

func TestFeeScheduleUseCase_Create(t *testing.T) {
	expiry := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	invalid := []struct {
		name string
		mut  func(s *entities.FeeSchedule)
		want error
	}{
		{"blank name", func(s *entities.FeeSchedule) { s.Name = " " }, ErrInvalidFeeSchedule},
		{"no effective date", func(s *entities.FeeSchedule) { s.EffectiveDate = time.Time{} }, ErrInvalidFeeSchedule},
		{"negative rate", func(s *entities.FeeSchedule) { s.ValuationRate = -1 }, ErrInvalidFeeSchedule},
		{"min above max", func(s *entities.FeeSchedule) { s.MinimumFee = s.MaximumFee + 1 }, ErrInvalidFeeBounds},
		{"base fee above 10 digits", func(s *entities.FeeSchedule) { s.BaseFee = entities.MaxFeeAmount + 1 }, ErrInvalidFeeSchedule},
		{"rate above 9.9999", func(s *entities.FeeSchedule) { s.ValuationRate = entities.MaxValuationRate + 1 }, ErrInvalidFeeSchedule},
		{"zero maximum with base fee", func(s *entities.FeeSchedule) { s.MinimumFee, s.MaximumFee = 0, 0 }, ErrMissingMaximumFee},
		{"expiry before effective", func(s *entities.FeeSchedule) { s.ExpiryDate = &expiry }, ErrInvalidFeeDates},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewFeeScheduleUseCase(nil, nil, nil, entities.DefaultTaxRate)
			s := standardSchedule()
			tc.mut(&s)
			_, err := uc.Create(context.Background(), s)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown permit type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		types := mock_interfaces.NewMockIPermitTypeRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, types, nil, entities.DefaultTaxRate)
		types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{}, nil)

		_, err := uc.Create(context.Background(), standardSchedule())
		if !errors.Is(err, ErrPermitTypeNotFound) {
			t.Fatalf("expected ErrPermitTypeNotFound, got %v", err)
		}
	})

	t.Run("success defaults fee type and truncates dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		types := mock_interfaces.NewMockIPermitTypeRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, types, nil, entities.DefaultTaxRate)
		uc.now = func() time.Time { return fixedNow }

		s := standardSchedule()
		s.ID = ""
		s.FeeType = ""
		s.EffectiveDate = time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC)

		types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{ID: "pt-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.FeeSchedule) (entities.FeeSchedule, error) {
				if got.ID == "" || got.FeeType != entities.DefaultFeeType {
					t.Fatalf("unexpected schedule: %+v", got)
				}
				if !got.EffectiveDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("expected date-only effective date, got %v", got.EffectiveDate)
				}
				if !got.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps")
				}
				return got, nil
			},
		)

		if _, err := uc.Create(context.Background(), s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		types := mock_interfaces.NewMockIPermitTypeRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, types, nil, entities.DefaultTaxRate)
		types.EXPECT().GetByID(gomock.Any(), "pt-1").Return(entities.PermitType{ID: "pt-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.FeeSchedule{}, interfaces.ErrAlreadyExists)

		_, err := uc.Create(context.Background(), standardSchedule())
		if !errors.Is(err, ErrFeeScheduleAlreadyExists) {
			t.Fatalf("expected ErrFeeScheduleAlreadyExists, got %v", err)
		}
	})
}

func TestFeeScheduleUseCase_Calculate(t *testing.T) {
	t.Run("negative value", func(t *testing.T) {
		uc := NewFeeScheduleUseCase(nil, nil, nil, entities.DefaultTaxRate)
		_, err := uc.Calculate(context.Background(), "fs-1", -1)
		if !errors.Is(err, ErrInvalidProjectValue) {
			t.Fatalf("expected ErrInvalidProjectValue, got %v", err)
		}
	})

	t.Run("value above 12 digits", func(t *testing.T) {
		uc := NewFeeScheduleUseCase(nil, nil, nil, entities.DefaultTaxRate)
		_, err := uc.Calculate(context.Background(), "fs-1", entities.MoneyFromFloat(1e15))
		if !errors.Is(err, ErrInvalidProjectValue) {
			t.Fatalf("expected ErrInvalidProjectValue, got %v", err)
		}
	})

	t.Run("unknown schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, nil, nil, entities.DefaultTaxRate)
		repo.EXPECT().GetByID(gomock.Any(), "fs-x").Return(entities.FeeSchedule{}, nil)

		_, err := uc.Calculate(context.Background(), "fs-x", 100)
		if !errors.Is(err, ErrFeeScheduleNotFound) {
			t.Fatalf("expected ErrFeeScheduleNotFound, got %v", err)
		}
	})

	t.Run("linear fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, nil, nil, entities.DefaultTaxRate)
		repo.EXPECT().GetByID(gomock.Any(), "fs-1").Return(standardSchedule(), nil)

		fee, err := uc.Calculate(context.Background(), "fs-1", 2_000_000)
		if err != nil || fee != 40_000 {
			t.Fatalf("expected 400.00, got %v %v", fee, err)
		}
	})
}

func TestFeeScheduleUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
	uc := NewFeeScheduleUseCase(repo, nil, nil, entities.DefaultTaxRate)
	repo.EXPECT().ListByPermitType(gomock.Any(), "pt-1").Return([]entities.FeeSchedule{standardSchedule()}, nil)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	if got, err := uc.List(context.Background(), " pt-1 "); err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	if _, err := uc.List(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFeeScheduleUseCase_QuoteForApplication(t *testing.T) {
	t.Run("no schedule in effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, nil, apps, entities.DefaultTaxRate)
		uc.now = func() time.Time { return time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC) }

		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(application(entities.StatusSubmitted), nil)
		repo.EXPECT().ListByPermitType(gomock.Any(), "pt-1").Return([]entities.FeeSchedule{standardSchedule()}, nil)

		_, err := uc.QuoteForApplication(context.Background(), "BP-2024-00001")
		if !errors.Is(err, ErrNoEffectiveFeeSchedule) || !errors.Is(err, ErrReference) {
			t.Fatalf("expected ErrNoEffectiveFeeSchedule, got %v", err)
		}
	})

	t.Run("quote includes tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFeeScheduleRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		uc := NewFeeScheduleUseCase(repo, nil, apps, entities.DefaultTaxRate)
		uc.now = func() time.Time { return fixedNow }

		a := application(entities.StatusSubmitted)
		a.EstimatedValue = 2_000_000
		apps.EXPECT().GetByNumber(gomock.Any(), "BP-2024-00001").Return(a, nil)
		repo.EXPECT().ListByPermitType(gomock.Any(), "pt-1").Return([]entities.FeeSchedule{standardSchedule()}, nil)

		q, err := uc.QuoteForApplication(context.Background(), "BP-2024-00001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.BaseAmount != 40_000 || q.TaxAmount != 5_200 || q.TotalAmount != 45_200 || q.FeeScheduleID != "fs-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}
