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

type catalogMocks struct {
	statuses    *mock_interfaces.MockIStatusRepository
	permitTypes *mock_interfaces.MockIPermitTypeRepository
	departments *mock_interfaces.MockIDepartmentRepository
	properties  *mock_interfaces.MockIPropertyRepository
	users       *mock_interfaces.MockIUserRepository
	roles       *mock_interfaces.MockIRoleRepository
}

func newCatalogUseCaseForTest(ctrl *gomock.Controller) (*CatalogUseCase, catalogMocks) {
	m := catalogMocks{
		statuses:    mock_interfaces.NewMockIStatusRepository(ctrl),
		permitTypes: mock_interfaces.NewMockIPermitTypeRepository(ctrl),
		departments: mock_interfaces.NewMockIDepartmentRepository(ctrl),
		properties:  mock_interfaces.NewMockIPropertyRepository(ctrl),
		users:       mock_interfaces.NewMockIUserRepository(ctrl),
		roles:       mock_interfaces.NewMockIRoleRepository(ctrl),
	}
	uc := NewCatalogUseCase(CatalogRepositories{
		Statuses:    m.statuses,
		PermitTypes: m.permitTypes,
		Departments: m.departments,
		Properties:  m.properties,
		Users:       m.users,
		Roles:       m.roles,
	})
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestCatalogUseCase_Statuses(t *testing.T) {
	t.Run("invalid color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newCatalogUseCaseForTest(ctrl)
		_, err := uc.CreateStatus(context.Background(), entities.Status{Code: "on_hold", Name: "On hold", Category: entities.StatusCategoryPending, ColorCode: "red"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("normalizes code and defaults color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.statuses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Status) (entities.Status, error) { return s, nil },
		)

		got, err := uc.CreateStatus(context.Background(), entities.Status{Code: " on_hold ", Name: "On hold", Category: entities.StatusCategoryPending})
		if err != nil || got.Code != "ON_HOLD" || got.ColorCode != "#6c757d" {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.statuses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Status{}, interfaces.ErrAlreadyExists)

		_, err := uc.CreateStatus(context.Background(), entities.Status{Code: "DRAFT", Name: "Draft", Category: entities.StatusCategoryInitial})
		if !errors.Is(err, ErrCatalogItemExists) {
			t.Fatalf("expected ErrCatalogItemExists, got %v", err)
		}
	})

	t.Run("seed skips existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.statuses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Status) (entities.Status, error) {
				if s.Code == entities.StatusDraft || s.Code == entities.StatusSubmitted {
					return entities.Status{}, interfaces.ErrAlreadyExists
				}
				return s, nil
			},
		).Times(len(entities.DefaultStatuses()))

		added, err := uc.SeedStatuses(context.Background())
		if err != nil || added != len(entities.DefaultStatuses())-2 {
			t.Fatalf("unexpected result %d %v", added, err)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.statuses.EXPECT().GetByCode(gomock.Any(), "ON_HOLD").Return(entities.Status{}, nil)

		_, err := uc.GetStatus(context.Background(), "on_hold")
		if !errors.Is(err, ErrCatalogItemNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_PermitTypes(t *testing.T) {
	t.Run("unknown department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.departments.EXPECT().GetByCode(gomock.Any(), "BLD").Return(entities.Department{Code: "BLD"}, nil)
		m.departments.EXPECT().GetByCode(gomock.Any(), "XXX").Return(entities.Department{}, nil)

		_, err := uc.CreatePermitType(context.Background(), entities.PermitType{Name: "Deck", Category: entities.PermitCategoryConstruction, DepartmentCodes: []string{"bld", "xxx"}})
		if !errors.Is(err, ErrDepartmentNotFound) {
			t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.departments.EXPECT().GetByCode(gomock.Any(), "BLD").Return(entities.Department{Code: "BLD"}, nil)
		m.departments.EXPECT().GetByCode(gomock.Any(), "ZON").Return(entities.Department{Code: "ZON"}, nil)
		m.permitTypes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PermitType) (entities.PermitType, error) { return p, nil },
		)

		got, err := uc.CreatePermitType(context.Background(), entities.PermitType{Name: " Deck ", Category: entities.PermitCategoryConstruction, DepartmentCodes: []string{"bld", " zon"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.StandardProcessingDays != entities.DefaultProcessingDays || !got.RequiresMultipleDepartments {
			t.Fatalf("unexpected permit type: %+v", got)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newCatalogUseCaseForTest(ctrl)
		_, err := uc.CreatePermitType(context.Background(), entities.PermitType{Name: "Deck", Category: "Boat"})
		if !errors.Is(err, ErrInvalidPermitType) {
			t.Fatalf("expected ErrInvalidPermitType, got %v", err)
		}
	})
}

func TestCatalogUseCase_Departments(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, m := newCatalogUseCaseForTest(ctrl)

	if _, err := uc.CreateDepartment(context.Background(), entities.Department{Code: "bld", Name: "Building", ContactEmail: "nope"}); !errors.Is(err, ErrInvalidDepartment) {
		t.Fatalf("expected ErrInvalidDepartment, got %v", err)
	}

	m.departments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.Department) (entities.Department, error) { return d, nil },
	)
	got, err := uc.CreateDepartment(context.Background(), entities.Department{Code: " bld ", Name: "Building", ContactEmail: "bld@city.ca"})
	if err != nil || got.Code != "BLD" || !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected result %+v %v", got, err)
	}
}

func TestCatalogUseCase_Properties(t *testing.T) {
	lat := 91.0
	invalid := []struct {
		name string
		p    entities.Property
	}{
		{"missing street", entities.Property{StreetNumber: "10", PostalCode: "M5V 1A1"}},
		{"missing postal code", entities.Property{StreetNumber: "10", StreetName: "King St"}},
		{"negative lot", entities.Property{StreetNumber: "10", StreetName: "King St", PostalCode: "M5V", LotSize: -1}},
		{"latitude out of range", entities.Property{StreetNumber: "10", StreetName: "King St", PostalCode: "M5V", Latitude: &lat}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, _ := newCatalogUseCaseForTest(ctrl)
			if _, err := uc.CreateProperty(context.Background(), tc.p); !errors.Is(err, ErrInvalidProperty) {
				t.Fatalf("expected ErrInvalidProperty, got %v", err)
			}
		})
	}

	t.Run("defaults city and province", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.properties.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) { return p, nil },
		)

		got, err := uc.CreateProperty(context.Background(), entities.Property{StreetNumber: "10", StreetName: "King St", PostalCode: "m5v 1a1"})
		if err != nil || got.City != entities.DefaultCity || got.Province != entities.DefaultProvince || got.PostalCode != "M5V 1A1" {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})

	t.Run("update keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		created := fixedNow.Add(-time.Hour)
		m.properties.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Property{ID: "prop-1", CreatedAt: created}, nil)
		m.properties.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) { return p, nil },
		)

		got, err := uc.UpdateProperty(context.Background(), entities.Property{ID: "prop-1", StreetNumber: "12", StreetName: "King St", PostalCode: "M5V"})
		if err != nil || !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})
}

func TestCatalogUseCase_Users(t *testing.T) {
	valid := entities.User{Username: "ana", Email: " Ana@City.ca ", FirstName: "Ana", LastName: "Lee"}

	t.Run("email in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@city.ca").Return(entities.User{ID: "u-0"}, nil)

		if _, err := uc.CreateUser(context.Background(), valid); !errors.Is(err, ErrEmailAlreadyUsed) {
			t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@city.ca").Return(entities.User{}, nil)
		m.roles.EXPECT().GetByName(gomock.Any(), "Inspector").Return(entities.Role{}, nil)

		u := valid
		u.RoleName = "Inspector"
		if _, err := uc.CreateUser(context.Background(), u); !errors.Is(err, ErrRoleNotFound) {
			t.Fatalf("expected ErrRoleNotFound, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newCatalogUseCaseForTest(ctrl)
		m.users.EXPECT().GetByEmail(gomock.Any(), "ana@city.ca").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		got, err := uc.CreateUser(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AccountType != entities.AccountTypeApplicant || got.AccountStatus != entities.AccountStatusPendingActivation || got.Email != "ana@city.ca" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})

	t.Run("invalid account type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newCatalogUseCaseForTest(ctrl)
		u := valid
		u.AccountType = "Robot"
		if _, err := uc.CreateUser(context.Background(), u); !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})
}

func TestCatalogUseCase_Roles(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, m := newCatalogUseCaseForTest(ctrl)

	if _, err := uc.CreateRole(context.Background(), entities.Role{Name: " "}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	m.roles.EXPECT().GetByName(gomock.Any(), "Reviewer").Return(entities.Role{}, nil)
	if _, err := uc.GetRole(context.Background(), " Reviewer "); !errors.Is(err, ErrCatalogItemNotFound) {
		t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
	}
}
