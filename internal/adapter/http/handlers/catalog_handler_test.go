package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"permit_tracker/internal/adapter/http/handlers/mocks"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

func newCatalogRouter(uc *mocks.MockICatalogUseCase) *gin.Engine {
	h := NewCatalogHandler(uc)
	r := gin.New()
	r.POST("/v1/statuses", h.CreateStatus)
	r.POST("/v1/statuses/seed", h.SeedStatuses)
	r.GET("/v1/statuses/:code", h.GetStatus)
	r.POST("/v1/permit-types", h.CreatePermitType)
	r.GET("/v1/departments", h.ListDepartments)
	r.PATCH("/v1/properties/:id", h.UpdateProperty)
	r.POST("/v1/users", h.CreateUser)
	r.GET("/v1/roles", h.ListRoles)
	return r
}

func TestCatalogHandler_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(entities.Status{}, usecase.ErrCatalogItemExists)

		w := doJSON(r, http.MethodPost, "/v1/statuses", `{"code":"DRAFT","name":"Draft","category":"Initial"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "NOPE").Return(entities.Status{}, usecase.ErrCatalogItemNotFound)

		w := doJSON(r, http.MethodGet, "/v1/statuses/NOPE", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().SeedStatuses(gomock.Any()).Return(3, nil)

		w := doJSON(r, http.MethodPost, "/v1/statuses/seed", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]int
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["created"] != 3 {
			t.Fatalf("expected created 3, got %v", body)
		}
	})
}

func TestCatalogHandler_CreatePermitType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().CreatePermitType(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, p entities.PermitType) (entities.PermitType, error) {
			if !p.IsActive {
				t.Fatalf("expected permit type active by default")
			}
			p.ID = "pt-1"
			return p, nil
		})

	w := doJSON(r, http.MethodPost, "/v1/permit-types", `{"name":"Deck","category":"Residential","standard_processing_days":10}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCatalogHandler_ListDepartments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().ListDepartments(gomock.Any()).Return([]entities.Department{{Code: "ZON", Name: "Zoning"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/departments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["display_name"] == "" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCatalogHandler_UpdateProperty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().UpdateProperty(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, p entities.Property) (entities.Property, error) {
			if p.ID != "prop-1" {
				t.Fatalf("expected id from path, got %q", p.ID)
			}
			return p, nil
		})

	w := doJSON(r, http.MethodPatch, "/v1/properties/prop-1", `{"street_number":"10","street_name":"Main St","postal_code":"K1A 0B1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_CreateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/users", `{"email":"nope","username":"jd"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(uc)

		uc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrEmailAlreadyUsed)

		w := doJSON(r, http.MethodPost, "/v1/users", `{"email":"jd@example.com","username":"jd"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "EMAIL_ALREADY_USED" {
			t.Fatalf("expected EMAIL_ALREADY_USED, got %s", code)
		}
	})
}

func TestCatalogHandler_ListRolesEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(uc)

	uc.EXPECT().ListRoles(gomock.Any()).Return(nil, nil)

	w := doJSON(r, http.MethodGet, "/v1/roles", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
	}
}
