package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"permit_tracker/internal/adapter/http/handlers/mocks"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

func TestApplicantHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIApplicantUseCase) *gin.Engine {
		h := NewApplicantHandler(uc)
		r := gin.New()
		r.POST("/v1/applications/:number/applicants", h.AddApplicant)
		r.GET("/v1/applications/:number/applicants", h.ListApplicants)
		return r
	}

	t.Run("invalid applicant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIApplicantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Add(gomock.Any(), "BP-2024-00001", gomock.Any()).Return(entities.Applicant{}, usecase.ErrInvalidApplicant)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/applicants", `{"first_name":"Jane"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("application not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIApplicantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Add(gomock.Any(), "BP-2024-00009", gomock.Any()).Return(entities.Applicant{}, usecase.ErrApplicationNotFound)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00009/applicants", `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIApplicantUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().List(gomock.Any(), "BP-2024-00001").Return([]entities.Applicant{{ID: "ap-1", Role: entities.DefaultApplicantRole}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/applications/BP-2024-00001/applicants", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
