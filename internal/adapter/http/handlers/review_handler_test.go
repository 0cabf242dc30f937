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

func newReviewRouter(uc *mocks.MockIReviewUseCase) *gin.Engine {
	h := NewReviewHandler(uc)
	r := gin.New()
	r.Use(headerActor())
	r.POST("/v1/applications/:number/reviews", h.AssignReview)
	r.GET("/v1/applications/:number/reviews", h.ListReviews)
	r.POST("/v1/applications/:number/reviews/:review_type/start", h.StartReview)
	r.POST("/v1/applications/:number/reviews/:review_type/complete", h.CompleteReview)
	return r
}

func TestReviewHandler_AssignReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		uc.EXPECT().Assign(gomock.Any(), "BP-2024-00001", usecase.AssignReviewInput{ReviewType: entities.ReviewTypeZoning, DepartmentCode: "ZON"}).
			Return(entities.Review{}, usecase.ErrReviewAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews", `{"review_type":"Zoning","department_code":"ZON"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		uc.EXPECT().Assign(gomock.Any(), "BP-2024-00001", gomock.Any()).Return(entities.Review{}, usecase.ErrDepartmentNotFound)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews", `{"review_type":"Zoning","department_code":"XXX"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestReviewHandler_StartReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reviewer defaults to actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		uc.EXPECT().Start(gomock.Any(), "BP-2024-00001", entities.ReviewTypeZoning, "u-1").
			Return(entities.Review{ReviewType: entities.ReviewTypeZoning, ReviewerID: "u-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews/Zoning/start", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit reviewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		uc.EXPECT().Start(gomock.Any(), "BP-2024-00001", entities.ReviewTypeZoning, "rev-9").Return(entities.Review{}, usecase.ErrReviewNotFound)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews/Zoning/start", `{"reviewer_id":"rev-9"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReviewHandler_CompleteReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews/Zoning/complete", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		uc.EXPECT().Complete(gomock.Any(), "BP-2024-00001", entities.ReviewTypeZoning, gomock.Any()).Return(entities.Review{}, usecase.ErrReviewAlreadyCompleted)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews/Zoning/complete", `{"decision":"Approved"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "REVIEW_ALREADY_COMPLETED" {
			t.Fatalf("expected REVIEW_ALREADY_COMPLETED, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReviewUseCase(ctrl)
		r := newReviewRouter(uc)

		in := usecase.CompleteReviewInput{Decision: entities.ReviewDecisionApproved, Conditions: "fence height"}
		uc.EXPECT().Complete(gomock.Any(), "BP-2024-00001", entities.ReviewTypeZoning, in).
			Return(entities.Review{Decision: entities.ReviewDecisionApproved, IsCompleted: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/reviews/Zoning/complete", `{"decision":"Approved","conditions":"fence height"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
