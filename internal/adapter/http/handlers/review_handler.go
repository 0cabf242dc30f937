package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "permit_tracker/internal/adapter/http/dto/request"
	"permit_tracker/internal/adapter/http/middleware"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// AssignReview godoc
// @Summary      Assign a department review to an application
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.AssignReviewRequest true "Review assignment"
// @Success      201 {object} entities.Review
// @Failure      409 {object} pkg.HTTPError
// @Router       /applications/{number}/reviews [post]
func (h *ReviewHandler) AssignReview(c *gin.Context) {
	var payload request.AssignReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	number := c.Param("number")

	r, err := h.usecase.Assign(c.Request.Context(), number, payload.ToInput())
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[review][handler] assign failed")
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListReviews godoc
// @Summary      List reviews of an application
// @Tags         reviews
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {array} entities.Review
// @Router       /applications/{number}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	if list == nil {
		list = []entities.Review{}
	}
	c.JSON(http.StatusOK, list)
}

// StartReview godoc
// @Summary      Mark a review as in progress
// @Description  reviewer_id defaults to the calling user.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        number      path string true "Application number"
// @Param        review_type path string true "Review type"
// @Success      200 {object} entities.Review
// @Router       /applications/{number}/reviews/{review_type}/start [post]
func (h *ReviewHandler) StartReview(c *gin.Context) {
	var payload request.StartReviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	reviewerID := payload.ReviewerID
	if reviewerID == "" {
		reviewerID = middleware.ActorFrom(c)
	}

	r, err := h.usecase.Start(c.Request.Context(), c.Param("number"), entities.ReviewType(c.Param("review_type")), reviewerID)
	if err != nil {
		respondError(c, mapReviewError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

// CompleteReview godoc
// @Summary      Record the review decision
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        number      path string true "Application number"
// @Param        review_type path string true "Review type"
// @Param        payload     body request.CompleteReviewRequest true "Decision"
// @Success      200 {object} entities.Review
// @Router       /applications/{number}/reviews/{review_type}/complete [post]
func (h *ReviewHandler) CompleteReview(c *gin.Context) {
	var payload request.CompleteReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	number := c.Param("number")

	r, err := h.usecase.Complete(c.Request.Context(), number, entities.ReviewType(c.Param("review_type")), payload.ToInput())
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[review][handler] complete failed")
		respondError(c, mapReviewError(err))
		return
	}
	log.Info().Str("application_number", number).Str("decision", string(r.Decision)).Msg("[review][handler] complete success")
	c.JSON(http.StatusOK, r)
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_EXISTS", "Review already assigned for this type", http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewAlreadyCompleted):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_COMPLETED", "Review already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
