package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "permit_tracker/internal/adapter/http/dto/request"
	response "permit_tracker/internal/adapter/http/dto/response"
	"permit_tracker/internal/adapter/http/middleware"
	"permit_tracker/internal/usecase"
	"permit_tracker/internal/usecase/interfaces"
	"permit_tracker/pkg"
)

// ApplicationHandler handles HTTP requests for permit applications and their status workflow.
type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
	now     func() time.Time
}

func NewApplicationHandler(uc usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc, now: time.Now}
}

// CreateApplication godoc
// @Summary      Create a permit application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateApplicationRequest true "Application"
// @Success      201 {object} response.ApplicationResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var payload request.CreateApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), middleware.ActorFrom(c))
	if err != nil {
		log.Warn().Err(err).Msg("[application][handler] create failed")
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(a, h.now()))
}

// ListApplications godoc
// @Summary      List permit applications
// @Tags         applications
// @Produce      json
// @Param        status         query string false "Status code"
// @Param        created_by     query string false "Creator id"
// @Param        permit_type_id query string false "Permit type id"
// @Success      200 {array} response.ApplicationResponse
// @Router       /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	filter := interfaces.ApplicationFilter{
		Status:       c.Query("status"),
		CreatedBy:    c.Query("created_by"),
		PermitTypeID: c.Query("permit_type_id"),
	}
	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(list, h.now()))
}

// GetApplication godoc
// @Summary      Get a permit application
// @Tags         applications
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {object} response.ApplicationResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /applications/{number} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	a, err := h.usecase.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(a, h.now()))
}

// UpdateApplication godoc
// @Summary      Update application fields
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.UpdateApplicationRequest true "Fields to change"
// @Success      200 {object} response.ApplicationResponse
// @Router       /applications/{number} [patch]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var payload request.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	a, err := h.usecase.Update(c.Request.Context(), c.Param("number"), in, middleware.ActorFrom(c))
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(a, h.now()))
}

// DeleteApplication godoc
// @Summary      Delete an application and everything attached to it
// @Tags         applications
// @Param        number path string true "Application number"
// @Success      204
// @Failure      409 {object} pkg.HTTPError
// @Router       /applications/{number} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("number")); err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// TransitionStatus godoc
// @Summary      Move an application to a new status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.TransitionRequest true "Target status"
// @Success      200 {object} response.ApplicationResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /applications/{number}/status [post]
func (h *ApplicationHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	number := c.Param("number")

	a, err := h.usecase.Transition(c.Request.Context(), number, payload.Status, middleware.ActorFrom(c), payload.Reason)
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Str("to", payload.Status).Msg("[application][handler] transition failed")
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(a, h.now()))
}

// GetStatusHistory godoc
// @Summary      Status history, oldest first
// @Tags         applications
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {array} response.StatusHistoryResponse
// @Router       /applications/{number}/history [get]
func (h *ApplicationHandler) GetStatusHistory(c *gin.Context) {
	list, err := h.usecase.History(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(list))
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPriority):
		return pkg.NewDomainErrorSimple("INVALID_PRIORITY", "Priority must be between 1 and 4", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationHasPayment):
		return pkg.NewDomainErrorSimple("APPLICATION_HAS_PAYMENT", "Application has a payment and cannot be deleted", http.StatusConflict)
	default:
		return mapUseCaseError(err)
	}
}
