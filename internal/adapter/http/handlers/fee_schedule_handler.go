package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "permit_tracker/internal/adapter/http/dto/request"
	response "permit_tracker/internal/adapter/http/dto/response"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

type FeeScheduleHandler struct {
	usecase usecase.IFeeScheduleUseCase
}

func NewFeeScheduleHandler(uc usecase.IFeeScheduleUseCase) *FeeScheduleHandler {
	return &FeeScheduleHandler{usecase: uc}
}

func (h *FeeScheduleHandler) CreateFeeSchedule(c *gin.Context) {
	var payload request.CreateFeeScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	s, err := payload.ToEntity()
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), s)
	if err != nil {
		respondError(c, mapFeeScheduleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFeeSchedule(created))
}

func (h *FeeScheduleHandler) ListFeeSchedules(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("permit_type_id"))
	if err != nil {
		respondError(c, mapFeeScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFeeSchedules(list))
}

func (h *FeeScheduleHandler) GetFeeSchedule(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapFeeScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFeeSchedule(s))
}

// CalculateFee returns the fee for ?value= (decimal project value) under one schedule.
func (h *FeeScheduleHandler) CalculateFee(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || !(value >= 0 && value <= entities.MaxEstimatedValue.Float()) {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter value must be a number between 0 and 9999999999.99", http.StatusBadRequest))
		return
	}
	id := c.Param("id")
	projectValue := entities.MoneyFromFloat(value)

	fee, err := h.usecase.Calculate(c.Request.Context(), id, projectValue)
	if err != nil {
		respondError(c, mapFeeScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FeeCalculationResponse{
		FeeScheduleID: id,
		ProjectValue:  projectValue.Float(),
		Fee:           fee.Float(),
	})
}

// GetFeeQuote prices an application under the schedule in effect for its permit type.
func (h *FeeScheduleHandler) GetFeeQuote(c *gin.Context) {
	q, err := h.usecase.QuoteForApplication(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapFeeScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFeeQuote(q))
}

func mapFeeScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFeeScheduleNotFound):
		return pkg.NewDomainErrorSimple("FEE_SCHEDULE_NOT_FOUND", "Fee schedule not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoEffectiveFeeSchedule):
		return pkg.NewDomainErrorSimple("NO_EFFECTIVE_FEE_SCHEDULE", "No fee schedule in effect for this permit type", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
