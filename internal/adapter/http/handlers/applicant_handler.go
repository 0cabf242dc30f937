package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "permit_tracker/internal/adapter/http/dto/request"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

type ApplicantHandler struct {
	usecase usecase.IApplicantUseCase
}

func NewApplicantHandler(uc usecase.IApplicantUseCase) *ApplicantHandler {
	return &ApplicantHandler{usecase: uc}
}

// AddApplicant godoc
// @Summary      Add an applicant to an application
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.AddApplicantRequest true "Applicant"
// @Success      201 {object} entities.Applicant
// @Router       /applications/{number}/applicants [post]
func (h *ApplicantHandler) AddApplicant(c *gin.Context) {
	var payload request.AddApplicantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Add(c.Request.Context(), c.Param("number"), payload.ToEntity())
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListApplicants godoc
// @Summary      List applicants of an application
// @Tags         applicants
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {array} entities.Applicant
// @Router       /applications/{number}/applicants [get]
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapApplicationError(err))
		return
	}
	if list == nil {
		list = []entities.Applicant{}
	}
	c.JSON(http.StatusOK, list)
}
