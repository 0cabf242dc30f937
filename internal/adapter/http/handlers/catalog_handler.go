package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "permit_tracker/internal/adapter/http/dto/request"
	response "permit_tracker/internal/adapter/http/dto/response"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

// CatalogHandler serves the reference data: statuses, permit types, departments, properties,
// users and roles.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateStatus godoc
// @Summary      Create a workflow status
// @Description  Adds a status to the catalog. The transition graph is fixed at startup, so a new code
// @Description  only takes part in transitions if it is already part of that graph; other codes are
// @Description  labels only and POST /applications/{number}/status rejects them.
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateStatusRequest true "Status"
// @Success  201 {object} entities.Status
// @Router   /statuses [post]
func (h *CatalogHandler) CreateStatus(c *gin.Context) {
	var payload request.CreateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.CreateStatus(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary  List workflow statuses ordered by display order
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Status
// @Router   /statuses [get]
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	list, err := h.usecase.ListStatuses(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	if list == nil {
		list = []entities.Status{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary  Get a workflow status
// @Tags     catalog
// @Produce  json
// @Param    code path string true "Status code"
// @Success  200 {object} entities.Status
// @Router   /statuses/{code} [get]
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	s, err := h.usecase.GetStatus(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// SeedStatuses installs the default workflow statuses that are missing.
// @Summary  Seed default workflow statuses
// @Tags     catalog
// @Produce  json
// @Success  200 {object} map[string]int
// @Router   /statuses/seed [post]
func (h *CatalogHandler) SeedStatuses(c *gin.Context) {
	created, err := h.usecase.SeedStatuses(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[catalog][handler] seed statuses failed")
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// @Summary  Create a permit type
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.CreatePermitTypeRequest true "Permit type"
// @Success  201 {object} entities.PermitType
// @Router   /permit-types [post]
func (h *CatalogHandler) CreatePermitType(c *gin.Context) {
	var payload request.CreatePermitTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.CreatePermitType(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary  List permit types
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.PermitType
// @Router   /permit-types [get]
func (h *CatalogHandler) ListPermitTypes(c *gin.Context) {
	list, err := h.usecase.ListPermitTypes(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	if list == nil {
		list = []entities.PermitType{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary  Get a permit type
// @Tags     catalog
// @Produce  json
// @Param    id path string true "Permit type ID"
// @Success  200 {object} entities.PermitType
// @Router   /permit-types/{id} [get]
func (h *CatalogHandler) GetPermitType(c *gin.Context) {
	p, err := h.usecase.GetPermitType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary  Create a department
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateDepartmentRequest true "Department"
// @Success  201 {object} response.DepartmentResponse
// @Router   /departments [post]
func (h *CatalogHandler) CreateDepartment(c *gin.Context) {
	var payload request.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	d, err := h.usecase.CreateDepartment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.DepartmentResponse{Department: d, DisplayName: d.DisplayName()})
}

// @Summary  List departments
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.DepartmentResponse
// @Router   /departments [get]
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	list, err := h.usecase.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepartments(list))
}

// @Summary  Get a department
// @Tags     catalog
// @Produce  json
// @Param    code path string true "Department code"
// @Success  200 {object} response.DepartmentResponse
// @Router   /departments/{code} [get]
func (h *CatalogHandler) GetDepartment(c *gin.Context) {
	d, err := h.usecase.GetDepartment(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.DepartmentResponse{Department: d, DisplayName: d.DisplayName()})
}

// @Summary  Register a property
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.PropertyRequest true "Property"
// @Success  201 {object} response.PropertyResponse
// @Router   /properties [post]
func (h *CatalogHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.CreateProperty(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProperty(p))
}

// @Summary  Update a property
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id      path string true "Property ID"
// @Param    payload body request.PropertyRequest true "Property"
// @Success  200 {object} response.PropertyResponse
// @Router   /properties/{id} [patch]
func (h *CatalogHandler) UpdateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, err := h.usecase.UpdateProperty(c.Request.Context(), p)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(updated))
}

// @Summary  List properties
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.PropertyResponse
// @Router   /properties [get]
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	list, err := h.usecase.ListProperties(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProperties(list))
}

// @Summary  Get a property
// @Tags     catalog
// @Produce  json
// @Param    id path string true "Property ID"
// @Success  200 {object} response.PropertyResponse
// @Router   /properties/{id} [get]
func (h *CatalogHandler) GetProperty(c *gin.Context) {
	p, err := h.usecase.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(p))
}

// @Summary  Create a user
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateUserRequest true "User"
// @Success  201 {object} response.UserResponse
// @Router   /users [post]
func (h *CatalogHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	u, err := h.usecase.CreateUser(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.UserResponse{User: u, FullName: u.FullName()})
}

// @Summary  List users
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	list, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(list))
}

// @Summary  Get a user
// @Tags     catalog
// @Produce  json
// @Param    id path string true "User ID"
// @Success  200 {object} response.UserResponse
// @Router   /users/{id} [get]
func (h *CatalogHandler) GetUser(c *gin.Context) {
	u, err := h.usecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.UserResponse{User: u, FullName: u.FullName()})
}

// @Summary  Create a role
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateRoleRequest true "Role"
// @Success  201 {object} entities.Role
// @Router   /roles [post]
func (h *CatalogHandler) CreateRole(c *gin.Context) {
	var payload request.CreateRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	r, err := h.usecase.CreateRole(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary  List roles
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Role
// @Router   /roles [get]
func (h *CatalogHandler) ListRoles(c *gin.Context) {
	list, err := h.usecase.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	if list == nil {
		list = []entities.Role{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary  Get a role
// @Tags     catalog
// @Produce  json
// @Param    name path string true "Role name"
// @Success  200 {object} entities.Role
// @Router   /roles/{name} [get]
func (h *CatalogHandler) GetRole(c *gin.Context) {
	r, err := h.usecase.GetRole(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, r)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemExists):
		return pkg.NewDomainErrorSimple("ALREADY_EXISTS", "Catalog item already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailAlreadyUsed):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_USED", "Email already in use", http.StatusConflict)
	default:
		return mapUseCaseError(err)
	}
}
