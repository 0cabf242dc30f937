package routes

import (
	"permit_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	statuses := rg.Group("/statuses")
	{
		statuses.POST("", h.CreateStatus)
		statuses.GET("", h.ListStatuses)
		statuses.POST("/seed", h.SeedStatuses)
		statuses.GET("/:code", h.GetStatus)
	}

	permitTypes := rg.Group("/permit-types")
	{
		permitTypes.POST("", h.CreatePermitType)
		permitTypes.GET("", h.ListPermitTypes)
		permitTypes.GET("/:id", h.GetPermitType)
	}

	departments := rg.Group("/departments")
	{
		departments.POST("", h.CreateDepartment)
		departments.GET("", h.ListDepartments)
		departments.GET("/:code", h.GetDepartment)
	}

	properties := rg.Group("/properties")
	{
		properties.POST("", h.CreateProperty)
		properties.GET("", h.ListProperties)
		properties.GET("/:id", h.GetProperty)
		properties.PATCH("/:id", h.UpdateProperty)
	}

	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
	}

	roles := rg.Group("/roles")
	{
		roles.POST("", h.CreateRole)
		roles.GET("", h.ListRoles)
		roles.GET("/:name", h.GetRole)
	}
}
