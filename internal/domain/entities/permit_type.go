package entities

import "time"

// PermitCategory classifies permit types.
type PermitCategory string

const (
	PermitCategoryConstruction PermitCategory = "Construction"
	PermitCategoryRightOfWay   PermitCategory = "Right of Way"
)

func (c PermitCategory) Valid() bool {
	return c == PermitCategoryConstruction || c == PermitCategoryRightOfWay
}

// DefaultProcessingDays applies when a permit type does not set its own duration.
const DefaultProcessingDays = 90

// PermitType is the catalog of permit categories an application is filed under.
type PermitType struct {
	ID                          string         `json:"id"`
	Name                        string         `json:"name"`
	Category                    PermitCategory `json:"category"`
	Description                 string         `json:"description"`
	StandardProcessingDays      int            `json:"standard_processing_days"`
	RequiresMultipleDepartments bool           `json:"requires_multiple_departments"`
	DepartmentCodes             []string       `json:"department_codes"`
	RequiredDocuments           []string       `json:"required_documents"`
	IsActive                    bool           `json:"is_active"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
}

func (p PermitType) String() string {
	return p.Name
}
