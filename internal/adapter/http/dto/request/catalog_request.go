package request

import "permit_tracker/internal/domain/entities"

type CreateStatusRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required"`
	IsOpen       bool   `json:"is_open"`
	DisplayOrder int    `json:"display_order"`
	ColorCode    string `json:"color_code"`
}

func (r CreateStatusRequest) ToEntity() entities.Status {
	return entities.Status{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		Category:     entities.StatusCategory(r.Category),
		IsOpen:       r.IsOpen,
		DisplayOrder: r.DisplayOrder,
		ColorCode:    r.ColorCode,
	}
}

type CreatePermitTypeRequest struct {
	Name                        string   `json:"name" binding:"required"`
	Category                    string   `json:"category" binding:"required"`
	Description                 string   `json:"description"`
	StandardProcessingDays      int      `json:"standard_processing_days" binding:"gte=0"`
	RequiresMultipleDepartments bool     `json:"requires_multiple_departments"`
	DepartmentCodes             []string `json:"department_codes"`
	RequiredDocuments           []string `json:"required_documents"`
	IsActive                    *bool    `json:"is_active"`
}

func (r CreatePermitTypeRequest) ToEntity() entities.PermitType {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.PermitType{
		Name:                        r.Name,
		Category:                    entities.PermitCategory(r.Category),
		Description:                 r.Description,
		StandardProcessingDays:      r.StandardProcessingDays,
		RequiresMultipleDepartments: r.RequiresMultipleDepartments,
		DepartmentCodes:             r.DepartmentCodes,
		RequiredDocuments:           r.RequiredDocuments,
		IsActive:                    active,
	}
}

type CreateDepartmentRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
}

func (r CreateDepartmentRequest) ToEntity() entities.Department {
	return entities.Department{
		Code:         r.Code,
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
		Location:     r.Location,
		IsActive:     true,
	}
}

type PropertyRequest struct {
	StreetNumber     string   `json:"street_number" binding:"required"`
	StreetName       string   `json:"street_name" binding:"required"`
	UnitNumber       string   `json:"unit_number"`
	City             string   `json:"city"`
	Province         string   `json:"province"`
	PostalCode       string   `json:"postal_code" binding:"required"`
	LegalDescription string   `json:"legal_description"`
	Ward             string   `json:"ward"`
	Zoning           string   `json:"zoning"`
	LotSize          float64  `json:"lot_size" binding:"gte=0"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

func (r PropertyRequest) ToEntity() entities.Property {
	return entities.Property{
		StreetNumber:     r.StreetNumber,
		StreetName:       r.StreetName,
		UnitNumber:       r.UnitNumber,
		City:             r.City,
		Province:         r.Province,
		PostalCode:       r.PostalCode,
		LegalDescription: r.LegalDescription,
		Ward:             r.Ward,
		Zoning:           r.Zoning,
		LotSize:          r.LotSize,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
	}
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Username       string `json:"username" binding:"required"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	AccountType    string `json:"account_type"`
	AccountStatus  string `json:"account_status"`
	DepartmentCode string `json:"department_code"`
	RoleName       string `json:"role_name"`
}

func (r CreateUserRequest) ToEntity() entities.User {
	return entities.User{
		Email:          r.Email,
		Username:       r.Username,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		AccountType:    entities.AccountType(r.AccountType),
		AccountStatus:  entities.AccountStatus(r.AccountStatus),
		DepartmentCode: r.DepartmentCode,
		RoleName:       r.RoleName,
	}
}

// CreateRoleRequest mirrors entities.Role; permission flags default to false.
type CreateRoleRequest struct {
	Name                  string `json:"name" binding:"required"`
	Description           string `json:"description"`
	PermissionLevel       int    `json:"permission_level" binding:"gte=0"`
	CanSubmitApplication  bool   `json:"can_submit_application"`
	CanReviewApplication  bool   `json:"can_review_application"`
	CanApproveApplication bool   `json:"can_approve_application"`
	CanConfigureSystem    bool   `json:"can_configure_system"`
	CanManageUsers        bool   `json:"can_manage_users"`
	CanViewAll            bool   `json:"can_view_all"`
	CanGenerateReports    bool   `json:"can_generate_reports"`
}

func (r CreateRoleRequest) ToEntity() entities.Role {
	return entities.Role(r)
}
