package entities

import (
	"strings"
	"time"
)

type AccountType string

const (
	AccountTypeAdmin                AccountType = "Admin"
	AccountTypeMunicipalStaff       AccountType = "Municipal Staff"
	AccountTypeExternalProfessional AccountType = "External Professional"
	AccountTypeApplicant            AccountType = "Applicant"
)

func (a AccountType) Valid() bool {
	switch a {
	case AccountTypeAdmin, AccountTypeMunicipalStaff, AccountTypeExternalProfessional, AccountTypeApplicant:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountStatusActive            AccountStatus = "Active"
	AccountStatusInactive          AccountStatus = "Inactive"
	AccountStatusLocked            AccountStatus = "Locked"
	AccountStatusPendingActivation AccountStatus = "Pending Activation"
)

func (a AccountStatus) Valid() bool {
	switch a {
	case AccountStatusActive, AccountStatusInactive, AccountStatusLocked, AccountStatusPendingActivation:
		return true
	}
	return false
}

// User is a person acting on the system.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID                  string        `json:"id"`
	Email               string        `json:"email"`
	Username            string        `json:"username"`
	FirstName           string        `json:"first_name"`
	LastName            string        `json:"last_name"`
	Phone               string        `json:"phone,omitempty"`
	AccountType         AccountType   `json:"account_type"`
	AccountStatus       AccountStatus `json:"account_status"`
	DepartmentCode      string        `json:"department_code,omitempty"`
	RoleName            string        `json:"role_name,omitempty"`
	FailedLoginAttempts int           `json:"failed_login_attempts"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Role groups permission flags.
//
// Storage model (DynamoDB):
//   - PK: name
type Role struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	PermissionLevel       int    `json:"permission_level"`
	CanSubmitApplication  bool   `json:"can_submit_application"`
	CanReviewApplication  bool   `json:"can_review_application"`
	CanApproveApplication bool   `json:"can_approve_application"`
	CanConfigureSystem    bool   `json:"can_configure_system"`
	CanManageUsers        bool   `json:"can_manage_users"`
	CanViewAll            bool   `json:"can_view_all"`
	CanGenerateReports    bool   `json:"can_generate_reports"`
}
