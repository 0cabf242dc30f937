package entities

import "strings"

// StatusCategory groups catalog statuses for reporting.
type StatusCategory string

const (
	StatusCategoryInitial    StatusCategory = "Initial"
	StatusCategoryProcessing StatusCategory = "Processing"
	StatusCategoryPending    StatusCategory = "Pending"
	StatusCategoryCompleted  StatusCategory = "Completed"
)

func (c StatusCategory) Valid() bool {
	switch c {
	case StatusCategoryInitial, StatusCategoryProcessing, StatusCategoryPending, StatusCategoryCompleted:
		return true
	}
	return false
}

// Workflow status codes seeded into the catalog.
const (
	StatusDraft                  = "DRAFT"
	StatusSubmitted              = "SUBMITTED"
	StatusUnderReview            = "UNDER_REVIEW"
	StatusAdditionalInfoRequired = "ADDITIONAL_INFO_REQUIRED"
	StatusApproved               = "APPROVED"
	StatusRejected               = "REJECTED"
	StatusWithdrawn              = "WITHDRAWN"
)

// Status is a catalog entry an Application's current status refers to.
//
// Storage model (DynamoDB):
//   - PK: code
type Status struct {
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     StatusCategory `json:"category"`
	IsOpen       bool           `json:"is_open"`
	DisplayOrder int            `json:"display_order"`
	ColorCode    string         `json:"color_code"`
}

func (s Status) String() string {
	return s.Name
}

// NormalizeStatusCode upper-cases and trims a status code.
func NormalizeStatusCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsFinalStatus reports whether the overdue check is suppressed for code.
func IsFinalStatus(code string) bool {
	code = NormalizeStatusCode(code)
	return code == StatusApproved || code == StatusRejected
}

// DefaultStatuses is the catalog seeded on startup.
func DefaultStatuses() []Status {
	return []Status{
		{Code: StatusDraft, Name: "Draft", Category: StatusCategoryInitial, IsOpen: true, DisplayOrder: 1, ColorCode: "#9E9E9E"},
		{Code: StatusSubmitted, Name: "Submitted", Category: StatusCategoryInitial, IsOpen: true, DisplayOrder: 2, ColorCode: "#2196F3"},
		{Code: StatusUnderReview, Name: "Under Review", Category: StatusCategoryProcessing, IsOpen: true, DisplayOrder: 3, ColorCode: "#FF9800"},
		{Code: StatusAdditionalInfoRequired, Name: "Additional Information Required", Category: StatusCategoryPending, IsOpen: true, DisplayOrder: 4, ColorCode: "#FFC107"},
		{Code: StatusApproved, Name: "Approved", Category: StatusCategoryCompleted, IsOpen: false, DisplayOrder: 5, ColorCode: "#4CAF50"},
		{Code: StatusRejected, Name: "Rejected", Category: StatusCategoryCompleted, IsOpen: false, DisplayOrder: 6, ColorCode: "#F44336"},
		{Code: StatusWithdrawn, Name: "Withdrawn", Category: StatusCategoryCompleted, IsOpen: false, DisplayOrder: 7, ColorCode: "#607D8B"},
	}
}
