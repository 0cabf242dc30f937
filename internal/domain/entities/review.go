package entities

import "time"

// ReviewType identifies the technical discipline of a review.
type ReviewType string

const (
	ReviewTypeBuildingCode ReviewType = "Building Code"
	ReviewTypeZoning       ReviewType = "Zoning"
	ReviewTypeFireSafety   ReviewType = "Fire Safety"
	ReviewTypeEngineering  ReviewType = "Engineering"
	ReviewTypeHeritage     ReviewType = "Heritage"
)

func (t ReviewType) Valid() bool {
	switch t {
	case ReviewTypeBuildingCode, ReviewTypeZoning, ReviewTypeFireSafety, ReviewTypeEngineering, ReviewTypeHeritage:
		return true
	}
	return false
}

// ReviewDecision is the outcome recorded by the reviewer.
type ReviewDecision string

const (
	ReviewDecisionApproved               ReviewDecision = "Approved"
	ReviewDecisionApprovedWithConditions ReviewDecision = "Approved with Conditions"
	ReviewDecisionRequiresAdditionalInfo ReviewDecision = "Requires Additional Information"
	ReviewDecisionRejected               ReviewDecision = "Rejected"
)

func (d ReviewDecision) Valid() bool {
	switch d {
	case ReviewDecisionApproved, ReviewDecisionApprovedWithConditions, ReviewDecisionRequiresAdditionalInfo, ReviewDecisionRejected:
		return true
	}
	return false
}

// Review is a department's technical review of an application. One per (application, review type).
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - SK: review_type
type Review struct {
	ID                string         `json:"id"`
	ApplicationNumber string         `json:"application_number"`
	ReviewType        ReviewType     `json:"review_type"`
	DepartmentCode    string         `json:"department_code"`
	ReviewerID        string         `json:"reviewer_id,omitempty"`
	AssignedDate      time.Time      `json:"assigned_date"`
	StartDate         *time.Time     `json:"start_date,omitempty"`
	CompletionDate    *time.Time     `json:"completion_date,omitempty"`
	Decision          ReviewDecision `json:"decision,omitempty"`
	FindingsSummary   string         `json:"findings_summary,omitempty"`
	Conditions        string         `json:"conditions,omitempty"`
	ReviewerNotes     string         `json:"reviewer_notes,omitempty"`
	ReviewDuration    int            `json:"review_duration"`
	IsCompleted       bool           `json:"is_completed"`
}

// DurationMinutes is the elapsed time between start and completion, in whole minutes.
func (r Review) DurationMinutes() int {
	if r.StartDate == nil || r.CompletionDate == nil {
		return 0
	}
	d := r.CompletionDate.Sub(*r.StartDate)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

func (r Review) String() string {
	return string(r.ReviewType) + " - " + r.ApplicationNumber
}
