package entities

import "time"

// Priority is the ordinal urgency of an application.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityNormal Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	}
	return "Unknown"
}

// Application is a building-permit application, the aggregate root for documents,
// status history, reviews, applicants and the payment.
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - GSI1 (created_by-index): created_by
//   - GSI2 (current_status-index): current_status
//
// ApplicationNumber and SubmissionDate are assigned once at creation and never change.
type Application struct {
	ApplicationNumber    string     `json:"application_number"`
	ProjectDescription   string     `json:"project_description"`
	EstimatedValue       Money      `json:"estimated_value"`
	CurrentStatus        string     `json:"current_status"`
	Priority             Priority   `json:"priority"`
	SubmissionDate       time.Time  `json:"submission_date"`
	TargetCompletionDate *time.Time `json:"target_completion_date,omitempty"`
	ActualCompletionDate *time.Time `json:"actual_completion_date,omitempty"`
	CreatedBy            string     `json:"created_by"`
	PermitTypeID         string     `json:"permit_type_id"`
	PropertyID           string     `json:"property_id"`
	LastModifiedBy       string     `json:"last_modified_by,omitempty"`
	LastModifiedDate     time.Time  `json:"last_modified_date"`
}

// ComputeTargetCompletionDate returns submission + processingDays, as a calendar date.
func ComputeTargetCompletionDate(submission time.Time, processingDays int) time.Time {
	return DateOf(submission.AddDate(0, 0, processingDays))
}

// IsOverdue reports whether now is past the target date. Applications in a final
// status (APPROVED, REJECTED) are never overdue.
func (a Application) IsOverdue(now time.Time) bool {
	if a.TargetCompletionDate == nil || IsFinalStatus(a.CurrentStatus) {
		return false
	}
	return DateOf(now).After(DateOf(*a.TargetCompletionDate))
}

// DaysInProcess counts days from submission to the actual completion date, or to now.
func (a Application) DaysInProcess(now time.Time) int {
	end := DateOf(now)
	if a.ActualCompletionDate != nil {
		end = DateOf(*a.ActualCompletionDate)
	}
	return int(end.Sub(DateOf(a.SubmissionDate)).Hours() / 24)
}

func (a Application) String() string {
	return a.ApplicationNumber + " - " + a.CurrentStatus
}

// DateOf truncates t to midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
