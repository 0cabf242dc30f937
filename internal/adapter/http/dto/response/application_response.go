package response

import (
	"time"

	"permit_tracker/internal/domain/entities"
)

type ApplicationResponse struct {
	ApplicationNumber    string     `json:"application_number"`
	ProjectDescription   string     `json:"project_description"`
	EstimatedValue       float64    `json:"estimated_value"`
	CurrentStatus        string     `json:"current_status"`
	Priority             int        `json:"priority"`
	PriorityLabel        string     `json:"priority_label"`
	SubmissionDate       time.Time  `json:"submission_date"`
	TargetCompletionDate *time.Time `json:"target_completion_date,omitempty"`
	ActualCompletionDate *time.Time `json:"actual_completion_date,omitempty"`
	CreatedBy            string     `json:"created_by"`
	PermitTypeID         string     `json:"permit_type_id"`
	PropertyID           string     `json:"property_id"`
	LastModifiedBy       string     `json:"last_modified_by,omitempty"`
	LastModifiedDate     time.Time  `json:"last_modified_date"`
	IsOverdue            bool       `json:"is_overdue"`
	DaysInProcess        int        `json:"days_in_process"`
}

// FromApplication renders a with the derived overdue and elapsed-day fields evaluated at now.
func FromApplication(a entities.Application, now time.Time) ApplicationResponse {
	return ApplicationResponse{
		ApplicationNumber:    a.ApplicationNumber,
		ProjectDescription:   a.ProjectDescription,
		EstimatedValue:       a.EstimatedValue.Float(),
		CurrentStatus:        a.CurrentStatus,
		Priority:             int(a.Priority),
		PriorityLabel:        a.Priority.String(),
		SubmissionDate:       a.SubmissionDate,
		TargetCompletionDate: a.TargetCompletionDate,
		ActualCompletionDate: a.ActualCompletionDate,
		CreatedBy:            a.CreatedBy,
		PermitTypeID:         a.PermitTypeID,
		PropertyID:           a.PropertyID,
		LastModifiedBy:       a.LastModifiedBy,
		LastModifiedDate:     a.LastModifiedDate,
		IsOverdue:            a.IsOverdue(now),
		DaysInProcess:        a.DaysInProcess(now),
	}
}

func FromApplications(list []entities.Application, now time.Time) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApplication(a, now))
	}
	return out
}

type StatusHistoryResponse struct {
	ID           string    `json:"id"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	ChangedBy    string    `json:"changed_by,omitempty"`
	ChangedAt    time.Time `json:"changed_at"`
	ChangeReason string    `json:"change_reason"`
}

func FromStatusHistory(list []entities.StatusHistory) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, StatusHistoryResponse{
			ID:           h.ID,
			FromStatus:   h.FromStatus,
			ToStatus:     h.ToStatus,
			ChangedBy:    h.ChangedBy,
			ChangedAt:    h.ChangedAt,
			ChangeReason: h.ChangeReason,
		})
	}
	return out
}
