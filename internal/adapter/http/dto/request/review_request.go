package request

import (
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

type AssignReviewRequest struct {
	ReviewType     string `json:"review_type" binding:"required"`
	DepartmentCode string `json:"department_code" binding:"required"`
	ReviewerID     string `json:"reviewer_id"`
}

func (r AssignReviewRequest) ToInput() usecase.AssignReviewInput {
	return usecase.AssignReviewInput{
		ReviewType:     entities.ReviewType(r.ReviewType),
		DepartmentCode: r.DepartmentCode,
		ReviewerID:     r.ReviewerID,
	}
}

type StartReviewRequest struct {
	ReviewerID string `json:"reviewer_id"`
}

type CompleteReviewRequest struct {
	Decision        string `json:"decision" binding:"required"`
	FindingsSummary string `json:"findings_summary"`
	Conditions      string `json:"conditions"`
	ReviewerNotes   string `json:"reviewer_notes"`
}

func (r CompleteReviewRequest) ToInput() usecase.CompleteReviewInput {
	return usecase.CompleteReviewInput{
		Decision:        entities.ReviewDecision(r.Decision),
		FindingsSummary: r.FindingsSummary,
		Conditions:      r.Conditions,
		ReviewerNotes:   r.ReviewerNotes,
	}
}

type AddApplicantRequest struct {
	UserID       string `json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

func (r AddApplicantRequest) ToEntity() entities.Applicant {
	return entities.Applicant{
		UserID:       r.UserID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Organization: r.Organization,
		Role:         r.Role,
	}
}
