package request

import (
	"errors"
	"strings"
	"time"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type CreateApplicationRequest struct {
	ProjectDescription string  `json:"project_description" binding:"required"`
	EstimatedValue     float64 `json:"estimated_value" binding:"gte=0,lte=9999999999.99"`
	Priority           int     `json:"priority" binding:"omitempty,min=1,max=4"`
	PermitTypeID       string  `json:"permit_type_id" binding:"required"`
	PropertyID         string  `json:"property_id" binding:"required"`
}

func (r CreateApplicationRequest) ToInput() usecase.CreateApplicationInput {
	return usecase.CreateApplicationInput{
		ProjectDescription: r.ProjectDescription,
		EstimatedValue:     entities.MoneyFromFloat(r.EstimatedValue),
		Priority:           entities.Priority(r.Priority),
		PermitTypeID:       r.PermitTypeID,
		PropertyID:         r.PropertyID,
	}
}

// UpdateApplicationRequest carries a partial update; absent fields are left untouched.
type UpdateApplicationRequest struct {
	ProjectDescription   *string  `json:"project_description"`
	EstimatedValue       *float64 `json:"estimated_value" binding:"omitempty,gte=0,lte=9999999999.99"`
	Priority             *int     `json:"priority"`
	TargetCompletionDate *string  `json:"target_completion_date"`
	PropertyID           *string  `json:"property_id"`
}

func (r UpdateApplicationRequest) ToInput() (usecase.UpdateApplicationInput, error) {
	in := usecase.UpdateApplicationInput{
		ProjectDescription: r.ProjectDescription,
		PropertyID:         r.PropertyID,
	}
	if r.EstimatedValue != nil {
		v := entities.MoneyFromFloat(*r.EstimatedValue)
		in.EstimatedValue = &v
	}
	if r.Priority != nil {
		p := entities.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.TargetCompletionDate != nil {
		d, err := ParseDate(*r.TargetCompletionDate)
		if err != nil {
			return usecase.UpdateApplicationInput{}, err
		}
		in.TargetCompletionDate = &d
	}
	return in, nil
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
