package entities

import (
	"strings"
	"time"
)

// Applicant is a party attached to an application (owner, contractor, ...).
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - SK: id
type Applicant struct {
	ID                string    `json:"id"`
	ApplicationNumber string    `json:"application_number"`
	UserID            string    `json:"user_id,omitempty"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Organization      string    `json:"organization,omitempty"`
	Role              string    `json:"role"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// DefaultApplicantRole is used when no role is given.
const DefaultApplicantRole = "Owner"

func (a Applicant) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
