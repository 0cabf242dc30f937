package entities

import (
	"fmt"
	"time"
)

// Department is a municipal department that performs reviews.
//
// Storage model (DynamoDB):
//   - PK: code
type Department struct {
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName renders "Name (CODE)".
func (d Department) DisplayName() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Code)
}
