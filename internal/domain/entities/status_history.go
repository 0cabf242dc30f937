package entities

import (
	"fmt"
	"time"
)

// StatusHistory is an append-only audit row written for every status transition.
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - SK: changed_at#id (creation order)
type StatusHistory struct {
	ID                string    `json:"id"`
	ApplicationNumber string    `json:"application_number"`
	FromStatus        string    `json:"from_status"`
	ToStatus          string    `json:"to_status"`
	ChangedBy         string    `json:"changed_by,omitempty"`
	ChangedAt         time.Time `json:"changed_at"`
	ChangeReason      string    `json:"change_reason"`
}

// DefaultChangeReason is the reason recorded when the caller gives none.
func DefaultChangeReason(from, to string) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}

func (h StatusHistory) String() string {
	return fmt.Sprintf("%s: %s → %s", h.ApplicationNumber, h.FromStatus, h.ToStatus)
}
