package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayHelpers(t *testing.T) {
	p := Property{StreetNumber: "100", StreetName: "Queen St W", UnitNumber: "12", City: "Toronto", Province: "ON", PostalCode: "M5H 2N2"}
	assert.Equal(t, "12-100 Queen St W, Toronto, ON M5H 2N2", p.FullAddress())

	d := Department{Code: "BLD", Name: "Building"}
	assert.Equal(t, "Building (BLD)", d.DisplayName())

	u := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())

	h := StatusHistory{ApplicationNumber: "BP-2024-00001", FromStatus: StatusDraft, ToStatus: StatusSubmitted}
	assert.Equal(t, "BP-2024-00001: DRAFT → SUBMITTED", h.String())
	assert.Equal(t, "Status changed from DRAFT to SUBMITTED", DefaultChangeReason(StatusDraft, StatusSubmitted))
}

func TestReview_DurationMinutes(t *testing.T) {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(95*time.Minute + 30*time.Second)
	r := Review{StartDate: &start, CompletionDate: &end}
	assert.Equal(t, 95, r.DurationMinutes())
	assert.Equal(t, 0, Review{}.DurationMinutes())
}

func TestPayment_Refundable(t *testing.T) {
	p := Payment{Status: PaymentStatusCompleted, TotalAmount: 45200, RefundAmount: 200}
	assert.Equal(t, Money(45000), p.Refundable())
	p.Status = PaymentStatusPending
	assert.Equal(t, Money(0), p.Refundable())
}
