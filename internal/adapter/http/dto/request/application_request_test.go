package request

import (
	"errors"
	"testing"
	"time"

	"permit_tracker/internal/domain/entities"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-04-04 ")
	if err != nil || !d.Equal(time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v %v", d, err)
	}
	ts, err := ParseDate("2024-04-04T10:00:00-03:00")
	if err != nil || ts.Hour() != 13 || ts.Location() != time.UTC {
		t.Fatalf("unexpected timestamp %v %v", ts, err)
	}
	if _, err := ParseDate("04/04/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCreateApplicationRequest_ToInput(t *testing.T) {
	in := CreateApplicationRequest{ProjectDescription: "Deck", EstimatedValue: 15_000.5, Priority: 3, PermitTypeID: "pt-1", PropertyID: "prop-1"}.ToInput()
	if in.EstimatedValue != entities.Money(1_500_050) || in.Priority != entities.PriorityHigh {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestUpdateApplicationRequest_ToInput(t *testing.T) {
	value := 100.25
	priority := 4
	date := "2024-06-30"
	in, err := UpdateApplicationRequest{EstimatedValue: &value, Priority: &priority, TargetCompletionDate: &date}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *in.EstimatedValue != 10_025 || *in.Priority != entities.PriorityUrgent || in.TargetCompletionDate.Day() != 30 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.ProjectDescription != nil || in.PropertyID != nil {
		t.Fatalf("absent fields must stay nil")
	}

	bad := "tomorrow"
	if _, err := (UpdateApplicationRequest{TargetCompletionDate: &bad}).ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCreateFeeScheduleRequest_ToEntity(t *testing.T) {
	minFee, maxFee := 50.0, 10_000.0
	s, err := CreateFeeScheduleRequest{
		PermitTypeID:  "pt-1",
		Name:          "Residential",
		EffectiveDate: "2024-01-01",
		ExpiryDate:    "2024-12-31",
		BaseFee:       100,
		ValuationRate: 0.015,
		MinimumFee:    &minFee,
		MaximumFee:    &maxFee,
	}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseFee != 10_000 || s.ValuationRate != 150 || s.MinimumFee != 5_000 || s.MaximumFee != 1_000_000 {
		t.Fatalf("unexpected schedule: %+v", s)
	}
	if s.ExpiryDate == nil || s.ExpiryDate.Month() != time.December {
		t.Fatalf("unexpected expiry: %v", s.ExpiryDate)
	}
}

func TestCatalogRequests(t *testing.T) {
	pt := CreatePermitTypeRequest{Name: "Deck", Category: "Construction"}.ToEntity()
	if !pt.IsActive || pt.Category != entities.PermitCategoryConstruction {
		t.Fatalf("unexpected permit type: %+v", pt)
	}
	inactive := false
	if (CreatePermitTypeRequest{IsActive: &inactive}).ToEntity().IsActive {
		t.Fatalf("explicit is_active=false must be kept")
	}

	r := CreateRoleRequest{Name: "Reviewer", PermissionLevel: 2, CanReviewApplication: true}.ToEntity()
	if r.Name != "Reviewer" || !r.CanReviewApplication || r.CanManageUsers {
		t.Fatalf("unexpected role: %+v", r)
	}

	if got := (RefundPaymentRequest{Amount: 12.5}).AmountMoney(); got != 1_250 {
		t.Fatalf("unexpected refund amount %d", got)
	}
}
