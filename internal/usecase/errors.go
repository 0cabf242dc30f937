package usecase

import (
	"errors"
	"fmt"

	"permit_tracker/internal/usecase/interfaces"
)

// Error categories. Specific errors below wrap one of them so handlers can match either.
var (
	ErrValidation  = errors.New("validation error")
	ErrReference   = errors.New("reference not found")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrConcurrency = errors.New("concurrent modification")
)

func categorized(category error, msg string) error {
	return fmt.Errorf("%w: %s", category, msg)
}

var (
	ErrInvalidApplicationNumber  = categorized(ErrValidation, "invalid application_number")
	ErrInvalidProjectDescription = categorized(ErrValidation, "project description is required")
	ErrInvalidEstimatedValue     = categorized(ErrValidation, "estimated value must be between 0 and 9999999999.99")
	ErrInvalidPriority           = categorized(ErrValidation, "priority must be between 1 and 4")
	ErrInvalidStatusCode         = categorized(ErrValidation, "invalid status code")
	ErrInvalidTransition         = categorized(ErrValidation, "status transition not allowed")
	ErrMissingPermitType         = categorized(ErrValidation, "permit_type_id is required")
	ErrMissingProperty           = categorized(ErrValidation, "property_id is required")

	ErrApplicationNotFound = categorized(ErrNotFound, "application not found")
	ErrStatusNotFound      = categorized(ErrReference, "status not found")
	ErrPermitTypeNotFound  = categorized(ErrReference, "permit type not found")
	ErrPropertyNotFound    = categorized(ErrReference, "property not found")

	ErrApplicationHasPayment     = categorized(ErrConflict, "application has a payment")
	ErrApplicationAlreadyExists  = categorized(ErrConcurrency, "application number already allocated")
	ErrStatusChangedConcurrently = categorized(ErrConcurrency, "status changed concurrently")
)

// mapRepositoryError translates repository conditional-write failures into use case categories.
func mapRepositoryError(err, alreadyExists error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrAlreadyExists) && alreadyExists != nil:
		return alreadyExists
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return fmt.Errorf("%w: %v", ErrConcurrency, err)
	}
	return err
}
