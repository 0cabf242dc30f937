package interfaces

import (
	"context"

	"permit_tracker/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
// Create returns ErrAlreadyExists when the application already has a payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByApplication(ctx context.Context, applicationNumber string) (entities.Payment, error)
	GetByReceipt(ctx context.Context, receiptNumber string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
}

// ITransactionRepository is the append-only gateway log.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Transaction, error)
}

type IFeeScheduleRepository interface {
	Create(ctx context.Context, s entities.FeeSchedule) (entities.FeeSchedule, error)
	GetByID(ctx context.Context, id string) (entities.FeeSchedule, error)
	List(ctx context.Context) ([]entities.FeeSchedule, error)
	ListByPermitType(ctx context.Context, permitTypeID string) ([]entities.FeeSchedule, error)
}
