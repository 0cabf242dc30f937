package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/infrastructure/metrics"
	"permit_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentMethod  = categorized(ErrValidation, "invalid payment method")
	ErrInvalidGatewayPayload = categorized(ErrValidation, "invalid payment gateway payload")
	ErrInvalidRefundAmount   = categorized(ErrValidation, "invalid refund amount")
	ErrInvalidReceiptNumber  = categorized(ErrValidation, "invalid receipt number")
	ErrPaymentNotFound       = categorized(ErrNotFound, "payment not found")
	ErrPaymentAlreadyExists  = categorized(ErrConflict, "application already has a payment")
	ErrPaymentNotPending     = categorized(ErrConflict, "payment is not awaiting processing")
	ErrPaymentNotRefundable  = categorized(ErrConflict, "payment cannot be refunded")

	ErrPaymentDeclined                = errors.New("payment declined by gateway")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayUnavailable      = errors.New("payment gateway unavailable")
)

type CreatePaymentInput struct {
	Method        entities.PaymentMethod
	FeeScheduleID string
	PaidBy        string
}

// PaymentOptions configures payment behavior.
//
// StrictPayload requires payment_method_id and a payer in gateway payloads; it is disabled
// when the gateway runs in mock mode.
type PaymentOptions struct {
	TaxRate       entities.Rate
	PayerEmail    string
	StrictPayload bool
}

// IPaymentUseCase encapsulates fee payment: creation with a receipt number, processing through
// the gateway, refunds and the transaction log.
type IPaymentUseCase interface {
	Create(ctx context.Context, applicationNumber string, in CreatePaymentInput, actor string) (entities.Payment, error)
	Process(ctx context.Context, applicationNumber string, gatewayPayload json.RawMessage) (entities.Payment, error)
	Refund(ctx context.Context, applicationNumber string, amount entities.Money, reason, actor string) (entities.Payment, error)
	Get(ctx context.Context, applicationNumber string) (entities.Payment, error)
	GetByReceipt(ctx context.Context, receiptNumber string) (entities.Payment, error)
	ListTransactions(ctx context.Context, applicationNumber string) ([]entities.Transaction, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	transactions interfaces.ITransactionRepository
	applications interfaces.IApplicationRepository
	fees         interfaces.IFeeScheduleRepository
	sequences    interfaces.ISequenceRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	now          func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	transactions interfaces.ITransactionRepository,
	applications interfaces.IApplicationRepository,
	fees interfaces.IFeeScheduleRepository,
	sequences interfaces.ISequenceRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:         repo,
		transactions: transactions,
		applications: applications,
		fees:         fees,
		sequences:    sequences,
		gateway:      gateway,
		opts:         opts,
		now:          time.Now,
	}
}

// Create prices the application under its fee schedule and records a pending payment.
func (u *PaymentUseCase) Create(ctx context.Context, applicationNumber string, in CreatePaymentInput, actor string) (entities.Payment, error) {
	applicationNumber = strings.TrimSpace(applicationNumber)
	if applicationNumber == "" {
		return entities.Payment{}, ErrInvalidApplicationNumber
	}
	if !in.Method.Valid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	a, err := u.applications.GetByNumber(ctx, applicationNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if a.ApplicationNumber == "" {
		return entities.Payment{}, ErrApplicationNotFound
	}

	existing, err := u.repo.GetByApplication(ctx, applicationNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ApplicationNumber != "" {
		return entities.Payment{}, ErrPaymentAlreadyExists
	}

	now := u.now().UTC()
	schedule, err := u.resolveSchedule(ctx, a, strings.TrimSpace(in.FeeScheduleID), now)
	if err != nil {
		return entities.Payment{}, err
	}
	quote := quoteFee(a, schedule, u.opts.TaxRate)

	seq, err := u.sequences.Next(ctx, entities.SequenceScopeReceipt, now.Year())
	if err != nil {
		log.Error().Err(err).Str("application_number", applicationNumber).Msg("[payment][usecase] sequence allocation failed")
		return entities.Payment{}, err
	}

	paidBy := strings.TrimSpace(in.PaidBy)
	if paidBy == "" {
		paidBy = strings.TrimSpace(actor)
	}

	p := entities.Payment{
		ApplicationNumber: applicationNumber,
		ReceiptNumber:     entities.FormatIdentifier(entities.ReceiptNumberPrefix, now.Year(), seq),
		PaymentDate:       now,
		BaseAmount:        quote.BaseAmount,
		TaxAmount:         quote.TaxAmount,
		TotalAmount:       quote.TotalAmount,
		PaymentMethod:     in.Method,
		Status:            entities.PaymentStatusPending,
		PaidBy:            paidBy,
		FeeScheduleID:     schedule.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("application_number", applicationNumber).Msg("[payment][usecase] create failed")
		return entities.Payment{}, mapRepositoryError(err, ErrPaymentAlreadyExists)
	}
	log.Info().
		Str("application_number", applicationNumber).
		Str("receipt_number", created.ReceiptNumber).
		Str("total", created.TotalAmount.String()).
		Msg("[payment][usecase] create success")
	return created, nil
}

func (u *PaymentUseCase) resolveSchedule(ctx context.Context, a entities.Application, scheduleID string, now time.Time) (entities.FeeSchedule, error) {
	if scheduleID == "" {
		return effectiveSchedule(ctx, u.fees, a.PermitTypeID, now)
	}
	s, err := u.fees.GetByID(ctx, scheduleID)
	if err != nil {
		return entities.FeeSchedule{}, err
	}
	if s.ID == "" || s.PermitTypeID != a.PermitTypeID {
		return entities.FeeSchedule{}, ErrFeeScheduleReference
	}
	return s, nil
}

// Process charges the payment total through the gateway. Amount and reference always come from
// the stored payment, never from the caller's payload.
func (u *PaymentUseCase) Process(ctx context.Context, applicationNumber string, gatewayPayload json.RawMessage) (entities.Payment, error) {
	log.Debug().Str("application_number", applicationNumber).Int("payload_len", len(gatewayPayload)).Msg("[payment][usecase] process start")
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.Get(ctx, applicationNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPending && p.Status != entities.PaymentStatusFailed {
		return entities.Payment{}, ErrPaymentNotPending
	}

	payload, err := u.buildGatewayPayload(p, gatewayPayload)
	if err != nil {
		log.Warn().Err(err).Str("application_number", p.ApplicationNumber).Msg("[payment][usecase] invalid gateway payload")
		return entities.Payment{}, err
	}

	now := u.now().UTC()
	providerID, providerStatus, providerResp, gwErr := u.gateway.CreatePayment(ctx, payload)
	if gwErr != nil {
		log.Warn().Err(gwErr).Str("application_number", p.ApplicationNumber).Msg("[payment][usecase] payment gateway failed")
		u.recordTransaction(ctx, p, entities.TransactionTypeCapture, "", p.TotalAmount, entities.TransactionStatusFailed, "error", gwErr.Error(), now)
		p.Status = entities.PaymentStatusFailed
		p.UpdatedAt = now
		if _, err := u.repo.Update(ctx, p); err != nil {
			log.Error().Err(err).Str("application_number", p.ApplicationNumber).Msg("[payment][usecase] failed marking payment as failed")
		}
		metrics.RecordPayment(string(entities.TransactionTypeCapture), string(entities.TransactionStatusFailed), 0)
		return entities.Payment{}, classifyGatewayError(gwErr)
	}

	txType, txStatus, paymentStatus := outcomeFromProviderStatus(providerStatus)
	u.recordTransaction(ctx, p, txType, providerID, p.TotalAmount, txStatus, providerStatus, statusDetail(providerResp), now)
	metrics.RecordPayment(string(txType), string(txStatus), p.TotalAmount.Float())

	p.Status = paymentStatus
	p.GatewayTransactionID = providerID
	p.CardLastFour = cardLastFour(providerResp)
	p.GatewayPayloadRaw = providerResp
	p.PaymentDate = now
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("application_number", p.ApplicationNumber).Str("provider_payment_id", providerID).Msg("[payment][usecase] payment update failed")
		return entities.Payment{}, err
	}
	log.Info().
		Str("application_number", p.ApplicationNumber).
		Str("receipt_number", p.ReceiptNumber).
		Str("provider_payment_id", providerID).
		Str("provider_status", providerStatus).
		Msg("[payment][usecase] process done")

	if paymentStatus == entities.PaymentStatusFailed {
		return updated, ErrPaymentDeclined
	}
	return updated, nil
}

func (u *PaymentUseCase) buildGatewayPayload(p entities.Payment, raw json.RawMessage) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		raw = json.RawMessage("{}")
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidGatewayPayload
	}
	var reqMap map[string]any
	if err := json.Unmarshal(raw, &reqMap); err != nil || reqMap == nil {
		return nil, ErrInvalidGatewayPayload
	}

	if u.opts.StrictPayload && !hasNonEmptyString(reqMap, "payment_method_id") {
		return nil, ErrInvalidGatewayPayload
	}
	ensurePayerDefaults(reqMap, u.opts.PayerEmail)
	if u.opts.StrictPayload && !hasPayer(reqMap) {
		return nil, ErrInvalidGatewayPayload
	}

	reqMap["transaction_amount"] = p.TotalAmount.Float()
	reqMap["external_reference"] = p.ReceiptNumber
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Building permit %s", p.ApplicationNumber)
	}
	return json.Marshal(reqMap)
}

// Refund returns amount to the payer. A zero amount refunds everything still refundable.
func (u *PaymentUseCase) Refund(ctx context.Context, applicationNumber string, amount entities.Money, reason, actor string) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}
	if amount < 0 {
		return entities.Payment{}, ErrInvalidRefundAmount
	}

	p, err := u.Get(ctx, applicationNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	refundable := p.Refundable()
	if refundable <= 0 || p.GatewayTransactionID == "" {
		return entities.Payment{}, ErrPaymentNotRefundable
	}
	if amount == 0 {
		amount = refundable
	}
	if amount > refundable {
		return entities.Payment{}, ErrInvalidRefundAmount
	}

	// A full refund of an untouched payment goes through the gateway's total refund.
	gatewayAmount := amount.Float()
	if amount == p.TotalAmount && p.RefundAmount == 0 {
		gatewayAmount = 0
	}

	now := u.now().UTC()
	refundID, providerStatus, providerResp, gwErr := u.gateway.RefundPayment(ctx, p.GatewayTransactionID, gatewayAmount)
	if gwErr != nil {
		log.Warn().Err(gwErr).Str("application_number", p.ApplicationNumber).Msg("[payment][usecase] refund gateway failed")
		u.recordTransaction(ctx, p, entities.TransactionTypeRefund, "", amount, entities.TransactionStatusFailed, "error", gwErr.Error(), now)
		metrics.RecordPayment(string(entities.TransactionTypeRefund), string(entities.TransactionStatusFailed), 0)
		return entities.Payment{}, classifyGatewayError(gwErr)
	}

	u.recordTransaction(ctx, p, entities.TransactionTypeRefund, refundID, amount, entities.TransactionStatusSuccess, providerStatus, statusDetail(providerResp), now)
	metrics.RecordPayment(string(entities.TransactionTypeRefund), string(entities.TransactionStatusSuccess), amount.Float())

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "Refund requested"
		if actor = strings.TrimSpace(actor); actor != "" {
			reason += " by " + actor
		}
	}
	p.RefundAmount += amount
	p.RefundDate = &now
	p.RefundReason = reason
	if p.RefundAmount >= p.TotalAmount {
		p.Status = entities.PaymentStatusRefunded
	}
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Info().
		Str("application_number", p.ApplicationNumber).
		Str("receipt_number", p.ReceiptNumber).
		Str("refund_amount", amount.String()).
		Msg("[payment][usecase] refund success")
	return updated, nil
}

func (u *PaymentUseCase) Get(ctx context.Context, applicationNumber string) (entities.Payment, error) {
	applicationNumber = strings.TrimSpace(applicationNumber)
	if applicationNumber == "" {
		return entities.Payment{}, ErrInvalidApplicationNumber
	}
	p, err := u.repo.GetByApplication(ctx, applicationNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ApplicationNumber == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) GetByReceipt(ctx context.Context, receiptNumber string) (entities.Payment, error) {
	receiptNumber = strings.ToUpper(strings.TrimSpace(receiptNumber))
	if prefix, _, _, ok := entities.ParseIdentifier(receiptNumber); !ok || prefix != entities.ReceiptNumberPrefix {
		return entities.Payment{}, ErrInvalidReceiptNumber
	}
	p, err := u.repo.GetByReceipt(ctx, receiptNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ApplicationNumber == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListTransactions(ctx context.Context, applicationNumber string) ([]entities.Transaction, error) {
	p, err := u.Get(ctx, applicationNumber)
	if err != nil {
		return nil, err
	}
	return u.transactions.ListByApplication(ctx, p.ApplicationNumber)
}

func (u *PaymentUseCase) recordTransaction(ctx context.Context, p entities.Payment, kind entities.TransactionType, gatewayID string, amount entities.Money, status entities.TransactionStatus, code, message string, at time.Time) {
	if len(message) > 500 {
		message = message[:500]
	}
	t := entities.Transaction{
		ID:                   uuid.NewString(),
		ApplicationNumber:    p.ApplicationNumber,
		ReceiptNumber:        p.ReceiptNumber,
		Type:                 kind,
		GatewayTransactionID: gatewayID,
		Amount:               amount,
		Status:               status,
		ResponseCode:         code,
		ResponseMessage:      message,
		CreatedAt:            at,
	}
	if _, err := u.transactions.Create(ctx, t); err != nil {
		log.Error().Err(err).Str("application_number", p.ApplicationNumber).Str("transaction_type", string(kind)).Msg("[payment][usecase] transaction log write failed")
	}
}

// outcomeFromProviderStatus maps a Mercado Pago payment status onto the local model.
func outcomeFromProviderStatus(status string) (entities.TransactionType, entities.TransactionStatus, entities.PaymentStatus) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.TransactionTypeCapture, entities.TransactionStatusSuccess, entities.PaymentStatusCompleted
	case "rejected", "cancelled", "charged_back":
		return entities.TransactionTypeCapture, entities.TransactionStatusFailed, entities.PaymentStatusFailed
	}
	return entities.TransactionTypeAuthorization, entities.TransactionStatusSuccess, entities.PaymentStatusPending
}

func cardLastFour(providerResp json.RawMessage) string {
	var resp struct {
		Card struct {
			LastFourDigits string `json:"last_four_digits"`
		} `json:"card"`
	}
	if err := json.Unmarshal(providerResp, &resp); err != nil {
		return ""
	}
	return resp.Card.LastFourDigits
}

func statusDetail(providerResp json.RawMessage) string {
	var resp struct {
		StatusDetail string `json:"status_detail"`
	}
	_ = json.Unmarshal(providerResp, &resp)
	return resp.StatusDetail
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return fmt.Errorf("%w: %v", ErrPaymentGatewayUnavailable, err)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, fallbackEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && fallbackEmail != "" {
		payer["email"] = fallbackEmail
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
