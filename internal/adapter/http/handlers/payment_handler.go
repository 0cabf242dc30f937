package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "permit_tracker/internal/adapter/http/dto/request"
	response "permit_tracker/internal/adapter/http/dto/response"
	"permit_tracker/internal/adapter/http/middleware"
	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

// PaymentHandler handles HTTP requests for application fee payments.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

// NewPaymentHandler builds the handler. In mock mode an unreadable gateway payload falls
// back to an empty one instead of failing the request.
func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Create the pending payment for an application
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.CreatePaymentRequest true "Payment method"
// @Success      201 {object} response.PaymentResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /applications/{number}/payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	number := c.Param("number")

	p, err := h.usecase.Create(c.Request.Context(), number, payload.ToInput(), middleware.ActorFrom(c))
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[payment][handler] create failed")
		respondError(c, mapPaymentError(err))
		return
	}
	log.Info().Str("application_number", number).Str("receipt_number", p.ReceiptNumber).Msg("[payment][handler] create success")
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// ProcessPayment godoc
// @Summary      Charge the payment through the gateway
// @Description  Body is a Mercado Pago payment payload, bare or wrapped in {"gateway_payload": ...}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {object} response.PaymentResponse
// @Failure      402 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /applications/{number}/payment/process [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	number := c.Param("number")
	log.Debug().Str("application_number", number).Msg("[payment][handler] process start")

	gatewayPayload, err := readGatewayPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Str("application_number", number).Msg("[payment][handler] invalid payload")
			respondError(c, errInvalidPayload)
			return
		}
		log.Debug().Err(err).Str("application_number", number).Msg("[payment][handler] payload invalid in mock mode; using empty payload")
		gatewayPayload = json.RawMessage("{}")
	}

	p, err := h.usecase.Process(c.Request.Context(), number, gatewayPayload)
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[payment][handler] process failed")
		respondError(c, mapPaymentError(err))
		return
	}
	log.Info().Str("application_number", number).Str("status", string(p.Status)).Msg("[payment][handler] process success")
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RefundPayment godoc
// @Summary      Refund a completed payment (amount 0 refunds everything left)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        number  path string true "Application number"
// @Param        payload body request.RefundPaymentRequest true "Refund"
// @Success      200 {object} response.PaymentResponse
// @Router       /applications/{number}/payment/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	var payload request.RefundPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	number := c.Param("number")

	p, err := h.usecase.Refund(c.Request.Context(), number, payload.AmountMoney(), payload.Reason, middleware.ActorFrom(c))
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[payment][handler] refund failed")
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPayment godoc
// @Summary      Get the payment of an application
// @Tags         payments
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {object} response.PaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /applications/{number}/payment [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentByReceipt godoc
// @Summary      Get a payment by receipt number
// @Tags         payments
// @Produce      json
// @Param        receipt_number path string true "Receipt number (RCPT-YYYY-NNNNN)"
// @Success      200 {object} response.PaymentResponse
// @Router       /receipts/{receipt_number} [get]
func (h *PaymentHandler) GetPaymentByReceipt(c *gin.Context) {
	p, err := h.usecase.GetByReceipt(c.Request.Context(), c.Param("receipt_number"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListTransactions godoc
// @Summary      Gateway transaction log of a payment
// @Tags         payments
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {array} response.TransactionResponse
// @Router       /applications/{number}/payment/transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	list, err := h.usecase.ListTransactions(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(list))
}

func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ProcessPaymentRequest
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err == nil {
		if _, ok := keys["gateway_payload"]; ok {
			_ = json.Unmarshal(raw, &envelope)
			wrapped := strings.TrimSpace(string(envelope.GatewayPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("gateway_payload cannot be empty")
			}
			return envelope.GatewayPayload, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Application already has a payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
