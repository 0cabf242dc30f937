package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

type MercadoPagoGateway struct {
	payments payment.Client
	refunds  refund.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds a gateway backed by the Mercado Pago SDK. In mock mode no
// credentials are needed and every charge or refund is approved locally.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
		now:      time.Now,
	}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.payments == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Debug().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	providerID := fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_payment_id", providerID).Str("provider_status", resp.Status).Msg("[payment][gateway] create success")

	return providerID, resp.Status, b, nil
}

// RefundPayment refunds amount of a captured payment. A non-positive amount refunds it in full.
func (g *MercadoPagoGateway) RefundPayment(ctx context.Context, providerPaymentID string, amount float64) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockRefund(providerPaymentID, amount)
	}
	if g == nil || g.refunds == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}
	log.Debug().Int("provider_payment_id", id).Float64("amount", amount).Msg("[payment][gateway] refund start")

	var resp *refund.Response
	if amount > 0 {
		resp, err = g.refunds.CreatePartialRefund(ctx, id, amount)
	} else {
		resp, err = g.refunds.Create(ctx, id)
	}
	if err != nil {
		log.Warn().Err(err).Int("provider_payment_id", id).Msg("[payment][gateway] sdk refund failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	refundID := fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_refund_id", refundID).Str("provider_status", resp.Status).Msg("[payment][gateway] refund success")

	return refundID, resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Debug().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] mock create start")

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	if _, ok := resp["card"]; !ok {
		resp["card"] = map[string]any{"last_four_digits": "4242"}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Info().Str("provider_payment_id", id).Msg("[payment][gateway] mock create success")
	return id, "approved", b, nil
}

func (g *MercadoPagoGateway) mockRefund(providerPaymentID string, amount float64) (string, string, json.RawMessage, error) {
	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	b, err := json.Marshal(map[string]any{
		"id":           id,
		"payment_id":   providerPaymentID,
		"amount":       amount,
		"status":       "approved",
		"date_created": now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", "", nil, err
	}
	log.Info().Str("provider_payment_id", providerPaymentID).Str("provider_refund_id", id).Msg("[payment][gateway] mock refund success")
	return id, "approved", b, nil
}
