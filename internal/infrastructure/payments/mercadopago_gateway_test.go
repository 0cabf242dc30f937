package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return fixed }}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":452,"external_reference":"RCPT-2024-00001"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["external_reference"] != "RCPT-2024-00001" {
		t.Fatalf("expected request fields echoed, got %v", resp)
	}
	card, _ := resp["card"].(map[string]any)
	if card["last_four_digits"] != "4242" {
		t.Fatalf("expected mock card, got %v", resp["card"])
	}
}

func TestMercadoPagoGateway_MockRefund(t *testing.T) {
	g := &MercadoPagoGateway{mockMode: true, now: time.Now}

	id, status, raw, err := g.RefundPayment(context.Background(), "123", 10.5)
	if err != nil || id == "" || status != "approved" || len(raw) == 0 {
		t.Fatalf("unexpected refund result id=%q status=%q err=%v", id, status, err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, _, _, err := (&MercadoPagoGateway{}).RefundPayment(context.Background(), "1", 0); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
