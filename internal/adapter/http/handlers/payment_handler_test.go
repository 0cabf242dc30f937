package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"permit_tracker/internal/adapter/http/handlers/mocks"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(uc *mocks.MockIPaymentUseCase, mockMode bool) *gin.Engine {
	h := NewPaymentHandler(uc, mockMode)
	r := gin.New()
	r.Use(headerActor())
	r.POST("/v1/applications/:number/payment", h.CreatePayment)
	r.GET("/v1/applications/:number/payment", h.GetPayment)
	r.POST("/v1/applications/:number/payment/process", h.ProcessPayment)
	r.POST("/v1/applications/:number/payment/refund", h.RefundPayment)
	r.GET("/v1/applications/:number/payment/transactions", h.ListTransactions)
	r.GET("/v1/receipts/:receipt_number", h.GetPaymentByReceipt)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().Create(gomock.Any(), "BP-2024-00001", usecase.CreatePaymentInput{Method: entities.PaymentMethodCreditCard}, "u-1").
			Return(entities.Payment{}, usecase.ErrPaymentAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment", `{"payment_method":"Credit Card"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "PAYMENT_ALREADY_EXISTS" {
			t.Fatalf("expected PAYMENT_ALREADY_EXISTS, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().Create(gomock.Any(), "BP-2024-00001", gomock.Any(), "u-1").Return(entities.Payment{
			ApplicationNumber: "BP-2024-00001",
			ReceiptNumber:     "RCPT-2024-00003",
			TotalAmount:       45200,
			Status:            entities.PaymentStatusPending,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment", `{"payment_method":"Credit Card"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_amount"] != 452.0 || body["receipt_number"] != "RCPT-2024-00003" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications/BP-2024-00001/payment/process", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json falls back in mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, true)

		uc.EXPECT().Process(gomock.Any(), "BP-2024-00001", json.RawMessage("{}")).
			Return(entities.Payment{ApplicationNumber: "BP-2024-00001", Status: entities.PaymentStatusCompleted}, nil)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/process", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().Process(gomock.Any(), "BP-2024-00001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Payment, error) {
				var m map[string]interface{}
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", string(payload))
				}
				return entities.Payment{Status: entities.PaymentStatusCompleted}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/process", `{"gateway_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/process", `{"gateway_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errorCases := []struct {
		err  error
		code int
		body string
	}{
		{err: usecase.ErrPaymentDeclined, code: http.StatusPaymentRequired, body: "PAYMENT_DECLINED"},
		{err: usecase.ErrPaymentGatewayBadRequest, code: http.StatusBadRequest, body: "INVALID_REQUEST"},
		{err: usecase.ErrPaymentGatewayCustomerNotFound, code: http.StatusBadRequest, body: "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{err: usecase.ErrPaymentGatewayInvalidUsers, code: http.StatusBadRequest, body: "PAYMENT_PROVIDER_INVALID_USERS"},
		{err: usecase.ErrPaymentGatewayUnauthorized, code: http.StatusUnauthorized, body: "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{err: fmt.Errorf("%w: timeout", usecase.ErrPaymentGatewayUnavailable), code: http.StatusBadGateway, body: "PAYMENT_PROVIDER_UNAVAILABLE"},
		{err: usecase.ErrPaymentGatewayNotConfigured, code: http.StatusServiceUnavailable, body: "PAYMENT_PROVIDER_NOT_CONFIGURED"},
		{err: usecase.ErrPaymentNotPending, code: http.StatusConflict, body: "CONFLICT"},
		{err: usecase.ErrPaymentNotFound, code: http.StatusNotFound, body: "PAYMENT_NOT_FOUND"},
	}
	for _, tc := range errorCases {
		t.Run(tc.body, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			r := newPaymentRouter(uc, false)

			uc.EXPECT().Process(gomock.Any(), "BP-2024-00001", gomock.Any()).Return(entities.Payment{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/process", `{"payment_method_id":"pix"}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if code := errorCode(t, w); code != tc.body {
				t.Fatalf("expected %s, got %s", tc.body, code)
			}
		})
	}
}

func TestPaymentHandler_RefundPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/refund", `{"amount":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().Refund(gomock.Any(), "BP-2024-00001", entities.Money(10000), "withdrawn", "u-1").
			Return(entities.Payment{Status: entities.PaymentStatusCompleted, RefundAmount: 10000}, nil)

		w := doJSON(r, http.MethodPost, "/v1/applications/BP-2024-00001/payment/refund", `{"amount":100,"reason":"withdrawn"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Lookups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().GetByReceipt(gomock.Any(), "RCPT-2024-00003").Return(entities.Payment{ReceiptNumber: "RCPT-2024-00003"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/receipts/RCPT-2024-00003", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().GetByReceipt(gomock.Any(), "nope").Return(entities.Payment{}, usecase.ErrInvalidReceiptNumber)

		w := doJSON(r, http.MethodGet, "/v1/receipts/nope", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().ListTransactions(gomock.Any(), "BP-2024-00001").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/applications/BP-2024-00001/payment/transactions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Equal(bytes.TrimSpace(w.Body.Bytes()), []byte("[]")) {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}
