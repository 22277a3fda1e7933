package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/dto"
	"github.com/worklink/worklink/pkg/auth"
	"github.com/worklink/worklink/pkg/utils"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.WalletResponseDTO
	}{
		{
			name: "Wallet returned",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{
					ID: 1, UserID: 1, Balance: 150.0, TotalPaid: 50.0, TotalEarned: 0.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.WalletResponseDTO{Balance: 150.0, TotalPaid: 50.0, TotalEarned: 0.0},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodGet, "/api/wallet", "")
			w := httptest.NewRecorder()
			handler.GetWallet(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}

func TestTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit credited",
			body: `{"amount":50,"reference":"2377225624"}`,
			prepareMock: func() {
				service.EXPECT().TopUp(gomock.Any(), 1, 50.0, "2377225624").Return(&domain.Wallet{
					ID: 1, UserID: 1, Balance: 60.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Non-positive amount",
			body:          `{"amount":0,"reference":"2377225624"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be positive",
		},
		{
			name:          "Invalid payment reference",
			body:          `{"amount":50,"reference":"1234567890"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid payment reference",
		},
		{
			name: "Internal server error",
			body: `{"amount":50,"reference":"2377225624"}`,
			prepareMock: func() {
				service.EXPECT().TopUp(gomock.Any(), 1, 50.0, "2377225624").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodPost, "/api/wallet/topup", tt.body)
			w := httptest.NewRecorder()
			handler.TopUp(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	jobID := 7

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Records returned",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), 1).Return([]domain.PaymentRecord{
					{ID: 1, UserID: 1, TransactionType: domain.TransactionTypeDeposit, AmountOriginal: 50.0, PaymentStatus: domain.PaymentStatusCompleted},
					{ID: 2, UserID: 1, TransactionType: domain.TransactionTypeApprovalFee, AmountOriginal: 1000.0, FeePercentage: 10.0, FeeAmount: 100.0, PaymentStatus: domain.PaymentStatusPending, RelatedJobID: &jobID},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No records",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetPayments(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest(http.MethodGet, "/api/wallet/payments", "")
			w := httptest.NewRecorder()
			handler.GetPayments(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.PaymentRecordResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, jobID, *resp[1].RelatedJobID)
			}
		})
	}
}
