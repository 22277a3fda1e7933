package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/dto"
	"github.com/worklink/worklink/pkg/auth"
	"github.com/worklink/worklink/pkg/utils"
	"github.com/worklink/worklink/pkg/validate"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet
type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	TopUp(ctx context.Context, userID int, amount float64, reference string) (*domain.Wallet, error)
	GetPayments(ctx context.Context, userID int) ([]domain.PaymentRecord, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func toWalletResponse(wallet *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		Balance:     wallet.Balance,
		TotalPaid:   wallet.TotalPaid,
		TotalEarned: wallet.TotalEarned,
	}
}

// GetWallet godoc
//
//	@Summary		Get current wallet
//	@Description	Retrieve the wallet of the authenticated user; a zero-balance wallet is created on first reference
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletResponse(wallet))
}

// TopUp godoc
//
//	@Summary		Credit the wallet
//	@Description	Credit an externally settled deposit identified by a Luhn-valid payment reference
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top-up payload"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid payment reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if !validate.IsLuhn(req.Reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment reference")
		return
	}

	wallet, err := h.walletService.TopUp(r.Context(), userID, req.Amount, req.Reference)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletResponse(wallet))
}

// GetPayments godoc
//
//	@Summary		Get payment history
//	@Description	List the authenticated user's payment records, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentRecordResponseDTO
//	@Success		204	{object}	utils.Response	"No payment records found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/payments [get]
func (h *WalletHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.walletService.GetPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payment records")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payment records not found")
		return
	}

	response := make([]dto.PaymentRecordResponseDTO, len(records))
	for i, rec := range records {
		response[i] = dto.PaymentRecordResponseDTO{
			ID:              rec.ID,
			TransactionType: rec.TransactionType,
			AmountOriginal:  rec.AmountOriginal,
			FeePercentage:   rec.FeePercentage,
			FeeAmount:       rec.FeeAmount,
			PaymentStatus:   rec.PaymentStatus,
			RelatedJobID:    rec.RelatedJobID,
			Notes:           rec.Notes,
			CreatedAt:       rec.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
