package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/worklink/worklink/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice
type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	CreateForUser(ctx context.Context, userID int) (*domain.Wallet, error)
	Update(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, error)
	Deduct(ctx context.Context, userID int, amount float64) (*domain.Wallet, error)
}
type PaymentRepo interface {
	Create(ctx context.Context, rec *domain.PaymentRecord) (*domain.PaymentRecord, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PaymentRecord, error)
}
type ApplicationRepo interface {
	UpdateStatus(ctx context.Context, appID int, status string) error
	SetContactRevealed(ctx context.Context, appID int) error
}
type JobRepo interface {
	GetByID(ctx context.Context, jobID int) (*domain.Job, error)
}

// FeePercentage is the approval fee charged to the job owner, in percent of
// the job budget.
const FeePercentage = 10.0

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrWalletRefused = errors.New("wallet refused deduction")
)

// InsufficientFundsError reports how much the owner's wallet must hold for
// the fee to settle.
type InsufficientFundsError struct {
	Required float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: %.2f required", e.Required)
}

type Service struct {
	walletRepo  WalletRepo
	paymentRepo PaymentRepo
	appRepo     ApplicationRepo
	jobRepo     JobRepo
}

func New(walletRepo WalletRepo, paymentRepo PaymentRepo, appRepo ApplicationRepo, jobRepo JobRepo) *Service {
	return &Service{
		walletRepo:  walletRepo,
		paymentRepo: paymentRepo,
		appRepo:     appRepo,
		jobRepo:     jobRepo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Fee returns the approval fee for a budget, rounded to cents.
func Fee(budget float64) float64 {
	return round2(budget * FeePercentage / 100)
}

// SettleApprovalFee charges the job owner the approval fee after an
// application was tentatively accepted. Every failure between the job lookup
// and the deduction reverts the application to pending before returning; once
// the fee is deducted the settlement is done. The payment record is
// deliberately left at status pending on success, capture happens outside
// this service.
func (s *Service) SettleApprovalFee(ctx context.Context, jobID, applicationID int) (*domain.PaymentRecord, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to load job for settlement", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	fee := Fee(job.Budget)

	wallet, err := s.getOrCreateWallet(ctx, job.OwnerID)
	if err != nil {
		s.revertApplication(ctx, applicationID)
		return nil, err
	}
	if wallet.Balance < fee {
		s.revertApplication(ctx, applicationID)
		return nil, &InsufficientFundsError{Required: fee}
	}

	record := &domain.PaymentRecord{
		UserID:          job.OwnerID,
		TransactionType: domain.TransactionTypeApprovalFee,
		AmountOriginal:  job.Budget,
		FeePercentage:   FeePercentage,
		FeeAmount:       fee,
		PaymentStatus:   domain.PaymentStatusPending,
		RelatedJobID:    &job.ID,
		Notes:           fmt.Sprintf("approval fee for job %d", job.ID),
	}
	record, err = s.paymentRepo.Create(ctx, record)
	if err != nil {
		zap.L().Error("failed to create payment record", zap.Error(err))
		s.revertApplication(ctx, applicationID)
		return nil, err
	}

	updated, err := s.walletRepo.Deduct(ctx, job.OwnerID, fee)
	if err != nil {
		zap.L().Error("failed to deduct fee", zap.Error(err))
		s.revertApplication(ctx, applicationID)
		return nil, err
	}
	if updated == nil {
		// balance dropped below the fee between check and deduct
		s.revertApplication(ctx, applicationID)
		return nil, ErrWalletRefused
	}

	// The fee has settled at this point. Failing the accept now would strand
	// a charged wallet, so a reveal failure is logged, not propagated.
	if err := s.appRepo.SetContactRevealed(ctx, applicationID); err != nil {
		zap.L().Error("failed to reveal client contact after settlement",
			zap.Int("application_id", applicationID), zap.Error(err))
	}

	zap.L().Info("approval fee settled",
		zap.Int("job_id", job.ID),
		zap.Int("application_id", applicationID),
		zap.Float64("fee", fee),
	)
	return record, nil
}

func (s *Service) revertApplication(ctx context.Context, applicationID int) {
	if err := s.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusPending); err != nil {
		zap.L().Error("failed to revert application to pending",
			zap.Int("application_id", applicationID), zap.Error(err))
	}
}

func (s *Service) getOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		wallet, err = s.walletRepo.CreateForUser(ctx, userID)
		if err != nil {
			zap.L().Error("failed to create wallet", zap.Error(err))
			return nil, err
		}
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	return s.getOrCreateWallet(ctx, userID)
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.CreateForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// TopUp credits an externally settled deposit to the user's wallet. The
// payment reference is validated at the boundary.
func (s *Service) TopUp(ctx context.Context, userID int, amount float64, reference string) (*domain.Wallet, error) {
	wallet, err := s.getOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	amount = round2(amount)
	record := &domain.PaymentRecord{
		UserID:          userID,
		TransactionType: domain.TransactionTypeDeposit,
		AmountOriginal:  amount,
		PaymentStatus:   domain.PaymentStatusCompleted,
		Notes:           fmt.Sprintf("deposit, reference %s", reference),
	}
	if _, err := s.paymentRepo.Create(ctx, record); err != nil {
		zap.L().Error("failed to create deposit record", zap.Error(err))
		return nil, err
	}

	wallet.Balance = round2(wallet.Balance + amount)
	updated, err := s.walletRepo.Update(ctx, userID, wallet)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetPayments(ctx context.Context, userID int) ([]domain.PaymentRecord, error) {
	records, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payment records", zap.Error(err))
		return nil, err
	}
	return records, nil
}
