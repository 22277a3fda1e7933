package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, total_paid, total_earned
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.TotalPaid, &wallet.TotalEarned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CreateForUser(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, total_paid, total_earned)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, balance, total_paid, total_earned
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.TotalPaid, &wallet.TotalEarned)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Update(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, error) {
	var updated domain.Wallet
	query := `
		UPDATE wallets
		SET balance = $1, total_paid = $2, total_earned = $3
		WHERE user_id = $4
		RETURNING id, user_id, balance, total_paid, total_earned
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, wallet.Balance, wallet.TotalPaid, wallet.TotalEarned, userID)
		err := row.Scan(&updated.ID, &updated.UserID, &updated.Balance, &updated.TotalPaid, &updated.TotalEarned)
		if err != nil {
			zap.L().Error("failed to update wallet", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Deduct subtracts amount from the balance only when the balance still
// covers it, so a concurrent deduction can never drive the balance negative.
// Returns (nil, nil) when the guard refuses the write.
func (r *Repository) Deduct(ctx context.Context, userID int, amount float64) (*domain.Wallet, error) {
	var updated domain.Wallet
	query := `
		UPDATE wallets
		SET balance = balance - $1, total_paid = total_paid + $1
		WHERE user_id = $2 AND balance >= $1
		RETURNING id, user_id, balance, total_paid, total_earned
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, amount, userID)
		err := row.Scan(&updated.ID, &updated.UserID, &updated.Balance, &updated.TotalPaid, &updated.TotalEarned)
		if err != nil {
			zap.L().Error("failed to deduct from wallet", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}
