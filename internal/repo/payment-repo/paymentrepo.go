package paymentrepo

import (
	"context"

	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, rec *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	query := `
		INSERT INTO payment_records (user_id, transaction_type, amount_original, fee_percentage, fee_amount, payment_status, related_job_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.TransactionType, rec.AmountOriginal, rec.FeePercentage,
		rec.FeeAmount, rec.PaymentStatus, rec.RelatedJobID, rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PaymentRecord, error) {
	query := `
        SELECT id, user_id, transaction_type, amount_original, fee_percentage, fee_amount, payment_status, related_job_id, notes, created_at
        FROM payment_records
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch payment records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.TransactionType, &rec.AmountOriginal, &rec.FeePercentage, &rec.FeeAmount, &rec.PaymentStatus, &rec.RelatedJobID, &rec.Notes, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payment record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
