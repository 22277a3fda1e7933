package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

//go:generate mockgen -source=txmanager.go -destination=txmanager_mock.go -package=pg
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

// TxBeginner is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Manager struct {
	pool TxBeginner
}

func NewTXManager(pool TxBeginner) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn inside a transaction. The transaction is bound to the
// context fn receives, so statements issued through DB land on it and either
// all commit or all roll back.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
