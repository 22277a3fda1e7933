package repo

import (
	"github.com/worklink/worklink/internal/pg"
	applicationrepo "github.com/worklink/worklink/internal/repo/application-repo"
	jobrepo "github.com/worklink/worklink/internal/repo/job-repo"
	paymentrepo "github.com/worklink/worklink/internal/repo/payment-repo"
	userrepo "github.com/worklink/worklink/internal/repo/user-repo"
	walletrepo "github.com/worklink/worklink/internal/repo/wallet-repo"
)

// Repositories exposes the concrete repositories; services narrow them to
// their own interfaces.
type Repositories struct {
	UserRepo        *userrepo.Repository
	JobRepo         *jobrepo.Repository
	ApplicationRepo *applicationrepo.Repository
	WalletRepo      *walletrepo.Repository
	PaymentRepo     *paymentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		JobRepo:         jobrepo.New(conn, txManager),
		ApplicationRepo: applicationrepo.New(conn, txManager),
		WalletRepo:      walletrepo.New(conn, txManager),
		PaymentRepo:     paymentrepo.New(conn),
	}
}
