package service

import (
	"github.com/worklink/worklink/internal/handlers/applications"
	"github.com/worklink/worklink/internal/handlers/auth"
	"github.com/worklink/worklink/internal/handlers/jobs"
	"github.com/worklink/worklink/internal/handlers/wallet"

	pkgauth "github.com/worklink/worklink/pkg/auth"

	"github.com/worklink/worklink/internal/repo"
	"github.com/worklink/worklink/internal/service/applicationservice"
	"github.com/worklink/worklink/internal/service/authservice"
	"github.com/worklink/worklink/internal/service/jobservice"
	"github.com/worklink/worklink/internal/service/paymentservice"
)

type Services struct {
	AuthService        auth.Service
	JobService         jobs.Service
	ApplicationService applications.Service
	PaymentService     wallet.Service
}

func New(r *repo.Repositories) *Services {
	paymentService := paymentservice.New(r.WalletRepo, r.PaymentRepo, r.ApplicationRepo, r.JobRepo)
	jobService := jobservice.New(r.JobRepo, r.ApplicationRepo)
	applicationService := applicationservice.New(r.ApplicationRepo, r.JobRepo, paymentService)
	authService := authservice.New(r.UserRepo, paymentService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		JobService:         jobService,
		ApplicationService: applicationService,
		PaymentService:     paymentService,
	}
}
