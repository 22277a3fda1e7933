package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/worklink/worklink/docs"
	authhandlers "github.com/worklink/worklink/internal/handlers/auth"
	applicationhandlers "github.com/worklink/worklink/internal/handlers/applications"
	jobhandlers "github.com/worklink/worklink/internal/handlers/jobs"
	wallethandlers "github.com/worklink/worklink/internal/handlers/wallet"
	"github.com/worklink/worklink/internal/service"
	"github.com/worklink/worklink/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	CreateJob(w http.ResponseWriter, r *http.Request)
	GetJobs(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListByJob(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	JobHandler         JobHandler
	ApplicationHandler ApplicationHandler
	WalletHandler      WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		JobHandler:         jobhandlers.New(s.JobService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		WalletHandler:      wallethandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", h.JobHandler.CreateJob)
				r.Get("/", h.JobHandler.GetJobs)
				r.Patch("/{jobID}/status", h.JobHandler.UpdateStatus)
				r.Post("/{jobID}/applications", h.ApplicationHandler.Apply)
				r.Get("/{jobID}/applications", h.ApplicationHandler.ListByJob)
			})
			r.Post("/applications/{applicationID}/accept", h.ApplicationHandler.Accept)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/topup", h.WalletHandler.TopUp)
				r.Get("/payments", h.WalletHandler.GetPayments)
			})
		})
	})

	return r
}
