package applications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/dto"
	"github.com/worklink/worklink/internal/service/applicationservice"
	"github.com/worklink/worklink/internal/service/paymentservice"
	"github.com/worklink/worklink/pkg/auth"
	"github.com/worklink/worklink/pkg/utils"
)

//go:generate mockgen -source=applications.go -destination=applications_mock.go -package=applications
type Service interface {
	Apply(ctx context.Context, providerID, jobID int, proposedRate float64) (*domain.JobApplication, error)
	ListByJob(ctx context.Context, actorID, jobID int) ([]domain.JobApplication, error)
	Accept(ctx context.Context, actorID, applicationID int) (*domain.JobApplication, error)
}

type ApplicationHandler struct {
	appService Service
}

func New(appService Service) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

func toApplicationResponse(app *domain.JobApplication) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:                    app.ID,
		JobID:                 app.JobID,
		ProviderID:            app.ProviderID,
		Status:                app.Status,
		ProposedRate:          app.ProposedRate,
		ClientContactRevealed: app.ClientContactRevealed,
		CreatedAt:             app.CreatedAt,
	}
}

// Apply godoc
//
//	@Summary		Apply to a job
//	@Description	Submit a pending application for an open job
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int					true	"Job ID"
//	@Param			request	body		dto.ApplyRequestDTO	true	"Application payload"
//	@Success		200		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		409		{object}	utils.Response	"Own job, duplicate application or job not accepting"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/applications [post]
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProposedRate < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "proposed rate must be non-negative")
		return
	}

	app, err := h.appService.Apply(r.Context(), userID, jobID, req.ProposedRate)
	if err != nil {
		switch {
		case errors.Is(err, applicationservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, applicationservice.ErrOwnJob),
			errors.Is(err, applicationservice.ErrAlreadyApplied),
			errors.Is(err, applicationservice.ErrJobNotAcceptingApps):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListByJob godoc
//
//	@Summary		List applications for a job
//	@Description	The job owner sees all applications, other callers only their own
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{array}		dto.ApplicationResponseDTO
//	@Success		204		{object}	utils.Response	"No applications found"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/applications [get]
func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	apps, err := h.appService.ListByJob(r.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, applicationservice.ErrJobNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	if len(apps) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Applications not found")
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(apps))
	for i, app := range apps {
		response[i] = toApplicationResponse(&app)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accept godoc
//
//	@Summary		Accept an application
//	@Description	Accept an application, reject its pending siblings and settle the 10% approval fee from the job owner's wallet
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			applicationID	path		int	true	"Application ID"
//	@Success		200				{object}	dto.ApplicationResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid application id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		402				{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		403				{object}	utils.Response	"Actor may not manage this application"
//	@Failure		404				{object}	utils.Response	"Application not found"
//	@Failure		409				{object}	utils.Response	"Application already accepted"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/applications/{applicationID}/accept [post]
func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	applicationID, err := strconv.Atoi(chi.URLParam(r, "applicationID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.appService.Accept(r.Context(), userID, applicationID)
	if err != nil {
		var fundsErr *paymentservice.InsufficientFundsError
		switch {
		case errors.Is(err, applicationservice.ErrApplicationNotFound),
			errors.Is(err, applicationservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, applicationservice.ErrNotAllowed):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, applicationservice.ErrAlreadyAccepted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &fundsErr):
			utils.RespondWithError(w, http.StatusPaymentRequired, fundsErr.Error())
		case errors.Is(err, paymentservice.ErrWalletRefused):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationResponse(app))
}
