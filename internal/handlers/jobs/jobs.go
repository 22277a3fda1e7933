package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/dto"
	"github.com/worklink/worklink/internal/service/jobservice"
	"github.com/worklink/worklink/pkg/auth"
	"github.com/worklink/worklink/pkg/utils"
)

//go:generate mockgen -source=jobs.go -destination=jobs_mock.go -package=jobs
type Service interface {
	CreateJob(ctx context.Context, ownerID int, title string, budget float64) (*domain.Job, error)
	GetJobs(ctx context.Context, ownerID int) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, jobID int, rawStatus string, actorID int) (*domain.Job, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

func toJobResponse(job *domain.Job) dto.JobResponseDTO {
	return dto.JobResponseDTO{
		ID:        job.ID,
		OwnerID:   job.OwnerID,
		Title:     job.Title,
		Budget:    job.Budget,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
	}
}

// CreateJob godoc
//
//	@Summary		Post a new job
//	@Description	Create a job in status open owned by the authenticated user
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateJobRequestDTO	true	"Job payload"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Budget < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required and budget must be non-negative")
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), userID, req.Title, req.Budget)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobResponse(job))
}

// GetJobs godoc
//
//	@Summary		List own jobs
//	@Description	List jobs posted by the authenticated user
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.JobResponseDTO
//	@Success		204	{object}	utils.Response	"No jobs found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [get]
func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	jobs, err := h.jobService.GetJobs(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	if len(jobs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Jobs not found")
		return
	}

	response := make([]dto.JobResponseDTO, len(jobs))
	for i, job := range jobs {
		response[i] = toJobResponse(&job)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Update job status
//	@Description	Normalize and apply a job status change; synonyms like "close" are accepted
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int								true	"Job ID"
//	@Param			request	body		dto.UpdateJobStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or unknown status value"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Actor may not change this job"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		409		{object}	utils.Response	"Illegal transition or missing precondition"
//	@Failure		500		{object}	utils.Response	"Store rejected every candidate; guidance lists attempts"
//	@Router			/api/jobs/{jobID}/status [patch]
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.UpdateJobStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.jobService.UpdateStatus(r.Context(), jobID, req.Status, userID)
	if err != nil {
		var invalidErr *jobservice.InvalidStatusError
		var transitionErr *jobservice.IllegalTransitionError
		var constraintErr *jobservice.StoreConstraintError
		switch {
		case errors.As(err, &invalidErr):
			utils.RespondWithError(w, http.StatusBadRequest, invalidErr.Error())
		case errors.Is(err, jobservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, jobservice.ErrNotJobOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, jobservice.ErrNoAcceptedApplication):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &transitionErr):
			utils.RespondWithError(w, http.StatusConflict, transitionErr.Error())
		case errors.As(err, &constraintErr):
			utils.RespondWithGuidance(w, http.StatusInternalServerError, constraintErr.Error(), constraintErr.Attempts)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobResponse(job))
}
