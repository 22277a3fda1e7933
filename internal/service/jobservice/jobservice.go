package jobservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklink/worklink/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=jobservice.go -destination=jobservice_mock.go -package=jobservice
type Repo interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	GetByID(ctx context.Context, jobID int) (*domain.Job, error)
	FindByOwnerID(ctx context.Context, ownerID int) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, jobID int, status string) (*domain.Job, error)
}
type ApplicationRepo interface {
	GetAcceptedForJob(ctx context.Context, jobID int) (*domain.JobApplication, error)
}

var (
	ErrJobNotFound           = errors.New("job not found")
	ErrNotJobOwner           = errors.New("only the job owner may change this status")
	ErrNoAcceptedApplication = errors.New("job has no accepted application")
)

// InvalidStatusError rejects a raw status value that maps to nothing in the
// canonical set.
type InvalidStatusError struct {
	Value   string
	Allowed []string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q, allowed values: %s", e.Value, strings.Join(e.Allowed, ", "))
}

// IllegalTransitionError rejects a transition the state machine forbids.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// StoreConstraintError reports that the store's status constraint rejected
// the canonical value and every fallback candidate. Attempts lists each
// value tried, in order, for operators chasing schema drift.
type StoreConstraintError struct {
	Value    string
	Attempts []string
}

func (e *StoreConstraintError) Error() string {
	return fmt.Sprintf("store rejected status %q, attempted: %s", e.Value, strings.Join(e.Attempts, ", "))
}

type Service struct {
	jobRepo Repo
	appRepo ApplicationRepo
}

func New(jobRepo Repo, appRepo ApplicationRepo) *Service {
	return &Service{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

func (s *Service) CreateJob(ctx context.Context, ownerID int, title string, budget float64) (*domain.Job, error) {
	job := &domain.Job{
		OwnerID: ownerID,
		Title:   title,
		Budget:  budget,
		Status:  domain.JobStatusOpen,
	}
	job, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		zap.L().Error("can't create job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (s *Service) GetJob(ctx context.Context, jobID int) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get job", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *Service) GetJobs(ctx context.Context, ownerID int) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus normalizes a caller-supplied status value, checks actor
// rights and the transition table, then writes the value, falling back
// through alias candidates when the store's check constraint rejects it.
func (s *Service) UpdateStatus(ctx context.Context, jobID int, rawStatus string, actorID int) (*domain.Job, error) {
	target, ok := domain.NormalizeStatus(rawStatus)
	if !ok {
		return nil, &InvalidStatusError{Value: rawStatus, Allowed: domain.JobStatuses}
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get job", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	isOwner := job.OwnerID == actorID
	if !isOwner {
		// the accepted provider may mark the job completed, nobody else
		// touches the status
		if target != domain.JobStatusCompleted {
			return nil, ErrNotJobOwner
		}
		accepted, err := s.appRepo.GetAcceptedForJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if accepted == nil || accepted.ProviderID != actorID {
			return nil, ErrNotJobOwner
		}
	}

	if target == domain.JobStatusCompleted {
		accepted, err := s.appRepo.GetAcceptedForJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if accepted == nil {
			return nil, ErrNoAcceptedApplication
		}
	}

	if !domain.CanTransition(job.Status, target, isOwner) {
		zap.L().Info("illegal status transition rejected",
			zap.Int("job_id", jobID),
			zap.String("from", job.Status),
			zap.String("to", target),
		)
		return nil, &IllegalTransitionError{From: job.Status, To: target}
	}

	return s.writeStatus(ctx, jobID, target)
}

// reverseAliases maps a canonical value back to its caller-facing synonym,
// for stores whose constraint still carries the old spelling.
var reverseAliases = map[string]string{
	domain.JobStatusClosed:    "close",
	domain.JobStatusApproved:  "approve",
	domain.JobStatusCompleted: "complete",
}

// fallbackCandidates returns the alias-retry ladder for a rejected status
// value. The order is load-bearing: reverse alias first, then the value with
// its "ed"/"d" suffix stripped, then the fixed tail.
func fallbackCandidates(value string) []string {
	var candidates []string
	if alias, ok := reverseAliases[value]; ok {
		candidates = append(candidates, alias)
	}
	if stripped, ok := strings.CutSuffix(value, "ed"); ok {
		candidates = append(candidates, stripped)
	} else if stripped, ok := strings.CutSuffix(value, "d"); ok {
		candidates = append(candidates, stripped)
	}
	candidates = append(candidates, domain.JobStatusClosed, domain.JobStatusCompleted)
	return candidates
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func (s *Service) writeStatus(ctx context.Context, jobID int, value string) (*domain.Job, error) {
	job, err := s.jobRepo.UpdateStatus(ctx, jobID, value)
	if err == nil {
		return job, nil
	}
	if !isCheckViolation(err) {
		return nil, err
	}

	attempts := []string{value}
	tried := map[string]bool{value: true}
	for _, candidate := range fallbackCandidates(value) {
		if tried[candidate] {
			continue
		}
		tried[candidate] = true
		attempts = append(attempts, candidate)

		zap.L().Warn("store rejected status, trying fallback candidate",
			zap.Int("job_id", jobID),
			zap.String("value", value),
			zap.String("candidate", candidate),
		)
		job, err = s.jobRepo.UpdateStatus(ctx, jobID, candidate)
		if err == nil {
			return job, nil
		}
		if !isCheckViolation(err) {
			return nil, err
		}
	}
	return nil, &StoreConstraintError{Value: value, Attempts: attempts}
}
