package applicationservice

import (
	"context"
	"errors"

	"github.com/worklink/worklink/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applicationservice.go -destination=applicationservice_mock.go -package=applicationservice
type Repo interface {
	Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	GetByID(ctx context.Context, appID int) (*domain.JobApplication, error)
	FindByJobID(ctx context.Context, jobID int) ([]domain.JobApplication, error)
	FindByJobAndProvider(ctx context.Context, jobID, providerID int) (*domain.JobApplication, error)
	Accept(ctx context.Context, appID, jobID int) error
	UpdateStatus(ctx context.Context, appID int, status string) error
}
type JobRepo interface {
	GetByID(ctx context.Context, jobID int) (*domain.Job, error)
}
type Settlement interface {
	SettleApprovalFee(ctx context.Context, jobID, applicationID int) (*domain.PaymentRecord, error)
}

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrNotAllowed          = errors.New("actor may not manage this application")
	ErrAlreadyAccepted     = errors.New("application already accepted")
	ErrOwnJob              = errors.New("cannot apply to own job")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrJobNotAcceptingApps = errors.New("job does not accept applications")
)

type Service struct {
	appRepo    Repo
	jobRepo    JobRepo
	settlement Settlement
}

func New(appRepo Repo, jobRepo JobRepo, settlement Settlement) *Service {
	return &Service{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		settlement: settlement,
	}
}

func (s *Service) Apply(ctx context.Context, providerID, jobID int, proposedRate float64) (*domain.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get job", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.OwnerID == providerID {
		return nil, ErrOwnJob
	}
	if job.Status != domain.JobStatusOpen && job.Status != domain.JobStatusReopen {
		return nil, ErrJobNotAcceptingApps
	}

	existing, err := s.appRepo.FindByJobAndProvider(ctx, jobID, providerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("provider already applied", zap.Int("job_id", jobID), zap.Int("provider_id", providerID))
		return nil, ErrAlreadyApplied
	}

	app := &domain.JobApplication{
		JobID:        jobID,
		ProviderID:   providerID,
		Status:       domain.ApplicationStatusPending,
		ProposedRate: proposedRate,
	}
	app, err = s.appRepo.Create(ctx, app)
	if err != nil {
		zap.L().Error("can't create application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

// ListByJob returns every application of a job to its owner, and only the
// actor's own application to anyone else.
func (s *Service) ListByJob(ctx context.Context, actorID, jobID int) ([]domain.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	apps, err := s.appRepo.FindByJobID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get applications", zap.Error(err))
		return nil, err
	}
	if job.OwnerID == actorID {
		return apps, nil
	}
	own := make([]domain.JobApplication, 0)
	for _, app := range apps {
		if app.ProviderID == actorID {
			own = append(own, app)
		}
	}
	return own, nil
}

// Accept tentatively marks the application accepted, rejects its pending
// siblings, then settles the approval fee. The settlement saga reverts the
// application itself on any of its failures, so no revert happens here.
func (s *Service) Accept(ctx context.Context, actorID, applicationID int) (*domain.JobApplication, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		zap.L().Error("failed to get application", zap.Error(err))
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if actorID != app.ProviderID && actorID != job.OwnerID {
		return nil, ErrNotAllowed
	}

	if app.Status == domain.ApplicationStatusAccepted {
		zap.L().Info("application already accepted", zap.Int("application_id", applicationID))
		return nil, ErrAlreadyAccepted
	}

	if err := s.appRepo.Accept(ctx, app.ID, app.JobID); err != nil {
		zap.L().Error("can't accept application", zap.Error(err))
		if revertErr := s.appRepo.UpdateStatus(ctx, app.ID, domain.ApplicationStatusPending); revertErr != nil {
			zap.L().Error("failed to revert application to pending",
				zap.Int("application_id", app.ID), zap.Error(revertErr))
		}
		return nil, err
	}

	if _, err := s.settlement.SettleApprovalFee(ctx, app.JobID, app.ID); err != nil {
		return nil, err
	}

	accepted, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		zap.L().Error("failed to reload accepted application", zap.Error(err))
		return nil, err
	}
	zap.L().Info("application accepted",
		zap.Int("application_id", applicationID),
		zap.Int("job_id", app.JobID),
	)
	return accepted, nil
}
