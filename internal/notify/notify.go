// Package notify delivers acceptance webhooks to the external notification
// collaborator. It polls for accepted applications that were not announced
// yet and posts one event per application. It never touches payment records:
// fee capture stays a manual, out-of-process step.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/worklink/worklink/internal/config"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var notifyingApplications sync.Map

type ApplicationRepo interface {
	FindAcceptedUnnotified(ctx context.Context, limit uint32) ([]domain.JobApplication, error)
	MarkNotified(ctx context.Context, appID int) error
}
type JobRepo interface {
	GetByID(ctx context.Context, jobID int) (*domain.Job, error)
}

// Event is the webhook payload announcing an accepted application.
type Event struct {
	ApplicationID int     `json:"application_id"`
	JobID         int     `json:"job_id"`
	JobTitle      string  `json:"job_title"`
	OwnerID       int     `json:"owner_id"`
	ProviderID    int     `json:"provider_id"`
	ProposedRate  float64 `json:"proposed_rate"`
}

type Service struct {
	url            string
	appRepo        ApplicationRepo
	jobRepo        JobRepo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, appRepo ApplicationRepo, jobRepo JobRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.NotifyAddress,
		appRepo:        appRepo,
		jobRepo:        jobRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notify service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notify service")
			return
		case <-ticker.C:
			s.processApplications(ctx)
		}
	}
}

func (s *Service) processApplications(ctx context.Context) {
	apps, err := s.appRepo.FindAcceptedUnnotified(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch applications for notification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, app := range apps {
		app := app

		if _, loaded := notifyingApplications.LoadOrStore(app.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer notifyingApplications.Delete(app.ID)
				return s.handleApplication(ctx, app)
			})
			if err != nil {
				notifyingApplications.Delete(app.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error notifying applications", zap.Error(err))
	}
}

func (s *Service) handleApplication(ctx context.Context, app domain.JobApplication) error {
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job %d for notification: %w", app.JobID, err)
	}
	if job == nil {
		zap.L().Warn("Job vanished before notification", zap.Int("job_id", app.JobID))
		return s.appRepo.MarkNotified(ctx, app.ID)
	}

	event := Event{
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		OwnerID:       job.OwnerID,
		ProviderID:    app.ProviderID,
		ProposedRate:  app.ProposedRate,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := s.post(ctx, body); err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to notify application %d after %d retries: %w", app.ID, maxRetries, err)
			}
			return s.appRepo.MarkNotified(ctx, app.ID)
		}
	}
	return nil
}

func (s *Service) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/api/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
