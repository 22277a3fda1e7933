package applicationrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const applicationColumns = "id, job_id, provider_id, status, proposed_rate, client_contact_revealed, notified, created_at"

func scanApplication(row pgx.Row, app *domain.JobApplication) error {
	return row.Scan(&app.ID, &app.JobID, &app.ProviderID, &app.Status, &app.ProposedRate, &app.ClientContactRevealed, &app.Notified, &app.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	query := `
        INSERT INTO job_applications (job_id, provider_id, status, proposed_rate)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, app.JobID, app.ProviderID, app.Status, app.ProposedRate).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetByID(ctx context.Context, appID int) (*domain.JobApplication, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM job_applications
        WHERE id = $1
    `
	var app domain.JobApplication
	err := scanApplication(r.db.QueryRow(ctx, query, appID), &app)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindByJobID(ctx context.Context, jobID int) ([]domain.JobApplication, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM job_applications
        WHERE job_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := scanApplication(rows, &app); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *Repository) FindByJobAndProvider(ctx context.Context, jobID, providerID int) (*domain.JobApplication, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM job_applications
        WHERE job_id = $1 AND provider_id = $2
    `
	var app domain.JobApplication
	err := scanApplication(r.db.QueryRow(ctx, query, jobID, providerID), &app)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application by provider", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) GetAcceptedForJob(ctx context.Context, jobID int) (*domain.JobApplication, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM job_applications
        WHERE job_id = $1 AND status = 'accepted'
    `
	var app domain.JobApplication
	err := scanApplication(r.db.QueryRow(ctx, query, jobID), &app)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find accepted application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// Accept marks one application accepted and rejects the remaining pending
// applications of the same job in a single transaction.
func (r *Repository) Accept(ctx context.Context, appID, jobID int) error {
	acceptQuery := `
		UPDATE job_applications
		SET status = 'accepted'
		WHERE id = $1
	`
	rejectQuery := `
		UPDATE job_applications
		SET status = 'rejected'
		WHERE job_id = $1 AND id <> $2 AND status = 'pending'
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, acceptQuery, appID); err != nil {
			zap.L().Error("can't accept application", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, rejectQuery, jobID, appID); err != nil {
			zap.L().Error("can't reject sibling applications", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, appID int, status string) error {
	query := `
		UPDATE job_applications
		SET status = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, appID)
	if err != nil {
		zap.L().Error("can't update application status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetContactRevealed(ctx context.Context, appID int) error {
	query := `
		UPDATE job_applications
		SET client_contact_revealed = TRUE
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, appID)
	if err != nil {
		zap.L().Error("can't reveal client contact", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAcceptedUnnotified(ctx context.Context, limit uint32) ([]domain.JobApplication, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM job_applications
        WHERE status = 'accepted' AND notified = FALSE
        ORDER BY created_at ASC
		LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get applications for notification", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := scanApplication(rows, &app); err != nil {
			zap.L().Error("can't scan application row for notification", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *Repository) MarkNotified(ctx context.Context, appID int) error {
	query := `
		UPDATE job_applications
		SET notified = TRUE
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, appID)
	if err != nil {
		zap.L().Error("can't mark application notified", zap.Error(err))
		return err
	}
	return nil
}
