package jobrepo

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

func (r *Repository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `
        INSERT INTO jobs (owner_id, title, budget, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, job.OwnerID, job.Title, job.Budget, job.Status).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		zap.L().Error("can't save job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (r *Repository) GetByID(ctx context.Context, jobID int) (*domain.Job, error) {
	query := `
        SELECT id, owner_id, title, budget, status, created_at
        FROM jobs
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, jobID)

	var job domain.Job
	err := row.Scan(&job.ID, &job.OwnerID, &job.Title, &job.Budget, &job.Status, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

func (r *Repository) FindByOwnerID(ctx context.Context, ownerID int) ([]domain.Job, error) {
	query := `
        SELECT id, owner_id, title, budget, status, created_at
        FROM jobs
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't get jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(&job.ID, &job.OwnerID, &job.Title, &job.Budget, &job.Status, &job.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateStatus writes a single status value. A store CHECK-constraint
// rejection surfaces as a *pgconn.PgError and is left for the caller to
// interpret.
func (r *Repository) UpdateStatus(ctx context.Context, jobID int, status string) (*domain.Job, error) {
	query := `
		UPDATE jobs
		SET status = $1
		WHERE id = $2
		RETURNING id, owner_id, title, budget, status, created_at
	`
	row := r.db.QueryRow(ctx, query, status, jobID)

	var job domain.Job
	err := row.Scan(&job.ID, &job.OwnerID, &job.Title, &job.Budget, &job.Status, &job.CreatedAt)
	if err != nil {
		zap.L().Error("can't update job status", zap.Int("job_id", jobID), zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return &job, nil
}
