package jobrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/worklink/worklink/internal/domain"
	"github.com/worklink/worklink/internal/pg"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		job       *domain.Job
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create job successfully",
			job:  &domain.Job{OwnerID: 1, Title: "Fix the roof", Budget: 1000.0, Status: domain.JobStatusOpen},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO jobs (owner_id, title, budget, status)")).
					WithArgs(1, "Fix the roof", 1000.0, domain.JobStatusOpen).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			job:  &domain.Job{OwnerID: 1, Title: "Fix the roof", Budget: 1000.0, Status: domain.JobStatusOpen},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO jobs (owner_id, title, budget, status)")).
					WithArgs(1, "Fix the roof", 1000.0, domain.JobStatusOpen).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.job)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, timeNow, result.CreatedAt)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		jobID     int
		mockSetup func()
		expectErr bool
		result    *domain.Job
	}{
		{
			name:  "Job exists",
			jobID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "title", "budget", "status", "created_at"}).
					AddRow(1, 1, "Fix the roof", 1000.0, "open", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, title, budget, status, created_at")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Job{
				ID:        1,
				OwnerID:   1,
				Title:     "Fix the roof",
				Budget:    1000.0,
				Status:    "open",
				CreatedAt: timeNow,
			},
		},
		{
			name:  "Job does not exist",
			jobID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, title, budget, status, created_at")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			jobID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, title, budget, status, created_at")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.jobID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByOwnerID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		ownerID   int
		mockSetup func()
		expectErr bool
		result    []domain.Job
	}{
		{
			name:    "Jobs found",
			ownerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "title", "budget", "status", "created_at"}).
					AddRow(1, 1, "Fix the roof", 1000.0, "open", timeNow).
					AddRow(2, 1, "Paint the fence", 250.0, "closed", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Job{
				{ID: 1, OwnerID: 1, Title: "Fix the roof", Budget: 1000.0, Status: "open", CreatedAt: timeNow},
				{ID: 2, OwnerID: 1, Title: "Paint the fence", Budget: 250.0, Status: "closed", CreatedAt: timeNow},
			},
		},
		{
			name:    "Database error",
			ownerID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:    "Scan row error",
			ownerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "title", "budget", "status", "created_at"}).
					AddRow(1, 1, "Fix the roof", "invalid_value", "open", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOwnerID(context.Background(), tt.ownerID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		status     string
		mockSetup  func()
		expectErr  bool
		checkError func(t *testing.T, err error)
	}{
		{
			name:   "Update status successfully",
			status: "closed",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_id", "title", "budget", "status", "created_at"}).
					AddRow(1, 1, "Fix the roof", 1000.0, "closed", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
					WithArgs("closed", 1).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:   "Check constraint violation passes through",
			status: "closed",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
					WithArgs("closed", 1).
					WillReturnError(&pgconn.PgError{Code: "23514", Message: "check constraint violated"})
			},
			expectErr: true,
			checkError: func(t *testing.T, err error) {
				var pgErr *pgconn.PgError
				assert.ErrorAs(t, err, &pgErr)
				assert.Equal(t, "23514", pgErr.Code)
			},
		},
		{
			name:   "Database error",
			status: "closed",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs")).
					WithArgs("closed", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 1, tt.status)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.checkError != nil {
					tt.checkError(t, err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "closed", result.Status)
			}
		})
	}
}
