package applicationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worklink/worklink/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockJobRepo, *MockSettlement) {
	ctrl := gomock.NewController(t)
	appRepo := NewMockRepo(ctrl)
	jobRepo := NewMockJobRepo(ctrl)
	settlement := NewMockSettlement(ctrl)
	service := New(appRepo, jobRepo, settlement)
	defer ctrl.Finish()
	return service, appRepo, jobRepo, settlement
}

func TestApply(t *testing.T) {
	openJob := &domain.Job{ID: 1, OwnerID: 1, Title: "Fix the roof", Budget: 1000.0, Status: domain.JobStatusOpen}

	tests := []struct {
		name          string
		providerID    int
		prepareMock   func(appRepo *MockRepo, jobRepo *MockJobRepo)
		expectedError error
	}{
		{
			name:       "Apply successfully",
			providerID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(openJob, nil)
				appRepo.EXPECT().FindByJobAndProvider(gomock.Any(), 1, 2).Return(nil, nil)
				appRepo.EXPECT().Create(gomock.Any(), &domain.JobApplication{
					JobID:        1,
					ProviderID:   2,
					Status:       domain.ApplicationStatusPending,
					ProposedRate: 900.0,
				}).DoAndReturn(func(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
					app.ID = 5
					return app, nil
				})
			},
		},
		{
			name:       "Reopened job accepts applications",
			providerID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Job{
					ID: 1, OwnerID: 1, Status: domain.JobStatusReopen,
				}, nil)
				appRepo.EXPECT().FindByJobAndProvider(gomock.Any(), 1, 2).Return(nil, nil)
				appRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
						app.ID = 5
						return app, nil
					})
			},
		},
		{
			name:       "Job not found",
			providerID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrJobNotFound,
		},
		{
			name:       "Owner cannot apply to own job",
			providerID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(openJob, nil)
			},
			expectedError: ErrOwnJob,
		},
		{
			name:       "Closed job rejects applications",
			providerID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Job{
					ID: 1, OwnerID: 1, Status: domain.JobStatusClosed,
				}, nil)
			},
			expectedError: ErrJobNotAcceptingApps,
		},
		{
			name:       "Duplicate application rejected",
			providerID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(openJob, nil)
				appRepo.EXPECT().FindByJobAndProvider(gomock.Any(), 1, 2).Return(&domain.JobApplication{
					ID: 3, JobID: 1, ProviderID: 2, Status: domain.ApplicationStatusPending,
				}, nil)
			},
			expectedError: ErrAlreadyApplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, appRepo, jobRepo, _ := NewMock(t)
			tt.prepareMock(appRepo, jobRepo)

			app, err := service.Apply(context.Background(), tt.providerID, 1, 900.0)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, app.ID)
				assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			}
		})
	}
}

func TestListByJob(t *testing.T) {
	job := &domain.Job{ID: 1, OwnerID: 1, Status: domain.JobStatusOpen}
	apps := []domain.JobApplication{
		{ID: 1, JobID: 1, ProviderID: 2, Status: domain.ApplicationStatusPending},
		{ID: 2, JobID: 1, ProviderID: 3, Status: domain.ApplicationStatusPending},
	}

	tests := []struct {
		name          string
		actorID       int
		prepareMock   func(appRepo *MockRepo, jobRepo *MockJobRepo)
		expectedApps  []domain.JobApplication
		expectedError error
	}{
		{
			name:    "Owner sees every application",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().FindByJobID(gomock.Any(), 1).Return(apps, nil)
			},
			expectedApps: apps,
		},
		{
			name:    "Provider sees only their own application",
			actorID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().FindByJobID(gomock.Any(), 1).Return(apps, nil)
			},
			expectedApps: []domain.JobApplication{apps[0]},
		},
		{
			name:    "Stranger sees nothing",
			actorID: 9,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().FindByJobID(gomock.Any(), 1).Return(apps, nil)
			},
			expectedApps: []domain.JobApplication{},
		},
		{
			name:    "Job not found",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo) {
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, appRepo, jobRepo, _ := NewMock(t)
			tt.prepareMock(appRepo, jobRepo)

			got, err := service.ListByJob(context.Background(), tt.actorID, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedApps, got)
			}
		})
	}
}

func TestAccept(t *testing.T) {
	job := &domain.Job{ID: 1, OwnerID: 1, Title: "Fix the roof", Budget: 1000.0, Status: domain.JobStatusOpen}
	pendingApp := &domain.JobApplication{ID: 5, JobID: 1, ProviderID: 2, Status: domain.ApplicationStatusPending}

	tests := []struct {
		name          string
		actorID       int
		prepareMock   func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement)
		expectedError error
	}{
		{
			name:    "Owner accepts and the fee settles",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().Accept(gomock.Any(), 5, 1).Return(nil)
				settlement.EXPECT().SettleApprovalFee(gomock.Any(), 1, 5).Return(&domain.PaymentRecord{ID: 42}, nil)
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.JobApplication{
					ID: 5, JobID: 1, ProviderID: 2,
					Status:                domain.ApplicationStatusAccepted,
					ClientContactRevealed: true,
				}, nil)
			},
		},
		{
			name:    "Provider may accept their own application",
			actorID: 2,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().Accept(gomock.Any(), 5, 1).Return(nil)
				settlement.EXPECT().SettleApprovalFee(gomock.Any(), 1, 5).Return(&domain.PaymentRecord{ID: 42}, nil)
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.JobApplication{
					ID: 5, JobID: 1, ProviderID: 2, Status: domain.ApplicationStatusAccepted,
				}, nil)
			},
		},
		{
			name:    "Application not found",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
		{
			name:    "Stranger may not accept",
			actorID: 9,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
			},
			expectedError: ErrNotAllowed,
		},
		{
			name:    "Second accept is a conflict, no second settlement",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.JobApplication{
					ID: 5, JobID: 1, ProviderID: 2, Status: domain.ApplicationStatusAccepted,
				}, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
			},
			expectedError: ErrAlreadyAccepted,
		},
		{
			name:    "Accept write failure reverts the application to pending",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().Accept(gomock.Any(), 5, 1).Return(errors.New("database error"))
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 5, domain.ApplicationStatusPending).Return(nil)
			},
			expectedError: errors.New("database error"),
		},
		{
			name:    "Revert failure after a failed accept still surfaces the accept error",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().Accept(gomock.Any(), 5, 1).Return(errors.New("database error"))
				appRepo.EXPECT().UpdateStatus(gomock.Any(), 5, domain.ApplicationStatusPending).Return(errors.New("connection reset"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:    "Settlement failure surfaces to the caller",
			actorID: 1,
			prepareMock: func(appRepo *MockRepo, jobRepo *MockJobRepo, settlement *MockSettlement) {
				appRepo.EXPECT().GetByID(gomock.Any(), 5).Return(pendingApp, nil)
				jobRepo.EXPECT().GetByID(gomock.Any(), 1).Return(job, nil)
				appRepo.EXPECT().Accept(gomock.Any(), 5, 1).Return(nil)
				settlement.EXPECT().SettleApprovalFee(gomock.Any(), 1, 5).Return(nil, errors.New("insufficient balance: 100.00 required"))
			},
			expectedError: errors.New("insufficient balance: 100.00 required"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, appRepo, jobRepo, settlement := NewMock(t)
			tt.prepareMock(appRepo, jobRepo, settlement)

			accepted, err := service.Accept(context.Background(), tt.actorID, 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ApplicationStatusAccepted, accepted.Status)
			}
		})
	}
}
