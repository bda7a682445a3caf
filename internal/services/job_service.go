package services

import (
	"context"
	"strings"
	"time"

	"github.com/LJMarquez/talentlink-backend/internal/logger"
	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/repositories"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// JobService moves jobs through their lifecycle: posted into the pending
// store, then either promoted to the published store or rejected. Every
// canonical-store change is mirrored inside the owning employer's document.
type JobService struct {
	accountRepo repositories.AccountRepository
	jobRepo     repositories.JobRepository
}

func NewJobService(accountRepo repositories.AccountRepository, jobRepo repositories.JobRepository) *JobService {
	return &JobService{accountRepo: accountRepo, jobRepo: jobRepo}
}

// PostJob creates a pending job and mirrors it into the employer's
// pendingJobs.
func (s *JobService) PostJob(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error) {
	employer, err := s.accountRepo.FindByID(req.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("job", "Employer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		JobName: req.JobName,
		JobType: req.JobType,
		SalaryRange: models.SalaryRange{
			MinSalary: req.MinSalary,
			MaxSalary: req.MaxSalary,
		},
		Location:            req.Location,
		ExperienceLevel:     req.ExperienceLevel,
		Qualifications:      splitList(req.Qualifications),
		Skills:              splitList(req.Skills),
		Responsibilities:    splitList(req.Responsibilities),
		EmploymentBenefits:  splitList(req.EmploymentBenefits),
		CompanyName:         req.CompanyName,
		CompanyDescription:  req.CompanyDescription,
		Website:             req.Website,
		CompanyEmail:        req.CompanyEmail,
		CompanyPhoneNumber:  req.CompanyPhoneNumber,
		PostedDate:          time.Now().Format(time.RFC3339),
		ApplicationDeadline: req.ApplicationDeadline,
		WorkSchedule:        req.WorkSchedule,
		Tags:                datatypes.JSONSlice[string](req.Tags),
		EmployerID:          req.EmployerID,
		Applicants:          datatypes.JSONSlice[models.AppliedJob]{},
	}

	if err := s.jobRepo.Create(models.CollectionPendingJobs, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	pendingJobs := append(employer.PendingJobs, *job)
	if err := s.accountRepo.Update(employer.ID, map[string]interface{}{
		"pending_jobs": pendingJobs,
	}); err != nil {
		logger.CtxError(ctx, "dual write diverged: pending job created, employer mirror failed",
			"employer_id", employer.ID,
			"job_id", job.ID,
			"error", err.Error(),
		)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posted", "employer_id", employer.ID, "job_id", job.ID)
	return job, nil
}

// ApprovePendingJob promotes a pending job: a new document with a new
// identity is created in the published store, the pending document is deleted
// by its original id, and the employer's mirrors are moved accordingly. The
// employer's publishedJobs entry carries the new id; the pendingJobs entry is
// removed by the original one.
func (s *JobService) ApprovePendingJob(ctx context.Context, body *models.Job) (string, error) {
	pendingID := body.ID

	employer, err := s.accountRepo.FindByID(body.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NotFound("job", "Employer not found")
		}
		return "", apperrors.InternalError(err)
	}

	published := *body
	published.ID = ""
	published.CreatedAt = time.Time{}
	published.UpdatedAt = time.Time{}
	if err := s.jobRepo.Create(models.CollectionPublishedJobs, &published); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.jobRepo.DeleteByID(models.CollectionPendingJobs, pendingID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			logger.CtxWarn(ctx, "pending document already gone during approval",
				"pending_id", pendingID, "published_id", published.ID)
		} else {
			logger.CtxError(ctx, "dual write diverged: published created, pending delete failed",
				"pending_id", pendingID,
				"published_id", published.ID,
				"error", err.Error(),
			)
			return "", apperrors.InternalError(err)
		}
	}

	publishedJobs := append(employer.PublishedJobs, published)
	pendingJobs := removeJob(employer.PendingJobs, pendingID)
	if err := s.accountRepo.Update(employer.ID, map[string]interface{}{
		"published_jobs": publishedJobs,
		"pending_jobs":   pendingJobs,
	}); err != nil {
		logger.CtxError(ctx, "dual write diverged: job stores updated, employer mirror failed",
			"employer_id", employer.ID,
			"pending_id", pendingID,
			"published_id", published.ID,
			"error", err.Error(),
		)
		return "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job approved",
		"employer_id", employer.ID, "pending_id", pendingID, "published_id", published.ID)
	return published.ID, nil
}

// RejectPendingJob discards a pending job. The employer mirror is written
// first, the canonical store second; a failure in between is reported as an
// inconsistency rather than silently dropped.
func (s *JobService) RejectPendingJob(ctx context.Context, jobID, employerID string) error {
	employer, err := s.accountRepo.FindByID(employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("job", "Employer not found")
		}
		return apperrors.InternalError(err)
	}

	pendingJobs := removeJob(employer.PendingJobs, jobID)
	if err := s.accountRepo.Update(employer.ID, map[string]interface{}{
		"pending_jobs": pendingJobs,
	}); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.jobRepo.DeleteByID(models.CollectionPendingJobs, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			logger.CtxWarn(ctx, "employer mirror updated but pending document was absent",
				"employer_id", employerID, "job_id", jobID)
			return apperrors.NotFound("job", "Document with ID "+jobID+" not found")
		}
		logger.CtxError(ctx, "dual write diverged: employer mirror updated, pending delete failed",
			"employer_id", employerID,
			"job_id", jobID,
			"error", err.Error(),
		)
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job rejected", "employer_id", employerID, "job_id", jobID)
	return nil
}

func (s *JobService) GetJob(ctx context.Context, collection, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(collection, id)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrJobNotFound):
			return nil, apperrors.NotFound("job", "Document with ID "+id+" not found")
		case apperrors.Is(err, repositories.ErrUnknownCollection):
			return nil, apperrors.NewBadRequestError("No schema defined for collection: " + collection)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, collection string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(collection)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUnknownCollection) {
			return nil, apperrors.NewBadRequestError("No schema defined for collection: " + collection)
		}
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// CreateJob inserts a caller-shaped document, used by the debug surface.
func (s *JobService) CreateJob(ctx context.Context, collection string, job *models.Job) error {
	if err := s.jobRepo.Create(collection, job); err != nil {
		if apperrors.Is(err, repositories.ErrUnknownCollection) {
			return apperrors.NewBadRequestError("No schema defined for collection: " + collection)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobService) UpdateJob(ctx context.Context, collection, id string, fields map[string]interface{}) (*models.Job, error) {
	if err := s.jobRepo.Update(collection, id, fields); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrJobNotFound):
			return nil, apperrors.NotFound("job", "Document not found")
		case apperrors.Is(err, repositories.ErrUnknownCollection):
			return nil, apperrors.NewBadRequestError("No schema defined for collection: " + collection)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetJob(ctx, collection, id)
}

func (s *JobService) DeleteJob(ctx context.Context, collection, id string) error {
	if err := s.jobRepo.DeleteByID(collection, id); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrJobNotFound):
			return apperrors.NotFound("job", "Document with ID "+id+" not found")
		case apperrors.Is(err, repositories.ErrUnknownCollection):
			return apperrors.NewBadRequestError("No schema defined for collection: " + collection)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// splitList turns comma-separated free text into a trimmed sequence with
// empty entries dropped: "Go, SQL, " -> ["Go", "SQL"].
func splitList(raw string) datatypes.JSONSlice[string] {
	parts := strings.Split(raw, ",")
	items := datatypes.JSONSlice[string]{}
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func removeJob(jobs datatypes.JSONSlice[models.Job], jobID string) datatypes.JSONSlice[models.Job] {
	kept := datatypes.JSONSlice[models.Job]{}
	for _, job := range jobs {
		if job.ID != jobID {
			kept = append(kept, job)
		}
	}
	return kept
}
