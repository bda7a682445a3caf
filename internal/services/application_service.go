package services

import (
	"context"
	"time"

	"github.com/LJMarquez/talentlink-backend/internal/logger"
	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/repositories"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ApplicationService owns the dual-write choreography around job
// applications: every submission and every status change must land in two
// independent user documents (applicant and employer). The two writes run in a
// fixed order, applicant first; a failure after the first write is logged as a
// divergence so the mirrors can be reconciled by hand.
type ApplicationService struct {
	accountRepo repositories.AccountRepository
	jobRepo     repositories.JobRepository
}

func NewApplicationService(accountRepo repositories.AccountRepository, jobRepo repositories.JobRepository) *ApplicationService {
	return &ApplicationService{accountRepo: accountRepo, jobRepo: jobRepo}
}

// SubmitApplication builds the application snapshot and appends it to the
// applicant's appliedJobs and to the matching entry of the employer's
// publishedJobs.
func (s *ApplicationService) SubmitApplication(ctx context.Context, req *dto.ApplyRequest) (*models.AppliedJob, error) {
	user, err := s.accountRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("application", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	for _, applied := range user.AppliedJobs {
		if applied.JobID == req.JobID {
			return nil, apperrors.ErrAlreadyApplied
		}
	}

	job, err := s.jobRepo.FindByID(models.CollectionPublishedJobs, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	employer, err := s.accountRepo.FindByID(job.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("application", "Employer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	jobIdx := indexOfJob(employer.PublishedJobs, req.JobID)
	if jobIdx == -1 {
		return nil, apperrors.NotFound("application", "Employer's job not found")
	}

	snapshot := buildSnapshot(job, user, req)

	appliedJobs := append(user.AppliedJobs, snapshot)
	if err := s.accountRepo.Update(user.ID, map[string]interface{}{
		"applied_jobs": appliedJobs,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	employer.PublishedJobs[jobIdx].Applicants = append(employer.PublishedJobs[jobIdx].Applicants, snapshot)
	if err := s.accountRepo.Update(employer.ID, map[string]interface{}{
		"published_jobs": employer.PublishedJobs,
	}); err != nil {
		// First half of the dual write is already committed.
		logger.CtxError(ctx, "dual write diverged: applicant updated, employer mirror failed",
			"user_id", user.ID,
			"employer_id", employer.ID,
			"job_id", req.JobID,
			"error", err.Error(),
		)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "user_id", user.ID, "job_id", req.JobID)
	return &snapshot, nil
}

// UpdateApplicationStatus sets the status in both copies of the snapshot and
// prepends a notification to the applicant. The status string is stored
// verbatim. Returns the updated employer document.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, req *dto.UpdateStatusRequest) (*models.User, error) {
	user, err := s.accountRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("application", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(models.CollectionPublishedJobs, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	appIdx := -1
	for i := range user.AppliedJobs {
		if user.AppliedJobs[i].JobID == req.JobID {
			appIdx = i
			break
		}
	}
	if appIdx == -1 {
		return nil, apperrors.NotFound("application", "Application not found")
	}
	user.AppliedJobs[appIdx].ApplicationStatus = req.NewStatus

	notification := models.Notification{
		ID:       uuid.NewString(),
		Type:     req.NewStatus,
		JobTitle: job.JobName,
		Company:  job.CompanyName,
		Date:     time.Now(),
	}
	// Newest first.
	notifications := append(datatypes.JSONSlice[models.Notification]{notification}, user.Notifications...)

	if err := s.accountRepo.Update(user.ID, map[string]interface{}{
		"applied_jobs":  user.AppliedJobs,
		"notifications": notifications,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	employer, err := s.accountRepo.FindByID(job.EmployerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("application", "Employer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	jobIdx := indexOfJob(employer.PublishedJobs, req.JobID)
	if jobIdx == -1 {
		return nil, apperrors.NotFound("application", "Employer's job not found")
	}

	applicants := employer.PublishedJobs[jobIdx].Applicants
	applicantIdx := -1
	for i := range applicants {
		if applicants[i].UserID == req.UserID {
			applicantIdx = i
			break
		}
	}
	if applicantIdx == -1 {
		return nil, apperrors.NotFound("application", "Applicant not found")
	}
	employer.PublishedJobs[jobIdx].Applicants[applicantIdx].ApplicationStatus = req.NewStatus

	if err := s.accountRepo.Update(employer.ID, map[string]interface{}{
		"published_jobs": employer.PublishedJobs,
	}); err != nil {
		// The applicant's copy and notification are already committed.
		logger.CtxError(ctx, "dual write diverged: applicant status updated, employer mirror failed",
			"user_id", user.ID,
			"employer_id", employer.ID,
			"job_id", req.JobID,
			"new_status", req.NewStatus,
			"error", err.Error(),
		)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application status updated",
		"user_id", user.ID, "job_id", req.JobID, "new_status", req.NewStatus)
	return employer, nil
}

func indexOfJob(jobs []models.Job, jobID string) int {
	for i := range jobs {
		if jobs[i].ID == jobID {
			return i
		}
	}
	return -1
}

func buildSnapshot(job *models.Job, user *models.User, req *dto.ApplyRequest) models.AppliedJob {
	return models.AppliedJob{
		JobID:               job.ID,
		JobName:             job.JobName,
		Location:            job.Location,
		CompanyName:         job.CompanyName,
		CompanyDescription:  job.CompanyDescription,
		Website:             job.Website,
		CompanyEmail:        job.CompanyEmail,
		CompanyPhoneNumber:  job.CompanyPhoneNumber,
		JobType:             job.JobType,
		SalaryRange:         job.SalaryRange,
		Qualifications:      job.Qualifications,
		Skills:              job.Skills,
		Responsibilities:    job.Responsibilities,
		PostedDate:          job.PostedDate,
		ApplicationDeadline: job.ApplicationDeadline,
		EmploymentBenefits:  job.EmploymentBenefits,
		WorkSchedule:        job.WorkSchedule,

		UserID:            user.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		School:            req.School,
		GraduationDate:    req.GraduationDate,
		LanguageList:      req.LanguageList,
		JobRole:           req.JobRole,
		Major:             user.Major,
		WorkAuthorization: req.WorkAuthorization,
		ExperienceLevel:   req.ExperienceLevel,
		AboutMe:           req.AboutMe,
		Comments:          req.Comments,

		DateApplied:       time.Now(),
		ApplicationStatus: models.StatusUnderReview,
	}
}
