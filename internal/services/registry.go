package services

import (
	"github.com/LJMarquez/talentlink-backend/internal/repositories"
)

// ServiceContainer holds every service, constructed once at startup and
// handed to the handlers.
type ServiceContainer struct {
	AccountService     *AccountService
	ApplicationService *ApplicationService
	JobService         *JobService
}

func NewServiceContainer(accountRepo repositories.AccountRepository, jobRepo repositories.JobRepository) *ServiceContainer {
	return &ServiceContainer{
		AccountService:     NewAccountService(accountRepo),
		ApplicationService: NewApplicationService(accountRepo, jobRepo),
		JobService:         NewJobService(accountRepo, jobRepo),
	}
}
