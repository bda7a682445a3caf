package services

import (
	"context"

	"github.com/LJMarquez/talentlink-backend/internal/logger"
	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/repositories"
	"github.com/LJMarquez/talentlink-backend/internal/services/dto"
	"github.com/LJMarquez/talentlink-backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// SignUp creates a new account. The password is stored as a bcrypt hash;
// plaintext never reaches the repository.
func (s *AccountService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		School:         req.School,
		GraduationYear: req.GraduationYear,
		Major:          req.Major,
		Company:        req.Company,
		Position:       req.Position,
		CompanySize:    req.CompanySize,
		Email:          req.Email,
		PasswordHash:   string(hash),
		IsEmployer:     req.IsEmployer,
		IsAdmin:        req.IsAdmin,
		AppliedJobs:    datatypes.JSONSlice[models.AppliedJob]{},
		PublishedJobs:  datatypes.JSONSlice[models.Job]{},
		PendingJobs:    datatypes.JSONSlice[models.Job]{},
		Notifications:  datatypes.JSONSlice[models.Notification]{},
	}

	if err := s.accountRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "account created", "user_id", user.ID, "is_employer", user.IsEmployer)
	return user, nil
}

// LogIn checks credentials and returns the matching account id only.
func (s *AccountService) LogIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return user.ID, nil
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.accountRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("account", "User with ID "+id+" not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AccountService) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if err := s.accountRepo.Update(id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("account", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetUser(ctx, id)
}

func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.accountRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("account", "Document with ID "+id+" not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.accountRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// CreateUser inserts a caller-shaped document, used by the debug surface.
func (s *AccountService) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.accountRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}
	return nil
}
