package repositories

import (
	"errors"
	"time"

	"github.com/LJMarquez/talentlink-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrUnknownCollection = errors.New("no schema defined for collection")
)

// JobRepository is the job store. Every operation is scoped to one of the two
// sub-collections (pending_jobs, published_jobs); any other name is rejected.
type JobRepository interface {
	Create(collection string, job *models.Job) error
	FindByID(collection, id string) (*models.Job, error)
	Update(collection, id string, fields map[string]interface{}) error
	DeleteByID(collection, id string) error
	FindAll(collection string) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) table(collection string) (*gorm.DB, error) {
	if !models.JobCollection(collection) {
		return nil, ErrUnknownCollection
	}
	return r.db.Table(collection), nil
}

func (r *JobRepositoryImpl) Create(collection string, job *models.Job) error {
	tx, err := r.table(collection)
	if err != nil {
		return err
	}
	return tx.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(collection, id string) (*models.Job, error) {
	tx, err := r.table(collection)
	if err != nil {
		return nil, err
	}
	var job models.Job
	if err := tx.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(collection, id string, fields map[string]interface{}) error {
	tx, err := r.table(collection)
	if err != nil {
		return err
	}

	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := tx.Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteByID(collection, id string) error {
	tx, err := r.table(collection)
	if err != nil {
		return err
	}
	result := tx.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindAll(collection string) ([]models.Job, error) {
	tx, err := r.table(collection)
	if err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := tx.Order("created_at").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
