package services

import (
	"encoding/json"

	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory stores standing in for the gorm-backed repositories. Reads hand
// out deep copies so a caller mutating a returned document cannot touch the
// stored one, matching what a real round-trip through the database gives.

type fakeAccountRepo struct {
	users map[string]*models.User
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	raw, _ := json.Marshal(u)
	var c models.User
	_ = json.Unmarshal(raw, &c)
	// PasswordHash is excluded from JSON, carry it over by hand.
	c.PasswordHash = u.PasswordHash
	return &c
}

func (f *fakeAccountRepo) Create(user *models.User) error {
	user.Email = repositories.NormalizeEmail(user.Email)
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = copyUser(user)
	return nil
}

func (f *fakeAccountRepo) FindByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (f *fakeAccountRepo) FindByEmail(email string) (*models.User, error) {
	email = repositories.NormalizeEmail(email)
	for _, user := range f.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeAccountRepo) Update(userID string, fields map[string]interface{}) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for key, value := range fields {
		switch key {
		case "applied_jobs":
			user.AppliedJobs = value.(datatypes.JSONSlice[models.AppliedJob])
		case "published_jobs":
			user.PublishedJobs = value.(datatypes.JSONSlice[models.Job])
		case "pending_jobs":
			user.PendingJobs = value.(datatypes.JSONSlice[models.Job])
		case "notifications":
			user.Notifications = value.(datatypes.JSONSlice[models.Notification])
		case "first_name":
			user.FirstName = value.(string)
		case "major":
			user.Major = value.(string)
		}
	}
	f.users[userID] = copyUser(user)
	return nil
}

func (f *fakeAccountRepo) Delete(userID string) error {
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeAccountRepo) FindAll() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *copyUser(user))
	}
	return users, nil
}

type fakeJobRepo struct {
	collections map[string]map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{collections: map[string]map[string]*models.Job{
		models.CollectionPendingJobs:   {},
		models.CollectionPublishedJobs: {},
	}}
}

func copyJob(j *models.Job) *models.Job {
	raw, _ := json.Marshal(j)
	var c models.Job
	_ = json.Unmarshal(raw, &c)
	return &c
}

func (f *fakeJobRepo) table(collection string) (map[string]*models.Job, error) {
	jobs, ok := f.collections[collection]
	if !ok {
		return nil, repositories.ErrUnknownCollection
	}
	return jobs, nil
}

func (f *fakeJobRepo) Create(collection string, job *models.Job) error {
	jobs, err := f.table(collection)
	if err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	jobs[job.ID] = copyJob(job)
	return nil
}

func (f *fakeJobRepo) FindByID(collection, id string) (*models.Job, error) {
	jobs, err := f.table(collection)
	if err != nil {
		return nil, err
	}
	job, ok := jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return copyJob(job), nil
}

func (f *fakeJobRepo) Update(collection, id string, fields map[string]interface{}) error {
	jobs, err := f.table(collection)
	if err != nil {
		return err
	}
	job, ok := jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	for key, value := range fields {
		switch key {
		case "job_name":
			job.JobName = value.(string)
		case "location":
			job.Location = value.(string)
		}
	}
	return nil
}

func (f *fakeJobRepo) DeleteByID(collection, id string) error {
	jobs, err := f.table(collection)
	if err != nil {
		return err
	}
	if _, ok := jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(jobs, id)
	return nil
}

func (f *fakeJobRepo) FindAll(collection string) ([]models.Job, error) {
	jobs, err := f.table(collection)
	if err != nil {
		return nil, err
	}
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, *copyJob(job))
	}
	return out, nil
}
