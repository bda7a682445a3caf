package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LJMarquez/talentlink-backend/internal/models"
	"github.com/LJMarquez/talentlink-backend/internal/repositories"
	"github.com/LJMarquez/talentlink-backend/internal/services"
	"github.com/LJMarquez/talentlink-backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type memAccountRepo struct {
	users map[string]*models.User
}

func (f *memAccountRepo) copy(u *models.User) *models.User {
	raw, _ := json.Marshal(u)
	var c models.User
	_ = json.Unmarshal(raw, &c)
	c.PasswordHash = u.PasswordHash
	return &c
}

func (f *memAccountRepo) Create(user *models.User) error {
	user.Email = repositories.NormalizeEmail(user.Email)
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = f.copy(user)
	return nil
}

func (f *memAccountRepo) FindByID(id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return f.copy(user), nil
}

func (f *memAccountRepo) FindByEmail(email string) (*models.User, error) {
	email = repositories.NormalizeEmail(email)
	for _, user := range f.users {
		if user.Email == email {
			return f.copy(user), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *memAccountRepo) Update(userID string, fields map[string]interface{}) error {
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
		}
	}
	return nil
}

func (f *memAccountRepo) Delete(userID string) error {
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *memAccountRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *f.copy(user))
	}
	return out, nil
}

type memJobRepo struct {
	collections map[string]map[string]*models.Job
}

func (f *memJobRepo) table(collection string) (map[string]*models.Job, error) {
	jobs, ok := f.collections[collection]
	if !ok {
		return nil, repositories.ErrUnknownCollection
	}
	return jobs, nil
}

func (f *memJobRepo) Create(collection string, job *models.Job) error {
	jobs, err := f.table(collection)
	if err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	raw, _ := json.Marshal(job)
	var c models.Job
	_ = json.Unmarshal(raw, &c)
	jobs[job.ID] = &c
	return nil
}

func (f *memJobRepo) FindByID(collection, id string) (*models.Job, error) {
	jobs, err := f.table(collection)
	if err != nil {
		return nil, err
	}
	job, ok := jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (f *memJobRepo) Update(collection, id string, fields map[string]interface{}) error {
	jobs, err := f.table(collection)
	if err != nil {
		return err
	}
	if _, ok := jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	return nil
}

func (f *memJobRepo) DeleteByID(collection, id string) error {
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

func (f *memJobRepo) FindAll(collection string) ([]models.Job, error) {
	jobs, err := f.table(collection)
	if err != nil {
		return nil, err
	}
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, *job)
	}
	return out, nil
}

type fixture struct {
	router      *gin.Engine
	accountRepo *memAccountRepo
	jobRepo     *memJobRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accountRepo := &memAccountRepo{users: make(map[string]*models.User)}
	jobRepo := &memJobRepo{collections: map[string]map[string]*models.Job{
		models.CollectionPendingJobs:   {},
		models.CollectionPublishedJobs: {},
	}}

	container := services.NewServiceContainer(accountRepo, jobRepo)
	base := NewBaseHandler(validator.New())

	router := gin.New()
	root := router.Group("")
	NewAccountHandler(base, container.AccountService).RegisterRoutes(root)
	NewApplicationHandler(base, container.ApplicationService).RegisterRoutes(root)
	NewJobHandler(base, container.JobService).RegisterRoutes(root)
	NewDebugHandler(base, container.AccountService, container.JobService).RegisterRoutes(root)

	return &fixture{router: router, accountRepo: accountRepo, jobRepo: jobRepo}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedUser(t *testing.T, email, password string, isEmployer bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Email:         email,
		PasswordHash:  string(hash),
		IsEmployer:    isEmployer,
		AppliedJobs:   datatypes.JSONSlice[models.AppliedJob]{},
		PublishedJobs: datatypes.JSONSlice[models.Job]{},
		PendingJobs:   datatypes.JSONSlice[models.Job]{},
		Notifications: datatypes.JSONSlice[models.Notification]{},
	}
	require.NoError(t, f.accountRepo.Create(user))
	return user
}

func TestRoutes_UnknownStoreRejected(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/find/WrongDB/users", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/find/TalentLinkDB/secrets", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No schema defined for collection: secrets")
}

func TestSignUp_CreatesAndRejectsDuplicate(t *testing.T) {
	f := newFixture(t)
	body := map[string]interface{}{
		"firstName": "Dana",
		"email":     "dana@example.com",
		"password":  "hunter2",
	}

	rec := f.do(t, http.MethodPost, "/sign-up/TalentLinkDB/users", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"dana@example.com"`)
	assert.NotContains(t, rec.Body.String(), "hunter2")

	rec = f.do(t, http.MethodPost, "/sign-up/TalentLinkDB/users", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with the same email already exists")
}

func TestSignUp_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/sign-up/TalentLinkDB/users", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetrieveUser_LegacyFailureShape(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "dana@example.com", "pw", false)

	rec := f.do(t, http.MethodGet, "/retrieve-user/TalentLinkDB/users/"+user.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/retrieve-user/TalentLinkDB/users/missing", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with ID missing not found")
}

func TestLogIn_ReturnsIDOnly(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "dana@example.com", "hunter2", false)

	rec := f.do(t, http.MethodGet, "/log-in/TalentLinkDB/users/dana@example.com/hunter2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var id string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	assert.Equal(t, user.ID, id)

	rec = f.do(t, http.MethodGet, "/log-in/TalentLinkDB/users/dana@example.com/wrong", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found or password is incorrect")
}

func TestPostJob_ReturnsNewJob(t *testing.T) {
	f := newFixture(t)
	employer := f.seedUser(t, "hr@acme.example.com", "pw", true)

	rec := f.do(t, http.MethodPost, "/post-job/TalentLinkDB/pending_jobs", map[string]interface{}{
		"employerId": employer.ID,
		"jobName":    "Backend Engineer",
		"skills":     "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		NewJob models.Job `json:"newJob"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.NewJob.ID)
	assert.Equal(t, []string{"Go", "SQL"}, []string(resp.NewJob.Skills))
}

func TestApprovePendingJob_RequiresDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/approve-pending-job/TalentLinkDB/pending_jobs", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request body must contain a document")
}

func TestRejectPendingJob_Flow(t *testing.T) {
	f := newFixture(t)
	employer := f.seedUser(t, "hr@acme.example.com", "pw", true)

	rec := f.do(t, http.MethodPost, "/post-job/TalentLinkDB/pending_jobs", map[string]interface{}{
		"employerId": employer.ID,
		"jobName":    "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		NewJob models.Job `json:"newJob"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = f.do(t, http.MethodDelete,
		"/reject-pending-job/TalentLinkDB/pending_jobs/"+resp.NewJob.ID+"/"+employer.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted successfully")

	rec = f.do(t, http.MethodDelete,
		"/reject-pending-job/TalentLinkDB/pending_jobs/"+resp.NewJob.ID+"/"+employer.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugInsertAndFind(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/insert/TalentLinkDB/published_jobs", map[string]interface{}{
		"document": map[string]interface{}{
			"jobName":    "Seeded Job",
			"employerId": "emp-1",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Document inserted successfully")

	rec = f.do(t, http.MethodGet, "/find/TalentLinkDB/published_jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seeded Job")
}

func TestDebugInsertRequiresDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/insert/TalentLinkDB/users", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "'document' or 'documents'")
}
