package dto

// ApplyRequest is the applicant-supplied half of an application snapshot; the
// job half is copied from the published job at submission time.
type ApplyRequest struct {
	UserID            string   `json:"userId" validate:"required"`
	JobID             string   `json:"jobId" validate:"required"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	School            string   `json:"school"`
	GraduationDate    string   `json:"graduationDate"`
	LanguageList      []string `json:"languageList"`
	JobRole           string   `json:"jobRole"`
	WorkAuthorization string   `json:"workAuthorization"`
	ExperienceLevel   string   `json:"experienceLevel"`
	AboutMe           string   `json:"aboutMe"`
	Comments          string   `json:"comments"`
}

// UpdateStatusRequest changes an application's status. NewStatus is accepted
// verbatim; it becomes both the stored status and the notification type.
type UpdateStatusRequest struct {
	UserID    string `json:"userId" validate:"required"`
	JobID     string `json:"jobId" validate:"required"`
	NewStatus string `json:"newStatus" validate:"required"`
}
