package models

import "time"

// StatusUnderReview is the initial status of every application.
const StatusUnderReview = "Under Review"

// AppliedJob is the denormalized application snapshot: the job's fields at
// application time plus the applicant's fields. One copy lives in the
// applicant's appliedJobs, one in the employer's publishedJobs[i].applicants;
// updateApplicationStatus must keep their applicationStatus equal.
type AppliedJob struct {
	// Job snapshot
	JobID               string      `json:"jobId"`
	JobName             string      `json:"jobName"`
	Location            string      `json:"location"`
	CompanyName         string      `json:"companyName"`
	CompanyDescription  string      `json:"companyDescription"`
	Website             string      `json:"website"`
	CompanyEmail        string      `json:"companyEmail"`
	CompanyPhoneNumber  string      `json:"companyPhoneNumber"`
	JobType             string      `json:"jobType"`
	SalaryRange         SalaryRange `json:"salaryRange"`
	Qualifications      []string    `json:"qualifications"`
	Skills              []string    `json:"skills"`
	Responsibilities    []string    `json:"responsibilities"`
	PostedDate          string      `json:"postedDate"`
	ApplicationDeadline string      `json:"applicationDeadline"`
	EmploymentBenefits  []string    `json:"employmentBenefits"`
	WorkSchedule        string      `json:"workSchedule"`

	// Applicant snapshot
	UserID            string   `json:"userId"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	School            string   `json:"school"`
	GraduationDate    string   `json:"graduationDate"`
	LanguageList      []string `json:"languageList"`
	JobRole           string   `json:"jobRole"`
	Major             string   `json:"major"`
	WorkAuthorization string   `json:"workAuthorization"`
	ExperienceLevel   string   `json:"experienceLevel"`
	AboutMe           string   `json:"aboutMe"`
	Comments          string   `json:"comments"`

	DateApplied       time.Time `json:"dateApplied"`
	ApplicationStatus string    `json:"applicationStatus"`
}

// Notification is one entry in a user's notifications array, newest first.
// Type carries the application status that triggered it.
type Notification struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	JobTitle string    `json:"jobTitle"`
	Company  string    `json:"company"`
	Date     time.Time `json:"date"`
}
