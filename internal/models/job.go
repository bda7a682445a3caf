package models

import "gorm.io/datatypes"

type SalaryRange struct {
	MinSalary float64 `json:"minSalary"`
	MaxSalary float64 `json:"maxSalary"`
}

// Job is one posting. The same model backs both the pending_jobs and
// published_jobs tables; the repository picks the table per sub-collection.
// The struct also serializes as-is into the employer's publishedJobs and
// pendingJobs mirrors.
type Job struct {
	BaseModel
	JobName         string                      `json:"jobName"`
	JobType         string                      `json:"jobType"`
	SalaryRange     SalaryRange                 `gorm:"embedded" json:"salaryRange"`
	Location        string                      `json:"location"`
	ExperienceLevel string                      `json:"experienceLevel"`
	Qualifications  datatypes.JSONSlice[string] `json:"qualifications"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`

	Responsibilities   datatypes.JSONSlice[string] `json:"responsibilities"`
	CompanyName        string                      `json:"companyName"`
	CompanyDescription string                      `json:"companyDescription"`
	Website            string                      `json:"website"`
	CompanyEmail       string                      `json:"companyEmail"`
	CompanyPhoneNumber string                      `json:"companyPhoneNumber"`

	// Opaque date-like strings, stored exactly as entered.
	PostedDate          string `json:"postedDate"`
	ApplicationDeadline string `json:"applicationDeadline"`

	EmploymentBenefits datatypes.JSONSlice[string]     `json:"employmentBenefits"`
	WorkSchedule       string                          `json:"workSchedule"`
	Tags               datatypes.JSONSlice[string]     `json:"tags"`
	EmployerID         string                          `gorm:"index" json:"employerId"`
	Applicants         datatypes.JSONSlice[AppliedJob] `json:"applicants"`
}
