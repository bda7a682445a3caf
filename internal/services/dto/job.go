package dto

// PostJobRequest creates a pending job. qualifications, skills,
// responsibilities and employmentBenefits arrive as comma-separated free text
// and are split into trimmed, empty-filtered sequences.
type PostJobRequest struct {
	EmployerID          string   `json:"employerId" validate:"required"`
	JobName             string   `json:"jobName" validate:"required"`
	JobType             string   `json:"jobType"`
	MinSalary           float64  `json:"minSalary"`
	MaxSalary           float64  `json:"maxSalary"`
	Location            string   `json:"location"`
	ExperienceLevel     string   `json:"experienceLevel"`
	Qualifications      string   `json:"qualifications"`
	Skills              string   `json:"skills"`
	Responsibilities    string   `json:"responsibilities"`
	EmploymentBenefits  string   `json:"employmentBenefits"`
	CompanyName         string   `json:"companyName"`
	CompanyDescription  string   `json:"companyDescription"`
	Website             string   `json:"website"`
	CompanyEmail        string   `json:"companyEmail"`
	CompanyPhoneNumber  string   `json:"companyPhoneNumber"`
	ApplicationDeadline string   `json:"applicationDeadline"`
	WorkSchedule        string   `json:"workSchedule"`
	Tags                []string `json:"tags"`
}
