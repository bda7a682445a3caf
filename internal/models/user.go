package models

import "gorm.io/datatypes"

// User is one document in the account store. Job seekers and employers share
// the shape; the role flags and the profile fields tell them apart. The four
// JSON columns are the embedded arrays the workflows keep denormalized copies
// in.
type User struct {
	BaseModel
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsEmployer   bool   `gorm:"default:false" json:"isEmployer"`
	IsAdmin      bool   `json:"isAdmin"`

	// Student profile
	School         string `json:"school"`
	GraduationYear int    `json:"graduationYear"`
	Major          string `json:"major"`

	// Employer profile
	Company     string `json:"company"`
	Position    string `json:"position"`
	CompanySize string `json:"companySize"`

	// appliedJobs keeps application order; notifications keeps newest first.
	AppliedJobs   datatypes.JSONSlice[AppliedJob]   `json:"appliedJobs"`
	PublishedJobs datatypes.JSONSlice[Job]          `json:"publishedJobs"`
	PendingJobs   datatypes.JSONSlice[Job]          `json:"pendingJobs"`
	Notifications datatypes.JSONSlice[Notification] `json:"notifications"`
}
