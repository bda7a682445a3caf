package dto

// SignUpRequest carries both student and employer profile fields; the role
// flags decide which ones are meaningful.
type SignUpRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	School         string `json:"school"`
	GraduationYear int    `json:"graduationYear"`
	Major          string `json:"major"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	CompanySize    string `json:"companySize"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	IsEmployer     bool   `json:"isEmployer"`
	IsAdmin        bool   `json:"isAdmin"`
}
