package requests

type Signup struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUniversityAdmin struct {
	UniversityID string `json:"universityId" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
}
