package requests

type CreateUniversity struct {
	Name           string   `json:"name" validate:"required,min=2,max=150"`
	DomainPatterns []string `json:"domainPatterns" validate:"required,min=1,dive,required"`
	AdminEmail     string   `json:"adminEmail" validate:"omitempty,email"`
}
