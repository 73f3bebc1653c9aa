package responses

type Login struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Signup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateUniversityAdmin struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	University string `json:"university"`
}
