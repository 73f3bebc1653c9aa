package responses

type University struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DomainPatterns []string `json:"domainPatterns"`
	AdminEmail     string   `json:"adminEmail,omitempty"`
}
