package models

type University struct {
	ID             string   `json:"id" bson:"_id,omitempty"`
	Name           string   `json:"name" bson:"name"`
	DomainPatterns []string `json:"domainPatterns" bson:"domainPatterns"`
	AdminEmail     string   `json:"adminEmail,omitempty" bson:"adminEmail,omitempty"`
	TimeModel      `bson:",inline"`
}
