package requests

type UpdateProfile struct {
	Name           string `json:"name" validate:"omitempty,min=2,max=100"`
	ProfilePicture string `json:"profilePicture,omitempty"`

	// Derived from ProfilePicture during controller validation.
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
	ProfilePictureURL       string `json:"-"`
}
