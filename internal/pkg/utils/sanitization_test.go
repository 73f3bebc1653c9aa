package utils

import (
	"testing"

	"campuscare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSignupRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Signup{
			Name:  "Asha",
			Email: "  ASHA@CAMPUS.EDU  ",
		}

		SanitizeSignupRequest(request)

		assert.Equal(t, "asha@campus.edu", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Name Trimmed", func(t *testing.T) {
		request := &requests.Signup{
			Name:  "  Asha Rao  ",
			Email: "asha@campus.edu",
		}

		SanitizeSignupRequest(request)

		assert.Equal(t, "Asha Rao", request.Name, "name should be trimmed")
	})
}

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	t.Run("Universities Trimmed", func(t *testing.T) {
		request := &requests.CreateDoctor{
			Name:         "Dr. Mehta",
			Email:        "mehta@clinic.org",
			Universities: []string{"  State University  ", "  City College  "},
		}

		SanitizeCreateDoctorRequest(request)

		expected := []string{"State University", "City College"}
		assert.Equal(t, expected, request.Universities, "universities should be trimmed")
	})

	t.Run("Availability Type Lowercased", func(t *testing.T) {
		request := &requests.CreateDoctor{
			Name:             "Dr. Mehta",
			Email:            "mehta@clinic.org",
			AvailabilityType: "  Both  ",
		}

		SanitizeCreateDoctorRequest(request)

		assert.Equal(t, "both", request.AvailabilityType, "availability type should be normalized")
	})
}

func TestSanitizeCreateUniversityRequest(t *testing.T) {
	request := &requests.CreateUniversity{
		Name:           "  State University  ",
		AdminEmail:     "  ADMIN@STATE.EDU ",
		DomainPatterns: []string{" state.edu ", " mail.state.edu "},
	}

	SanitizeCreateUniversityRequest(request)

	assert.Equal(t, "State University", request.Name)
	assert.Equal(t, "admin@state.edu", request.AdminEmail)
	assert.Equal(t, []string{"state.edu", "mail.state.edu"}, request.DomainPatterns)
}
