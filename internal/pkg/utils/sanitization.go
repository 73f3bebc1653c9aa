package utils

import (
	"strings"

	"campuscare-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Hospital = strings.TrimSpace(input.Hospital)
	input.AvailabilityType = strings.ToLower(strings.TrimSpace(input.AvailabilityType))
	input.Universities = cleanWhiteSpaceFromEachStringOfAnArray(input.Universities)
}

func SanitizeUpdateDoctorRequest(input *requests.UpdateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Hospital = strings.TrimSpace(input.Hospital)
	input.AvailabilityType = strings.ToLower(strings.TrimSpace(input.AvailabilityType))
	input.Universities = cleanWhiteSpaceFromEachStringOfAnArray(input.Universities)
}

func SanitizeCreateSessionRequest(input *requests.CreateSession) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateUniversityRequest(input *requests.CreateUniversity) {
	input.Name = strings.TrimSpace(input.Name)
	input.AdminEmail = strings.ToLower(strings.TrimSpace(input.AdminEmail))
	input.DomainPatterns = cleanWhiteSpaceFromEachStringOfAnArray(input.DomainPatterns)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
}
