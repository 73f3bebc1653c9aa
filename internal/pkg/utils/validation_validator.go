package utils

import (
	"regexp"

	"campuscare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("isodate", validateISODate)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClock(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexClockHHMM).MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}

var weekdayNames = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdayNames[fl.Field().String()]
}
