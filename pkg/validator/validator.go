package validator

import (
	"regexp"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// First returns one error message for single-message form banners.
func (v ValidationErrors) First() string {
	for _, msg := range v {
		return msg
	}
	return ""
}

var nameRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")

const passwordSymbols = "!@#$%^&*"

func ValidateSignUp(firstName, lastName, username, email, password, confirmPassword string) ValidationErrors {
	errs := make(ValidationErrors)

	if firstName == "" || lastName == "" || username == "" || email == "" || password == "" || confirmPassword == "" {
		errs.Add("form", "Please add all the fields!")
		return errs
	}

	if !nameRegex.MatchString(strings.TrimSpace(firstName)) {
		errs.Add("firstName", "First name must contain only alphabet characters")
	}
	if !nameRegex.MatchString(strings.TrimSpace(lastName)) {
		errs.Add("lastName", "Last name must contain only alphabet characters")
	}

	validateUsername(username, errs)
	validateEmail(email, errs)
	validatePassword(password, errs)

	if password != confirmPassword {
		errs.Add("confirmPassword", "Passwords do not match")
	}

	return errs
}

func ValidateLogIn(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if email == "" || password == "" {
		errs.Add("form", "Please add all the fields!")
	}

	return errs
}

// ValidateProfileUpdate checks only the fields present in the update. Field
// names are the form names; whitelisting happens in the profile service.
func ValidateProfileUpdate(fields map[string]string) ValidationErrors {
	errs := make(ValidationErrors)

	for name, value := range fields {
		switch name {
		case "firstName":
			if !nameRegex.MatchString(strings.TrimSpace(value)) {
				errs.Add("firstName", "First name must contain only alphabet characters")
			}
		case "lastName":
			if !nameRegex.MatchString(strings.TrimSpace(value)) {
				errs.Add("lastName", "Last name must contain only alphabet characters")
			}
		case "userName":
			validateUsername(value, errs)
		case "email":
			validateEmail(value, errs)
		case "password":
			validatePassword(value, errs)
		}
	}

	return errs
}

func validateUsername(username string, errs ValidationErrors) {
	if len(username) < 6 || len(username) > 12 {
		errs.Add("userName", "Username should be between 6 and 12 characters")
	}
}

func validateEmail(email string, errs ValidationErrors) {
	if !emailRegex.MatchString(email) {
		errs.Add("email", "Please enter a valid email address")
	}
}

func validatePassword(password string, errs ValidationErrors) {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, ch):
			hasSymbol = true
		}
	}

	if len(password) < 8 || !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		errs.Add("password", "Your password must contain a minimum of 8 characters, with at least a symbol, upper and lower case letters and a number")
	}
}
