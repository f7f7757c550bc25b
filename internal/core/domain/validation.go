package domain

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Validation of request bodies is explicit, one function per input shape.
// Each returns nil or a *ValidationError listing every offending field.

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	idRegex    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

const (
	maxNameLen        = 30
	maxEmailLen       = 50
	maxPasswordLen    = 72 // bcrypt input limit
	maxCourseNameLen  = 100
	maxDescriptionLen = 500
	maxDurationHours  = 100
)

// IsValidEmail checks the basic shape of an email address.
func IsValidEmail(email string) bool {
	return len(email) <= maxEmailLen && emailRegex.MatchString(email)
}

// IsValidID checks if the string is a well-formed store identifier.
func IsValidID(id string) bool {
	return idRegex.MatchString(id)
}

// ValidateRegister checks a registration body.
func ValidateRegister(in RegisterInput) error {
	var fields []FieldError
	fields = appendNameChecks(fields, "fname", "First name", in.Fname)
	fields = appendNameChecks(fields, "lname", "Last name", in.Lname)

	if in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	} else if !IsValidEmail(NormalizeEmail(in.Email)) {
		fields = append(fields, FieldError{Field: "email", Message: "Email must be a valid address"})
	}

	switch {
	case in.Password == "":
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	case len(in.Password) > maxPasswordLen:
		fields = append(fields, FieldError{Field: "password", Message: fmt.Sprintf("Password must be at most %d bytes", maxPasswordLen)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateLogin checks a login body.
func ValidateLogin(in Credentials) error {
	var fields []FieldError
	if in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	}
	if in.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateCreateCourse checks a course creation body.
func ValidateCreateCourse(in CreateCourseInput) error {
	var fields []FieldError
	fields = appendCourseNameChecks(fields, in.Name)
	fields = appendDescriptionChecks(fields, in.Description)
	fields = appendDurationChecks(fields, in.Duration)

	if in.CreatedBy == "" {
		fields = append(fields, FieldError{Field: "createdBy", Message: "Created by is required"})
	} else if !IsValidID(in.CreatedBy) {
		fields = append(fields, FieldError{Field: "createdBy", Message: "Created by must be a valid identifier"})
	}
	if in.UpdatedBy == "" {
		fields = append(fields, FieldError{Field: "updatedBy", Message: "Updated by is required"})
	} else if !IsValidID(in.UpdatedBy) {
		fields = append(fields, FieldError{Field: "updatedBy", Message: "Updated by must be a valid identifier"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateUpdateCourse checks a partial course update body.
func ValidateUpdateCourse(in UpdateCourseInput) error {
	var fields []FieldError
	if in.Name != nil {
		fields = appendCourseNameChecks(fields, *in.Name)
	}
	if in.Description != nil {
		fields = appendDescriptionChecks(fields, *in.Description)
	}
	if in.Duration != nil {
		fields = appendDurationChecks(fields, *in.Duration)
	}
	if in.UpdatedBy != nil && !IsValidID(*in.UpdatedBy) {
		fields = append(fields, FieldError{Field: "updatedBy", Message: "Updated by must be a valid identifier"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func appendNameChecks(fields []FieldError, field, label, value string) []FieldError {
	switch {
	case value == "":
		fields = append(fields, FieldError{Field: field, Message: label + " is required"})
	case utf8.RuneCountInString(value) > maxNameLen:
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf("%s must be less than %d characters", label, maxNameLen)})
	}
	return fields
}

func appendCourseNameChecks(fields []FieldError, name string) []FieldError {
	if n := utf8.RuneCountInString(name); n < 1 || n > maxCourseNameLen {
		fields = append(fields, FieldError{Field: "name", Message: fmt.Sprintf("Name must be between 1 and %d characters", maxCourseNameLen)})
	}
	return fields
}

func appendDescriptionChecks(fields []FieldError, desc string) []FieldError {
	if n := utf8.RuneCountInString(desc); n < 1 || n > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: fmt.Sprintf("Description must be between 1 and %d characters", maxDescriptionLen)})
	}
	return fields
}

func appendDurationChecks(fields []FieldError, hours int) []FieldError {
	if hours < 1 || hours > maxDurationHours {
		fields = append(fields, FieldError{Field: "duration", Message: fmt.Sprintf("Duration must be between 1 and %d hours", maxDurationHours)})
	}
	return fields
}
