package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels.
var FieldLabels = map[string]string{
	// Auth fields
	"Email":           "Email",
	"Password":        "Password",
	"CurrentPassword": "Current password",
	"NewPassword":     "New password",
	"Name":            "Name",
	"Role":            "Role",
	"CompanyName":     "Company name",

	// Job fields
	"Title":               "Job title",
	"Description":         "Description",
	"Location":            "Location",
	"Requirements":        "Requirements",
	"Skills":              "Skills",
	"SalaryMin":           "Minimum salary",
	"SalaryMax":           "Maximum salary",
	"JobType":             "Job type",
	"ApplicationDeadline": "Application deadline",

	// Profile fields
	"Headline":  "Headline",
	"Summary":   "Summary",
	"ResumeURL": "Resume URL",
	"LinkedIn":  "LinkedIn URL",
	"GitHub":    "GitHub URL",
	"Portfolio": "Portfolio URL",

	// Application fields
	"CoverLetter": "Cover letter",
	"Status":      "Status",
	"Note":        "Note",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", label, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, getFieldLabel(param))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
