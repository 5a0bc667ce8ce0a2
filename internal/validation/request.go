// Package validation checks submitted request forms and returns per-field
// error messages matching what the form renders next to each input.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"assist-backend/dto"
	"assist-backend/internal/models"
)

const minFieldLength = 2

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// ValidateNewRequest applies the request-form schema: required names and
// phone with a minimum length, optional well-formed email, a known immediacy
// code, and at least one known support-need category.
func ValidateNewRequest(req *dto.NewRequest) error {
	errs := make(map[string]string)

	checkLength(errs, "firstName", req.FirstName)
	checkLength(errs, "lastName", req.LastName)
	checkLength(errs, "phone", req.Phone)

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			errs["email"] = "Must be a valid email"
		}
	}

	if strings.TrimSpace(req.Immediacy) == "" {
		errs["immediacy"] = "Please select the immediacy."
	} else if req.ParsedImmediacy() == 0 {
		errs["immediacy"] = "Please select the immediacy."
	}

	selected := req.SelectedNeeds()
	if len(selected) == 0 {
		errs["needs"] = "Please select at least one support need."
	} else {
		for _, key := range selected {
			if !models.IsActiveCategory(key) {
				errs["needs"] = fmt.Sprintf("Unknown support need: %s", key)
				break
			}
		}
	}

	if req.NeedFinancialAssistance != "" {
		switch strings.ToLower(req.NeedFinancialAssistance) {
		case "true", "false":
		default:
			errs["needFinancialAssistance"] = "Must be true or false"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func checkLength(errs map[string]string, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = "Required"
	} else if len(trimmed) < minFieldLength {
		errs[field] = "Too Short"
	}
}
