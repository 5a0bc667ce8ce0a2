package validation

import (
	"errors"
	"testing"

	"assist-backend/dto"
)

func validForm() *dto.NewRequest {
	return &dto.NewRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		Email:     "jane@example.com",
		Immediacy: "5",
		Needs:     map[string]bool{"grocery-pickup": true},
	}
}

func TestValidateNewRequestAccepts(t *testing.T) {
	if err := ValidateNewRequest(validForm()); err != nil {
		t.Fatalf("expected valid form to pass, got %v", err)
	}
}

func TestValidateNewRequestFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.NewRequest)
		field   string
		message string
	}{
		{
			name:    "missing first name",
			mutate:  func(r *dto.NewRequest) { r.FirstName = "" },
			field:   "firstName",
			message: "Required",
		},
		{
			name:    "whitespace-only last name",
			mutate:  func(r *dto.NewRequest) { r.LastName = "   " },
			field:   "lastName",
			message: "Required",
		},
		{
			name:    "single-character first name",
			mutate:  func(r *dto.NewRequest) { r.FirstName = "J" },
			field:   "firstName",
			message: "Too Short",
		},
		{
			name:    "single-character phone",
			mutate:  func(r *dto.NewRequest) { r.Phone = "5" },
			field:   "phone",
			message: "Too Short",
		},
		{
			name:    "malformed email",
			mutate:  func(r *dto.NewRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: "Must be a valid email",
		},
		{
			name:    "missing immediacy",
			mutate:  func(r *dto.NewRequest) { r.Immediacy = "" },
			field:   "immediacy",
			message: "Please select the immediacy.",
		},
		{
			name:    "immediacy outside the known codes",
			mutate:  func(r *dto.NewRequest) { r.Immediacy = "7" },
			field:   "immediacy",
			message: "Please select the immediacy.",
		},
		{
			name:    "non-numeric immediacy",
			mutate:  func(r *dto.NewRequest) { r.Immediacy = "high" },
			field:   "immediacy",
			message: "Please select the immediacy.",
		},
		{
			name:    "no needs selected",
			mutate:  func(r *dto.NewRequest) { r.Needs = map[string]bool{} },
			field:   "needs",
			message: "Please select at least one support need.",
		},
		{
			name:    "all needs unchecked",
			mutate:  func(r *dto.NewRequest) { r.Needs = map[string]bool{"grocery-pickup": false} },
			field:   "needs",
			message: "Please select at least one support need.",
		},
		{
			name:    "unknown need category",
			mutate:  func(r *dto.NewRequest) { r.Needs = map[string]bool{"time-travel": true} },
			field:   "needs",
			message: "Unknown support need: time-travel",
		},
		{
			name:    "unparsable financial assistance flag",
			mutate:  func(r *dto.NewRequest) { r.NeedFinancialAssistance = "maybe" },
			field:   "needFinancialAssistance",
			message: "Must be true or false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			err := ValidateNewRequest(form)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if got := ve.Fields[tt.field]; got != tt.message {
				t.Errorf("field %q: got %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestValidateNewRequestAcceptsEveryImmediacy(t *testing.T) {
	for _, code := range []string{"1", "5", "10"} {
		form := validForm()
		form.Immediacy = code
		if err := ValidateNewRequest(form); err != nil {
			t.Errorf("immediacy %q: unexpected error %v", code, err)
		}
	}
}

func TestValidateNewRequestOptionalFields(t *testing.T) {
	form := validForm()
	form.Email = ""
	form.OtherDetails = ""
	form.NeedFinancialAssistance = ""
	if err := ValidateNewRequest(form); err != nil {
		t.Fatalf("optional fields left empty should pass, got %v", err)
	}
}

func TestValidateNewRequestCollectsAllFields(t *testing.T) {
	err := ValidateNewRequest(&dto.NewRequest{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"firstName", "lastName", "phone", "immediacy", "needs"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected an error for %q, got none", field)
		}
	}
	if ve.Error() == "" {
		t.Error("Error() should describe the failing fields")
	}
}
