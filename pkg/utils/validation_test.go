package utils

import (
	"testing"
)

type sampleSignUp struct {
	Username string `validate:"required,max=50"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleSignUp{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStruct_FieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleSignUp{
		Username: "",
		Email:    "not-an-email",
		Password: "short",
	})

	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	if errs["Username"] != "This field is required" {
		t.Errorf("Username: got %q", errs["Username"])
	}
	if errs["Email"] != "Invalid email format" {
		t.Errorf("Email: got %q", errs["Email"])
	}
	if errs["Password"] != "Minimum length is 8" {
		t.Errorf("Password: got %q", errs["Password"])
	}
}
