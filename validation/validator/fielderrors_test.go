package validator

import (
	"errors"
	"testing"

	v10 "github.com/go-playground/validator/v10"
)

type signupRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestFieldErrors(t *testing.T) {
	validate := v10.New()
	err := validate.Struct(signupRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	got := FieldErrors(err)
	if len(got) != 2 {
		t.Fatalf("expected 2 field errors, got %v", got)
	}
	if got["Name"] != "Name required" {
		t.Errorf("expected required message for Name, got %q", got["Name"])
	}
	if got["Email"] != "Email invalid" {
		t.Errorf("expected invalid message for Email, got %q", got["Email"])
	}
}

func TestFieldErrorsNil(t *testing.T) {
	if got := FieldErrors(nil); got != nil {
		t.Errorf("expected nil for nil error, got %v", got)
	}
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	if got := FieldErrors(errors.New("boom")); got != nil {
		t.Errorf("expected nil for non-validator error, got %v", got)
	}
}
