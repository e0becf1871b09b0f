package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(emailErr, "users_email") {
		t.Error("23505 on users_email_key must match users_email")
	}
	if IsUniqueViolation(emailErr, "users_username") {
		t.Error("email constraint must not match username")
	}
	if !IsUniqueViolation(emailErr, "") {
		t.Error("empty constraint must match any unique violation")
	}

	// Wrapped errors still match
	wrapped := fmt.Errorf("create user: %w", emailErr)
	if !IsUniqueViolation(wrapped, "users_email") {
		t.Error("wrapped PgError must match")
	}

	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error"), "") {
		t.Error("non-pg error must not match")
	}
}
