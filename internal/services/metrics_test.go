package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestSubmissionResult(t *testing.T) {
	cases := map[string]error{
		"ok":        nil,
		"invalid":   invalid("signature", "is required"),
		"rejected":  &WriteError{Form: WaiverFormType, Err: errors.New("disk full")},
		"duplicate": fmt.Errorf("wrapped: %w", ErrAlreadySubmitted),
		"error":     errors.New("boom"),
	}
	for want, err := range cases {
		if got := submissionResult(err); got != want {
			t.Errorf("submissionResult(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestToIdentity(t *testing.T) {
	user := map[string]any{
		"id":          "u1",
		"email":       "ana@x.com",
		"given_name":  "Ana",
		"roles":       []string{"user"},
		"signup_type": "basic_auth",
	}
	identity, err := toIdentity(user)
	if err != nil {
		t.Fatalf("toIdentity failed: %v", err)
	}
	if identity.ID != "u1" || identity.GivenName != "Ana" || len(identity.Roles) != 1 {
		t.Errorf("Unexpected identity: %+v", identity)
	}

	if _, err := toIdentity(map[string]any{"email": "x@x.com"}); err == nil {
		t.Error("Expected error for a user without an id")
	}
}

func TestStoreFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("table missing")
	err := &StoreFetchError{Sources: []SourceError{{Source: "Parent Form", Err: cause}}}
	if !errors.Is(err, cause) {
		t.Error("Expected StoreFetchError to unwrap to its source error")
	}
}
