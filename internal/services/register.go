package services

import (
	"context"
	"log"
	"net/mail"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// passwordSpecials are the characters that satisfy the special character rule
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// RegisterInput is the self-service registration payload
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResult reports the created account; UserID is empty until the email is verified
type RegisterResult struct {
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email"`
}

// ValidatePassword applies the registration password policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return invalid("password", "must be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return invalid("password", "must contain at least one number")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return invalid("password", "must contain at least one special character")
	}
	return nil
}

// Validate checks the registration payload locally
func (in RegisterInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return invalid("email", "is not a valid address")
	}
	return ValidatePassword(in.Password)
}

// RegisterParticipant creates an account and its profile.
// Validation and the duplicate email check run before the provider is called.
func RegisterParticipant(ctx context.Context, db *gorm.DB, idp IdentityProvider, in RegisterInput) (RegisterResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := in.Validate(); err != nil {
		return RegisterResult{}, err
	}

	taken, err := EmailRegistered(ctx, db, in.Email)
	if err != nil {
		return RegisterResult{}, err
	}
	if taken {
		return RegisterResult{}, invalid("email", "this email is already registered, please use a different email or login")
	}

	identity, err := idp.SignUp(ctx, SignUpInput{Name: in.Name, Email: in.Email, Password: in.Password})
	if err != nil {
		return RegisterResult{}, &WriteError{Form: "Registration", Err: err}
	}

	result := RegisterResult{Email: in.Email}
	if identity == nil {
		// profile is created on the first authenticated request instead
		log.Printf("Registered %s pending verification", in.Email)
		return result, nil
	}

	if identity.Email == "" {
		identity.Email = in.Email
	}
	if err := createProfile(ctx, db, identity, in.Name); err != nil {
		return RegisterResult{}, &WriteError{Form: "Profile", Err: err}
	}

	result.UserID = identity.ID
	return result, nil
}
