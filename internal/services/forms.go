package services

import (
	"context"
	"strings"
	"time"

	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/gorm"
)

// WaiverAcceptance is the only agreement value that accepts the waiver
const WaiverAcceptance = "agree"

// ParentFormInput is the parent form payload
type ParentFormInput struct {
	ParentName       string `json:"parent_name"`
	ContactNumber    string `json:"contact_number"`
	EmergencyContact string `json:"emergency_contact"`
}

// AttendeeFormInput is the attendee form payload
type AttendeeFormInput struct {
	AttendeeName        string  `json:"attendee_name"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
}

// WaiverFormInput is the waiver form payload; WaiverAgreement must be "agree"
type WaiverFormInput struct {
	WaiverAgreement string `json:"waiver_agreement"`
	Signature       string `json:"signature"`
}

// SubmitResult identifies the inserted row
type SubmitResult struct {
	FormType  FormType  `json:"form_type"`
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the parent form locally
func (in ParentFormInput) Validate() error {
	if strings.TrimSpace(in.ParentName) == "" {
		return invalid("parent_name", "is required")
	}
	if strings.TrimSpace(in.ContactNumber) == "" {
		return invalid("contact_number", "is required")
	}
	if strings.TrimSpace(in.EmergencyContact) == "" {
		return invalid("emergency_contact", "is required")
	}
	return nil
}

// Validate checks the attendee form locally
func (in AttendeeFormInput) Validate() error {
	if strings.TrimSpace(in.AttendeeName) == "" {
		return invalid("attendee_name", "is required")
	}
	return nil
}

// Validate checks the waiver form locally
func (in WaiverFormInput) Validate() error {
	if in.WaiverAgreement != WaiverAcceptance {
		return invalid("waiver_agreement", "you must agree to the waiver terms to continue")
	}
	if strings.TrimSpace(in.Signature) == "" {
		return invalid("signature", "is required")
	}
	return nil
}

// SubmitParentForm stores the caller's parent form
func SubmitParentForm(ctx context.Context, db *gorm.DB, caller *Identity, in ParentFormInput) (SubmitResult, error) {
	return submit(ctx, db, caller, ParentFormType, in.Validate, func(userID string) *models.ParentForm {
		return &models.ParentForm{
			UserID:           userID,
			ParentName:       strings.TrimSpace(in.ParentName),
			ContactNumber:    strings.TrimSpace(in.ContactNumber),
			EmergencyContact: strings.TrimSpace(in.EmergencyContact),
		}
	}, func(row *models.ParentForm) (uint64, time.Time) { return row.ID, row.CreatedAt })
}

// SubmitAttendeeForm stores the caller's attendee form
func SubmitAttendeeForm(ctx context.Context, db *gorm.DB, caller *Identity, in AttendeeFormInput) (SubmitResult, error) {
	return submit(ctx, db, caller, AttendeeFormType, in.Validate, func(userID string) *models.AttendeeForm {
		return &models.AttendeeForm{
			UserID:              userID,
			AttendeeName:        strings.TrimSpace(in.AttendeeName),
			DietaryRestrictions: optionalText(in.DietaryRestrictions),
		}
	}, func(row *models.AttendeeForm) (uint64, time.Time) { return row.ID, row.CreatedAt })
}

// SubmitWaiverForm stores the caller's waiver once the terms are agreed to
func SubmitWaiverForm(ctx context.Context, db *gorm.DB, caller *Identity, in WaiverFormInput) (SubmitResult, error) {
	return submit(ctx, db, caller, WaiverFormType, in.Validate, func(userID string) *models.WaiverForm {
		return &models.WaiverForm{
			UserID:          userID,
			WaiverAgreement: true,
			Signature:       strings.TrimSpace(in.Signature),
		}
	}, func(row *models.WaiverForm) (uint64, time.Time) { return row.ID, row.CreatedAt })
}

func submit[T formRow](
	ctx context.Context,
	db *gorm.DB,
	caller *Identity,
	form FormType,
	validate func() error,
	build func(userID string) *T,
	key func(*T) (uint64, time.Time),
) (result SubmitResult, err error) {
	defer func() {
		formSubmissions.WithLabelValues(form.Slug(), submissionResult(err)).Inc()
	}()

	if caller == nil || caller.ID == "" {
		return SubmitResult{}, ErrAuthenticationRequired
	}
	if err := validate(); err != nil {
		return SubmitResult{}, err
	}

	row := build(caller.ID)
	if err := insertOnce(ctx, db, form, caller.ID, row); err != nil {
		return SubmitResult{}, err
	}

	id, createdAt := key(row)
	return SubmitResult{FormType: form, ID: id, CreatedAt: createdAt}, nil
}

// optionalText stores blank text as NULL
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
