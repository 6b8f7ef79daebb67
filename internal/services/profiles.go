package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// UnknownUserName is shown for a submission whose user has no profile
	UnknownUserName = "Unknown user"

	// UnknownUserEmail is shown for a submission whose user has no profile
	UnknownUserEmail = "Unknown email"

	fallbackProfileName = "Participant"
)

// ProfileEntry is the display part of a profile
type ProfileEntry struct {
	Name  string
	Email string
}

// ProfileDirectory maps user ids to display info. A missing key is a miss, not an error.
type ProfileDirectory map[string]ProfileEntry

// Lookup resolves a user id, falling back to the unknown-user sentinels
func (d ProfileDirectory) Lookup(userID string) (name, email string) {
	if entry, ok := d[userID]; ok {
		return entry.Name, entry.Email
	}
	return UnknownUserName, UnknownUserEmail
}

// LoadProfileDirectory reads the given profiles, or all of them when ids is empty
func LoadProfileDirectory(ctx context.Context, db *gorm.DB, ids ...string) (ProfileDirectory, error) {
	var profiles []models.Profile

	query := read(ctx, db, "profiles.directory").Select("id", "name", "email")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	dir := make(ProfileDirectory, len(profiles))
	for _, p := range profiles {
		dir[p.ID] = ProfileEntry{Name: p.Name, Email: p.Email}
	}
	return dir, nil
}

// GetProfile reads one profile by id
func GetProfile(ctx context.Context, db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := read(ctx, db, "profiles.get").Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// EmailRegistered reports whether any profile already uses the email
func EmailRegistered(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var n int64
	err := read(ctx, db, "profiles.email").Model(&models.Profile{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&n).Error
	return n > 0, err
}

// EnsureProfile creates the caller's profile on first sight and returns the stored row
func EnsureProfile(ctx context.Context, db *gorm.DB, caller *Identity) (*models.Profile, error) {
	if caller == nil || caller.ID == "" {
		return nil, ErrAuthenticationRequired
	}

	profile, err := GetProfile(ctx, db, caller.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if err := createProfile(ctx, db, caller, caller.DisplayName()); err != nil {
		return nil, err
	}
	return GetProfile(ctx, db, caller.ID)
}

// createProfile inserts the profile, leaving an existing row untouched
func createProfile(ctx context.Context, db *gorm.DB, caller *Identity, name string) error {
	if name == "" {
		name = fallbackProfileName
	}

	metadata, err := models.NewJSON(caller.Claims())
	if err != nil {
		return err
	}

	profile := models.Profile{
		ID:       caller.ID,
		Name:     name,
		Email:    caller.Email,
		Metadata: metadata,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&profile).Error
}
