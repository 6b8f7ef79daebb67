// db.go
//
// Event registration forms and admin submissions service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of eventreg.
// eventreg is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// eventreg is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with eventreg.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a migrated in-memory SQLite database.
// It holds a single connection so concurrent readers share one database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// DropTable removes a store so reads against it fail
func DropTable(t *testing.T, db *gorm.DB, tables ...interface{}) {
	t.Helper()
	for _, model := range tables {
		if err := db.Migrator().DropTable(model); err != nil {
			t.Fatalf("Failed to drop table for %T: %v", model, err)
		}
	}
}

// NewUserID returns a fresh identity id
func NewUserID() string {
	return uuid.NewString()
}

// CreateProfile stores a profile for userID
func CreateProfile(t *testing.T, db *gorm.DB, userID, name, email string) {
	t.Helper()
	profile := models.Profile{ID: userID, Name: name, Email: email}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
}

// CreateParentForm stores a parent form row with a fixed created_at
func CreateParentForm(t *testing.T, db *gorm.DB, userID string, createdAt time.Time) models.ParentForm {
	t.Helper()
	row := models.ParentForm{
		UserID:           userID,
		CreatedAt:        createdAt,
		ParentName:       "Parent of " + userID,
		ContactNumber:    "555-0100",
		EmergencyContact: "Neighbor 555-0199",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create parent form: %v", err)
	}
	return row
}

// CreateAttendeeForm stores an attendee form row with a fixed created_at
func CreateAttendeeForm(t *testing.T, db *gorm.DB, userID string, createdAt time.Time, dietary *string) models.AttendeeForm {
	t.Helper()
	row := models.AttendeeForm{
		UserID:              userID,
		CreatedAt:           createdAt,
		AttendeeName:        "Attendee " + userID,
		DietaryRestrictions: dietary,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create attendee form: %v", err)
	}
	return row
}

// CreateWaiverForm stores an agreed waiver row with a fixed created_at
func CreateWaiverForm(t *testing.T, db *gorm.DB, userID string, createdAt time.Time) models.WaiverForm {
	t.Helper()
	row := models.WaiverForm{
		UserID:          userID,
		CreatedAt:       createdAt,
		WaiverAgreement: true,
		Signature:       "Signed " + userID,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create waiver form: %v", err)
	}
	return row
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
