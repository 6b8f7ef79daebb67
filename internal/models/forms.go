// forms.go
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

package models

import "time"

// ParentForm holds parent or guardian contact details for one participant
type ParentForm struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	UserID           string `gorm:"size:36;not null;uniqueIndex:idx_parent_forms_user"`
	CreatedAt        time.Time
	ParentName       string `gorm:"size:255;not null"`
	ContactNumber    string `gorm:"size:64;not null"`
	EmergencyContact string `gorm:"size:255;not null"`
}

// AttendeeForm holds the attendee's own details
type AttendeeForm struct {
	ID                  uint64 `gorm:"primaryKey;autoIncrement"`
	UserID              string `gorm:"size:36;not null;uniqueIndex:idx_attendee_forms_user"`
	CreatedAt           time.Time
	AttendeeName        string  `gorm:"size:255;not null"`
	DietaryRestrictions *string `gorm:"size:1024"`
}

// WaiverForm records acceptance of the liability waiver
type WaiverForm struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	UserID          string `gorm:"size:36;not null;uniqueIndex:idx_waiver_forms_user"`
	CreatedAt       time.Time
	WaiverAgreement bool   `gorm:"not null"`
	Signature       string `gorm:"size:255;not null"`
}

// TableName overrides the table name for ParentForm
func (ParentForm) TableName() string {
	return "parent_forms"
}

// TableName overrides the table name for AttendeeForm
func (AttendeeForm) TableName() string {
	return "attendee_forms"
}

// TableName overrides the table name for WaiverForm
func (WaiverForm) TableName() string {
	return "waiver_forms"
}

// All lists every model for migrations
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&ParentForm{},
		&AttendeeForm{},
		&WaiverForm{},
	}
}
