// submission.go
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

package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/eventreg/internal/models"
)

// FormType is the fixed label of one form record store
type FormType string

const (
	ParentFormType   FormType = "Parent Form"
	AttendeeFormType FormType = "Attendee Form"
	WaiverFormType   FormType = "Waiver Form"
)

// FormTypes lists the stores in aggregation order
var FormTypes = []FormType{ParentFormType, AttendeeFormType, WaiverFormType}

// ParseFormType accepts the route slug (parent, attendee, waiver) or the label
func ParseFormType(s string) (FormType, error) {
	switch s {
	case "parent", string(ParentFormType):
		return ParentFormType, nil
	case "attendee", string(AttendeeFormType):
		return AttendeeFormType, nil
	case "waiver", string(WaiverFormType):
		return WaiverFormType, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormType, s)
}

// Slug returns the short route name of the form type
func (f FormType) Slug() string {
	switch f {
	case ParentFormType:
		return "parent"
	case AttendeeFormType:
		return "attendee"
	case WaiverFormType:
		return "waiver"
	}
	return "unknown"
}

// FormData is the payload of a Submission. The implementations are
// ParentData, AttendeeData and WaiverData; each one names its own form type.
type FormData interface {
	FormType() FormType
	sealed()
}

// ParentData is the Parent Form payload
type ParentData struct {
	ParentName       string `json:"parent_name"`
	ContactNumber    string `json:"contact_number"`
	EmergencyContact string `json:"emergency_contact"`
}

// AttendeeData is the Attendee Form payload
type AttendeeData struct {
	AttendeeName        string  `json:"attendee_name"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
}

// WaiverData is the Waiver Form payload
type WaiverData struct {
	WaiverAgreement bool   `json:"waiver_agreement"`
	Signature       string `json:"signature"`
}

func (ParentData) FormType() FormType   { return ParentFormType }
func (AttendeeData) FormType() FormType { return AttendeeFormType }
func (WaiverData) FormType() FormType   { return WaiverFormType }

func (ParentData) sealed()   {}
func (AttendeeData) sealed() {}
func (WaiverData) sealed()   {}

// Submission is one form row joined with its submitter's profile
type Submission struct {
	ID        uint64
	CreatedAt time.Time
	UserID    string
	UserName  string
	UserEmail string
	Data      FormData
}

// FormType is derived from the payload so the two cannot disagree
func (s Submission) FormType() FormType {
	if s.Data == nil {
		return ""
	}
	return s.Data.FormType()
}

type submissionJSON struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	FormType  FormType  `json:"form_type"`
	FormData  FormData  `json:"form_data"`
}

// MarshalJSON renders the flat admin view shape
func (s Submission) MarshalJSON() ([]byte, error) {
	return json.Marshal(submissionJSON{
		ID:        s.ID,
		CreatedAt: s.CreatedAt.UTC(),
		UserID:    s.UserID,
		UserName:  s.UserName,
		UserEmail: s.UserEmail,
		FormType:  s.FormType(),
		FormData:  s.Data,
	})
}

func newSubmission(id uint64, createdAt time.Time, userID string, dir ProfileDirectory, data FormData) Submission {
	name, email := dir.Lookup(userID)
	return Submission{
		ID:        id,
		CreatedAt: createdAt,
		UserID:    userID,
		UserName:  name,
		UserEmail: email,
		Data:      data,
	}
}

func parentSubmission(row models.ParentForm, dir ProfileDirectory) Submission {
	return newSubmission(row.ID, row.CreatedAt, row.UserID, dir, ParentData{
		ParentName:       row.ParentName,
		ContactNumber:    row.ContactNumber,
		EmergencyContact: row.EmergencyContact,
	})
}

func attendeeSubmission(row models.AttendeeForm, dir ProfileDirectory) Submission {
	return newSubmission(row.ID, row.CreatedAt, row.UserID, dir, AttendeeData{
		AttendeeName:        row.AttendeeName,
		DietaryRestrictions: row.DietaryRestrictions,
	})
}

func waiverSubmission(row models.WaiverForm, dir ProfileDirectory) Submission {
	return newSubmission(row.ID, row.CreatedAt, row.UserID, dir, WaiverData{
		WaiverAgreement: row.WaiverAgreement,
		Signature:       row.Signature,
	})
}
