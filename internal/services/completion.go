// completion.go
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
	"context"
	"log"

	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/gorm"
)

// CompletionStatus says which forms a user has submitted.
// Failed lists the form stores that could not be read; their flags are false.
type CompletionStatus struct {
	ParentForm   bool     `json:"parentForm"`
	AttendeeForm bool     `json:"attendeeForm"`
	WaiverForm   bool     `json:"waiverForm"`
	Failed       []string `json:"failed,omitempty"`
}

// Complete reports whether all three forms are in
func (s CompletionStatus) Complete() bool {
	return s.ParentForm && s.AttendeeForm && s.WaiverForm
}

// GetCompletionStatus checks each store for at least one row for userID.
// A store that fails to answer is logged and reported as not submitted.
func GetCompletionStatus(ctx context.Context, db *gorm.DB, userID string) CompletionStatus {
	var status CompletionStatus

	check := func(form FormType, count func() (int64, error)) bool {
		n, err := count()
		if err != nil {
			log.Printf("Completion status: %s read failed for %s: %v", form, userID, err)
			storeFetchFailures.WithLabelValues(string(form)).Inc()
			status.Failed = append(status.Failed, string(form))
			return false
		}
		return n > 0
	}

	status.ParentForm = check(ParentFormType, func() (int64, error) {
		return countRowsForUser[models.ParentForm](ctx, db, userID, "status.parent")
	})
	status.AttendeeForm = check(AttendeeFormType, func() (int64, error) {
		return countRowsForUser[models.AttendeeForm](ctx, db, userID, "status.attendee")
	})
	status.WaiverForm = check(WaiverFormType, func() (int64, error) {
		return countRowsForUser[models.WaiverForm](ctx, db, userID, "status.waiver")
	})

	return status
}
