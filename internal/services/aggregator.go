// aggregator.go
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
	"sort"

	"github.com/localnerve/eventreg/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProfilesSource names the profile directory in failure reports
const ProfilesSource = "profiles"

// SubmissionList is the aggregate admin view, most recent first.
// Failed names the sources that could not be read; their rows are missing.
type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Failed      []string     `json:"failed,omitempty"`
}

// Partial reports whether any source was left out
func (l SubmissionList) Partial() bool {
	return len(l.Failed) > 0
}

// ListAllSubmissions joins every form row with its profile.
//
// The four reads run concurrently and every one of them is awaited. A failed
// form store is left out and listed in Failed; a failed profile read resolves
// every name to the unknown-user sentinels. An error is returned only when
// all three form stores fail or ctx is done.
func ListAllSubmissions(ctx context.Context, db *gorm.DB) (SubmissionList, error) {
	var (
		dir       ProfileDirectory
		parents   []models.ParentForm
		attendees []models.AttendeeForm
		waivers   []models.WaiverForm

		// one slot per source, written by exactly one goroutine
		errs [4]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dir, errs[0] = LoadProfileDirectory(gctx, db)
		return nil
	})
	g.Go(func() error {
		parents, errs[1] = listRows[models.ParentForm](gctx, db, "submissions.parent")
		return nil
	})
	g.Go(func() error {
		attendees, errs[2] = listRows[models.AttendeeForm](gctx, db, "submissions.attendee")
		return nil
	})
	g.Go(func() error {
		waivers, errs[3] = listRows[models.WaiverForm](gctx, db, "submissions.waiver")
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return SubmissionList{}, err
	}

	sources := [4]string{ProfilesSource, string(ParentFormType), string(AttendeeFormType), string(WaiverFormType)}
	var failed []SourceError
	for i, err := range errs {
		if err != nil {
			log.Printf("Submission aggregation: %s read failed: %v", sources[i], err)
			storeFetchFailures.WithLabelValues(sources[i]).Inc()
			failed = append(failed, SourceError{Source: sources[i], Err: err})
		}
	}

	formFailures := 0
	for _, f := range failed {
		if f.Source != ProfilesSource {
			formFailures++
		}
	}
	if formFailures == len(FormTypes) {
		return SubmissionList{}, &StoreFetchError{Sources: failed}
	}

	if dir == nil {
		dir = ProfileDirectory{}
	}

	submissions := make([]Submission, 0, len(parents)+len(attendees)+len(waivers))
	for _, row := range parents {
		submissions = append(submissions, parentSubmission(row, dir))
	}
	for _, row := range attendees {
		submissions = append(submissions, attendeeSubmission(row, dir))
	}
	for _, row := range waivers {
		submissions = append(submissions, waiverSubmission(row, dir))
	}
	SortByRecency(submissions)

	list := SubmissionList{Submissions: submissions}
	for _, f := range failed {
		list.Failed = append(list.Failed, f.Source)
	}
	return list, nil
}

// SortByRecency orders submissions newest first; ties keep their input order.
func SortByRecency(submissions []Submission) {
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
}

// GetSubmission reads one form row by id and resolves its profile
func GetSubmission(ctx context.Context, db *gorm.DB, form FormType, id uint64) (Submission, error) {
	var (
		userID string
		build  func(ProfileDirectory) Submission
	)

	switch form {
	case ParentFormType:
		row, err := getRow[models.ParentForm](ctx, db, id, "submission.parent")
		if err != nil {
			return Submission{}, err
		}
		userID = row.UserID
		build = func(dir ProfileDirectory) Submission { return parentSubmission(row, dir) }
	case AttendeeFormType:
		row, err := getRow[models.AttendeeForm](ctx, db, id, "submission.attendee")
		if err != nil {
			return Submission{}, err
		}
		userID = row.UserID
		build = func(dir ProfileDirectory) Submission { return attendeeSubmission(row, dir) }
	case WaiverFormType:
		row, err := getRow[models.WaiverForm](ctx, db, id, "submission.waiver")
		if err != nil {
			return Submission{}, err
		}
		userID = row.UserID
		build = func(dir ProfileDirectory) Submission { return waiverSubmission(row, dir) }
	default:
		return Submission{}, ErrUnknownFormType
	}

	dir, err := LoadProfileDirectory(ctx, db, userID)
	if err != nil {
		// same degraded display as the list view
		log.Printf("Submission detail: profile read failed for %s: %v", userID, err)
		dir = ProfileDirectory{}
	}
	return build(dir), nil
}
