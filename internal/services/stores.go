package services

import (
	"context"
	"errors"

	"github.com/localnerve/eventreg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// formRow is the row type of one form record store
type formRow interface {
	models.ParentForm | models.AttendeeForm | models.WaiverForm
}

// read starts a silent, tagged read so slow query logs name the operation
func read(ctx context.Context, db *gorm.DB, op string) *gorm.DB {
	return db.WithContext(ctx).
		Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("SELECT", "eventreg:"+op))
}

// listRows is select-all over one store
func listRows[T formRow](ctx context.Context, db *gorm.DB, op string) ([]T, error) {
	var rows []T
	if err := read(ctx, db, op).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// countRowsForUser is select-filtered on user_id, reduced to a count
func countRowsForUser[T formRow](ctx context.Context, db *gorm.DB, userID, op string) (int64, error) {
	var zero T
	var n int64
	err := read(ctx, db, op).Model(&zero).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// getRow is select-single by primary key
func getRow[T formRow](ctx context.Context, db *gorm.DB, id uint64, op string) (T, error) {
	var row T
	err := read(ctx, db, op).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, ErrSubmissionNotFound
	}
	return row, err
}

// insertOnce inserts row unless userID already has a row in the store.
// The unique user_id index backs the pre-check against concurrent inserts.
func insertOnce[T formRow](ctx context.Context, db *gorm.DB, form FormType, userID string, row *T) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var zero T
		var n int64
		if err := tx.Model(&zero).Where("user_id = ?", userID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadySubmitted
		}
		return tx.Clauses(hints.CommentBefore("INSERT", "eventreg:forms."+form.Slug())).Create(row).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAlreadySubmitted), errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrAlreadySubmitted
	}
	return &WriteError{Form: form, Err: err}
}
