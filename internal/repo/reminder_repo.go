// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Reminder
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a reminder is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - When an insert trips the (user_id, release_id) unique index, the raw
//     driver error is propagated; callers detect it with IsDuplicate.
//   - On other DB errors (connectivity issues, etc.), the raw gorm error is
//     propagated.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateReminder inserts a new Reminder row for userID on releaseID with the
// given schedule and optional notification handle. The reminder ID is a
// randomly generated UUID, both sent flags start false, and CreatedAt is UTC.
//
// The (user_id, release_id) unique index is the authority on pair uniqueness;
// a violation surfaces as a driver error recognizable via IsDuplicate.
func CreateReminder(ctx context.Context, db *gorm.DB, userID, releaseID string, scheduledTime time.Time, notificationID *string) (*domain.Reminder, error) {
	r := &domain.Reminder{
		ID:             uuid.NewString(),
		UserID:         userID,
		ReleaseID:      releaseID,
		NotificationID: notificationID,
		ScheduledTime:  scheduledTime,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListReminders returns all reminders belonging to userID ordered ascending
// by the release date of the tracked release, with the Release association
// populated. It returns an empty slice if the user has no reminders.
func ListReminders(ctx context.Context, db *gorm.DB, userID string) ([]domain.Reminder, error) {
	var out []domain.Reminder
	err := db.WithContext(ctx).
		Joins("JOIN releases ON releases.id = reminders.release_id").
		Where("reminders.user_id = ?", userID).
		Order("releases.release_date asc").
		Preload("Release").
		Find(&out).Error
	return out, err
}

// CountReminders returns the total number of reminders owned by userID.
func CountReminders(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Reminder{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// GetReminder fetches a single reminder by its ID and owner (userID). The
// ownership predicate prevents cross-user reads. If the record does not
// exist for this user, it returns ErrNotFound.
func GetReminder(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Reminder, error) {
	var r domain.Reminder
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetReminderByRelease fetches the reminder for the (userID, releaseID) pair,
// or ErrNotFound when the user has no reminder for that release.
func GetReminderByRelease(ctx context.Context, db *gorm.DB, userID, releaseID string) (*domain.Reminder, error) {
	var r domain.Reminder
	err := db.WithContext(ctx).
		Where("user_id = ? AND release_id = ?", userID, releaseID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReminder removes the reminder identified by id and owned by userID.
// If no rows are affected (reminder missing or owned by another user), it
// returns ErrNotFound. On DB error, the raw error is returned.
func DeleteReminder(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsDuplicate reports whether err is a unique-constraint violation, across
// drivers that may not map to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
