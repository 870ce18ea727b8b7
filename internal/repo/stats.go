// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file reads the reminder_stats aggregate, which is
// maintained outside this service.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
)

// GetReminderStats returns the precomputed aggregate row for userID. A user
// with no stats row is a valid state: the function returns a zeroed object
// (nil LastReminderCreated) rather than ErrNotFound. Any other DB error is
// propagated.
func GetReminderStats(ctx context.Context, db *gorm.DB, userID string) (*domain.ReminderStats, error) {
	var st domain.ReminderStats
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.ReminderStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}
