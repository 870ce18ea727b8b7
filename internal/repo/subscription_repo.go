// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the subscription lookup backing the
// premium entitlement check.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
)

// HasActivePremium reports whether userID currently holds an active premium
// subscription. Absence of any subscription row is an ordinary false, not an
// error.
func HasActivePremium(ctx context.Context, db *gorm.DB, userID string) (bool, error) {
	var sub domain.Subscription
	err := db.WithContext(ctx).
		Where("user_id = ? AND plan = ? AND status = ?", userID, "premium", "active").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
