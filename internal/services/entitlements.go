// Package services – Entitlements
//
// This file defines the contract for tier-dependent capacity decisions and a
// store-backed implementation. In the original deployment both answers come
// from procedures owned by the database; keeping them behind an interface
// makes that ownership explicit and lets tests substitute fixed answers.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/repo"
)

// Entitlements answers the two external questions the reminder flow depends
// on: may this user create another reminder, and does this user hold an
// active premium subscription. Implementations must be safe for concurrent
// use and honor the provided context.
type Entitlements interface {
	// CanCreateReminder reports whether userID may create one more reminder.
	CanCreateReminder(ctx context.Context, userID string) (bool, error)

	// HasActiveSubscription reports whether userID holds an active premium plan.
	HasActiveSubscription(ctx context.Context, userID string) (bool, error)
}

// SubscriptionEntitlements derives both answers from the relational store:
// premium from the subscriptions table, capacity from a live reminder count
// against the tier limit. The limits are injected so deployments can tune
// them without code changes.
type SubscriptionEntitlements struct {
	// DB is the GORM handle used for lookups.
	DB *gorm.DB
	// FreeLimit caps reminders for users without a premium subscription.
	FreeLimit int
	// PremiumLimit caps reminders for premium users (effectively unlimited).
	PremiumLimit int
}

// HasActiveSubscription reports whether userID currently holds an active
// premium subscription row.
func (e *SubscriptionEntitlements) HasActiveSubscription(ctx context.Context, userID string) (bool, error) {
	return repo.HasActivePremium(ctx, e.DB, userID)
}

// CanCreateReminder compares the live reminder count against the limit for
// the user's tier.
func (e *SubscriptionEntitlements) CanCreateReminder(ctx context.Context, userID string) (bool, error) {
	premium, err := e.HasActiveSubscription(ctx, userID)
	if err != nil {
		return false, err
	}
	limit := e.FreeLimit
	if premium {
		limit = e.PremiumLimit
	}
	count, err := repo.CountReminders(ctx, e.DB, userID)
	if err != nil {
		return false, err
	}
	return count < int64(limit), nil
}
