// Package services – ReminderService
//
// This file implements the ReminderService, which governs the lifecycle of
// release reminders: listing, the toggle flow (create/delete for a (user,
// release) pair), capacity probes, direct deletion, the test-notification
// placeholder, and the stats read. Service-level errors (e.g.
// ErrReminderNotFound, ErrReminderLimit, ErrReminderExists) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
	"github.com/seriestrack/go-reminder-backend/internal/repo"
)

// Toggle actions reported to callers.
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// ToggleInput carries the caller-supplied fields of a toggle request.
type ToggleInput struct {
	// DramaID is the external catalog identifier of the release.
	DramaID int64
	// DramaName is the display name, recorded on lazy release creation.
	DramaName string
	// DramaPoster optionally references the poster image.
	DramaPoster *string
	// ReleaseDate is the scheduled or known release date.
	ReleaseDate time.Time
	// NotificationID optionally carries the handle of an already scheduled
	// push, stored so a later delete can return it for cancellation.
	NotificationID *string
}

// ToggleResult describes the outcome of a toggle: either a reminder was
// created (Reminder set) or an existing one was deleted (NotificationID set
// so the caller can cancel the scheduled push).
type ToggleResult struct {
	Action         string           `json:"action"`
	HasReminder    bool             `json:"hasReminder"`
	Reminder       *domain.Reminder `json:"reminder,omitempty"`
	NotificationID *string          `json:"notificationId,omitempty"`
}

// Quota is the capacity probe result. CanCreate comes from the external
// entitlement check while Remaining is derived locally from the live count;
// the two are surfaced side by side, not reconciled.
type Quota struct {
	CanCreate    bool  `json:"canCreate"`
	CurrentCount int64 `json:"currentCount"`
	Limit        int   `json:"limit"`
	Remaining    int64 `json:"remaining"`
	IsPremium    bool  `json:"isPremium"`
}

// TestNotificationReceipt acknowledges a test-notification request. No
// delivery happens; the endpoint is a placeholder for a future push pipeline.
type TestNotificationReceipt struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ReminderService implements the use-cases around release reminders. Every
// method is a short sequence of store calls; the service keeps no state
// between invocations. Multi-step writes run inside a transaction and rely
// on the (user, release) unique index for the final word on pair uniqueness.
type ReminderService struct {
	// DB is the database handle used for all reminder operations.
	DB *gorm.DB
	// Entitlements answers the tier-dependent capacity and premium checks.
	Entitlements Entitlements

	// FreeLimit and PremiumLimit are the per-tier reminder quotas reported
	// by CanCreate.
	FreeLimit    int
	PremiumLimit int

	// NotifyHour is the local hour (0-23) reminders are scheduled at on the
	// release date.
	NotifyHour int
	// DefaultOriginCountry is recorded on lazily created releases.
	DefaultOriginCountry string
	// Location resolves "local" for scheduling; nil means time.Local.
	Location *time.Location
}

// NewReminderService constructs a ReminderService with the default quotas
// (5 free / 999 premium), 10:00 local scheduling, and "KR" origin country.
func NewReminderService(db *gorm.DB, ent Entitlements) *ReminderService {
	return &ReminderService{
		DB:                   db,
		Entitlements:         ent,
		FreeLimit:            5,
		PremiumLimit:         999,
		NotifyHour:           10,
		DefaultOriginCountry: "KR",
	}
}

func (s *ReminderService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// List returns all reminders for userID ordered ascending by release date.
func (s *ReminderService) List(ctx context.Context, userID string) ([]domain.Reminder, error) {
	return repo.ListReminders(ctx, s.DB, userID)
}

// Toggle flips the reminder state for the (userID, DramaID) pair.
//
// Semantics:
//   - If a reminder exists for the pair, it is deleted and the stored
//     notification handle is returned so the caller can cancel the push.
//   - Otherwise the entitlement check gates creation; over capacity yields
//     ErrReminderLimit and no row is written.
//   - The release row is created lazily on first use (status "upcoming",
//     origin country from configuration) and the reminder is scheduled at
//     NotifyHour local time on the release date with both sent flags false.
//
// Concurrency & atomicity:
//   - The lookup/insert sequence runs inside a transaction, and the
//     (user_id, release_id) unique index is the source of truth: a racing
//     insert surfaces as ErrReminderExists instead of a duplicate row.
func (s *ReminderService) Toggle(ctx context.Context, userID string, in ToggleInput) (*ToggleResult, error) {
	if in.DramaID <= 0 {
		return nil, ErrInvalidDramaID
	}
	if strings.TrimSpace(in.DramaName) == "" {
		return nil, ErrEmptyDramaName
	}

	var res *ToggleResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Resolve the release by catalog id; absence just means no user
		// has tracked it yet.
		rel, err := repo.GetReleaseByTMDBID(ctx, tx, in.DramaID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		// 2) An existing reminder for the pair means this toggle is a delete.
		if rel != nil {
			rem, err := repo.GetReminderByRelease(ctx, tx, userID, rel.ID)
			if err == nil {
				if err := repo.DeleteReminder(ctx, tx, rem.ID, userID); err != nil {
					return err
				}
				res = &ToggleResult{
					Action:         ActionDeleted,
					HasReminder:    false,
					NotificationID: rem.NotificationID,
				}
				return nil
			}
			if !errors.Is(err, repo.ErrNotFound) {
				return err
			}
		}

		// 3) Creation path: capacity first, before any write.
		ok, err := s.Entitlements.CanCreateReminder(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReminderLimit
		}

		// 4) Lazily create the release. A racing toggle may have just
		// inserted it; the unique tmdb_id index tells us, and the existing
		// row wins.
		if rel == nil {
			rel, err = repo.CreateRelease(ctx, tx, in.DramaID, strings.TrimSpace(in.DramaName), in.DramaPoster, in.ReleaseDate, s.DefaultOriginCountry)
			if repo.IsDuplicate(err) {
				rel, err = repo.GetReleaseByTMDBID(ctx, tx, in.DramaID)
			}
			if err != nil {
				return err
			}
		}

		// 5) Schedule at NotifyHour local on the release date.
		y, m, d := in.ReleaseDate.Date()
		scheduled := time.Date(y, m, d, s.NotifyHour, 0, 0, 0, s.loc())

		rem, err := repo.CreateReminder(ctx, tx, userID, rel.ID, scheduled, in.NotificationID)
		if err != nil {
			if repo.IsDuplicate(err) {
				return ErrReminderExists
			}
			return err
		}
		rem.Release = *rel

		res = &ToggleResult{
			Action:      ActionCreated,
			HasReminder: true,
			Reminder:    rem,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CanCreate combines the external capacity check, a live reminder count, and
// the premium flag into a Quota. Remaining is computed locally and may
// disagree with CanCreate when the entitlement source uses different logic;
// both values are returned as-is.
func (s *ReminderService) CanCreate(ctx context.Context, userID string) (*Quota, error) {
	ok, err := s.Entitlements.CanCreateReminder(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := repo.CountReminders(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	premium, err := s.Entitlements.HasActiveSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := s.FreeLimit
	if premium {
		limit = s.PremiumLimit
	}
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}

	return &Quota{
		CanCreate:    ok,
		CurrentCount: count,
		Limit:        limit,
		Remaining:    remaining,
		IsPremium:    premium,
	}, nil
}

// SendTestNotification acknowledges the request with a timestamp. Nothing is
// persisted and nothing is delivered; the operation exists so clients can be
// built against the surface before the push pipeline lands.
func (s *ReminderService) SendTestNotification(ctx context.Context, userID string) (*TestNotificationReceipt, error) {
	_ = userID
	return &TestNotificationReceipt{
		Message:   "test notification queued",
		Timestamp: time.Now().UTC(),
	}, nil
}

// Delete removes the reminder identified by reminderID if it belongs to
// userID and returns the stored notification handle so the caller can cancel
// any scheduled push. A reminder owned by another user is indistinguishable
// from a missing one: both yield ErrReminderNotFound.
func (s *ReminderService) Delete(ctx context.Context, userID, reminderID string) (*string, error) {
	rem, err := repo.GetReminder(ctx, s.DB, reminderID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if err := repo.DeleteReminder(ctx, s.DB, reminderID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	return rem.NotificationID, nil
}

// Stats returns the externally maintained aggregate for userID. A user with
// no stats row gets a zeroed object, not an error.
func (s *ReminderService) Stats(ctx context.Context, userID string) (*domain.ReminderStats, error) {
	return repo.GetReminderStats(ctx, s.DB, userID)
}
