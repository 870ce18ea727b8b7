// Package domain defines the persistence models for releases, reminders,
// subscriptions, and reminder statistics. These types are mapped with GORM
// and form the core data layer of the reminder backend.
package domain

import (
	"time"
)

// Release represents a trackable content item with a scheduled or known
// release date. A Release is created lazily the first time any user sets a
// reminder for it and is never updated or deleted by this service.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - TMDBID: external catalog identifier; unique across releases.
//   - Name: display name of the release.
//   - PosterPath: optional poster reference.
//   - ReleaseDate: scheduled or known release date.
//   - Status: lifecycle status, defaults to "upcoming".
//   - OriginCountry: comma-separated ISO country codes.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Release struct {
	ID            string    `json:"id"             gorm:"type:char(36);primaryKey"`
	TMDBID        int64     `json:"tmdb_id"        gorm:"column:tmdb_id;not null;uniqueIndex:ux_releases_tmdb"`
	Name          string    `json:"name"           gorm:"type:varchar(255);not null"`
	PosterPath    *string   `json:"poster_path,omitempty" gorm:"type:varchar(255)"`
	ReleaseDate   time.Time `json:"release_date"   gorm:"not null;index"`
	Status        string    `json:"status"         gorm:"type:varchar(32);not null;default:'upcoming'"`
	OriginCountry string    `json:"origin_country" gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the database table name for Release.
func (Release) TableName() string { return "releases" }

// Reminder represents a user's subscription to be notified when a tracked
// release becomes available. At most one Reminder exists per (user, release)
// pair; the unique index makes the database the source of truth for that
// invariant, so concurrent toggles degrade to a conflict instead of a
// duplicate row.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: identifier of the reminder owner; indexed for retrieval.
//   - ReleaseID: foreign key to the tracked release (unique per user).
//   - NotificationID: opaque handle issued by the external push system,
//     recorded so callers can cancel a scheduled push; never dereferenced here.
//   - ScheduledTime: when the notification should fire.
//   - NotificationSent / TestNotificationSent: delivery flags, mutated only
//     by the external delivery pipeline.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - Release: FK association, cascade delete/update.
type Reminder struct {
	ID                   string    `json:"id"              gorm:"type:char(36);primaryKey"`
	UserID               string    `json:"user_id"         gorm:"type:char(36);not null;index:idx_user_reminders;uniqueIndex:ux_reminders_user_release"`
	ReleaseID            string    `json:"release_id"      gorm:"type:char(36);not null;uniqueIndex:ux_reminders_user_release"`
	NotificationID       *string   `json:"notification_id,omitempty" gorm:"type:varchar(128)"`
	ScheduledTime        time.Time `json:"scheduled_time"  gorm:"not null"`
	NotificationSent     bool      `json:"notification_sent"      gorm:"not null;default:false"`
	TestNotificationSent bool      `json:"test_notification_sent" gorm:"not null;default:false"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Release is the tracked content item. Reminders are cascade-deleted
	// if the release row is removed.
	Release Release `json:"release" gorm:"foreignKey:ReleaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Reminder.
func (Reminder) TableName() string { return "reminders" }

// Subscription records a user's plan. The reminder quota depends on whether
// an active premium row exists for the user.
type Subscription struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index:idx_user_subscriptions"`
	Plan      string    `json:"plan"    gorm:"type:varchar(32);not null;default:'free'"`
	Status    string    `json:"status"  gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }

// ReminderStats is a precomputed aggregate maintained outside this service
// (e.g. by triggers or a batch job). It is read verbatim; a missing row is a
// valid state that the repository maps to zero values.
type ReminderStats struct {
	UserID                string     `json:"user_id"                 gorm:"type:char(36);primaryKey"`
	ActiveRemindersCount  int64      `json:"active_reminders_count"  gorm:"not null;default:0"`
	TotalRemindersCreated int64      `json:"total_reminders_created" gorm:"not null;default:0"`
	LastReminderCreated   *time.Time `json:"last_reminder_created"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName returns the database table name for ReminderStats.
func (ReminderStats) TableName() string { return "reminder_stats" }
