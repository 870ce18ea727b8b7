package domain

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Enforce FKs so cascades actually execute.
	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func TestTableNames(t *testing.T) {
	if (Release{}).TableName() != "releases" {
		t.Fatalf("Release.TableName() = %q; want %q", (Release{}).TableName(), "releases")
	}
	if (Reminder{}).TableName() != "reminders" {
		t.Fatalf("Reminder.TableName() = %q; want %q", (Reminder{}).TableName(), "reminders")
	}
	if (Subscription{}).TableName() != "subscriptions" {
		t.Fatalf("Subscription.TableName() = %q; want %q", (Subscription{}).TableName(), "subscriptions")
	}
	if (ReminderStats{}).TableName() != "reminder_stats" {
		t.Fatalf("ReminderStats.TableName() = %q; want %q", (ReminderStats{}).TableName(), "reminder_stats")
	}
}

func TestMigrations_Indexes_AndCascades(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&Release{}, &Reminder{}, &Subscription{}, &ReminderStats{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	for _, tbl := range []any{&Release{}, &Reminder{}, &Subscription{}, &ReminderStats{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	if !m.HasIndex(&Release{}, "ux_releases_tmdb") {
		t.Fatalf("expected index ux_releases_tmdb on releases")
	}
	if !m.HasIndex(&Reminder{}, "ux_reminders_user_release") {
		t.Fatalf("expected index ux_reminders_user_release on reminders")
	}
	if !m.HasIndex(&Subscription{}, "idx_user_subscriptions") {
		t.Fatalf("expected index idx_user_subscriptions on subscriptions")
	}

	// The (user_id, release_id) index must reject a second reminder for the
	// same pair.
	rel := &Release{ID: "r1", TMDBID: 42, Name: "Example", ReleaseDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Status: "upcoming", OriginCountry: "KR"}
	if err := db.Create(rel).Error; err != nil {
		t.Fatalf("seed release: %v", err)
	}
	first := &Reminder{ID: "a1", UserID: "u1", ReleaseID: rel.ID, ScheduledTime: rel.ReleaseDate}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("seed reminder: %v", err)
	}
	dup := &Reminder{ID: "a2", UserID: "u1", ReleaseID: rel.ID, ScheduledTime: rel.ReleaseDate}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected unique violation for duplicate (user, release) pair")
	}

	// Deleting the release must cascade to its reminders.
	if err := db.Delete(rel).Error; err != nil {
		t.Fatalf("delete release: %v", err)
	}
	var n int64
	if err := db.Model(&Reminder{}).Where("release_id = ?", rel.ID).Count(&n).Error; err != nil {
		t.Fatalf("count reminders: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected cascade delete of reminders, found %d rows", n)
	}
}
