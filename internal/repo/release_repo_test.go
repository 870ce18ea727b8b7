package repo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetReleaseByTMDBID_NotFound(t *testing.T) {
	db := newRepoDB(t)

	_, err := GetReleaseByTMDBID(context.Background(), db, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRelease_DefaultsAndLookup(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	poster := "/poster.jpg"
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := CreateRelease(ctx, db, 42, "Example", &poster, date, "KR")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != "upcoming" {
		t.Fatalf("status = %q, want upcoming", created.Status)
	}

	got, err := GetReleaseByTMDBID(ctx, db, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Name != "Example" || got.OriginCountry != "KR" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.PosterPath == nil || *got.PosterPath != poster {
		t.Fatalf("poster not persisted: %v", got.PosterPath)
	}
	if !got.ReleaseDate.Equal(date) {
		t.Fatalf("release date = %v, want %v", got.ReleaseDate, date)
	}
}

func TestCreateRelease_DuplicateTMDBID(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := CreateRelease(ctx, db, 7, "First", nil, date, "KR"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateRelease(ctx, db, 7, "Second", nil, date, "KR")
	if !IsDuplicate(err) {
		t.Fatalf("expected duplicate-key error for repeated tmdb_id, got %v", err)
	}
}
