// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Release
// model. Releases are append-only from this service's perspective: created
// lazily when the first reminder for a catalog item arrives, never updated
// or deleted here.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/domain"
)

// GetReleaseByTMDBID fetches a release by its external catalog identifier.
// Returns ErrNotFound when no release with that id has been recorded yet.
func GetReleaseByTMDBID(ctx context.Context, db *gorm.DB, tmdbID int64) (*domain.Release, error) {
	var rel domain.Release
	err := db.WithContext(ctx).
		Where("tmdb_id = ?", tmdbID).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// CreateRelease inserts a new Release row. Status defaults to "upcoming"
// when blank. The release ID is a randomly generated UUID and CreatedAt is
// set to UTC.
func CreateRelease(ctx context.Context, db *gorm.DB, tmdbID int64, name string, posterPath *string, releaseDate time.Time, originCountry string) (*domain.Release, error) {
	rel := &domain.Release{
		ID:            uuid.NewString(),
		TMDBID:        tmdbID,
		Name:          name,
		PosterPath:    posterPath,
		ReleaseDate:   releaseDate,
		Status:        "upcoming",
		OriginCountry: originCountry,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(rel).Error; err != nil {
		return nil, err
	}
	return rel, nil
}
