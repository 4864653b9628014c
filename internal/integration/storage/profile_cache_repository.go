package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/storage/model"
)

// profileCacheRepository implements the adapter.ProfileCache interface.
type profileCacheRepository struct {
	db *gorm.DB
}

// NewProfileCacheRepository creates a new profile cache repository instance.
func NewProfileCacheRepository(db *gorm.DB) adapter.ProfileCache {
	return &profileCacheRepository{db: db}
}

// Save upserts the single cached profile row.
func (r *profileCacheRepository) Save(ctx context.Context, profile entity.Profile) error {
	row := model.FromProfileEntity(profile, time.Now().UTC())

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("cache profile: %w", err)
	}

	return nil
}

// Get returns the cached profile.
func (r *profileCacheRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var row model.CachedProfileModel
	err := r.db.WithContext(ctx).First(&row, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotCached
		}
		return nil, fmt.Errorf("load cached profile: %w", err)
	}

	profile := row.ToEntity()
	return &profile, nil
}
