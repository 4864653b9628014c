package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/meetcute/client/internal/application/adapter"
	"github.com/meetcute/client/internal/domain/entity"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/storage/model"
)

// eventCacheRepository implements the adapter.EventCache interface.
type eventCacheRepository struct {
	db *gorm.DB
}

// NewEventCacheRepository creates a new event cache repository instance.
func NewEventCacheRepository(db *gorm.DB) adapter.EventCache {
	return &eventCacheRepository{db: db}
}

// ReplaceUpcoming swaps the cached listing for the given one in a single
// transaction, so offline readers never observe a half-written cache.
func (r *eventCacheRepository) ReplaceUpcoming(ctx context.Context, events []entity.DateEvent) error {
	now := time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CachedEventModel{}).Error; err != nil {
			return fmt.Errorf("clear cached events: %w", err)
		}

		if len(events) == 0 {
			return nil
		}

		rows := make([]model.CachedEventModel, 0, len(events))
		for _, event := range events {
			rows = append(rows, model.FromEventEntity(event, now))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("cache events: %w", err)
		}

		return nil
	})
}

// ListUpcoming returns the cached listing, soonest first.
func (r *eventCacheRepository) ListUpcoming(ctx context.Context) ([]entity.DateEvent, error) {
	var rows []model.CachedEventModel
	if err := r.db.WithContext(ctx).Order("starts_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cached events: %w", err)
	}

	if len(rows) == 0 {
		return nil, domainerror.ErrEventsNotCached
	}

	events := make([]entity.DateEvent, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].ToEntity())
	}

	return events, nil
}
