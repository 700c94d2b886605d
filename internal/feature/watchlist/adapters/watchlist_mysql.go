// Package adapters provides the repository implementations for the
// watchlist feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/usecase"
)

// watchlistMySQL is the MySQL implementation of WatchlistRepository.
type watchlistMySQL struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistMySQL)(nil)

// NewWatchlistRepository creates a watchlist repository backed by the given
// DB connection.
func NewWatchlistRepository(db *gorm.DB) *watchlistMySQL {
	return &watchlistMySQL{db: db}
}

// List returns all watchlist items ordered by symbol.
func (r *watchlistMySQL) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	var items []entity.WatchlistItem
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns one watchlist item, or ErrNotFound.
func (r *watchlistMySQL) FindByID(ctx context.Context, id uint) (entity.WatchlistItem, error) {
	var item entity.WatchlistItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.WatchlistItem{}, usecase.ErrNotFound
		}
		return entity.WatchlistItem{}, err
	}
	return item, nil
}

// Create inserts a new watchlist item.
func (r *watchlistMySQL) Create(ctx context.Context, item *entity.WatchlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update saves all fields of an existing item.
func (r *watchlistMySQL) Update(ctx context.Context, item *entity.WatchlistItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by ID. Deleting a missing row reports ErrNotFound.
func (r *watchlistMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.WatchlistItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
