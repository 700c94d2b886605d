// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"
	"errors"

	stocksusecase "github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/domain/entity"
)

// ErrNotFound is returned when a watchlist item does not exist.
var ErrNotFound = errors.New("watchlist item not found")

// WatchlistRepository abstracts the persistence layer for watchlist rows.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type WatchlistRepository interface {
	List(ctx context.Context) ([]entity.WatchlistItem, error)
	FindByID(ctx context.Context, id uint) (entity.WatchlistItem, error)
	Create(ctx context.Context, item *entity.WatchlistItem) error
	Update(ctx context.Context, item *entity.WatchlistItem) error
	Delete(ctx context.Context, id uint) error
}

// WatchlistUsecase provides business logic for watchlist operations.
type WatchlistUsecase struct {
	repo WatchlistRepository
}

// NewWatchlistUsecase creates a WatchlistUsecase with the given repository.
func NewWatchlistUsecase(repo WatchlistRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo}
}

// List returns every tracked stock.
func (u *WatchlistUsecase) List(ctx context.Context) ([]entity.WatchlistItem, error) {
	return u.repo.List(ctx)
}

// Symbols returns the tracked ticker symbols, for batch quote refreshes.
func (u *WatchlistUsecase) Symbols(ctx context.Context) ([]string, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(items))
	for _, item := range items {
		symbols = append(symbols, item.Symbol)
	}
	return symbols, nil
}

// Add validates the symbol and stores a new watchlist item. The symbol is
// normalized with the same rules the analysis engine applies, so every row
// in the table is analyzable.
func (u *WatchlistUsecase) Add(ctx context.Context, item entity.WatchlistItem) (entity.WatchlistItem, error) {
	symbol, err := stocksusecase.NormalizeSymbol(item.Symbol)
	if err != nil {
		return entity.WatchlistItem{}, err
	}
	item.Symbol = symbol
	if item.Name == "" {
		item.Name = symbol
	}
	if err := u.repo.Create(ctx, &item); err != nil {
		return entity.WatchlistItem{}, err
	}
	return item, nil
}

// UpdateTargets updates the user-entered price targets and notes of an item.
func (u *WatchlistUsecase) UpdateTargets(ctx context.Context, id uint, targetBuy, targetSell float64, notes string) (entity.WatchlistItem, error) {
	item, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entity.WatchlistItem{}, err
	}
	item.TargetBuyPrice = targetBuy
	item.TargetSellPrice = targetSell
	item.Notes = notes
	if err := u.repo.Update(ctx, &item); err != nil {
		return entity.WatchlistItem{}, err
	}
	return item, nil
}

// Remove deletes a watchlist item.
func (u *WatchlistUsecase) Remove(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
