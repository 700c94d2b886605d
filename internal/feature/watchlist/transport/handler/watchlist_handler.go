// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	stocksusecase "github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/transport/http/dto"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/usecase"
)

// WatchlistUsecase defines the watchlist operations consumed by this
// handler.
type WatchlistUsecase interface {
	List(ctx context.Context) ([]entity.WatchlistItem, error)
	Add(ctx context.Context, item entity.WatchlistItem) (entity.WatchlistItem, error)
	UpdateTargets(ctx context.Context, id uint, targetBuy, targetSell float64, notes string) (entity.WatchlistItem, error)
	Remove(ctx context.Context, id uint) error
}

// WatchlistHandler handles HTTP requests for the stock watchlist.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a WatchlistHandler with the given usecase.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List returns all watchlist items.
//
// GET /watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add creates a new watchlist item from the request body.
//
// POST /watchlist
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.uc.Add(c.Request.Context(), entity.WatchlistItem{
		Symbol:          req.Symbol,
		Name:            req.Name,
		TargetBuyPrice:  req.TargetBuyPrice,
		TargetSellPrice: req.TargetSellPrice,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, stocksusecase.ErrInvalidSymbol) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update replaces the price targets and notes of an item.
//
// PUT /watchlist/:id
func (h *WatchlistHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.uc.UpdateTargets(c.Request.Context(), uint(id), req.TargetBuyPrice, req.TargetSellPrice, req.Notes)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Remove deletes an item.
//
// DELETE /watchlist/:id
func (h *WatchlistHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
