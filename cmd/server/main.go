package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Gotppsn/iGotMoney-sub003/internal/app/di"
	"github.com/Gotppsn/iGotMoney-sub003/internal/app/router"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/demo"
	stockhandler "github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/transport/handler"
	stocksusecase "github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
	watchlistadapters "github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/adapters"
	watchlisthandler "github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/transport/handler"
	watchlistusecase "github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/usecase"
	infradb "github.com/Gotppsn/iGotMoney-sub003/internal/platform/db"
	infraredis "github.com/Gotppsn/iGotMoney-sub003/internal/platform/redis"
	"github.com/Gotppsn/iGotMoney-sub003/internal/platform/scheduler"
)

func main() {
	// .env is optional; containers inject real env vars.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Adapters
	market := di.NewMarket()
	cacheStore := di.NewCacheStore(rdb)
	demoSource := demo.NewGenerator()
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(market, cacheStore, demoSource, stocksusecase.LoadConfig())
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo)

	// Handler
	stocksH := stockhandler.NewStockHandler(stocksUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	// Background quote refresh for watchlist symbols
	refresher := scheduler.NewQuoteRefresher(scheduler.LoadRefreshSpec(), watchlistUC, stocksUC)
	if err := refresher.Start(); err != nil {
		log.Fatalf("failed to start quote refresher: %v", err)
	}
	defer refresher.Stop()

	r := router.NewRouter(stocksH, watchlistH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
