package main

import (
	"context"
	"time"

	"app/internal/catalog"
	"app/internal/config"
	"app/internal/handler"
	"app/internal/server"
	"app/internal/storage"
	"app/internal/store"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// STORAGE_DRIVERに応じてlocal storage相当のドライバを選ぶ。
func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "redis":
		return storage.NewRedisStorage(ctx, cfg.RedisURL)
	case "postgres":
		db, err := storage.Connect()
		if err != nil {
			return nil, err
		}
		return storage.NewGormStorage(db)
	default:
		return storage.NewFileStorage(cfg.StorageDir)
	}
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	// .envは無くてもよい（本番は環境変数だけ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx := context.Background()

	st, err := openStorage(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open storage")
	}

	//状態コンテナ（保存済みスナップショットを読む。壊れていたら空で開始）
	cartStore := store.New(ctx, st, cfg.CurrencyRate)

	//リモートカタログ
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	listingUC := usecase.NewListingUsecase(catalogClient, cfg.CurrencyRate, cfg.PageSize)
	cartUC := usecase.NewCartUsecase(cartStore, catalogClient)
	favoritesUC := usecase.NewFavoritesUsecase(cartStore, catalogClient, cfg.CurrencyRate, cfg.PageSize)
	checkoutUC := usecase.NewCheckoutUsecase(cartStore, idGen, clock)

	//Handler生成
	productH := handler.NewProductHandler(listingUC)
	cartH := handler.NewCartHandler(cartUC)
	favoritesH := handler.NewFavoritesHandler(favoritesUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.WithFields(log.Fields{"addr": addr, "storage": cfg.StorageDriver}).Info("starting server")

	if err := server.Start(addr, productH, cartH, favoritesH, checkoutH); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
