package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/amanmaurya001/backend-test/configs"
	"github.com/amanmaurya001/backend-test/internal/adapter/cache"
	httpadapter "github.com/amanmaurya001/backend-test/internal/adapter/http"
	"github.com/amanmaurya001/backend-test/internal/adapter/http/middleware"
	"github.com/amanmaurya001/backend-test/internal/adapter/repo"
	"github.com/amanmaurya001/backend-test/internal/logging"
	"github.com/amanmaurya001/backend-test/internal/security"
	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	l := logging.New("app")

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	if cfg.MySQL.MigrationsPath != "" {
		if err := repo.RunMigrations(db, cfg.MySQL.MigrationsPath); err != nil {
			return nil, nil, err
		}
	}

	l.Info("storefront-api: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// load secrets; never logged past this point
	material, err := security.LoadMaterial(cfg)
	if err != nil {
		return nil, nil, err
	}
	tokens := security.NewTokenService(material.TokenSecret, cfg.Security.TokenTTL)
	digests := security.NewDigestService(material.DigestSecret)

	// infra
	catalog := cache.NewCatalogCache(repo.NewMySQLCatalogRepo(db), rdb, cfg.Cache.TTL)
	orders := repo.NewMySQLOrderRepo(db)
	subscribers := repo.NewMySQLSubscriberRepo(db)
	idem := cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)

	// usecases + handlers + router
	priceUC := usecase.NewPriceCart(catalog, digests)
	confirmUC := usecase.NewConfirmOrder(digests, orders, idem)
	subscribeUC := usecase.NewSubscribe(subscribers)

	th := httpadapter.NewTokenHandler(tokens)
	ph := httpadapter.NewProductHandler(catalog)
	sh := httpadapter.NewSubscribeHandler(subscribeUC)
	ch := httpadapter.NewCheckoutHandler(priceUC, confirmUC)
	authz := middleware.NewAuthz(tokens)
	router := httpadapter.NewRouter(th, ph, sh, ch, authz)

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
