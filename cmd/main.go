package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/rewards-order-service/docs"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/app"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/config"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/events"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/handler"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/repo"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/rewards"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/service"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Rewards Order Service API
// @version         1.0
// @description     Размещение заказов с учётом скидок и баллов лояльности
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	txManager := trm.NewManager(db)
	userRepo := repo.NewUserRepo(db)
	orderRepo := repo.NewOrderRepo(db, txManager)
	orderCache := cache.NewLRUCache[int64, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	rewardsClient := rewards.NewClient(rewards.Config{
		BaseURL: conf.Rewards.BaseURL,
		APIKey:  conf.Rewards.APIKey,
		Timeout: conf.Rewards.Timeout,
		Retry: utils.RetryConfig{
			MaxAttempts:  conf.Rewards.MaxAttempts,
			InitialDelay: conf.Rewards.InitialDelay,
			MaxDelay:     conf.Rewards.MaxDelay,
		},
	})

	sink := service.MultiSink{service.NewLogSink(logger)}

	app := app.New(logger, conf)

	if conf.Kafka.Enabled {
		publisher := events.NewReconciliationPublisher(logger, conf.Kafka)
		sink = append(sink, publisher)
		app.SetClosers(publisher)
	}

	rewardsService := service.NewRewardsService(logger, rewardsClient, sink)
	userService := service.NewUserService(logger, userRepo)
	orderService := service.NewOrderService(logger, userRepo, orderRepo, rewardsService, rewardsClient, sink, orderCache)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, userService, rewardsService)
	app.SetHTTPHandlers(httpHandler)

	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
