//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dashboard/internal/handlers/kafka-consumer/checkout_order_created"
	"dashboard/internal/handlers/rest/order_get"
	"dashboard/internal/handlers/rest/order_put"
	"dashboard/internal/handlers/rest/order_status_post"
	"dashboard/internal/handlers/rest/orders_get"
	"dashboard/internal/handlers/rest/stats_get"
	"dashboard/internal/handlers/rest/voucher_get"
	"dashboard/internal/handlers/rest/voucher_post"
	"dashboard/internal/handlers/rest/voucher_put"
	"dashboard/internal/handlers/rest/vouchers_get"
	"dashboard/internal/handlers/tasks/stats_snapshot"
	"dashboard/internal/pkg/config"

	orderRepo "dashboard/internal/repository/order"
	statsRepo "dashboard/internal/repository/stats"
	voucherRepo "dashboard/internal/repository/voucher"
	orderService "dashboard/internal/service/order"
	statsService "dashboard/internal/service/stats"
	voucherService "dashboard/internal/service/voucher"

	"dashboard/pkg/background"
	"dashboard/pkg/cache/redis_adapter"
	"dashboard/pkg/logger"
	"dashboard/pkg/querier"
	"dashboard/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	SnapshotInterval time.Duration
	StatsCacheTTL    time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceVoucher    ServiceVoucher
	ServiceStats      ServiceStats
	StatsCache        *redis_adapter.RedisAdapter
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_put.Service
	order_status_post.Service
}

type ServiceVoucher interface {
	voucher_get.Service
	vouchers_get.Service
	voucher_post.Service
	voucher_put.Service
}

type ServiceStats interface {
	stats_get.Service
	stats_snapshot.Service
}

// InitializeApplication builds the HTTP API (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSnapshotInterval,
		provideStatsCacheTTL,

		provideOrderRepository,
		provideVoucherRepository,
		provideStatsRepository,
		provideStatsCache,

		provideServiceOrder,
		provideServiceVoucher,
		provideServiceStats,

		provideStatsSnapshotTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceVoucher), new(*voucherService.Voucher)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(voucherService.Repository), new(*voucherRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.Cache), new(*redis_adapter.RedisAdapter)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(voucherService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_snapshot.Service), new(*statsService.Stats)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService checkout_order_created.Service
}

// InitializeKafkaWorkerApp builds the checkout ingestion worker
// (cmd/worker-checkout-order-created).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(checkout_order_created.Service), new(*orderService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideVoucherRepository(querier *querier.Querier) *voucherRepo.Repository {
	return voucherRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideStatsCache(client *goredis.Client, cfg *config.Config) *redis_adapter.RedisAdapter {
	return redis_adapter.New(client, cfg.Redis.KeyPrefix)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, txManager)
}

func provideServiceVoucher(
	repository voucherService.Repository,
	txManager voucherService.TxManager,
) *voucherService.Voucher {
	return voucherService.New(repository, txManager)
}

func provideServiceStats(
	repository statsService.Repository,
	cache statsService.Cache,
	log logger.Logger,
	ttl StatsCacheTTL,
) *statsService.Stats {
	return statsService.New(repository, cache, log, time.Duration(ttl))
}

func provideSnapshotInterval(cfg *config.Config) SnapshotInterval {
	return SnapshotInterval(cfg.Tasks.StatsSnapshotInterval)
}

func provideStatsCacheTTL(cfg *config.Config) StatsCacheTTL {
	return StatsCacheTTL(cfg.Stats.CacheTTL)
}

func provideStatsSnapshotTask(
	log logger.Logger,
	service stats_snapshot.Service,
	interval SnapshotInterval,
) *stats_snapshot.StatsSnapshot {
	return stats_snapshot.NewStatsSnapshot(log, service, time.Duration(interval))
}

func provideTaskList(
	statsSnapshotTask *stats_snapshot.StatsSnapshot,
) []background.Task {
	return []background.Task{
		statsSnapshotTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
