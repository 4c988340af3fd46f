package app

import (
	"context"
	"fmt"
	"raffle-tracker/config"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/cache"
	"raffle-tracker/internal/database"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/raffle"
	"raffle-tracker/internal/repository"
	"raffle-tracker/internal/service"
	"raffle-tracker/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// auditStreamMaxLen Redis 稽核 stream 的近似長度上限
const auditStreamMaxLen = 10000

// Stores 外部依賴；Cache、Audit 為 nil 時使用 no-op 快取與記憶體稽核
type Stores struct {
	Ledger repository.LedgerRepository
	Cache  cache.SnapshotCache
	Audit  audit.AuditLog
	Picker raffle.Picker
}

// Application 組好的 service，cmd/server 與 cmd/raffle 共用
type Application struct {
	Ledger  repository.LedgerRepository
	Sales   service.SaleService
	Reports service.ReportService
	Draws   service.DrawService
	Admin   service.AdminService

	closers []func()
}

// New 用現成的 store 建立所有 service
func New(stores Stores, cfg config.RaffleConfig, log *zap.Logger) *Application {
	if log == nil {
		log = logger.WithComponent("app")
	}
	if stores.Cache == nil {
		stores.Cache = cache.NewNoopSnapshotCache()
	}
	if stores.Audit == nil {
		stores.Audit = audit.NewMemoryAuditLog(0)
	}

	loader := service.NewSnapshotLoader(stores.Ledger, stores.Cache, log.Named("snapshot"))
	return &Application{
		Ledger:  stores.Ledger,
		Sales:   service.NewSaleService(stores.Ledger, loader, cfg, stores.Audit, log.Named("sale")),
		Reports: service.NewReportService(loader, cfg, log.Named("report")),
		Draws:   service.NewDrawService(loader, cfg, stores.Audit, stores.Picker, log.Named("draw")),
		Admin:   service.NewAdminService(stores.Ledger, loader, cfg, stores.Audit, log.Named("admin")),
	}
}

// Open 連線 Postgres（必要）與 Redis（有設定才連），確保帳本存在後建立 Application
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Application, error) {
	if log == nil {
		log = logger.WithComponent("app")
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, err
	}
	closers := []func(){pool.Close}

	ledger, err := openLedger(ctx, pool, cfg.Raffle.Sheet)
	if err != nil {
		pool.Close()
		return nil, err
	}

	stores := Stores{Ledger: ledger}
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			// Redis 只是快取和稽核，連不上就降級
			log.Warn("redis unavailable, falling back to in-memory audit and no cache", zap.Error(err))
		} else {
			stores.Cache = cache.NewRedisSnapshotCache(rdb, cfg.Raffle.Sheet, cfg.Raffle.CacheTTL)
			stores.Audit = audit.NewRedisStreamAuditLog(rdb, cfg.Raffle.Sheet, auditStreamMaxLen)
			closers = append(closers, func() { closeRedis(rdb, log) })
		}
	}

	application := New(stores, cfg.Raffle, log)
	application.closers = closers
	log.Info("application ready",
		zap.String("sheet", cfg.Raffle.Sheet),
		zap.Int("total_numbers", cfg.Raffle.TotalNumbers),
		zap.Bool("redis", stores.Cache != nil),
	)
	return application, nil
}

// Close 反向釋放連線
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func openLedger(ctx context.Context, pool *pgxpool.Pool, sheet string) (repository.LedgerRepository, error) {
	if err := database.EnsureSchema(ctx, pool); err != nil {
		return nil, err
	}
	ledger := repository.NewLedgerRepository(pool, sheet)
	if err := ledger.EnsureSheet(ctx, sheet, model.LedgerHeader); err != nil {
		return nil, fmt.Errorf("ensure sheet %q: %w", sheet, err)
	}
	return ledger, nil
}

func closeRedis(rdb *redis.Client, log *zap.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn("close redis failed", zap.Error(err))
	}
}
