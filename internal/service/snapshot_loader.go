package service

import (
	"context"
	"fmt"
	"raffle-tracker/internal/cache"
	"raffle-tracker/internal/metrics"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"
	"sync/atomic"

	"go.uber.org/zap"
)

// SnapshotLoader 每次操作讀一次帳本。Fresh 一定直接讀帳本；ForDisplay 可以走短效快取
type SnapshotLoader struct {
	ledger repository.LedgerRepository
	cache  cache.SnapshotCache
	log    *zap.Logger

	// generation 每次 Invalidate 加一；讀帳本期間有變動就不回填快取
	generation atomic.Uint64
}

func NewSnapshotLoader(ledger repository.LedgerRepository, snapshotCache cache.SnapshotCache, log *zap.Logger) *SnapshotLoader {
	if snapshotCache == nil {
		snapshotCache = cache.NewNoopSnapshotCache()
	}
	if log == nil {
		log = logger.WithComponent("snapshot")
	}
	return &SnapshotLoader{
		ledger: ledger,
		cache:  snapshotCache,
		log:    log,
	}
}

// Fresh 直接讀帳本，寫入前的檢查一律使用
func (l *SnapshotLoader) Fresh(ctx context.Context) (model.Snapshot, error) {
	rows, err := l.readLedger(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	return l.parse(rows), nil
}

// ForDisplay 顯示用；快取失敗只記 log，退回讀帳本
func (l *SnapshotLoader) ForDisplay(ctx context.Context) (model.Snapshot, error) {
	rows, hit, err := l.cache.Get(ctx)
	if err != nil {
		l.log.Warn("snapshot cache get failed", zap.Error(err))
	}
	if hit {
		metrics.ObserveSnapshotRead("cache")
		return l.parse(rows), nil
	}

	generation := l.generation.Load()
	rows, err = l.readLedger(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	if l.generation.Load() != generation {
		// 讀取期間有登記或重設，這份 rows 可能比帳本舊
		l.log.Debug("skip snapshot cache set after concurrent invalidation")
	} else if err := l.cache.Set(ctx, rows); err != nil {
		l.log.Warn("snapshot cache set failed", zap.Error(err))
	}
	return l.parse(rows), nil
}

// Invalidate 成功登記後清掉顯示快取
func (l *SnapshotLoader) Invalidate(ctx context.Context) {
	l.generation.Add(1)
	if err := l.cache.Invalidate(ctx); err != nil {
		l.log.Warn("snapshot cache invalidate failed", zap.Error(err))
	}
}

func (l *SnapshotLoader) readLedger(ctx context.Context) ([]model.LedgerRow, error) {
	rows, err := l.ledger.ReadAll(ctx)
	if err != nil {
		l.log.Error("read ledger failed", zap.String("sheet", l.ledger.Name()), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDataRead, err)
	}
	metrics.ObserveSnapshotRead("store")
	return rows, nil
}

func (l *SnapshotLoader) parse(rows []model.LedgerRow) model.Snapshot {
	snapshot := model.ParseSnapshot(rows)
	metrics.SetLedgerAnomalies(len(snapshot.Anomalies))
	for _, a := range snapshot.Anomalies {
		l.log.Warn("ledger anomaly",
			zap.Int("row", a.Row),
			zap.String("column", a.Column),
			zap.String("value", a.Value),
			zap.String("reason", a.Reason),
		)
	}
	return snapshot
}
