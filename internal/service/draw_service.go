package service

import (
	"context"
	"errors"
	"raffle-tracker/config"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/metrics"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/raffle"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"
	"strconv"

	"go.uber.org/zap"
)

type DrawService interface {
	// Draw 從目前已售號碼中抽出得主
	Draw(ctx context.Context, actor string) (*model.DrawResult, error)
}

type DrawServiceImpl struct {
	loader    *SnapshotLoader
	inventory *raffle.Inventory
	auditLog  audit.AuditLog
	sheet     string
	pick      raffle.Picker
	log       *zap.Logger
}

// NewDrawService pick 為 nil 時使用 math/rand/v2
func NewDrawService(loader *SnapshotLoader, cfg config.RaffleConfig, auditLog audit.AuditLog, pick raffle.Picker, log *zap.Logger) DrawService {
	if log == nil {
		log = logger.WithComponent("draw_service")
	}
	if auditLog == nil {
		auditLog = audit.NewMemoryAuditLog(0)
	}
	if pick == nil {
		pick = raffle.RandomPicker()
	}
	return &DrawServiceImpl{
		loader:    loader,
		inventory: raffle.NewInventory(cfg.TotalNumbers),
		auditLog:  auditLog,
		sheet:     cfg.Sheet,
		pick:      pick,
		log:       log,
	}
}

func (s *DrawServiceImpl) Draw(ctx context.Context, actor string) (*model.DrawResult, error) {
	snapshot, err := s.loader.Fresh(ctx)
	if err != nil {
		return nil, err
	}

	result, err := raffle.DrawWinner(snapshot, s.inventory, s.pick)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoEligibleNumbers) {
			metrics.ObserveDraw("no_eligible")
			s.log.Info("draw skipped: no sold numbers")
		}
		return nil, err
	}

	event := audit.NewEvent(audit.EventDraw, s.sheet)
	event.Actor = actor
	event.Number = result.Winner.Number
	event.Seller = result.Winner.Seller
	event.Detail = "eligible=" + strconv.Itoa(result.EligibleCount)
	s.record(ctx, event)

	if result.HasDuplicate() {
		metrics.ObserveDraw("duplicate")
		s.log.Warn("draw winner number has duplicate sold records",
			zap.Int("number", result.Winner.Number),
			zap.Int("records", len(result.Duplicates)),
		)
		dup := audit.NewEvent(audit.EventDuplicateDetected, s.sheet)
		dup.Actor = actor
		dup.Number = result.Winner.Number
		dup.Detail = "records=" + strconv.Itoa(len(result.Duplicates))
		s.record(ctx, dup)
	} else {
		metrics.ObserveDraw("winner")
	}

	s.log.Info("draw completed",
		zap.Int("number", result.Winner.Number),
		zap.String("seller", result.Winner.Seller),
		zap.Int("eligible", result.EligibleCount),
	)
	return result, nil
}

func (s *DrawServiceImpl) record(ctx context.Context, event audit.Event) {
	if err := s.auditLog.Record(ctx, event); err != nil {
		s.log.Warn("audit record failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
