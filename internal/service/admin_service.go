package service

import (
	"context"
	"fmt"
	"raffle-tracker/config"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// AdminService 管理操作，不在登記流程中
type AdminService interface {
	// Reset 把目前帳本的列搬到歸檔工作表（不刪資料）。需開啟 AllowReset 並輸入帳本名稱確認
	Reset(ctx context.Context, confirmation string, actor string) (*model.ResetResult, error)
	// AuditTrail 最近 n 筆稽核紀錄
	AuditTrail(ctx context.Context, n int) ([]audit.Event, error)
}

type AdminServiceImpl struct {
	ledger     repository.LedgerRepository
	loader     *SnapshotLoader
	auditLog   audit.AuditLog
	allowReset bool
	now        func() time.Time
	log        *zap.Logger
}

func NewAdminService(
	ledger repository.LedgerRepository,
	loader *SnapshotLoader,
	cfg config.RaffleConfig,
	auditLog audit.AuditLog,
	log *zap.Logger,
) AdminService {
	if log == nil {
		log = logger.WithComponent("admin_service")
	}
	if auditLog == nil {
		auditLog = audit.NewMemoryAuditLog(0)
	}
	return &AdminServiceImpl{
		ledger:     ledger,
		loader:     loader,
		auditLog:   auditLog,
		allowReset: cfg.AllowReset,
		now:        time.Now,
		log:        log,
	}
}

func (s *AdminServiceImpl) Reset(ctx context.Context, confirmation string, actor string) (*model.ResetResult, error) {
	sheet := s.ledger.Name()
	log := s.log.With(zap.String("sheet", sheet), zap.String("actor", actor))

	requested := audit.NewEvent(audit.EventResetRequested, sheet)
	requested.Actor = actor
	// 稽核寫不進去就不執行
	if err := s.auditLog.Record(ctx, requested); err != nil {
		log.Error("audit record failed, reset aborted", zap.Error(err))
		return nil, fmt.Errorf("%w: audit: %w", apperrors.ErrStoreUnavailable, err)
	}

	if !s.allowReset {
		s.rejected(ctx, log, actor, apperrors.ErrResetDisabled)
		return nil, apperrors.ErrResetDisabled
	}
	if confirmation != sheet {
		s.rejected(ctx, log, actor, apperrors.ErrResetNotConfirmed)
		return nil, apperrors.NewFieldError("confirmation", apperrors.ErrResetNotConfirmed)
	}

	archive := fmt.Sprintf("%s_archivo_%s", sheet, s.now().Format("20060102150405"))
	moved, err := s.ledger.ArchiveRows(ctx, archive)
	if err != nil {
		log.Error("archive ledger failed", zap.String("archive", archive), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	s.loader.Invalidate(ctx)

	completed := audit.NewEvent(audit.EventResetCompleted, sheet)
	completed.Actor = actor
	completed.Detail = fmt.Sprintf("archive=%s moved=%d", archive, moved)
	if err := s.auditLog.Record(ctx, completed); err != nil {
		log.Warn("audit record failed", zap.String("event", string(completed.Type)), zap.Error(err))
	}

	log.Warn("ledger archived", zap.String("archive", archive), zap.Int64("moved_rows", moved))
	return &model.ResetResult{Sheet: sheet, Archive: archive, MovedRows: moved}, nil
}

func (s *AdminServiceImpl) AuditTrail(ctx context.Context, n int) ([]audit.Event, error) {
	return s.auditLog.Recent(ctx, n)
}

func (s *AdminServiceImpl) rejected(ctx context.Context, log *zap.Logger, actor string, reason error) {
	log.Warn("reset rejected", zap.Error(reason))
	event := audit.NewEvent(audit.EventResetRejected, s.ledger.Name())
	event.Actor = actor
	event.Detail = reason.Error()
	if err := s.auditLog.Record(ctx, event); err != nil {
		log.Warn("audit record failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
