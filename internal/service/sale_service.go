package service

import (
	"context"
	"fmt"
	"raffle-tracker/config"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/metrics"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/raffle"
	"raffle-tracker/internal/repository"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	pathInteractive = "interactive"
	pathManual      = "manual"
)

type SaleService interface {
	// 登記銷售：驗證後附加一列到帳本
	RegisterSale(ctx context.Context, req model.RegisterSaleRequest) (*model.SaleRecord, error)
	// 手動登記：同樣的驗證與附加流程，observaciones 固定為 "Venta manual"
	RegisterManualSale(ctx context.Context, req model.RegisterSaleRequest) (*model.SaleRecord, error)
}

type SaleServiceImpl struct {
	ledger    repository.LedgerRepository
	loader    *SnapshotLoader
	inventory *raffle.Inventory
	auditLog  audit.AuditLog
	unitPrice decimal.Decimal
	now       func() time.Time
	log       *zap.Logger
}

type SaleServiceOption func(*SaleServiceImpl)

// WithClock 替換登記時間的來源（測試用）
func WithClock(now func() time.Time) SaleServiceOption {
	return func(s *SaleServiceImpl) {
		s.now = now
	}
}

func NewSaleService(
	ledger repository.LedgerRepository,
	loader *SnapshotLoader,
	cfg config.RaffleConfig,
	auditLog audit.AuditLog,
	log *zap.Logger,
	opts ...SaleServiceOption,
) SaleService {
	if log == nil {
		log = logger.WithComponent("sale_service")
	}
	if auditLog == nil {
		auditLog = audit.NewMemoryAuditLog(0)
	}
	s := &SaleServiceImpl{
		ledger:    ledger,
		loader:    loader,
		inventory: raffle.NewInventory(cfg.TotalNumbers),
		auditLog:  auditLog,
		unitPrice: cfg.UnitPrice,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SaleServiceImpl) RegisterSale(ctx context.Context, req model.RegisterSaleRequest) (*model.SaleRecord, error) {
	return s.register(ctx, req, pathInteractive)
}

func (s *SaleServiceImpl) RegisterManualSale(ctx context.Context, req model.RegisterSaleRequest) (*model.SaleRecord, error) {
	req.Notes = model.ManualSaleNote
	return s.register(ctx, req, pathManual)
}

func (s *SaleServiceImpl) register(ctx context.Context, req model.RegisterSaleRequest, path string) (*model.SaleRecord, error) {
	log := s.log.With(zap.String("path", path), zap.String("sheet", s.ledger.Name()))

	// 1. 必填欄位
	if err := validateRequired(req); err != nil {
		return nil, s.reject(log, "missing_field", err)
	}

	// 2. 號碼範圍
	number := *req.Number
	if !s.inventory.InRange(number) {
		err := apperrors.NewFieldError("number",
			fmt.Errorf("%w: %d is outside [1, %d]", apperrors.ErrInvalidNumber, number, s.inventory.Total()))
		return nil, s.reject(log, "invalid_number", err)
	}

	// 3. 重新讀帳本確認號碼未售出（不使用顯示快取）
	snapshot, err := s.loader.Fresh(ctx)
	if err != nil {
		metrics.ObserveRegistrationFailure("data_read")
		return nil, err
	}
	if s.inventory.IsSold(snapshot, number) {
		err := apperrors.NewFieldError("number",
			fmt.Errorf("%w: %d", apperrors.ErrNumberAlreadySold, number))
		return nil, s.reject(log, "already_sold", err)
	}

	// 4. 金額：沒填就用單價
	amount := s.unitPrice
	if req.Amount != nil {
		amount = *req.Amount
	}
	if !amount.IsPositive() {
		err := apperrors.NewFieldError("amount",
			fmt.Errorf("%w: %s must be positive", apperrors.ErrInvalidAmount, amount))
		return nil, s.reject(log, "invalid_amount", err)
	}

	record := model.SaleRecord{
		Timestamp:  s.now().Truncate(time.Second),
		Seller:     strings.TrimSpace(req.Seller),
		Number:     number,
		BuyerName:  strings.TrimSpace(req.BuyerName),
		BuyerPhone: strings.TrimSpace(req.BuyerPhone),
		BuyerEmail: strings.TrimSpace(req.BuyerEmail),
		Amount:     amount,
		Status:     model.SaleStatusSold,
		Notes:      strings.TrimSpace(req.Notes),
	}

	// 只附加一次，失敗不重試，由呼叫端決定是否改走手動登記
	if err := s.ledger.AppendRow(ctx, record.LedgerRow()); err != nil {
		log.Error("append sale failed", zap.Int("number", number), zap.Error(err))
		metrics.ObserveRegistrationFailure("store_unavailable")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}

	s.loader.Invalidate(ctx)
	s.recordAudit(ctx, log, path, record)
	metrics.ObserveSale(path)

	log.Info("sale registered",
		zap.Int("number", record.Number),
		zap.String("seller", record.Seller),
		zap.String("amount", record.Amount.String()),
	)

	return &record, nil
}

func (s *SaleServiceImpl) reject(log *zap.Logger, reason string, err error) error {
	log.Warn("sale rejected", zap.String("reason", reason), zap.String("field", apperrors.FieldOf(err)), zap.Error(err))
	metrics.ObserveRegistrationFailure(reason)
	return err
}

func (s *SaleServiceImpl) recordAudit(ctx context.Context, log *zap.Logger, path string, record model.SaleRecord) {
	eventType := audit.EventSaleRegistered
	if path == pathManual {
		eventType = audit.EventManualSaleRegistered
	}
	event := audit.NewEvent(eventType, s.ledger.Name())
	event.Actor = record.Seller
	event.Seller = record.Seller
	event.Number = record.Number
	event.Detail = record.Amount.String()

	// 帳本已寫入，稽核失敗不影響結果
	if err := s.auditLog.Record(ctx, event); err != nil {
		log.Warn("audit record failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func validateRequired(req model.RegisterSaleRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"seller", req.Seller},
		{"buyer_name", req.BuyerName},
		{"buyer_phone", req.BuyerPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewFieldError(f.field, apperrors.ErrMissingField)
		}
	}
	if req.Number == nil {
		return apperrors.NewFieldError("number", apperrors.ErrMissingField)
	}
	return nil
}
