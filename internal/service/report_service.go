package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"raffle-tracker/config"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/raffle"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

// ReportService 讀取面：庫存、統計、列表、匯出，全部從單一快照推導
type ReportService interface {
	Inventory(ctx context.Context) (*model.InventoryView, error)
	Summary(ctx context.Context) (*model.SalesSummary, error)
	SellerStats(ctx context.Context, seller string) (*model.SellerStats, error)
	Sales(ctx context.Context, filter model.SaleFilter) ([]model.SaleRecord, error)
	// Export 以 CSV 輸出篩選後的帳本，欄位順序與帳本相同
	Export(ctx context.Context, filter model.SaleFilter, w io.Writer) error
	// Duplicates 同號碼多筆 vendido 的紀錄，供外部對帳
	Duplicates(ctx context.Context) ([]model.DuplicateGroup, error)
	// Sellers 設定名單在前，帳本中其他賣家排序在後
	Sellers(ctx context.Context) ([]string, error)
}

type ReportServiceImpl struct {
	loader     *SnapshotLoader
	inventory  *raffle.Inventory
	aggregator *raffle.Aggregator
	roster     []string
	log        *zap.Logger
}

func NewReportService(loader *SnapshotLoader, cfg config.RaffleConfig, log *zap.Logger) ReportService {
	if log == nil {
		log = logger.WithComponent("report_service")
	}
	return &ReportServiceImpl{
		loader:     loader,
		inventory:  raffle.NewInventory(cfg.TotalNumbers),
		aggregator: raffle.NewAggregator(cfg.TotalNumbers, cfg.CommissionRate),
		roster:     cfg.Sellers,
		log:        log,
	}
}

func (s *ReportServiceImpl) Inventory(ctx context.Context) (*model.InventoryView, error) {
	snapshot, err := s.loader.ForDisplay(ctx)
	if err != nil {
		return nil, err
	}

	view := s.inventory.View(snapshot)
	if len(view.Anomalies) > 0 {
		s.log.Warn("inventory excluded malformed records", zap.Int("count", len(view.Anomalies)))
	}
	return &view, nil
}

func (s *ReportServiceImpl) Summary(ctx context.Context) (*model.SalesSummary, error) {
	snapshot, err := s.loader.ForDisplay(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.aggregator.Summarize(snapshot)
	if len(summary.FlaggedAmounts) > 0 {
		s.log.Warn("sold records with non-numeric amount counted as zero", zap.Int("count", len(summary.FlaggedAmounts)))
	}
	return &summary, nil
}

func (s *ReportServiceImpl) SellerStats(ctx context.Context, seller string) (*model.SellerStats, error) {
	seller = strings.TrimSpace(seller)
	if seller == "" {
		return nil, apperrors.NewFieldError("seller", apperrors.ErrMissingField)
	}

	snapshot, err := s.loader.ForDisplay(ctx)
	if err != nil {
		return nil, err
	}

	stats := s.aggregator.SellerStats(snapshot, seller)
	return &stats, nil
}

func (s *ReportServiceImpl) Sales(ctx context.Context, filter model.SaleFilter) ([]model.SaleRecord, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.NewFieldError("status", apperrors.ErrInvalidInput)
	}

	snapshot, err := s.loader.ForDisplay(ctx)
	if err != nil {
		return nil, err
	}
	return raffle.FilterRecords(snapshot, filter), nil
}

func (s *ReportServiceImpl) Export(ctx context.Context, filter model.SaleFilter, w io.Writer) error {
	records, err := s.Sales(ctx, filter)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(model.LedgerHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range records {
		if err := writer.Write(records[i].Cells()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *ReportServiceImpl) Duplicates(ctx context.Context) ([]model.DuplicateGroup, error) {
	snapshot, err := s.loader.Fresh(ctx)
	if err != nil {
		return nil, err
	}

	dups := raffle.Duplicates(snapshot)
	for _, d := range dups {
		s.log.Warn("duplicate sold number", zap.Int("number", d.Number), zap.Int("records", len(d.Records)))
	}
	return dups, nil
}

func (s *ReportServiceImpl) Sellers(ctx context.Context) ([]string, error) {
	snapshot, err := s.loader.ForDisplay(ctx)
	if err != nil {
		return nil, err
	}
	return raffle.Sellers(s.roster, snapshot), nil
}
