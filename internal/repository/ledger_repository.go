package repository

import (
	"context"
	"fmt"
	"raffle-tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository 只能附加的帳本：整份讀取、一次附加一列。
// 沒有 compare-and-swap 也沒有列鎖，唯一性由呼叫端檢查
type LedgerRepository interface {
	// Name 帳本（工作表）名稱
	Name() string
	// EnsureSheet 工作表不存在時以 header 建立
	EnsureSheet(ctx context.Context, name string, header []string) error
	// ReadAll 依附加順序回傳所有列（不含標題列）
	ReadAll(ctx context.Context) ([]model.LedgerRow, error)
	// AppendRow 附加一列，工作表不存在時先建立
	AppendRow(ctx context.Context, row model.LedgerRow) error
	// ArchiveRows 把目前所有列搬到 archiveName 工作表（管理用途，不在登記流程中）
	ArchiveRows(ctx context.Context, archiveName string) (int64, error)
}

type LedgerRepositoryImpl struct {
	pool   *pgxpool.Pool
	sheet  string
	header []string
}

func NewLedgerRepository(pool *pgxpool.Pool, sheet string) LedgerRepository {
	return &LedgerRepositoryImpl{
		pool:   pool,
		sheet:  sheet,
		header: model.LedgerHeader,
	}
}

func (r *LedgerRepositoryImpl) Name() string {
	return r.sheet
}

func (r *LedgerRepositoryImpl) EnsureSheet(ctx context.Context, name string, header []string) error {
	return ensureSheet(ctx, r.pool, name, header)
}

func (r *LedgerRepositoryImpl) ReadAll(ctx context.Context) ([]model.LedgerRow, error) {
	query := `
		SELECT cells
		FROM ledger_rows
		WHERE sheet = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, r.sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgerRows := make([]model.LedgerRow, 0)

	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}
		ledgerRows = append(ledgerRows, model.LedgerRow(cells))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ledgerRows, nil
}

func (r *LedgerRepositoryImpl) AppendRow(ctx context.Context, row model.LedgerRow) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := ensureSheet(ctx, tx, r.sheet, r.header); err != nil {
		return err
	}

	query := `
		INSERT INTO ledger_rows (sheet, cells)
		VALUES ($1, $2)
	`

	if _, err := tx.Exec(ctx, query, r.sheet, []string(row)); err != nil {
		return fmt.Errorf("failed to append ledger row: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *LedgerRepositoryImpl) ArchiveRows(ctx context.Context, archiveName string) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if err := ensureSheet(ctx, tx, r.sheet, r.header); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO ledger_sheets (name, header)
		SELECT $2, header FROM ledger_sheets WHERE name = $1
	`
	if _, err := tx.Exec(ctx, query, r.sheet, archiveName); err != nil {
		return 0, fmt.Errorf("failed to create archive sheet: %w", err)
	}

	result, err := tx.Exec(ctx, `UPDATE ledger_rows SET sheet = $2 WHERE sheet = $1`, r.sheet, archiveName)
	if err != nil {
		return 0, fmt.Errorf("failed to move rows to archive: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func ensureSheet(ctx context.Context, db execer, name string, header []string) error {
	query := `
		INSERT INTO ledger_sheets (name, header)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := db.Exec(ctx, query, name, header); err != nil {
		return fmt.Errorf("failed to ensure sheet %q: %w", name, err)
	}
	return nil
}
