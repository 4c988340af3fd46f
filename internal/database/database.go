package database

import (
	"context"
	"fmt"
	"raffle-tracker/config"
	apperrors "raffle-tracker/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ledger_rows 只做 INSERT；cells 依 ledger_sheets.header 的欄位順序存放
const schema = `
	CREATE TABLE IF NOT EXISTS ledger_sheets (
		name       TEXT PRIMARY KEY,
		header     TEXT[] NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS ledger_rows (
		id         BIGSERIAL PRIMARY KEY,
		sheet      TEXT NOT NULL REFERENCES ledger_sheets(name),
		cells      TEXT[] NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS ledger_rows_sheet_id_idx ON ledger_rows (sheet, id);
`

func InitDatabase(config *config.DatabaseConfig) (*pgxpool.Pool, error) {

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.DBName,
		config.SSLMode,
		"UTC",
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	// 設置連接池參數
	poolConfig.MaxConns = 10                      // 最大連接數
	poolConfig.MinConns = 1                       // 最小連接數
	poolConfig.MaxConnLifetime = time.Hour        // 連接最大生命週期
	poolConfig.MaxConnIdleTime = time.Minute * 30 // 最大閒置時間

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	return pool, nil
}

// EnsureSchema 建立帳本資料表（可重複執行）
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure ledger schema: %w", err)
	}
	return nil
}
