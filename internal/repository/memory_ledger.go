package repository

import (
	"context"
	"raffle-tracker/internal/model"
	"sync"
)

type memorySheet struct {
	header []string
	rows   []model.LedgerRow
}

// MemoryLedgerRepository 記憶體版帳本，只給測試使用；CLI 測試透過 Opener 注入
type MemoryLedgerRepository struct {
	mu     sync.RWMutex
	sheet  string
	sheets map[string]*memorySheet
}

func NewMemoryLedgerRepository(sheet string) *MemoryLedgerRepository {
	return &MemoryLedgerRepository{
		sheet:  sheet,
		sheets: map[string]*memorySheet{},
	}
}

func (m *MemoryLedgerRepository) Name() string {
	return m.sheet
}

func (m *MemoryLedgerRepository) EnsureSheet(ctx context.Context, name string, header []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(name, header)
	return nil
}

func (m *MemoryLedgerRepository) ReadAll(ctx context.Context) ([]model.LedgerRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sheets[m.sheet]
	if !ok {
		return []model.LedgerRow{}, nil
	}

	rows := make([]model.LedgerRow, 0, len(s.rows))
	for _, row := range s.rows {
		rows = append(rows, append(model.LedgerRow(nil), row...))
	}
	return rows, nil
}

func (m *MemoryLedgerRepository) AppendRow(ctx context.Context, row model.LedgerRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(m.sheet, model.LedgerHeader)
	s.rows = append(s.rows, append(model.LedgerRow(nil), row...))
	return nil
}

func (m *MemoryLedgerRepository) ArchiveRows(ctx context.Context, archiveName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.ensure(m.sheet, model.LedgerHeader)
	archive := m.ensure(archiveName, current.header)
	moved := int64(len(current.rows))
	archive.rows = append(archive.rows, current.rows...)
	current.rows = nil
	return moved, nil
}

// Sheet 回傳指定工作表目前的列數，測試用
func (m *MemoryLedgerRepository) Sheet(name string) (header []string, rows int, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sheets[name]
	if !ok {
		return nil, 0, false
	}
	return s.header, len(s.rows), true
}

func (m *MemoryLedgerRepository) ensure(name string, header []string) *memorySheet {
	s, ok := m.sheets[name]
	if !ok {
		s = &memorySheet{header: append([]string(nil), header...)}
		m.sheets[name] = s
	}
	return s
}
