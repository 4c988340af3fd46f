package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 帳本欄位，順序固定，也是匯出 CSV 的欄位順序
const (
	ColumnDate       = "fecha"
	ColumnSeller     = "vendedor"
	ColumnNumber     = "numero"
	ColumnBuyerName  = "nombre_comprador"
	ColumnBuyerPhone = "telefono"
	ColumnBuyerEmail = "email"
	ColumnAmount     = "monto"
	ColumnStatus     = "estado"
	ColumnNotes      = "observaciones"
)

var LedgerHeader = []string{
	ColumnDate,
	ColumnSeller,
	ColumnNumber,
	ColumnBuyerName,
	ColumnBuyerPhone,
	ColumnBuyerEmail,
	ColumnAmount,
	ColumnStatus,
	ColumnNotes,
}

// LedgerRow 帳本中的一列原始資料
type LedgerRow []string

// Anomaly 解析帳本時遇到的資料品質問題；不會中斷解析
type Anomaly struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("row %d %s=%q: %s", a.Row, a.Column, a.Value, a.Reason)
}

// Snapshot 某一時間點讀到的完整帳本，只在一次操作內使用
type Snapshot struct {
	Records   []SaleRecord `json:"records"`
	Anomalies []Anomaly    `json:"anomalies,omitempty"`
}

// AnomaliesIn 回傳指定欄位的異常
func (s *Snapshot) AnomaliesIn(column string) []Anomaly {
	var out []Anomaly
	for _, a := range s.Anomalies {
		if a.Column == column {
			out = append(out, a)
		}
	}
	return out
}

// LedgerRow 依 LedgerHeader 的順序轉成帳本列
func (r *SaleRecord) LedgerRow() LedgerRow {
	return LedgerRow{
		r.Timestamp.Format(TimestampLayout),
		r.Seller,
		strconv.Itoa(r.Number),
		r.BuyerName,
		r.BuyerPhone,
		r.BuyerEmail,
		r.Amount.String(),
		string(r.Status),
		r.Notes,
	}
}

// Cells 回傳原始帳本列；不是從帳本讀出的紀錄則用 LedgerRow()
func (r *SaleRecord) Cells() LedgerRow {
	if r.raw != nil {
		return r.raw
	}
	return r.LedgerRow()
}

// ParseSnapshot 把帳本列轉成 SaleRecord。單一欄位無法解析時記錄 Anomaly，該筆仍保留
func ParseSnapshot(rows []LedgerRow) Snapshot {
	snapshot := Snapshot{Records: make([]SaleRecord, 0, len(rows))}

	for i, row := range rows {
		if isHeader(row) {
			continue
		}
		record, anomalies := parseRow(i+1, row)
		snapshot.Records = append(snapshot.Records, record)
		snapshot.Anomalies = append(snapshot.Anomalies, anomalies...)
	}

	return snapshot
}

func parseRow(index int, row LedgerRow) (SaleRecord, []Anomaly) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var anomalies []Anomaly
	flag := func(column, value, reason string) {
		anomalies = append(anomalies, Anomaly{Row: index, Column: column, Value: value, Reason: reason})
	}

	raw := make(LedgerRow, len(LedgerHeader))
	for i := range raw {
		raw[i] = cell(i)
	}

	record := SaleRecord{
		raw:        raw,
		Row:        index,
		Seller:     cell(1),
		BuyerName:  cell(3),
		BuyerPhone: cell(4),
		BuyerEmail: cell(5),
		Notes:      cell(8),
	}

	if raw := cell(0); raw != "" {
		ts, err := time.ParseInLocation(TimestampLayout, raw, time.Local)
		if err != nil {
			flag(ColumnDate, raw, "unparseable timestamp")
		} else {
			record.Timestamp = ts
		}
	}

	if n, ok := coerceNumber(cell(2)); ok {
		record.Number = n
	} else {
		flag(ColumnNumber, cell(2), "non-numeric number")
	}

	if amount, ok := coerceAmount(cell(6)); ok {
		record.Amount = amount
	} else {
		record.Amount = decimal.Zero
		flag(ColumnAmount, cell(6), "non-numeric amount")
	}

	status := SaleStatus(strings.ToLower(cell(7)))
	if !status.IsValid() {
		flag(ColumnStatus, cell(7), "unknown status")
	}
	record.Status = status

	return record, anomalies
}

// maxNumberCell 號碼欄位絕對值上限，超過視為無法解析
var maxNumberCell = decimal.NewFromInt(math.MaxInt32)

// coerceNumber 試算表常把整數存成 "500.0"，整數值的浮點數也接受
func coerceNumber(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() || d.Abs().GreaterThan(maxNumberCell) {
		return 0, false
	}
	return int(d.IntPart()), true
}

func coerceAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func isHeader(row LedgerRow) bool {
	if len(row) < len(LedgerHeader) {
		return false
	}
	for i, col := range LedgerHeader {
		if strings.TrimSpace(row[i]) != col {
			return false
		}
	}
	return true
}
