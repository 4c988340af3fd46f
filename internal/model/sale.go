package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus 帳本中的銷售狀態，沿用試算表上的西班牙文值
type SaleStatus string

const (
	SaleStatusSold      SaleStatus = "vendido"
	SaleStatusReserved  SaleStatus = "reservado"
	SaleStatusCancelled SaleStatus = "cancelado"
)

// IsValid 驗證狀態是否有效
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusSold, SaleStatusReserved, SaleStatusCancelled:
		return true
	}
	return false
}

// TimestampLayout 帳本 fecha 欄位的固定格式 (YYYY-MM-DD HH:MM:SS)
const TimestampLayout = "2006-01-02 15:04:05"

// ManualSaleNote 手動登記的銷售固定寫入 observaciones
const ManualSaleNote = "Venta manual"

// SaleRecord 帳本中的一筆銷售，建立後不再修改
type SaleRecord struct {
	// Row 是該筆在快照中的位置（從 1 開始），方便對帳
	Row        int             `json:"row,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Seller     string          `json:"seller"`
	Number     int             `json:"number"`
	BuyerName  string          `json:"buyer_name"`
	BuyerPhone string          `json:"buyer_phone"`
	BuyerEmail string          `json:"buyer_email,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     SaleStatus      `json:"status"`
	Notes      string          `json:"notes,omitempty"`

	// 原始帳本列，匯出時保留無法解析的欄位原值
	raw LedgerRow
}

// MarshalJSON 對外回傳的 timestamp 與帳本 fecha 同格式，未知時間輸出空字串
func (r SaleRecord) MarshalJSON() ([]byte, error) {
	type plain SaleRecord
	timestamp := ""
	if !r.Timestamp.IsZero() {
		timestamp = r.Timestamp.Format(TimestampLayout)
	}
	return json.Marshal(struct {
		plain
		Timestamp string `json:"timestamp"`
	}{plain: plain(r), Timestamp: timestamp})
}

func (r *SaleRecord) UnmarshalJSON(data []byte) error {
	type plain SaleRecord
	aux := struct {
		*plain
		Timestamp string `json:"timestamp"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Timestamp = time.Time{}
	if aux.Timestamp == "" {
		return nil
	}
	ts, err := time.ParseInLocation(TimestampLayout, aux.Timestamp, time.Local)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	r.Timestamp = ts
	return nil
}

// IsSold 只有 vendido 會扣庫存、算營收
func (r *SaleRecord) IsSold() bool {
	return r.Status == SaleStatusSold
}

// RegisterSaleRequest 登記銷售請求；Number、Amount 用指標區分「沒填」與零值
type RegisterSaleRequest struct {
	Seller     string           `json:"seller"`
	Number     *int             `json:"number"`
	BuyerName  string           `json:"buyer_name"`
	BuyerPhone string           `json:"buyer_phone"`
	BuyerEmail string           `json:"buyer_email"`
	Amount     *decimal.Decimal `json:"amount"`
	Notes      string           `json:"notes"`
}

// SaleFilter 管理/賣家面板的列表篩選，零值代表不篩
type SaleFilter struct {
	Seller string
	Status SaleStatus
	Day    time.Time
}

func (f SaleFilter) Match(r *SaleRecord) bool {
	if f.Seller != "" && r.Seller != f.Seller {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !f.Day.IsZero() {
		y1, m1, d1 := f.Day.Date()
		y2, m2, d2 := r.Timestamp.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	return true
}
