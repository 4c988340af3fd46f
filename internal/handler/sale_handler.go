package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/service"
	apperrors "raffle-tracker/pkg/app_errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	sales   service.SaleService
	reports service.ReportService
	now     func() time.Time
}

func NewSaleHandler(sales service.SaleService, reports service.ReportService) *SaleHandler {
	return &SaleHandler{sales: sales, reports: reports, now: time.Now}
}

func (h *SaleHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("sales", h.RegisterSale)
		router.POST("sales/manual", h.RegisterManualSale)
		router.GET("sales", h.ListSales)
		router.GET("sales/export", h.ExportSales)
	}
}

// SalesQuery 列表/匯出的篩選條件，date 格式 YYYY-MM-DD
type SalesQuery struct {
	Seller string `form:"seller"`
	Status string `form:"status"`
	Date   string `form:"date"`
}

func (q SalesQuery) toFilter() (model.SaleFilter, error) {
	filter := model.SaleFilter{
		Seller: strings.TrimSpace(q.Seller),
		Status: model.SaleStatus(strings.ToLower(strings.TrimSpace(q.Status))),
	}
	if q.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
		if err != nil {
			return model.SaleFilter{}, apperrors.NewFieldError("date", fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err))
		}
		filter.Day = day
	}
	return filter, nil
}

func (h *SaleHandler) RegisterSale(c *gin.Context) {
	var req model.RegisterSaleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	record, err := h.sales.RegisterSale(c, req)
	if err != nil {
		handleError(c, err, "RegisterSale")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *SaleHandler) RegisterManualSale(c *gin.Context) {
	var req model.RegisterSaleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	record, err := h.sales.RegisterManualSale(c, req)
	if err != nil {
		handleError(c, err, "RegisterManualSale")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	filter, ok := h.bindFilter(c, "ListSales")
	if !ok {
		return
	}

	records, err := h.reports.Sales(c, filter)
	if err != nil {
		handleError(c, err, "ListSales")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *SaleHandler) ExportSales(c *gin.Context) {
	filter, ok := h.bindFilter(c, "ExportSales")
	if !ok {
		return
	}

	// 先寫進 buffer，匯出中途失敗才能回正確的狀態碼
	var buf bytes.Buffer
	if err := h.reports.Export(c, filter, &buf); err != nil {
		handleError(c, err, "ExportSales")
		return
	}

	filename := fmt.Sprintf("reporte_rifa_%s.csv", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *SaleHandler) bindFilter(c *gin.Context, operation string) (model.SaleFilter, bool) {
	var query SalesQuery
	if err := BindQuery(c, &query); err != nil {
		return model.SaleFilter{}, false
	}
	filter, err := query.toFilter()
	if err != nil {
		handleError(c, err, operation)
		return model.SaleFilter{}, false
	}
	return filter, true
}
