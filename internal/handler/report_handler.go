package handler

import (
	"net/http"
	"raffle-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("numbers", h.Inventory)
		router.GET("summary", h.Summary)
		router.GET("sellers", h.Sellers)
		router.GET("sellers/:seller/stats", h.SellerStats)
		router.GET("duplicates", h.Duplicates)
	}
}

func (h *ReportHandler) Inventory(c *gin.Context) {
	view, err := h.service.Inventory(c)
	if err != nil {
		handleError(c, err, "Inventory")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c)
	if err != nil {
		handleError(c, err, "Summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) Sellers(c *gin.Context) {
	sellers, err := h.service.Sellers(c)
	if err != nil {
		handleError(c, err, "Sellers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellers": sellers})
}

func (h *ReportHandler) SellerStats(c *gin.Context) {
	stats, err := h.service.SellerStats(c, c.Param("seller"))
	if err != nil {
		handleError(c, err, "SellerStats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) Duplicates(c *gin.Context) {
	groups, err := h.service.Duplicates(c)
	if err != nil {
		handleError(c, err, "Duplicates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"duplicates": groups})
}
