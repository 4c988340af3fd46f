package handler

import (
	"net/http"
	"raffle-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	draws service.DrawService
	admin service.AdminService
}

func NewAdminHandler(draws service.DrawService, admin service.AdminService) *AdminHandler {
	return &AdminHandler{draws: draws, admin: admin}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("draw", h.Draw)
		router.POST("admin/reset", h.Reset)
		router.GET("admin/audit", h.AuditTrail)
	}
}

type DrawRequest struct {
	Actor string `json:"actor"`
}

// ResetRequest confirmation 必須等於帳本名稱
type ResetRequest struct {
	Confirmation string `json:"confirmation" binding:"required"`
	Actor        string `json:"actor"`
}

type AuditQuery struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=1000"`
}

func (h *AdminHandler) Draw(c *gin.Context) {
	var req DrawRequest
	// body 可省略
	if c.Request.ContentLength > 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}

	result, err := h.draws.Draw(c, req.Actor)
	if err != nil {
		handleError(c, err, "Draw")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.admin.Reset(c, req.Confirmation, req.Actor)
	if err != nil {
		handleError(c, err, "Reset")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) AuditTrail(c *gin.Context) {
	var query AuditQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	events, err := h.admin.AuditTrail(c, query.Limit)
	if err != nil {
		handleError(c, err, "AuditTrail")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
