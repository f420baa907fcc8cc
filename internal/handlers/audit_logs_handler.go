package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shop-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var logs []models.AuditLog
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
