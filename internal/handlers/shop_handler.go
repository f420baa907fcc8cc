package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-scheduler/internal/cache"
	"github.com/BruksfildServices01/shop-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

type ShopHandler struct {
	db    *gorm.DB
	cache *cache.ShopCache
}

func NewShopHandler(db *gorm.DB, shopCache *cache.ShopCache) *ShopHandler {
	return &ShopHandler{db: db, cache: shopCache}
}

// ShopPatch carries only the fields the owner wants to change; a nil
// pointer means "leave as is". This replaces per-field presence
// probing on the raw JSON.
type ShopPatch struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`

	OpeningDay  *string `json:"opening_day"`
	ClosingDay  *string `json:"closing_day"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
}

func (h *ShopHandler) GetMyShop(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) UpdateMyShop(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	var patch ShopPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)

		if err := checkShopNameFree(h.db, name, shop.ID); err != nil {
			if httperr.IsBusiness(err, "shop_name_taken") {
				httperr.WriteBusiness(c, http.StatusConflict, err, "A shop with that name already exists.")
				return
			}
			httperr.Internal(c, "storage_error", "Could not verify shop name.")
			return
		}
		shop.Name = name
	}
	if patch.Phone != nil {
		shop.Phone = *patch.Phone
	}
	if patch.Address != nil {
		shop.Address = *patch.Address
	}
	if patch.Description != nil {
		shop.Description = *patch.Description
	}
	if patch.OpeningDay != nil {
		shop.OpeningDay = *patch.OpeningDay
	}
	if patch.ClosingDay != nil {
		shop.ClosingDay = *patch.ClosingDay
	}
	if patch.OpeningTime != nil {
		shop.OpeningTime = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		shop.ClosingTime = *patch.ClosingTime
	}

	// The merged window must still parse as a valid weekly window.
	if _, err := schedule.NewHours(
		shop.OpeningDay, shop.ClosingDay,
		shop.OpeningTime, shop.ClosingTime,
	); err != nil {
		httperr.BadRequest(c, "invalid_business_hours", "Invalid business-hours window.")
		return
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update shop.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), shop.ID)

	c.JSON(http.StatusOK, shop)
}
