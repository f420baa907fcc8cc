package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-scheduler/internal/cache"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/shop-scheduler/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated booking flow: shop profile
// lookup plus appointment creation from the validated form tuple.
type PublicHandler struct {
	db     *gorm.DB
	cache  *cache.ShopCache
	bookUC *ucAppointment.Book
}

func NewPublicHandler(db *gorm.DB, shopCache *cache.ShopCache, bookUC *ucAppointment.Book) *PublicHandler {
	return &PublicHandler{db: db, cache: shopCache, bookUC: bookUC}
}

// ======================================================
// SHOP PROFILE
// ======================================================

func (h *PublicHandler) GetShop(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid shop id.")
		return
	}

	if shop, ok := h.cache.Get(c.Request.Context(), uint(id)); ok {
		c.JSON(http.StatusOK, shop)
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, uint(id)).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	h.cache.Set(c.Request.Context(), &shop)
	c.JSON(http.StatusOK, shop)
}

// ======================================================
// BOOKING
// ======================================================

type BookAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"required"`

	ShopID uint `json:"shop_id"`

	Date        string `json:"date" binding:"required"` // 2006-01-02
	Time        string `json:"time" binding:"required"` // 15:04
	DurationMin int    `json:"duration_min" binding:"required"`

	Note string `json:"note"`
}

func (h *PublicHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		httperr.WriteField(c, http.StatusBadRequest, "invalid_date_or_time", "Invalid date or time.", "start_time")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		ShopID:      req.ShopID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Start:       start,
		DurationMin: req.DurationMin,
		Note:        req.Note,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"ref":        ap.Ref,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}
