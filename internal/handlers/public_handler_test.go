package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/shop-scheduler/internal/audit"
	"github.com/BruksfildServices01/shop-scheduler/internal/cache"
	dbpkg "github.com/BruksfildServices01/shop-scheduler/internal/db"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shop-scheduler/internal/locks"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/shop-scheduler/internal/usecase/appointment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupPublicRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_busy_timeout=5000",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	log := zap.NewNop()
	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), log)
	bookUC := ucAppointment.NewBook(repo, locks.NewShopLocker(), dispatcher, log)
	h := NewPublicHandler(db, cache.New("", log), bookUC)

	r := gin.New()
	r.GET("/api/public/shops/:id", h.GetShop)
	r.POST("/api/public/appointments", h.BookAppointment)
	return r, db
}

func seedShop(t *testing.T, db *gorm.DB) *models.Shop {
	t.Helper()

	owner := models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)

	shop := models.Shop{
		OwnerID:     owner.ID,
		Name:        "Corner Cuts",
		OpeningDay:  "mon",
		ClosingDay:  "fri",
		OpeningTime: "09:00",
		ClosingTime: "17:00",
	}
	require.NoError(t, db.Create(&shop).Error)
	return &shop
}

func postBooking(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingBody(shopID uint) map[string]any {
	return map[string]any{
		"client_name":  "Zed",
		"client_email": "z@z.com",
		"client_phone": "999",
		"shop_id":      shopID,
		"date":         "2025-08-04", // Monday
		"time":         "11:00",
		"duration_min": 45,
		"note":         "walk-in",
	}
}

func TestPublicBooking_Created(t *testing.T) {
	r, db := setupPublicRouter(t)
	shop := seedShop(t, db)

	w := postBooking(t, r, bookingBody(shop.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["ref"])
	assert.Equal(t, "confirmed", resp["status"])
}

func TestPublicBooking_MissingShopField(t *testing.T) {
	r, _ := setupPublicRouter(t)

	body := bookingBody(0)
	w := postBooking(t, r, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing_shop", resp.Code)
	assert.Equal(t, "shop", resp.Field)
}

func TestPublicBooking_ClosedDayFieldError(t *testing.T) {
	r, db := setupPublicRouter(t)
	shop := seedShop(t, db)

	body := bookingBody(shop.ID)
	body["date"] = "2025-08-03" // Sunday
	w := postBooking(t, r, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "closed_on_that_day", resp.Code)
	assert.Equal(t, "start_time", resp.Field)
}

func TestPublicBooking_ConflictIs409(t *testing.T) {
	r, db := setupPublicRouter(t)
	shop := seedShop(t, db)

	require.Equal(t, http.StatusCreated, postBooking(t, r, bookingBody(shop.ID)).Code)

	w := postBooking(t, r, bookingBody(shop.ID))
	require.Equal(t, http.StatusConflict, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "slot_conflict", resp.Code)
}

func TestPublicGetShop(t *testing.T) {
	r, db := setupPublicRouter(t)
	shop := seedShop(t, db)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/public/shops/%d", shop.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corner Cuts")
}

func TestPublicGetShop_NotFound(t *testing.T) {
	r, _ := setupPublicRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/public/shops/424242", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
