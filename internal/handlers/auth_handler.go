package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-scheduler/internal/config"
	"github.com/BruksfildServices01/shop-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
	"github.com/BruksfildServices01/shop-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	ShopName        string `json:"shop_name" binding:"required"`
	ShopPhone       string `json:"shop_phone"`
	ShopAddress     string `json:"shop_address"`
	ShopDescription string `json:"shop_description"`

	OpeningDay  string `json:"opening_day" binding:"required"`
	ClosingDay  string `json:"closing_day" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Weekly window must parse before anything is written.
	if _, err := schedule.NewHours(
		req.OpeningDay, req.ClosingDay,
		req.OpeningTime, req.ClosingTime,
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_business_hours"})
		return
	}

	name := strings.TrimSpace(req.ShopName)

	// Shop names are unique case-insensitively; a duplicate is a
	// recoverable validation error, not a constraint blowup.
	if err := checkShopNameFree(h.db, name, 0); err != nil {
		if httperr.IsBusiness(err, "shop_name_taken") {
			httperr.WriteBusiness(c, http.StatusConflict, err, "A shop with that name already exists.")
			return
		}
		httperr.Internal(c, "storage_error", "Could not verify shop name.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !validators.EmailDomainResolves(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	shop := models.Shop{
		OwnerID:     user.ID,
		Name:        name,
		Phone:       req.ShopPhone,
		Address:     req.ShopAddress,
		Description: req.ShopDescription,
		OpeningDay:  req.OpeningDay,
		ClosingDay:  req.ClosingDay,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_shop"})
		return
	}

	token, err := h.generateToken(&user, shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	httpresp.Created(c, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"shop":  shop,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	var shop models.Shop
	if err := h.db.Where("owner_id = ?", user.ID).First(&shop).Error; err != nil {
		httperr.Unauthorized(c, "no_shop_for_account", "No shop is linked to this account.")
		return
	}

	token, err := h.generateToken(&user, shop.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"shop":  shop,
	})
}

func (h *AuthHandler) generateToken(user *models.User, shopID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":    float64(user.ID),
		"shopId": float64(shopID),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
