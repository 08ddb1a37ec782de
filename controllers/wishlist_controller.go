package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"gorm.io/gorm"
)

type WishlistController struct {
	DB *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

// wishlistItem is a wishlist entry enriched with the referenced property.
// Property is nil when the listing has since been deleted.
type wishlistItem struct {
	models.WishlistEntry
	Property *models.Property `json:"propertyDetails"`
}

func (wc *WishlistController) enrich(entry models.WishlistEntry) wishlistItem {
	item := wishlistItem{WishlistEntry: entry}

	var property models.Property
	if err := wc.DB.First(&property, "id = ?", entry.PropertyID).Error; err == nil {
		item.Property = &property
	}

	return item
}

func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		PropertyID uint `json:"propertyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.WishlistEntry{
		UserEmail:  claims.Email,
		PropertyID: input.PropertyID,
	}

	if err := wc.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// GetWishlistEntry returns a single entry joined with its property.
func (wc *WishlistController) GetWishlistEntry(c *gin.Context) {
	id := c.Param("id")

	var entry models.WishlistEntry
	if err := wc.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up wishlist entry"})
		return
	}

	c.JSON(http.StatusOK, wc.enrich(entry))
}

// GetWishlist returns the subject's own entries, each joined with the
// referenced property when it still exists.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	email := c.Param("email")

	claims := utils.GetUser(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var entries []models.WishlistEntry
	if err := wc.DB.Where("user_email = ?", email).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wishlist"})
		return
	}

	items := make([]wishlistItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, wc.enrich(entry))
	}

	c.JSON(http.StatusOK, items)
}

func (wc *WishlistController) DeleteWishlistEntry(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)

	var entry models.WishlistEntry
	if err := wc.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up wishlist entry"})
		return
	}

	if entry.UserEmail != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	if err := wc.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Wishlist entry deleted"})
}
