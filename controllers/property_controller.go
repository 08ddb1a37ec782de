package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

type propertyInput struct {
	Title       string            `json:"title" binding:"required"`
	Location    string            `json:"location" binding:"required"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Gallery     datatypes.JSON    `json:"gallery"`
	PriceRange  models.PriceRange `json:"priceRange"`
}

// CreateProperty stamps the embedded agent profile from the caller's current
// user record rather than trusting the body, so every new listing references
// an existing Agent.
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	claims := utils.GetUser(c)

	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var agent models.User
	if err := pc.DB.Where("email = ?", claims.Email).First(&agent).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	property := models.Property{
		Title:       input.Title,
		Location:    input.Location,
		Description: input.Description,
		Image:       input.Image,
		Gallery:     input.Gallery,
		PriceRange:  input.PriceRange,
		Agent: models.AgentInfo{
			Email: agent.Email,
			Name:  agent.Name,
			Image: agent.Image,
		},
		VerificationStatus: models.VerificationPending,
	}

	if err := pc.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "property": property})
}

// GetAllProperties returns every property regardless of verification status.
func (pc *PropertyController) GetAllProperties(c *gin.Context) {
	var properties []models.Property
	if err := pc.DB.Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetVerifiedProperties is the public listing: Verified only, with an
// optional case-insensitive location filter and an optional ascending sort
// by minimum price.
func (pc *PropertyController) GetVerifiedProperties(c *gin.Context) {
	search := c.Query("search")
	sort := c.Query("sort")

	query := pc.DB.Where("verification_status = ?", models.VerificationVerified)

	if search != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if sort == "true" {
		query = query.Order("price_min ASC")
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetPropertiesByAgent lists the caller's own properties, any verification
// status included.
func (pc *PropertyController) GetPropertiesByAgent(c *gin.Context) {
	email := c.Param("email")

	claims := utils.GetUser(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var properties []models.Property
	if err := pc.DB.Where("agent_email = ?", email).Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := pc.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// UpdatePropertyStatus moves a Pending property to Verified or Rejected.
// Both are terminal: a decided property cannot transition again.
func (pc *PropertyController) UpdatePropertyStatus(c *gin.Context) {
	id := c.Param("propertyId")

	var input struct {
		VerificationStatus string `json:"verificationStatus" binding:"required,oneof=Verified Rejected"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	if property.VerificationStatus != models.VerificationPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property verification already decided"})
		return
	}

	if err := pc.DB.Model(&property).Update("verification_status", input.VerificationStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification status updated"})
}

// UpdateProperty lets the owning agent edit the mutable listing fields.
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)

	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := pc.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	if property.Agent.Email != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"location":    input.Location,
		"description": input.Description,
		"image":       input.Image,
		"gallery":     input.Gallery,
		"price_min":   input.PriceRange.Min,
		"price_max":   input.PriceRange.Max,
	}

	if err := pc.DB.Model(&property).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property updated"})
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)

	var property models.Property
	if err := pc.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	if property.Agent.Email != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	if err := pc.DB.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property deleted"})
}
