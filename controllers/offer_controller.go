package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"gorm.io/gorm"
)

type OfferController struct {
	DB *gorm.DB
}

func NewOfferController(db *gorm.DB) *OfferController {
	return &OfferController{DB: db}
}

// CreateOffer records a buyer's offer against a Verified property. The
// property reference and agent email are resolved server-side; offers on
// unverified or missing properties are rejected.
func (oc *OfferController) CreateOffer(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		PropertyID   uint    `json:"propertyId" binding:"required"`
		OfferedPrice float64 `json:"offeredPrice" binding:"required"`
		BuyerName    string  `json:"buyerName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := oc.DB.First(&property, "id = ?", input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up property"})
		return
	}

	if property.VerificationStatus != models.VerificationVerified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offers are only accepted on verified properties"})
		return
	}

	offer := models.Offer{
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		Location:      property.Location,
		BuyerEmail:    claims.Email,
		BuyerName:     input.BuyerName,
		AgentEmail:    property.Agent.Email,
		OfferedPrice:  input.OfferedPrice,
		Status:        models.OfferPending,
	}

	if err := oc.DB.Create(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offer": offer})
}

func (oc *OfferController) GetOffer(c *gin.Context) {
	id := c.Param("id")

	var offer models.Offer
	if err := oc.DB.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up offer"})
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (oc *OfferController) GetOffersByBuyer(c *gin.Context) {
	email := c.Param("email")

	claims := utils.GetUser(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var offers []models.Offer
	if err := oc.DB.Where("buyer_email = ?", email).Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}

func (oc *OfferController) GetOffersByAgent(c *gin.Context) {
	email := c.Param("email")

	var offers []models.Offer
	if err := oc.DB.Where("agent_email = ?", email).Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}

// UpdateOfferStatus is the per-offer accept/reject decision, allowed only to
// the listing's agent.
func (oc *OfferController) UpdateOfferStatus(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)

	var input struct {
		Status string `json:"status" binding:"required,oneof=Accepted Rejected"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var offer models.Offer
	if err := oc.DB.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up offer"})
		return
	}

	if offer.AgentEmail != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	if err := oc.DB.Model(&offer).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Offer status updated"})
}

// BulkUpdateOffers sweeps every offer on a property whose status differs
// from excludedStatus into newStatus. Callers deciding an offer must pass
// the just-set status as excludedStatus, otherwise the decided offer itself
// is swept along with the rest — the exclusion is by status, not by id.
func (oc *OfferController) BulkUpdateOffers(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)

	var input struct {
		NewStatus      string `json:"newStatus" binding:"required,oneof=Pending Accepted Rejected"`
		ExcludedStatus string `json:"excludedStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var property models.Property
	if err := oc.DB.First(&property, "id = ?", id).Error; err != nil {
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

	result := oc.DB.Model(&models.Offer{}).
		Where("property_id = ? AND status != ?", property.ID, input.ExcludedStatus).
		Update("status", input.NewStatus)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": result.RowsAffected})
}

// UpdatePayment correlates a completed gateway charge onto the offer: the
// transaction id is recorded and the status advances from Accepted to
// Bought in a single write.
func (oc *OfferController) UpdatePayment(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		TransactionID string `json:"transactionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var offer models.Offer
	if err := oc.DB.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up offer"})
		return
	}

	if offer.Status != models.OfferAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only accepted offers can be bought"})
		return
	}

	updates := map[string]interface{}{
		"status":         models.OfferBought,
		"transaction_id": input.TransactionID,
	}
	if err := oc.DB.Model(&offer).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment recorded"})
}

// GetSoldOffers lists an agent's completed sales.
func (oc *OfferController) GetSoldOffers(c *gin.Context) {
	email := c.Param("email")

	var offers []models.Offer
	if err := oc.DB.Where("agent_email = ? AND status = ?", email, models.OfferBought).Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sold offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}
