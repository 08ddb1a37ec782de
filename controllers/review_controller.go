package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		PropertyID   uint   `json:"propertyId" binding:"required"`
		Rating       int    `json:"rating" binding:"required,min=1,max=5"`
		Text         string `json:"text"`
		ReviewerName string `json:"reviewerName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		ReviewerEmail: claims.Email,
		ReviewerName:  input.ReviewerName,
		PropertyID:    input.PropertyID,
		Rating:        input.Rating,
		Text:          input.Text,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

func (rc *ReviewController) GetReviewsByReviewer(c *gin.Context) {
	email := c.Param("email")

	var reviews []models.Review
	if err := rc.DB.Where("reviewer_email = ?", email).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
