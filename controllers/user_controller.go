package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"gorm.io/gorm"
)

// IdentityRevoker deletes a subject's account at the external identity
// provider. Deleting the local record and revoking the external identity are
// not transactional; a revocation failure is reported, never rolled back.
type IdentityRevoker interface {
	DeleteAccount(ctx context.Context, uid string) error
}

type UserController struct {
	DB       *gorm.DB
	Identity IdentityRevoker
}

func NewUserController(db *gorm.DB, identity IdentityRevoker) *UserController {
	return &UserController{DB: db, Identity: identity}
}

// RegisterUser is idempotent: registering an email that already exists is a
// no-op success, not an error.
func (uc *UserController) RegisterUser(c *gin.Context) {
	var input struct {
		Email  string `json:"email" binding:"required,email"`
		Name   string `json:"name"`
		Image  string `json:"image"`
		Role   string `json:"role"`
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	err := uc.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	user := models.User{
		Email:  input.Email,
		Name:   input.Name,
		Image:  input.Image,
		Role:   input.Role,
		Status: input.Status,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetUser returns the subject's own record only.
func (uc *UserController) GetUser(c *gin.Context) {
	email := c.Param("email")

	claims := utils.GetUser(c)
	if claims == nil || claims.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (uc *UserController) UpdateUserRole(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Role string `json:"role" binding:"required,oneof=User Agent Admin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := uc.DB.Model(&models.User{}).Where("id = ?", id).Update("role", input.Role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
}

// UpdateUserStatus sets a user's status. Marking a user as Fraud also removes
// every property listed under that user's email; both writes run in one
// transaction so a crash cannot leave a fraud user's listings behind.
func (uc *UserController) UpdateUserStatus(c *gin.Context) {
	email := c.Param("email")

	var input struct {
		Status string `json:"status" binding:"required,oneof=Active Fraud"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("email = ?", email).Update("status", input.Status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if input.Status == models.StatusFraud {
			if err := tx.Where("agent_email = ?", email).Delete(&models.Property{}).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

// DeleteUser removes the local record, then revokes the subject's external
// identity. The second step is a different system: if it fails, the local
// delete stands and the failure is surfaced to the caller.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	uid := c.Query("uid")
	if id == "" || uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and uid query parameters are required"})
		return
	}

	result := uc.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := uc.Identity.DeleteAccount(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User deleted but identity revocation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
