package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.User{}, &models.Property{}, &models.Offer{}, &models.WishlistEntry{}, &models.Review{})
	assert.NoError(t, err)
	return db
}

// testContext builds a gin context around a JSON request body.
func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func asUser(c *gin.Context, email string) {
	c.Set(string(utils.UserContextKey), &utils.UserClaims{Email: email})
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	user := models.User{Email: email, Name: "Test " + role, Role: role, Status: models.StatusActive}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

func seedProperty(t *testing.T, db *gorm.DB, agentEmail, location, status string, minPrice float64) models.Property {
	property := models.Property{
		Title:              "Listing in " + location,
		Location:           location,
		Agent:              models.AgentInfo{Email: agentEmail, Name: "Agent"},
		PriceRange:         models.PriceRange{Min: minPrice, Max: minPrice + 50000},
		VerificationStatus: status,
	}
	assert.NoError(t, db.Create(&property).Error)
	return property
}
