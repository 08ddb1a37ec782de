package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopRevoker struct{}

func (noopRevoker) DeleteAccount(ctx context.Context, uid string) error { return nil }

type noopGateway struct{}

func (noopGateway) CreatePaymentIntent(amount int64) (string, error) { return "pi_secret", nil }

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.User{}, &models.Property{}, &models.Offer{}, &models.WishlistEntry{}, &models.Review{})
	assert.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, db, noopRevoker{}, noopGateway{})
	return r, db
}

func token(t *testing.T, email string) string {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func do(r *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthRoot(t *testing.T) {
	r, _ := setupRouter(t)
	w := do(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Realty Flow Server is running")
}

// Every admin route must turn non-admin subjects away.
func TestAdminRoutesForbiddenForNonAdmins(t *testing.T) {
	r, db := setupRouter(t)

	assert.NoError(t, db.Create(&models.User{Email: "agent@example.com", Role: models.RoleAgent}).Error)
	assert.NoError(t, db.Create(&models.User{Email: "user@example.com", Role: models.RoleUser}).Error)

	adminOnly := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/users", nil},
		{http.MethodPatch, "/api/users/role/1", gin.H{"role": "Agent"}},
		{http.MethodPatch, "/api/users/status/x@example.com", gin.H{"status": "Fraud"}},
		{http.MethodDelete, "/api/users?id=1&uid=u1", nil},
		{http.MethodGet, "/api/properties", nil},
		{http.MethodPatch, "/api/property/status/1", gin.H{"verificationStatus": "Verified"}},
	}

	for _, subject := range []string{"agent@example.com", "user@example.com"} {
		bearer := token(t, subject)
		for _, route := range adminOnly {
			w := do(r, route.method, route.path, bearer, route.body)
			assert.Equal(t, http.StatusForbidden, w.Code, "%s %s as %s", route.method, route.path, subject)
		}
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodGet, "/api/all-properties", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/makeOffer", "", gin.H{"propertyId": 1, "offeredPrice": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Exercises the nested wildcard dispatch for property verification,
// offer reads and the wishlist join end to end.
func TestNestedRouteDispatch(t *testing.T) {
	r, db := setupRouter(t)

	assert.NoError(t, db.Create(&models.User{Email: "admin@example.com", Role: models.RoleAdmin}).Error)
	assert.NoError(t, db.Create(&models.User{Email: "agent@example.com", Role: models.RoleAgent}).Error)
	assert.NoError(t, db.Create(&models.User{Email: "buyer@example.com", Role: models.RoleUser}).Error)

	property := models.Property{
		Title:              "Cottage",
		Location:           "Lakeview",
		Agent:              models.AgentInfo{Email: "agent@example.com"},
		PriceRange:         models.PriceRange{Min: 100000, Max: 150000},
		VerificationStatus: models.VerificationPending,
	}
	assert.NoError(t, db.Create(&property).Error)

	adminToken := token(t, "admin@example.com")
	buyerToken := token(t, "buyer@example.com")

	// PATCH /api/property/status/:id reaches the admin decision handler
	w := do(r, http.MethodPatch, fmt.Sprintf("/api/property/status/%d", property.ID),
		adminToken, gin.H{"verificationStatus": "Verified"})
	assert.Equal(t, http.StatusOK, w.Code)

	var verified models.Property
	assert.NoError(t, db.First(&verified, property.ID).Error)
	assert.Equal(t, models.VerificationVerified, verified.VerificationStatus)

	// offer against the now-verified property
	w = do(r, http.MethodPost, "/api/makeOffer", buyerToken,
		gin.H{"propertyId": property.ID, "offeredPrice": 95000})
	assert.Equal(t, http.StatusOK, w.Code)

	// GET /api/makeOffer/user/:email routes through the shared wildcard
	w = do(r, http.MethodGet, "/api/makeOffer/user/buyer@example.com", buyerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var offers []models.Offer
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &offers))
	assert.Len(t, offers, 1)

	// agent-scoped reads are refused to non-agents
	w = do(r, http.MethodGet, "/api/makeOffer/agent/agent@example.com", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// GET /api/wishlist/offer/:id joins the entry with its property
	entry := models.WishlistEntry{UserEmail: "buyer@example.com", PropertyID: property.ID}
	assert.NoError(t, db.Create(&entry).Error)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/wishlist/offer/%d", entry.ID), buyerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lakeview")

	// unknown nested segment falls through to 404
	w = do(r, http.MethodGet, "/api/makeOffer/bogus/whatever", buyerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePaymentIntentRoute(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(r, http.MethodPost, "/api/create-payment-intent", "", gin.H{"price": 120.50})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_secret")
}
