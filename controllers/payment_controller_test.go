package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	amounts []int64
	secret  string
	err     error
}

func (s *stubGateway) CreatePaymentIntent(amount int64) (string, error) {
	s.amounts = append(s.amounts, amount)
	return s.secret, s.err
}

func TestCreatePaymentIntentConvertsToCents(t *testing.T) {
	gateway := &stubGateway{secret: "pi_secret_abc"}
	pc := NewPaymentController(gateway)

	c, w := testContext(t, http.MethodPost, "/api/create-payment-intent", gin.H{"price": 150.75})
	pc.CreatePaymentIntent(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{15075}, gateway.amounts)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_secret_abc", resp["clientSecret"])
}

func TestCreatePaymentIntentRejectsBadPrice(t *testing.T) {
	gateway := &stubGateway{secret: "pi_secret_abc"}
	pc := NewPaymentController(gateway)

	c, w := testContext(t, http.MethodPost, "/api/create-payment-intent", gin.H{"price": 0})
	pc.CreatePaymentIntent(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gateway.amounts)
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	gateway := &stubGateway{err: fmt.Errorf("gateway down")}
	pc := NewPaymentController(gateway)

	c, w := testContext(t, http.MethodPost, "/api/create-payment-intent", gin.H{"price": 50})
	pc.CreatePaymentIntent(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
