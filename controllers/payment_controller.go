package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentIntentCreator requests a client-usable authorization handle from
// the payment gateway for an amount in cents.
type PaymentIntentCreator interface {
	CreatePaymentIntent(amount int64) (string, error)
}

type PaymentController struct {
	Gateway PaymentIntentCreator
}

func NewPaymentController(gateway PaymentIntentCreator) *PaymentController {
	return &PaymentController{Gateway: gateway}
}

// CreatePaymentIntent converts the price to integer cents and passes it
// through to the gateway. No other validation happens locally.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount := int64(input.Price * 100)

	clientSecret, err := pc.Gateway.CreatePaymentIntent(amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
