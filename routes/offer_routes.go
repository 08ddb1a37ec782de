package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
	"github.com/realty-flow/api-go/middleware"
	"gorm.io/gorm"
)

func SetupOfferRoutes(protected *gin.RouterGroup, offerController *controllers.OfferController, db *gorm.DB) {
	requireAgent := middleware.RequireAgent(db)

	offers := protected.Group("/makeOffer")
	{
		offers.POST("", offerController.CreateOffer)
		offers.GET("/:id", offerController.GetOffer)

		// GET /makeOffer/user/:email, /agent/:email and /sold/:email would
		// be static siblings of the :id wildcard above, which gin's router
		// rejects; they share the wildcard and dispatch on its value.
		offers.GET("/:id/:email", func(c *gin.Context) {
			switch c.Param("id") {
			case "user":
				offerController.GetOffersByBuyer(c)
			case "agent":
				requireAgent(c)
				if !c.IsAborted() {
					offerController.GetOffersByAgent(c)
				}
			case "sold":
				requireAgent(c)
				if !c.IsAborted() {
					offerController.GetSoldOffers(c)
				}
			default:
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			}
		})

		offers.PATCH("/status/:id", requireAgent, offerController.UpdateOfferStatus)
		offers.PATCH("/properties/:id", requireAgent, offerController.BulkUpdateOffers)
		offers.PATCH("/payment/:id", offerController.UpdatePayment)
	}
}
