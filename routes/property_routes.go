package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
	"github.com/realty-flow/api-go/middleware"
	"gorm.io/gorm"
)

func SetupPropertyRoutes(protected *gin.RouterGroup, propertyController *controllers.PropertyController, db *gorm.DB) {
	protected.GET("/all-properties", propertyController.GetVerifiedProperties)

	properties := protected.Group("/properties")
	{
		properties.GET("", middleware.RequireAdmin(db), propertyController.GetAllProperties)
		properties.POST("", middleware.RequireAgent(db), propertyController.CreateProperty)
		properties.GET("/:email", middleware.RequireAgent(db), propertyController.GetPropertiesByAgent)
		properties.DELETE("/:id", middleware.RequireAgent(db), propertyController.DeleteProperty)
	}

	property := protected.Group("/property")
	{
		property.GET("/:id", propertyController.GetProperty)

		// gin cannot mount PATCH /property/status/:id next to PATCH
		// /property/:id (static segment beside a wildcard on the same
		// method), so both share the wildcard and dispatch on its value.
		requireAdmin := middleware.RequireAdmin(db)
		property.PATCH("/:id", middleware.RequireAgent(db), propertyController.UpdateProperty)
		property.PATCH("/:id/:propertyId", func(c *gin.Context) {
			if c.Param("id") != "status" {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			requireAdmin(c)
			if !c.IsAborted() {
				propertyController.UpdatePropertyStatus(c)
			}
		})
	}
}
