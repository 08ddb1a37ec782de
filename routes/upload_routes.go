package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
	"github.com/realty-flow/api-go/middleware"
	"gorm.io/gorm"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController, db *gorm.DB) {
	upload := protected.Group("/upload")
	upload.Use(middleware.RequireAgent(db))
	{
		upload.POST("/property-image", uploadController.GetPropertyImageURL)
		upload.POST("/gallery", uploadController.GetGalleryURLs)
	}
}
