package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
)

func SetupReviewRoutes(protected *gin.RouterGroup, reviewController *controllers.ReviewController) {
	reviews := protected.Group("/reviews")
	{
		reviews.POST("", reviewController.CreateReview)
		reviews.GET("/:email", reviewController.GetReviewsByReviewer)
	}
}
