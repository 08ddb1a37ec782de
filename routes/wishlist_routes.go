package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
)

func SetupWishlistRoutes(protected *gin.RouterGroup, wishlistController *controllers.WishlistController) {
	wishlist := protected.Group("/wishlist")
	{
		wishlist.POST("", wishlistController.AddToWishlist)
		wishlist.GET("/:email", wishlistController.GetWishlist)

		// GET /wishlist/offer/:id shares the :email wildcard with the route
		// above; gin's router does not allow a static sibling there.
		wishlist.GET("/:email/:id", func(c *gin.Context) {
			if c.Param("email") != "offer" {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			wishlistController.GetWishlistEntry(c)
		})

		wishlist.DELETE("/:id", wishlistController.DeleteWishlistEntry)
	}
}
