package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
	"github.com/realty-flow/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, identity controllers.IdentityRevoker, gateway controllers.PaymentIntentCreator) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db, identity)
	propertyController := controllers.NewPropertyController(db)
	offerController := controllers.NewOfferController(db)
	wishlistController := controllers.NewWishlistController(db)
	reviewController := controllers.NewReviewController(db)
	paymentController := controllers.NewPaymentController(gateway)
	uploadController := controllers.NewUploadController(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Realty Flow Server is running...")
	})

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/jwt", authController.CreateToken)
		public.POST("/users", userController.RegisterUser)
		public.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupUserRoutes(protected, userController, db)
		SetupPropertyRoutes(protected, propertyController, db)
		SetupOfferRoutes(protected, offerController, db)
		SetupWishlistRoutes(protected, wishlistController)
		SetupReviewRoutes(protected, reviewController)
		SetupUploadRoutes(protected, uploadController, db)
	}
}
