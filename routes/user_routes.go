package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/realty-flow/api-go/controllers"
	"github.com/realty-flow/api-go/middleware"
	"gorm.io/gorm"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController, db *gorm.DB) {
	protected.GET("/user/:email", userController.GetUser)

	users := protected.Group("/users")
	{
		users.GET("", middleware.RequireAdmin(db), userController.GetAllUsers)
		users.PATCH("/role/:id", middleware.RequireAdmin(db), userController.UpdateUserRole)
		users.PATCH("/status/:email", middleware.RequireAdmin(db), userController.UpdateUserStatus)
		users.DELETE("", middleware.RequireAdmin(db), userController.DeleteUser)
	}
}
