package routes

import (
	"github.com/gin-gonic/gin"

	"velib_directory/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup, ctl *controllers.AuthController) {
	api.POST("/login", ctl.Login)
}
