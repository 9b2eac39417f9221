package routes

import (
	"github.com/gin-gonic/gin"

	"velib_directory/internal/controllers"
)

func HealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", controllers.HealthCheck)
}
