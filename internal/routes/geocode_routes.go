package routes

import (
	"github.com/gin-gonic/gin"

	"velib_directory/internal/controllers"
	"velib_directory/internal/middleware"
)

func GeocodeRoutes(api *gin.RouterGroup, ctl *controllers.GeocodeController) {
	geocode := api.Group("/geocode")
	geocode.Use(middleware.RequireAuth())
	{
		geocode.GET("", ctl.GeocodeAddress)
	}
}
