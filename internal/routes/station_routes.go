package routes

import (
	"github.com/gin-gonic/gin"

	"velib_directory/internal/controllers"
	"velib_directory/internal/middleware"
)

func StationRoutes(api *gin.RouterGroup, ctl *controllers.StationController) {
	stations := api.Group("/stations")
	stations.Use(middleware.RequireAuth())
	{
		stations.GET("", ctl.ListStations)
		stations.POST("", ctl.CreateStation)
		stations.PUT("/:id", ctl.UpdateStation)
		stations.DELETE("/:id", ctl.DeleteStation)
	}
}
