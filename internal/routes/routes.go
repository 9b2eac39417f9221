package routes

import (
	"log"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"velib_directory/internal/auth"
	"velib_directory/internal/config"
	"velib_directory/internal/controllers"
	"velib_directory/internal/geo"
	"velib_directory/internal/geocode"
	"velib_directory/internal/store"
)

// SetupRouter wires every collaborator off the passed database handle and
// registers all route groups under /api.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	verifier := buildVerifier(db)
	geocoder := geocode.NewClient(geocode.Options{
		Token: config.GetEnv("MAPBOX_TOKEN", ""),
	})
	stationStore := store.NewGormStationStore(db)
	resolver := geo.NewResolver(geocoder)

	api := r.Group("/api")

	AuthRoutes(api, controllers.NewAuthController(verifier))
	GeocodeRoutes(api, controllers.NewGeocodeController(geocoder))
	StationRoutes(api, controllers.NewStationController(stationStore, resolver))
	HealthRoutes(api)

	return r
}

// buildVerifier picks the credential backend. The static single account is
// the default; AUTH_BACKEND=db switches to the users table.
func buildVerifier(db *gorm.DB) auth.CredentialVerifier {
	if config.GetEnv("AUTH_BACKEND", "static") == "db" {
		return auth.NewGormVerifier(db)
	}

	verifier, err := auth.NewStaticVerifier(
		config.GetEnv("ADMIN_USERNAME", "admin"),
		config.GetEnv("ADMIN_PASSWORD", "admin"),
	)
	if err != nil {
		log.Fatalf("could not build credential verifier: %v", err)
	}
	return verifier
}
