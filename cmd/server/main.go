package main

import (
	"log"
	"net/http"

	"velib_directory/internal/config"
	"velib_directory/internal/logger"
	"velib_directory/internal/middleware"
	"velib_directory/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()

	// Setup Gin router with all collaborators wired off the db handle
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := config.GetEnv("PORT", "8080")
	log.Printf("🚲 Station directory running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
