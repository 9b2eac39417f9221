package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the only unauthenticated data route.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
