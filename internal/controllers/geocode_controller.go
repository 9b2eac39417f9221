package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"velib_directory/internal/geocode"
)

type GeocodeController struct {
	Geocoder geocode.Resolver
}

func NewGeocodeController(geocoder geocode.Resolver) *GeocodeController {
	return &GeocodeController{Geocoder: geocoder}
}

// GeocodeAddress resolves a free-text address to a coordinate. Unlike the
// station listing, this endpoint surfaces every geocoding failure to the
// caller.
func (ctl *GeocodeController) GeocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Address parameter required"})
		return
	}

	result, err := ctl.Geocoder.Resolve(address)
	if err != nil {
		switch {
		case errors.Is(err, geocode.ErrUnconfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Mapbox token not configured"})
		case errors.Is(err, geocode.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Address not found"})
		default:
			logrus.WithError(err).WithField("address", address).Error("geocoding failed")
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Geocoding error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lat":  result.Lat,
		"lon":  result.Lon,
		"name": result.Name,
	})
}
