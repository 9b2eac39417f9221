package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"velib_directory/internal/geo"
	"velib_directory/internal/models"
	"velib_directory/internal/store"
)

type StationController struct {
	Store    store.StationStore
	Resolver *geo.Resolver
}

func NewStationController(st store.StationStore, resolver *geo.Resolver) *StationController {
	return &StationController{Store: st, Resolver: resolver}
}

// toStationResponse shapes a station the way the frontend expects, with the
// coordinates nested under "position".
func toStationResponse(s models.Station) gin.H {
	return gin.H{
		"id":   s.ID,
		"name": s.Name,
		"position": gin.H{
			"lat": s.Lat,
			"lon": s.Lon,
		},
		"capacity":        s.Capacity,
		"bikes_available": s.BikesAvailable,
		"status":          s.Status,
	}
}

// floatQuery reads a query parameter as a float, distinguishing absent from
// zero. A supplied lat=0 is a real coordinate, not a missing one.
func floatQuery(c *gin.Context, key string) *float64 {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ListStations returns up to 200 stations, spatially filtered when a centre
// can be resolved from the query (explicit coordinates beat the address).
func (ctl *StationController) ListStations(c *gin.Context) {
	lat := floatQuery(c, "lat")
	lon := floatQuery(c, "lon")
	address := c.Query("address")

	radius := geo.DefaultRadius
	if r := floatQuery(c, "radius"); r != nil {
		radius = *r
	}

	bounds := ctl.Resolver.Resolve(lat, lon, address, radius)

	stations, err := ctl.Store.List(store.ListFilter{Bounds: bounds})
	if err != nil {
		logrus.WithError(err).Error("ListStations: store query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	responses := make([]gin.H, 0, len(stations))
	for _, s := range stations {
		responses = append(responses, toStationResponse(s))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateStation inserts a new station. The id comes from the caller, so a
// duplicate is a conflict, never an overwrite.
func (ctl *StationController) CreateStation(c *gin.Context) {
	var input struct {
		ID             *int     `json:"id"`
		Name           *string  `json:"name"`
		Lat            *float64 `json:"lat"`
		Lon            *float64 `json:"lon"`
		Capacity       *int     `json:"capacity"`
		BikesAvailable *int     `json:"bikes_available"`
		Status         *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid station payload: " + err.Error()})
		return
	}
	if input.ID == nil || input.Name == nil || input.Lat == nil || input.Lon == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields"})
		return
	}

	station := models.Station{
		ID:     *input.ID,
		Name:   *input.Name,
		Lat:    *input.Lat,
		Lon:    *input.Lon,
		Status: "Operative",
	}
	if input.Capacity != nil {
		station.Capacity = *input.Capacity
	}
	if input.BikesAvailable != nil {
		station.BikesAvailable = *input.BikesAvailable
	}
	if input.Status != nil {
		station.Status = *input.Status
	}

	created, err := ctl.Store.Create(station)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"msg": "Station already exists"})
			return
		}
		logrus.WithError(err).WithField("station_id", station.ID).Error("CreateStation: store insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toStationResponse(created))
}

// mutableStationFields are the columns a partial update may touch.
var mutableStationFields = []string{"name", "lat", "lon", "capacity", "bikes_available", "status"}

// UpdateStation overwrites only the fields present in the request body.
func (ctl *StationController) UpdateStation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Station not found"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid update payload: " + err.Error()})
		return
	}

	fields := make(map[string]interface{})
	for _, key := range mutableStationFields {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}

	station, err := ctl.Store.Update(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Station not found"})
			return
		}
		logrus.WithError(err).WithField("station_id", id).Error("UpdateStation: store update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toStationResponse(station))
}

// DeleteStation removes a station outright. No soft delete.
func (ctl *StationController) DeleteStation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Station not found"})
		return
	}

	if err := ctl.Store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Station not found"})
			return
		}
		logrus.WithError(err).WithField("station_id", id).Error("DeleteStation: store delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Station deleted successfully"})
}
