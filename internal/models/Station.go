// internal/models/station.go
package models

// Station represents one bike-sharing dock location.
// The ID is assigned by the operator's open-data feed, not by the database,
// so auto-increment is disabled. Coordinates are stored as plain degrees with
// no range validation: the upstream export contains whatever it contains.
type Station struct {
	ID             int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name           string  `json:"name" gorm:"not null"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	Capacity       int     `json:"capacity"`
	BikesAvailable int     `json:"bikes_available"`
	Status         string  `json:"status" gorm:"default:Operative"`
}

func (Station) TableName() string {
	return "stations"
}
