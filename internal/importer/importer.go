// Package importer loads the Vélib' open-data CSV export into the station
// table. Batch ETL only, never called from the request path.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"velib_directory/internal/models"
)

// Column headers as they appear in the open-data export.
const (
	colID       = "Code de la station"
	colName     = "Nom de la station"
	colCapacity = "Nombres de bornes en station"
	colBikes    = "Nombre de bornes disponibles"
	colStatus   = "Etat des stations"
	colGeo      = "geo" // "lat, lon"
)

// Parse reads the semicolon-separated export and returns every row that
// could be decoded, alongside one error per row that could not. A bad row
// never aborts the import.
func Parse(r io.Reader) ([]models.Station, []error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("could not read header: %w", err)}
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colID, colName, colGeo} {
		if _, ok := index[required]; !ok {
			return nil, []error{fmt.Errorf("missing column %q", required)}
		}
	}

	var stations []models.Station
	var rowErrors []error

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		station, err := parseRow(record, index)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		stations = append(stations, station)
	}

	return stations, rowErrors
}

func parseRow(record []string, index map[string]int) (models.Station, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	lat, lon, err := parseGeo(field(colGeo))
	if err != nil {
		return models.Station{}, err
	}

	id, err := strconv.Atoi(field(colID))
	if err != nil {
		return models.Station{}, fmt.Errorf("bad station code %q", field(colID))
	}

	status := field(colStatus)
	if status == "" {
		status = "Operative"
	}

	return models.Station{
		ID:             id,
		Name:           field(colName),
		Lat:            lat,
		Lon:            lon,
		Capacity:       parseCount(field(colCapacity)),
		BikesAvailable: parseCount(field(colBikes)),
		Status:         status,
	}, nil
}

func parseGeo(raw string) (float64, float64, error) {
	latStr, lonStr, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, fmt.Errorf("bad geo format %q", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q", latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q", lonStr)
	}
	return lat, lon, nil
}

// parseCount tolerates empty and float-formatted cells; anything unreadable
// counts as zero, matching the export's loose formatting.
func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(v)
}

// Import upserts the parsed stations: known ids are updated in place, new
// ids inserted. Runs in one transaction so a failure leaves the table
// untouched.
func Import(db *gorm.DB, stations []models.Station) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, station := range stations {
			var existing models.Station
			err := tx.First(&existing, station.ID).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"name":            station.Name,
					"lat":             station.Lat,
					"lon":             station.Lon,
					"capacity":        station.Capacity,
					"bikes_available": station.BikesAvailable,
					"status":          station.Status,
				}).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&station).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
