package store

import (
	"errors"

	"github.com/lib/pq"
	"github.com/twpayne/go-geom"
	"gorm.io/gorm"

	"velib_directory/internal/models"
)

var (
	ErrNotFound = errors.New("station not found")
	ErrConflict = errors.New("station already exists")
)

// maxListResults caps every listing regardless of filter.
const maxListResults = 200

// ListFilter narrows a listing to an axis-aligned bounding box in degree
// space. A nil Bounds means no spatial filter at all.
type ListFilter struct {
	Bounds *geom.Bounds
}

// StationStore is the persistence contract for station records. The only
// invariant it enforces is primary-key uniqueness; everything else is
// free-form at this layer.
type StationStore interface {
	Get(id int) (models.Station, error)
	List(filter ListFilter) ([]models.Station, error)
	Create(station models.Station) (models.Station, error)
	Update(id int, fields map[string]interface{}) (models.Station, error)
	Delete(id int) error
}

// GormStationStore implements StationStore on a gorm handle. The handle is
// passed in explicitly rather than read from a package global.
type GormStationStore struct {
	db *gorm.DB
}

func NewGormStationStore(db *gorm.DB) *GormStationStore {
	return &GormStationStore{db: db}
}

func (s *GormStationStore) Get(id int) (models.Station, error) {
	var station models.Station
	if err := s.db.First(&station, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Station{}, ErrNotFound
		}
		return models.Station{}, err
	}
	return station, nil
}

func (s *GormStationStore) List(filter ListFilter) ([]models.Station, error) {
	query := s.db.Order("id").Limit(maxListResults)

	if b := filter.Bounds; b != nil {
		// go-geom bounds are (x, y) = (lon, lat)
		query = query.
			Where("lat BETWEEN ? AND ?", b.Min(1), b.Max(1)).
			Where("lon BETWEEN ? AND ?", b.Min(0), b.Max(0))
	}

	var stations []models.Station
	if err := query.Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (s *GormStationStore) Create(station models.Station) (models.Station, error) {
	var existing models.Station
	err := s.db.First(&existing, station.ID).Error
	if err == nil {
		return models.Station{}, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Station{}, err
	}

	if err := s.db.Create(&station).Error; err != nil {
		// Backstop for a concurrent create racing past the pre-check.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return models.Station{}, ErrConflict
		}
		return models.Station{}, err
	}
	return station, nil
}

func (s *GormStationStore) Update(id int, fields map[string]interface{}) (models.Station, error) {
	var station models.Station

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&station, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&station).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&station, id).Error
	})
	if err != nil {
		return models.Station{}, err
	}
	return station, nil
}

func (s *GormStationStore) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var station models.Station
		if err := tx.First(&station, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&station).Error
	})
}
