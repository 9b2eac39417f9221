package geo

import (
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"

	"velib_directory/internal/geocode"
)

// DefaultRadius is the half-width of the search box in degrees, roughly
// 1.1 km east-west at the latitude of Paris.
const DefaultRadius = 0.01

// Resolver turns the lat/lon/address triple of a station query into a
// bounding box, or into no filter at all.
type Resolver struct {
	Geocoder geocode.Resolver
}

func NewResolver(geocoder geocode.Resolver) *Resolver {
	return &Resolver{Geocoder: geocoder}
}

// Resolve picks a search centre and expands it by radius on both axes.
// Explicit coordinates win over the address; a lone address goes through the
// geocoder. Any geocoding failure degrades to a nil box (unfiltered listing)
// rather than an error, so a flaky provider can never break station listing.
// Presence is a non-nil pointer: (0, 0) is a legitimate, searchable centre.
func (r *Resolver) Resolve(lat, lon *float64, address string, radius float64) *geom.Bounds {
	if radius <= 0 {
		radius = DefaultRadius
	}

	if lat != nil && lon != nil {
		return boundsAround(*lat, *lon, radius)
	}

	if address != "" && r.Geocoder != nil {
		result, err := r.Geocoder.Resolve(address)
		if err != nil {
			logrus.WithError(err).WithField("address", address).
				Debug("geocoding failed, listing without spatial filter")
			return nil
		}
		return boundsAround(result.Lat, result.Lon, radius)
	}

	return nil
}

func boundsAround(lat, lon, radius float64) *geom.Bounds {
	// go-geom bounds are (x, y) = (lon, lat)
	return geom.NewBounds(geom.XY).Set(lon-radius, lat-radius, lon+radius, lat+radius)
}
