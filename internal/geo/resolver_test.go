package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velib_directory/internal/geocode"
)

type fakeGeocoder struct {
	result *geocode.Result
	err    error
	calls  int
}

func (f *fakeGeocoder) Resolve(address string) (*geocode.Result, error) {
	f.calls++
	return f.result, f.err
}

func floatPtr(v float64) *float64 { return &v }

func TestCoordinatesWinOverAddress(t *testing.T) {
	geocoder := &fakeGeocoder{result: &geocode.Result{Lat: 40.0, Lon: 3.0}}
	r := NewResolver(geocoder)

	bounds := r.Resolve(floatPtr(48.85), floatPtr(2.35), "Rue de Rivoli", 0.01)

	require.NotNil(t, bounds)
	assert.Zero(t, geocoder.calls, "address must be ignored when coordinates are supplied")
	assert.InDelta(t, 48.84, bounds.Min(1), 1e-9)
	assert.InDelta(t, 48.86, bounds.Max(1), 1e-9)
	assert.InDelta(t, 2.34, bounds.Min(0), 1e-9)
	assert.InDelta(t, 2.36, bounds.Max(0), 1e-9)
}

func TestAddressResolvesCentre(t *testing.T) {
	geocoder := &fakeGeocoder{result: &geocode.Result{Lat: 48.86, Lon: 2.34}}
	r := NewResolver(geocoder)

	bounds := r.Resolve(nil, nil, "Place de la Concorde", 0.01)

	require.NotNil(t, bounds)
	assert.Equal(t, 1, geocoder.calls)
	assert.InDelta(t, 48.85, bounds.Min(1), 1e-9)
	assert.InDelta(t, 48.87, bounds.Max(1), 1e-9)
}

func TestGeocodingFailureMeansUnfiltered(t *testing.T) {
	for name, err := range map[string]error{
		"not found":    geocode.ErrNotFound,
		"unconfigured": geocode.ErrUnconfigured,
		"upstream":     errors.New("upstream status 503"),
	} {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(&fakeGeocoder{err: err})
			assert.Nil(t, r.Resolve(nil, nil, "somewhere", 0.01))
		})
	}
}

func TestNoInputsMeansUnfiltered(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := NewResolver(geocoder)

	assert.Nil(t, r.Resolve(nil, nil, "", 0.01))
	assert.Zero(t, geocoder.calls)

	// One coordinate alone is not a centre either
	assert.Nil(t, r.Resolve(floatPtr(48.85), nil, "", 0.01))
}

func TestZeroCoordinatesAreSearchable(t *testing.T) {
	// Presence semantics: (0, 0) is a real centre, not an absent one.
	r := NewResolver(&fakeGeocoder{})

	bounds := r.Resolve(floatPtr(0), floatPtr(0), "", 0.01)
	require.NotNil(t, bounds)
	assert.InDelta(t, -0.01, bounds.Min(0), 1e-9)
	assert.InDelta(t, 0.01, bounds.Max(1), 1e-9)
}

func TestRadiusDefaults(t *testing.T) {
	r := NewResolver(&fakeGeocoder{})

	bounds := r.Resolve(floatPtr(48.85), floatPtr(2.35), "", 0)
	require.NotNil(t, bounds)
	assert.InDelta(t, 48.85-DefaultRadius, bounds.Min(1), 1e-9)
	assert.InDelta(t, 48.85+DefaultRadius, bounds.Max(1), 1e-9)
}
