package geocode

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureBody = `{"features":[{"place_name":"Rue de Rivoli, 75001 Paris, France",` +
	`"geometry":{"type":"Point","coordinates":[2.3488,48.8534]}}]}`

func TestResolveSuccess(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(featureBody))
	}))
	defer srv.Close()

	client := NewClient(Options{Token: "pk.test", BaseURL: srv.URL})

	result, err := client.Resolve("Rue de Rivoli")
	require.NoError(t, err)

	// Coordinates arrive as (lon, lat) and must be swapped
	assert.InDelta(t, 48.8534, result.Lat, 1e-9)
	assert.InDelta(t, 2.3488, result.Lon, 1e-9)
	assert.Equal(t, "Rue de Rivoli, 75001 Paris, France", result.Name)

	// Provider request contract
	assert.Equal(t, "/Rue de Rivoli.json", gotPath)
	assert.Equal(t, []string{"pk.test"}, gotQuery["access_token"])
	assert.Equal(t, []string{"FR"}, gotQuery["country"])
	assert.Equal(t, []string{"1"}, gotQuery["limit"])
	assert.Equal(t, []string{"2.3522,48.8566"}, gotQuery["proximity"])
}

func TestResolveLabelFallsBackToQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[2.0,48.0]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Options{Token: "pk.test", BaseURL: srv.URL})
	result, err := client.Resolve("13 Rue du Chat")
	require.NoError(t, err)
	assert.Equal(t, "13 Rue du Chat", result.Name)
}

func TestResolveNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Options{Token: "pk.test", BaseURL: srv.URL})
	_, err := client.Resolve("nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Options{Token: "pk.test", BaseURL: srv.URL})
	_, err := client.Resolve("Rue de Rivoli")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "502")
}

func TestResolveUnconfigured(t *testing.T) {
	// No token: the provider must never be contacted
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request to provider")
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.Resolve("Rue de Rivoli")
	assert.ErrorIs(t, err, ErrUnconfigured)
}
