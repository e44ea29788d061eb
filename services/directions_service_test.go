package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteFallsBackToStraightLine(t *testing.T) {
	svc := NewDirectionsService("")
	in := &DirectionsReq{Start: LatLng{Lat: 48.85, Lng: 2.35}, End: LatLng{Lat: 48.86, Lng: 2.36}}

	out := svc.Route(context.Background(), in)
	require.Len(t, out.Coordinates, 2)
	assert.Equal(t, in.Start, out.Coordinates[0])
	assert.Equal(t, in.End, out.Coordinates[1])
	assert.Zero(t, out.DistanceKm)
	assert.Zero(t, out.DurationMin)
}

func TestRouteUsesProviderWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"coordinates": [{"lat":48.85,"lng":2.35},{"lat":48.855,"lng":2.355},{"lat":48.86,"lng":2.36}],
			"distance_km": 1.6,
			"duration_min": 7.5
		}`))
	}))
	defer srv.Close()

	svc := NewDirectionsService(srv.URL)
	in := &DirectionsReq{Start: LatLng{Lat: 48.85, Lng: 2.35}, End: LatLng{Lat: 48.86, Lng: 2.36}}

	out := svc.Route(context.Background(), in)
	assert.Len(t, out.Coordinates, 3)
	assert.InDelta(t, 1.6, out.DistanceKm, 0.001)
	assert.InDelta(t, 7.5, out.DurationMin, 0.001)
}

func TestRouteFallsBackOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewDirectionsService(srv.URL)
	in := &DirectionsReq{Start: LatLng{Lat: 1, Lng: 2}, End: LatLng{Lat: 3, Lng: 4}}

	out := svc.Route(context.Background(), in)
	require.Len(t, out.Coordinates, 2)
	assert.Zero(t, out.DistanceKm)
}
