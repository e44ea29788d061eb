package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type LatLng struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

type DirectionsReq struct {
	Start LatLng `json:"start" binding:"required"`
	End   LatLng `json:"end" binding:"required"`
}

type DirectionsRes struct {
	Coordinates []LatLng `json:"coordinates"`
	DistanceKm  float64  `json:"distance_km"`
	DurationMin float64  `json:"duration_min"`
}

// DirectionsService proxies the routing provider. With no provider
// configured, or on any upstream failure, it degrades to a straight line
// between the two points with zeroed distance and duration.
type DirectionsService struct {
	BaseURL string
	Client  *http.Client
}

func NewDirectionsService(baseURL string) *DirectionsService {
	return &DirectionsService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *DirectionsService) Route(ctx context.Context, in *DirectionsReq) *DirectionsRes {
	if s.BaseURL == "" {
		return s.fallback(in)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return s.fallback(in)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/route", bytes.NewReader(body))
	if err != nil {
		return s.fallback(in)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		log.Printf("directions upstream error: %v", err)
		return s.fallback(in)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("directions upstream status %d", res.StatusCode)
		return s.fallback(in)
	}

	var out DirectionsRes
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil || len(out.Coordinates) == 0 {
		return s.fallback(in)
	}
	return &out
}

func (s *DirectionsService) fallback(in *DirectionsReq) *DirectionsRes {
	// straight line, distance/duration deliberately zero so clients can tell
	// a fallback from a routed answer
	return &DirectionsRes{
		Coordinates: []LatLng{in.Start, in.End},
		DistanceKm:  0,
		DurationMin: 0,
	}
}
