package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"ecoroute/internal/metrics"
	"ecoroute/internal/types"
)

// PlacesService resolves free-text place names through the Google Places API.
type PlacesService struct {
	client   *maps.Client
	language string
	timeout  time.Duration
	metrics  *metrics.Metrics
}

// Options tunes a PlacesService. The zero value is usable.
type Options struct {
	// Language biases result names, e.g. "ko".
	Language string
	// Timeout bounds each lookup; zero leaves the caller's deadline untouched.
	Timeout time.Duration
	Metrics *metrics.Metrics
	// BaseURL overrides the API host, for tests.
	BaseURL string
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string, opts Options) (*PlacesService, error) {
	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}
	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{
		client:   client,
		language: opts.Language,
		timeout:  opts.Timeout,
		metrics:  opts.Metrics,
	}, nil
}

// Resolve returns the best match for name. A missing match is reported as found=false
// with a nil error; only transport or API failures return an error.
func (s *PlacesService) Resolve(ctx context.Context, name string) (types.ResolvedPlace, bool, error) {
	if strings.TrimSpace(name) == "" {
		return types.ResolvedPlace{}, false, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	r := &maps.FindPlaceFromTextRequest{
		Input:     name,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskGeometry,
			maps.PlaceSearchFieldMaskName,
		},
		Language: s.language,
	}

	start := time.Now()
	resp, err := s.client.FindPlaceFromText(ctx, r)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &types.UpstreamTimeoutError{Op: "places.find_place", Err: err}
		} else {
			err = fmt.Errorf("places api error: %w", err)
		}
		s.metrics.ObserveUpstream("places", "find_place", time.Since(start), err)
		return types.ResolvedPlace{}, false, err
	}
	s.metrics.ObserveUpstream("places", "find_place", time.Since(start), nil)

	if len(resp.Candidates) == 0 {
		return types.ResolvedPlace{}, false, nil
	}

	loc := resp.Candidates[0].Geometry.Location
	return types.ResolvedPlace{Name: name, Lat: loc.Lat, Lng: loc.Lng}, true, nil
}
