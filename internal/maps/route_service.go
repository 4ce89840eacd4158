package maps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"googlemaps.github.io/maps"

	"ecoroute/internal/metrics"
	"ecoroute/internal/types"
)

// RouteService estimates public-transit legs with the Directions API.
type RouteService struct {
	client   *maps.Client
	language string
	timeout  time.Duration
	metrics  *metrics.Metrics
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string, opts Options) (*RouteService, error) {
	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}
	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{
		client:   client,
		language: opts.Language,
		timeout:  opts.Timeout,
		metrics:  opts.Metrics,
	}, nil
}

// GetTravelEstimate returns the duration and human readable distance of the first
// transit leg between two resolved places.
func (s *RouteService) GetTravelEstimate(ctx context.Context, from, to types.ResolvedPlace) (time.Duration, string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	r := &maps.DirectionsRequest{
		Origin:      latLng(from),
		Destination: latLng(to),
		Mode:        maps.TravelModeTransit,
		Language:    s.language,
	}

	start := time.Now()
	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &types.UpstreamTimeoutError{Op: "directions.transit", Err: err}
		} else {
			err = fmt.Errorf("maps api error: %w", err)
		}
		s.metrics.ObserveUpstream("directions", "transit", time.Since(start), err)
		return 0, "", err
	}
	s.metrics.ObserveUpstream("directions", "transit", time.Since(start), nil)

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, "", fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return leg.Duration, leg.Distance.HumanReadable, nil
}

func latLng(p types.ResolvedPlace) string {
	return strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lng, 'f', 6, 64)
}
