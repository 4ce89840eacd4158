// README: Ordered route value objects returned to the caller.
package route

import "ecoroute/internal/types"

// FallbackGuide replaces the transit narrative when generation fails.
const FallbackGuide = "could not generate route description"

// Stop pairs the caller's category label with a resolved place.
type Stop struct {
	Category string              `json:"category"`
	Location types.ResolvedPlace `json:"location"`
}

// Leg is a transit estimate between two consecutive stops.
type Leg struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DurationMinutes int    `json:"duration_minutes"`
	Distance        string `json:"distance"`
}

// Route keeps stops in the caller's travel order.
// Legs is only populated when transit estimates are enabled.
type Route struct {
	Stops               []Stop  `json:"recommended_route"`
	TransportationGuide string  `json:"transportation_guide"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	Legs                []Leg   `json:"legs,omitempty"`
}

// ComposeCommand carries the parallel category and place-name lists.
type ComposeCommand struct {
	Categories []string
	Names      []string
}
