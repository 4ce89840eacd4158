package itinerary

// Stop is one generated venue. Names are not verified against a place resolver.
type Stop struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// Itinerary is one ordered course with its transit narrative.
type Itinerary struct {
	Course              []Stop `json:"course"`
	TransportationGuide string `json:"transportation_guide"`
}

// Plan is the decoded generation result. Three itineraries of four stops are
// requested from the generator but the counts are not enforced.
type Plan struct {
	RecommendedRoutes []Itinerary `json:"recommended_routes"`
}
