// README: Resolved place value object returned by the place-resolution collaborator.
package types

// ResolvedPlace is a place name pinned to decimal-degree coordinates.
type ResolvedPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
