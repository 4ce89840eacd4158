package eco

import "encoding/json"

// RecommendationSet pairs the canned query with the generated venues.
// Response shape is decided by the generator; only JSON validity is checked.
type RecommendationSet struct {
	Query    string          `json:"query"`
	Response json.RawMessage `json:"response"`
}

// CannedQueries is index-aligned with types.Categories.
var CannedQueries = []string{
	"Are there any special lodgings in Seoul that care about the environment?",
	"Recommend restaurants in Seoul that use sustainable ingredients.",
	"Are there any eco-friendly cafés in Seoul?",
	"Tell me about sustainable tourist attractions in Seoul where I can feel nature.",
}
