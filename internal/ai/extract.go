package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"ecoroute/internal/types"
)

// ExtractFunc pulls a JSON payload out of generated text.
type ExtractFunc func(text string, wrapAsArray bool) (json.RawMessage, error)

var errNoJSONObject = errors.New("no JSON object found in generated text")

// ExtractJSON slices text from the first '{' to the last '}' and validates it as JSON.
// With wrapAsArray the slice is wrapped in brackets first, so one object becomes a
// one-element array and comma-separated sibling objects become a longer array.
// This is a brace heuristic, not a parser: trailing prose with a stray '}' defeats it.
func ExtractJSON(text string, wrapAsArray bool) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end < start {
		return nil, &types.MalformedGenerationError{Raw: text, Err: errNoJSONObject}
	}

	payload := text[start : end+1]
	if wrapAsArray {
		payload = "[" + payload + "]"
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, &types.MalformedGenerationError{Raw: text, Err: err}
	}
	return json.RawMessage(payload), nil
}
