// README: Handler tests for request binding and error-to-status mapping.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoroute/internal/http/handlers"
	"ecoroute/internal/modules/eco"
	"ecoroute/internal/modules/itinerary"
	"ecoroute/internal/modules/route"
	"ecoroute/internal/types"
)

type stubComposer struct {
	got route.ComposeCommand
	rt  *route.Route
	err error
}

func (s *stubComposer) Compose(_ context.Context, cmd route.ComposeCommand) (*route.Route, error) {
	s.got = cmd
	return s.rt, s.err
}

type stubGenerator struct {
	region string
	plan   *itinerary.Plan
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, region string) (*itinerary.Plan, error) {
	s.region = region
	return s.plan, s.err
}

type stubRecommender struct {
	set *eco.RecommendationSet
	err error
}

func (s *stubRecommender) Recommend(_ context.Context, category string) (*eco.RecommendationSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, err := types.ParseCategory(category); err != nil {
		return nil, err
	}
	return s.set, nil
}

func buildTestRouter(rc handlers.RouteComposer, ig handlers.ItineraryGenerator, er handlers.EcoRecommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/eco_routes_dynamic", handlers.NewRouteHandler(rc).Compose)
	r.GET("/gemini_routes", handlers.NewItineraryHandler(ig).Generate)
	r.GET("/get_gemini_recommend", handlers.NewEcoHandler(er).Recommend)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRouteHandler_Success(t *testing.T) {
	rc := &stubComposer{rt: &route.Route{
		Stops: []route.Stop{
			{Category: "lodging", Location: types.ResolvedPlace{Name: "Lotte Hotel", Lat: 37.56, Lng: 126.98}},
		},
		TransportationGuide: "walk",
	}}
	r := buildTestRouter(rc, &stubGenerator{}, &stubRecommender{})

	w := doRequest(r, http.MethodPost, "/eco_routes_dynamic", map[string]any{
		"selected_category_from_ui": []string{"lodging"},
		"place_names":               []string{"Lotte Hotel"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"recommended_route": [{"category": "lodging", "location": {"name": "Lotte Hotel", "lat": 37.56, "lng": 126.98}}],
		"transportation_guide": "walk",
		"total_distance_km": 0
	}`, w.Body.String())
	assert.Equal(t, []string{"lodging"}, rc.got.Categories)
	assert.Equal(t, []string{"Lotte Hotel"}, rc.got.Names)
}

func TestRouteHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "not json", body: "{oops"},
		{name: "missing place_names", body: map[string]any{"selected_category_from_ui": []string{"lodging"}}},
		{name: "missing categories", body: map[string]any{"place_names": []string{"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &stubComposer{}
			r := buildTestRouter(rc, &stubGenerator{}, &stubRecommender{})

			w := doRequest(r, http.MethodPost, "/eco_routes_dynamic", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid json", decodeError(t, w)["error"])
		})
	}
}

func TestRouteHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "length mismatch", err: &types.LengthMismatchError{Categories: 2, Names: 1}, wantStatus: http.StatusBadRequest},
		{name: "place not found", err: &types.PlaceNotFoundError{Name: "Atlantis"}, wantStatus: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("compose: %w", &types.PlaceNotFoundError{Name: "Atlantis"}), wantStatus: http.StatusNotFound},
		{name: "resolver timeout", err: &types.UpstreamTimeoutError{Op: "places.find_place", Err: context.DeadlineExceeded}, wantStatus: http.StatusInternalServerError},
		{name: "resolver failure", err: errors.New("places api error: REQUEST_DENIED"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildTestRouter(&stubComposer{err: tt.err}, &stubGenerator{}, &stubRecommender{})

			w := doRequest(r, http.MethodPost, "/eco_routes_dynamic", map[string]any{
				"selected_category_from_ui": []string{"a", "b"},
				"place_names":               []string{"x"},
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, decodeError(t, w)["error"])
		})
	}
}

func TestItineraryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ig := &stubGenerator{plan: &itinerary.Plan{RecommendedRoutes: []itinerary.Itinerary{{
			Course:              []itinerary.Stop{{Category: "lodging", Name: "Jeju Eco Stay"}},
			TransportationGuide: "bus",
		}}}}
		r := buildTestRouter(&stubComposer{}, ig, &stubRecommender{})

		w := doRequest(r, http.MethodGet, "/gemini_routes?region=Jeju", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"recommended_routes": [{"course": [{"category": "lodging", "name": "Jeju Eco Stay"}], "transportation_guide": "bus"}]}`, w.Body.String())
		assert.Equal(t, "Jeju", ig.region)
	})

	t.Run("missing region", func(t *testing.T) {
		ig := &stubGenerator{}
		r := buildTestRouter(&stubComposer{}, ig, &stubRecommender{})

		w := doRequest(r, http.MethodGet, "/gemini_routes", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, ig.region)
	})

	t.Run("generation failure", func(t *testing.T) {
		ig := &stubGenerator{err: &types.UpstreamGenerationError{Detail: "extract itineraries", Err: errors.New("no json")}}
		r := buildTestRouter(&stubComposer{}, ig, &stubRecommender{})

		w := doRequest(r, http.MethodGet, "/gemini_routes?region=Busan", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "generation failed", body["error"])
		assert.Contains(t, body["detail"], "no json")
	})
}

func TestEcoHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		er := &stubRecommender{set: &eco.RecommendationSet{
			Query:    eco.CannedQueries[2],
			Response: json.RawMessage(`[{"name":"Eco Cafe"}]`),
		}}
		r := buildTestRouter(&stubComposer{}, &stubGenerator{}, er)

		w := doRequest(r, http.MethodGet, "/get_gemini_recommend?user_category_answer=caf%C3%A9", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Responses struct {
				Query    string           `json:"query"`
				Response []map[string]any `json:"response"`
			} `json:"responses"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, eco.CannedQueries[2], body.Responses.Query)
		assert.Len(t, body.Responses.Response, 1)
	})

	t.Run("invalid category lists allowed set", func(t *testing.T) {
		r := buildTestRouter(&stubComposer{}, &stubGenerator{}, &stubRecommender{})

		w := doRequest(r, http.MethodGet, "/get_gemini_recommend?user_category_answer=museum", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, []any{"lodging", "restaurant", "café", "tourist-attraction"}, body["detail"])
	})

	t.Run("malformed output", func(t *testing.T) {
		er := &stubRecommender{err: &types.MalformedGenerationError{Raw: "sorry", Err: errors.New("no JSON object")}}
		r := buildTestRouter(&stubComposer{}, &stubGenerator{}, er)

		w := doRequest(r, http.MethodGet, "/get_gemini_recommend?user_category_answer=lodging", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "malformed generation output", decodeError(t, w)["error"])
	})
}
