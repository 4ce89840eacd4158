// README: Smoke cases for the route, itinerary and recommendation endpoints plus a health load check.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	categories := splitList(r.cfg.Categories)
	places := splitList(r.cfg.PlaceNames)

	cases := []TestCase{
		httpCaseMethod("API: health", http.MethodGet, base+"/health", nil, []int{200}, nil),
		httpCaseMethod("API: metrics exposed", http.MethodGet, base+"/metrics", nil, []int{200}, []int{404}),

		httpCase("Route: missing fields -> 400", base+"/eco_routes_dynamic", map[string]any{}, []int{400}, nil),
		httpCase("Route: length mismatch -> 400", base+"/eco_routes_dynamic", map[string]any{
			"selected_category_from_ui": []string{"lodging", "café"},
			"place_names":               []string{"Lotte Hotel Seoul"},
		}, []int{400}, nil),
		httpCase("Route: empty lists -> fallback", base+"/eco_routes_dynamic", map[string]any{
			"selected_category_from_ui": []string{},
			"place_names":               []string{},
		}, []int{200}, nil),

		httpCaseMethod("Itinerary: missing region -> 400", http.MethodGet, base+"/gemini_routes", nil, []int{400}, nil),
		httpCaseMethod("Eco: invalid category -> 400", http.MethodGet,
			base+"/get_gemini_recommend?user_category_answer=museum", nil, []int{400}, nil),
	}

	live := []TestCase{
		httpCase("Route: resolve and narrate", base+"/eco_routes_dynamic", map[string]any{
			"selected_category_from_ui": categories,
			"place_names":               places,
		}, []int{200}, []int{500}),
		httpCase("Route: unknown place -> 404", base+"/eco_routes_dynamic", map[string]any{
			"selected_category_from_ui": []string{"lodging"},
			"place_names":               []string{"zzqx no such place 0000"},
		}, []int{404}, []int{500}),
		httpCaseMethod("Itinerary: region", http.MethodGet,
			base+"/gemini_routes?region="+url.QueryEscape(r.cfg.Region), nil, []int{200}, []int{500}),
	}
	for _, c := range []string{"lodging", "restaurant", "café", "tourist-attraction"} {
		live = append(live, httpCaseMethod("Eco: recommend "+c, http.MethodGet,
			base+"/get_gemini_recommend?user_category_answer="+url.QueryEscape(c), nil, []int{200}, []int{500}))
	}
	for _, tc := range live {
		if r.cfg.Live {
			cases = append(cases, tc)
		} else {
			cases = append(cases, manualCase(tc.Name, "live=false"))
		}
	}

	// Performance
	cases = append(cases, TestCase{
		Name:  "Perf: health throughput",
		Focus: "Router and middleware overhead",
		Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, http.MethodGet, base+"/health", nil)
		},
	})

	return cases
}

func httpCase(name, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses, pendingStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if contains(pendingStatuses, resp.StatusCode) {
				return Result{Status: "PENDING", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Manual",
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: "SKIP", Note: note}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	var b []byte
	if payload != nil {
		b, _ = json.Marshal(payload)
	}
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				var body io.Reader
				if b != nil {
					body = strings.NewReader(string(b))
				}
				req, _ := http.NewRequestWithContext(ctx, method, url, body)
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
