// README: Ordered-route composer; resolves caller-ordered stops and narrates transit between them.
package route

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"ecoroute/internal/ai"
	"ecoroute/internal/prompts"
	"ecoroute/internal/types"
)

// maxParallelLookups bounds concurrent place lookups for one request.
const maxParallelLookups = 4

// Resolver looks up coordinates for a free-text place name.
// A missing match is found=false with a nil error.
type Resolver interface {
	Resolve(ctx context.Context, name string) (types.ResolvedPlace, bool, error)
}

// LegEstimator returns travel time and a readable distance between two places.
type LegEstimator interface {
	GetTravelEstimate(ctx context.Context, from, to types.ResolvedPlace) (time.Duration, string, error)
}

type Options struct {
	// ParallelLookups resolves places concurrently; output order is unchanged.
	ParallelLookups bool
	// Legs adds per-leg transit estimates when set.
	Legs   LegEstimator
	Logger *slog.Logger
}

type Service struct {
	places   Resolver
	ai       ai.Provider
	legs     LegEstimator
	parallel bool
	logger   *slog.Logger
}

func NewService(places Resolver, provider ai.Provider, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		places:   places,
		ai:       provider,
		legs:     opts.Legs,
		parallel: opts.ParallelLookups,
		logger:   logger.With(slog.String("component", "route")),
	}
}

// Compose resolves every stop in input order and attaches a transit narrative.
// Category labels are passed through as given; only the list lengths are validated.
// Any unresolved name fails the whole request. A failed narrative falls back to FallbackGuide.
func (s *Service) Compose(ctx context.Context, cmd ComposeCommand) (*Route, error) {
	if len(cmd.Categories) != len(cmd.Names) {
		return nil, &types.LengthMismatchError{Categories: len(cmd.Categories), Names: len(cmd.Names)}
	}
	if len(cmd.Names) == 0 {
		return &Route{Stops: []Stop{}, TransportationGuide: FallbackGuide}, nil
	}

	var (
		places []types.ResolvedPlace
		err    error
	)
	if s.parallel {
		places, err = s.resolveParallel(ctx, cmd.Names)
	} else {
		places, err = s.resolveSequential(ctx, cmd.Names)
	}
	if err != nil {
		return nil, err
	}

	stops := make([]Stop, len(places))
	for i, p := range places {
		stops[i] = Stop{Category: cmd.Categories[i], Location: p}
	}

	return &Route{
		Stops:               stops,
		TransportationGuide: s.transportationGuide(ctx, cmd.Categories, cmd.Names),
		TotalDistanceKm:     pathLengthKm(places),
		Legs:                s.transitLegs(ctx, places),
	}, nil
}

func (s *Service) resolveSequential(ctx context.Context, names []string) ([]types.ResolvedPlace, error) {
	places := make([]types.ResolvedPlace, 0, len(names))
	for _, name := range names {
		p, err := s.resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}

// resolveParallel reports the same failure sequential resolution would: the lowest-index one.
// Lookups queued behind the limit are skipped once an earlier index has failed.
func (s *Service) resolveParallel(ctx context.Context, names []string) ([]types.ResolvedPlace, error) {
	places := make([]types.ResolvedPlace, len(names))
	errs := make([]error, len(names))

	var (
		mu       sync.Mutex
		failedAt = len(names)
	)

	var g errgroup.Group
	g.SetLimit(maxParallelLookups)
	for i, name := range names {
		g.Go(func() error {
			mu.Lock()
			skip := i > failedAt
			mu.Unlock()
			if skip {
				return nil
			}

			p, err := s.resolve(ctx, name)
			if err != nil {
				mu.Lock()
				errs[i] = err
				failedAt = min(failedAt, i)
				mu.Unlock()
				return nil
			}
			places[i] = p
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return places, nil
}

func (s *Service) resolve(ctx context.Context, name string) (types.ResolvedPlace, error) {
	p, found, err := s.places.Resolve(ctx, name)
	if err != nil {
		return types.ResolvedPlace{}, fmt.Errorf("resolve %q: %w", name, err)
	}
	if !found {
		return types.ResolvedPlace{}, &types.PlaceNotFoundError{Name: name}
	}
	return p, nil
}

// transitLegs estimates every consecutive leg. Any failed leg drops the estimates.
func (s *Service) transitLegs(ctx context.Context, places []types.ResolvedPlace) []Leg {
	if s.legs == nil || len(places) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(places)-1)
	for i := 1; i < len(places); i++ {
		from, to := places[i-1], places[i]
		d, dist, err := s.legs.GetTravelEstimate(ctx, from, to)
		if err != nil {
			s.logger.WarnContext(ctx, "transit estimate failed, omitting legs",
				slog.String("from", from.Name), slog.String("to", to.Name), slog.Any("error", err))
			return nil
		}
		legs = append(legs, Leg{
			From:            from.Name,
			To:              to.Name,
			DurationMinutes: int(math.Ceil(d.Minutes())),
			Distance:        dist,
		})
	}
	return legs
}

// CourseText renders stops as "{category}: {name}" joined by " -> ".
func CourseText(categories, names []string) string {
	lines := make([]string, len(names))
	for i := range names {
		lines[i] = fmt.Sprintf("%s: %s", categories[i], names[i])
	}
	return strings.Join(lines, " -> ")
}

func (s *Service) transportationGuide(ctx context.Context, categories, names []string) string {
	prompt, err := prompts.Render(prompts.RouteGuide, prompts.RouteGuideData{CourseText: CourseText(categories, names)})
	if err != nil {
		s.logger.ErrorContext(ctx, "render route guide prompt", slog.Any("error", err))
		return FallbackGuide
	}

	text, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "route guide generation failed, using fallback", slog.Any("error", err))
		return FallbackGuide
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackGuide
	}
	return text
}
