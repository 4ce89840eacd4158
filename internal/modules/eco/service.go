// README: Eco-recommendation generator; persona plus canned query per category, JSON venues back.
package eco

import (
	"context"
	"fmt"
	"log/slog"

	"ecoroute/internal/ai"
	"ecoroute/internal/prompts"
	"ecoroute/internal/types"
)

type Options struct {
	// Extract overrides the JSON extraction heuristic. Defaults to ai.ExtractJSON.
	Extract ai.ExtractFunc
	Logger  *slog.Logger
}

type Service struct {
	ai      ai.Provider
	extract ai.ExtractFunc
	logger  *slog.Logger
}

func NewService(provider ai.Provider, opts Options) *Service {
	extract := opts.Extract
	if extract == nil {
		extract = ai.ExtractJSON
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ai:      provider,
		extract: extract,
		logger:  logger.With(slog.String("component", "eco")),
	}
}

// Recommend validates category before any outbound call, then asks the generator
// for sustainable venues. Sibling objects in the output come back as one array.
func (s *Service) Recommend(ctx context.Context, category string) (*RecommendationSet, error) {
	c, err := types.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	idx := c.Index()
	if idx < 0 || idx >= len(CannedQueries) {
		return nil, fmt.Errorf("no canned query for category %s", c)
	}
	query := CannedQueries[idx]

	persona, err := prompts.Render(prompts.EcoPersona, nil)
	if err != nil {
		return nil, &types.UpstreamGenerationError{Detail: "render prompt", Err: err}
	}

	text, err := s.ai.GenerateMessages(ctx, []ai.Message{
		{Role: ai.RoleSystem, Text: persona},
		{Role: ai.RoleUser, Text: query},
	})
	if err != nil {
		return nil, &types.UpstreamGenerationError{Detail: "generate recommendations", Err: err}
	}

	raw, err := s.extract(text, true)
	if err != nil {
		s.logger.WarnContext(ctx, "recommendation output had no usable json",
			slog.String("category", c.String()), slog.Any("error", err))
		return nil, err
	}

	return &RecommendationSet{Query: query, Response: raw}, nil
}
