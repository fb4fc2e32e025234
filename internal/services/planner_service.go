package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ait/internal/models/request_models"
	"ait/internal/models/response_models"
	mem "ait/pkg/memcache"
	"ait/pkg/metrics"
	"ait/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlan, error)
}

type PlannerService struct {
	backend *utils.Backend
	cache   mem.ItineraryCache
	budgets BudgetTable
	maxDays int
	logger  *zap.Logger
}

func NewPlannerService(backend *utils.Backend, cache mem.ItineraryCache, budgets BudgetTable, maxTripDays int, logger *zap.Logger) PlannerServiceInterface {
	return &PlannerService{
		backend: backend,
		cache:   cache,
		budgets: budgets,
		maxDays: maxTripDays,
		logger:  logger.Named("planner"),
	}
}

// PlanTrip validates the dates, prices the trip and asks the backend for a day-wise itinerary.
// The only error it returns is a *utils.ValidationError; backend trouble degrades to the fallback itinerary.
func (s *PlannerService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlan, error) {
	dates, err := ValidateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := ValidateTripLength(dates, s.maxDays); err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	interests := DescribeInterests(req.Interests)
	budget := s.budgets.Estimate(req.Budget, dates.TotalDays)

	prompt := BuildItineraryPrompt(TripPrompt{
		Destination: destination,
		Dates:       dates,
		Interests:   interests,
		Budget:      strings.TrimSpace(req.Budget),
	})

	itinerary := s.generate(ctx, prompt)
	if len(itinerary.Days) == 0 {
		itinerary = response_models.Itinerary{
			Days:   FallbackItinerary(destination, dates),
			Source: response_models.SourceFallback,
		}
	}
	metrics.ObserveItinerary(string(itinerary.Source))

	s.logger.Info("trip planned",
		zap.String("destination", destination),
		zap.Int("total_days", dates.TotalDays),
		zap.Int("days", len(itinerary.Days)),
		zap.String("source", string(itinerary.Source)))

	return &response_models.TripPlan{
		Destination:          destination,
		StartDate:            dates.Start.Format(utils.DateLayout),
		EndDate:              dates.End.Format(utils.DateLayout),
		TotalDays:            dates.TotalDays,
		Interests:            strings.TrimSpace(req.Interests),
		InterestsDescription: interests,
		Budget:               budget,
		Itinerary:            itinerary,
	}, nil
}

// generate returns an empty itinerary when nothing usable came back.
func (s *PlannerService) generate(ctx context.Context, prompt string) response_models.Itinerary {
	if !s.backend.Configured() {
		return response_models.Itinerary{}
	}

	key := mem.ItineraryKey(s.backend.Provider(), prompt)
	if raw, ok := s.cache.Get(key); ok {
		if days := ParseItinerary(raw); len(days) > 0 {
			return response_models.Itinerary{Days: days, Source: response_models.SourceCache}
		}
	}

	result := s.backend.Complete(ctx, plannerSystemPrompt, prompt)
	if !result.OK() {
		return response_models.Itinerary{}
	}

	days := ParseItinerary(result.Text)
	if len(days) == 0 {
		s.logger.Warn("itinerary reply had no day blocks", zap.Int("chars", len(result.Text)))
		return response_models.Itinerary{}
	}

	s.cache.Set(key, result.Text)
	return response_models.Itinerary{Days: days, Source: response_models.SourceAI}
}
