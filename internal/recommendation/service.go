package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/liurongbaobao/myWisdomRestaurant/internal/ai"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/store"
)

// AI runs the two inference stages.
type AI interface {
	AnalyzeCustomerImage(ctx context.Context, imageBase64 string) ai.VisionOutcome
	RecommendDishes(ctx context.Context, vision ai.VisionOutcome, season, mealTime string) ai.RecommendationOutcome
}

// Repository is the session store surface the orchestrator depends on.
type Repository interface {
	GetTableByNumber(ctx context.Context, tableNumber string) (*store.Table, error)
	GenerateSessionID() string
	CreateSession(ctx context.Context, rec *store.SessionRecord) bool
	UpdateFeedback(ctx context.Context, sessionID string, score int, comment string) bool
	ListSessions(ctx context.Context, tableNumber, userID string, limit int) ([]*store.SessionRecord, error)
	GetRecommendedDishes(ctx context.Context) ([]*store.Dish, error)
}

// Service orchestrates the pipeline: validate, resolve table, default
// season and meal time, run vision then recommendation, then persist a
// session record best-effort.
type Service struct {
	ai   AI
	repo Repository

	now func() time.Time
}

func NewService(aiService AI, repo Repository) *Service {
	return &Service{
		ai:   aiService,
		repo: repo,
		now:  time.Now,
	}
}

// Recommend runs one full pipeline invocation. Inference success is
// mandatory; persistence is best-effort and a failed insert still
// reports success to the caller with the generated session id.
func (s *Service) Recommend(ctx context.Context, req Request) (*Result, error) {
	if req.ImageBase64 == "" || req.TableNumber == "" {
		return nil, fmt.Errorf("%w: image_base64 and table_number are required", ErrInvalidRequest)
	}
	if req.Season != "" && !validSeasons[req.Season] {
		return nil, fmt.Errorf("%w: unknown season %q", ErrInvalidRequest, req.Season)
	}
	if req.MealTime != "" && !validMealTimes[req.MealTime] {
		return nil, fmt.Errorf("%w: unknown meal_time %q", ErrInvalidRequest, req.MealTime)
	}

	table, err := s.repo.GetTableByNumber(ctx, req.TableNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve table %s: %w", req.TableNumber, err)
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	season := req.Season
	mealTime := req.MealTime
	if season == "" || mealTime == "" {
		now := s.now()
		if season == "" {
			season = SeasonForMonth(now.Month())
		}
		if mealTime == "" {
			mealTime = MealTimeForHour(now.Hour())
		}
	}

	start := time.Now()

	vision := s.ai.AnalyzeCustomerImage(ctx, req.ImageBase64)
	if !vision.Succeeded {
		return nil, &StageError{Stage: "vision", Detail: vision.ErrorDetail}
	}
	log.Printf("vision stage done, detected %d people", vision.PeopleCount)

	recommendation := s.ai.RecommendDishes(ctx, vision, season, mealTime)
	if !recommendation.Succeeded {
		return nil, &StageError{Stage: "recommendation", Detail: recommendation.ErrorDetail}
	}

	elapsed := time.Since(start).Milliseconds()
	log.Printf("recommendation stage done, %d dishes in %dms", len(recommendation.Suggestions), elapsed)

	suggestions := attachConfidence(recommendation.Suggestions)
	sessionID := s.repo.GenerateSessionID()

	record := &store.SessionRecord{
		SessionID:            sessionID,
		TableID:              table.ID,
		UserID:               req.UserID,
		ImageBase64:          req.ImageBase64,
		VisionResult:         marshalVision(vision),
		RecommendationResult: marshalRecommendation(recommendation.Succeeded, recommendation.ErrorDetail, suggestions),
		Season:               season,
		MealTime:             mealTime,
		PeopleCount:          vision.PeopleCount,
		ProcessingTimeMs:     elapsed,
	}

	// Best-effort: the session id was already handed out, so a failed
	// insert is logged and the caller still gets a success.
	if !s.repo.CreateSession(ctx, record) {
		log.Printf("warning: failed to persist session %s", sessionID)
	}

	return &Result{
		SessionID:        sessionID,
		TableNumber:      req.TableNumber,
		PeopleCount:      vision.PeopleCount,
		Season:           season,
		MealTime:         mealTime,
		ProcessingTimeMs: elapsed,
		Suggestions:      suggestions,
	}, nil
}

// SubmitFeedback records caller feedback against a stored session.
func (s *Service) SubmitFeedback(ctx context.Context, sessionID string, score int, comment string) bool {
	return s.repo.UpdateFeedback(ctx, sessionID, score, comment)
}

// History returns past sessions newest first, with the dish suggestions
// decoded back out of each stored record. A record whose stored outcome
// no longer decodes keeps an empty suggestion list.
func (s *Service) History(ctx context.Context, tableNumber, userID string, limit int) ([]SessionSummary, error) {
	records, err := s.repo.ListSessions(ctx, tableNumber, userID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(records))
	for _, rec := range records {
		summary := SessionSummary{
			SessionID:        rec.SessionID,
			Season:           rec.Season,
			MealTime:         rec.MealTime,
			PeopleCount:      rec.PeopleCount,
			ProcessingTimeMs: rec.ProcessingTimeMs,
			CreatedAt:        rec.CreatedAt,
			Recommendations:  []RecommendedDish{},
		}
		if rec.FeedbackScore.Valid {
			score := int(rec.FeedbackScore.Int64)
			summary.FeedbackScore = &score
		}

		var stored storedRecommendation
		if err := json.Unmarshal([]byte(rec.RecommendationResult), &stored); err == nil && stored.Recommendations != nil {
			summary.Recommendations = stored.Recommendations
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// RecommendedDishes returns the house recommendations from the menu.
func (s *Service) RecommendedDishes(ctx context.Context) ([]*store.Dish, error) {
	return s.repo.GetRecommendedDishes(ctx)
}

// storedRecommendation is the serialized form of a recommendation
// outcome inside a session record.
type storedRecommendation struct {
	Success         bool              `json:"success"`
	Recommendations []RecommendedDish `json:"recommendations"`
	ErrorMessage    string            `json:"error_message,omitempty"`
}

func attachConfidence(suggestions []ai.DishSuggestion) []RecommendedDish {
	dishes := make([]RecommendedDish, 0, len(suggestions))
	for _, suggestion := range suggestions {
		dishes = append(dishes, RecommendedDish{
			DishName:      suggestion.DishName,
			Reason:        suggestion.Reason,
			TasteLevel:    suggestion.TasteLevel,
			NutritionNote: suggestion.NutritionNote,
			Confidence:    PlaceholderConfidence,
		})
	}
	return dishes
}

func marshalVision(vision ai.VisionOutcome) string {
	if vision.Profiles == nil {
		vision.Profiles = []ai.CustomerProfile{}
	}
	raw, err := json.Marshal(vision)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func marshalRecommendation(success bool, errorMessage string, dishes []RecommendedDish) string {
	raw, err := json.Marshal(storedRecommendation{
		Success:         success,
		Recommendations: dishes,
		ErrorMessage:    errorMessage,
	})
	if err != nil {
		return "{}"
	}
	return string(raw)
}
