package recommendation

import (
	"errors"
	"fmt"
	"time"
)

// Request carries one inbound recommendation request. Season and meal
// time are optional; omitted values are inferred from the wall clock.
type Request struct {
	ImageBase64 string `json:"image_base64"`
	TableNumber string `json:"table_number"`
	UserID      string `json:"user_id"`
	Season      string `json:"season"`
	MealTime    string `json:"meal_time"`
}

// Result is the combined outcome of one successful pipeline run.
type Result struct {
	SessionID        string
	TableNumber      string
	PeopleCount      int
	Season           string
	MealTime         string
	ProcessingTimeMs int64
	Suggestions      []RecommendedDish
}

// RecommendedDish is a dish suggestion as persisted and as returned at
// the HTTP boundary. Confidence is a fixed placeholder attached here,
// not produced by the recommendation stage.
type RecommendedDish struct {
	DishName      string  `json:"dish_name"`
	Reason        string  `json:"reason"`
	TasteLevel    string  `json:"taste_level"`
	NutritionNote string  `json:"nutrition_advice"`
	Confidence    float64 `json:"confidence"`
}

// PlaceholderConfidence is attached to every suggestion until real
// per-dish scoring exists.
const PlaceholderConfidence = 0.8

// SessionSummary is one history entry, with the dish suggestions read
// back out of the stored session record.
type SessionSummary struct {
	SessionID        string            `json:"session_id"`
	Season           string            `json:"season"`
	MealTime         string            `json:"meal_time"`
	PeopleCount      int               `json:"people_count"`
	ProcessingTimeMs int64             `json:"processing_time"`
	FeedbackScore    *int              `json:"feedback_score,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	Recommendations  []RecommendedDish `json:"recommendations"`
}

var (
	// ErrInvalidRequest marks requests rejected before any side effect.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTableNotFound marks an unknown table number.
	ErrTableNotFound = errors.New("table not found")
)

// StageError is a failure inside one of the two inference stages.
type StageError struct {
	Stage  string
	Detail string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Detail)
}
