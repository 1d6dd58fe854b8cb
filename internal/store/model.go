package store

import (
	"database/sql"
	"time"
)

// Table is one physical restaurant table, keyed by its business number.
type Table struct {
	ID          int64
	TableNumber string
	TableName   string
	SeatCount   int
	TableType   string
	Status      string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Dish is one menu entry from the dishes table.
type Dish struct {
	ID          int64   `json:"id"`
	DishCode    string  `json:"dish_code"`
	DishName    string  `json:"dish_name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	TasteTags   string  `json:"taste_tags"`
	ImageURL    string  `json:"image_url"`
	IsSignature bool    `json:"is_signature"`
	Rating      float64 `json:"rating"`
	SalesCount  int     `json:"sales_count"`
}

// SessionRecord is the persisted unit for one completed recommendation
// pipeline run. Both stage outcomes are stored as serialized JSON;
// feedback fields are the only mutation permitted after creation.
type SessionRecord struct {
	ID                   int64
	SessionID            string
	TableID              int64
	UserID               string
	ImageBase64          string
	VisionResult         string
	RecommendationResult string
	Season               string
	MealTime             string
	PeopleCount          int
	ProcessingTimeMs     int64
	FeedbackScore        sql.NullInt64
	FeedbackComment      sql.NullString
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
