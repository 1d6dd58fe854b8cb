package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"
)

// Store is the session store backed by one physical SQLite connection.
// Every operation takes the process-wide mutex for the duration of its
// statement, so store operations are fully serialized relative to each
// other. Correctness over throughput: the external inference calls, not
// the store, dominate request latency.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// New wraps an opened database connection. The caller owns the
// connection's lifecycle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSession inserts a new session record. It returns false on any
// constraint or I/O failure, notably a session id collision; the caller
// treats that as non-fatal.
func (s *Store) CreateSession(ctx context.Context, rec *SessionRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_recommendations (
			session_id, table_id, user_id, image_base64,
			vision_result, recommendation_result, season, meal_time,
			people_count, processing_time, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.TableID,
		rec.UserID,
		rec.ImageBase64,
		rec.VisionResult,
		rec.RecommendationResult,
		rec.Season,
		rec.MealTime,
		rec.PeopleCount,
		rec.ProcessingTimeMs,
		now,
		now,
	)
	if err != nil {
		log.Printf("store: insert session %s failed: %v", rec.SessionID, err)
		return false
	}
	return true
}

// UpdateFeedback records a score and comment against an existing session.
// It is the only permitted post-creation mutation. A missing session id
// and a lower-level I/O failure both report false.
func (s *Store) UpdateFeedback(ctx context.Context, sessionID string, score int, comment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE ai_recommendations
		SET feedback_score = ?, feedback_comment = ?, updated_at = ?
		WHERE session_id = ?`,
		score,
		comment,
		time.Now().UTC().Format(time.RFC3339),
		sessionID,
	)
	if err != nil {
		log.Printf("store: update feedback for %s failed: %v", sessionID, err)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false
	}
	return affected > 0
}

// GetSessionByID returns the session with the given session id, or
// (nil, nil) when no such session exists.
func (s *Store) GetSessionByID(ctx context.Context, sessionID string) (*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, table_id, user_id, image_base64,
		       vision_result, recommendation_result, season, meal_time,
		       people_count, feedback_score, feedback_comment,
		       processing_time, created_at, updated_at
		FROM ai_recommendations
		WHERE session_id = ?`,
		sessionID,
	)

	rec, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return rec, nil
}

// ListSessions returns session records newest first, optionally filtered
// by table number and user id. Empty filters match everything.
func (s *Store) ListSessions(ctx context.Context, tableNumber, userID string, limit int) ([]*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.session_id, r.table_id, r.user_id, r.image_base64,
		       r.vision_result, r.recommendation_result, r.season, r.meal_time,
		       r.people_count, r.feedback_score, r.feedback_comment,
		       r.processing_time, r.created_at, r.updated_at
		FROM ai_recommendations r
		JOIN tables t ON t.id = r.table_id
		WHERE (? = '' OR t.table_number = ?)
		  AND (? = '' OR r.user_id = ?)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ?`,
		tableNumber, tableNumber,
		userID, userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []*SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetTableByNumber resolves a table by its business number, returning
// (nil, nil) when the table does not exist.
func (s *Store) GetTableByNumber(ctx context.Context, tableNumber string) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		t                    Table
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, table_number, table_name, seat_count, table_type,
		       status, location, created_at, updated_at
		FROM tables
		WHERE table_number = ?`,
		tableNumber,
	).Scan(
		&t.ID,
		&t.TableNumber,
		&t.TableName,
		&t.SeatCount,
		&t.TableType,
		&t.Status,
		&t.Location,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", tableNumber, err)
	}

	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updatedAt)
	return &t, nil
}

// GetRecommendedDishes returns available dishes flagged as recommended,
// signature dishes first.
func (s *Store) GetRecommendedDishes(ctx context.Context) ([]*Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, dish_code, dish_name, price, description,
		       taste_tags, image_url, is_signature, rating, sales_count
		FROM dishes
		WHERE is_recommended = 1 AND is_available = 1
		ORDER BY is_signature DESC, rating DESC, dish_code`,
	)
	if err != nil {
		return nil, fmt.Errorf("query recommended dishes: %w", err)
	}
	defer rows.Close()

	var dishes []*Dish
	for rows.Next() {
		var d Dish
		if err := rows.Scan(
			&d.ID,
			&d.DishCode,
			&d.DishName,
			&d.Price,
			&d.Description,
			&d.TasteTags,
			&d.ImageURL,
			&d.IsSignature,
			&d.Rating,
			&d.SalesCount,
		); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, &d)
	}
	return dishes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*SessionRecord, error) {
	var (
		rec                  SessionRecord
		createdAt, updatedAt string
	)
	err := row.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.TableID,
		&rec.UserID,
		&rec.ImageBase64,
		&rec.VisionResult,
		&rec.RecommendationResult,
		&rec.Season,
		&rec.MealTime,
		&rec.PeopleCount,
		&rec.FeedbackScore,
		&rec.FeedbackComment,
		&rec.ProcessingTimeMs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	rec.UpdatedAt = parseTimestamp(updatedAt)
	return &rec, nil
}

func parseTimestamp(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	// CURRENT_TIMESTAMP default
	ts, _ := time.Parse("2006-01-02 15:04:05", raw)
	return ts
}
