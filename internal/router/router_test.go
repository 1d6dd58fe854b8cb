package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/liurongbaobao/myWisdomRestaurant/internal/ai"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/config"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/middleware"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/recommendation"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/store"
)

type stubAI struct{}

func (stubAI) AnalyzeCustomerImage(ctx context.Context, imageBase64 string) ai.VisionOutcome {
	return ai.VisionOutcome{Succeeded: true}
}

func (stubAI) RecommendDishes(ctx context.Context, vision ai.VisionOutcome, season, mealTime string) ai.RecommendationOutcome {
	return ai.RecommendationOutcome{Succeeded: true}
}

type stubRepo struct{}

func (stubRepo) GetTableByNumber(ctx context.Context, tableNumber string) (*store.Table, error) {
	return &store.Table{ID: 1, TableNumber: tableNumber}, nil
}

func (stubRepo) GenerateSessionID() string { return "AI20240101120000000000000000001" }

func (stubRepo) CreateSession(ctx context.Context, rec *store.SessionRecord) bool { return true }

func (stubRepo) UpdateFeedback(ctx context.Context, sessionID string, score int, comment string) bool {
	return true
}

func (stubRepo) ListSessions(ctx context.Context, tableNumber, userID string, limit int) ([]*store.SessionRecord, error) {
	return nil, nil
}

func (stubRepo) GetRecommendedDishes(ctx context.Context) ([]*store.Dish, error) {
	return nil, nil
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	service := recommendation.NewService(stubAI{}, stubRepo{})
	return New(cfg, recommendation.NewHandler(service))
}

func TestHealthCheck(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("every response should carry a request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "caller-supplied" {
		t.Errorf("caller-supplied request id must be honored, got %q", got)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
