package recommendation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// respond writes the uniform {code, message, data} envelope; the code
// field mirrors the HTTP status.
func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, gin.H{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// --------------------------------------------------
// POST /recommendation
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body", gin.H{})
		return
	}

	result, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		var stageErr *StageError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			respond(c, http.StatusBadRequest, err.Error(), gin.H{})
		case errors.Is(err, ErrTableNotFound):
			respond(c, http.StatusNotFound, "table not found", gin.H{})
		case errors.As(err, &stageErr):
			respond(c, http.StatusInternalServerError, stageErr.Error(), gin.H{})
		default:
			respond(c, http.StatusInternalServerError, "internal server error", gin.H{})
		}
		return
	}

	dishes := make([]gin.H, 0, len(result.Suggestions))
	for _, dish := range result.Suggestions {
		dishes = append(dishes, gin.H{
			"dish_name":  dish.DishName,
			"reason":     dish.Reason,
			"confidence": dish.Confidence,
		})
	}

	respond(c, http.StatusOK, "recommendation succeeded", gin.H{
		"session_id":      result.SessionID,
		"table_number":    result.TableNumber,
		"people_count":    result.PeopleCount,
		"season":          result.Season,
		"meal_time":       result.MealTime,
		"processing_time": result.ProcessingTimeMs,
		"recommendations": dishes,
	})
}

// --------------------------------------------------
// POST /recommendation/feedback
// --------------------------------------------------
func (h *Handler) Feedback(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Score     *int   `json:"score"`
		Comment   string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Score == nil {
		respond(c, http.StatusBadRequest, "session_id and score are required", gin.H{})
		return
	}

	if !h.service.SubmitFeedback(c.Request.Context(), req.SessionID, *req.Score, req.Comment) {
		respond(c, http.StatusInternalServerError, "feedback submission failed", gin.H{})
		return
	}

	respond(c, http.StatusOK, "feedback recorded", gin.H{})
}

// --------------------------------------------------
// GET /recommendation/history
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	tableNumber := c.Query("table_number")
	userID := c.Query("user_id")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond(c, http.StatusBadRequest, "limit must be a positive integer", gin.H{})
			return
		}
		limit = parsed
	}

	summaries, err := h.service.History(c.Request.Context(), tableNumber, userID, limit)
	if err != nil {
		respond(c, http.StatusInternalServerError, "failed to load recommendation history", gin.H{})
		return
	}

	respond(c, http.StatusOK, "recommendation history loaded", gin.H{
		"recommendations": summaries,
		"total":           len(summaries),
		"limit":           limit,
	})
}

// --------------------------------------------------
// GET /recommendation/dishes
// --------------------------------------------------
func (h *Handler) RecommendedDishes(c *gin.Context) {
	dishes, err := h.service.RecommendedDishes(c.Request.Context())
	if err != nil {
		respond(c, http.StatusInternalServerError, "failed to load recommended dishes", gin.H{})
		return
	}

	respond(c, http.StatusOK, "recommended dishes loaded", gin.H{
		"dishes": dishes,
		"total":  len(dishes),
	})
}
