package ai

import (
	"context"
)

// Service runs the two inference stages against the model provider.
type Service struct {
	caller Caller
}

func NewService(caller Caller) *Service {
	return &Service{caller: caller}
}

// AnalyzeCustomerImage is the vision stage: one call to the
// image-capable model, then a permissive parse of its answer. A
// transport fault or empty answer reports a call failure, never a
// parse error.
func (s *Service) AnalyzeCustomerImage(ctx context.Context, imageBase64 string) VisionOutcome {
	answer, err := s.caller.ChatVision(ctx, buildVisionPrompt(), imageBase64)
	if err != nil {
		return VisionOutcome{ErrorDetail: "vision model call failed: " + err.Error()}
	}
	return parseVisionAnswer(answer)
}

// RecommendDishes is the recommendation stage. The caller must only
// invoke it with a successful vision outcome; a failed one short-circuits
// without touching the model.
func (s *Service) RecommendDishes(ctx context.Context, vision VisionOutcome, season, mealTime string) RecommendationOutcome {
	if !vision.Succeeded {
		return RecommendationOutcome{ErrorDetail: "customer analysis failed, cannot recommend"}
	}

	answer, err := s.caller.ChatText(ctx, buildRecommendationPrompt(vision, season, mealTime))
	if err != nil {
		return RecommendationOutcome{ErrorDetail: "recommendation model call failed: " + err.Error()}
	}
	return parseRecommendationAnswer(answer)
}
