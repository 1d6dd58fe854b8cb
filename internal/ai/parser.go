package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// parseVisionAnswer decodes the vision model's answer into a
// VisionOutcome. The decode is permissive field by field: a per-profile
// field of the wrong shape stays at its default instead of discarding
// the profile. Only a structurally broken answer, or an unparseable
// headcount, fails the whole parse.
func parseVisionAnswer(answer string) VisionOutcome {
	var doc map[string]any
	if err := json.Unmarshal([]byte(extractJSON(answer, '{', '}')), &doc); err != nil {
		return VisionOutcome{ErrorDetail: "decode failed: answer is not a JSON object"}
	}

	var out VisionOutcome

	if raw, ok := doc["people_num"].(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return VisionOutcome{ErrorDetail: fmt.Sprintf("decode failed: invalid people_num %q", raw)}
		}
		out.PeopleCount = n
	}

	if portraits, ok := doc["customer_portrait"].([]any); ok {
		for _, entry := range portraits {
			var profile CustomerProfile
			if fields, ok := entry.(map[string]any); ok {
				if v, ok := fields["age_grades"].(string); ok {
					profile.AgeBracket = v
				}
				if v, ok := fields["gender"].(string); ok {
					profile.Gender = v
				}
				if v, ok := fields["body_type"].(string); ok {
					profile.BodyType = v
				}
			}
			out.Profiles = append(out.Profiles, profile)
		}
	}

	out.Succeeded = true
	return out
}

// parseRecommendationAnswer decodes the text model's answer into a
// RecommendationOutcome, preserving the model's ranking order. A
// non-array answer is a structural decode failure; missing per-dish
// fields default to "".
func parseRecommendationAnswer(answer string) RecommendationOutcome {
	var doc []any
	if err := json.Unmarshal([]byte(extractJSON(answer, '[', ']')), &doc); err != nil {
		return RecommendationOutcome{ErrorDetail: "decode failed: answer is not a JSON array"}
	}

	var out RecommendationOutcome
	for _, entry := range doc {
		var dish DishSuggestion
		if fields, ok := entry.(map[string]any); ok {
			if v, ok := fields["dish_name"].(string); ok {
				dish.DishName = v
			}
			if v, ok := fields["reason"].(string); ok {
				dish.Reason = v
			}
			if v, ok := fields["taste_level"].(string); ok {
				dish.TasteLevel = v
			}
			if v, ok := fields["nutrition_advice"].(string); ok {
				dish.NutritionNote = v
			}
		}
		out.Suggestions = append(out.Suggestions, dish)
	}

	out.Succeeded = true
	return out
}

// extractJSON slices the JSON span out of a chatty model answer, e.g.
// one wrapped in a markdown fence. Returns the text unchanged when no
// span is found so the unmarshal error surfaces as a decode failure.
func extractJSON(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}
