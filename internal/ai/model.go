package ai

// CustomerProfile is one inferred patron from the vision stage.
// Immutable once parsed. JSON tags match the wire shape the vision
// model is instructed to answer in.
type CustomerProfile struct {
	AgeBracket string `json:"age_grades"` // child | young_adult | middle_aged | senior
	Gender     string `json:"gender"`     // man | woman
	BodyType   string `json:"body_type"`  // thin | average | heavy
}

// VisionOutcome is the result of one vision stage invocation.
type VisionOutcome struct {
	PeopleCount int               `json:"people_num"`
	Profiles    []CustomerProfile `json:"customer_portrait"`
	Succeeded   bool              `json:"success"`
	ErrorDetail string            `json:"error_message,omitempty"`
}

// DishSuggestion is one dish proposed by the recommendation stage,
// in the model's own ranking order.
type DishSuggestion struct {
	DishName      string `json:"dish_name"`
	Reason        string `json:"reason"`
	TasteLevel    string `json:"taste_level"`
	NutritionNote string `json:"nutrition_advice"`
}

// RecommendationOutcome is the result of one recommendation stage
// invocation.
type RecommendationOutcome struct {
	Suggestions []DishSuggestion `json:"recommendations"`
	Succeeded   bool             `json:"success"`
	ErrorDetail string           `json:"error_message,omitempty"`
}
