package ai

import (
	"fmt"
	"strings"
)

func buildVisionPrompt() string {
	return `You are analyzing a photo of restaurant guests.

Count the people in the image and describe each person, then answer with
STRICT JSON only:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- NO explanations, NO markdown, NO extra text.

For every person report:
1. age bracket: child | young_adult | middle_aged | senior
2. gender: man | woman
3. body type: thin | average | heavy

Required JSON shape, example:
{"people_num":"1","customer_portrait":[{"age_grades":"young_adult","gender":"man","body_type":"average"}]}

Note that "people_num" is a string and "customer_portrait" has one entry
per detected person, in face-list order.`
}

func buildRecommendationPrompt(vision VisionOutcome, season, mealTime string) string {
	var b strings.Builder

	b.WriteString("You are a professional restaurant nutritionist and dining advisor.\n")
	b.WriteString("Guest information:\n")

	if len(vision.Profiles) > 0 {
		primary := vision.Profiles[0]
		fmt.Fprintf(&b, "- age bracket: %s\n", primary.AgeBracket)
		fmt.Fprintf(&b, "- body type: %s\n", primary.BodyType)
		fmt.Fprintf(&b, "- gender: %s\n", primary.Gender)
	}

	fmt.Fprintf(&b, "- party size: %d\n", vision.PeopleCount)
	fmt.Fprintf(&b, "- current season: %s\n", season)
	fmt.Fprintf(&b, "- meal time: %s\n\n", mealTime)

	b.WriteString("Based on the information above:\n")
	b.WriteString("1. Recommend the 3 most suitable signature dishes, each with a reason\n")
	b.WriteString("2. Suggest a fitting taste profile (spice, salt, sweetness)\n")
	b.WriteString("3. Give a nutrition pairing note\n\n")

	b.WriteString("Answer with STRICT JSON only, exactly this array shape:\n")
	b.WriteString(`[{"dish_name":"Sweet and Sour Pork","reason":"children love sweet dishes","taste_level":"mildly sweet","nutrition_advice":"rich in protein"}]`)

	return b.String()
}
