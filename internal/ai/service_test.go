package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// --------------------------------------------------
// Mock Caller
// --------------------------------------------------

type mockCaller struct {
	visionAnswer string
	visionErr    error
	textAnswer   string
	textErr      error

	visionCalls int
	textCalls   int
	lastPrompt  string
}

func (m *mockCaller) ChatVision(ctx context.Context, prompt, imageBase64 string) (string, error) {
	m.visionCalls++
	m.lastPrompt = prompt
	return m.visionAnswer, m.visionErr
}

func (m *mockCaller) ChatText(ctx context.Context, prompt string) (string, error) {
	m.textCalls++
	m.lastPrompt = prompt
	return m.textAnswer, m.textErr
}

// --------------------------------------------------
// Vision stage
// --------------------------------------------------

func TestAnalyzeCustomerImage_Success(t *testing.T) {
	caller := &mockCaller{
		visionAnswer: `{"people_num":"3","customer_portrait":[{"age_grades":"middle_aged","gender":"man","body_type":"heavy"}]}`,
	}
	service := NewService(caller)

	out := service.AnalyzeCustomerImage(context.Background(), "aW1hZ2U=")

	if !out.Succeeded {
		t.Fatalf("expected success, got %q", out.ErrorDetail)
	}
	if out.PeopleCount != 3 {
		t.Errorf("expected 3 people, got %d", out.PeopleCount)
	}
	if caller.visionCalls != 1 {
		t.Errorf("expected exactly one outbound call, got %d", caller.visionCalls)
	}
}

func TestAnalyzeCustomerImage_CallFailure(t *testing.T) {
	caller := &mockCaller{visionErr: errors.New("no response from model")}
	service := NewService(caller)

	out := service.AnalyzeCustomerImage(context.Background(), "aW1hZ2U=")

	if out.Succeeded {
		t.Fatal("transport failure must not succeed")
	}
	if !strings.Contains(out.ErrorDetail, "call failed") {
		t.Errorf("expected a call failure detail, got %q", out.ErrorDetail)
	}
}

func TestAnalyzeCustomerImage_DecodeFailure(t *testing.T) {
	caller := &mockCaller{visionAnswer: "I see two happy guests!"}
	service := NewService(caller)

	out := service.AnalyzeCustomerImage(context.Background(), "aW1hZ2U=")

	if out.Succeeded {
		t.Fatal("unstructured answer must not succeed")
	}
	if !strings.Contains(out.ErrorDetail, "decode failed") {
		t.Errorf("expected a decode failure detail, got %q", out.ErrorDetail)
	}
}

// --------------------------------------------------
// Recommendation stage
// --------------------------------------------------

func TestRecommendDishes_Success(t *testing.T) {
	caller := &mockCaller{
		textAnswer: `[{"dish_name":"Braised Pork Belly","reason":"hearty for winter","taste_level":"savory","nutrition_advice":"high energy"}]`,
	}
	service := NewService(caller)

	vision := VisionOutcome{
		Succeeded:   true,
		PeopleCount: 2,
		Profiles:    []CustomerProfile{{AgeBracket: "senior", Gender: "woman", BodyType: "thin"}},
	}

	out := service.RecommendDishes(context.Background(), vision, "winter", "dinner")

	if !out.Succeeded {
		t.Fatalf("expected success, got %q", out.ErrorDetail)
	}
	if len(out.Suggestions) != 1 || out.Suggestions[0].DishName != "Braised Pork Belly" {
		t.Errorf("unexpected suggestions: %+v", out.Suggestions)
	}
	for _, want := range []string{"senior", "woman", "thin", "winter", "dinner", "party size: 2"} {
		if !strings.Contains(caller.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRecommendDishes_FailedVisionShortCircuits(t *testing.T) {
	caller := &mockCaller{}
	service := NewService(caller)

	out := service.RecommendDishes(context.Background(), VisionOutcome{Succeeded: false}, "spring", "lunch")

	if out.Succeeded {
		t.Fatal("failed vision outcome must not produce recommendations")
	}
	if caller.textCalls != 0 {
		t.Errorf("model must not be called, got %d calls", caller.textCalls)
	}
}

func TestRecommendDishes_CallFailure(t *testing.T) {
	caller := &mockCaller{textErr: errors.New("context deadline exceeded")}
	service := NewService(caller)

	out := service.RecommendDishes(context.Background(), VisionOutcome{Succeeded: true}, "summer", "lunch")

	if out.Succeeded {
		t.Fatal("transport failure must not succeed")
	}
	if !strings.Contains(out.ErrorDetail, "call failed") {
		t.Errorf("expected a call failure detail, got %q", out.ErrorDetail)
	}
}
