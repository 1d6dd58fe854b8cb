package store

import (
	"regexp"
	"testing"
	"time"
)

var sessionIDShape = regexp.MustCompile(`^AI\d{14}\d{15}$`)

func TestGenerateSessionID_Shape(t *testing.T) {
	now := time.Date(2024, time.July, 1, 13, 45, 9, 0, time.Local)

	id := generateSessionID(now)

	if !sessionIDShape.MatchString(id) {
		t.Fatalf("id %q does not match prefix+timestamp+suffix shape", id)
	}
	if got := id[2:16]; got != "20240701134509" {
		t.Errorf("timestamp segment mismatch: %s", got)
	}
}

func TestGenerateSessionID_UniqueWithinOneSecond(t *testing.T) {
	const n = 100_000

	now := time.Now()
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := generateSessionID(now)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate session id after %d draws: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
