package store

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	sessionIDPrefix = "AI"

	// 15-digit random suffix. The timestamp only has second resolution,
	// so the suffix alone must keep concurrent ids apart; at this width
	// even 1e5 ids generated within one second collide with negligible
	// probability.
	sessionIDSuffixBound = 1_000_000_000_000_000
)

// GenerateSessionID produces a new session identifier of the form
// AI<yyyyMMddHHmmss><15 random digits>. Uniqueness is probabilistic;
// the insert's UNIQUE constraint catches the residual collision case.
func (s *Store) GenerateSessionID() string {
	return generateSessionID(time.Now())
}

func generateSessionID(now time.Time) string {
	return fmt.Sprintf("%s%s%015d",
		sessionIDPrefix,
		now.Format("20060102150405"),
		rand.Int64N(sessionIDSuffixBound),
	)
}
