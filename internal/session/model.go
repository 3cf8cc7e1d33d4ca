package session

import "time"

const DefaultTTL = 5 * time.Minute

// Session timestamps are epoch milliseconds. A session is never mutated after insert.
type Session struct {
	ID         string
	BusinessID string
	ExpiresAt  int64
	CreatedAt  int64
}

func (s *Session) Expired(nowMillis int64) bool {
	return nowMillis > s.ExpiresAt
}
