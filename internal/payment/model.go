package payment

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
)

const DefaultProcessingDelay = 2 * time.Second

// Payment timestamps are epoch milliseconds. CompletedAt stays zero until success.
type Payment struct {
	ID          string
	SessionID   string
	BusinessID  string
	Amount      float64
	Status      Status
	CreatedAt   int64
	CompletedAt int64
}
