package payment

import (
	"context"
	"log"
	"sync"
	"time"
)

// Completer runs each scheduled completion once after a fixed delay. Scheduled work
// cannot be cancelled; Wait lets shutdown drain what is still pending.
type Completer struct {
	delay time.Duration
	wg    sync.WaitGroup
}

func NewCompleter(delay time.Duration) *Completer {
	if delay < 0 {
		delay = 0
	}
	return &Completer{delay: delay}
}

func (c *Completer) Schedule(paymentID string, fn func()) {
	c.wg.Add(1)
	time.AfterFunc(c.delay, func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("layer=worker component=payment method=Complete payment_id=%s panic=%v", paymentID, r)
			}
		}()
		fn()
	})
}

func (c *Completer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
