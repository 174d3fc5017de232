package portalsdk

import (
	"context"
	"math"
	"strings"
	"sync/atomic"
	"time"
)

// Delivery record statuses.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

// DefaultSendDelay is the pause after each send. It keeps the dispatch rate
// under the WhatsApp provider's per-number throughput ceiling.
const DefaultSendDelay = 1500 * time.Millisecond

// DeliveryRecord tracks one recipient through a dispatch run.
type DeliveryRecord struct {
	Recipient Recipient
	Status    string
	Error     string
	SentAt    time.Time
}

// Summary is the outcome of a dispatch run.
type Summary struct {
	Sent    int
	Total   int
	Records []DeliveryRecord
}

// Dispatcher sends a personalized template to a list of recipients, one at a
// time. A Dispatcher runs at most one dispatch at once; a second Run while
// one is active returns ErrDispatchInProgress.
type Dispatcher struct {
	// Sender performs the actual sends, usually a *Client.
	Sender MessageSender

	// Delay is the pause after every send, including the last. Zero means
	// DefaultSendDelay.
	Delay time.Duration

	// OnRecord is invoked after each recipient reaches a terminal status.
	// It runs on the dispatch goroutine.
	OnRecord func(DeliveryRecord)

	// OnProgress is invoked with the percentage complete after each
	// recipient. It runs on the dispatch goroutine.
	OnProgress func(percent int)

	running atomic.Bool
}

// Run dispatches the template to every recipient in order. Per-recipient
// failures are recorded and never halt the loop. Cancelling ctx stops the run
// between sends or during a delay; the summary then covers the recipients
// processed so far and ctx's error is returned alongside it.
func (d *Dispatcher) Run(ctx context.Context, template string, recipients []Recipient) (*Summary, error) {
	if strings.TrimSpace(template) == "" {
		return nil, ErrEmptyTemplate
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}
	if !d.running.CompareAndSwap(false, true) {
		return nil, ErrDispatchInProgress
	}
	defer d.running.Store(false)

	delay := d.Delay
	if delay <= 0 {
		delay = DefaultSendDelay
	}

	records := make([]DeliveryRecord, len(recipients))
	for i, r := range recipients {
		records[i] = DeliveryRecord{Recipient: r, Status: DeliveryPending}
	}

	summary := &Summary{Total: len(records), Records: records}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		message := RenderTemplate(template, records[i].Recipient)
		err := d.Sender.SendMessage(ctx, records[i].Recipient.Phone, message)

		records[i].SentAt = time.Now()
		if err != nil {
			records[i].Status = DeliveryFailed
			records[i].Error = err.Error()
		} else {
			records[i].Status = DeliverySent
			summary.Sent++
		}

		if d.OnRecord != nil {
			d.OnRecord(records[i])
		}
		if d.OnProgress != nil {
			percent := int(math.Round(100 * float64(i+1) / float64(len(records))))
			d.OnProgress(percent)
		}

		// The delay applies after every send, the last one included, so the
		// next run cannot start inside the provider's rate window.
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case <-time.After(delay):
		}
	}

	return summary, nil
}
