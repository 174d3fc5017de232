package portalsdk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeDispatchSender records sends and fails for phones listed in failFor.
type fakeDispatchSender struct {
	mu       sync.Mutex
	sent     []string // "phone:message"
	failFor  map[string]error
	onSend   func(phone string)
	sendTime time.Duration
}

func (f *fakeDispatchSender) SendMessage(ctx context.Context, to, message string) error {
	if f.onSend != nil {
		f.onSend(to)
	}
	if f.sendTime > 0 {
		time.Sleep(f.sendTime)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to+":"+message)
	return nil
}

func testRecipients() []Recipient {
	return []Recipient{
		{ID: "lead_1", Name: "Amy", Phone: "+911", Property: "Sunrise Villa", Budget: "50L"},
		{ID: "lead_2", Name: "Raj", Phone: "+912"},
		{ID: "lead_3", Name: "Priya", Phone: "+913"},
	}
}

func TestDispatcherRun(t *testing.T) {
	sender := &fakeDispatchSender{}
	var records []DeliveryRecord
	var progress []int

	d := &Dispatcher{
		Sender:     sender,
		Delay:      time.Millisecond,
		OnRecord:   func(r DeliveryRecord) { records = append(records, r) },
		OnProgress: func(p int) { progress = append(progress, p) },
	}

	summary, err := d.Run(context.Background(), "Hi {{name}}, see {{property}}", testRecipients())
	require.NoError(t, err)

	require.Equal(t, 3, summary.Sent)
	require.Equal(t, 3, summary.Total)
	require.Len(t, summary.Records, 3)

	// Every record reaches a terminal status, in input order.
	for i, rec := range summary.Records {
		require.Equal(t, DeliverySent, rec.Status)
		require.Equal(t, testRecipients()[i].ID, rec.Recipient.ID)
		require.False(t, rec.SentAt.IsZero())
	}

	require.Equal(t, []string{
		"+911:Hi Amy, see Sunrise Villa",
		"+912:Hi Raj, see our property",
		"+913:Hi Priya, see our property",
	}, sender.sent)

	require.Len(t, records, 3)
	require.Equal(t, []int{33, 67, 100}, progress)
}

func TestDispatcherFailureDoesNotHalt(t *testing.T) {
	sender := &fakeDispatchSender{
		failFor: map[string]error{"+912": errors.New("provider rejected number")},
	}
	d := &Dispatcher{Sender: sender, Delay: time.Millisecond}

	summary, err := d.Run(context.Background(), "Hi {{name}}", testRecipients())
	require.NoError(t, err)

	require.Equal(t, 2, summary.Sent)
	require.Equal(t, 3, summary.Total)

	require.Equal(t, DeliverySent, summary.Records[0].Status)
	require.Equal(t, DeliveryFailed, summary.Records[1].Status)
	require.Equal(t, "provider rejected number", summary.Records[1].Error)
	require.False(t, summary.Records[1].SentAt.IsZero(), "failed records still get a timestamp")
	require.Equal(t, DeliverySent, summary.Records[2].Status)
}

func TestDispatcherPreconditions(t *testing.T) {
	d := &Dispatcher{Sender: &fakeDispatchSender{}, Delay: time.Millisecond}
	ctx := context.Background()

	t.Run("empty template", func(t *testing.T) {
		_, err := d.Run(ctx, "   ", testRecipients())
		require.ErrorIs(t, err, ErrEmptyTemplate)
	})

	t.Run("no recipients", func(t *testing.T) {
		_, err := d.Run(ctx, "Hi {{name}}", nil)
		require.ErrorIs(t, err, ErrNoRecipients)
	})
}

func TestDispatcherCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	sender := &fakeDispatchSender{}
	sender.onSend = func(phone string) {
		if phone == "+911" {
			cancel() // cancel after the first send starts
		}
	}
	d := &Dispatcher{Sender: sender, Delay: time.Millisecond}

	summary, err := d.Run(ctx, "Hi {{name}}", testRecipients())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, summary.Sent, "only the in-flight recipient completes")
	require.Equal(t, DeliverySent, summary.Records[0].Status)
	require.Equal(t, DeliveryPending, summary.Records[1].Status)
	require.Equal(t, DeliveryPending, summary.Records[2].Status)
}

func TestDispatcherSingleRunGuard(t *testing.T) {
	sender := &fakeDispatchSender{sendTime: 50 * time.Millisecond}
	d := &Dispatcher{Sender: sender, Delay: time.Millisecond}

	started := make(chan struct{})
	sender.onSend = func(string) {
		select {
		case <-started:
		default:
			close(started)
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := d.Run(context.Background(), "Hi {{name}}", testRecipients())
		done <- err
	}()

	<-started
	_, err := d.Run(context.Background(), "Hi {{name}}", testRecipients())
	require.ErrorIs(t, err, ErrDispatchInProgress)

	require.NoError(t, <-done)

	// Once the first run finishes the guard releases.
	_, err = d.Run(context.Background(), "Hi {{name}}", testRecipients()[:1])
	require.NoError(t, err)
}

func TestDispatcherTrailingDelay(t *testing.T) {
	sender := &fakeDispatchSender{}
	d := &Dispatcher{Sender: sender, Delay: 30 * time.Millisecond}

	start := time.Now()
	_, err := d.Run(context.Background(), "Hi {{name}}", testRecipients()[:1])
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond,
		"the delay applies after the last send too")
}
