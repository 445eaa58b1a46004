package forward

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

// SubjectFinder classifies free text into a subject
type SubjectFinder interface {
	FindSubject(text string) (string, bool)
}

const (
	copyRetries     = 3
	fallbackBackoff = 5 * time.Second
)

var errNoDestination = errors.New("no destination configured for subject")

// Dispatcher runs one scan-classify-forward cycle per call.
// The cursor of a set is advanced only after a successful forward, directly
// before the next message is processed, which bounds the duplicate exposure
// on a crash to the single in-flight message. Messages that match no subject
// never advance the cursor and are re-classified on later sweeps
type Dispatcher struct {
	client  ChannelClient
	cursors *CursorStore
	scanner *Scanner
	matcher SubjectFinder
	delay   time.Duration

	// one sweep per Dispatcher at a time, shared across channel sets
	active atomic.Bool
}

// NewDispatcher wires the forwarding engine together. delay is the pause
// between two forwards inside one sweep
func NewDispatcher(client ChannelClient, storage CursorStorage, matcher SubjectFinder, delay time.Duration) *Dispatcher {
	return &Dispatcher{
		client:  client,
		cursors: NewCursorStore(storage, client),
		scanner: NewScanner(client),
		matcher: matcher,
		delay:   delay,
	}
}

// ScanAndForward performs one sweep of the channel set and returns the
// number of messages forwarded. A call made while another sweep is running
// on this Dispatcher returns zero immediately
func (d *Dispatcher) ScanAndForward(set ChannelSet) (int, error) {
	if !d.active.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer d.active.Store(false)

	since, err := d.cursors.Load(set)
	if err != nil {
		return 0, err
	}

	messages, err := d.scanner.NewMessages(set.Source, since)
	if err != nil {
		return 0, err
	}

	forwarded := 0
	for _, msg := range messages {
		subject, ok := d.matcher.FindSubject(msg.Text)
		if !ok {
			continue
		}

		dest, ok := set.Destinations[subject]
		if !ok {
			text := fmt.Sprintf("set %q, subject %q, message %d", set.Name, subject, msg.ID)
			logging.LogMinorError("ScanAndForward", text, errNoDestination)
			continue
		}

		if err := d.copyWithBackoff(dest, set.Source, msg.ID); err != nil {
			// cursor stays put, the message is retried on the next sweep
			text := fmt.Sprintf("set %q, message %d", set.Name, msg.ID)
			logging.LogMinorError("ScanAndForward", text, err)
			continue
		}

		if err := d.cursors.Save(set.Name, msg.ID); err != nil {
			// the forward already happened, a lost cursor means a
			// duplicate forward on the next sweep
			text := fmt.Sprintf("CURSOR SAVE FAILED: set %q, message %d already forwarded", set.Name, msg.ID)
			logging.LogMinorError("ScanAndForward", text, err)
		}
		forwarded++

		time.Sleep(d.delay)
	}

	return forwarded, nil
}

// copyWithBackoff copies one message, waiting out rate limits. Any other
// error is returned to the caller right away
func (d *Dispatcher) copyWithBackoff(dest, source, messageID int64) error {
	var err error
	for attempt := 0; attempt < copyRetries; attempt++ {
		err = d.client.Copy(dest, source, messageID)

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			return err
		}

		wait := rateErr.RetryAfter
		if wait <= 0 {
			wait = fallbackBackoff
		}
		time.Sleep(wait)
	}
	return err
}
