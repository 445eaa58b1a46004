package forward

import (
	"fmt"
	"time"
)

// Message is a read-only view of one channel post
type Message struct {
	ID      int64
	Text    string // text or caption
	Media   bool
	Service bool // join/leave/pin notifications
}

// ChannelSet describes one forwarding pipeline: a source channel and a
// destination channel per subject
type ChannelSet struct {
	Name         string           `json:"name"`
	Source       int64            `json:"source"`
	Destinations map[string]int64 `json:"destinations"`
}

// ChannelClient is the transport the forwarding engine runs on
type ChannelClient interface {
	// LatestMessageID returns the id of the newest known message of the channel
	LatestMessageID(channel int64) (int64, error)
	// History returns up to limit messages with ids lower than beforeID,
	// newest first. beforeID 0 means "start from the newest message"
	History(channel, beforeID int64, limit int) ([]Message, error)
	// Copy copies one message into dest, preserving media and caption
	Copy(dest, source, messageID int64) error
}

// RateLimitError is returned by a ChannelClient when the transport asks
// to slow down. RetryAfter is the wait the transport suggested
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}
