package bot

import (
	"fmt"
	"time"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

// How long archived posts are kept. Old entries are far behind every
// cursor and only cost space
const archiveRetentionDays = 30

// sweepAll is the periodic trigger: one sweep over every channel set.
// The manual /sort and this job share the dispatcher's single-flight
// flag, so they never run a sweep concurrently
func (bot *Bot) sweepAll() {
	logging.LogEvent("starting periodic sweep")

	sets, err := bot.db.ChannelSets()
	if err != nil {
		logging.LogMinorError("sweepAll", "reading channel sets", err)
		return
	}

	total := 0
	for _, set := range sets {
		count, err := bot.dispatcher.ScanAndForward(set)
		if err != nil {
			logging.LogMinorError("sweepAll", "sweep of "+set.Name, err)
			continue
		}
		total += count
	}

	logging.LogEvent(fmt.Sprintf("periodic sweep done, %d messages forwarded", total))
}

// cleanup prunes the post archive and expired revision entries
func (bot *Bot) cleanup() {
	if err := bot.db.ClearPostsBefore(time.Now().AddDate(0, 0, -archiveRetentionDays)); err != nil {
		logging.LogMinorError("cleanup", "pruning the post archive", err)
	}

	// one day past the last revision offset
	cutoff := time.Now().AddDate(0, 0, -(revisionOffsets[len(revisionOffsets)-1] + 1))
	if err := bot.db.ClearRevisionsBefore(cutoff); err != nil {
		logging.LogMinorError("cleanup", "pruning revision entries", err)
	}
}
