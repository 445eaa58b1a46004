package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

// Day offsets after studying on which a topic comes up for revision
var revisionOffsets = []int{1, 3, 7, 21}

// studied answers /studied: records a topic for spaced revision
func (bot *Bot) studied(msg *tgbotapi.Message) {
	topic := strings.TrimSpace(msg.CommandArguments())
	if topic == "" {
		bot.sendErrorToUser("usage: /studied <topic> (example: /studied Thermodynamics)", msg.Chat.ID)
		return
	}

	if err := bot.db.AddRevision(msg.Chat.ID, topic, time.Now()); err != nil {
		data := logging.ErrorData{
			Error:    err,
			Username: msg.Chat.UserName,
			UserID:   msg.Chat.ID,
			Command:  "/studied",
			AddInfo:  "saving the revision entry"}
		bot.logErrorAndNotify(data)
		return
	}

	text := fmt.Sprintf("Noted ✅ You will be reminded to revise %q on days 1, 3, 7 and 21", topic)
	bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, text)
}

// due answers /due: the topics to revise today
func (bot *Bot) due(msg *tgbotapi.Message) {
	revisions, err := bot.db.Revisions(msg.Chat.ID)
	if err != nil {
		data := logging.ErrorData{
			Error:    err,
			Username: msg.Chat.UserName,
			UserID:   msg.Chat.ID,
			Command:  "/due",
			AddInfo:  "reading revision entries"}
		bot.logErrorAndNotify(data)
		return
	}

	topics := dueToday(revisions, time.Now())
	if len(topics) == 0 {
		bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, "Nothing to revise today 🎉")
		return
	}

	bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, formatDueList(topics))
}

// mailoutRevisions sends every user their topics due today
func (bot *Bot) mailoutRevisions() {
	logging.LogEvent("revision mailout")

	all, err := bot.db.AllRevisions()
	if err != nil {
		logging.LogMinorError("mailoutRevisions", "reading revision entries", err)
		return
	}

	now := time.Now()
	for userID, revisions := range all {
		topics := dueToday(revisions, now)
		if len(topics) == 0 {
			continue
		}
		bot.messages <- tgbotapi.NewMessage(userID, formatDueList(topics))
	}

	logging.LogEvent("revision mailout done")
}

// dueToday returns the topics whose studied date is exactly one of the
// revision offsets ago
func dueToday(revisions []storedb.Revision, now time.Time) []string {
	var topics []string
	for _, r := range revisions {
		days := daysBetween(r.Date, now)
		for _, offset := range revisionOffsets {
			if days == offset {
				topics = append(topics, r.Topic)
				break
			}
		}
	}
	return topics
}

// daysBetween counts calendar days from a to b
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(b.Sub(a) / (24 * time.Hour))
}

func formatDueList(topics []string) string {
	var b strings.Builder
	b.WriteString("📚 Time to revise:\n")
	for _, topic := range topics {
		b.WriteString("• " + topic + "\n")
	}
	return b.String()
}
