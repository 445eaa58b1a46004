package bot

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

// help sends the command reference
func (bot *Bot) help(msg *tgbotapi.Message) {
	message := tgbotapi.NewMessage(msg.Chat.ID, helpText)
	message.ParseMode = "HTML"
	bot.messages <- message
}

// sortAll answers /sort: one sweep over every channel set with a per-set
// report of forwarded count and before/after cursor
func (bot *Bot) sortAll(msg *tgbotapi.Message) {
	start := time.Now()

	sets, err := bot.db.ChannelSets()
	if err != nil {
		data := logging.ErrorData{
			Error:    err,
			Username: msg.Chat.UserName,
			UserID:   msg.Chat.ID,
			Command:  "/sort",
			AddInfo:  "reading channel sets"}
		bot.logErrorAndNotify(data)
		return
	}
	if len(sets) == 0 {
		bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, "No channel sets configured")
		return
	}

	var report strings.Builder
	total := 0
	for _, set := range sets {
		before, _, err := bot.db.Cursor(set.Name)
		if err != nil {
			logging.LogMinorError("sortAll", "reading cursor of "+set.Name, err)
		}

		count, err := bot.dispatcher.ScanAndForward(set)
		if err != nil {
			logging.LogMinorError("sortAll", "sweep of "+set.Name, err)
			fmt.Fprintf(&report, "%s: sweep failed\n", set.Name)
			continue
		}

		after, _, _ := bot.db.Cursor(set.Name)
		total += count
		fmt.Fprintf(&report, "%s: %d forwarded, cursor %d -> %d\n", set.Name, count, before, after)
	}
	fmt.Fprintf(&report, "\nTotal: %d messages in %s", total, time.Since(start).Round(time.Millisecond))

	bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, report.String())
}

// listChannels answers /channels: every channel set with resolved titles
func (bot *Bot) listChannels(msg *tgbotapi.Message) {
	sets, err := bot.db.ChannelSets()
	if err != nil {
		data := logging.ErrorData{
			Error:    err,
			Username: msg.Chat.UserName,
			UserID:   msg.Chat.ID,
			Command:  "/channels",
			AddInfo:  "reading channel sets"}
		bot.logErrorAndNotify(data)
		return
	}
	if len(sets) == 0 {
		bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, "No channel sets configured")
		return
	}

	var b strings.Builder
	for _, set := range sets {
		fmt.Fprintf(&b, "<b>%s</b>\nsource: %s\n", set.Name, bot.chatTitle(set.Source))

		subjects := make([]string, 0, len(set.Destinations))
		for subject := range set.Destinations {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)
		for _, subject := range subjects {
			fmt.Fprintf(&b, "%s: %s\n", subject, bot.chatTitle(set.Destinations[subject]))
		}
		b.WriteString("\n")
	}

	message := tgbotapi.NewMessage(msg.Chat.ID, b.String())
	message.ParseMode = "HTML"
	bot.messages <- message
}

// broadcast copies the replied-to message (or sends the command argument
// as text) to every distinct destination channel
func (bot *Bot) broadcast(msg *tgbotapi.Message) {
	sets, err := bot.db.ChannelSets()
	if err != nil {
		data := logging.ErrorData{
			Error:    err,
			Username: msg.Chat.UserName,
			UserID:   msg.Chat.ID,
			Command:  "/broadcast",
			AddInfo:  "reading channel sets"}
		bot.logErrorAndNotify(data)
		return
	}

	seen := make(map[int64]bool)
	channels := make([]int64, 0)
	for _, set := range sets {
		for _, dest := range set.Destinations {
			if !seen[dest] {
				seen[dest] = true
				channels = append(channels, dest)
			}
		}
	}
	if len(channels) == 0 {
		bot.sendErrorToUser("no destination channels configured", msg.Chat.ID)
		return
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if msg.ReplyToMessage == nil && text == "" {
		bot.sendErrorToUser("reply to a message or pass a text (example: /broadcast Exam on Monday)", msg.Chat.ID)
		return
	}

	sent := 0
	for _, channel := range channels {
		if msg.ReplyToMessage != nil {
			bot.limiter.Wait(context.Background())
			_, err = bot.botAPI.Request(tgbotapi.NewCopyMessage(channel, msg.Chat.ID, msg.ReplyToMessage.MessageID))
			if err != nil {
				logging.LogMinorError("broadcast", "copying to channel "+strconv.FormatInt(channel, 10), err)
				continue
			}
		} else {
			bot.messages <- tgbotapi.NewMessage(channel, text)
		}
		sent++
	}

	bot.messages <- tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Broadcast queued for %d channels", sent))
}

// chatTitle resolves a chat id to its title, falling back to the id
func (bot *Bot) chatTitle(id int64) string {
	chat, err := bot.botAPI.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: id},
	})
	if err != nil || chat.Title == "" {
		return strconv.FormatInt(id, 10)
	}
	return chat.Title
}
