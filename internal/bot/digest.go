package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mmcdole/gofeed"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/config"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

// mailoutDigest posts the top items of the configured feed to the digest
// channel. Runs daily at config.Data.DigestAt
func (bot *Bot) mailoutDigest() {
	logging.LogEvent("posting the daily digest")
	const limit = 7

	feed, err := getFeed(config.Data.DigestFeedURL)
	if err != nil {
		logging.LogMinorError("mailoutDigest", "fetching the digest feed", err)
		return
	}
	if len(feed.Items) == 0 {
		logging.LogMinorError("mailoutDigest", "digest feed is empty", errors.New(config.Data.DigestFeedURL))
		return
	}

	var b strings.Builder
	b.WriteString("<b>Today's picks:</b>\n")
	for i, item := range feed.Items {
		if i >= limit {
			break
		}
		fmt.Fprintf(&b, "%d) <a href='%s'>%s</a>\n", i+1, item.Link, item.Title)
	}

	message := tgbotapi.NewMessage(config.Data.DigestChannel, b.String())
	message.ParseMode = "HTML"
	message.DisableWebPagePreview = true
	bot.messages <- message
}

// getFeed downloads the feed, retrying a few times before giving up
func getFeed(source string) (*gofeed.Feed, error) {
	parser := gofeed.NewParser()

	const limit = 10
	var err error
	var feed *gofeed.Feed
	for i := 0; i < limit; i++ {
		feed, err = parser.ParseURL(source)
		if err == nil {
			return feed, nil
		}
		time.Sleep(500 * time.Millisecond)
	}

	return nil, err
}
