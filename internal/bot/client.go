package bot

import (
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

// channelClient adapts the Bot API and the post archive to the transport
// interface of the forwarding engine. The Bot API cannot fetch old channel
// messages, so history reads go against the archive fed by archivePost
type channelClient struct {
	api *tgbotapi.BotAPI
	db  *storedb.DB
}

func newChannelClient(api *tgbotapi.BotAPI, db *storedb.DB) *channelClient {
	return &channelClient{api: api, db: db}
}

func (c *channelClient) LatestMessageID(channel int64) (int64, error) {
	return c.db.LatestPostID(channel)
}

func (c *channelClient) History(channel, beforeID int64, limit int) ([]forward.Message, error) {
	return c.db.Posts(channel, beforeID, limit)
}

// Copy copies one message, translating a Telegram 429 into the engine's
// rate-limit error with the wait Telegram suggested
func (c *channelClient) Copy(dest, source, messageID int64) error {
	_, err := c.api.Request(tgbotapi.NewCopyMessage(dest, source, int(messageID)))
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return &forward.RateLimitError{RetryAfter: time.Duration(apiErr.RetryAfter) * time.Second}
	}
	return err
}

// messageFromPost converts a Bot API channel post to the engine's view
func messageFromPost(post *tgbotapi.Message) forward.Message {
	text := post.Text
	if text == "" {
		text = post.Caption
	}

	media := len(post.Photo) > 0 || post.Video != nil || post.Document != nil ||
		post.Audio != nil || post.Voice != nil || post.Animation != nil
	service := post.PinnedMessage != nil || len(post.NewChatMembers) > 0 ||
		post.LeftChatMember != nil || post.NewChatTitle != "" || len(post.NewChatPhoto) > 0

	return forward.Message{
		ID:      int64(post.MessageID),
		Text:    text,
		Media:   media,
		Service: service,
	}
}
