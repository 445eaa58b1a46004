package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jasonlvhit/gocron"
	"golang.org/x/time/rate"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/catalog"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/config"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

// Bot wraps tgbotapi.BotAPI together with the forwarding engine
type Bot struct {
	botAPI     *tgbotapi.BotAPI
	db         *storedb.DB
	subjects   *catalog.Catalog
	dispatcher *forward.Dispatcher
	messages   chan tgbotapi.Chattable
	limiter    *rate.Limiter
}

// List of ids allowed to use the admin commands
var adminIDs = []int64{}

// ParseAdminIDs parses the json file with the list of admin ids
func ParseAdminIDs(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, &adminIDs)

	logging.LogEvent(fmt.Sprintf("admin ids: %v", adminIDs))

	return err
}

func isAdmin(id int64) bool {
	for i := range adminIDs {
		if adminIDs[i] == id {
			return true
		}
	}
	return false
}

// NewBot initializes the bot
func NewBot(db *storedb.DB, subjects *catalog.Catalog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.Data.BotToken)
	if err != nil {
		return nil, err
	}
	api.Debug = config.Data.Debug

	bot := &Bot{
		botAPI:   api,
		db:       db,
		subjects: subjects,
		messages: make(chan tgbotapi.Chattable, 300),
	}

	client := newChannelClient(api, db)
	delay := time.Duration(config.Data.ForwardDelay) * time.Millisecond
	bot.dispatcher = forward.NewDispatcher(client, db, subjects, delay)

	every := rate.Every(time.Duration(config.Data.Rate) * time.Millisecond)
	bot.limiter = rate.NewLimiter(every, 1)

	return bot, nil
}

// StartPolling starts the periodic jobs and the long polling loop
func (bot *Bot) StartPolling(stopChan chan struct{}) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChannel := bot.botAPI.GetUpdatesChan(updateConfig)

	gocron.Every(config.Data.SweepInterval).Minutes().Do(bot.sweepAll)
	gocron.Every(1).Day().At("08:00").Do(bot.mailoutRevisions)
	gocron.Every(1).Day().At("04:00").Do(bot.cleanup)
	if config.Data.DigestFeedURL != "" && config.Data.DigestChannel != 0 {
		gocron.Every(1).Day().At(config.Data.DigestAt).Do(bot.mailoutDigest)
	}
	gocron.Start()

	go bot.sendWrapper()

	for update := range updateChannel {
		select {
		case <-stopChan:
			// Entered only when somebody writes to the bot during
			// shutdown. Pending updates stay unprocessed
			logging.LogEvent("stopping long polling")
			return
		default:
			go bot.distributeUpdate(update)
		}
	}
}

// distributeUpdate archives channel posts and routes user commands
func (bot *Bot) distributeUpdate(update tgbotapi.Update) {
	if update.ChannelPost != nil {
		bot.archivePost(update.ChannelPost)
		return
	}

	if update.Message != nil {
		if !bot.distributeMessages(update.Message) {
			message := tgbotapi.NewMessage(update.Message.Chat.ID, "Unknown command. Send /help for the list")
			message.ReplyToMessageID = update.Message.MessageID
			bot.messages <- message
		}
	}
}

// distributeMessages routes a command to its handler.
// Returns false when the command is unknown
func (bot *Bot) distributeMessages(message *tgbotapi.Message) bool {
	command := message.Command()
	if command == "" {
		return true
	}

	logging.LogRequest(logging.RequestData{Command: "/" + command, Username: message.Chat.UserName, ID: message.Chat.ID})

	switch command {
	case "start", "help":
		go bot.help(message)
	case "studied":
		go bot.studied(message)
	case "due":
		go bot.due(message)
	case "wallpaper":
		go bot.wallpaper(message)
	case "sort", "channels", "broadcast":
		if !isAdmin(message.Chat.ID) {
			bot.sendErrorToUser("this command is for admins only", message.Chat.ID)
			return true
		}
		switch command {
		case "sort":
			go bot.sortAll(message)
		case "channels":
			go bot.listChannels(message)
		case "broadcast":
			go bot.broadcast(message)
		}
	default:
		return false
	}

	return true
}

// archivePost stores posts of configured source channels, they are the
// channel history the scanner later reads
func (bot *Bot) archivePost(post *tgbotapi.Message) {
	sets, err := bot.db.ChannelSets()
	if err != nil {
		logging.LogMinorError("archivePost", "reading channel sets", err)
		return
	}

	isSource := false
	for _, set := range sets {
		if set.Source == post.Chat.ID {
			isSource = true
			break
		}
	}
	if !isSource {
		return
	}

	if err := bot.db.SavePost(post.Chat.ID, messageFromPost(post), time.Now()); err != nil {
		logging.LogMinorError("archivePost", fmt.Sprintf("saving post %d of chat %d", post.MessageID, post.Chat.ID), err)
	}
}

// send sends one message
func (bot *Bot) send(msg tgbotapi.Chattable) {
	_, err := bot.botAPI.Send(msg)
	if err != nil {
		if err.Error() != "Forbidden: bot was blocked by the user" &&
			err.Error() != "Forbidden: user is deactivated" {
			logging.LogMinorError("send", "sending a message", err)
		}
	}
}

// sendWrapper drains bot.messages, pacing sends with the rate limiter
func (bot *Bot) sendWrapper() {
	for message := range bot.messages {
		bot.limiter.Wait(context.Background())
		go bot.send(message)
	}
}
