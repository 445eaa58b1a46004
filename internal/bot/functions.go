package bot

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

// getCurrentTime returns the current time as a human-readable string
func getCurrentTime() string {
	return time.Now().Format("02.01.2006 15:04:05")
}

// logErrorAndNotify logs the error and tells the user something went wrong
func (bot *Bot) logErrorAndNotify(data logging.ErrorData) {
	go logging.LogError(data)

	text := "Something went wrong. Time: " + getCurrentTime()
	bot.messages <- tgbotapi.NewMessage(data.UserID, text)
}

// sendErrorToUser reports a bad request back to the user
func (bot *Bot) sendErrorToUser(text string, userID int64) {
	bot.messages <- tgbotapi.NewMessage(userID, "Error: "+text)
}
