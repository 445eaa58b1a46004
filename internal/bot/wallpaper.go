package bot

import (
	"math/rand"

	"github.com/anaskhan96/soup"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
)

const wallpaperPageURL = "https://wallhaven.cc/search?q=study&sorting=random"

// wallpaper answers /wallpaper: scrapes a random wallpaper from the
// search page and sends it as a photo
func (bot *Bot) wallpaper(msg *tgbotapi.Message) {
	resp, err := soup.Get(wallpaperPageURL)
	if err != nil {
		logging.LogMinorError("wallpaper", "fetching the wallpaper page", err)
		bot.sendErrorToUser("could not fetch a wallpaper, try again later", msg.Chat.ID)
		return
	}

	doc := soup.HTMLParse(resp)
	var links []string
	for _, img := range doc.FindAll("img") {
		if src, ok := img.Attrs()["data-src"]; ok && src != "" {
			links = append(links, src)
		}
	}
	if len(links) == 0 {
		bot.sendErrorToUser("no wallpapers found, try again later", msg.Chat.ID)
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileURL(links[rand.Intn(len(links))]))
	bot.messages <- photo
}
