package config

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// ConfigurationData holds everything the bot needs to run
type ConfigurationData struct {
	BotToken      string // Telegram bot token (env TELEGRAM_BOT_TOKEN overrides the flag)
	DBPath        string // path to the bolt database file
	DataDir       string // directory with subjects.json, channelsets.json, admins.json
	Rate          uint64 // delay between outgoing messages (milliseconds)
	ForwardDelay  uint64 // delay between forwards inside one sweep (milliseconds)
	SweepInterval uint64 // periodic sweep interval (minutes)
	DigestFeedURL string // RSS feed for the daily digest, empty disables it
	DigestChannel int64  // channel that receives the daily digest
	DigestAt      string // time of day for the digest, "HH:MM"
	Debug         bool
}

// Data contains the parsed configuration
var Data ConfigurationData

// GetConfigInfo parses flags and the .env file and fills Data
func GetConfigInfo() error {
	// .env is optional, flags and the real environment still apply without it
	godotenv.Load()

	flag.StringVar(&Data.BotToken, "token", "", "token of the bot")
	flag.StringVar(&Data.DBPath, "db", "data/posts.db", "path to the database file")
	flag.StringVar(&Data.DataDir, "data", "data", "directory with json data files")
	flag.Uint64Var(&Data.Rate, "rate", 500, "delay between sending of messages (milliseconds)")
	flag.Uint64Var(&Data.ForwardDelay, "fdelay", 300, "delay between forwards in a sweep (milliseconds)")
	flag.Uint64Var(&Data.SweepInterval, "sweep", 60, "interval between automatic sweeps (minutes)")
	flag.StringVar(&Data.DigestFeedURL, "digestFeed", "", "RSS feed for the daily digest (empty – off)")
	flag.Int64Var(&Data.DigestChannel, "digestChannel", 0, "channel id for the daily digest")
	flag.StringVar(&Data.DigestAt, "digestAt", "21:00", "time of the daily digest")
	flag.BoolVar(&Data.Debug, "debug", false, "debug mode (default – false)")

	flag.Parse()

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		Data.BotToken = token
	}

	if Data.BotToken == "" {
		return errors.New("bot token is missed")
	}

	return nil
}
