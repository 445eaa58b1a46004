package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/bot"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/catalog"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/config"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/logging"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

func main() {
	err := config.GetConfigInfo()
	if err != nil {
		log.Fatal(err)
	}

	logging.Initialize(config.Data.Debug)
	logging.LogEvent("starting post-manager")

	db, err := storedb.Open(config.Data.DBPath)
	if err != nil {
		logging.LogFatalError("main", "opening the database", err)
	}

	subjects, err := catalog.LoadFile(filepath.Join(config.Data.DataDir, "subjects.json"))
	if err != nil {
		logging.LogFatalError("main", "loading the subject catalog", err)
	}

	err = bot.ParseAdminIDs(filepath.Join(config.Data.DataDir, "admins.json"))
	if err != nil {
		logging.LogFatalError("main", "parsing the admin id list", err)
	}

	err = seedChannelSets(db, filepath.Join(config.Data.DataDir, "channelsets.json"))
	if err != nil {
		logging.LogFatalError("main", "seeding channel sets", err)
	}

	logging.LogEvent("logging into the bot")
	manager, err := bot.NewBot(db, subjects)
	if err != nil {
		logging.LogFatalError("main", "logging into the bot", err)
	}

	logging.LogEvent("starting the bot")
	stopChan := make(chan struct{})
	go manager.StartPolling(stopChan)

	// SIGTERM for the server (htop kill 15), SIGINT for Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	close(stopChan)
	// Give in-flight handlers a moment, no new updates are accepted
	time.Sleep(2 * time.Second)
	db.Close()
	logging.LogEvent("shutting down")
	time.Sleep(500 * time.Millisecond)
}

// seedChannelSets loads the channel-set seed file into the store without
// clobbering sets edited at runtime. A missing file is fine
func seedChannelSets(db *storedb.DB, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var sets []forward.ChannelSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return err
	}

	return db.SeedChannelSets(sets)
}
