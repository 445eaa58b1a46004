package storedb

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
)

// SaveChannelSet upserts a channel set under its name
func (db *DB) SaveChannelSet(set forward.ChannelSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	return db.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("channel_sets")).Put([]byte(set.Name), data)
	})
}

// ChannelSets returns all configured channel sets.
// The dispatcher reads them at the start of every sweep, so edits take
// effect without a restart
func (db *DB) ChannelSets() ([]forward.ChannelSet, error) {
	sets := make([]forward.ChannelSet, 0)

	err := db.bolt.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("channel_sets")).ForEach(func(k, v []byte) error {
			var set forward.ChannelSet
			if err := json.Unmarshal(v, &set); err != nil {
				return err
			}
			sets = append(sets, set)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return sets, nil
}

// SeedChannelSets stores the given sets, skipping names that already exist.
// Used to load the json seed file on the first start without clobbering
// sets edited at runtime
func (db *DB) SeedChannelSets(sets []forward.ChannelSet) error {
	return db.bolt.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte("channel_sets"))
		for _, set := range sets {
			if bucket.Get([]byte(set.Name)) != nil {
				continue
			}
			data, err := json.Marshal(set)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(set.Name), data); err != nil {
				return err
			}
		}
		return nil
	})
}
