package storedb

import (
	"encoding/binary"

	"github.com/boltdb/bolt"
)

/*
*	Database layout
*
*	"cursors"
*		|-> set name – last forwarded message id (int64, big endian)
*
*	"channel_sets"
*		|-> set name – json-encoded channel set
*
*	"posts"
*		|-> chat id (int64, big endian)
*			|-> message id (int64, big endian)
*				| text
*				| media
*				| service
*				| time (UNIX, big endian)
*
*	"revisions"
*		|-> user id (decimal string)
*			|-> sequence (uint64, big endian)
*				| topic
*				| date (UNIX, big endian)
*
 */

var buckets = []string{"cursors", "channel_sets", "posts", "revisions"}

// DB is a handle to the bot's bolt database
type DB struct {
	bolt *bolt.DB
}

// Open opens the database (creating it and its buckets when missing)
func Open(path string) (*DB, error) {
	adapter, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = adapter.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DB{bolt: adapter}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.bolt.Close()
}

// itob encodes an int64 as a big-endian key, so bolt keeps keys in
// numeric order
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// btoi decodes a big-endian key back to an int64
func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
