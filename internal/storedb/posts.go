package storedb

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
)

// SavePost archives one channel post. The archive is what the scanner
// reads as channel history: the Bot API cannot fetch old messages, so the
// bot keeps every post it sees from a configured source
func (db *DB) SavePost(chat int64, msg forward.Message, at time.Time) error {
	return db.bolt.Update(func(tx *bolt.Tx) error {
		chatBucket, err := tx.Bucket([]byte("posts")).CreateBucketIfNotExists(itob(chat))
		if err != nil {
			return err
		}

		post, err := chatBucket.CreateBucketIfNotExists(itob(msg.ID))
		if err != nil {
			return err
		}
		post.Put([]byte("text"), []byte(msg.Text))
		post.Put([]byte("media"), boolToBytes(msg.Media))
		post.Put([]byte("service"), boolToBytes(msg.Service))

		bTime := make([]byte, 8)
		binary.BigEndian.PutUint64(bTime, uint64(at.Unix()))
		post.Put([]byte("time"), bTime)

		return nil
	})
}

// LatestPostID returns the highest archived message id of the chat,
// 0 when nothing has been archived yet
func (db *DB) LatestPostID(chat int64) (int64, error) {
	var latest int64

	err := db.bolt.View(func(tx *bolt.Tx) error {
		chatBucket := tx.Bucket([]byte("posts")).Bucket(itob(chat))
		if chatBucket == nil {
			return nil
		}

		// keys are big-endian ids, the last one is the newest
		k, _ := chatBucket.Cursor().Last()
		if k != nil {
			latest = btoi(k)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return latest, nil
}

// Posts returns up to limit archived messages of the chat with ids lower
// than beforeID, newest first. beforeID 0 means "from the newest"
func (db *DB) Posts(chat, beforeID int64, limit int) ([]forward.Message, error) {
	messages := make([]forward.Message, 0, limit)

	err := db.bolt.View(func(tx *bolt.Tx) error {
		chatBucket := tx.Bucket([]byte("posts")).Bucket(itob(chat))
		if chatBucket == nil {
			return nil
		}

		c := chatBucket.Cursor()
		var k []byte
		if beforeID == 0 {
			k, _ = c.Last()
		} else {
			k, _ = c.Seek(itob(beforeID))
			if k == nil {
				k, _ = c.Last()
			} else {
				k, _ = c.Prev()
			}
		}

		for ; k != nil && len(messages) < limit; k, _ = c.Prev() {
			post := chatBucket.Bucket(k)
			if post == nil {
				continue
			}
			messages = append(messages, forward.Message{
				ID:      btoi(k),
				Text:    string(post.Get([]byte("text"))),
				Media:   bytesToBool(post.Get([]byte("media"))),
				Service: bytesToBool(post.Get([]byte("service"))),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// ClearPostsBefore deletes archived posts older than the cutoff
func (db *DB) ClearPostsBefore(cutoff time.Time) error {
	before := cutoff.Unix()

	return db.bolt.Update(func(tx *bolt.Tx) error {
		posts := tx.Bucket([]byte("posts"))

		return posts.ForEach(func(chatKey, v []byte) error {
			if v != nil {
				return nil
			}
			chatBucket := posts.Bucket(chatKey)

			var old [][]byte
			c := chatBucket.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				post := chatBucket.Bucket(k)
				if post == nil {
					continue
				}
				bTime := post.Get([]byte("time"))
				if bTime != nil && int64(binary.BigEndian.Uint64(bTime)) < before {
					old = append(old, append([]byte{}, k...))
				}
			}
			for _, k := range old {
				if err := chatBucket.DeleteBucket(k); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func boolToBytes(v bool) []byte {
	if v {
		return []byte("true")
	}
	return []byte("false")
}

func bytesToBool(b []byte) bool {
	return string(b) == "true"
}
