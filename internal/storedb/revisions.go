package storedb

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/boltdb/bolt"
)

// Revision is one studied topic of one user
type Revision struct {
	Topic string
	Date  time.Time // day the topic was studied
}

// AddRevision records that a user studied a topic
func (db *DB) AddRevision(userID int64, topic string, date time.Time) error {
	return db.bolt.Update(func(tx *bolt.Tx) error {
		userBucket, err := tx.Bucket([]byte("revisions")).
			CreateBucketIfNotExists([]byte(strconv.FormatInt(userID, 10)))
		if err != nil {
			return err
		}

		seq, _ := userBucket.NextSequence()
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		entry, err := userBucket.CreateBucket(key)
		if err != nil {
			return err
		}
		entry.Put([]byte("topic"), []byte(topic))

		bDate := make([]byte, 8)
		binary.BigEndian.PutUint64(bDate, uint64(date.Unix()))
		entry.Put([]byte("date"), bDate)

		return nil
	})
}

// Revisions returns all recorded topics of one user, oldest first
func (db *DB) Revisions(userID int64) ([]Revision, error) {
	revisions := make([]Revision, 0)

	err := db.bolt.View(func(tx *bolt.Tx) error {
		userBucket := tx.Bucket([]byte("revisions")).
			Bucket([]byte(strconv.FormatInt(userID, 10)))
		if userBucket == nil {
			return nil
		}

		c := userBucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			entry := userBucket.Bucket(k)
			if entry == nil {
				continue
			}
			revisions = append(revisions, readRevision(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return revisions, nil
}

// AllRevisions returns the recorded topics of every user
func (db *DB) AllRevisions() (map[int64][]Revision, error) {
	all := make(map[int64][]Revision)

	err := db.bolt.View(func(tx *bolt.Tx) error {
		revisions := tx.Bucket([]byte("revisions"))

		return revisions.ForEach(func(userKey, v []byte) error {
			if v != nil {
				return nil
			}
			userID, err := strconv.ParseInt(string(userKey), 10, 64)
			if err != nil {
				return nil
			}

			userBucket := revisions.Bucket(userKey)
			c := userBucket.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				entry := userBucket.Bucket(k)
				if entry == nil {
					continue
				}
				all[userID] = append(all[userID], readRevision(entry))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

// ClearRevisionsBefore deletes entries studied before the cutoff
// (past the last revision offset they are never due again)
func (db *DB) ClearRevisionsBefore(cutoff time.Time) error {
	before := cutoff.Unix()

	return db.bolt.Update(func(tx *bolt.Tx) error {
		revisions := tx.Bucket([]byte("revisions"))

		return revisions.ForEach(func(userKey, v []byte) error {
			if v != nil {
				return nil
			}
			userBucket := revisions.Bucket(userKey)

			var old [][]byte
			c := userBucket.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				entry := userBucket.Bucket(k)
				if entry == nil {
					continue
				}
				bDate := entry.Get([]byte("date"))
				if bDate != nil && int64(binary.BigEndian.Uint64(bDate)) < before {
					old = append(old, append([]byte{}, k...))
				}
			}
			for _, k := range old {
				if err := userBucket.DeleteBucket(k); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func readRevision(entry *bolt.Bucket) Revision {
	r := Revision{Topic: string(entry.Get([]byte("topic")))}
	if bDate := entry.Get([]byte("date")); bDate != nil {
		r.Date = time.Unix(int64(binary.BigEndian.Uint64(bDate)), 0)
	}
	return r
}
