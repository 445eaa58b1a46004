package storedb

import "github.com/boltdb/bolt"

// Cursor returns the saved cursor of a channel set.
// ok is false when the set has no cursor yet
func (db *DB) Cursor(set string) (id int64, ok bool, err error) {
	err = db.bolt.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte("cursors")).Get([]byte(set))
		if value == nil {
			return nil
		}
		id = btoi(value)
		ok = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return id, ok, nil
}

// SaveCursor upserts the cursor of a channel set
func (db *DB) SaveCursor(set string, id int64) error {
	return db.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("cursors")).Put([]byte(set), itob(id))
	})
}
