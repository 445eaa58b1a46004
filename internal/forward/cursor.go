package forward

// CursorStorage is the durable map behind the cursor store
type CursorStorage interface {
	// Cursor returns the saved cursor of a set, ok is false when none exists
	Cursor(set string) (id int64, ok bool, err error)
	// SaveCursor upserts the cursor, overwriting the previous value
	SaveCursor(set string, id int64) error
}

// CursorStore tracks the last forwarded message id per channel set
type CursorStore struct {
	storage CursorStorage
	client  ChannelClient
}

// NewCursorStore returns a cursor store over the given storage
func NewCursorStore(storage CursorStorage, client ChannelClient) *CursorStore {
	return &CursorStore{storage: storage, client: client}
}

// Load returns the cursor of the set. On first use the cursor is seeded
// with the source channel's latest message id and persisted before it is
// returned, so the existing backlog of a freshly configured set is not
// replayed
func (s *CursorStore) Load(set ChannelSet) (int64, error) {
	id, ok, err := s.storage.Cursor(set.Name)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}

	latest, err := s.client.LatestMessageID(set.Source)
	if err != nil {
		return 0, err
	}
	if err := s.storage.SaveCursor(set.Name, latest); err != nil {
		return 0, err
	}

	return latest, nil
}

// Save unconditionally overwrites the cursor of the set
func (s *CursorStore) Save(set string, id int64) error {
	return s.storage.SaveCursor(set, id)
}
