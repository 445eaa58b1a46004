package storedb_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
	"github.com/Ur-amit-01/Post-Manager-sub000/internal/storedb"
)

func openTestDB(t *testing.T) *storedb.DB {
	t.Helper()

	db, err := storedb.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestCursors(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.Cursor("main")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SaveCursor("main", 103))
	id, ok, err := db.Cursor("main")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(103), id)

	// upsert overwrites
	require.NoError(t, db.SaveCursor("main", 110))
	id, _, err = db.Cursor("main")
	require.NoError(t, err)
	assert.Equal(t, int64(110), id)
}

func TestChannelSets(t *testing.T) {
	db := openTestDB(t)

	set := forward.ChannelSet{
		Name:         "main",
		Source:       -100123,
		Destinations: map[string]int64{"Physics": -100456},
	}
	require.NoError(t, db.SaveChannelSet(set))

	sets, err := db.ChannelSets()
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, set, sets[0])
}

func TestSeedChannelSetsKeepsEdits(t *testing.T) {
	db := openTestDB(t)

	edited := forward.ChannelSet{
		Name:         "main",
		Source:       -100123,
		Destinations: map[string]int64{"Physics": -100999},
	}
	require.NoError(t, db.SaveChannelSet(edited))

	seed := []forward.ChannelSet{
		{Name: "main", Source: -100123, Destinations: map[string]int64{"Physics": -100456}},
		{Name: "second", Source: -100777, Destinations: map[string]int64{"Maths": -100888}},
	}
	require.NoError(t, db.SeedChannelSets(seed))

	sets, err := db.ChannelSets()
	require.NoError(t, err)
	require.Len(t, sets, 2)

	// the runtime edit of "main" survived the re-seed
	for _, set := range sets {
		if set.Name == "main" {
			assert.Equal(t, int64(-100999), set.Destinations["Physics"])
		}
	}
}

func TestPosts(t *testing.T) {
	db := openTestDB(t)
	const chat = int64(-100123)

	latest, err := db.LatestPostID(chat)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)

	now := time.Now()
	for id := int64(1); id <= 5; id++ {
		msg := forward.Message{ID: id, Text: "post", Media: id%2 == 0}
		require.NoError(t, db.SavePost(chat, msg, now))
	}

	latest, err = db.LatestPostID(chat)
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest)

	// newest first, from the newest
	page, err := db.Posts(chat, 0, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(5), page[0].ID)
	assert.Equal(t, int64(3), page[2].ID)
	assert.True(t, page[1].Media)

	// older than a given id
	page, err = db.Posts(chat, 3, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(1), page[1].ID)
}

func TestClearPostsBefore(t *testing.T) {
	db := openTestDB(t)
	const chat = int64(-100123)

	old := time.Now().AddDate(0, 0, -40)
	require.NoError(t, db.SavePost(chat, forward.Message{ID: 1, Text: "old"}, old))
	require.NoError(t, db.SavePost(chat, forward.Message{ID: 2, Text: "new"}, time.Now()))

	require.NoError(t, db.ClearPostsBefore(time.Now().AddDate(0, 0, -30)))

	page, err := db.Posts(chat, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].ID)
}

func TestRevisions(t *testing.T) {
	db := openTestDB(t)
	const user = int64(42)

	studied := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.AddRevision(user, "Thermodynamics", studied))
	require.NoError(t, db.AddRevision(user, "Waves", studied.AddDate(0, 0, 1)))

	revisions, err := db.Revisions(user)
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Equal(t, "Thermodynamics", revisions[0].Topic)
	assert.Equal(t, studied.Unix(), revisions[0].Date.Unix())

	all, err := db.AllRevisions()
	require.NoError(t, err)
	require.Contains(t, all, user)
	assert.Len(t, all[user], 2)

	// unknown user simply has no entries
	revisions, err = db.Revisions(777)
	require.NoError(t, err)
	assert.Empty(t, revisions)
}

func TestClearRevisionsBefore(t *testing.T) {
	db := openTestDB(t)
	const user = int64(42)

	require.NoError(t, db.AddRevision(user, "Old Topic", time.Now().AddDate(0, 0, -25)))
	require.NoError(t, db.AddRevision(user, "Fresh Topic", time.Now()))

	require.NoError(t, db.ClearRevisionsBefore(time.Now().AddDate(0, 0, -22)))

	revisions, err := db.Revisions(user)
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "Fresh Topic", revisions[0].Topic)
}
