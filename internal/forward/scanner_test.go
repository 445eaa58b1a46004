package forward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/forward"
)

func TestNewMessagesOrderAndFilter(t *testing.T) {
	client := newFakeClient(
		forward.Message{ID: 10, Text: "already seen"},
		forward.Message{ID: 11, Text: "first new"},
		forward.Message{ID: 12, Text: "", Service: true},
		forward.Message{ID: 13, Text: ""},              // nothing to classify or forward
		forward.Message{ID: 14, Text: "", Media: true}, // media without caption stays
		forward.Message{ID: 15, Text: "last new"},
	)

	s := forward.NewScanner(client)
	messages, err := s.NewMessages(100, 10)
	require.NoError(t, err)

	ids := make([]int64, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	assert.Equal(t, []int64{11, 14, 15}, ids)
}

func TestNewMessagesEmptyWhenCaughtUp(t *testing.T) {
	client := newFakeClient(
		forward.Message{ID: 5, Text: "old"},
		forward.Message{ID: 6, Text: "older than the cursor"},
	)

	s := forward.NewScanner(client)

	// cursor at the latest id
	messages, err := s.NewMessages(100, 6)
	require.NoError(t, err)
	assert.Empty(t, messages)

	// cursor beyond the latest id
	messages, err = s.NewMessages(100, 99)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestNewMessagesRePagesLargeBacklog(t *testing.T) {
	// well over the page size, so a single page cannot cover it
	var backlog []forward.Message
	for id := int64(1); id <= 250; id++ {
		backlog = append(backlog, forward.Message{ID: id, Text: "post"})
	}
	client := newFakeClient(backlog...)

	s := forward.NewScanner(client)
	messages, err := s.NewMessages(100, 30)
	require.NoError(t, err)

	require.Len(t, messages, 220)
	assert.Equal(t, int64(31), messages[0].ID)
	assert.Equal(t, int64(250), messages[len(messages)-1].ID)

	// strictly ascending, no gaps from paging
	for i := 1; i < len(messages); i++ {
		assert.Equal(t, messages[i-1].ID+1, messages[i].ID)
	}
}

func TestCursorStoreSeedsOnce(t *testing.T) {
	client := newFakeClient(
		forward.Message{ID: 77, Text: "latest"},
	)
	storage := newFakeStorage()

	set := forward.ChannelSet{Name: "fresh", Source: 100}
	cursors := forward.NewCursorStore(storage, client)

	// first load seeds from the channel's latest id and persists it
	id, err := cursors.Load(set)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.Equal(t, int64(77), storage.cursor("fresh"))

	// later loads read the stored value, not the channel
	require.NoError(t, cursors.Save("fresh", 80))
	id, err = cursors.Load(set)
	require.NoError(t, err)
	assert.Equal(t, int64(80), id)
}
