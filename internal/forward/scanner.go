package forward

const defaultPageSize = 100

// Scanner retrieves the new messages of a source channel
type Scanner struct {
	client   ChannelClient
	pageSize int
}

// NewScanner returns a scanner over the given transport
func NewScanner(client ChannelClient) *Scanner {
	return &Scanner{client: client, pageSize: defaultPageSize}
}

// NewMessages returns the messages of the channel newer than sinceID in
// chronological order. Service messages and messages with neither text nor
// media are dropped. History is paged from the newest message backwards
// until a page reaches sinceID, so a backlog larger than one page is never
// silently truncated
func (s *Scanner) NewMessages(channel, sinceID int64) ([]Message, error) {
	var collected []Message

	beforeID := int64(0)
	for {
		page, err := s.client.History(channel, beforeID, s.pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		reached := false
		for _, msg := range page {
			if msg.ID <= sinceID {
				reached = true
				break
			}
			collected = append(collected, msg)
		}
		if reached || len(page) < s.pageSize {
			break
		}

		// full page and still newer than sinceID, keep paging
		beforeID = page[len(page)-1].ID
	}

	// newest-first to chronological
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}

	result := make([]Message, 0, len(collected))
	for _, msg := range collected {
		if msg.Service {
			continue
		}
		if msg.Text == "" && !msg.Media {
			continue
		}
		result = append(result, msg)
	}

	return result, nil
}
