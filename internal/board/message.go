package board

// Message is one post on the board. It is never edited after creation.
type Message struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	Owner     string `json:"owner"`
}

// OwnedBy reports whether the message was created under identity user.
func (m Message) OwnedBy(user string) bool {
	return m.Owner == user
}

func cloneMessages(messages []Message) []Message {
	if len(messages) == 0 {
		return []Message{}
	}
	dup := make([]Message, len(messages))
	copy(dup, messages)
	return dup
}
