package http

// inboundEvent is the subset of the OneBot v11 event payload the bot reads.
// post_type discriminates the union; unused fields stay at their zero
// values.
type inboundEvent struct {
	PostType string `json:"post_type"`

	// message events
	MessageType string `json:"message_type"`
	SubType     string `json:"sub_type"`
	RawMessage  string `json:"raw_message"`

	// request events
	RequestType string `json:"request_type"`
	Flag        string `json:"flag"`

	UserID int64 `json:"user_id"`
	SelfID int64 `json:"self_id"`
}
