// Package handler contains the transport-independent message router: chat
// events in, reply text out. The HTTP callback layer in the http subpackage
// adapts OneBot webhook traffic onto these values.
package handler

// Message is one inbound private chat message.
type Message struct {
	// SenderID is the platform user id of the sender, used for outbound
	// delivery.
	SenderID int64

	// Identity is SenderID rendered as text; it doubles as the game
	// accountname. Trusted as-is: the transport already authenticated the
	// sender.
	Identity string

	// Content is the trimmed message text.
	Content string

	// IsFriend reports whether the sender is a mutual contact. Non-friends
	// (temporary sessions) are refused before any store access.
	IsFriend bool
}

// FriendRequest is one inbound friend request event.
type FriendRequest struct {
	SenderID int64
	Identity string

	// Flag identifies the pending request towards the transport API.
	Flag string
}
