package adapter

import "context"

// BotAPI is the outbound boundary to the chat platform. The router replies
// to users and approves friend requests through it; everything inbound
// arrives via the HTTP callback instead.
type BotAPI interface {
	// SendPrivateMessage delivers text to the given platform user.
	SendPrivateMessage(ctx context.Context, userID int64, text string) error

	// ApproveFriendRequest accepts the pending friend request identified by
	// the transport-provided flag.
	ApproveFriendRequest(ctx context.Context, flag string) error
}
