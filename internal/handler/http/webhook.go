package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/luoyiming/game-account-bot/internal/handler"
	"github.com/luoyiming/game-account-bot/internal/logger"
)

// event is the single webhook endpoint. It dispatches on post_type and
// always acknowledges the callback: the transport must never see a handler
// failure, or it will back off and queue events.
func (h *Handler) event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var evt inboundEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		log.Err(err).Msg("invalid event payload")
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	switch evt.PostType {
	case "message":
		h.handleMessage(w, r, evt)
	case "request":
		if evt.RequestType == "friend" {
			h.router.HandleFriendRequest(ctx, handler.FriendRequest{
				SenderID: evt.UserID,
				Identity: strconv.FormatInt(evt.UserID, 10),
				Flag:     evt.Flag,
			})
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		// meta events, notices etc. are none of our business
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request, evt inboundEvent) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// the bot only talks in private chats
	if evt.MessageType != "private" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := handler.Message{
		SenderID: evt.UserID,
		Identity: strconv.FormatInt(evt.UserID, 10),
		Content:  strings.TrimSpace(evt.RawMessage),
		IsFriend: evt.SubType == "friend",
	}

	reply := h.router.HandleMessage(ctx, msg)
	if reply == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.api.SendPrivateMessage(ctx, msg.SenderID, reply); err != nil {
		// the event itself was handled; only the delivery failed
		log.Err(err).Int64("user_id", msg.SenderID).Msg("failed to deliver reply")
	}

	w.WriteHeader(http.StatusNoContent)
}
