package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/service"
	"github.com/luoyiming/game-account-bot/models"
)

// ─────────────────────────────────────────────
// Mocks: services and BotAPI
// ─────────────────────────────────────────────

type mockRegistration struct {
	registerFn func(ctx context.Context, identity string) (models.Registration, error)
	calls      int
}

func (m *mockRegistration) Register(ctx context.Context, identity string) (models.Registration, error) {
	m.calls++
	if m.registerFn != nil {
		return m.registerFn(ctx, identity)
	}
	return models.Registration{Identity: identity, Password: "aB3xY9", Cera: 1000, CeraPoint: 500}, nil
}

type mockPasswordChange struct {
	changeFn func(ctx context.Context, identity string, raw string) (string, error)
	calls    int
	lastRaw  string
}

func (m *mockPasswordChange) ChangePassword(ctx context.Context, identity string, raw string) (string, error) {
	m.calls++
	m.lastRaw = raw
	if m.changeFn != nil {
		return m.changeFn(ctx, identity, raw)
	}
	return raw, nil
}

type mockBotAPI struct {
	approveErr   error
	approveFlags []string
	sent         []string
}

func (m *mockBotAPI) SendPrivateMessage(ctx context.Context, userID int64, text string) error {
	m.sent = append(m.sent, text)
	return nil
}

func (m *mockBotAPI) ApproveFriendRequest(ctx context.Context, flag string) error {
	m.approveFlags = append(m.approveFlags, flag)
	return m.approveErr
}

func newTestRouter(reg *mockRegistration, pwd *mockPasswordChange, api *mockBotAPI) *Router {
	return NewRouter(&service.Services{Registration: reg, PasswordChange: pwd}, api, logger.Nop())
}

func friendMessage(content string) Message {
	return Message{SenderID: 10001, Identity: "10001", Content: content, IsFriend: true}
}

// ─────────────────────────────────────────────
// Message routing
// ─────────────────────────────────────────────

// TestHandleMessage_NotFriend verifies that temporary sessions get the fixed
// refusal text and never reach the services.
func TestHandleMessage_NotFriend(t *testing.T) {
	reg := &mockRegistration{}
	pwd := &mockPasswordChange{}
	rt := newTestRouter(reg, pwd, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), Message{SenderID: 10002, Identity: "10002", Content: "hello", IsFriend: false})

	assert.Equal(t, notFriendReply, reply)
	assert.Zero(t, reg.calls)
	assert.Zero(t, pwd.calls)
}

func TestHandleMessage_Registration(t *testing.T) {
	rt := newTestRouter(&mockRegistration{}, &mockPasswordChange{}, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), friendMessage("hello"))

	assert.Contains(t, reply, "账号：10001")
	assert.Contains(t, reply, "密码：aB3xY9")
	assert.Contains(t, reply, "1000点券 500代币")
	assert.Contains(t, reply, "修改密码")
}

func TestHandleMessage_AlreadyRegistered(t *testing.T) {
	reg := &mockRegistration{
		registerFn: func(ctx context.Context, identity string) (models.Registration, error) {
			return models.Registration{}, service.ErrAlreadyRegistered
		},
	}
	rt := newTestRouter(reg, &mockPasswordChange{}, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), friendMessage("hello"))

	assert.Equal(t, alreadyRegisteredReply, reply)
}

func TestHandleMessage_RegistrationFailure(t *testing.T) {
	reg := &mockRegistration{
		registerFn: func(ctx context.Context, identity string) (models.Registration, error) {
			return models.Registration{}, errors.New("db is down")
		},
	}
	rt := newTestRouter(reg, &mockPasswordChange{}, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), friendMessage("hello"))

	assert.True(t, strings.HasPrefix(reply, registrationFailedPrefix), "reply %q", reply)
	assert.Contains(t, reply, "db is down")
}

// TestHandleMessage_PasswordCommand verifies that the 修改密码 prefix routes
// to the password-change path with the remainder of the message as the
// candidate password.
func TestHandleMessage_PasswordCommand(t *testing.T) {
	reg := &mockRegistration{}
	pwd := &mockPasswordChange{}
	rt := newTestRouter(reg, pwd, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), friendMessage("修改密码asd123456"))

	require.Equal(t, 1, pwd.calls)
	assert.Zero(t, reg.calls)
	assert.Equal(t, "asd123456", pwd.lastRaw)
	assert.Contains(t, reply, "账号：10001")
	assert.Contains(t, reply, "密码：asd123456")
	assert.Contains(t, reply, "密码修改成功")
}

func TestHandleMessage_PasswordValidationReplies(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		reply string
	}{
		{"length", service.ErrPasswordLength, passwordLengthReply},
		{"charset", service.ErrPasswordCharset, passwordCharsetReply},
		{"unknown account", service.ErrAccountNotFound, accountNotFoundReply},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pwd := &mockPasswordChange{
				changeFn: func(ctx context.Context, identity string, raw string) (string, error) {
					return "", tc.err
				},
			}
			rt := newTestRouter(&mockRegistration{}, pwd, &mockBotAPI{})

			reply := rt.HandleMessage(context.Background(), friendMessage("修改密码x"))
			assert.Equal(t, tc.reply, reply)
		})
	}
}

func TestHandleMessage_PasswordStoreFailure(t *testing.T) {
	pwd := &mockPasswordChange{
		changeFn: func(ctx context.Context, identity string, raw string) (string, error) {
			return "", errors.New("password update failed: db is down")
		},
	}
	rt := newTestRouter(&mockRegistration{}, pwd, &mockBotAPI{})

	reply := rt.HandleMessage(context.Background(), friendMessage("修改密码asd123456"))

	assert.Equal(t, "password update failed: db is down", reply)
}

// ─────────────────────────────────────────────
// Friend requests
// ─────────────────────────────────────────────

func TestHandleFriendRequest_Approves(t *testing.T) {
	api := &mockBotAPI{}
	rt := newTestRouter(&mockRegistration{}, &mockPasswordChange{}, api)

	rt.HandleFriendRequest(context.Background(), FriendRequest{SenderID: 10001, Identity: "10001", Flag: "flag-abc"})

	require.Len(t, api.approveFlags, 1)
	assert.Equal(t, "flag-abc", api.approveFlags[0])
}

// TestHandleFriendRequest_FailureIsSilent verifies that approval failures
// are swallowed: logged, no retry, no user-visible effect.
func TestHandleFriendRequest_FailureIsSilent(t *testing.T) {
	api := &mockBotAPI{approveErr: errors.New("api unreachable")}
	rt := newTestRouter(&mockRegistration{}, &mockPasswordChange{}, api)

	rt.HandleFriendRequest(context.Background(), FriendRequest{SenderID: 10001, Identity: "10001", Flag: "flag-abc"})

	assert.Len(t, api.approveFlags, 1)
	assert.Empty(t, api.sent, "no reply channel exists for friend requests")
}
