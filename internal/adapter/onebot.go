// Package adapter holds the HTTP client for the OneBot API exposed by the
// chat transport (e.g. a QQ protocol bridge). Inbound events are handled
// elsewhere; this package only performs outbound calls.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/logger"
)

// ErrAPIFailure is returned when the OneBot endpoint answered but reported a
// non-zero retcode.
var ErrAPIFailure = errors.New("onebot api call failed")

// apiResponse is the envelope every OneBot endpoint responds with.
type apiResponse struct {
	Status  string `json:"status"`
	Retcode int    `json:"retcode"`
	Message string `json:"message"`
}

type oneBotClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewOneBotClient constructs a [BotAPI] speaking the OneBot v11 HTTP API.
// The access token, when configured, is sent as a bearer token on every
// request.
func NewOneBotClient(cfg config.OneBot, log *logger.Logger) BotAPI {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)
	if cfg.AccessToken != "" {
		cli.SetAuthToken(cfg.AccessToken)
	}

	return &oneBotClient{client: cli, logger: log}
}

// SendPrivateMessage implements [BotAPI] via /send_private_msg.
func (c *oneBotClient) SendPrivateMessage(ctx context.Context, userID int64, text string) error {
	return c.call(ctx, "/send_private_msg", map[string]any{
		"user_id": userID,
		"message": text,
	})
}

// ApproveFriendRequest implements [BotAPI] via /set_friend_add_request.
func (c *oneBotClient) ApproveFriendRequest(ctx context.Context, flag string) error {
	return c.call(ctx, "/set_friend_add_request", map[string]any{
		"flag":    flag,
		"approve": true,
	})
}

func (c *oneBotClient) call(ctx context.Context, endpoint string, body map[string]any) error {
	var envelope apiResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&envelope).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("onebot request %s: %w", endpoint, err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %s returned http %d", ErrAPIFailure, endpoint, resp.StatusCode())
	}
	if envelope.Retcode != 0 {
		return fmt.Errorf("%w: %s retcode %d (%s)", ErrAPIFailure, endpoint, envelope.Retcode, envelope.Message)
	}

	return nil
}
