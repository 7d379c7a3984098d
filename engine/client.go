package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const readTimeout = 2 * time.Second

// Client connects a Bot to a host engine over a websocket and drives its
// lifecycle from incoming messages. Messages are handled strictly one at a
// time; the bot never sees concurrent calls.
type Client struct {
	name   string
	game   string
	bot    Bot
	conn   *websocket.Conn
	logger zerolog.Logger
	clock  quartz.Clock
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClock replaces the wall clock, used by tests to control read
// deadlines.
func WithClock(clock quartz.Clock) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithGame sets the game the bot joins on connect.
func WithGame(game string) ClientOption {
	return func(c *Client) {
		c.game = game
	}
}

// NewClient creates a client for the given bot.
func NewClient(name string, bot Bot, logger zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		name:   name,
		game:   "default",
		bot:    bot,
		logger: logger.With().Str("bot", name).Logger(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the websocket connection and announces the bot.
func (c *Client) Connect(serverURL string) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}
	c.conn = conn

	msg, err := NewMessage(MessageTypeConnect, ConnectData{Name: c.name, Game: c.game})
	if err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// Run reads host messages until the context is cancelled, the game ends or
// the connection drops.
func (c *Client) Run(ctx context.Context) error {
	if c.conn == nil {
		return errors.New("not connected")
	}
	defer c.conn.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Short read deadlines keep shutdown responsive.
		_ = c.conn.SetReadDeadline(c.clock.Now().Add(readTimeout))

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read failed: %w", err)
		}

		done, err := c.handle(&msg)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *Client) handle(msg *Message) (done bool, err error) {
	switch msg.Type {
	case MessageTypeAssignID:
		var data AssignIDData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("assign_id: %w", err)
		}
		c.bot.SetID(data.PlayerID)
		c.logger.Debug().Int("player_id", data.PlayerID).Msg("id assigned")

	case MessageTypeGameStart:
		var data GameStartData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("game_start: %w", err)
		}
		c.bot.OnStart(data.StartingChips, data.PlayerHands, data.BlindAmount,
			data.BigBlindPlayerID, data.SmallBlindPlayerID, data.AllPlayers)

	case MessageTypeRoundStart:
		var data RoundData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("round_start: %w", err)
		}
		c.bot.OnRoundStart(&data.RoundState, data.RemainingChips)

	case MessageTypeRequestAction:
		var data RoundData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("request_action: %w", err)
		}
		action, amount := c.safeGetAction(&data.RoundState, data.RemainingChips)
		c.logger.Debug().
			Str("round", data.RoundState.Round).
			Str("action", action.String()).
			Int("amount", amount).
			Msg("decision")
		if err := c.sendAction(action, amount); err != nil {
			return false, err
		}

	case MessageTypeRoundEnd:
		var data RoundData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("round_end: %w", err)
		}
		c.bot.OnEndRound(&data.RoundState, data.RemainingChips)

	case MessageTypeGameEnd:
		var data GameEndData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return false, fmt.Errorf("game_end: %w", err)
		}
		c.bot.OnEndGame(&data.RoundState, data.Score, data.AllScores, data.RevealedHands)
		c.logger.Info().Float64("score", data.Score).Msg("game completed")
		return true, nil

	default:
		c.logger.Debug().Str("type", string(msg.Type)).Msg("ignoring unknown message")
	}

	return false, nil
}

// safeGetAction shields the connection from a panicking strategy: a missed
// reply forfeits the hand, so any panic degrades to a fold.
func (c *Client) safeGetAction(state *RoundState, chips int) (action Action, amount int) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("strategy panicked, folding")
			action, amount = Fold, 0
		}
	}()
	return c.bot.GetAction(state, chips)
}

func (c *Client) sendAction(action Action, amount int) error {
	msg, err := NewMessage(MessageTypeAction, ActionData{Action: action.String(), Amount: amount})
	if err != nil {
		return err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send action: %w", err)
	}
	return nil
}
