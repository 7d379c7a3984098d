package engine

import "encoding/json"

// MessageType identifies a websocket message between host and bot.
type MessageType string

// Host to bot message types.
const (
	MessageTypeAssignID      MessageType = "assign_id"
	MessageTypeGameStart     MessageType = "game_start"
	MessageTypeRoundStart    MessageType = "round_start"
	MessageTypeRequestAction MessageType = "request_action"
	MessageTypeRoundEnd      MessageType = "round_end"
	MessageTypeGameEnd       MessageType = "game_end"
)

// Bot to host message types.
const (
	MessageTypeConnect MessageType = "connect"
	MessageTypeAction  MessageType = "action"
)

// Message is the envelope for all websocket traffic.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ConnectData announces the bot to the host.
type ConnectData struct {
	Name string `json:"name"`
	Game string `json:"game,omitempty"`
}

// AssignIDData carries the player identifier the host assigned.
type AssignIDData struct {
	PlayerID int `json:"player_id"`
}

// GameStartData carries the once-per-game setup.
type GameStartData struct {
	StartingChips      int      `json:"starting_chips"`
	PlayerHands        []string `json:"player_hands"`
	BlindAmount        int      `json:"blind_amount"`
	BigBlindPlayerID   int      `json:"big_blind_player_id"`
	SmallBlindPlayerID int      `json:"small_blind_player_id"`
	AllPlayers         []int    `json:"all_players"`
}

// RoundData accompanies round-start, action-request and round-end messages.
type RoundData struct {
	RoundState     RoundState `json:"round_state"`
	RemainingChips int        `json:"remaining_chips"`
}

// GameEndData carries the final scores and revealed hands.
type GameEndData struct {
	RoundState    RoundState          `json:"round_state"`
	Score         float64             `json:"score"`
	AllScores     map[string]float64  `json:"all_scores"`
	RevealedHands map[string][]string `json:"revealed_hands"`
}

// ActionData is the bot's reply to a request_action message.
type ActionData struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// NewMessage wraps data in a typed envelope.
func NewMessage(msgType MessageType, data any) (*Message, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Data: payload}, nil
}
