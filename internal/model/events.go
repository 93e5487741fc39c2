package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventPlayerAdded    EventType = "player_added"
	EventPlayerRemoved  EventType = "player_removed"
	EventGameStarted    EventType = "game_started"
	EventDieSet         EventType = "die_set"
	EventDiceCleared    EventType = "dice_cleared"
	EventCategoryScored EventType = "category_scored"
	EventTurnAdvanced   EventType = "turn_advanced"
	EventGameFinished   EventType = "game_finished"
	EventTableReset     EventType = "table_reset"
)

// Event is the base structure for all table events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Table     TableCode `json:"table"`
	Payload   any       `json:"payload,omitempty"`
}

// PlayerAddedPayload contains data for player added events
type PlayerAddedPayload struct {
	Player Player `json:"player"`
}

// PlayerRemovedPayload contains data for player removed events
type PlayerRemovedPayload struct {
	PlayerIndex int    `json:"player_index"`
	Name        string `json:"name"`
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players []Player `json:"players"`
}

// DieSetPayload contains data for die set events
type DieSetPayload struct {
	Die   int `json:"die"`
	Value int `json:"value"`
}

// CategoryScoredPayload contains data for category scored events
type CategoryScoredPayload struct {
	PlayerIndex int      `json:"player_index"`
	Category    Category `json:"category"`
	Score       int      `json:"score"`
}

// TurnAdvancedPayload contains data for turn advanced events
type TurnAdvancedPayload struct {
	NextPlayer int `json:"next_player"`
	Round      int `json:"round"`
}

// GameFinishedPayload contains data for game finished events
type GameFinishedPayload struct {
	FinalScores []FinalScore `json:"final_scores"`
	Winners     []int        `json:"winners"`
}
