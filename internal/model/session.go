package model

import "time"

// TableCode is a human-readable identifier for joining a hosted table
type TableCode string

// SessionStatus represents the current phase of a table session
type SessionStatus string

const (
	SessionStatusSetup    SessionStatus = "setup"    // Roster being assembled
	SessionStatusPlaying  SessionStatus = "playing"  // Turns in progress
	SessionStatusFinished SessionStatus = "finished" // All cards full or force-ended
)

// MinPlayers is the smallest roster a game can start with
const MinPlayers = 2

// Player is one seat at the table. Index is 0-based, assigned in order of
// addition, and fixed once the game starts.
type Player struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// TableConfig holds configurable settings for a table
type TableConfig struct {
	// MaxPlayers caps the roster size during setup
	MaxPlayers int `json:"max_players"`
	// KeepRoster controls whether ResetGame retains player names for a rematch
	KeepRoster bool `json:"keep_roster"`
}

// DefaultTableConfig returns the default table configuration
func DefaultTableConfig() TableConfig {
	return TableConfig{
		MaxPlayers: 4,
		KeepRoster: true,
	}
}

// FinalScore is one player's end-of-game result
type FinalScore struct {
	PlayerIndex  int `json:"player_index"`
	GrandTotal   int `json:"grand_total"`
	UpperBonus   int `json:"upper_bonus"`
	YahtzeeBonus int `json:"yahtzee_bonus"`
}

// Session is the authoritative state of one pass-and-play game
type Session struct {
	Code   TableCode     `json:"code"`
	Status SessionStatus `json:"status"`
	Config TableConfig   `json:"config"`

	// Roster; insertion order is turn order. Cards is parallel to Players.
	Players []Player    `json:"players"`
	Cards   []Scorecard `json:"cards"`

	// Turn state
	CurrentPlayer int  `json:"current_player"`
	Round         int  `json:"round"` // 1-based; the game lasts CategoryCount rounds
	Hand          Hand `json:"hand"`

	// Populated once, when Status becomes finished
	FinalScores []FinalScore `json:"final_scores,omitempty"`
	Winners     []int        `json:"winners,omitempty"`

	// PasscodeHash guards command access when set; never exposed in responses
	PasscodeHash string `json:"passcode_hash,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentCard returns the current player's scorecard, or nil outside play
func (s *Session) CurrentCard() *Scorecard {
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Cards) {
		return nil
	}
	return &s.Cards[s.CurrentPlayer]
}

// AllCardsComplete returns true if every player's scorecard is full
func (s *Session) AllCardsComplete() bool {
	if len(s.Cards) == 0 {
		return false
	}
	for i := range s.Cards {
		if !s.Cards[i].IsComplete() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	out := *s

	out.Players = make([]Player, len(s.Players))
	copy(out.Players, s.Players)

	out.Cards = make([]Scorecard, len(s.Cards))
	for i := range s.Cards {
		out.Cards[i] = s.Cards[i].Clone()
	}

	if s.FinalScores != nil {
		out.FinalScores = make([]FinalScore, len(s.FinalScores))
		copy(out.FinalScores, s.FinalScores)
	}
	if s.Winners != nil {
		out.Winners = make([]int, len(s.Winners))
		copy(out.Winners, s.Winners)
	}

	return &out
}
