package response

import (
	"time"

	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
)

// Player represents a roster seat in API responses
type Player struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Index: p.Index,
		Name:  p.Name,
	}
}

// TableConfig represents table configuration
type TableConfig struct {
	MaxPlayers int  `json:"max_players"`
	KeepRoster bool `json:"keep_roster"`
}

// TableConfigFromModel converts model.TableConfig
func TableConfigFromModel(c model.TableConfig) TableConfig {
	return TableConfig{
		MaxPlayers: c.MaxPlayers,
		KeepRoster: c.KeepRoster,
	}
}

// Scorecard represents one player's card. Categories absent from Scores are
// still open.
type Scorecard struct {
	Scores        map[string]int `json:"scores"`
	ExtraYahtzees int            `json:"extra_yahtzees,omitempty"`
}

// ScorecardFromModel converts model.Scorecard
func ScorecardFromModel(c model.Scorecard) Scorecard {
	scores := make(map[string]int, len(c.Scores))
	for cat, v := range c.Scores {
		scores[string(cat)] = v
	}
	return Scorecard{
		Scores:        scores,
		ExtraYahtzees: c.ExtraYahtzees,
	}
}

// FinalScore is one player's end-of-game result
type FinalScore struct {
	PlayerIndex  int `json:"player_index"`
	GrandTotal   int `json:"grand_total"`
	UpperBonus   int `json:"upper_bonus"`
	YahtzeeBonus int `json:"yahtzee_bonus"`
}

// FinalScoreFromModel converts model.FinalScore
func FinalScoreFromModel(f model.FinalScore) FinalScore {
	return FinalScore{
		PlayerIndex:  f.PlayerIndex,
		GrandTotal:   f.GrandTotal,
		UpperBonus:   f.UpperBonus,
		YahtzeeBonus: f.YahtzeeBonus,
	}
}

// Table represents a table session in API responses. The passcode hash is
// never exposed; HasPasscode signals whether claiming needs one.
type Table struct {
	Code          string       `json:"code"`
	Status        string       `json:"status"`
	Config        TableConfig  `json:"config"`
	Players       []Player     `json:"players"`
	Cards         []Scorecard  `json:"cards"`
	CurrentPlayer int          `json:"current_player"`
	Round         int          `json:"round"`
	Hand          []int        `json:"hand"`
	FinalScores   []FinalScore `json:"final_scores,omitempty"`
	Winners       []int        `json:"winners,omitempty"`
	HasPasscode   bool         `json:"has_passcode"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableFromModel converts a model.Session
func TableFromModel(s *model.Session) Table {
	players := make([]Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = PlayerFromModel(p)
	}

	cards := make([]Scorecard, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = ScorecardFromModel(c)
	}

	hand := make([]int, len(s.Hand))
	copy(hand, s.Hand[:])

	var finalScores []FinalScore
	if s.FinalScores != nil {
		finalScores = make([]FinalScore, len(s.FinalScores))
		for i, f := range s.FinalScores {
			finalScores[i] = FinalScoreFromModel(f)
		}
	}

	return Table{
		Code:          string(s.Code),
		Status:        string(s.Status),
		Config:        TableConfigFromModel(s.Config),
		Players:       players,
		Cards:         cards,
		CurrentPlayer: s.CurrentPlayer,
		Round:         s.Round,
		Hand:          hand,
		FinalScores:   finalScores,
		Winners:       s.Winners,
		HasPasscode:   s.PasscodeHash != "",
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// TableKey is a bearer key bound to one table
type TableKey struct {
	Token     string    `json:"token"`
	Table     string    `json:"table"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableKeyFromGrant converts an access.Grant
func TableKeyFromGrant(g *access.Grant) TableKey {
	return TableKey{
		Token:     g.Token,
		Table:     string(g.Table),
		ExpiresAt: g.ExpiresAt,
	}
}

// CreateTableResponse is the response for table creation
type CreateTableResponse struct {
	Table    Table    `json:"table"`
	TableKey TableKey `json:"table_key"`
}

// ClaimResponse is the response for claiming a table key
type ClaimResponse struct {
	TableKey TableKey `json:"table_key"`
}
