package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Table:
		o.printTable(v)
	case CreateTableResult:
		o.printTable(v.Table)
		fmt.Printf("\nTable key: %s\n", v.TableKey.Token)
	case ClaimResult:
		fmt.Printf("Table key: %s\n", v.TableKey.Token)
		fmt.Printf("Expires: %s\n", v.TableKey.ExpiresAt.Format(time.RFC3339))
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// TableConfig response type
type TableConfig struct {
	MaxPlayers int  `json:"max_players"`
	KeepRoster bool `json:"keep_roster"`
}

// Scorecard response type
type Scorecard struct {
	Scores        map[string]int `json:"scores"`
	ExtraYahtzees int            `json:"extra_yahtzees,omitempty"`
}

// FinalScore response type
type FinalScore struct {
	PlayerIndex  int `json:"player_index"`
	GrandTotal   int `json:"grand_total"`
	UpperBonus   int `json:"upper_bonus"`
	YahtzeeBonus int `json:"yahtzee_bonus"`
}

// Table response type
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
}

// TableKey response type
type TableKey struct {
	Token     string    `json:"token"`
	Table     string    `json:"table"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateTableResult response type
type CreateTableResult struct {
	Table    Table    `json:"table"`
	TableKey TableKey `json:"table_key"`
}

// ClaimResult response type
type ClaimResult struct {
	TableKey TableKey `json:"table_key"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Categories in scorecard display order
var categoryOrder = []struct {
	id    string
	label string
}{
	{"ones", "Ones"},
	{"twos", "Twos"},
	{"threes", "Threes"},
	{"fours", "Fours"},
	{"fives", "Fives"},
	{"sixes", "Sixes"},
	{"three_of_a_kind", "Three of a Kind"},
	{"four_of_a_kind", "Four of a Kind"},
	{"full_house", "Full House"},
	{"small_straight", "Small Straight"},
	{"large_straight", "Large Straight"},
	{"yahtzee", "Yahtzee"},
	{"chance", "Chance"},
}

func (o *Output) printTable(t Table) {
	fmt.Printf("Table: %s\n", t.Code)
	fmt.Printf("Status: %s\n", t.Status)
	if t.HasPasscode {
		fmt.Println("Passcode: required")
	}
	fmt.Printf("Players (%d/%d):\n", len(t.Players), t.Config.MaxPlayers)
	for _, p := range t.Players {
		marker := ""
		if t.Status == "playing" && p.Index == t.CurrentPlayer {
			marker = " <- to play"
		}
		fmt.Printf("  %d. %s%s\n", p.Index, p.Name, marker)
	}

	if t.Status == "playing" {
		fmt.Printf("Round: %d\n", t.Round)
		fmt.Printf("Hand: %s\n", formatHand(t.Hand))
	}

	if len(t.Cards) > 0 {
		fmt.Println()
		o.printScorecards(t)
	}

	if len(t.FinalScores) > 0 {
		fmt.Println("\nFinal Scores:")
		for _, fs := range t.FinalScores {
			name := fmt.Sprintf("player %d", fs.PlayerIndex)
			if fs.PlayerIndex >= 0 && fs.PlayerIndex < len(t.Players) {
				name = t.Players[fs.PlayerIndex].Name
			}
			fmt.Printf("  %s: %d (upper bonus %d, yahtzee bonus %d)\n",
				name, fs.GrandTotal, fs.UpperBonus, fs.YahtzeeBonus)
		}
	}

	if len(t.Winners) > 0 {
		names := make([]string, 0, len(t.Winners))
		for _, idx := range t.Winners {
			if idx >= 0 && idx < len(t.Players) {
				names = append(names, t.Players[idx].Name)
			} else {
				names = append(names, fmt.Sprintf("player %d", idx))
			}
		}
		fmt.Printf("\nWinner: %s\n", strings.Join(names, ", "))
	}
}

// printScorecards renders all players' cards side by side, one row per
// category, with "-" for open categories
func (o *Output) printScorecards(t Table) {
	labelWidth := 0
	for _, cat := range categoryOrder {
		if len(cat.label) > labelWidth {
			labelWidth = len(cat.label)
		}
	}

	colWidths := make([]int, len(t.Players))
	for i, p := range t.Players {
		colWidths[i] = len(p.Name)
		if colWidths[i] < 5 {
			colWidths[i] = 5
		}
	}

	// Header row
	fmt.Printf("%-*s", labelWidth, "")
	for i, p := range t.Players {
		fmt.Printf("  %*s", colWidths[i], p.Name)
	}
	fmt.Println()

	for _, cat := range categoryOrder {
		fmt.Printf("%-*s", labelWidth, cat.label)
		for i := range t.Players {
			cell := "-"
			if i < len(t.Cards) {
				if score, ok := t.Cards[i].Scores[cat.id]; ok {
					cell = fmt.Sprintf("%d", score)
				}
			}
			fmt.Printf("  %*s", colWidths[i], cell)
		}
		fmt.Println()
	}
}

func formatHand(hand []int) string {
	parts := make([]string, len(hand))
	for i, v := range hand {
		if v == 0 {
			parts[i] = "_"
		} else {
			parts[i] = fmt.Sprintf("%d", v)
		}
	}
	return strings.Join(parts, " ")
}
