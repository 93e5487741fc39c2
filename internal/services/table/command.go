package table

import "github.com/ewhitmore/scorepad-go/internal/model"

// Command is a discrete instruction issued against a table session.
// Commands are applied by the reducer; one command in, one new snapshot out.
type Command interface {
	isCommand()
	// Name is a stable identifier used for logging and events
	Name() string
}

// AddPlayer appends a player to the roster during setup
type AddPlayer struct {
	PlayerName string
}

// RemovePlayer removes a player from the roster during setup
type RemovePlayer struct {
	Index int
}

// StartGame freezes the roster and begins play
type StartGame struct{}

// SetDie enters the face value of one physical die
type SetDie struct {
	Die   int
	Value int
}

// ClearDice resets the active hand to all-unset
type ClearDice struct{}

// SelectCategory scores the entered hand into a category and ends the turn
type SelectCategory struct {
	Category model.Category
}

// EndGame force-finishes the game; unassigned categories count as 0
type EndGame struct{}

// ResetGame discards a finished game and returns to setup
type ResetGame struct{}

func (AddPlayer) isCommand()      {}
func (RemovePlayer) isCommand()   {}
func (StartGame) isCommand()      {}
func (SetDie) isCommand()         {}
func (ClearDice) isCommand()      {}
func (SelectCategory) isCommand() {}
func (EndGame) isCommand()        {}
func (ResetGame) isCommand()      {}

func (AddPlayer) Name() string      { return "add_player" }
func (RemovePlayer) Name() string   { return "remove_player" }
func (StartGame) Name() string      { return "start_game" }
func (SetDie) Name() string         { return "set_die" }
func (ClearDice) Name() string      { return "clear_dice" }
func (SelectCategory) Name() string { return "select_category" }
func (EndGame) Name() string        { return "end_game" }
func (ResetGame) Name() string      { return "reset_game" }
