package request

// CreateTableRequest is the request body for creating a table
type CreateTableRequest struct {
	Passcode   string `json:"passcode,omitempty"`
	MaxPlayers int    `json:"max_players,omitempty"`
	KeepRoster *bool  `json:"keep_roster,omitempty"`
}

// ClaimRequest is the request body for claiming a table key
type ClaimRequest struct {
	Passcode string `json:"passcode,omitempty"`
}

// AddPlayerRequest is the request body for adding a player to the roster
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// SetDieRequest is the request body for setting one die of the working hand
type SetDieRequest struct {
	Value int `json:"value"`
}

// ScoreRequest is the request body for scoring the working hand
type ScoreRequest struct {
	Category string `json:"category"`
}
